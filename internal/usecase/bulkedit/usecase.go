package bulkedit

import (
	"context"
	"time"

	"warehouse-backend/internal/domain/uow"

	"github.com/rs/zerolog"
)

type Usecase struct {
	uow uow.UnitOfWork
	log zerolog.Logger
}

func NewUsecase(tx uow.UnitOfWork, log zerolog.Logger) *Usecase {
	return &Usecase{uow: tx, log: log}
}

// Result summarizes what a replacement changed.
type Result struct {
	Deleted  int `json:"deleted"`
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
	Logged   int `json:"logged"`
}

// Apply replaces the whole inventory table with the proposed rows. The
// prior snapshot is read and the plan executed inside one transaction,
// so the diff cannot race a concurrent approval.
func (u *Usecase) Apply(ctx context.Context, applicant string, proposed []Row) (*Result, error) {
	var res Result
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		prior, err := r.Items.List(ctx)
		if err != nil {
			return err
		}

		plan := Diff(prior, proposed, applicant, time.Now().UTC())
		if plan.Empty() {
			return nil
		}

		if len(plan.DeleteIDs) > 0 {
			if err := r.Items.DeleteByIDs(ctx, plan.DeleteIDs); err != nil {
				return err
			}
		}
		for i := range plan.Inserts {
			if err := r.Items.Create(ctx, &plan.Inserts[i]); err != nil {
				return err
			}
		}
		for i := range plan.Updates {
			if err := r.Items.Save(ctx, &plan.Updates[i]); err != nil {
				return err
			}
		}
		for i := range plan.Entries {
			if err := r.Entries.Create(ctx, &plan.Entries[i]); err != nil {
				return err
			}
		}

		res = Result{
			Deleted:  len(plan.DeleteIDs),
			Inserted: len(plan.Inserts),
			Updated:  len(plan.Updates),
			Logged:   len(plan.Entries),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.log.Info().
		Str("admin", applicant).
		Int("deleted", res.Deleted).
		Int("inserted", res.Inserted).
		Int("updated", res.Updated).
		Msg("inventory table replaced")
	return &res, nil
}
