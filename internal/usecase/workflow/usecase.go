package workflow

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"warehouse-backend/internal/domain/inventory"
	"warehouse-backend/internal/domain/journal"
	"warehouse-backend/internal/domain/uow"
	"warehouse-backend/internal/usecase/reconcile"

	"github.com/rs/zerolog"
)

// ErrValidation marks a missing or malformed field; handlers map it to
// a 400-class response.
var ErrValidation = errors.New("validation failed")

type Usecase struct {
	entryRepo journal.Repository
	itemRepo  inventory.Repository
	uow       uow.UnitOfWork
	log       zerolog.Logger
}

func NewUsecase(entries journal.Repository, items inventory.Repository, tx uow.UnitOfWork, log zerolog.Logger) *Usecase {
	return &Usecase{entryRepo: entries, itemRepo: items, uow: tx, log: log}
}

func norm(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// Submit records a PENDING request. Inventory is untouched until an
// admin approves.
func (u *Usecase) Submit(ctx context.Context, p Principal, in SubmitInput) (*EntryDTO, error) {
	if in.Action != journal.ActionIn && in.Action != journal.ActionOut {
		return nil, fmt.Errorf("%w: action must be IN or OUT", ErrValidation)
	}
	if in.Quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
	}

	name, model, spec := norm(in.Name), norm(in.Model), norm(in.Spec)
	color, unit := norm(in.Color), norm(in.Unit)
	if name == "" || model == "" || spec == "" || color == "" || unit == "" {
		return nil, fmt.Errorf("%w: name, model, spec, color and unit are required", ErrValidation)
	}

	// IN requests never carry a location; the admin assigns one at
	// approval time. OUT requests must say where to take stock from.
	location := ""
	if in.Action == journal.ActionOut {
		location = norm(in.Location)
		if location == "" {
			return nil, fmt.Errorf("%w: location is required for stock-out requests", ErrValidation)
		}
	}

	e := &journal.Entry{
		Applicant:  p.Name,
		ActionType: in.Action,
		Name:       name,
		Model:      model,
		Spec:       spec,
		Color:      color,
		Unit:       unit,
		Quantity:   in.Quantity,
		Location:   location,
		Remark:     strings.TrimSpace(in.Remark),
		Status:     journal.StatusPending,
		Timestamp:  time.Now().UTC(),
	}
	if err := u.entryRepo.Create(ctx, e); err != nil {
		return nil, err
	}
	u.log.Info().Str("applicant", p.Name).Str("action", string(in.Action)).Uint64("entry_id", e.ID).Msg("request submitted")
	return toDTO(e), nil
}

// AdminAction applies an IN/OUT directly: ledger and journal move
// together in one transaction, and nothing is written when the stock
// check fails.
func (u *Usecase) AdminAction(ctx context.Context, p Principal, in AdminActionInput) (*EntryDTO, error) {
	if in.Action != journal.ActionIn && in.Action != journal.ActionOut {
		return nil, fmt.Errorf("%w: action must be IN or OUT", ErrValidation)
	}
	if in.Quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
	}

	name, model, spec := norm(in.Name), norm(in.Model), norm(in.Spec)
	color, unit, location := norm(in.Color), norm(in.Unit), norm(in.Location)
	if name == "" || model == "" || spec == "" || color == "" || unit == "" || location == "" {
		return nil, fmt.Errorf("%w: all fields including location are required", ErrValidation)
	}

	remark := strings.TrimSpace(in.Remark)
	delta := in.Quantity
	if in.Action == journal.ActionOut {
		delta = -in.Quantity
	}

	var dto *EntryDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		k := inventory.Key{Name: name, Model: model, Spec: spec, Color: color, Location: location}
		if _, err := reconcile.ApplyDelta(ctx, r.Items, k, delta, unit, remark); err != nil {
			return err
		}
		e := &journal.Entry{
			Applicant:  p.Name,
			ActionType: in.Action,
			Name:       name,
			Model:      model,
			Spec:       spec,
			Color:      color,
			Unit:       unit,
			Quantity:   in.Quantity,
			Location:   location,
			Remark:     remark,
			Status:     journal.StatusApproved,
			Timestamp:  time.Now().UTC(),
		}
		if err := r.Entries.Create(ctx, e); err != nil {
			return err
		}
		dto = toDTO(e)
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.log.Info().Str("admin", p.Name).Str("action", string(in.Action)).Uint64("entry_id", dto.ID).Msg("admin direct action")
	return dto, nil
}

// Approve moves a PENDING entry to APPROVED and applies its delta. The
// caller supplies the resolved location; an OUT entry falls back to the
// location it was submitted with. InsufficientStock leaves the entry
// PENDING with no side effects.
func (u *Usecase) Approve(ctx context.Context, p Principal, entryID uint64, finalLocation string) (*EntryDTO, error) {
	var dto *EntryDTO
	err := u.uow.WithinEntryTx(ctx, entryID, func(r uow.Repos, e *journal.Entry) error {
		if e.Status != journal.StatusPending {
			return journal.ErrInvalidTransition
		}

		location := norm(finalLocation)
		if location == "" && e.ActionType == journal.ActionOut {
			location = e.Location
		}
		if location == "" {
			return fmt.Errorf("%w: a location must be assigned before approval", ErrValidation)
		}

		delta := e.Quantity
		if e.ActionType == journal.ActionOut {
			delta = -e.Quantity
		}
		k := inventory.Key{Name: e.Name, Model: e.Model, Spec: e.Spec, Color: e.Color, Location: location}
		if _, err := reconcile.ApplyDelta(ctx, r.Items, k, delta, e.Unit, e.Remark); err != nil {
			return err
		}

		e.Status = journal.StatusApproved
		e.Location = location
		if err := r.Entries.Save(ctx, e); err != nil {
			return err
		}
		dto = toDTO(e)
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.log.Info().Str("admin", p.Name).Uint64("entry_id", entryID).Str("location", dto.Location).Msg("request approved")
	return dto, nil
}

// Reject is terminal for a PENDING entry; no inventory mutation.
func (u *Usecase) Reject(ctx context.Context, p Principal, entryID uint64) (*EntryDTO, error) {
	var dto *EntryDTO
	err := u.uow.WithinEntryTx(ctx, entryID, func(r uow.Repos, e *journal.Entry) error {
		if e.Status != journal.StatusPending {
			return journal.ErrInvalidTransition
		}
		e.Status = journal.StatusRejected
		if err := r.Entries.Save(ctx, e); err != nil {
			return err
		}
		dto = toDTO(e)
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.log.Info().Str("admin", p.Name).Uint64("entry_id", entryID).Msg("request rejected")
	return dto, nil
}

func (u *Usecase) ListInventory(ctx context.Context) ([]inventory.Item, error) {
	return u.itemRepo.List(ctx)
}

func (u *Usecase) ListLogs(ctx context.Context) ([]EntryDTO, error) {
	es, err := u.entryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(es), nil
}

func (u *Usecase) ListMyLogs(ctx context.Context, p Principal) ([]EntryDTO, error) {
	es, err := u.entryRepo.ListByApplicant(ctx, p.Name)
	if err != nil {
		return nil, err
	}
	return toDTOs(es), nil
}

func (u *Usecase) ListPending(ctx context.Context) ([]EntryDTO, error) {
	es, err := u.entryRepo.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(es), nil
}

// PendingCount feeds the admin badge.
func (u *Usecase) PendingCount(ctx context.Context) (int64, error) {
	return u.entryRepo.CountPending(ctx)
}

// PurgeLogs wipes the whole journal.
func (u *Usecase) PurgeLogs(ctx context.Context, p Principal) error {
	if err := u.entryRepo.DeleteAll(ctx); err != nil {
		return err
	}
	u.log.Warn().Str("admin", p.Name).Msg("journal purged")
	return nil
}
