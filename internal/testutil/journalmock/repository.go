package journalmock

import (
	"context"

	domain "warehouse-backend/internal/domain/journal"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies journal.Repository.
type Repo struct {
	CreateFn           func(ctx context.Context, e *domain.Entry) error
	SaveFn             func(ctx context.Context, e *domain.Entry) error
	GetByIDFn          func(ctx context.Context, id uint64) (*domain.Entry, error)
	GetByIDForUpdateFn func(ctx context.Context, id uint64) (*domain.Entry, error)
	ListFn             func(ctx context.Context) ([]domain.Entry, error)
	ListByApplicantFn  func(ctx context.Context, applicant string) ([]domain.Entry, error)
	ListPendingFn      func(ctx context.Context) ([]domain.Entry, error)
	CountPendingFn     func(ctx context.Context) (int64, error)
	DeleteAllFn        func(ctx context.Context) error
}

func (m *Repo) Create(ctx context.Context, e *domain.Entry) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, e)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, e *domain.Entry) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, e)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Entry, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Entry, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) List(ctx context.Context) ([]domain.Entry, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListByApplicant(ctx context.Context, applicant string) ([]domain.Entry, error) {
	if m.ListByApplicantFn != nil {
		return m.ListByApplicantFn(ctx, applicant)
	}
	return nil, nil
}

func (m *Repo) ListPending(ctx context.Context) ([]domain.Entry, error) {
	if m.ListPendingFn != nil {
		return m.ListPendingFn(ctx)
	}
	return nil, nil
}

func (m *Repo) CountPending(ctx context.Context) (int64, error) {
	if m.CountPendingFn != nil {
		return m.CountPendingFn(ctx)
	}
	return 0, nil
}

func (m *Repo) DeleteAll(ctx context.Context) error {
	if m.DeleteAllFn != nil {
		return m.DeleteAllFn(ctx)
	}
	return nil
}
