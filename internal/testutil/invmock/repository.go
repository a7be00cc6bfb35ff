package invmock

import (
	"context"

	domain "warehouse-backend/internal/domain/inventory"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies inventory.Repository.
// Fill in only the fields a test needs.
type Repo struct {
	CreateFn            func(ctx context.Context, it *domain.Item) error
	SaveFn              func(ctx context.Context, it *domain.Item) error
	DeleteFn            func(ctx context.Context, id uint64) error
	DeleteByIDsFn       func(ctx context.Context, ids []uint64) error
	GetByKeyFn          func(ctx context.Context, k domain.Key) (*domain.Item, error)
	GetByKeyForUpdateFn func(ctx context.Context, k domain.Key) (*domain.Item, error)
	ListFn              func(ctx context.Context) ([]domain.Item, error)
}

func (m *Repo) Create(ctx context.Context, it *domain.Item) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, it)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, it *domain.Item) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, it)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *Repo) DeleteByIDs(ctx context.Context, ids []uint64) error {
	if m.DeleteByIDsFn != nil {
		return m.DeleteByIDsFn(ctx, ids)
	}
	return nil
}

func (m *Repo) GetByKey(ctx context.Context, k domain.Key) (*domain.Item, error) {
	if m.GetByKeyFn != nil {
		return m.GetByKeyFn(ctx, k)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByKeyForUpdate(ctx context.Context, k domain.Key) (*domain.Item, error) {
	if m.GetByKeyForUpdateFn != nil {
		return m.GetByKeyForUpdateFn(ctx, k)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) List(ctx context.Context) ([]domain.Item, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}
