package inventory

import "context"

type Repository interface {
	Create(ctx context.Context, it *Item) error
	Save(ctx context.Context, it *Item) error
	Delete(ctx context.Context, id uint64) error
	DeleteByIDs(ctx context.Context, ids []uint64) error
	GetByKey(ctx context.Context, k Key) (*Item, error)
	// GetByKeyForUpdate locks the matched row for the duration of the
	// surrounding transaction.
	GetByKeyForUpdate(ctx context.Context, k Key) (*Item, error)
	// List returns all rows ordered by location (the display order).
	List(ctx context.Context) ([]Item, error)
}
