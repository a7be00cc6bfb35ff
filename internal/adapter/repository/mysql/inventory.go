package mysql

import (
	"context"

	invDomain "warehouse-backend/internal/domain/inventory"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InventoryRepository struct{ db *gorm.DB }

func NewInventoryRepository(db *gorm.DB) *InventoryRepository { return &InventoryRepository{db: db} }

func (r *InventoryRepository) Create(ctx context.Context, it *invDomain.Item) error {
	return r.db.WithContext(ctx).Create(it).Error
}

func (r *InventoryRepository) Save(ctx context.Context, it *invDomain.Item) error {
	return r.db.WithContext(ctx).Save(it).Error
}

func (r *InventoryRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&invDomain.Item{}, id).Error
}

func (r *InventoryRepository) DeleteByIDs(ctx context.Context, ids []uint64) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Delete(&invDomain.Item{}, ids).Error
}

func (r *InventoryRepository) GetByKey(ctx context.Context, k invDomain.Key) (*invDomain.Item, error) {
	var out invDomain.Item
	res := r.db.WithContext(ctx).
		Where("name = ? AND model = ? AND spec = ? AND color = ? AND location = ?",
			k.Name, k.Model, k.Spec, k.Color, k.Location).
		First(&out)
	return &out, res.Error
}

// GetByKeyForUpdate takes a row lock so two concurrent deltas on the
// same key serialize within their transactions.
func (r *InventoryRepository) GetByKeyForUpdate(ctx context.Context, k invDomain.Key) (*invDomain.Item, error) {
	var out invDomain.Item
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("name = ? AND model = ? AND spec = ? AND color = ? AND location = ?",
			k.Name, k.Model, k.Spec, k.Color, k.Location).
		First(&out)
	return &out, res.Error
}

func (r *InventoryRepository) List(ctx context.Context) ([]invDomain.Item, error) {
	var out []invDomain.Item
	res := r.db.WithContext(ctx).Order("location, id").Find(&out)
	return out, res.Error
}
