package reconcile

import (
	"context"
	"errors"

	"warehouse-backend/internal/domain/inventory"

	"gorm.io/gorm"
)

// ApplyDelta applies a signed quantity change to the row matching the
// natural key. It expects every string in k (and unit/remark for new
// rows) to be normalized by the caller already; a case mismatch is a
// non-match and produces a separate row.
//
// Positive delta merges into the existing row (overwriting its remark)
// or inserts a new one. Negative delta fails with ErrInsufficientStock
// when the row is missing or too small, and deletes the row when the
// quantity lands exactly on zero.
//
// The repository handle decides the transaction scope: pass a repo
// bound to an open transaction to make the read-modify-write atomic.
func ApplyDelta(ctx context.Context, items inventory.Repository, k inventory.Key, delta int64, unit, remark string) (int64, error) {
	existing, err := items.GetByKeyForUpdate(ctx, k)
	switch {
	case err == nil:
	case errors.Is(err, gorm.ErrRecordNotFound):
		existing = nil
	default:
		return 0, err
	}

	if delta > 0 {
		if existing != nil {
			existing.Quantity += delta
			existing.Unit = unit
			existing.Remark = remark
			if err := items.Save(ctx, existing); err != nil {
				return 0, err
			}
			return existing.Quantity, nil
		}
		it := &inventory.Item{
			Name:     k.Name,
			Model:    k.Model,
			Spec:     k.Spec,
			Color:    k.Color,
			Unit:     unit,
			Quantity: delta,
			Location: k.Location,
			Remark:   remark,
		}
		if err := items.Create(ctx, it); err != nil {
			return 0, err
		}
		return it.Quantity, nil
	}

	need := -delta
	if existing == nil || existing.Quantity < need {
		return 0, inventory.ErrInsufficientStock
	}
	remaining := existing.Quantity - need
	if remaining == 0 {
		if err := items.Delete(ctx, existing.ID); err != nil {
			return 0, err
		}
		return 0, nil
	}
	// remark is left untouched on stock-out
	existing.Quantity = remaining
	if err := items.Save(ctx, existing); err != nil {
		return 0, err
	}
	return remaining, nil
}
