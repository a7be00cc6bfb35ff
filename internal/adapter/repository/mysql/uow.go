package mysql

import (
	"context"
	"errors"

	journalDomain "warehouse-backend/internal/domain/journal"
	"warehouse-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{
			Items:   &InventoryRepository{db: tx},
			Entries: &JournalRepository{db: tx},
		}
		return fn(r)
	})
}

func (u *GormUoW) WithinEntryTx(ctx context.Context, entryID uint64, fn func(r uow.Repos, e *journalDomain.Entry) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{
			Items:   &InventoryRepository{db: tx},
			Entries: &JournalRepository{db: tx},
		}
		// lock the log entry up-front to prevent double transitions
		e, err := r.Entries.GetByIDForUpdate(ctx, entryID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return journalDomain.ErrNotFound
			}
			return err
		}
		return fn(r, e)
	})
}
