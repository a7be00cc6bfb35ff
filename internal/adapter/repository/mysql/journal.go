package mysql

import (
	"context"

	journalDomain "warehouse-backend/internal/domain/journal"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type JournalRepository struct{ db *gorm.DB }

func NewJournalRepository(db *gorm.DB) *JournalRepository { return &JournalRepository{db: db} }

func (r *JournalRepository) Create(ctx context.Context, e *journalDomain.Entry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *JournalRepository) Save(ctx context.Context, e *journalDomain.Entry) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *JournalRepository) GetByID(ctx context.Context, id uint64) (*journalDomain.Entry, error) {
	var out journalDomain.Entry
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *JournalRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*journalDomain.Entry, error) {
	var out journalDomain.Entry
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&out, id)
	return &out, res.Error
}

func (r *JournalRepository) List(ctx context.Context) ([]journalDomain.Entry, error) {
	var out []journalDomain.Entry
	res := r.db.WithContext(ctx).Order("id DESC").Find(&out)
	return out, res.Error
}

func (r *JournalRepository) ListByApplicant(ctx context.Context, applicant string) ([]journalDomain.Entry, error) {
	var out []journalDomain.Entry
	res := r.db.WithContext(ctx).
		Where("applicant = ?", applicant).
		Order("id DESC").
		Find(&out)
	return out, res.Error
}

func (r *JournalRepository) ListPending(ctx context.Context) ([]journalDomain.Entry, error) {
	var out []journalDomain.Entry
	res := r.db.WithContext(ctx).
		Where("status = ?", journalDomain.StatusPending).
		Order("id DESC").
		Find(&out)
	return out, res.Error
}

func (r *JournalRepository) CountPending(ctx context.Context) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&journalDomain.Entry{}).
		Where("status = ?", journalDomain.StatusPending).
		Count(&n)
	return n, res.Error
}

func (r *JournalRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&journalDomain.Entry{}).Error
}
