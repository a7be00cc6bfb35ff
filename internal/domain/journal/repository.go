package journal

import "context"

type Repository interface {
	Create(ctx context.Context, e *Entry) error
	Save(ctx context.Context, e *Entry) error
	GetByID(ctx context.Context, id uint64) (*Entry, error)
	// GetByIDForUpdate locks the entry row for the duration of the
	// surrounding transaction.
	GetByIDForUpdate(ctx context.Context, id uint64) (*Entry, error)
	// List returns all entries, newest first.
	List(ctx context.Context) ([]Entry, error)
	ListByApplicant(ctx context.Context, applicant string) ([]Entry, error)
	ListPending(ctx context.Context) ([]Entry, error)
	CountPending(ctx context.Context) (int64, error)
	// DeleteAll is the full-log purge; entries are never deleted
	// individually.
	DeleteAll(ctx context.Context) error
}
