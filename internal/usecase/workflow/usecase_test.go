package workflow

import (
	"context"
	"errors"
	"testing"

	"warehouse-backend/internal/domain/inventory"
	"warehouse-backend/internal/domain/journal"
	"warehouse-backend/internal/domain/uow"
	"warehouse-backend/internal/testutil/invmock"
	"warehouse-backend/internal/testutil/journalmock"
	"warehouse-backend/internal/testutil/uowmock"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

var (
	alice = Principal{Name: "alice", Role: RoleUser}
	admin = Principal{Name: "admin", Role: RoleAdmin}
)

func TestUsecase_Submit(t *testing.T) {
	tests := []struct {
		name    string
		in      SubmitInput
		wantErr error
		check   func(t *testing.T, created *journal.Entry, dto *EntryDTO)
	}{
		{
			name: "in request normalized and pending",
			in: SubmitInput{
				Action: journal.ActionIn, Name: "  Widget ", Model: "M1", Spec: "S1",
				Color: "Red", Unit: "PCS", Quantity: 10, Location: "ignored", Remark: " note ",
			},
			check: func(t *testing.T, created *journal.Entry, dto *EntryDTO) {
				if created.Name != "widget" || created.Color != "red" || created.Unit != "pcs" {
					t.Fatalf("fields not normalized: %+v", created)
				}
				if created.Location != "" {
					t.Fatalf("IN submission must not carry a location, got %q", created.Location)
				}
				if created.Status != journal.StatusPending {
					t.Fatalf("status = %s, want PENDING", created.Status)
				}
				if dto.Applicant != "alice" {
					t.Fatalf("applicant = %q", dto.Applicant)
				}
			},
		},
		{
			name: "out request keeps normalized location",
			in: SubmitInput{
				Action: journal.ActionOut, Name: "widget", Model: "m1", Spec: "s1",
				Color: "red", Unit: "pcs", Quantity: 5, Location: " Shelf-A ",
			},
			check: func(t *testing.T, created *journal.Entry, dto *EntryDTO) {
				if created.Location != "shelf-a" {
					t.Fatalf("location = %q, want shelf-a", created.Location)
				}
			},
		},
		{
			name: "out without location",
			in: SubmitInput{
				Action: journal.ActionOut, Name: "widget", Model: "m1", Spec: "s1",
				Color: "red", Unit: "pcs", Quantity: 5,
			},
			wantErr: ErrValidation,
		},
		{
			name: "missing product field",
			in: SubmitInput{
				Action: journal.ActionIn, Name: "widget", Model: "  ", Spec: "s1",
				Color: "red", Unit: "pcs", Quantity: 5,
			},
			wantErr: ErrValidation,
		},
		{
			name: "zero quantity",
			in: SubmitInput{
				Action: journal.ActionIn, Name: "widget", Model: "m1", Spec: "s1",
				Color: "red", Unit: "pcs", Quantity: 0,
			},
			wantErr: ErrValidation,
		},
		{
			name:    "bad action",
			in:      SubmitInput{Action: "SIDEWAYS", Name: "widget", Model: "m1", Spec: "s1", Color: "red", Unit: "pcs", Quantity: 1},
			wantErr: ErrValidation,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var created *journal.Entry
			entries := &journalmock.Repo{
				CreateFn: func(ctx context.Context, e *journal.Entry) error {
					e.ID = 42
					created = e
					return nil
				},
			}
			items := &invmock.Repo{
				SaveFn:   func(context.Context, *inventory.Item) error { t.Fatal("submit must not touch inventory"); return nil },
				CreateFn: func(context.Context, *inventory.Item) error { t.Fatal("submit must not touch inventory"); return nil },
			}
			uc := NewUsecase(entries, items, uowmock.New(), zerolog.Nop())

			dto, err := uc.Submit(context.Background(), alice, tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("want err %v, got %v", tt.wantErr, err)
				}
				if created != nil {
					t.Fatalf("failed submit must not create an entry")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if created == nil {
				t.Fatalf("no entry created")
			}
			if tt.check != nil {
				tt.check(t, created, dto)
			}
		})
	}
}

func newPendingEntry(action journal.ActionType) *journal.Entry {
	return &journal.Entry{
		ID: 7, Applicant: "alice", ActionType: action,
		Name: "widget", Model: "m1", Spec: "s1", Color: "red", Unit: "pcs",
		Quantity: 5, Location: "shelf-a", Status: journal.StatusPending,
	}
}

// entryUoW locks nothing but hands fn the given entry, mimicking
// WithinEntryTx over an in-memory entry.
func entryUoW(items inventory.Repository, entries journal.Repository, e *journal.Entry) *uowmock.UoW {
	m := uowmock.New()
	m.WithinEntryTxFn = func(ctx context.Context, entryID uint64, fn func(r uow.Repos, e *journal.Entry) error) error {
		if e == nil {
			return journal.ErrNotFound
		}
		return fn(uow.Repos{Items: items, Entries: entries}, e)
	}
	m.WithinTxFn = func(ctx context.Context, fn func(r uow.Repos) error) error {
		return fn(uow.Repos{Items: items, Entries: entries})
	}
	return m
}

func TestUsecase_Approve(t *testing.T) {
	t.Run("out happy path", func(t *testing.T) {
		e := newPendingEntry(journal.ActionOut)
		stock := &inventory.Item{ID: 1, Name: "widget", Model: "m1", Spec: "s1", Color: "red", Unit: "pcs", Quantity: 10, Location: "shelf-a"}

		var savedItem *inventory.Item
		items := &invmock.Repo{
			GetByKeyForUpdateFn: func(ctx context.Context, k inventory.Key) (*inventory.Item, error) {
				if k != stock.Key() {
					return nil, gorm.ErrRecordNotFound
				}
				return stock, nil
			},
			SaveFn: func(ctx context.Context, it *inventory.Item) error { savedItem = it; return nil },
		}
		var savedEntry *journal.Entry
		entries := &journalmock.Repo{
			SaveFn: func(ctx context.Context, e *journal.Entry) error { savedEntry = e; return nil },
		}
		uc := NewUsecase(entries, items, entryUoW(items, entries, e), zerolog.Nop())

		dto, err := uc.Approve(context.Background(), admin, e.ID, "")
		if err != nil {
			t.Fatalf("Approve: %v", err)
		}
		if savedItem == nil || savedItem.Quantity != 5 {
			t.Fatalf("inventory not decremented: %+v", savedItem)
		}
		if savedEntry == nil || savedEntry.Status != journal.StatusApproved {
			t.Fatalf("entry not approved: %+v", savedEntry)
		}
		// OUT without an explicit final location falls back to the
		// location on the entry
		if dto.Location != "shelf-a" {
			t.Fatalf("location = %q, want shelf-a", dto.Location)
		}
	})

	t.Run("in requires a final location", func(t *testing.T) {
		e := newPendingEntry(journal.ActionIn)
		e.Location = ""
		items := &invmock.Repo{}
		entries := &journalmock.Repo{
			SaveFn: func(context.Context, *journal.Entry) error { t.Fatal("must not save"); return nil },
		}
		uc := NewUsecase(entries, items, entryUoW(items, entries, e), zerolog.Nop())

		if _, err := uc.Approve(context.Background(), admin, e.ID, "   "); !errors.Is(err, ErrValidation) {
			t.Fatalf("want ErrValidation, got %v", err)
		}
	})

	t.Run("insufficient stock leaves entry pending", func(t *testing.T) {
		e := newPendingEntry(journal.ActionOut)
		items := &invmock.Repo{
			GetByKeyForUpdateFn: func(ctx context.Context, k inventory.Key) (*inventory.Item, error) {
				return &inventory.Item{Quantity: 3}, nil
			},
		}
		entries := &journalmock.Repo{
			SaveFn: func(context.Context, *journal.Entry) error { t.Fatal("must not save on failure"); return nil },
		}
		uc := NewUsecase(entries, items, entryUoW(items, entries, e), zerolog.Nop())

		if _, err := uc.Approve(context.Background(), admin, e.ID, "shelf-a"); !errors.Is(err, inventory.ErrInsufficientStock) {
			t.Fatalf("want ErrInsufficientStock, got %v", err)
		}
		if e.Status != journal.StatusPending {
			t.Fatalf("entry status = %s, want PENDING", e.Status)
		}
	})

	t.Run("double approve rejected", func(t *testing.T) {
		e := newPendingEntry(journal.ActionIn)
		e.Status = journal.StatusApproved
		items := &invmock.Repo{
			GetByKeyForUpdateFn: func(context.Context, inventory.Key) (*inventory.Item, error) {
				t.Fatal("inventory must stay untouched")
				return nil, nil
			},
		}
		entries := &journalmock.Repo{}
		uc := NewUsecase(entries, items, entryUoW(items, entries, e), zerolog.Nop())

		if _, err := uc.Approve(context.Background(), admin, e.ID, "shelf-a"); !errors.Is(err, journal.ErrInvalidTransition) {
			t.Fatalf("want ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("approve after reject rejected", func(t *testing.T) {
		e := newPendingEntry(journal.ActionIn)
		e.Status = journal.StatusRejected
		items := &invmock.Repo{}
		entries := &journalmock.Repo{}
		uc := NewUsecase(entries, items, entryUoW(items, entries, e), zerolog.Nop())

		if _, err := uc.Approve(context.Background(), admin, e.ID, "shelf-a"); !errors.Is(err, journal.ErrInvalidTransition) {
			t.Fatalf("want ErrInvalidTransition, got %v", err)
		}
		if e.Status != journal.StatusRejected {
			t.Fatalf("status = %s, want REJECTED untouched", e.Status)
		}
	})

	t.Run("missing entry", func(t *testing.T) {
		items := &invmock.Repo{}
		entries := &journalmock.Repo{}
		uc := NewUsecase(entries, items, entryUoW(items, entries, nil), zerolog.Nop())

		if _, err := uc.Approve(context.Background(), admin, 999, "shelf-a"); !errors.Is(err, journal.ErrNotFound) {
			t.Fatalf("want ErrNotFound, got %v", err)
		}
	})
}

func TestUsecase_Reject(t *testing.T) {
	t.Run("pending becomes rejected", func(t *testing.T) {
		e := newPendingEntry(journal.ActionOut)
		items := &invmock.Repo{}
		var saved *journal.Entry
		entries := &journalmock.Repo{
			SaveFn: func(ctx context.Context, e *journal.Entry) error { saved = e; return nil },
		}
		uc := NewUsecase(entries, items, entryUoW(items, entries, e), zerolog.Nop())

		dto, err := uc.Reject(context.Background(), admin, e.ID)
		if err != nil {
			t.Fatalf("Reject: %v", err)
		}
		if saved == nil || saved.Status != journal.StatusRejected {
			t.Fatalf("entry not rejected: %+v", saved)
		}
		if dto.Status != journal.StatusRejected {
			t.Fatalf("dto status = %s", dto.Status)
		}
	})

	t.Run("reject after approve rejected", func(t *testing.T) {
		e := newPendingEntry(journal.ActionOut)
		e.Status = journal.StatusApproved
		items := &invmock.Repo{}
		entries := &journalmock.Repo{}
		uc := NewUsecase(entries, items, entryUoW(items, entries, e), zerolog.Nop())

		if _, err := uc.Reject(context.Background(), admin, e.ID); !errors.Is(err, journal.ErrInvalidTransition) {
			t.Fatalf("want ErrInvalidTransition, got %v", err)
		}
		if e.Status != journal.StatusApproved {
			t.Fatalf("status = %s, want APPROVED untouched", e.Status)
		}
	})
}

func TestUsecase_AdminAction(t *testing.T) {
	t.Run("direct in writes ledger and journal together", func(t *testing.T) {
		var createdItem *inventory.Item
		items := &invmock.Repo{
			CreateFn: func(ctx context.Context, it *inventory.Item) error { createdItem = it; return nil },
		}
		var createdEntry *journal.Entry
		entries := &journalmock.Repo{
			CreateFn: func(ctx context.Context, e *journal.Entry) error { e.ID = 9; createdEntry = e; return nil },
		}
		uc := NewUsecase(entries, items, entryUoW(items, entries, nil), zerolog.Nop())

		dto, err := uc.AdminAction(context.Background(), admin, AdminActionInput{
			Action: journal.ActionIn, Name: "Widget", Model: "m1", Spec: "s1",
			Color: "red", Unit: "pcs", Quantity: 10, Location: "Shelf-A",
		})
		if err != nil {
			t.Fatalf("AdminAction: %v", err)
		}
		if createdItem == nil || createdItem.Quantity != 10 || createdItem.Location != "shelf-a" {
			t.Fatalf("item: %+v", createdItem)
		}
		if createdEntry == nil || createdEntry.Status != journal.StatusApproved {
			t.Fatalf("entry: %+v", createdEntry)
		}
		if dto.Status != journal.StatusApproved {
			t.Fatalf("dto status = %s", dto.Status)
		}
	})

	t.Run("direct out with insufficient stock writes nothing", func(t *testing.T) {
		items := &invmock.Repo{
			GetByKeyForUpdateFn: func(context.Context, inventory.Key) (*inventory.Item, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		entries := &journalmock.Repo{
			CreateFn: func(context.Context, *journal.Entry) error { t.Fatal("must not journal a failed action"); return nil },
		}
		uc := NewUsecase(entries, items, entryUoW(items, entries, nil), zerolog.Nop())

		_, err := uc.AdminAction(context.Background(), admin, AdminActionInput{
			Action: journal.ActionOut, Name: "widget", Model: "m1", Spec: "s1",
			Color: "red", Unit: "pcs", Quantity: 10, Location: "shelf-a",
		})
		if !errors.Is(err, inventory.ErrInsufficientStock) {
			t.Fatalf("want ErrInsufficientStock, got %v", err)
		}
	})

	t.Run("location required", func(t *testing.T) {
		uc := NewUsecase(&journalmock.Repo{}, &invmock.Repo{}, uowmock.New(), zerolog.Nop())
		_, err := uc.AdminAction(context.Background(), admin, AdminActionInput{
			Action: journal.ActionIn, Name: "widget", Model: "m1", Spec: "s1",
			Color: "red", Unit: "pcs", Quantity: 10,
		})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("want ErrValidation, got %v", err)
		}
	})
}
