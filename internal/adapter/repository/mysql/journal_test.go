package mysql

import (
	"context"
	"testing"
	"time"

	journalDomain "warehouse-backend/internal/domain/journal"
)

func makeEntry(applicant string, status journalDomain.Status) *journalDomain.Entry {
	return &journalDomain.Entry{
		Applicant: applicant, ActionType: journalDomain.ActionIn,
		Name: "widget", Model: "m1", Spec: "s1", Color: "red", Unit: "pcs",
		Quantity: 1, Status: status, Timestamp: time.Now().UTC(),
	}
}

func TestJournal_CreateListOrder(t *testing.T) {
	db := openTestDB(t)
	repo := NewJournalRepository(db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := repo.Create(ctx, makeEntry("alice", journalDomain.StatusPending)); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	entries, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("len = %d", len(entries))
	}
	// newest first
	if entries[0].ID < entries[1].ID || entries[1].ID < entries[2].ID {
		t.Fatalf("not ordered by id desc: %v %v %v", entries[0].ID, entries[1].ID, entries[2].ID)
	}
}

func TestJournal_ListByApplicant(t *testing.T) {
	db := openTestDB(t)
	repo := NewJournalRepository(db)
	ctx := context.Background()

	_ = repo.Create(ctx, makeEntry("alice", journalDomain.StatusPending))
	_ = repo.Create(ctx, makeEntry("bob", journalDomain.StatusPending))
	_ = repo.Create(ctx, makeEntry("alice", journalDomain.StatusApproved))

	mine, err := repo.ListByApplicant(ctx, "alice")
	if err != nil {
		t.Fatalf("ListByApplicant: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("len = %d, want 2", len(mine))
	}
	for _, e := range mine {
		if e.Applicant != "alice" {
			t.Fatalf("leaked entry %+v", e)
		}
	}
}

func TestJournal_PendingQueries(t *testing.T) {
	db := openTestDB(t)
	repo := NewJournalRepository(db)
	ctx := context.Background()

	_ = repo.Create(ctx, makeEntry("alice", journalDomain.StatusPending))
	_ = repo.Create(ctx, makeEntry("alice", journalDomain.StatusApproved))
	_ = repo.Create(ctx, makeEntry("bob", journalDomain.StatusPending))
	_ = repo.Create(ctx, makeEntry("bob", journalDomain.StatusRejected))

	pending, err := repo.ListPending(ctx)
	if err != nil {
		t.Fatalf("ListPending: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("pending = %d, want 2", len(pending))
	}

	n, err := repo.CountPending(ctx)
	if err != nil {
		t.Fatalf("CountPending: %v", err)
	}
	if n != 2 {
		t.Fatalf("count = %d, want 2", n)
	}
}

func TestJournal_StatusUpdatePersists(t *testing.T) {
	db := openTestDB(t)
	repo := NewJournalRepository(db)
	ctx := context.Background()

	e := makeEntry("alice", journalDomain.StatusPending)
	if err := repo.Create(ctx, e); err != nil {
		t.Fatalf("Create: %v", err)
	}

	e.Status = journalDomain.StatusApproved
	e.Location = "shelf-a"
	if err := repo.Save(ctx, e); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByID(ctx, e.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != journalDomain.StatusApproved || got.Location != "shelf-a" {
		t.Fatalf("got %+v", got)
	}
}

func TestJournal_DeleteAll(t *testing.T) {
	db := openTestDB(t)
	repo := NewJournalRepository(db)
	ctx := context.Background()

	_ = repo.Create(ctx, makeEntry("alice", journalDomain.StatusPending))
	_ = repo.Create(ctx, makeEntry("bob", journalDomain.StatusDone))

	if err := repo.DeleteAll(ctx); err != nil {
		t.Fatalf("DeleteAll: %v", err)
	}
	entries, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("entries = %d after purge", len(entries))
	}
}
