package bulkedit

import (
	"fmt"
	"strings"
	"time"

	"warehouse-backend/internal/domain/inventory"
	"warehouse-backend/internal/domain/journal"
)

// Row is one line of the proposed replacement table. A nil ID means a
// brand new row; an ID missing from the proposed set means the prior
// row is deleted.
type Row struct {
	ID       *uint64 `json:"id"`
	Name     string  `json:"name"`
	Model    string  `json:"model"`
	Spec     string  `json:"spec"`
	Color    string  `json:"color"`
	Unit     string  `json:"unit"`
	Quantity int64   `json:"quantity"`
	Location string  `json:"location"`
	Remark   string  `json:"remark"`
}

// Plan is everything a full-table replacement amounts to: the row
// mutations plus the journal entries describing them. Computing it is
// pure so it can be tested without a store.
type Plan struct {
	DeleteIDs []uint64
	Inserts   []inventory.Item
	Updates   []inventory.Item
	Entries   []journal.Entry
}

func (p Plan) Empty() bool {
	return len(p.DeleteIDs) == 0 && len(p.Inserts) == 0 && len(p.Updates) == 0 && len(p.Entries) == 0
}

func (r Row) item() inventory.Item {
	it := inventory.Item{
		Name:     r.Name,
		Model:    r.Model,
		Spec:     r.Spec,
		Color:    r.Color,
		Unit:     r.Unit,
		Quantity: r.Quantity,
		Location: r.Location,
		Remark:   r.Remark,
	}
	if r.ID != nil {
		it.ID = *r.ID
	}
	return it
}

// Diff compares the prior snapshot against the proposed replacement and
// produces the resulting plan. Applicant stamps the journal entries,
// now stamps their timestamps.
func Diff(prior []inventory.Item, proposed []Row, applicant string, now time.Time) Plan {
	var plan Plan

	old := make(map[uint64]inventory.Item, len(prior))
	for _, it := range prior {
		old[it.ID] = it
	}
	keep := make(map[uint64]bool, len(proposed))
	for _, r := range proposed {
		if r.ID != nil {
			keep[*r.ID] = true
		}
	}

	// deletions first, in snapshot order so the journal is stable
	for _, it := range prior {
		if keep[it.ID] {
			continue
		}
		plan.DeleteIDs = append(plan.DeleteIDs, it.ID)
		plan.Entries = append(plan.Entries, journal.Entry{
			Applicant:  applicant,
			ActionType: journal.ActionAdminDel,
			Name:       it.Name,
			Model:      it.Model,
			Spec:       it.Spec,
			Color:      it.Color,
			Unit:       it.Unit,
			Quantity:   it.Quantity,
			Location:   it.Location,
			Remark:     fmt.Sprintf("deleted item: %s (location: %s, quantity: %d)", it.Name, it.Location, it.Quantity),
			Status:     journal.StatusDone,
			Timestamp:  now,
		})
	}

	for _, r := range proposed {
		if r.ID == nil {
			it := r.item()
			plan.Inserts = append(plan.Inserts, it)
			// keep the journal readable even when the admin left the
			// name blank; the insert itself is not blocked
			logName := it.Name
			if logName == "" {
				logName = "unknown"
			}
			plan.Entries = append(plan.Entries, journal.Entry{
				Applicant:  applicant,
				ActionType: journal.ActionAdminAdd,
				Name:       logName,
				Model:      it.Model,
				Spec:       it.Spec,
				Color:      it.Color,
				Unit:       it.Unit,
				Quantity:   it.Quantity,
				Location:   it.Location,
				Remark:     fmt.Sprintf("added item: %s (location: %s)", logName, it.Location),
				Status:     journal.StatusDone,
				Timestamp:  now,
			})
			continue
		}

		prev, known := old[*r.ID]
		it := r.item()
		if !known {
			// id the snapshot never had: written through untouched,
			// nothing to journal against
			plan.Updates = append(plan.Updates, it)
			continue
		}

		if prev == it {
			continue
		}
		// the row is rewritten whenever anything differs, but only the
		// four tracked fields are journaled
		plan.Updates = append(plan.Updates, it)
		changes := describeChanges(prev, it)
		if len(changes) == 0 {
			continue
		}
		plan.Entries = append(plan.Entries, journal.Entry{
			Applicant:  applicant,
			ActionType: journal.ActionAdminEdit,
			Name:       it.Name,
			Model:      it.Model,
			Spec:       it.Spec,
			Color:      it.Color,
			Unit:       it.Unit,
			Quantity:   it.Quantity,
			Location:   it.Location,
			Remark:     "admin edit: " + strings.Join(changes, ", "),
			Status:     journal.StatusDone,
			Timestamp:  now,
		})
	}

	return plan
}

// describeChanges enumerates the edited fields. Quantity and location
// show literal old->new values; name and remark are only flagged, their
// values can be arbitrarily long.
func describeChanges(prev, next inventory.Item) []string {
	var changes []string
	if prev.Quantity != next.Quantity {
		changes = append(changes, fmt.Sprintf("quantity %d->%d", prev.Quantity, next.Quantity))
	}
	if prev.Location != next.Location {
		changes = append(changes, fmt.Sprintf("location %s->%s", prev.Location, next.Location))
	}
	if prev.Name != next.Name {
		changes = append(changes, "name changed")
	}
	if prev.Remark != next.Remark {
		changes = append(changes, "remark changed")
	}
	return changes
}
