package export

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"

	"warehouse-backend/internal/domain/journal"
)

// utf8BOM lets Excel pick up the encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var csvHeader = []string{
	"ID", "Applicant", "Action", "Item Name", "Model", "Spec", "Color",
	"Unit", "Quantity", "Location", "Remark", "Status", "Submitted At",
}

var actionLabels = map[journal.ActionType]string{
	journal.ActionIn:        "stock in",
	journal.ActionOut:       "stock out",
	journal.ActionAdminEdit: "admin edit",
	journal.ActionAdminAdd:  "admin add",
	journal.ActionAdminDel:  "admin delete",
}

var statusLabels = map[journal.Status]string{
	journal.StatusPending:  "pending",
	journal.StatusApproved: "approved",
	journal.StatusRejected: "rejected",
	journal.StatusDone:     "done",
}

func label[K comparable](m map[K]string, k K, raw string) string {
	if v, ok := m[k]; ok {
		return v
	}
	return raw
}

type Usecase struct {
	entryRepo journal.Repository
}

func NewUsecase(entries journal.Repository) *Usecase {
	return &Usecase{entryRepo: entries}
}

// WriteCSV streams the full journal as a UTF-8 CSV with a BOM and
// display labels for action and status.
func (u *Usecase) WriteCSV(ctx context.Context, w io.Writer) error {
	entries, err := u.entryRepo.List(ctx)
	if err != nil {
		return err
	}

	if _, err := w.Write(utf8BOM); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, e := range entries {
		record := []string{
			strconv.FormatUint(e.ID, 10),
			e.Applicant,
			label(actionLabels, e.ActionType, string(e.ActionType)),
			e.Name,
			e.Model,
			e.Spec,
			e.Color,
			e.Unit,
			strconv.FormatInt(e.Quantity, 10),
			e.Location,
			e.Remark,
			label(statusLabels, e.Status, string(e.Status)),
			e.Timestamp.Format("2006-01-02 15:04:05"),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
