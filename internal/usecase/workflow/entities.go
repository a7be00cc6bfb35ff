package workflow

import (
	"time"

	"warehouse-backend/internal/domain/journal"
)

// Principal is the authenticated identity handed in by the auth
// collaborator; the core trusts it as-is.
type Principal struct {
	Name string
	Role string
}

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

func (p Principal) IsAdmin() bool { return p.Role == RoleAdmin }

// SubmitInput is a stock-in or stock-out request from a regular user.
// Location is ignored for IN (the admin assigns one at approval) and
// required for OUT.
type SubmitInput struct {
	Action   journal.ActionType
	Name     string
	Model    string
	Spec     string
	Color    string
	Unit     string
	Quantity int64
	Location string
	Remark   string
}

// AdminActionInput is an admin-direct IN/OUT that hits inventory
// immediately; location is required for both directions here.
type AdminActionInput struct {
	Action   journal.ActionType
	Name     string
	Model    string
	Spec     string
	Color    string
	Unit     string
	Quantity int64
	Location string
	Remark   string
}

type EntryDTO struct {
	ID         uint64             `json:"id"`
	Applicant  string             `json:"applicant"`
	ActionType journal.ActionType `json:"action_type"`
	Name       string             `json:"name"`
	Model      string             `json:"model"`
	Spec       string             `json:"spec"`
	Color      string             `json:"color"`
	Unit       string             `json:"unit"`
	Quantity   int64              `json:"quantity"`
	Location   string             `json:"location"`
	Remark     string             `json:"remark"`
	Status     journal.Status     `json:"status"`
	Timestamp  time.Time          `json:"timestamp"`
}

func toDTO(e *journal.Entry) *EntryDTO {
	return &EntryDTO{
		ID:         e.ID,
		Applicant:  e.Applicant,
		ActionType: e.ActionType,
		Name:       e.Name,
		Model:      e.Model,
		Spec:       e.Spec,
		Color:      e.Color,
		Unit:       e.Unit,
		Quantity:   e.Quantity,
		Location:   e.Location,
		Remark:     e.Remark,
		Status:     e.Status,
		Timestamp:  e.Timestamp,
	}
}

func toDTOs(es []journal.Entry) []EntryDTO {
	out := make([]EntryDTO, 0, len(es))
	for i := range es {
		out = append(out, *toDTO(&es[i]))
	}
	return out
}
