package journal

import (
	"errors"
	"time"
)

var (
	ErrNotFound          = errors.New("log entry not found")
	ErrInvalidTransition = errors.New("invalid status transition")
)

type ActionType string

const (
	ActionIn        ActionType = "IN"
	ActionOut       ActionType = "OUT"
	ActionAdminEdit ActionType = "ADMIN_EDIT"
	ActionAdminAdd  ActionType = "ADMIN_ADD"
	ActionAdminDel  ActionType = "ADMIN_DEL"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
	StatusDone     Status = "DONE"
)

// Entry is one journal row. Immutable once written except for Status
// and, on approval of an IN request, Location.
type Entry struct {
	ID         uint64     `gorm:"primaryKey;column:id" json:"id"`
	Applicant  string     `gorm:"size:64;index:idx_logs_applicant" json:"applicant"`
	ActionType ActionType `gorm:"size:16;column:action_type" json:"action_type"`
	Name       string     `gorm:"size:128" json:"name"`
	Model      string     `gorm:"size:128" json:"model"`
	Spec       string     `gorm:"size:128" json:"spec"`
	Color      string     `gorm:"size:64" json:"color"`
	Unit       string     `gorm:"size:32" json:"unit"`
	Quantity   int64      `json:"quantity"`
	Location   string     `gorm:"size:64" json:"location"`
	Remark     string     `gorm:"type:text" json:"remark"`
	Status     Status     `gorm:"size:16;index:idx_logs_status" json:"status"`
	Timestamp  time.Time  `gorm:"column:timestamp" json:"timestamp"`
}

func (Entry) TableName() string { return "logs" }
