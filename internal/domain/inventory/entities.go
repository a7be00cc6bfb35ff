package inventory

import (
	"errors"
)

var (
	ErrNotFound          = errors.New("inventory item not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Item is one physical stock line. A row only exists while quantity > 0;
// driving quantity to zero removes the row instead of keeping it.
type Item struct {
	ID       uint64 `gorm:"primaryKey;column:id" json:"id"`
	Name     string `gorm:"size:128;not null;index:idx_inventory_key,priority:1" json:"name"`
	Model    string `gorm:"size:128;index:idx_inventory_key,priority:2" json:"model"`
	Spec     string `gorm:"size:128;index:idx_inventory_key,priority:3" json:"spec"`
	Color    string `gorm:"size:64;index:idx_inventory_key,priority:4" json:"color"`
	Unit     string `gorm:"size:32" json:"unit"`
	Quantity int64  `gorm:"not null" json:"quantity"`
	Location string `gorm:"size:64;index:idx_inventory_key,priority:5" json:"location"`
	Remark   string `gorm:"type:text" json:"remark"`
}

func (Item) TableName() string { return "inventory" }

// Key is the natural key rows are matched on. Unit is deliberately not
// part of it: two units colliding on the same key merge and keep the
// last-written unit.
type Key struct {
	Name     string
	Model    string
	Spec     string
	Color    string
	Location string
}

func (i Item) Key() Key {
	return Key{Name: i.Name, Model: i.Model, Spec: i.Spec, Color: i.Color, Location: i.Location}
}
