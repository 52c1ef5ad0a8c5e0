package model

import "time"

// TableStatus reflects the physical table state; it flips to occupied when a
// booking for the table is confirmed and is reverted by the staff workflow.
type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableOccupied  TableStatus = "occupied"
	TableReserved  TableStatus = "reserved"
)

type Table struct {
	ID        string      `json:"id,omitempty" bson:"_id,omitempty"`
	BarID     string      `json:"bar_id" bson:"bar_id" validate:"required"`
	Label     string      `json:"label" bson:"label" validate:"required,min=1,max=50"`
	TableType string      `json:"table_type" bson:"table_type" validate:"required,min=2,max=50"`
	Capacity  int         `json:"capacity" bson:"capacity" validate:"required,min=1,max=50"`
	BasePrice float64     `json:"base_price" bson:"base_price" validate:"min=0"`
	Status    TableStatus `json:"status" bson:"status" validate:"omitempty,oneof=available occupied reserved"`
	CreatedAt time.Time   `json:"created_at" bson:"created_at"`
}

type Drink struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty"`
	BarID     string    `json:"bar_id" bson:"bar_id" validate:"required"`
	Name      string    `json:"name" bson:"name" validate:"required,min=1,max=100"`
	UnitPrice float64   `json:"unit_price" bson:"unit_price" validate:"min=0"`
	InStock   bool      `json:"in_stock" bson:"in_stock"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
