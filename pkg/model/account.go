package model

import "time"

type AccountRole string

const (
	RoleCustomer AccountRole = "customer"
	RoleStaff    AccountRole = "staff"
	RoleAdmin    AccountRole = "admin"
)

// Account is the resolved caller identity. Staff accounts are scoped to one
// bar; status transitions they request are checked against it.
type Account struct {
	ID        string      `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string      `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Phone     string      `json:"phone,omitempty" bson:"phone,omitempty" validate:"omitempty,e164"`
	Role      AccountRole `json:"role" bson:"role" validate:"required,oneof=customer staff admin"`
	BarID     string      `json:"bar_id,omitempty" bson:"bar_id,omitempty"`
	CreatedAt time.Time   `json:"created_at" bson:"created_at"`
}
