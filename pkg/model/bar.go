package model

import "time"

type Bar struct {
	ID              string    `json:"id,omitempty" bson:"_id,omitempty"`
	Name            string    `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Address         string    `json:"address" bson:"address" validate:"required,min=2,max=200"`
	City            string    `json:"city" bson:"city" validate:"required,min=2,max=50"`
	ContactPhone    string    `json:"contact_phone,omitempty" bson:"contact_phone,omitempty" validate:"omitempty,e164"`
	DiscountPercent float64   `json:"discount_percent" bson:"discount_percent" validate:"min=0,max=100"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
}

type BarUpdate struct {
	Name            string   `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Address         string   `json:"address,omitempty" validate:"omitempty,min=2,max=200"`
	City            string   `json:"city,omitempty" validate:"omitempty,min=2,max=50"`
	ContactPhone    string   `json:"contact_phone,omitempty" validate:"omitempty,e164"`
	DiscountPercent *float64 `json:"discount_percent,omitempty" validate:"omitempty,min=0,max=100"`
}
