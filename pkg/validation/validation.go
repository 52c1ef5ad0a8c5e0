// Package validation registers the custom struct-tag formats shared by
// every service validator: calendar dates and wall clocks carried as
// strings on the wire.
package validation

import (
	"barkeep/pkg/model"

	"github.com/go-playground/validator/v10"
)

// RegisterDomainFormats installs the booking_date and clock tags.
// booking_date accepts YYYY-MM-DD; clock accepts HH:MM, zero-padded so
// byte-wise comparison orders values correctly.
func RegisterDomainFormats(v *validator.Validate) error {
	if err := v.RegisterValidation("booking_date", validBookingDate); err != nil {
		return err
	}
	return v.RegisterValidation("clock", validClock)
}

func validBookingDate(fl validator.FieldLevel) bool {
	_, err := model.ParseDate(fl.Field().String())
	return err == nil
}

func validClock(fl validator.FieldLevel) bool {
	clock := fl.Field().String()
	if len(clock) != 5 {
		return false
	}
	_, err := model.ParseClock(clock)
	return err == nil
}
