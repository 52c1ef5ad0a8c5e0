package validator

import (
	"errors"
	"fmt"
	"strings"

	"barkeep/pkg/logger"
	"barkeep/pkg/model"
	"barkeep/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

type BookingValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewBookingValidator(log *logger.Logger) *BookingValidator {
	v := validator.New()

	if err := validation.RegisterDomainFormats(v); err != nil {
		log.Fatal("Failed to register domain format validators", "error", err)
	}

	return &BookingValidator{
		validate: v,
		logger:   log,
	}
}

func (v *BookingValidator) ValidateRequest(req *model.BookingRequest) error {
	if err := v.validate.Struct(req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}
	return nil
}

func (v *BookingValidator) ValidateStatusUpdate(update *model.StatusUpdate) error {
	var errs ValidationErrors

	if !update.Status.Valid() {
		errs = append(errs, ValidationError{
			Field:   "Status",
			Message: "Status must be one of: 0 (pending), 1 (cancelled), 2 (confirmed), 3 (completed)",
		})
	}
	if update.AdditionalFee < 0 {
		errs = append(errs, ValidationError{
			Field:   "AdditionalFee",
			Message: "AdditionalFee cannot be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (v *BookingValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "booking_date":
			message = fmt.Sprintf("%s must be a YYYY-MM-DD calendar date", err.Field())
		case "clock":
			message = fmt.Sprintf("%s must be a HH:MM time of day", err.Field())
		case "min":
			message = fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
