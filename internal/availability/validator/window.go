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

type WindowValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewWindowValidator(log *logger.Logger) *WindowValidator {
	v := validator.New()

	if err := validation.RegisterDomainFormats(v); err != nil {
		log.Fatal("Failed to register domain format validators", "error", err)
	}

	return &WindowValidator{
		validate: v,
		logger:   log,
	}
}

func (v *WindowValidator) Validate(window *model.OperatingWindow) error {
	if err := v.validate.Struct(window); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}

	// Exactly one of DayOfWeek and Date anchors the window.
	if (window.DayOfWeek == "") == (window.Date == "") {
		return ValidationErrors{
			ValidationError{
				Field:   "DayOfWeek",
				Message: "exactly one of day_of_week and date must be set",
			},
		}
	}

	// HH:MM strings order correctly byte-wise, so a plain compare is
	// enough once both clocks passed the format check.
	if window.EndClock <= window.StartClock {
		return ValidationErrors{
			ValidationError{
				Field:   "EndClock",
				Message: "EndClock must be after StartClock",
			},
		}
	}

	return nil
}

func (v *WindowValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", err.Field(), err.Param())
		case "booking_date":
			message = fmt.Sprintf("%s must be a YYYY-MM-DD calendar date", err.Field())
		case "clock":
			message = fmt.Sprintf("%s must be a HH:MM wall clock", err.Field())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
