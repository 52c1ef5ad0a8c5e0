package validator

import (
	"errors"
	"fmt"
	"strings"

	"barkeep/pkg/logger"
	"barkeep/pkg/model"

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

type BarValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewBarValidator(log *logger.Logger) *BarValidator {
	return &BarValidator{
		validate: validator.New(),
		logger:   log,
	}
}

func (v *BarValidator) ValidateBar(bar *model.Bar) error {
	return v.translate(v.validate.Struct(bar))
}

func (v *BarValidator) ValidateBarUpdate(update *model.BarUpdate) error {
	return v.translate(v.validate.Struct(update))
}

func (v *BarValidator) ValidateTable(table *model.Table) error {
	return v.translate(v.validate.Struct(table))
}

func (v *BarValidator) ValidateDrink(drink *model.Drink) error {
	return v.translate(v.validate.Struct(drink))
}

func (v *BarValidator) translate(err error) error {
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	var validationErrors ValidationErrors
	for _, fieldErr := range validationErrs {
		message := fieldErr.Error()

		switch fieldErr.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", fieldErr.Field())
		case "min":
			message = fmt.Sprintf("%s must be at least %s", fieldErr.Field(), fieldErr.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s", fieldErr.Field(), fieldErr.Param())
		case "e164":
			message = fmt.Sprintf("%s must be in E.164 format (e.g., +972501234567)", fieldErr.Field())
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", fieldErr.Field(), fieldErr.Param())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   fieldErr.Field(),
			Message: message,
		})
	}

	return validationErrors
}
