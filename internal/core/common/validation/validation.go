package validation

import (
	"fmt"
	"time"

	errors "github.com/gestionat/hr-management/internal"
)

type ValidatorFunc func(interface{}) *errors.AppError

type FieldValidator struct {
	FieldName  string
	Value      interface{}
	Validators []ValidatorFunc
}

type ValidationBuilder struct {
	fields []FieldValidator
}

func NewValidator() *ValidationBuilder {
	return &ValidationBuilder{
		fields: make([]FieldValidator, 0),
	}
}

func (v *ValidationBuilder) Field(name string, value interface{}) *FieldValidator {
	fv := FieldValidator{
		FieldName:  name,
		Value:      value,
		Validators: make([]ValidatorFunc, 0),
	}
	v.fields = append(v.fields, fv)
	return &v.fields[len(v.fields)-1]
}

// Required fails when the value is absent. Pointer kinds cover the JSON
// payloads where missing and zero must be told apart.
func (fv *FieldValidator) Required() *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) *errors.AppError {
		missing := false
		switch v := value.(type) {
		case string:
			missing = v == ""
		case *string:
			missing = v == nil
		case *int:
			missing = v == nil
		case *int64:
			missing = v == nil
		case *float64:
			missing = v == nil
		case *bool:
			missing = v == nil
		case time.Time:
			missing = v.IsZero()
		case nil:
			missing = true
		}
		if missing {
			return errors.NewValidationFieldError(fv.FieldName,
				fmt.Sprintf("missing field %s", fv.FieldName), errors.ErrCodeMissingField)
		}
		return nil
	})
	return fv
}

func (fv *FieldValidator) MinInt(min int64) *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) *errors.AppError {
		var v int64
		switch t := value.(type) {
		case int64:
			v = t
		case *int64:
			if t == nil {
				return nil
			}
			v = *t
		case *int:
			if t == nil {
				return nil
			}
			v = int64(*t)
		default:
			return nil
		}
		if v < min {
			message := fmt.Sprintf("%s must be at least %d", fv.FieldName, min)
			return errors.NewValidationFieldError(fv.FieldName, message, errors.ErrCodeValidationFailed)
		}
		return nil
	})
	return fv
}

func (fv *FieldValidator) MaxLength(max int) *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) *errors.AppError {
		if v, ok := value.(string); ok {
			if len(v) > max {
				message := fmt.Sprintf("%s must not exceed %d characters", fv.FieldName, max)
				return errors.NewValidationFieldError(fv.FieldName, message, errors.ErrCodeValidationFailed)
			}
		}
		return nil
	})
	return fv
}

func (fv *FieldValidator) Custom(validator func(interface{}) *errors.AppError) *FieldValidator {
	fv.Validators = append(fv.Validators, validator)
	return fv
}

// Validate runs every rule and collects field-level failures into one
// AppError so the response can name each missing or invalid field.
func (v *ValidationBuilder) Validate() *errors.AppError {
	var validationErrors []errors.ValidationError

	for _, field := range v.fields {
		for _, validator := range field.Validators {
			if err := validator(field.Value); err != nil {
				if details, ok := err.Details.(errors.ValidationErrors); ok {
					validationErrors = append(validationErrors, details.Errors...)
				} else {
					validationErrors = append(validationErrors, errors.ValidationError{
						Field:   field.FieldName,
						Message: err.Message,
						Code:    string(err.Code),
					})
				}
			}
		}
	}

	if len(validationErrors) > 0 {
		return errors.NewValidationError("Validation failed", errors.ErrCodeValidationFailed).
			WithDetails(errors.ValidationErrors{Errors: validationErrors})
	}

	return nil
}

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseDate parses date-like payload fields explicitly. Callers used to
// strip a trailing timezone marker off serialized dates; parsing the
// accepted layouts outright replaces that convention.
func ParseDate(field, value string) (time.Time, *errors.AppError) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.NewValidationFieldError(field,
		fmt.Sprintf("%s must be an RFC 3339 timestamp or a YYYY-MM-DD date", field),
		errors.ErrCodeInvalidDate)
}

// ParseOptionalDate is ParseDate for nullable fields; nil maps to zero time.
func ParseOptionalDate(field string, value *string) (*time.Time, *errors.AppError) {
	if value == nil {
		return nil, nil
	}
	t, err := ParseDate(field, *value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
