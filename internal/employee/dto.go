package employee

import (
	"time"

	errors "github.com/gestionat/hr-management/internal"
	"github.com/gestionat/hr-management/internal/auth"
	"github.com/gestionat/hr-management/internal/core/common/validation"
)

// PersonDTO is the nested person sub-record on employee creation.
type PersonDTO struct {
	DNI       string `json:"dni"`
	Name      string `json:"name"`
	Surname   string `json:"surname"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Email     string `json:"email"`
	Birthdate string `json:"birthdate"`
}

type CreateEmployeeDTO struct {
	Person          *PersonDTO `json:"person"`
	Department      string     `json:"department"`
	AllowedHolidays *int       `json:"allowedHolidays"`
	Username        string     `json:"username"`
	Password        string     `json:"password"`
	DateHired       string     `json:"dateHired"`

	birthdate time.Time
	dateHired time.Time
}

// Validate checks every required field before any write begins, naming the
// missing field in the failure. Date fields are parsed here so the service
// works with time values only.
func (dto *CreateEmployeeDTO) Validate() *errors.AppError {
	if dto.Person == nil {
		return errors.NewValidationFieldError("person",
			"missing or invalid field person", errors.ErrCodeMissingField)
	}

	v := validation.NewValidator()
	v.Field("dni", dto.Person.DNI).Required()
	v.Field("name", dto.Person.Name).Required()
	v.Field("surname", dto.Person.Surname).Required()
	v.Field("phone", dto.Person.Phone).Required()
	v.Field("address", dto.Person.Address).Required()
	v.Field("email", dto.Person.Email).Required()
	v.Field("birthdate", dto.Person.Birthdate).Required()
	v.Field("department", dto.Department).Required().Custom(func(interface{}) *errors.AppError {
		if dto.Department == "" {
			return nil
		}
		if _, err := auth.ParseRole(dto.Department); err != nil {
			return errors.NewValidationFieldError("department",
				"department must be one of Comercial, RRHH, Tecnica, Desarrollo",
				errors.ErrCodeInvalidRole)
		}
		return nil
	})
	v.Field("allowedHolidays", dto.AllowedHolidays).Required().MinInt(0)
	v.Field("username", dto.Username).Required()
	v.Field("password", dto.Password).Required()
	v.Field("dateHired", dto.DateHired).Required()
	if err := v.Validate(); err != nil {
		return err
	}

	birthdate, err := validation.ParseDate("birthdate", dto.Person.Birthdate)
	if err != nil {
		return err
	}
	dateHired, err := validation.ParseDate("dateHired", dto.DateHired)
	if err != nil {
		return err
	}

	dto.birthdate = birthdate
	dto.dateHired = dateHired
	return nil
}

func (dto *CreateEmployeeDTO) Birthdate() time.Time { return dto.birthdate }
func (dto *CreateEmployeeDTO) HireDate() time.Time  { return dto.dateHired }
