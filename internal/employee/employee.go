package employee

import (
	"time"

	employeeDatamodel "github.com/gestionat/hr-management/internal/core/datamodel/employee"
)

// Employee is the joined person+employee view every read operation returns.
type Employee struct {
	DNI               string    `json:"dni"`
	Department        string    `json:"department"`
	HireDate          time.Time `json:"hire_date"`
	MaxVacationDays   int       `json:"max_vacation_days"`
	AssignedProjectID *int64    `json:"assigned_project_id"`
	Username          string    `json:"username"`
	Name              string    `json:"name"`
	Surname           string    `json:"surname"`
	Phone             string    `json:"phone"`
	Address           string    `json:"address"`
	Email             string    `json:"email"`
	Birthdate         time.Time `json:"birthdate"`
}

func FromDataModel(e *employeeDatamodel.EmployeeWithPerson) *Employee {
	return &Employee{
		DNI:               e.DNI,
		Department:        e.Department,
		HireDate:          e.HireDate,
		MaxVacationDays:   e.MaxVacationDays,
		AssignedProjectID: e.AssignedProjectID,
		Username:          e.Username,
		Name:              e.Name,
		Surname:           e.Surname,
		Phone:             e.Phone,
		Address:           e.Address,
		Email:             e.Email,
		Birthdate:         e.Birthdate,
	}
}

func FromDataModelSlice(rows []*employeeDatamodel.EmployeeWithPerson) []*Employee {
	result := make([]*Employee, len(rows))
	for i, e := range rows {
		result[i] = FromDataModel(e)
	}
	return result
}
