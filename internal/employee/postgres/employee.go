package postgres

import (
	employeeDatamodel "github.com/gestionat/hr-management/internal/core/datamodel/employee"
	"github.com/gestionat/hr-management/internal/employee"
	"gorm.io/gorm"
)

// EmployeeRepository implements employee.Repository using GORM.
type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) employee.Repository {
	return &EmployeeRepository{db: db}
}

const joinedColumns = `employees.dni, employees.department, employees.hire_date,
	employees.max_vacation_days, employees.assigned_project_id, employees.username,
	people.name, people.surname, people.phone, people.address, people.email, people.birthdate`

func (r *EmployeeRepository) List(onProject *bool) ([]*employeeDatamodel.EmployeeWithPerson, error) {
	query := r.db.Table("employees").
		Select(joinedColumns).
		Joins("JOIN people ON people.dni = employees.dni")

	if onProject != nil {
		if *onProject {
			query = query.Where("employees.assigned_project_id IS NOT NULL")
		} else {
			query = query.Where("employees.assigned_project_id IS NULL")
		}
	}

	var rows []*employeeDatamodel.EmployeeWithPerson
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetByDNI returns nil with no error when the employee does not exist; the
// service maps that to the not-found response.
func (r *EmployeeRepository) GetByDNI(dni string) (*employeeDatamodel.EmployeeWithPerson, error) {
	var rows []*employeeDatamodel.EmployeeWithPerson
	err := r.db.Table("employees").
		Select(joinedColumns).
		Joins("JOIN people ON people.dni = employees.dni").
		Where("employees.dni = ?", dni).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// CreateEmployee inserts person, credential and employee rows in that order.
// The credential row must exist before the employee row references it.
func (r *EmployeeRepository) CreateEmployee(person *employeeDatamodel.Person, credential *employeeDatamodel.Credential, emp *employeeDatamodel.Employee) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(person).Error; err != nil {
			return err
		}
		if err := tx.Create(credential).Error; err != nil {
			return err
		}
		return tx.Create(emp).Error
	})
}
