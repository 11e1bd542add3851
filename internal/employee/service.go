package employee

import (
	"context"
	"log/slog"

	errors "github.com/gestionat/hr-management/internal"
	"github.com/gestionat/hr-management/internal/auth"
	employeeDatamodel "github.com/gestionat/hr-management/internal/core/datamodel/employee"
	"github.com/gestionat/hr-management/internal/core/events"
)

// Repository defines the data access methods for employees.
type Repository interface {
	List(onProject *bool) ([]*employeeDatamodel.EmployeeWithPerson, error)
	GetByDNI(dni string) (*employeeDatamodel.EmployeeWithPerson, error)
	// CreateEmployee inserts the person, credential and employee rows in
	// that order inside one transaction.
	CreateEmployee(person *employeeDatamodel.Person, credential *employeeDatamodel.Credential, emp *employeeDatamodel.Employee) error
}

type Service struct {
	repo       Repository
	bus        *events.EventBus
	bcryptCost int
	logger     *slog.Logger
}

func NewService(repo Repository, bus *events.EventBus, bcryptCost int, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		bus:        bus,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// List returns employees, optionally filtered to those with (or without) an
// assigned project. Allowed for Commercial, HR and Technical callers.
func (s *Service) List(caller *auth.Caller, onProject *bool) ([]*Employee, error) {
	if !auth.CanListEmployees(caller) {
		s.logger.Warn("list employees denied", "caller", caller)
		return nil, errors.ErrAccessDenied
	}

	rows, err := s.repo.List(onProject)
	if err != nil {
		s.logger.Error("failed to list employees", "error", err)
		return nil, err
	}
	return FromDataModelSlice(rows), nil
}

func (s *Service) Get(caller *auth.Caller, dni string) (*Employee, error) {
	if !auth.CanViewEmployee(caller) {
		s.logger.Warn("get employee denied", "caller", caller, "dni", dni)
		return nil, errors.ErrAccessDenied
	}

	row, err := s.repo.GetByDNI(dni)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, errors.ErrEmployeeNotFound
	}
	return FromDataModel(row), nil
}

// Create runs the three-insert sequence: person, credential, employee. HR
// only. All three rows persist or none do.
func (s *Service) Create(ctx context.Context, caller *auth.Caller, dto *CreateEmployeeDTO) error {
	if !auth.CanCreateEmployee(caller) {
		s.logger.Warn("create employee denied", "caller", caller)
		return errors.ErrAccessDenied
	}

	if err := dto.Validate(); err != nil {
		s.logger.Warn("create employee validation failed", "error", err)
		return err
	}

	passwordHash, err := auth.HashPassword(dto.Password, s.bcryptCost)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return err
	}

	person := &employeeDatamodel.Person{
		DNI:       dto.Person.DNI,
		Name:      dto.Person.Name,
		Surname:   dto.Person.Surname,
		Phone:     dto.Person.Phone,
		Address:   dto.Person.Address,
		Email:     dto.Person.Email,
		Birthdate: dto.Birthdate(),
	}
	credential := &employeeDatamodel.Credential{
		Username:     dto.Username,
		PasswordHash: passwordHash,
	}
	emp := &employeeDatamodel.Employee{
		DNI:             dto.Person.DNI,
		Department:      dto.Department,
		HireDate:        dto.HireDate(),
		MaxVacationDays: *dto.AllowedHolidays,
		Username:        dto.Username,
	}

	if err := s.repo.CreateEmployee(person, credential, emp); err != nil {
		s.logger.Error("create employee transaction failed", "error", err, "dni", person.DNI)
		return err
	}

	s.bus.Publish(ctx, events.NewEmployeeCreated(emp.DNI, emp.Department))
	s.logger.Info("employee created", "dni", emp.DNI, "department", emp.Department)
	return nil
}
