package vacation

import (
	"context"
	"log/slog"

	errors "github.com/gestionat/hr-management/internal"
	"github.com/gestionat/hr-management/internal/auth"
	vacationDatamodel "github.com/gestionat/hr-management/internal/core/datamodel/vacation"
	"github.com/gestionat/hr-management/internal/core/events"
)

// Repository defines the data access methods for vacation requests.
type Repository interface {
	ListAll() ([]*vacationDatamodel.VacationRequest, error)
	ListByEmployee(dni string) ([]*vacationDatamodel.VacationRequest, error)
	Create(request *vacationDatamodel.VacationRequest) error
	// Update applies only the supplied column assignments.
	Update(id int64, changes map[string]interface{}) error
}

type Service struct {
	repo   Repository
	bus    *events.EventBus
	logger *slog.Logger
}

func NewService(repo Repository, bus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		bus:    bus,
		logger: logger,
	}
}

// ListAll is the HR-only view over every request.
func (s *Service) ListAll(caller *auth.Caller) ([]*VacationRequest, error) {
	if !auth.CanListAllVacations(caller) {
		s.logger.Warn("list vacations denied", "caller", caller)
		return nil, errors.ErrAccessDenied
	}

	rows, err := s.repo.ListAll()
	if err != nil {
		s.logger.Error("failed to list vacation requests", "error", err)
		return nil, err
	}
	return FromDataModelSlice(rows), nil
}

func (s *Service) ListForEmployee(caller *auth.Caller, employeeDNI string) ([]*VacationRequest, error) {
	if !auth.CanListEmployeeVacations(caller, employeeDNI) {
		s.logger.Warn("list employee vacations denied", "caller", caller, "employee_dni", employeeDNI)
		return nil, errors.ErrAccessDenied
	}

	rows, err := s.repo.ListByEmployee(employeeDNI)
	if err != nil {
		s.logger.Error("failed to list employee vacation requests", "error", err, "employee_dni", employeeDNI)
		return nil, err
	}
	return FromDataModelSlice(rows), nil
}

// Create is self-service: the caller can only file for their own dni.
func (s *Service) Create(ctx context.Context, caller *auth.Caller, employeeDNI string, dto *CreateVacationDTO) error {
	if !auth.CanCreateVacation(caller, employeeDNI) {
		s.logger.Warn("create vacation denied", "caller", caller, "employee_dni", employeeDNI)
		return errors.ErrAccessDenied
	}

	if err := dto.Validate(); err != nil {
		s.logger.Warn("create vacation validation failed", "error", err)
		return err
	}

	row := &vacationDatamodel.VacationRequest{
		EmployeeDNI:   employeeDNI,
		RequestedDays: *dto.RequestedDays,
		State:         *dto.State,
		StartDate:     dto.StartDate(),
	}

	if err := s.repo.Create(row); err != nil {
		s.logger.Error("create vacation request failed", "error", err, "employee_dni", employeeDNI)
		return err
	}

	s.bus.Publish(ctx, events.NewVacationRequested(employeeDNI, row.RequestedDays))
	s.logger.Info("vacation request created", "vacation_id", row.ID, "employee_dni", employeeDNI)
	return nil
}

// Patch updates only the supplied fields; HR only. An empty patch succeeds
// without touching the store.
func (s *Service) Patch(ctx context.Context, caller *auth.Caller, vacationID int64, dto *PatchVacationDTO) error {
	if !auth.CanPatchVacation(caller) {
		s.logger.Warn("patch vacation denied", "caller", caller, "vacation_id", vacationID)
		return errors.ErrAccessDenied
	}

	if dto.Empty() {
		// NO OP
		return nil
	}

	if err := s.repo.Update(vacationID, dto.Changes()); err != nil {
		s.logger.Error("patch vacation request failed", "error", err, "vacation_id", vacationID)
		return err
	}

	s.bus.Publish(ctx, events.NewVacationUpdated(vacationID))
	s.logger.Info("vacation request updated", "vacation_id", vacationID)
	return nil
}
