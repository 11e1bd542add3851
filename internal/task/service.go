package task

import (
	"context"
	"log/slog"

	errors "github.com/gestionat/hr-management/internal"
	"github.com/gestionat/hr-management/internal/auth"
	taskDatamodel "github.com/gestionat/hr-management/internal/core/datamodel/task"
	"github.com/gestionat/hr-management/internal/core/events"
)

// Repository defines the data access methods for tasks.
type Repository interface {
	ListByEmployee(dni string, projectID *int64, completedOnly bool) ([]*taskDatamodel.Task, error)
	ListByProject(projectID int64) ([]*taskDatamodel.Task, error)
	Create(task *taskDatamodel.Task) error
	// AssignedProject resolves the employee's current project; the bool
	// reports whether the employee has one at all.
	AssignedProject(dni string) (int64, bool, error)
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

// ListForEmployee returns an employee's tasks. Technical callers may list
// anyone's; Development callers only their own. With the current-project
// filter on, an employee without an assigned project yields the empty
// no-content result instead of an empty list.
func (s *Service) ListForEmployee(caller *auth.Caller, employeeDNI string, filter ListTasksFilter) ([]*Task, error) {
	if !auth.CanListEmployeeTasks(caller, employeeDNI) {
		s.logger.Warn("list tasks denied", "caller", caller, "employee_dni", employeeDNI)
		return nil, errors.ErrAccessDenied
	}

	var projectFilter *int64
	if filter.FromCurrentProjectOnly {
		projectID, assigned, err := s.repo.AssignedProject(employeeDNI)
		if err != nil {
			s.logger.Error("failed to resolve assigned project", "error", err, "employee_dni", employeeDNI)
			return nil, err
		}
		if !assigned {
			return nil, errors.ErrNoAssignedProject
		}
		projectFilter = &projectID
	}

	rows, err := s.repo.ListByEmployee(employeeDNI, projectFilter, filter.CompletedOnly)
	if err != nil {
		s.logger.Error("failed to list tasks", "error", err, "employee_dni", employeeDNI)
		return nil, err
	}
	return FromDataModelSlice(rows), nil
}

// ListForProject returns a project's tasks for the Technical employee
// assigned to it.
func (s *Service) ListForProject(caller *auth.Caller, projectID int64) ([]*Task, error) {
	if !auth.CanListProjectTasks(caller, projectID) {
		s.logger.Warn("list project tasks denied", "caller", caller, "project_id", projectID)
		return nil, errors.ErrAccessDenied
	}

	rows, err := s.repo.ListByProject(projectID)
	if err != nil {
		s.logger.Error("failed to list project tasks", "error", err, "project_id", projectID)
		return nil, err
	}
	return FromDataModelSlice(rows), nil
}

// Create inserts a task for an employee. The role check runs first; the
// project-match check runs after validation so a defaulted project is
// covered too.
func (s *Service) Create(ctx context.Context, caller *auth.Caller, employeeDNI string, dto *CreateTaskDTO) error {
	if !auth.CanCreateTask(caller) {
		s.logger.Warn("create task denied", "caller", caller)
		return errors.ErrAccessDenied
	}

	dto.ApplyDefaults(caller)
	if err := dto.Validate(); err != nil {
		s.logger.Warn("create task validation failed", "error", err)
		return err
	}

	if !auth.TaskProjectMatchesCaller(caller, *dto.ProjectID) {
		s.logger.Warn("create task denied: project mismatch",
			"caller", caller, "project_id", *dto.ProjectID)
		return errors.NewForbiddenError("task project does not match caller's assignment",
			errors.ErrCodeProjectMismatch)
	}

	row := &taskDatamodel.Task{
		Name:                dto.Name,
		EmployeeDNI:         employeeDNI,
		ProjectID:           *dto.ProjectID,
		Hours:               *dto.Hours,
		Completed:           *dto.Completed,
		CompletedByEmployee: *dto.Completed,
		Description:         dto.Description,
	}

	if err := s.repo.Create(row); err != nil {
		s.logger.Error("create task failed", "error", err, "employee_dni", employeeDNI)
		return err
	}

	s.bus.Publish(ctx, events.NewTaskCreated(employeeDNI, row.ProjectID))
	s.logger.Info("task created", "task_id", row.ID, "employee_dni", employeeDNI, "project_id", row.ProjectID)
	return nil
}
