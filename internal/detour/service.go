package detour

import (
	"context"
	"log/slog"
	"time"

	errors "github.com/gestionat/hr-management/internal"
	"github.com/gestionat/hr-management/internal/auth"
	projectDatamodel "github.com/gestionat/hr-management/internal/core/datamodel/project"
	"github.com/gestionat/hr-management/internal/core/events"
)

// Repository defines the data access methods for project detours.
type Repository interface {
	ListByProject(projectID int64) ([]*projectDatamodel.Detour, error)
	Create(detour *projectDatamodel.Detour) error
}

type Service struct {
	repo   Repository
	bus    *events.EventBus
	logger *slog.Logger
	now    func() time.Time
}

func NewService(repo Repository, bus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		bus:    bus,
		logger: logger,
		now:    time.Now,
	}
}

// ListForProject shares the project-view rule: Commercial for any project,
// Technical only for their own.
func (s *Service) ListForProject(caller *auth.Caller, projectID int64) ([]*Detour, error) {
	if !auth.CanViewProject(caller, projectID) {
		s.logger.Warn("list detours denied", "caller", caller, "project_id", projectID)
		return nil, errors.ErrAccessDenied
	}

	rows, err := s.repo.ListByProject(projectID)
	if err != nil {
		s.logger.Error("failed to list detours", "error", err, "project_id", projectID)
		return nil, err
	}
	return FromDataModelSlice(rows), nil
}

// Create records a detour; only the Technical employee assigned to the
// project may do so.
func (s *Service) Create(ctx context.Context, caller *auth.Caller, projectID int64, dto *CreateDetourDTO) error {
	if !auth.CanCreateDetour(caller, projectID) {
		s.logger.Warn("create detour denied", "caller", caller, "project_id", projectID)
		return errors.ErrAccessDenied
	}

	if err := dto.Validate(s.now()); err != nil {
		s.logger.Warn("create detour validation failed", "error", err)
		return err
	}

	row := &projectDatamodel.Detour{
		Name:         dto.Name,
		OccurredAt:   dto.OccurredAt(),
		EmployeeCost: *dto.EmployeeCost,
		HourCost:     *dto.HourCost,
		BudgetCost:   *dto.BudgetCost,
		NewDeadline:  dto.ParsedDeadline(),
		ProjectID:    projectID,
		Detail:       dto.Detail,
	}

	if err := s.repo.Create(row); err != nil {
		s.logger.Error("create detour failed", "error", err, "project_id", projectID)
		return err
	}

	s.bus.Publish(ctx, events.NewDetourRecorded(projectID, row.Name))
	s.logger.Info("detour recorded", "detour_id", row.ID, "project_id", projectID)
	return nil
}
