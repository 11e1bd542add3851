package project

import (
	"context"
	"io"
	"log/slog"

	errors "github.com/gestionat/hr-management/internal"
	"github.com/gestionat/hr-management/internal/auth"
	employeeDatamodel "github.com/gestionat/hr-management/internal/core/datamodel/employee"
	projectDatamodel "github.com/gestionat/hr-management/internal/core/datamodel/project"
	"github.com/gestionat/hr-management/internal/core/events"
)

// Repository defines the data access methods for projects and the
// proposals they are created from.
type Repository interface {
	List() ([]*projectDatamodel.Project, error)
	GetByID(id int64) (*projectDatamodel.Project, error)
	GetProposal(id int64) (*projectDatamodel.Proposal, error)
	// CreateFromProposal runs the project creation sequence in one
	// transaction: approve the proposal if needed, insert the project and
	// reassign both responsible employees to it. The generated project id
	// is set on the row.
	CreateFromProposal(proposal *projectDatamodel.Proposal, row *projectDatamodel.Project) error
	ListEmployees(projectID int64) ([]*employeeDatamodel.EmployeeWithPerson, error)
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

// List is the Commercial-only listing of every project.
func (s *Service) List(caller *auth.Caller) ([]*Project, error) {
	if !auth.CanListProjects(caller) {
		s.logger.Warn("list projects denied", "caller", caller)
		return nil, errors.ErrAccessDenied
	}

	rows, err := s.repo.List()
	if err != nil {
		s.logger.Error("failed to list projects", "error", err)
		return nil, err
	}
	return FromDataModelSlice(rows), nil
}

func (s *Service) Get(caller *auth.Caller, projectID int64) (*Project, error) {
	if !auth.CanViewProject(caller, projectID) {
		s.logger.Warn("get project denied", "caller", caller, "project_id", projectID)
		return nil, errors.ErrAccessDenied
	}

	row, err := s.repo.GetByID(projectID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, errors.ErrProjectNotFound
	}
	return FromDataModel(row), nil
}

// Create builds a project from an approved (or to-be-approved) proposal.
// There is no role gate on this operation: the proposal reference is the
// only gate.
//
// The uploaded workplan lands in the proposal's files directory before the
// transaction runs and is removed again if the transaction fails.
func (s *Service) Create(ctx context.Context, dto *CreateProjectDTO, workplanContent io.Reader) error {
	proposal, err := s.repo.GetProposal(dto.AssociatedProposal)
	if err != nil {
		s.logger.Error("failed to fetch proposal", "error", err, "proposal_id", dto.AssociatedProposal)
		return err
	}
	if proposal == nil {
		return errors.ErrProposalNotFound
	}

	workplan, err := StoreWorkplan(proposal.FilesDir, workplanContent)
	if err != nil {
		s.logger.Error("failed to store workplan", "error", err, "proposal_id", proposal.ID)
		return err
	}
	defer func() {
		if cleanupErr := workplan.Cleanup(); cleanupErr != nil {
			s.logger.Error("failed to remove workplan after rollback",
				"error", cleanupErr, "path", workplan.Path())
		}
	}()

	row := &projectDatamodel.Project{
		Name:               dto.Name,
		Type:               dto.Type,
		StartDate:          dto.StartDate,
		IdealDeliveryDate:  dto.Deadline,
		AvailableHours:     dto.AvailableHours,
		AvailableEmployees: dto.AvailableEmployees,
		Budget:             dto.Budget,
		CommercialManager:  proposal.CommercialEmployeeDNI,
		TechnicalManager:   proposal.TechnicalEmployeeDNI,
		ProposalID:         proposal.ID,
		WorkplanPath:       workplan.Path(),
	}

	if err := s.repo.CreateFromProposal(proposal, row); err != nil {
		s.logger.Error("project creation transaction failed", "error", err, "proposal_id", proposal.ID)
		return err
	}
	workplan.Keep()

	s.bus.Publish(ctx, events.NewProjectCreated(row.ID, proposal.ID))
	s.logger.Info("project created",
		"project_id", row.ID,
		"proposal_id", proposal.ID,
		"commercial_manager", row.CommercialManager,
		"technical_manager", row.TechnicalManager)
	return nil
}

// ListProjectEmployees returns the employees assigned to a project for
// Technical and Commercial callers.
func (s *Service) ListProjectEmployees(caller *auth.Caller, projectID int64) ([]*employeeDatamodel.EmployeeWithPerson, error) {
	if !auth.CanListProjectEmployees(caller) {
		s.logger.Warn("list project employees denied", "caller", caller, "project_id", projectID)
		return nil, errors.ErrAccessDenied
	}

	rows, err := s.repo.ListEmployees(projectID)
	if err != nil {
		s.logger.Error("failed to list project employees", "error", err, "project_id", projectID)
		return nil, err
	}
	return rows, nil
}
