package postgres

import (
	employeeDatamodel "github.com/gestionat/hr-management/internal/core/datamodel/employee"
	projectDatamodel "github.com/gestionat/hr-management/internal/core/datamodel/project"
	"github.com/gestionat/hr-management/internal/project"
	"gorm.io/gorm"
)

// ProjectRepository implements project.Repository using GORM.
type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) project.Repository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) List() ([]*projectDatamodel.Project, error) {
	var projects []*projectDatamodel.Project
	if err := r.db.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepository) GetByID(id int64) (*projectDatamodel.Project, error) {
	var row projectDatamodel.Project
	err := r.db.Where("id = ?", id).First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *ProjectRepository) GetProposal(id int64) (*projectDatamodel.Proposal, error) {
	var row projectDatamodel.Proposal
	err := r.db.Where("id = ?", id).First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// CreateFromProposal runs the write sequence in one transaction: approve
// the proposal when it is not already, insert the project, then point both
// responsible employees at the generated project id. Any failure rolls the
// whole sequence back, the proposal state change included.
func (r *ProjectRepository) CreateFromProposal(proposal *projectDatamodel.Proposal, row *projectDatamodel.Project) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if proposal.State != projectDatamodel.ProposalStateApproved {
			err := tx.Model(&projectDatamodel.Proposal{}).
				Where("id = ?", proposal.ID).
				Update("state", projectDatamodel.ProposalStateApproved).Error
			if err != nil {
				return err
			}
		}

		if err := tx.Create(row).Error; err != nil {
			return err
		}

		return tx.Model(&employeeDatamodel.Employee{}).
			Where("dni IN ?", []string{proposal.TechnicalEmployeeDNI, proposal.CommercialEmployeeDNI}).
			Update("assigned_project_id", row.ID).Error
	})
}

func (r *ProjectRepository) ListEmployees(projectID int64) ([]*employeeDatamodel.EmployeeWithPerson, error) {
	var rows []*employeeDatamodel.EmployeeWithPerson
	err := r.db.Table("employees").
		Select(`employees.dni, employees.department, employees.hire_date,
			employees.max_vacation_days, employees.assigned_project_id, employees.username,
			people.name, people.surname, people.phone, people.address, people.email, people.birthdate`).
		Joins("JOIN people ON people.dni = employees.dni").
		Where("employees.assigned_project_id = ?", projectID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
