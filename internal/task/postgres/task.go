package postgres

import (
	"database/sql"

	taskDatamodel "github.com/gestionat/hr-management/internal/core/datamodel/task"
	"github.com/gestionat/hr-management/internal/task"
	"gorm.io/gorm"
)

// TaskRepository implements task.Repository using GORM.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) task.Repository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) ListByEmployee(dni string, projectID *int64, completedOnly bool) ([]*taskDatamodel.Task, error) {
	query := r.db.Where("employee_dni = ?", dni)
	if projectID != nil {
		query = query.Where("project_id = ?", *projectID)
	}
	if completedOnly {
		query = query.Where("completed = ?", true)
	}

	var tasks []*taskDatamodel.Task
	if err := query.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) ListByProject(projectID int64) ([]*taskDatamodel.Task, error) {
	var tasks []*taskDatamodel.Task
	if err := r.db.Where("project_id = ?", projectID).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Create is a single insert, still transaction-wrapped so the write path is
// uniform with the multi-statement sequences.
func (r *TaskRepository) Create(t *taskDatamodel.Task) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(t).Error
	})
}

func (r *TaskRepository) AssignedProject(dni string) (int64, bool, error) {
	var assigned sql.NullInt64
	row := r.db.Raw(`SELECT assigned_project_id FROM employees WHERE dni = ?`, dni).Row()
	if err := row.Scan(&assigned); err != nil {
		return 0, false, err
	}
	if !assigned.Valid {
		return 0, false, nil
	}
	return assigned.Int64, true, nil
}
