package task

import (
	taskDatamodel "github.com/gestionat/hr-management/internal/core/datamodel/task"
)

type Task struct {
	ID                  int64  `json:"id"`
	Name                string `json:"name"`
	EmployeeDNI         string `json:"employee_dni"`
	ProjectID           int64  `json:"project_id"`
	Hours               int    `json:"hours"`
	Completed           bool   `json:"completed"`
	CompletedByEmployee bool   `json:"completed_by_employee"`
	Description         string `json:"description"`
}

func FromDataModel(t *taskDatamodel.Task) *Task {
	return &Task{
		ID:                  t.ID,
		Name:                t.Name,
		EmployeeDNI:         t.EmployeeDNI,
		ProjectID:           t.ProjectID,
		Hours:               t.Hours,
		Completed:           t.Completed,
		CompletedByEmployee: t.CompletedByEmployee,
		Description:         t.Description,
	}
}

func FromDataModelSlice(tasks []*taskDatamodel.Task) []*Task {
	result := make([]*Task, len(tasks))
	for i, t := range tasks {
		result[i] = FromDataModel(t)
	}
	return result
}
