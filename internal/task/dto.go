package task

import (
	errors "github.com/gestionat/hr-management/internal"
	"github.com/gestionat/hr-management/internal/auth"
	"github.com/gestionat/hr-management/internal/core/common/validation"
)

type CreateTaskDTO struct {
	Name        string `json:"name"`
	ProjectID   *int64 `json:"projectId"`
	Hours       *int   `json:"hours"`
	Completed   *bool  `json:"completed"`
	Description string `json:"description"`
}

// ApplyDefaults fills the unset optional fields: the project defaults to
// the caller's assigned project and the completed flag to false.
func (dto *CreateTaskDTO) ApplyDefaults(caller *auth.Caller) {
	if dto.ProjectID == nil {
		dto.ProjectID = caller.AssignedProjectID
	}
	if dto.Completed == nil {
		completed := false
		dto.Completed = &completed
	}
}

func (dto *CreateTaskDTO) Validate() *errors.AppError {
	if dto.ProjectID == nil {
		return errors.NewValidationFieldError("projectId",
			"projectId cannot be null", errors.ErrCodeMissingField)
	}

	v := validation.NewValidator()
	v.Field("name", dto.Name).Required()
	v.Field("hours", dto.Hours).Required().MinInt(1)
	v.Field("description", dto.Description).Required()
	return v.Validate()
}

// ListTasksFilter carries the optional query filters on an employee's tasks.
type ListTasksFilter struct {
	FromCurrentProjectOnly bool
	CompletedOnly          bool
}
