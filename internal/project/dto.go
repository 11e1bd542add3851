package project

import (
	"net/url"
	"strconv"
	"time"

	errors "github.com/gestionat/hr-management/internal"
	"github.com/gestionat/hr-management/internal/core/common/validation"
)

// CreateProjectDTO is assembled from the multipart form accompanying the
// workplan upload, so every field arrives as a string.
type CreateProjectDTO struct {
	AssociatedProposal int64
	Name               string
	Type               string
	Deadline           time.Time
	StartDate          time.Time
	AvailableHours     int
	AvailableEmployees int
	Budget             float64
}

// ParseCreateProjectForm validates and converts the form values. The
// proposal reference is checked first: without it there is nowhere to put
// the uploaded file.
func ParseCreateProjectForm(form url.Values) (*CreateProjectDTO, *errors.AppError) {
	rawProposal := form.Get("associatedProposal")
	if rawProposal == "" {
		return nil, errors.NewValidationFieldError("associatedProposal",
			"missing field associatedProposal", errors.ErrCodeMissingField)
	}
	proposalID, err := strconv.ParseInt(rawProposal, 10, 64)
	if err != nil {
		return nil, errors.NewValidationFieldError("associatedProposal",
			"associatedProposal must be an integer", errors.ErrCodeValidationFailed)
	}

	v := validation.NewValidator()
	for _, field := range []string{"name", "type", "deadline", "startDate", "availableHours", "availableEmployees", "budget"} {
		v.Field(field, form.Get(field)).Required()
	}
	if appErr := v.Validate(); appErr != nil {
		return nil, appErr
	}

	deadline, appErr := validation.ParseDate("deadline", form.Get("deadline"))
	if appErr != nil {
		return nil, appErr
	}
	startDate, appErr := validation.ParseDate("startDate", form.Get("startDate"))
	if appErr != nil {
		return nil, appErr
	}

	availableHours, err := strconv.Atoi(form.Get("availableHours"))
	if err != nil {
		return nil, errors.NewValidationFieldError("availableHours",
			"availableHours must be an integer", errors.ErrCodeValidationFailed)
	}
	availableEmployees, err := strconv.Atoi(form.Get("availableEmployees"))
	if err != nil {
		return nil, errors.NewValidationFieldError("availableEmployees",
			"availableEmployees must be an integer", errors.ErrCodeValidationFailed)
	}
	budget, err := strconv.ParseFloat(form.Get("budget"), 64)
	if err != nil {
		return nil, errors.NewValidationFieldError("budget",
			"budget must be a number", errors.ErrCodeValidationFailed)
	}

	return &CreateProjectDTO{
		AssociatedProposal: proposalID,
		Name:               form.Get("name"),
		Type:               form.Get("type"),
		Deadline:           deadline,
		StartDate:          startDate,
		AvailableHours:     availableHours,
		AvailableEmployees: availableEmployees,
		Budget:             budget,
	}, nil
}
