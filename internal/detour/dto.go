package detour

import (
	"time"

	errors "github.com/gestionat/hr-management/internal"
	"github.com/gestionat/hr-management/internal/core/common/validation"
)

type CreateDetourDTO struct {
	Name         string   `json:"name"`
	Date         *string  `json:"date"`
	EmployeeCost *int     `json:"employeeCost"`
	HourCost     *int     `json:"hourCost"`
	BudgetCost   *float64 `json:"budgetCost"`
	NewDeadline  *string  `json:"newDeadline"`
	Detail       string   `json:"detail"`

	occurredAt  time.Time
	newDeadline *time.Time
}

// Validate defaults a missing date to now and parses both date fields
// explicitly.
func (dto *CreateDetourDTO) Validate(now time.Time) *errors.AppError {
	v := validation.NewValidator()
	v.Field("name", dto.Name).Required()
	v.Field("employeeCost", dto.EmployeeCost).Required()
	v.Field("hourCost", dto.HourCost).Required()
	v.Field("budgetCost", dto.BudgetCost).Required()
	v.Field("detail", dto.Detail).Required()
	if err := v.Validate(); err != nil {
		return err
	}

	if dto.Date == nil {
		dto.occurredAt = now
	} else {
		occurredAt, err := validation.ParseDate("date", *dto.Date)
		if err != nil {
			return err
		}
		dto.occurredAt = occurredAt
	}

	newDeadline, err := validation.ParseOptionalDate("newDeadline", dto.NewDeadline)
	if err != nil {
		return err
	}
	dto.newDeadline = newDeadline
	return nil
}

func (dto *CreateDetourDTO) OccurredAt() time.Time      { return dto.occurredAt }
func (dto *CreateDetourDTO) ParsedDeadline() *time.Time { return dto.newDeadline }
