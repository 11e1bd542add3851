package vacation

import (
	"time"

	errors "github.com/gestionat/hr-management/internal"
	"github.com/gestionat/hr-management/internal/core/common/validation"
	vacationDatamodel "github.com/gestionat/hr-management/internal/core/datamodel/vacation"
)

type CreateVacationDTO struct {
	RequestedDays *int    `json:"requestedDays"`
	State         *string `json:"state"`
	From          string  `json:"from"`

	startDate time.Time
}

// Validate applies the under-review default state and parses the start
// date. requestedDays is the one hard-required field.
func (dto *CreateVacationDTO) Validate() *errors.AppError {
	if dto.State == nil {
		state := vacationDatamodel.StateUnderReview
		dto.State = &state
	}

	v := validation.NewValidator()
	v.Field("requestedDays", dto.RequestedDays).Required().MinInt(1)
	v.Field("from", dto.From).Required()
	if err := v.Validate(); err != nil {
		return err
	}

	startDate, err := validation.ParseDate("from", dto.From)
	if err != nil {
		return err
	}
	dto.startDate = startDate
	return nil
}

func (dto *CreateVacationDTO) StartDate() time.Time { return dto.startDate }

// PatchVacationDTO carries the two patchable fields; both optional. Neither
// present is a valid no-op.
type PatchVacationDTO struct {
	State         *string `json:"state"`
	RequestedDays *int    `json:"requestedDays"`
}

func (dto *PatchVacationDTO) Empty() bool {
	return dto.State == nil && dto.RequestedDays == nil
}

// Changes returns only the supplied assignments, keyed by column.
func (dto *PatchVacationDTO) Changes() map[string]interface{} {
	changes := make(map[string]interface{})
	if dto.State != nil {
		changes["state"] = *dto.State
	}
	if dto.RequestedDays != nil {
		changes["requested_days"] = *dto.RequestedDays
	}
	return changes
}
