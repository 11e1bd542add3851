package vacation

import (
	"time"

	vacationDatamodel "github.com/gestionat/hr-management/internal/core/datamodel/vacation"
)

type VacationRequest struct {
	ID            int64     `json:"id"`
	EmployeeDNI   string    `json:"employee_dni"`
	RequestedDays int       `json:"requested_days"`
	State         string    `json:"state"`
	StartDate     time.Time `json:"start_date"`
}

func FromDataModel(v *vacationDatamodel.VacationRequest) *VacationRequest {
	return &VacationRequest{
		ID:            v.ID,
		EmployeeDNI:   v.EmployeeDNI,
		RequestedDays: v.RequestedDays,
		State:         v.State,
		StartDate:     v.StartDate,
	}
}

func FromDataModelSlice(rows []*vacationDatamodel.VacationRequest) []*VacationRequest {
	result := make([]*VacationRequest, len(rows))
	for i, v := range rows {
		result[i] = FromDataModel(v)
	}
	return result
}
