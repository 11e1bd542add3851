package detour

import (
	"time"

	projectDatamodel "github.com/gestionat/hr-management/internal/core/datamodel/project"
)

type Detour struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	OccurredAt   time.Time  `json:"occurred_at"`
	EmployeeCost int        `json:"employee_cost"`
	HourCost     int        `json:"hour_cost"`
	BudgetCost   float64    `json:"budget_cost"`
	NewDeadline  *time.Time `json:"new_deadline,omitempty"`
	ProjectID    int64      `json:"project_id"`
	Detail       string     `json:"detail"`
}

func FromDataModel(d *projectDatamodel.Detour) *Detour {
	return &Detour{
		ID:           d.ID,
		Name:         d.Name,
		OccurredAt:   d.OccurredAt,
		EmployeeCost: d.EmployeeCost,
		HourCost:     d.HourCost,
		BudgetCost:   d.BudgetCost,
		NewDeadline:  d.NewDeadline,
		ProjectID:    d.ProjectID,
		Detail:       d.Detail,
	}
}

func FromDataModelSlice(detours []*projectDatamodel.Detour) []*Detour {
	result := make([]*Detour, len(detours))
	for i, d := range detours {
		result[i] = FromDataModel(d)
	}
	return result
}
