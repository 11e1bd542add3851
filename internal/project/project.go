package project

import (
	"time"

	projectDatamodel "github.com/gestionat/hr-management/internal/core/datamodel/project"
)

type Project struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Type               string    `json:"type"`
	StartDate          time.Time `json:"start_date"`
	IdealDeliveryDate  time.Time `json:"ideal_delivery_date"`
	AvailableHours     int       `json:"available_hours"`
	AvailableEmployees int       `json:"available_employees"`
	Budget             float64   `json:"budget"`
	CommercialManager  string    `json:"commercial_manager_dni"`
	TechnicalManager   string    `json:"technical_manager_dni"`
	ProposalID         int64     `json:"proposal_id"`
	WorkplanPath       string    `json:"workplan_path"`
}

func FromDataModel(p *projectDatamodel.Project) *Project {
	return &Project{
		ID:                 p.ID,
		Name:               p.Name,
		Type:               p.Type,
		StartDate:          p.StartDate,
		IdealDeliveryDate:  p.IdealDeliveryDate,
		AvailableHours:     p.AvailableHours,
		AvailableEmployees: p.AvailableEmployees,
		Budget:             p.Budget,
		CommercialManager:  p.CommercialManager,
		TechnicalManager:   p.TechnicalManager,
		ProposalID:         p.ProposalID,
		WorkplanPath:       p.WorkplanPath,
	}
}

func FromDataModelSlice(projects []*projectDatamodel.Project) []*Project {
	result := make([]*Project, len(projects))
	for i, p := range projects {
		result[i] = FromDataModel(p)
	}
	return result
}
