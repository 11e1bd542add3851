package project

import "time"

const (
	ProposalStatePending  = "Pendiente"
	ProposalStateApproved = "Aprobado"
)

// Proposal is the pre-project record a project is created from. FilesDir is
// where the uploaded workplan ends up.
type Proposal struct {
	ID                    int64  `json:"id" gorm:"primaryKey"`
	State                 string `json:"state" gorm:"column:state;default:Pendiente"`
	FilesDir              string `json:"files_dir" gorm:"column:files_dir;not null"`
	CommercialEmployeeDNI string `json:"commercial_employee_dni" gorm:"column:commercial_employee_dni"`
	TechnicalEmployeeDNI  string `json:"technical_employee_dni" gorm:"column:technical_employee_dni"`
}

func (Proposal) TableName() string {
	return "proposals"
}

type Project struct {
	ID                 int64     `json:"id" gorm:"primaryKey"`
	Name               string    `json:"name" gorm:"not null"`
	Type               string    `json:"type" gorm:"column:type"`
	StartDate          time.Time `json:"start_date" gorm:"column:start_date;type:date"`
	IdealDeliveryDate  time.Time `json:"ideal_delivery_date" gorm:"column:ideal_delivery_date;type:date"`
	AvailableHours     int       `json:"available_hours" gorm:"column:available_hours"`
	AvailableEmployees int       `json:"available_employees" gorm:"column:available_employees"`
	Budget             float64   `json:"budget" gorm:"column:budget"`
	CommercialManager  string    `json:"commercial_manager_dni" gorm:"column:commercial_manager_dni"`
	TechnicalManager   string    `json:"technical_manager_dni" gorm:"column:technical_manager_dni"`
	ProposalID         int64     `json:"proposal_id" gorm:"column:proposal_id"`
	WorkplanPath       string    `json:"workplan_path" gorm:"column:workplan_path"`
}

func (Project) TableName() string {
	return "projects"
}

// Detour records a deviation from a project's plan and its cost impact.
type Detour struct {
	ID           int64      `json:"id" gorm:"primaryKey"`
	Name         string     `json:"name" gorm:"not null"`
	OccurredAt   time.Time  `json:"occurred_at" gorm:"column:occurred_at"`
	EmployeeCost int        `json:"employee_cost" gorm:"column:employee_cost"`
	HourCost     int        `json:"hour_cost" gorm:"column:hour_cost"`
	BudgetCost   float64    `json:"budget_cost" gorm:"column:budget_cost"`
	NewDeadline  *time.Time `json:"new_deadline,omitempty" gorm:"column:new_deadline"`
	ProjectID    int64      `json:"project_id" gorm:"column:project_id;not null"`
	Detail       string     `json:"detail" gorm:"column:detail"`
}

func (Detour) TableName() string {
	return "detours"
}
