package vacation

import "time"

// StateUnderReview is the stored default for new requests. The literal
// keeps the value the HR tooling already expects.
const StateUnderReview = "En Observacion"

type VacationRequest struct {
	ID            int64     `json:"id" gorm:"primaryKey"`
	EmployeeDNI   string    `json:"employee_dni" gorm:"column:employee_dni;not null"`
	RequestedDays int       `json:"requested_days" gorm:"column:requested_days;not null"`
	State         string    `json:"state" gorm:"column:state;default:'En Observacion'"`
	StartDate     time.Time `json:"start_date" gorm:"column:start_date;type:date"`
}

func (VacationRequest) TableName() string {
	return "vacation_requests"
}
