package task

type Task struct {
	ID                  int64  `json:"id" gorm:"primaryKey"`
	Name                string `json:"name" gorm:"not null"`
	EmployeeDNI         string `json:"employee_dni" gorm:"column:employee_dni;not null"`
	ProjectID           int64  `json:"project_id" gorm:"column:project_id;not null"`
	Hours               int    `json:"hours" gorm:"column:hours"`
	Completed           bool   `json:"completed" gorm:"column:completed;default:false"`
	CompletedByEmployee bool   `json:"completed_by_employee" gorm:"column:completed_by_employee;default:false"`
	Description         string `json:"description" gorm:"column:description"`
}

func (Task) TableName() string {
	return "tasks"
}
