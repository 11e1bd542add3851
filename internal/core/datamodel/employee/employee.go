package employee

import "time"

// Person is the identity record an employee row hangs off. The dni is a
// national identity number and never changes once the row exists.
type Person struct {
	DNI       string    `json:"dni" gorm:"column:dni;primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Surname   string    `json:"surname" gorm:"not null"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Email     string    `json:"email"`
	Birthdate time.Time `json:"birthdate" gorm:"column:birthdate;type:date"`
}

func (Person) TableName() string {
	return "people"
}

// Credential is the login record referenced by an employee row. The employee
// insert requires this row to exist first.
type Credential struct {
	Username     string `json:"username" gorm:"column:username;primaryKey"`
	PasswordHash string `json:"-" gorm:"column:password_hash;not null"`
}

func (Credential) TableName() string {
	return "user_credentials"
}

type Employee struct {
	DNI               string    `json:"dni" gorm:"column:dni;primaryKey"`
	Department        string    `json:"department" gorm:"column:department;not null"`
	HireDate          time.Time `json:"hire_date" gorm:"column:hire_date;type:date"`
	MaxVacationDays   int       `json:"max_vacation_days" gorm:"column:max_vacation_days"`
	AssignedProjectID *int64    `json:"assigned_project_id" gorm:"column:assigned_project_id"`
	Username          string    `json:"username" gorm:"column:username"`
}

func (Employee) TableName() string {
	return "employees"
}

// EmployeeWithPerson is the joined read shape returned by employee listings.
type EmployeeWithPerson struct {
	DNI               string    `json:"dni" gorm:"column:dni"`
	Department        string    `json:"department" gorm:"column:department"`
	HireDate          time.Time `json:"hire_date" gorm:"column:hire_date"`
	MaxVacationDays   int       `json:"max_vacation_days" gorm:"column:max_vacation_days"`
	AssignedProjectID *int64    `json:"assigned_project_id" gorm:"column:assigned_project_id"`
	Username          string    `json:"username" gorm:"column:username"`
	Name              string    `json:"name" gorm:"column:name"`
	Surname           string    `json:"surname" gorm:"column:surname"`
	Phone             string    `json:"phone" gorm:"column:phone"`
	Address           string    `json:"address" gorm:"column:address"`
	Email             string    `json:"email" gorm:"column:email"`
	Birthdate         time.Time `json:"birthdate" gorm:"column:birthdate"`
}
