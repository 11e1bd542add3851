package postgres

import (
	"database/sql"
	"fmt"

	"github.com/gestionat/hr-management/internal/auth"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetCredential(username string) (string, string, error) {
	var passwordHash string
	var dni string
	query := `SELECT c.password_hash, e.dni
	          FROM user_credentials c
	          JOIN employees e ON e.username = c.username
	          WHERE c.username = ?`

	row := r.db.Raw(query, username).Row()
	if err := row.Scan(&passwordHash, &dni); err != nil {
		if err == sql.ErrNoRows {
			return "", "", fmt.Errorf("credential not found")
		}
		return "", "", err
	}
	return passwordHash, dni, nil
}

func (r *Repository) GetCaller(dni string) (*auth.Caller, error) {
	var area string
	var assignedProject sql.NullInt64

	query := `SELECT department, assigned_project_id FROM employees WHERE dni = ?`
	row := r.db.Raw(query, dni).Row()
	if err := row.Scan(&area, &assignedProject); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("employee not found")
		}
		return nil, err
	}

	role, err := auth.ParseRole(area)
	if err != nil {
		return nil, fmt.Errorf("employee %s: %w", dni, err)
	}

	caller := &auth.Caller{DNI: dni, Role: role}
	if assignedProject.Valid {
		caller.AssignedProjectID = &assignedProject.Int64
	}
	return caller, nil
}
