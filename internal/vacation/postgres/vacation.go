package postgres

import (
	vacationDatamodel "github.com/gestionat/hr-management/internal/core/datamodel/vacation"
	"github.com/gestionat/hr-management/internal/vacation"
	"gorm.io/gorm"
)

// VacationRepository implements vacation.Repository using GORM.
type VacationRepository struct {
	db *gorm.DB
}

func NewVacationRepository(db *gorm.DB) vacation.Repository {
	return &VacationRepository{db: db}
}

func (r *VacationRepository) ListAll() ([]*vacationDatamodel.VacationRequest, error) {
	var rows []*vacationDatamodel.VacationRequest
	if err := r.db.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *VacationRepository) ListByEmployee(dni string) ([]*vacationDatamodel.VacationRequest, error) {
	var rows []*vacationDatamodel.VacationRequest
	if err := r.db.Where("employee_dni = ?", dni).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *VacationRepository) Create(request *vacationDatamodel.VacationRequest) error {
	return r.db.Create(request).Error
}

// Update applies only the supplied assignments inside a transaction, never
// touching columns the patch left out.
func (r *VacationRepository) Update(id int64, changes map[string]interface{}) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&vacationDatamodel.VacationRequest{}).
			Where("id = ?", id).
			Updates(changes).Error
	})
}
