package postgres

import (
	projectDatamodel "github.com/gestionat/hr-management/internal/core/datamodel/project"
	"github.com/gestionat/hr-management/internal/detour"
	"gorm.io/gorm"
)

// DetourRepository implements detour.Repository using GORM.
type DetourRepository struct {
	db *gorm.DB
}

func NewDetourRepository(db *gorm.DB) detour.Repository {
	return &DetourRepository{db: db}
}

func (r *DetourRepository) ListByProject(projectID int64) ([]*projectDatamodel.Detour, error) {
	var detours []*projectDatamodel.Detour
	if err := r.db.Where("project_id = ?", projectID).Find(&detours).Error; err != nil {
		return nil, err
	}
	return detours, nil
}

func (r *DetourRepository) Create(d *projectDatamodel.Detour) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(d).Error
	})
}
