package repository

import (
	"context"

	"gorm.io/gorm"

	"epicare/internal/model"
)

// MedicationRepository defines persistence operations for medications.
type MedicationRepository interface {
	Create(ctx context.Context, medication *model.Medication) error
	Update(ctx context.Context, medication *model.Medication) error
	FindByID(ctx context.Context, id uint) (*model.Medication, error)
	FindByUser(ctx context.Context, userID uint) ([]model.Medication, error)
	DeleteByUserAndID(ctx context.Context, userID, medicationID uint) error
}

type medicationRepository struct {
	db *gorm.DB
}

// NewMedicationRepository builds a GORM-backed repository.
func NewMedicationRepository(db *gorm.DB) MedicationRepository {
	return &medicationRepository{db: db}
}

func (r *medicationRepository) Create(ctx context.Context, medication *model.Medication) error {
	return r.db.WithContext(ctx).Create(medication).Error
}

func (r *medicationRepository) Update(ctx context.Context, medication *model.Medication) error {
	return r.db.WithContext(ctx).Save(medication).Error
}

func (r *medicationRepository) FindByID(ctx context.Context, id uint) (*model.Medication, error) {
	var medication model.Medication
	if err := r.db.WithContext(ctx).First(&medication, id).Error; err != nil {
		return nil, err
	}
	return &medication, nil
}

func (r *medicationRepository) FindByUser(ctx context.Context, userID uint) ([]model.Medication, error) {
	var medications []model.Medication
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("time asc").
		Find(&medications).Error
	if err != nil {
		return nil, err
	}
	return medications, nil
}

func (r *medicationRepository) DeleteByUserAndID(ctx context.Context, userID, medicationID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, medicationID).
		Delete(&model.Medication{}).Error
}
