package repository

import (
	"context"

	"gorm.io/gorm"

	"epicare/internal/model"
)

// SeizureRepository defines persistence operations for seizure events.
type SeizureRepository interface {
	Create(ctx context.Context, seizure *model.Seizure) error
	Update(ctx context.Context, seizure *model.Seizure) error
	FindByID(ctx context.Context, id uint) (*model.Seizure, error)
	FindByMonitoredUser(ctx context.Context, monitoredUserID uint) ([]model.Seizure, error)
}

type seizureRepository struct {
	db *gorm.DB
}

// NewSeizureRepository builds a GORM-backed repository.
func NewSeizureRepository(db *gorm.DB) SeizureRepository {
	return &seizureRepository{db: db}
}

func (r *seizureRepository) Create(ctx context.Context, seizure *model.Seizure) error {
	return r.db.WithContext(ctx).Create(seizure).Error
}

func (r *seizureRepository) Update(ctx context.Context, seizure *model.Seizure) error {
	return r.db.WithContext(ctx).Save(seizure).Error
}

func (r *seizureRepository) FindByID(ctx context.Context, id uint) (*model.Seizure, error) {
	var seizure model.Seizure
	if err := r.db.WithContext(ctx).First(&seizure, id).Error; err != nil {
		return nil, err
	}
	return &seizure, nil
}

func (r *seizureRepository) FindByMonitoredUser(ctx context.Context, monitoredUserID uint) ([]model.Seizure, error) {
	var seizures []model.Seizure
	err := r.db.WithContext(ctx).
		Where("monitored_user_id = ?", monitoredUserID).
		Find(&seizures).Error
	if err != nil {
		return nil, err
	}
	return seizures, nil
}
