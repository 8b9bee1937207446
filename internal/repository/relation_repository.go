package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"epicare/internal/model"
)

// RelationRepository defines persistence operations for the support relation graph.
type RelationRepository interface {
	// CreateIfAbsent inserts the relation unless the (monitored, support) pair
	// already exists. Returns created=false when the pair was already present.
	CreateIfAbsent(ctx context.Context, relation *model.SupportRelation) (created bool, err error)
	Exists(ctx context.Context, monitoredUserID, supportUserID uint) (bool, error)
	Delete(ctx context.Context, monitoredUserID, supportUserID uint) error
	FindByMonitoredUser(ctx context.Context, monitoredUserID uint) ([]model.SupportRelation, error)
	FindBySupportUser(ctx context.Context, supportUserID uint) ([]model.SupportRelation, error)
	CountByMonitoredUser(ctx context.Context, monitoredUserID uint) (int64, error)
}

type relationRepository struct {
	db *gorm.DB
}

// NewRelationRepository builds a GORM-backed repository.
func NewRelationRepository(db *gorm.DB) RelationRepository {
	return &relationRepository{db: db}
}

// CreateIfAbsent relies on the unique index over the pair rather than a
// check-then-insert, so concurrent identical requests cannot both insert.
func (r *relationRepository) CreateIfAbsent(ctx context.Context, relation *model.SupportRelation) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "monitored_user_id"}, {Name: "support_user_id"}},
			DoNothing: true,
		}).
		Create(relation)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *relationRepository) Exists(ctx context.Context, monitoredUserID, supportUserID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.SupportRelation{}).
		Where("monitored_user_id = ? AND support_user_id = ?", monitoredUserID, supportUserID).
		Count(&count).Error
	return count > 0, err
}

func (r *relationRepository) Delete(ctx context.Context, monitoredUserID, supportUserID uint) error {
	return r.db.WithContext(ctx).
		Where("monitored_user_id = ? AND support_user_id = ?", monitoredUserID, supportUserID).
		Delete(&model.SupportRelation{}).Error
}

func (r *relationRepository) FindByMonitoredUser(ctx context.Context, monitoredUserID uint) ([]model.SupportRelation, error) {
	var relations []model.SupportRelation
	err := r.db.WithContext(ctx).
		Preload("SupportUser").
		Where("monitored_user_id = ?", monitoredUserID).
		Find(&relations).Error
	if err != nil {
		return nil, err
	}
	return relations, nil
}

func (r *relationRepository) FindBySupportUser(ctx context.Context, supportUserID uint) ([]model.SupportRelation, error) {
	var relations []model.SupportRelation
	err := r.db.WithContext(ctx).
		Preload("MonitoredUser").
		Where("support_user_id = ?", supportUserID).
		Find(&relations).Error
	if err != nil {
		return nil, err
	}
	return relations, nil
}

func (r *relationRepository) CountByMonitoredUser(ctx context.Context, monitoredUserID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.SupportRelation{}).
		Where("monitored_user_id = ?", monitoredUserID).
		Count(&count).Error
	return count, err
}
