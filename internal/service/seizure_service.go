package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	apperrors "epicare/internal/errors"
	"epicare/internal/repository"
)

// SeizureDTO is the seizure projection exposed at the API boundary.
type SeizureDTO struct {
	ID        uint      `json:"id"`
	HeartRate float64   `json:"heart_rate"`
	SpO2      float64   `json:"sp_o2"`
	Movement  int       `json:"movement"`
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note,omitempty"`
}

// SeizureService handles seizure queries and note updates.
type SeizureService interface {
	// ListSeizures accepts exactly one of the two emails. A monitored email
	// selects that user's events; a support email selects the union of the
	// events of every monitored user linked to the supporter.
	ListSeizures(ctx context.Context, monitoredEmail, supportEmail string) ([]SeizureDTO, error)
	UpdateNote(ctx context.Context, seizureID uint, note string) error
}

type seizureService struct {
	userRepo     repository.UserRepository
	relationRepo repository.RelationRepository
	seizureRepo  repository.SeizureRepository
}

// NewSeizureService creates a new seizure service.
func NewSeizureService(
	userRepo repository.UserRepository,
	relationRepo repository.RelationRepository,
	seizureRepo repository.SeizureRepository,
) SeizureService {
	return &seizureService{
		userRepo:     userRepo,
		relationRepo: relationRepo,
		seizureRepo:  seizureRepo,
	}
}

func (s *seizureService) ListSeizures(ctx context.Context, monitoredEmail, supportEmail string) ([]SeizureDTO, error) {
	var monitoredIDs []uint

	switch {
	case monitoredEmail != "":
		user, err := s.userRepo.FindByEmail(ctx, monitoredEmail)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, apperrors.ErrUserNotFound
			}
			return nil, err
		}
		monitoredIDs = []uint{user.ID}
	case supportEmail != "":
		supporter, err := s.userRepo.FindByEmail(ctx, supportEmail)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, apperrors.ErrUserNotFound
			}
			return nil, err
		}
		relations, err := s.relationRepo.FindBySupportUser(ctx, supporter.ID)
		if err != nil {
			return nil, err
		}
		for _, relation := range relations {
			monitoredIDs = append(monitoredIDs, relation.MonitoredUserID)
		}
	default:
		return nil, apperrors.ErrMissingEmailParam
	}

	// Concatenation in relation-iteration order; no cross-user ordering.
	dtos := make([]SeizureDTO, 0)
	for _, id := range monitoredIDs {
		seizures, err := s.seizureRepo.FindByMonitoredUser(ctx, id)
		if err != nil {
			return nil, err
		}
		for _, seizure := range seizures {
			dtos = append(dtos, SeizureDTO{
				ID:        seizure.ID,
				HeartRate: seizure.HeartRate,
				SpO2:      seizure.SpO2,
				Movement:  seizure.Movement,
				Timestamp: seizure.Timestamp,
				Note:      seizure.Note,
			})
		}
	}
	return dtos, nil
}

func (s *seizureService) UpdateNote(ctx context.Context, seizureID uint, note string) error {
	seizure, err := s.seizureRepo.FindByID(ctx, seizureID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrSeizureNotFound
		}
		return err
	}

	seizure.Note = note
	return s.seizureRepo.Update(ctx, seizure)
}
