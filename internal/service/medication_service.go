package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	apperrors "epicare/internal/errors"
	"epicare/internal/model"
	"epicare/internal/notify"
	"epicare/internal/repository"
)

// MedicationInfo is the medication projection exposed at the API boundary.
type MedicationInfo struct {
	ID      uint   `json:"id,omitempty"`
	UserID  uint   `json:"user_id"`
	Name    string `json:"name"`
	Dose    string `json:"dose"`
	Time    string `json:"time"`
	Enabled bool   `json:"enabled"`
}

// MedicationService handles medication scheduling.
type MedicationService interface {
	ListMedications(ctx context.Context, userID uint) ([]MedicationInfo, error)
	// SaveMedication creates the medication when ID is zero, otherwise
	// updates it after an ownership check. A newly created medication
	// triggers a best-effort "Medication Added" push to the owner.
	SaveMedication(ctx context.Context, info MedicationInfo) (*MedicationInfo, error)
	DeleteMedication(ctx context.Context, userID, medicationID uint) error
}

type medicationService struct {
	medicationRepo repository.MedicationRepository
	userRepo       repository.UserRepository
	dispatcher     notify.Dispatcher
}

// NewMedicationService creates a new medication service.
func NewMedicationService(
	medicationRepo repository.MedicationRepository,
	userRepo repository.UserRepository,
	dispatcher notify.Dispatcher,
) MedicationService {
	return &medicationService{
		medicationRepo: medicationRepo,
		userRepo:       userRepo,
		dispatcher:     dispatcher,
	}
}

func (s *medicationService) ListMedications(ctx context.Context, userID uint) ([]MedicationInfo, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	medications, err := s.medicationRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	infos := make([]MedicationInfo, 0, len(medications))
	for _, medication := range medications {
		infos = append(infos, MedicationInfo{
			ID:      medication.ID,
			UserID:  medication.UserID,
			Name:    medication.Name,
			Dose:    medication.Dose,
			Time:    medication.Time,
			Enabled: medication.Enabled,
		})
	}
	return infos, nil
}

func (s *medicationService) SaveMedication(ctx context.Context, info MedicationInfo) (*MedicationInfo, error) {
	user, err := s.userRepo.FindByID(ctx, info.UserID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	if _, err := time.Parse("15:04", info.Time); err != nil {
		return nil, fmt.Errorf("invalid medication time %q: %w", info.Time, err)
	}

	var medication *model.Medication
	isNew := info.ID == 0

	if isNew {
		medication = &model.Medication{UserID: user.ID}
	} else {
		medication, err = s.medicationRepo.FindByID(ctx, info.ID)
		if err != nil || medication.UserID != user.ID {
			return nil, apperrors.ErrMedicationNotFound
		}
	}

	medication.Name = info.Name
	medication.Dose = info.Dose
	medication.Time = info.Time
	medication.Enabled = info.Enabled

	if isNew {
		err = s.medicationRepo.Create(ctx, medication)
	} else {
		err = s.medicationRepo.Update(ctx, medication)
	}
	if err != nil {
		return nil, fmt.Errorf("save medication: %w", err)
	}

	if isNew {
		s.notifyMedicationAdded(ctx, user, medication)
	}

	info.ID = medication.ID
	return &info, nil
}

// notifyMedicationAdded sends a one-time push when a medication is created.
// Users without a push token are skipped; failures are logged and swallowed.
func (s *medicationService) notifyMedicationAdded(ctx context.Context, user *model.User, medication *model.Medication) {
	if user.PushToken == "" {
		return
	}

	body := fmt.Sprintf("Medication added: %s %s at %s", medication.Name, medication.Dose, medication.Time)
	result := s.dispatcher.Send(ctx, user.PushToken, "Medication Added", body, map[string]string{"screen": "Medicine"})
	if !result.Delivered {
		log.Printf("medication added: push to %s failed: %s", user.Email, result.Err)
	}
}

func (s *medicationService) DeleteMedication(ctx context.Context, userID, medicationID uint) error {
	medication, err := s.medicationRepo.FindByID(ctx, medicationID)
	if err != nil || medication.UserID != userID {
		return apperrors.ErrMedicationNotFound
	}
	return s.medicationRepo.DeleteByUserAndID(ctx, userID, medicationID)
}
