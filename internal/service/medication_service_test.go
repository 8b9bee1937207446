package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "epicare/internal/errors"
	"epicare/internal/model"
	"epicare/internal/notify"
)

func TestMedicationService_SaveMedication_CreateNotifies(t *testing.T) {
	medicationRepo := new(MockMedicationRepository)
	userRepo := new(MockUserRepository)
	dispatcher := new(MockDispatcher)

	owner := &model.User{ID: 1, Email: "a@x.com", PushToken: "TOK1"}
	userRepo.On("FindByID", mock.Anything, uint(1)).Return(owner, nil)
	medicationRepo.On("Create", mock.Anything, mock.MatchedBy(func(m *model.Medication) bool {
		return m.UserID == 1 && m.Name == "Lamotrigine" && m.Time == "08:00"
	})).Return(nil).Once()
	dispatcher.On("Send", mock.Anything, "TOK1", "Medication Added",
		"Medication added: Lamotrigine 100mg at 08:00",
		map[string]string{"screen": "Medicine"}).
		Return(notify.Result{Token: "TOK1", Delivered: true}).Once()

	svc := NewMedicationService(medicationRepo, userRepo, dispatcher)
	saved, err := svc.SaveMedication(context.Background(), MedicationInfo{
		UserID: 1, Name: "Lamotrigine", Dose: "100mg", Time: "08:00", Enabled: true,
	})

	assert.NoError(t, err)
	assert.NotNil(t, saved)
	dispatcher.AssertExpectations(t)
}

func TestMedicationService_SaveMedication_CreateWithoutTokenSkipsPush(t *testing.T) {
	medicationRepo := new(MockMedicationRepository)
	userRepo := new(MockUserRepository)
	dispatcher := new(MockDispatcher)

	userRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1, Email: "a@x.com"}, nil)
	medicationRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewMedicationService(medicationRepo, userRepo, dispatcher)
	_, err := svc.SaveMedication(context.Background(), MedicationInfo{
		UserID: 1, Name: "Lamotrigine", Time: "08:00",
	})

	assert.NoError(t, err)
	dispatcher.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestMedicationService_SaveMedication_UpdateDoesNotNotify(t *testing.T) {
	medicationRepo := new(MockMedicationRepository)
	userRepo := new(MockUserRepository)
	dispatcher := new(MockDispatcher)

	userRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1, PushToken: "TOK1"}, nil)
	medicationRepo.On("FindByID", mock.Anything, uint(5)).Return(&model.Medication{ID: 5, UserID: 1, Name: "Old"}, nil)
	medicationRepo.On("Update", mock.Anything, mock.MatchedBy(func(m *model.Medication) bool {
		return m.ID == 5 && m.Name == "New"
	})).Return(nil).Once()

	svc := NewMedicationService(medicationRepo, userRepo, dispatcher)
	_, err := svc.SaveMedication(context.Background(), MedicationInfo{
		ID: 5, UserID: 1, Name: "New", Time: "20:30",
	})

	assert.NoError(t, err)
	dispatcher.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	medicationRepo.AssertExpectations(t)
}

func TestMedicationService_SaveMedication_RejectsForeignMedication(t *testing.T) {
	medicationRepo := new(MockMedicationRepository)
	userRepo := new(MockUserRepository)

	userRepo.On("FindByID", mock.Anything, uint(2)).Return(&model.User{ID: 2}, nil)
	medicationRepo.On("FindByID", mock.Anything, uint(5)).Return(&model.Medication{ID: 5, UserID: 1}, nil)

	svc := NewMedicationService(medicationRepo, userRepo, new(MockDispatcher))
	_, err := svc.SaveMedication(context.Background(), MedicationInfo{ID: 5, UserID: 2, Name: "X", Time: "08:00"})

	assert.ErrorIs(t, err, apperrors.ErrMedicationNotFound)
}

func TestMedicationService_SaveMedication_InvalidTime(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1}, nil)

	svc := NewMedicationService(new(MockMedicationRepository), userRepo, new(MockDispatcher))
	_, err := svc.SaveMedication(context.Background(), MedicationInfo{UserID: 1, Name: "X", Time: "25:99"})

	assert.Error(t, err)
}

func TestMedicationService_DeleteMedication(t *testing.T) {
	t.Run("owner can delete", func(t *testing.T) {
		medicationRepo := new(MockMedicationRepository)
		medicationRepo.On("FindByID", mock.Anything, uint(5)).Return(&model.Medication{ID: 5, UserID: 1}, nil)
		medicationRepo.On("DeleteByUserAndID", mock.Anything, uint(1), uint(5)).Return(nil).Once()

		svc := NewMedicationService(medicationRepo, new(MockUserRepository), new(MockDispatcher))
		assert.NoError(t, svc.DeleteMedication(context.Background(), 1, 5))
		medicationRepo.AssertExpectations(t)
	})

	t.Run("non-owner gets not found", func(t *testing.T) {
		medicationRepo := new(MockMedicationRepository)
		medicationRepo.On("FindByID", mock.Anything, uint(5)).Return(&model.Medication{ID: 5, UserID: 1}, nil)

		svc := NewMedicationService(medicationRepo, new(MockUserRepository), new(MockDispatcher))
		err := svc.DeleteMedication(context.Background(), 2, 5)
		assert.ErrorIs(t, err, apperrors.ErrMedicationNotFound)
	})

	t.Run("missing medication", func(t *testing.T) {
		medicationRepo := new(MockMedicationRepository)
		medicationRepo.On("FindByID", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewMedicationService(medicationRepo, new(MockUserRepository), new(MockDispatcher))
		err := svc.DeleteMedication(context.Background(), 1, 9)
		assert.ErrorIs(t, err, apperrors.ErrMedicationNotFound)
	})
}
