package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "epicare/internal/errors"
	"epicare/internal/model"
)

func TestSeizureService_ListSeizures_RequiresOneEmail(t *testing.T) {
	svc := NewSeizureService(new(MockUserRepository), new(MockRelationRepository), new(MockSeizureRepository))

	seizures, err := svc.ListSeizures(context.Background(), "", "")

	assert.Nil(t, seizures)
	assert.ErrorIs(t, err, apperrors.ErrMissingEmailParam)
}

func TestSeizureService_ListSeizures_ByMonitoredUser(t *testing.T) {
	userRepo := new(MockUserRepository)
	seizureRepo := new(MockSeizureRepository)

	userRepo.On("FindByEmail", mock.Anything, "a@x.com").Return(&model.User{ID: 1, Email: "a@x.com"}, nil)
	seizureRepo.On("FindByMonitoredUser", mock.Anything, uint(1)).Return([]model.Seizure{
		{ID: 10, MonitoredUserID: 1, HeartRate: 90, SpO2: 96, Movement: 2, Timestamp: time.Now(), Note: "short one"},
	}, nil)

	svc := NewSeizureService(userRepo, new(MockRelationRepository), seizureRepo)
	seizures, err := svc.ListSeizures(context.Background(), "a@x.com", "")

	assert.NoError(t, err)
	assert.Len(t, seizures, 1)
	assert.Equal(t, uint(10), seizures[0].ID)
	assert.Equal(t, "short one", seizures[0].Note)
}

func TestSeizureService_ListSeizures_BySupportUserUnion(t *testing.T) {
	userRepo := new(MockUserRepository)
	relationRepo := new(MockRelationRepository)
	seizureRepo := new(MockSeizureRepository)

	userRepo.On("FindByEmail", mock.Anything, "c@x.com").Return(&model.User{ID: 3, Email: "c@x.com"}, nil)
	relationRepo.On("FindBySupportUser", mock.Anything, uint(3)).Return([]model.SupportRelation{
		{MonitoredUserID: 1},
		{MonitoredUserID: 4},
	}, nil)
	seizureRepo.On("FindByMonitoredUser", mock.Anything, uint(1)).Return([]model.Seizure{
		{ID: 10, MonitoredUserID: 1},
		{ID: 11, MonitoredUserID: 1},
	}, nil)
	seizureRepo.On("FindByMonitoredUser", mock.Anything, uint(4)).Return([]model.Seizure{
		{ID: 20, MonitoredUserID: 4},
	}, nil)

	svc := NewSeizureService(userRepo, relationRepo, seizureRepo)
	seizures, err := svc.ListSeizures(context.Background(), "", "c@x.com")

	assert.NoError(t, err)
	assert.Len(t, seizures, 3)
	ids := []uint{seizures[0].ID, seizures[1].ID, seizures[2].ID}
	assert.Equal(t, []uint{10, 11, 20}, ids)
}

func TestSeizureService_ListSeizures_UnknownUser(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("FindByEmail", mock.Anything, "ghost@x.com").Return(nil, gorm.ErrRecordNotFound)

	svc := NewSeizureService(userRepo, new(MockRelationRepository), new(MockSeizureRepository))
	_, err := svc.ListSeizures(context.Background(), "ghost@x.com", "")

	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestSeizureService_UpdateNote(t *testing.T) {
	seizureRepo := new(MockSeizureRepository)
	seizure := &model.Seizure{ID: 10, MonitoredUserID: 1, Note: "old"}

	seizureRepo.On("FindByID", mock.Anything, uint(10)).Return(seizure, nil)
	seizureRepo.On("Update", mock.Anything, mock.MatchedBy(func(s *model.Seizure) bool {
		return s.ID == 10 && s.Note == "lasted about a minute"
	})).Return(nil).Once()

	svc := NewSeizureService(new(MockUserRepository), new(MockRelationRepository), seizureRepo)
	err := svc.UpdateNote(context.Background(), 10, "lasted about a minute")

	assert.NoError(t, err)
	seizureRepo.AssertExpectations(t)
}

func TestSeizureService_UpdateNote_NotFound(t *testing.T) {
	seizureRepo := new(MockSeizureRepository)
	seizureRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewSeizureService(new(MockUserRepository), new(MockRelationRepository), seizureRepo)
	err := svc.UpdateNote(context.Background(), 99, "whatever")

	assert.ErrorIs(t, err, apperrors.ErrSeizureNotFound)
}
