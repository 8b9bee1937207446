package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"epicare/internal/model"
	"epicare/internal/notify"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByRole(ctx context.Context, role string) ([]model.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

// MockRelationRepository is a mock implementation of repository.RelationRepository.
type MockRelationRepository struct {
	mock.Mock
}

func (m *MockRelationRepository) CreateIfAbsent(ctx context.Context, relation *model.SupportRelation) (bool, error) {
	args := m.Called(ctx, relation)
	return args.Bool(0), args.Error(1)
}

func (m *MockRelationRepository) Exists(ctx context.Context, monitoredUserID, supportUserID uint) (bool, error) {
	args := m.Called(ctx, monitoredUserID, supportUserID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRelationRepository) Delete(ctx context.Context, monitoredUserID, supportUserID uint) error {
	args := m.Called(ctx, monitoredUserID, supportUserID)
	return args.Error(0)
}

func (m *MockRelationRepository) FindByMonitoredUser(ctx context.Context, monitoredUserID uint) ([]model.SupportRelation, error) {
	args := m.Called(ctx, monitoredUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SupportRelation), args.Error(1)
}

func (m *MockRelationRepository) FindBySupportUser(ctx context.Context, supportUserID uint) ([]model.SupportRelation, error) {
	args := m.Called(ctx, supportUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SupportRelation), args.Error(1)
}

func (m *MockRelationRepository) CountByMonitoredUser(ctx context.Context, monitoredUserID uint) (int64, error) {
	args := m.Called(ctx, monitoredUserID)
	return args.Get(0).(int64), args.Error(1)
}

// MockSeizureRepository is a mock implementation of repository.SeizureRepository.
type MockSeizureRepository struct {
	mock.Mock
}

func (m *MockSeizureRepository) Create(ctx context.Context, seizure *model.Seizure) error {
	args := m.Called(ctx, seizure)
	return args.Error(0)
}

func (m *MockSeizureRepository) Update(ctx context.Context, seizure *model.Seizure) error {
	args := m.Called(ctx, seizure)
	return args.Error(0)
}

func (m *MockSeizureRepository) FindByID(ctx context.Context, id uint) (*model.Seizure, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Seizure), args.Error(1)
}

func (m *MockSeizureRepository) FindByMonitoredUser(ctx context.Context, monitoredUserID uint) ([]model.Seizure, error) {
	args := m.Called(ctx, monitoredUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Seizure), args.Error(1)
}

// MockMedicationRepository is a mock implementation of repository.MedicationRepository.
type MockMedicationRepository struct {
	mock.Mock
}

func (m *MockMedicationRepository) Create(ctx context.Context, medication *model.Medication) error {
	args := m.Called(ctx, medication)
	return args.Error(0)
}

func (m *MockMedicationRepository) Update(ctx context.Context, medication *model.Medication) error {
	args := m.Called(ctx, medication)
	return args.Error(0)
}

func (m *MockMedicationRepository) FindByID(ctx context.Context, id uint) (*model.Medication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Medication), args.Error(1)
}

func (m *MockMedicationRepository) FindByUser(ctx context.Context, userID uint) ([]model.Medication, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Medication), args.Error(1)
}

func (m *MockMedicationRepository) DeleteByUserAndID(ctx context.Context, userID, medicationID uint) error {
	args := m.Called(ctx, userID, medicationID)
	return args.Error(0)
}

// MockDispatcher is a mock implementation of notify.Dispatcher.
type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) Send(ctx context.Context, token, title, body string, data map[string]string) notify.Result {
	args := m.Called(ctx, token, title, body, data)
	return args.Get(0).(notify.Result)
}

// MockTokenStore is a mock implementation of auth.TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID string, userID uint, email string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, userID, email, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (uint, string, error) {
	args := m.Called(ctx, tokenID)
	return args.Get(0).(uint), args.String(1), args.Error(2)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}
