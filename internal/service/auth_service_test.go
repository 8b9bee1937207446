package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"epicare/internal/auth"
	"epicare/internal/model"
)

func TestAuthService_Signup(t *testing.T) {
	tests := []struct {
		name    string
		input   SignupInput
		setup   func(userRepo *MockUserRepository)
		wantErr error
	}{
		{
			name:  "creates monitored user",
			input: SignupInput{Email: "a@x.com", Password: "secret1", FirstName: "Alma", Surname: "Lindqvist", Role: model.RoleMonitored},
			setup: func(userRepo *MockUserRepository) {
				userRepo.On("FindByEmail", mock.Anything, "a@x.com").Return(nil, gorm.ErrRecordNotFound)
				userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
					return u.Email == "a@x.com" && u.Role == model.RoleMonitored && u.IsAvailable &&
						bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1")) == nil
				})).Return(nil)
			},
		},
		{
			name:  "rejects duplicate email",
			input: SignupInput{Email: "a@x.com", Password: "secret1", FirstName: "Alma", Surname: "Lindqvist", Role: model.RoleMonitored},
			setup: func(userRepo *MockUserRepository) {
				userRepo.On("FindByEmail", mock.Anything, "a@x.com").Return(&model.User{ID: 1, Email: "a@x.com"}, nil)
			},
			wantErr: ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			tt.setup(userRepo)

			svc := NewAuthService(userRepo, auth.NewJWTService("test-secret"), new(MockTokenStore))
			user, err := svc.Signup(context.Background(), tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, user)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	assert.NoError(t, err)
	stored := &model.User{ID: 1, Email: "a@x.com", PasswordHash: string(hash), Role: model.RoleMonitored}

	t.Run("valid credentials return tokens", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		tokenStore := new(MockTokenStore)

		userRepo.On("FindByEmail", mock.Anything, "a@x.com").Return(stored, nil)
		tokenStore.On("StoreRefreshToken", mock.Anything, mock.Anything, uint(1), "a@x.com", auth.RefreshTokenExpiry).Return(nil)

		svc := NewAuthService(userRepo, auth.NewJWTService("test-secret"), tokenStore)
		access, refresh, user, err := svc.Login(context.Background(), "a@x.com", "secret1")

		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		assert.Equal(t, model.RoleMonitored, user.Role)
		tokenStore.AssertExpectations(t)
	})

	t.Run("wrong password", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByEmail", mock.Anything, "a@x.com").Return(stored, nil)

		svc := NewAuthService(userRepo, auth.NewJWTService("test-secret"), new(MockTokenStore))
		_, _, _, err := svc.Login(context.Background(), "a@x.com", "wrong")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByEmail", mock.Anything, "ghost@x.com").Return(nil, gorm.ErrRecordNotFound)

		svc := NewAuthService(userRepo, auth.NewJWTService("test-secret"), new(MockTokenStore))
		_, _, _, err := svc.Login(context.Background(), "ghost@x.com", "secret1")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	stored := &model.User{ID: 1, Email: "a@x.com", Role: model.RoleMonitored}

	t.Run("valid refresh token", func(t *testing.T) {
		tokenID, refreshToken, err := jwtService.GenerateRefreshToken(1, "a@x.com")
		assert.NoError(t, err)

		userRepo := new(MockUserRepository)
		tokenStore := new(MockTokenStore)
		tokenStore.On("GetRefreshToken", mock.Anything, tokenID).Return(uint(1), "a@x.com", nil)
		userRepo.On("FindByID", mock.Anything, uint(1)).Return(stored, nil)

		svc := NewAuthService(userRepo, jwtService, tokenStore)
		access, err := svc.RefreshToken(context.Background(), refreshToken)

		assert.NoError(t, err)
		assert.NotEmpty(t, access)
	})

	t.Run("token missing from store", func(t *testing.T) {
		tokenID, refreshToken, err := jwtService.GenerateRefreshToken(1, "a@x.com")
		assert.NoError(t, err)

		tokenStore := new(MockTokenStore)
		tokenStore.On("GetRefreshToken", mock.Anything, tokenID).Return(uint(0), "", assert.AnError)

		svc := NewAuthService(new(MockUserRepository), jwtService, tokenStore)
		_, err = svc.RefreshToken(context.Background(), refreshToken)

		assert.ErrorIs(t, err, ErrInvalidRefreshToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		svc := NewAuthService(new(MockUserRepository), jwtService, new(MockTokenStore))
		_, err := svc.RefreshToken(context.Background(), "not-a-jwt")

		assert.ErrorIs(t, err, ErrInvalidRefreshToken)
	})
}

func TestAuthService_Logout(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	tokenID, refreshToken, err := jwtService.GenerateRefreshToken(1, "a@x.com")
	assert.NoError(t, err)

	tokenStore := new(MockTokenStore)
	tokenStore.On("DeleteRefreshToken", mock.Anything, tokenID).Return(nil).Once()

	svc := NewAuthService(new(MockUserRepository), jwtService, tokenStore)
	assert.NoError(t, svc.Logout(context.Background(), refreshToken))
	tokenStore.AssertExpectations(t)
}
