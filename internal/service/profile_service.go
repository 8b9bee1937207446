package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"epicare/internal/cache"
	apperrors "epicare/internal/errors"
	"epicare/internal/model"
	"epicare/internal/repository"
)

const profileCacheTTL = 5 * time.Minute

// UserInfo is the profile projection exposed at the API boundary.
type UserInfo struct {
	ID          uint   `json:"id"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	Surname     string `json:"surname"`
	Phone       string `json:"phone"`
	Role        string `json:"role"`
	IsAvailable bool   `json:"is_available"`
	SeizureNote string `json:"seizure_note,omitempty"`
}

// ProfileUpdateInput carries mutable profile fields.
type ProfileUpdateInput struct {
	ID          uint
	FirstName   string
	Surname     string
	Phone       string
	SeizureNote string
}

// ProfileService handles profile, push token and availability operations.
type ProfileService interface {
	GetProfile(ctx context.Context, userID uint) (*UserInfo, error)
	UpdateProfile(ctx context.Context, input ProfileUpdateInput) error
	SavePushToken(ctx context.Context, email, token string) error
	GetAvailability(ctx context.Context, email string) (bool, error)
	SetAvailability(ctx context.Context, email string, available bool) error
	ListSupportUsers(ctx context.Context) ([]UserInfo, error)
}

type profileService struct {
	userRepo repository.UserRepository
	cache    *cache.Client
}

// NewProfileService builds a ProfileService with repository and cache.
func NewProfileService(userRepo repository.UserRepository, cache *cache.Client) ProfileService {
	return &profileService{userRepo: userRepo, cache: cache}
}

func (s *profileService) cacheKey(id uint) string {
	return fmt.Sprintf("profile:%d", id)
}

func toUserInfo(user *model.User) *UserInfo {
	return &UserInfo{
		ID:          user.ID,
		Email:       user.Email,
		FirstName:   user.FirstName,
		Surname:     user.Surname,
		Phone:       user.Phone,
		Role:        user.Role,
		IsAvailable: user.IsAvailable,
		SeizureNote: user.SeizureNote,
	}
}

// GetProfile retrieves a profile projection with cache-aside.
func (s *profileService) GetProfile(ctx context.Context, userID uint) (*UserInfo, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(userID)); data != nil {
		var cached UserInfo
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	info := toUserInfo(user)
	if payload, err := json.Marshal(info); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(userID), payload, profileCacheTTL)
	}
	return info, nil
}

// UpdateProfile updates the mutable profile fields.
func (s *profileService) UpdateProfile(ctx context.Context, input ProfileUpdateInput) error {
	user, err := s.userRepo.FindByID(ctx, input.ID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrUserNotFound
		}
		return err
	}

	user.FirstName = input.FirstName
	user.Surname = input.Surname
	user.Phone = input.Phone
	user.SeizureNote = input.SeizureNote

	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(user.ID))
	return nil
}

// SavePushToken stores the device push token for a user looked up by email.
func (s *profileService) SavePushToken(ctx context.Context, email, token string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrUserNotFound
		}
		return err
	}

	user.PushToken = token
	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("save push token: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(user.ID))
	return nil
}

// GetAvailability returns the availability flag for a user.
func (s *profileService) GetAvailability(ctx context.Context, email string) (bool, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, apperrors.ErrUserNotFound
		}
		return false, err
	}
	return user.IsAvailable, nil
}

// SetAvailability flips the availability flag for a user.
func (s *profileService) SetAvailability(ctx context.Context, email string, available bool) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrUserNotFound
		}
		return err
	}

	user.IsAvailable = available
	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("set availability: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(user.ID))
	return nil
}

// ListSupportUsers returns every SUPPORT-role user, for the frontend search.
func (s *profileService) ListSupportUsers(ctx context.Context) ([]UserInfo, error) {
	users, err := s.userRepo.FindByRole(ctx, model.RoleSupport)
	if err != nil {
		return nil, err
	}

	infos := make([]UserInfo, 0, len(users))
	for i := range users {
		infos = append(infos, *toUserInfo(&users[i]))
	}
	return infos, nil
}
