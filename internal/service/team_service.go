package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	apperrors "epicare/internal/errors"
	"epicare/internal/model"
	"epicare/internal/repository"
)

// TeamMember describes one supporter of a monitored user.
type TeamMember struct {
	FirstName   string `json:"first_name"`
	Surname     string `json:"surname"`
	Email       string `json:"email"`
	IsAvailable bool   `json:"is_available"`
}

// SupportedUser describes one monitored user from a supporter's point of view,
// annotated with the size of that user's full support team.
type SupportedUser struct {
	FirstName string `json:"first_name"`
	Surname   string `json:"surname"`
	Email     string `json:"email"`
	TeamSize  int64  `json:"team_size"`
}

// TeamService manages the support relation graph.
type TeamService interface {
	// AddSupport links a supporter to a monitored user. Adding an existing
	// pair is a no-op success (created=false).
	AddSupport(ctx context.Context, monitoredEmail, supportEmail string) (created bool, err error)
	RemoveSupport(ctx context.Context, monitoredEmail, supportEmail string) error
	Exists(ctx context.Context, monitoredUserID, supportUserID uint) (bool, error)
	ListTeam(ctx context.Context, monitoredEmail string) ([]TeamMember, error)
	ListSupportedUsers(ctx context.Context, supportEmail string) ([]SupportedUser, error)
}

type teamService struct {
	userRepo     repository.UserRepository
	relationRepo repository.RelationRepository
}

// NewTeamService creates a new team service.
func NewTeamService(userRepo repository.UserRepository, relationRepo repository.RelationRepository) TeamService {
	return &teamService{
		userRepo:     userRepo,
		relationRepo: relationRepo,
	}
}

func (s *teamService) resolveUser(ctx context.Context, email string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// AddSupport inserts the relation through an atomic insert-or-ignore, so two
// concurrent identical calls leave exactly one row.
func (s *teamService) AddSupport(ctx context.Context, monitoredEmail, supportEmail string) (bool, error) {
	monitored, err := s.resolveUser(ctx, monitoredEmail)
	if err != nil {
		return false, err
	}
	supporter, err := s.resolveUser(ctx, supportEmail)
	if err != nil {
		return false, err
	}

	relation := &model.SupportRelation{
		MonitoredUserID: monitored.ID,
		SupportUserID:   supporter.ID,
	}
	created, err := s.relationRepo.CreateIfAbsent(ctx, relation)
	if err != nil {
		// A unique-constraint violation slipping past the insert-or-ignore
		// still means the pair exists, which is a success here.
		if err == gorm.ErrDuplicatedKey {
			return false, nil
		}
		return false, fmt.Errorf("add support relation: %w", err)
	}
	return created, nil
}

// RemoveSupport deletes the relation if present; absent pairs are a no-op.
func (s *teamService) RemoveSupport(ctx context.Context, monitoredEmail, supportEmail string) error {
	monitored, err := s.resolveUser(ctx, monitoredEmail)
	if err != nil {
		return err
	}
	supporter, err := s.resolveUser(ctx, supportEmail)
	if err != nil {
		return err
	}
	return s.relationRepo.Delete(ctx, monitored.ID, supporter.ID)
}

func (s *teamService) Exists(ctx context.Context, monitoredUserID, supportUserID uint) (bool, error) {
	return s.relationRepo.Exists(ctx, monitoredUserID, supportUserID)
}

// ListTeam returns all supporters linked to a monitored user. No ordering guarantee.
func (s *teamService) ListTeam(ctx context.Context, monitoredEmail string) ([]TeamMember, error) {
	monitored, err := s.resolveUser(ctx, monitoredEmail)
	if err != nil {
		return nil, err
	}

	relations, err := s.relationRepo.FindByMonitoredUser(ctx, monitored.ID)
	if err != nil {
		return nil, err
	}

	members := make([]TeamMember, 0, len(relations))
	for _, relation := range relations {
		members = append(members, TeamMember{
			FirstName:   relation.SupportUser.FirstName,
			Surname:     relation.SupportUser.Surname,
			Email:       relation.SupportUser.Email,
			IsAvailable: relation.SupportUser.IsAvailable,
		})
	}
	return members, nil
}

// ListSupportedUsers returns the monitored users linked to a supporter, each
// annotated with their full team size for the UI.
func (s *teamService) ListSupportedUsers(ctx context.Context, supportEmail string) ([]SupportedUser, error) {
	supporter, err := s.resolveUser(ctx, supportEmail)
	if err != nil {
		return nil, err
	}

	relations, err := s.relationRepo.FindBySupportUser(ctx, supporter.ID)
	if err != nil {
		return nil, err
	}

	teams := make([]SupportedUser, 0, len(relations))
	for _, relation := range relations {
		teamSize, err := s.relationRepo.CountByMonitoredUser(ctx, relation.MonitoredUserID)
		if err != nil {
			return nil, err
		}
		teams = append(teams, SupportedUser{
			FirstName: relation.MonitoredUser.FirstName,
			Surname:   relation.MonitoredUser.Surname,
			Email:     relation.MonitoredUser.Email,
			TeamSize:  teamSize,
		})
	}
	return teams, nil
}
