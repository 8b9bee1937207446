package service

import (
	"context"
	"log"
	"strconv"
	"time"

	"gorm.io/gorm"

	apperrors "epicare/internal/errors"
	"epicare/internal/model"
	"epicare/internal/notify"
	"epicare/internal/repository"
)

const (
	alertTitle        = "Seizure Alert!"
	alertNavigateHint = "gps"
)

// Vitals is the optional sensor payload attached to an alert. A seizure event
// is only persisted when all three readings are present.
type Vitals struct {
	HeartRate *float64
	SpO2      *float64
	Movement  *int
}

// Complete reports whether every vitals field is supplied.
func (v Vitals) Complete() bool {
	return v.HeartRate != nil && v.SpO2 != nil && v.Movement != nil
}

// Location is an optional GPS coordinate pair attached to an alert.
type Location struct {
	Latitude  *float64
	Longitude *float64
}

// AlertOutcome summarizes a processed alert for the response and the logs.
type AlertOutcome struct {
	SeizureRecorded bool            `json:"seizure_recorded"`
	SupporterCount  int             `json:"supporter_count"`
	Attempted       int             `json:"notifications_attempted"`
	Delivered       int             `json:"notifications_delivered"`
	Results         []notify.Result `json:"-"`
}

// AlertService orchestrates the seizure alert: persist the event, then fan the
// notification out to the monitored user's support team.
type AlertService interface {
	RaiseSeizureAlert(ctx context.Context, monitoredEmail string, vitals Vitals, location Location) (*AlertOutcome, error)
}

type alertService struct {
	userRepo     repository.UserRepository
	relationRepo repository.RelationRepository
	seizureRepo  repository.SeizureRepository
	dispatcher   notify.Dispatcher
}

// NewAlertService creates a new alert orchestrator.
func NewAlertService(
	userRepo repository.UserRepository,
	relationRepo repository.RelationRepository,
	seizureRepo repository.SeizureRepository,
	dispatcher notify.Dispatcher,
) AlertService {
	return &alertService{
		userRepo:     userRepo,
		relationRepo: relationRepo,
		seizureRepo:  seizureRepo,
		dispatcher:   dispatcher,
	}
}

// RaiseSeizureAlert persists the seizure event (when vitals are complete) and
// then issues one dispatch attempt per supporter with a push token. The event
// is always persisted before any dispatch; delivery failures are logged and
// never abort the fan-out or fail the alert.
func (s *alertService) RaiseSeizureAlert(ctx context.Context, monitoredEmail string, vitals Vitals, location Location) (*AlertOutcome, error) {
	monitored, err := s.userRepo.FindByEmail(ctx, monitoredEmail)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	outcome := &AlertOutcome{}

	// Partial vitals are discarded without error: the alert still goes out.
	if vitals.Complete() {
		seizure := &model.Seizure{
			MonitoredUserID: monitored.ID,
			HeartRate:       *vitals.HeartRate,
			SpO2:            *vitals.SpO2,
			Movement:        *vitals.Movement,
			Timestamp:       time.Now(),
		}
		if err := s.seizureRepo.Create(ctx, seizure); err != nil {
			return nil, err
		}
		outcome.SeizureRecorded = true
	}

	relations, err := s.relationRepo.FindByMonitoredUser(ctx, monitored.ID)
	if err != nil {
		return nil, err
	}
	outcome.SupporterCount = len(relations)

	body := monitored.FirstName + " might need help!"
	data := map[string]string{"navigateTo": alertNavigateHint}
	if location.Latitude != nil && location.Longitude != nil {
		data["latitude"] = strconv.FormatFloat(*location.Latitude, 'f', -1, 64)
		data["longitude"] = strconv.FormatFloat(*location.Longitude, 'f', -1, 64)
	}

	for _, relation := range relations {
		supporter := relation.SupportUser
		if supporter.PushToken == "" {
			continue
		}

		result := s.dispatcher.Send(ctx, supporter.PushToken, alertTitle, body, data)
		outcome.Attempted++
		outcome.Results = append(outcome.Results, result)
		if result.Delivered {
			outcome.Delivered++
		} else {
			log.Printf("seizure alert: push to %s failed: %s", supporter.Email, result.Err)
		}
	}

	return outcome, nil
}
