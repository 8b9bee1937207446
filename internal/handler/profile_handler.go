package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"epicare/internal/errors"
	"epicare/internal/service"
)

// ProfileHandler handles profile, push token and availability endpoints.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// ProfileUpdateRequest represents a profile update request.
type ProfileUpdateRequest struct {
	ID          uint   `json:"id" validate:"required"`
	FirstName   string `json:"first_name" validate:"required"`
	Surname     string `json:"surname" validate:"required"`
	Phone       string `json:"phone"`
	SeizureNote string `json:"seizure_note"`
}

// PushTokenRequest represents a push token registration request.
type PushTokenRequest struct {
	Email     string `json:"email" validate:"required,email"`
	PushToken string `json:"push_token" validate:"required"`
}

// AvailabilityRequest represents an availability update request.
type AvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" validate:"required"`
}

// GetProfile godoc
// @Summary Get a user profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} service.UserInfo
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /profile/{id} [get]
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid user ID",
			Code:  "INVALID_ID",
		})
	}

	info, err := h.profileService.GetProfile(c.Request().Context(), uint(userID))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, info)
}

// UpdateProfile godoc
// @Summary Update a user profile
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ProfileUpdateRequest true "Profile data"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /profile [put]
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	var req ProfileUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.profileService.UpdateProfile(c.Request().Context(), service.ProfileUpdateInput{
		ID:          req.ID,
		FirstName:   req.FirstName,
		Surname:     req.Surname,
		Phone:       req.Phone,
		SeizureNote: req.SeizureNote,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "profile updated"})
}

// SavePushToken godoc
// @Summary Register a device push token
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PushTokenRequest true "Push token"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /profile/push-token [post]
func (h *ProfileHandler) SavePushToken(c echo.Context) error {
	var req PushTokenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.profileService.SavePushToken(c.Request().Context(), req.Email, req.PushToken); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "push token saved"})
}

// GetAvailability godoc
// @Summary Get a user's availability flag
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Param email path string true "User email"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{email}/availability [get]
func (h *ProfileHandler) GetAvailability(c echo.Context) error {
	available, err := h.profileService.GetAvailability(c.Request().Context(), c.Param("email"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]bool{"is_available": available})
}

// SetAvailability godoc
// @Summary Update a user's availability flag
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param email path string true "User email"
// @Param request body AvailabilityRequest true "Availability"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{email}/availability [post]
func (h *ProfileHandler) SetAvailability(c echo.Context) error {
	var req AvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.profileService.SetAvailability(c.Request().Context(), c.Param("email"), *req.IsAvailable); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "availability updated"})
}

// ListSupportUsers godoc
// @Summary List all support users
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.UserInfo
// @Failure 500 {object} errors.ErrorResponse
// @Router /support-users [get]
func (h *ProfileHandler) ListSupportUsers(c echo.Context) error {
	users, err := h.profileService.ListSupportUsers(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, users)
}
