package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"epicare/internal/errors"
	"epicare/internal/service"
)

// SeizureHandler handles the seizure alert, listing and note endpoints.
type SeizureHandler struct {
	alertService   service.AlertService
	seizureService service.SeizureService
}

// NewSeizureHandler creates a new seizure handler.
func NewSeizureHandler(alertService service.AlertService, seizureService service.SeizureService) *SeizureHandler {
	return &SeizureHandler{
		alertService:   alertService,
		seizureService: seizureService,
	}
}

// SeizureAlertRequest represents an inbound seizure alert. Vitals and location
// are optional; an event is only recorded when all three vitals are present.
type SeizureAlertRequest struct {
	MonitoredUserEmail string   `json:"monitored_user_email" validate:"required,email"`
	HeartRate          *float64 `json:"heart_rate"`
	SpO2               *float64 `json:"sp_o2"`
	Movement           *int     `json:"movement"`
	Latitude           *float64 `json:"latitude"`
	Longitude          *float64 `json:"longitude"`
}

// SeizureNoteRequest updates the free-text note on a seizure record.
type SeizureNoteRequest struct {
	Note string `json:"note"`
}

// RaiseAlert godoc
// @Summary Trigger a seizure alert
// @Description Persists the seizure event when all vitals are supplied, then notifies the support team. The response reports success once all notification attempts were issued, regardless of individual delivery outcomes.
// @Tags seizures
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SeizureAlertRequest true "Alert data"
// @Success 200 {object} service.AlertOutcome
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /seizures/alert [post]
func (h *SeizureHandler) RaiseAlert(c echo.Context) error {
	var req SeizureAlertRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	outcome, err := h.alertService.RaiseSeizureAlert(
		c.Request().Context(),
		req.MonitoredUserEmail,
		service.Vitals{HeartRate: req.HeartRate, SpO2: req.SpO2, Movement: req.Movement},
		service.Location{Latitude: req.Latitude, Longitude: req.Longitude},
	)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, outcome)
}

// ListSeizures godoc
// @Summary List seizures by monitored or support user email
// @Tags seizures
// @Produce json
// @Security BearerAuth
// @Param monitored_user_email query string false "Monitored user email"
// @Param support_user_email query string false "Support user email"
// @Success 200 {array} service.SeizureDTO
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /seizures [get]
func (h *SeizureHandler) ListSeizures(c echo.Context) error {
	seizures, err := h.seizureService.ListSeizures(
		c.Request().Context(),
		c.QueryParam("monitored_user_email"),
		c.QueryParam("support_user_email"),
	)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, seizures)
}

// UpdateNote godoc
// @Summary Update the note on a seizure record
// @Tags seizures
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Seizure ID"
// @Param request body SeizureNoteRequest true "Note"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /seizures/{id}/note [patch]
func (h *SeizureHandler) UpdateNote(c echo.Context) error {
	seizureID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid seizure ID",
			Code:  "INVALID_ID",
		})
	}

	var req SeizureNoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := h.seizureService.UpdateNote(c.Request().Context(), uint(seizureID), req.Note); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "note updated"})
}
