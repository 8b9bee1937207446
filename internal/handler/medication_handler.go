package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"epicare/internal/errors"
	"epicare/internal/service"
)

// MedicationHandler handles medication endpoints.
type MedicationHandler struct {
	medicationService service.MedicationService
}

// NewMedicationHandler creates a new medication handler.
func NewMedicationHandler(medicationService service.MedicationService) *MedicationHandler {
	return &MedicationHandler{medicationService: medicationService}
}

// MedicationRequest represents a create-or-update medication request.
// A zero ID creates a new medication.
type MedicationRequest struct {
	ID      uint   `json:"id"`
	UserID  uint   `json:"user_id" validate:"required"`
	Name    string `json:"name" validate:"required"`
	Dose    string `json:"dose"`
	Time    string `json:"time" validate:"required"`
	Enabled bool   `json:"enabled"`
}

// ListMedications godoc
// @Summary List a user's medications
// @Tags medications
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Success 200 {array} service.MedicationInfo
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /medications/user/{userId} [get]
func (h *MedicationHandler) ListMedications(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid user ID",
			Code:  "INVALID_ID",
		})
	}

	medications, err := h.medicationService.ListMedications(c.Request().Context(), uint(userID))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, medications)
}

// SaveMedication godoc
// @Summary Create or update a medication
// @Tags medications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body MedicationRequest true "Medication"
// @Success 200 {object} service.MedicationInfo
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /medications [post]
func (h *MedicationHandler) SaveMedication(c echo.Context) error {
	var req MedicationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	saved, err := h.medicationService.SaveMedication(c.Request().Context(), service.MedicationInfo{
		ID:      req.ID,
		UserID:  req.UserID,
		Name:    req.Name,
		Dose:    req.Dose,
		Time:    req.Time,
		Enabled: req.Enabled,
	})
	if err != nil {
		if err == errors.ErrUserNotFound || err == errors.ErrMedicationNotFound {
			httpErr := errors.MapErrorToHTTP(err)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "INVALID_MEDICATION",
		})
	}
	return c.JSON(http.StatusOK, saved)
}

// DeleteMedication godoc
// @Summary Delete a medication
// @Tags medications
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Param medicationId path int true "Medication ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /medications/{userId}/{medicationId} [delete]
func (h *MedicationHandler) DeleteMedication(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid user ID",
			Code:  "INVALID_ID",
		})
	}
	medicationID, err := strconv.ParseUint(c.Param("medicationId"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid medication ID",
			Code:  "INVALID_ID",
		})
	}

	if err := h.medicationService.DeleteMedication(c.Request().Context(), uint(userID), uint(medicationID)); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "medication deleted"})
}
