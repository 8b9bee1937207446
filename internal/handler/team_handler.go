package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"epicare/internal/errors"
	"epicare/internal/service"
)

// TeamHandler handles support relation graph endpoints.
type TeamHandler struct {
	teamService service.TeamService
}

// NewTeamHandler creates a new team handler.
func NewTeamHandler(teamService service.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// SupportRelationRequest identifies a (monitored, support) pair.
type SupportRelationRequest struct {
	MonitoredUserEmail string `json:"monitored_user_email" validate:"required,email"`
	SupportUserEmail   string `json:"support_user_email" validate:"required,email"`
}

// ManageTeamRequest adds or removes a supporter depending on Activate.
type ManageTeamRequest struct {
	MonitoredUserEmail string `json:"monitored_user_email" validate:"required,email"`
	SupportUserEmail   string `json:"support_user_email" validate:"required,email"`
	Activate           *bool  `json:"activate" validate:"required"`
}

// AddSupport godoc
// @Summary Link a support user to a monitored user
// @Tags team
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SupportRelationRequest true "Relation"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /team/add [post]
func (h *TeamHandler) AddSupport(c echo.Context) error {
	var req SupportRelationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.teamService.AddSupport(c.Request().Context(), req.MonitoredUserEmail, req.SupportUserEmail)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	message := "support user added"
	if !created {
		message = "support user already on team"
	}
	return c.JSON(http.StatusOK, map[string]string{"message": message})
}

// RemoveSupport godoc
// @Summary Unlink a support user from a monitored user
// @Tags team
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SupportRelationRequest true "Relation"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /team/remove [post]
func (h *TeamHandler) RemoveSupport(c echo.Context) error {
	var req SupportRelationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.teamService.RemoveSupport(c.Request().Context(), req.MonitoredUserEmail, req.SupportUserEmail); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "support user removed"})
}

// ManageTeam godoc
// @Summary Add or remove a supporter via the activate flag
// @Tags team
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ManageTeamRequest true "Relation and direction"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /team/manage [post]
func (h *TeamHandler) ManageTeam(c echo.Context) error {
	var req ManageTeamRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	if *req.Activate {
		created, err := h.teamService.AddSupport(ctx, req.MonitoredUserEmail, req.SupportUserEmail)
		if err != nil {
			httpErr := errors.MapErrorToHTTP(err)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
		if !created {
			return c.JSON(http.StatusOK, map[string]string{"message": "no changes needed"})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "support user added to team"})
	}

	if err := h.teamService.RemoveSupport(ctx, req.MonitoredUserEmail, req.SupportUserEmail); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "support user removed from team"})
}

// GetTeam godoc
// @Summary List supporters of a monitored user
// @Tags team
// @Produce json
// @Security BearerAuth
// @Param email path string true "Monitored user email"
// @Success 200 {object} map[string][]service.TeamMember
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{email}/team [get]
func (h *TeamHandler) GetTeam(c echo.Context) error {
	members, err := h.teamService.ListTeam(c.Request().Context(), c.Param("email"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string][]service.TeamMember{"team_members": members})
}

// GetSupportTeams godoc
// @Summary List monitored users linked to a supporter
// @Tags team
// @Produce json
// @Security BearerAuth
// @Param email path string true "Support user email"
// @Success 200 {array} service.SupportedUser
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{email}/support-teams [get]
func (h *TeamHandler) GetSupportTeams(c echo.Context) error {
	teams, err := h.teamService.ListSupportedUsers(c.Request().Context(), c.Param("email"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, teams)
}
