package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"epicare/internal/config"
	"epicare/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	teamHandler *handler.TeamHandler,
	seizureHandler *handler.SeizureHandler,
	medicationHandler *handler.MedicationHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/signup", authHandler.Signup)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))

	// Profile routes
	secured.GET("/profile/:id", profileHandler.GetProfile)
	secured.PUT("/profile", profileHandler.UpdateProfile)
	secured.POST("/profile/push-token", profileHandler.SavePushToken)
	secured.GET("/support-users", profileHandler.ListSupportUsers)
	secured.GET("/users/:email/availability", profileHandler.GetAvailability)
	secured.POST("/users/:email/availability", profileHandler.SetAvailability)

	// Support team routes
	secured.POST("/team/add", teamHandler.AddSupport)
	secured.POST("/team/remove", teamHandler.RemoveSupport)
	secured.POST("/team/manage", teamHandler.ManageTeam)
	secured.GET("/users/:email/team", teamHandler.GetTeam)
	secured.GET("/users/:email/support-teams", teamHandler.GetSupportTeams)

	// Seizure routes
	secured.POST("/seizures/alert", seizureHandler.RaiseAlert)
	secured.GET("/seizures", seizureHandler.ListSeizures)
	secured.PATCH("/seizures/:id/note", seizureHandler.UpdateNote)

	// Medication routes
	secured.GET("/medications/user/:userId", medicationHandler.ListMedications)
	secured.POST("/medications", medicationHandler.SaveMedication)
	secured.DELETE("/medications/:userId/:medicationId", medicationHandler.DeleteMedication)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
