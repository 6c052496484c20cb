package http

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "feedboard/docs"
	"feedboard/internal/handler"
)

func NewRouter(
	feedbackHandler *handler.FeedbackHandler,
	healthHandler *handler.HealthHandler,
	staticDir string,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(RequestLoggerMiddleware())

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	feedbackHandler.RegisterRoutes(e)
	healthHandler.RegisterRoutes(e)

	registerStatic(e, staticDir)

	return e
}
