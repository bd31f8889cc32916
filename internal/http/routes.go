package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	middleware "task-track-service.com/task-track-service/internal/http/middlewares"
	"task-track-service.com/task-track-service/internal/http/validators"
)

func Register(e *echo.Echo, h *Handler, rateLimitPerMinute int) {
	e.HideBanner = true
	e.HTTPErrorHandler = ErrorHandler
	e.Validator = validators.New()

	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(echomw.CORS())
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))
	e.Use(middleware.RequestLogger(zap.L()))

	e.POST("/tasks", h.CreateTask)
	e.GET("/tasks", h.ListTasks)
	e.GET("/tasks/:id", h.GetTask)
	e.PUT("/tasks/:id", h.UpdateTask)
	e.DELETE("/tasks/:id", h.DeleteTask)
}
