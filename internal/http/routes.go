package http

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func Register(e *echo.Echo, h *Handler, logger *zap.Logger) {
	e.HTTPErrorHandler = ErrorHandler(logger)

	e.GET("/todos", h.ListTodos)
	e.POST("/todos", h.CreateTodo)
	e.GET("/todos/:id", h.GetTodo)
	e.PUT("/todos/:id", h.UpdateTodo)
	e.DELETE("/todos/:id", h.DeleteTodo)
}
