package http

import (
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"todo-service.com/todo-service/internal/codec"
	errs "todo-service.com/todo-service/internal/errors"
	"todo-service.com/todo-service/internal/http/validators"
	model "todo-service.com/todo-service/internal/models"
	"todo-service.com/todo-service/internal/services"
)

type Handler struct {
	todoService *services.TodoService
}

func NewHandler(todoService *services.TodoService) *Handler {
	return &Handler{
		todoService: todoService,
	}
}

func (h *Handler) ListTodos(c echo.Context) error {
	todos, err := h.todoService.ListTodos(c.Request().Context())
	if err != nil {
		return err
	}

	body, err := codec.EncodeList(todos)
	if err != nil {
		return err
	}

	return c.JSONBlob(http.StatusOK, body)
}

func (h *Handler) CreateTodo(c echo.Context) error {
	req, err := h.decodeBody(c)
	if err != nil {
		return err
	}

	todo, err := h.todoService.CreateTodo(c.Request().Context(), req.Time, req.Description)
	if err != nil {
		return err
	}

	body, err := codec.Encode(todo)
	if err != nil {
		return err
	}

	return c.JSONBlob(http.StatusCreated, body)
}

func (h *Handler) GetTodo(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	todo, err := h.todoService.GetTodo(c.Request().Context(), id)
	if err != nil {
		return err
	}

	body, err := codec.Encode(todo)
	if err != nil {
		return err
	}

	return c.JSONBlob(http.StatusOK, body)
}

func (h *Handler) UpdateTodo(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	req, err := h.decodeBody(c)
	if err != nil {
		return err
	}

	todo, err := h.todoService.UpdateTodo(c.Request().Context(), id, req.Time, req.Description)
	if err != nil {
		return err
	}

	body, err := codec.Encode(todo)
	if err != nil {
		return err
	}

	return c.JSONBlob(http.StatusOK, body)
}

func (h *Handler) DeleteTodo(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.todoService.DeleteTodo(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// decodeBody runs the full inbound validation: wire decode plus the
// persisted-form constraints. Both failures carry the same generic error.
func (h *Handler) decodeBody(c echo.Context) (*model.Todo, error) {
	data, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, errs.ErrInvalidTodoData
	}

	todo, err := codec.Decode(data)
	if err != nil {
		return nil, err
	}

	if err := validators.ValidateTodo(todo); err != nil {
		return nil, err
	}

	return todo, nil
}

// parseID reads the :id path segment. A non-integer segment can match no
// row, so it reports not-found rather than a validation failure.
func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, errs.ErrTodoNotFound
	}
	return uint(id), nil
}
