package validators

import (
	"unicode/utf8"

	errs "todo-service.com/todo-service/internal/errors"
	model "todo-service.com/todo-service/internal/models"
)

// maxDescriptionLen matches the persisted column size, counted in
// characters rather than bytes.
const maxDescriptionLen = 255

func ValidateTodo(todo *model.Todo) error {
	if todo.Time == "" {
		return errs.ErrInvalidTodoData
	}
	if todo.Description == "" || utf8.RuneCountInString(todo.Description) > maxDescriptionLen {
		return errs.ErrInvalidTodoData
	}
	return nil
}
