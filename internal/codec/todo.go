// Package codec owns the wire format of a todo: {id?, time, description}.
// Decode requires time and description to be present, non-empty strings;
// any failure is reported as the generic invalid-data error. Encode emits
// the fields in id, time, description order and omits id when unset.
package codec

import (
	"encoding/json"

	errs "todo-service.com/todo-service/internal/errors"
	model "todo-service.com/todo-service/internal/models"
)

type payload struct {
	ID          *uint   `json:"id"`
	Time        *string `json:"time"`
	Description *string `json:"description"`
}

func Decode(data []byte) (*model.Todo, error) {
	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, errs.ErrInvalidTodoData
	}
	if p.Time == nil || *p.Time == "" {
		return nil, errs.ErrInvalidTodoData
	}
	if p.Description == nil || *p.Description == "" {
		return nil, errs.ErrInvalidTodoData
	}

	todo := &model.Todo{
		Time:        *p.Time,
		Description: *p.Description,
	}
	if p.ID != nil {
		todo.ID = *p.ID
	}

	return todo, nil
}

func Encode(todo *model.Todo) ([]byte, error) {
	return json.Marshal(todo)
}

func EncodeList(todos []model.Todo) ([]byte, error) {
	if todos == nil {
		todos = []model.Todo{}
	}
	return json.Marshal(todos)
}
