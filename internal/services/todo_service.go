package services

import (
	"context"

	errs "todo-service.com/todo-service/internal/errors"
	model "todo-service.com/todo-service/internal/models"
	repository "todo-service.com/todo-service/internal/repositories"
)

type TodoService struct {
	repo *repository.TodoRepository
}

func NewTodoService(repo *repository.TodoRepository) *TodoService {
	return &TodoService{repo: repo}
}

func (s *TodoService) ListTodos(ctx context.Context) ([]model.Todo, error) {
	return s.repo.List(ctx)
}

func (s *TodoService) CreateTodo(ctx context.Context, timeValue, description string) (*model.Todo, error) {
	return s.repo.Create(ctx, timeValue, description)
}

func (s *TodoService) GetTodo(ctx context.Context, id uint) (*model.Todo, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateTodo fully replaces time and description for the given id. The
// affected count from the single UPDATE distinguishes not-found from
// success; there is no separate existence check.
func (s *TodoService) UpdateTodo(ctx context.Context, id uint, timeValue, description string) (*model.Todo, error) {
	affected, err := s.repo.Update(ctx, id, timeValue, description)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, errs.ErrTodoNotFound
	}

	return &model.Todo{
		ID:          id,
		Time:        timeValue,
		Description: description,
	}, nil
}

func (s *TodoService) DeleteTodo(ctx context.Context, id uint) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errs.ErrTodoNotFound
	}
	return nil
}
