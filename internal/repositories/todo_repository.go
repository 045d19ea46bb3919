package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	errs "todo-service.com/todo-service/internal/errors"
	model "todo-service.com/todo-service/internal/models"
)

type TodoRepository struct {
	db *gorm.DB
}

func NewTodoRepository(db *gorm.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

// Create persists a new row and returns it with the store-assigned id.
// Any id on a candidate never reaches the store; the insert always lets
// sqlite assign the key.
func (r *TodoRepository) Create(ctx context.Context, timeValue, description string) (*model.Todo, error) {
	todo := &model.Todo{
		Time:        timeValue,
		Description: description,
	}

	if err := r.db.WithContext(ctx).Create(todo).Error; err != nil {
		return nil, err
	}

	return todo, nil
}

func (r *TodoRepository) FindByID(ctx context.Context, id uint) (*model.Todo, error) {
	var todo model.Todo
	err := r.db.WithContext(ctx).First(&todo, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrTodoNotFound
		}
		return nil, err
	}
	return &todo, nil
}

func (r *TodoRepository) List(ctx context.Context) ([]model.Todo, error) {
	var todos []model.Todo
	err := r.db.WithContext(ctx).Order("id asc").Find(&todos).Error
	return todos, err
}

// Update replaces time and description for the row matching id and reports
// how many rows matched (0 or 1). A zero count means no mutation happened.
func (r *TodoRepository) Update(ctx context.Context, id uint, timeValue, description string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Todo{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"time":        timeValue,
			"description": description,
		})

	if res.Error != nil {
		return 0, res.Error
	}

	return res.RowsAffected, nil
}

// Delete removes the row matching id and reports how many rows matched.
func (r *TodoRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Todo{}, "id = ?", id)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
