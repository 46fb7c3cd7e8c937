package repository

import (
	"context"

	"apiTareas/models"
)

// TaskRepository defines operations on Task entities.
type TaskRepositoryI interface {
	List(ctx context.Context) ([]models.Task, error)
	GetByID(ctx context.Context, id int64) (*models.Task, error)
	Create(ctx context.Context, titulo, descripcion string) (*models.Task, error)
	Update(ctx context.Context, id int64, titulo, descripcion string) (*models.Task, error)
	Delete(ctx context.Context, id int64) error
}

// UserRepository defines operations on User entities.
type UserRepositoryI interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, username, passwordHash string) (*models.User, error)
}
