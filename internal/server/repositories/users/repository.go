package users

import (
	"context"

	"github.com/psustentables/taskboard/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	UpdatePasswordHash(ctx context.Context, id int64, passwordHash string) error
}
