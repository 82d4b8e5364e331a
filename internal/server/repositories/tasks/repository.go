package tasks

import (
	"context"

	"github.com/psustentables/taskboard/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	GetByID(ctx context.Context, id int64) (*models.Task, error)
	Find(ctx context.Context, filter models.TaskFilter) ([]*models.Task, error)
	Update(ctx context.Context, id int64, patch models.TaskPatch) error
	SetStatus(ctx context.Context, id int64, status models.Status) error
	Delete(ctx context.Context, id int64) error
}
