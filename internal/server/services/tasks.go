package services

import (
	"context"
	"database/sql"

	"github.com/psustentables/taskboard/internal/server/models"
	"github.com/psustentables/taskboard/internal/server/repositories/repomanager"
)

type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewTaskService(db *sql.DB, m repomanager.RepositoryManager) *TaskService {
	return &TaskService{db: db, repomanager: m}
}

// Create inserts a new task. The assignee must be an existing user; the
// status defaults to Pending when none is given.
func (s *TaskService) Create(ctx context.Context, task *models.Task) (*models.Task, error) {

	if _, err := s.repomanager.Users(s.db).GetByID(ctx, task.AssigneeID); err != nil {
		return nil, err
	}

	if task.Status == "" {
		task.Status = models.StatusPending
	}

	return s.repomanager.Tasks(s.db).Create(ctx, task)
}

// Find returns tasks matching the filter, newest first.
func (s *TaskService) Find(ctx context.Context, filter models.TaskFilter) ([]*models.Task, error) {
	return s.repomanager.Tasks(s.db).Find(ctx, filter)
}

func (s *TaskService) GetByID(ctx context.Context, id int64) (*models.Task, error) {
	return s.repomanager.Tasks(s.db).GetByID(ctx, id)
}

// Update applies a partial edit to title/description/status.
func (s *TaskService) Update(ctx context.Context, id int64, patch models.TaskPatch) error {
	return s.repomanager.Tasks(s.db).Update(ctx, id, patch)
}

// SetStatus performs the quick status transition. An empty status is a no-op;
// values are not validated here, the web boundary checks them against the
// enumerated set.
func (s *TaskService) SetStatus(ctx context.Context, id int64, status models.Status) error {
	if status == "" {
		return nil
	}
	return s.repomanager.Tasks(s.db).SetStatus(ctx, id, status)
}

func (s *TaskService) Delete(ctx context.Context, id int64) error {
	return s.repomanager.Tasks(s.db).Delete(ctx, id)
}
