// Package tasks provides a PostgreSQL-backed repository for task records.
package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/psustentables/taskboard/internal/common"
	"github.com/psustentables/taskboard/internal/dbx"
	"github.com/psustentables/taskboard/internal/server/models"
)

// PostgresRepository implements task persistence over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {

	query :=
		`INSERT INTO tasks (title, description, status, due_date, user_id, created_by)
         VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		task.Title, task.Description, task.Status, task.DueDate, task.AssigneeID, task.CreatedBy).
		Scan(&task.ID, &task.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return task, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Task, error) {
	query :=
		`SELECT id, title, description, status, created_at, due_date, user_id, created_by FROM tasks
		 WHERE id = $1
		 `

	task, err := scanTask(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return task, nil
}

// Find returns tasks matching the filter, newest first. Zero-valued filter
// fields are skipped; set fields combine with AND. Substring matching on the
// title is case-sensitive (plain LIKE).
func (r *PostgresRepository) Find(ctx context.Context, filter models.TaskFilter) ([]*models.Task, error) {

	query :=
		`SELECT id, title, description, status, created_at, due_date, user_id, created_by FROM tasks`

	var conds []string
	var args []any

	if filter.TitleContains != "" {
		args = append(args, "%"+filter.TitleContains+"%")
		conds = append(conds, fmt.Sprintf("title LIKE $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}

	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

// Update applies the non-nil patch fields to the task row.
// If no field is set, it is a no-op.
func (r *PostgresRepository) Update(ctx context.Context, id int64, patch models.TaskPatch) error {

	var sets []string
	args := []any{id}

	if patch.Title != nil {
		args = append(args, *patch.Title)
		sets = append(sets, fmt.Sprintf("title = $%d", len(args)))
	}
	if patch.Description != nil {
		args = append(args, *patch.Description)
		sets = append(sets, fmt.Sprintf("description = $%d", len(args)))
	}
	if patch.Status != nil {
		args = append(args, *patch.Status)
		sets = append(sets, fmt.Sprintf("status = $%d", len(args)))
	}

	if len(sets) == 0 {
		return nil
	}

	query := fmt.Sprintf(`UPDATE tasks SET %s WHERE id = $1`, strings.Join(sets, ", "))

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return checkAffected(res)
}

func (r *PostgresRepository) SetStatus(ctx context.Context, id int64, status models.Status) error {
	query :=
		`UPDATE tasks SET status = $2
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return checkAffected(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query :=
		`DELETE FROM tasks
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return checkAffected(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*models.Task, error) {
	task := &models.Task{}
	var dueDate sql.NullTime
	var createdBy sql.NullString

	err := row.Scan(&task.ID, &task.Title, &task.Description, &task.Status,
		&task.CreatedAt, &dueDate, &task.AssigneeID, &createdBy)
	if err != nil {
		return nil, err
	}

	if dueDate.Valid {
		task.DueDate = &dueDate.Time
	}
	task.CreatedBy = createdBy.String

	return task, nil
}

func checkAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}
	return nil
}
