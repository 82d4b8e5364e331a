package tasks

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/psustentables/taskboard/internal/common"
	"github.com/psustentables/taskboard/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

var taskColumns = []string{"id", "title", "description", "status", "created_at", "due_date", "user_id", "created_by"}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+tasks\s*\(title,\s*description,\s*status,\s*due_date,\s*user_id,\s*created_by\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5,\s*\$6\)\s*RETURNING\s+id,\s*created_at\s*$`

	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), created)
	mock.ExpectQuery(q).
		WithArgs("Ship box", "pack and label", string(models.StatusPending), nil, int64(1), "alice").
		WillReturnRows(rows)

	task := &models.Task{
		Title:       "Ship box",
		Description: "pack and label",
		Status:      models.StatusPending,
		AssigneeID:  1,
		CreatedBy:   "alice",
	}
	got, err := repo.Create(context.Background(), task)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 7 || !got.CreatedAt.Equal(created) {
		t.Fatalf("unexpected task: %+v", got)
	}
}

func TestGetByID_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*title,.*FROM\s+tasks\s+WHERE\s+id\s*=\s*\$1\s*$`

	rows := sqlmock.NewRows(taskColumns).
		AddRow(int64(7), "Ship box", "pack and label", string(models.StatusPending),
			time.Now(), nil, int64(1), "alice")
	mock.ExpectQuery(q).
		WithArgs(int64(7)).
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.Title != "Ship box" || got.Status != models.StatusPending || got.DueDate != nil {
		t.Fatalf("unexpected task: %+v", got)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+id,\s*title,.*WHERE\s+id\s*=\s*\$1\s*$`).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 99)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestFind_NoFilter(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*title,.*FROM\s+tasks\s+ORDER\s+BY\s+created_at\s+DESC\s*$`

	rows := sqlmock.NewRows(taskColumns).
		AddRow(int64(2), "newest", "", string(models.StatusPending), time.Now(), nil, int64(1), "alice").
		AddRow(int64(1), "oldest", "", string(models.StatusCompleted), time.Now().Add(-time.Hour), nil, int64(1), nil)
	mock.ExpectQuery(q).WillReturnRows(rows)

	got, err := repo.Find(context.Background(), models.TaskFilter{})
	if err != nil {
		t.Fatalf("Find error: %v", err)
	}
	if len(got) != 2 || got[0].Title != "newest" || got[1].CreatedBy != "" {
		t.Fatalf("unexpected tasks: %+v", got)
	}
}

func TestFind_TitleAndStatus(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*title,.*FROM\s+tasks\s+WHERE\s+title\s+LIKE\s+\$1\s+AND\s+status\s*=\s*\$2\s+ORDER\s+BY\s+created_at\s+DESC\s*$`

	rows := sqlmock.NewRows(taskColumns).
		AddRow(int64(3), "Ship box", "", string(models.StatusCompleted), time.Now(), nil, int64(1), "alice")
	mock.ExpectQuery(q).
		WithArgs("%box%", string(models.StatusCompleted)).
		WillReturnRows(rows)

	got, err := repo.Find(context.Background(), models.TaskFilter{TitleContains: "box", Status: models.StatusCompleted})
	if err != nil {
		t.Fatalf("Find error: %v", err)
	}
	if len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("unexpected tasks: %+v", got)
	}
}

func TestFind_StatusOnly(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*title,.*FROM\s+tasks\s+WHERE\s+status\s*=\s*\$1\s+ORDER\s+BY\s+created_at\s+DESC\s*$`

	mock.ExpectQuery(q).
		WithArgs(string(models.StatusPending)).
		WillReturnRows(sqlmock.NewRows(taskColumns))

	got, err := repo.Find(context.Background(), models.TaskFilter{Status: models.StatusPending})
	if err != nil {
		t.Fatalf("Find error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no tasks, got %+v", got)
	}
}

func TestUpdate_AllFields(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+tasks\s+SET\s+title\s*=\s*\$2,\s*description\s*=\s*\$3,\s*status\s*=\s*\$4\s+WHERE\s+id\s*=\s*\$1\s*$`

	mock.ExpectExec(q).
		WithArgs(int64(7), "new title", "new desc", string(models.StatusInProgress)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	title, desc, status := "new title", "new desc", models.StatusInProgress
	err := repo.Update(context.Background(), 7, models.TaskPatch{Title: &title, Description: &desc, Status: &status})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
}

func TestUpdate_TitleOnly(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+tasks\s+SET\s+title\s*=\s*\$2\s+WHERE\s+id\s*=\s*\$1\s*$`

	mock.ExpectExec(q).
		WithArgs(int64(7), "renamed").
		WillReturnResult(sqlmock.NewResult(0, 1))

	title := "renamed"
	if err := repo.Update(context.Background(), 7, models.TaskPatch{Title: &title}); err != nil {
		t.Fatalf("Update error: %v", err)
	}
}

func TestUpdate_EmptyPatchIsNoop(t *testing.T) {
	repo, _, db := newRepoWithMock(t)
	defer db.Close()

	if err := repo.Update(context.Background(), 7, models.TaskPatch{}); err != nil {
		t.Fatalf("Update error: %v", err)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^UPDATE\s+tasks\s+SET\s+title\s*=\s*\$2\s+WHERE\s+id\s*=\s*\$1\s*$`).
		WithArgs(int64(99), "x").
		WillReturnResult(sqlmock.NewResult(0, 0))

	title := "x"
	err := repo.Update(context.Background(), 99, models.TaskPatch{Title: &title})
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestSetStatus_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+tasks\s+SET\s+status\s*=\s*\$2\s+WHERE\s+id\s*=\s*\$1\s*$`

	mock.ExpectExec(q).
		WithArgs(int64(7), string(models.StatusCompleted)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SetStatus(context.Background(), 7, models.StatusCompleted); err != nil {
		t.Fatalf("SetStatus error: %v", err)
	}
}

func TestDelete_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^DELETE\s+FROM\s+tasks\s+WHERE\s+id\s*=\s*\$1\s*$`

	mock.ExpectExec(q).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), 7); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^DELETE\s+FROM\s+tasks\s+WHERE\s+id\s*=\s*\$1\s*$`).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 99)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestDelete_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^DELETE\s+FROM\s+tasks\s+WHERE\s+id\s*=\s*\$1\s*$`).
		WithArgs(int64(7)).
		WillReturnError(errors.New("db down"))

	err := repo.Delete(context.Background(), 7)
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
