// Package repomanager wires repository constructors to a database handle so
// services can obtain repositories bound to either *sql.DB or a transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/psustentables/taskboard/internal/dbx"
	"github.com/psustentables/taskboard/internal/server/repositories/sessions"
	"github.com/psustentables/taskboard/internal/server/repositories/tasks"
	"github.com/psustentables/taskboard/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Sessions(db dbx.DBTX) sessions.Repository
	Tasks(db dbx.DBTX) tasks.Repository
}
