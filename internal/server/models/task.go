package models

import "time"

// Status enumerates the task workflow states. It is stored as text; the
// web boundary validates submitted values against this set, the store
// itself stays permissive.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

// ValidStatus reports whether s is one of the enumerated workflow states.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Task is a unit of work assigned to a user. CreatedBy is free text kept
// for audit display only and is not a foreign key.
type Task struct {
	ID          int64
	Title       string
	Description string
	Status      Status
	CreatedAt   time.Time
	DueDate     *time.Time
	AssigneeID  int64
	CreatedBy   string
}

// TaskFilter narrows a task listing. Zero-valued fields are ignored;
// set fields combine with logical AND.
type TaskFilter struct {
	TitleContains string
	Status        Status
}

// TaskPatch is a partial update applied by the edit form. Nil fields are
// left unchanged.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *Status
}
