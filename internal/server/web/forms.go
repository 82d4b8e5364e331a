package web

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/psustentables/taskboard/internal/server/models"
)

// Typed request structs per endpoint, validated at the boundary before any
// service call. Parse errors carry the user-facing message.

type registerForm struct {
	Username string
	Email    string
	Password string
}

func parseRegisterForm(r *http.Request) (registerForm, error) {
	f := registerForm{
		Username: strings.TrimSpace(r.FormValue("username")),
		Email:    strings.TrimSpace(r.FormValue("email")),
		Password: r.FormValue("password"),
	}
	if f.Username == "" || f.Email == "" || f.Password == "" {
		return f, errors.New("username, email and password are required")
	}
	return f, nil
}

type loginForm struct {
	Username string
	Password string
}

func parseLoginForm(r *http.Request) (loginForm, error) {
	f := loginForm{
		Username: strings.TrimSpace(r.FormValue("username")),
		Password: r.FormValue("password"),
	}
	if f.Username == "" || f.Password == "" {
		return f, errors.New("username and password are required")
	}
	return f, nil
}

type newTaskForm struct {
	Title       string
	Description string
	AssigneeID  int64
}

func parseNewTaskForm(r *http.Request) (newTaskForm, error) {
	f := newTaskForm{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Description: strings.TrimSpace(r.FormValue("description")),
	}
	if f.Title == "" {
		return f, errors.New("title is required")
	}

	assigneeID, err := strconv.ParseInt(r.FormValue("user_id"), 10, 64)
	if err != nil || assigneeID <= 0 {
		return f, errors.New("a valid assignee is required")
	}
	f.AssigneeID = assigneeID

	return f, nil
}

type editTaskForm struct {
	Title       string
	Description string
	Status      models.Status
}

func parseEditTaskForm(r *http.Request) (editTaskForm, error) {
	f := editTaskForm{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Description: strings.TrimSpace(r.FormValue("description")),
		Status:      models.Status(r.FormValue("status")),
	}
	if f.Title == "" {
		return f, errors.New("title is required")
	}
	if !models.ValidStatus(f.Status) {
		return f, errors.New("unknown status")
	}
	return f, nil
}

type statusForm struct {
	Status models.Status
}

// parseStatusForm accepts an empty status (the operation is then a no-op)
// but rejects values outside the enumerated set.
func parseStatusForm(r *http.Request) (statusForm, error) {
	f := statusForm{Status: models.Status(r.FormValue("status"))}
	if f.Status != "" && !models.ValidStatus(f.Status) {
		return f, errors.New("unknown status")
	}
	return f, nil
}

type profileForm struct {
	NewPassword string
}

func parseProfileForm(r *http.Request) profileForm {
	return profileForm{NewPassword: r.FormValue("new_password")}
}

func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}
