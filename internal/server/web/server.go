// Package web is the HTTP surface of the taskboard: routing, the session
// gate middleware, form parsing, and HTML rendering. It recovers domain
// errors into redirects with flash notifications; infrastructure failures
// surface as a generic 500.
package web

import (
	"context"
	"net/http"

	"github.com/psustentables/taskboard/internal/logging"
	"github.com/psustentables/taskboard/internal/server/models"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "taskboard_session"

// UserService is the slice of the credential store / session gate the web
// layer needs.
type UserService interface {
	Register(ctx context.Context, username, email, rawPassword string) (*models.User, error)
	Login(ctx context.Context, username, rawPassword string) (string, error)
	Logout(ctx context.Context, cookieValue string) error
	ResolveSession(ctx context.Context, cookieValue string) (*models.User, error)
	UpdatePassword(ctx context.Context, userID int64, newRawPassword string) error
	List(ctx context.Context) ([]*models.User, error)
}

// TaskService is the slice of the task workflow the web layer needs.
type TaskService interface {
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	Find(ctx context.Context, filter models.TaskFilter) ([]*models.Task, error)
	GetByID(ctx context.Context, id int64) (*models.Task, error)
	Update(ctx context.Context, id int64, patch models.TaskPatch) error
	SetStatus(ctx context.Context, id int64, status models.Status) error
	Delete(ctx context.Context, id int64) error
}

type Server struct {
	logger        logging.Logger
	users         UserService
	tasks         TaskService
	secureCookies bool
	mux           *http.ServeMux
}

func NewServer(logger logging.Logger, users UserService, tasks TaskService, secureCookies bool) *Server {
	s := &Server{
		logger:        logger,
		users:         users,
		tasks:         tasks,
		secureCookies: secureCookies,
		mux:           http.NewServeMux(),
	}

	s.mux.HandleFunc("GET /{$}", s.handleIndex)

	s.mux.HandleFunc("GET /register", s.handleRegisterForm)
	s.mux.HandleFunc("POST /register", s.handleRegister)
	s.mux.HandleFunc("GET /login", s.handleLoginForm)
	s.mux.HandleFunc("POST /login", s.handleLogin)

	s.mux.Handle("GET /logout", s.requireAuth(s.handleLogout))
	s.mux.Handle("GET /dashboard", s.requireAuth(s.handleDashboard))
	s.mux.Handle("POST /task/new", s.requireAuth(s.handleTaskCreate))
	s.mux.Handle("GET /task/edit/{id}", s.requireAuth(s.handleTaskEditForm))
	s.mux.Handle("POST /task/edit/{id}", s.requireAuth(s.handleTaskEdit))
	s.mux.Handle("POST /task/status/{id}", s.requireAuth(s.handleTaskStatus))
	s.mux.Handle("GET /task/delete/{id}", s.requireAuth(s.handleTaskDelete))
	s.mux.Handle("GET /profile", s.requireAuth(s.handleProfileForm))
	s.mux.Handle("POST /profile", s.requireAuth(s.handleProfileUpdate))

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.withLogging(s.mux).ServeHTTP(w, r)
}

func (s *Server) setSessionCookie(w http.ResponseWriter, value string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
