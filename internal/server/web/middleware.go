package web

import (
	"context"
	"net/http"
	"time"

	"github.com/psustentables/taskboard/internal/server/models"
)

type ctxKey string

const currentUserKey ctxKey = "current_user"

// CurrentUser returns the identity bound to the request, or nil for an
// anonymous request. Handlers behind requireAuth always see a non-nil user.
func CurrentUser(ctx context.Context) *models.User {
	user, _ := ctx.Value(currentUserKey).(*models.User)
	return user
}

// resolveUser maps the session cookie to a user, or nil when the request
// carries no valid session.
func (s *Server) resolveUser(r *http.Request) *models.User {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return nil
	}

	user, err := s.users.ResolveSession(r.Context(), cookie.Value)
	if err != nil {
		return nil
	}

	return user
}

// requireAuth is the session gate: it binds the resolved identity to the
// request context, or redirects anonymous requests to the login entry point.
// It is the only authorization check in the system.
func (s *Server) requireAuth(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := s.resolveUser(r)
		if user == nil {
			s.setSessionCookie(w, "", -1)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		ctx := context.WithValue(r.Context(), currentUserKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		s.logger.Info(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"duration", time.Since(start).String(),
		)
	})
}
