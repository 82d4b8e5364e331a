package web

import (
	"errors"
	"net/http"

	"github.com/psustentables/taskboard/internal/common"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if s.resolveUser(r) != nil {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (s *Server) handleRegisterForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "register", s.newPageData(w, r))
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	form, err := parseRegisterForm(r)
	if err != nil {
		s.setFlash(w, "danger", err.Error())
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	_, err = s.users.Register(r.Context(), form.Username, form.Email, form.Password)
	if err != nil {
		if errors.Is(err, common.ErrorDuplicateUsername) {
			s.setFlash(w, "danger", "Username already exists")
			http.Redirect(w, r, "/register", http.StatusSeeOther)
			return
		}
		s.internalError(w, r, err.Error())
		return
	}

	s.logger.Info(r.Context(), "registered", "username", form.Username)
	s.setFlash(w, "success", "Registration successful. Please log in.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (s *Server) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "login", s.newPageData(w, r))
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	form, err := parseLoginForm(r)
	if err != nil {
		s.setFlash(w, "danger", err.Error())
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	cookieValue, err := s.users.Login(r.Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, common.ErrorInvalidCredentials) {
			s.setFlash(w, "danger", "Invalid username or password")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		s.internalError(w, r, err.Error())
		return
	}

	s.setSessionCookie(w, cookieValue, 0)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		if err := s.users.Logout(r.Context(), cookie.Value); err != nil {
			s.internalError(w, r, err.Error())
			return
		}
	}

	s.setSessionCookie(w, "", -1)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

type profilePage struct {
	pageData
}

func (s *Server) handleProfileForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "profile", profilePage{pageData: s.newPageData(w, r)})
}

func (s *Server) handleProfileUpdate(w http.ResponseWriter, r *http.Request) {
	form := parseProfileForm(r)

	// Blank password means "leave unchanged", as the form hints.
	if form.NewPassword != "" {
		user := CurrentUser(r.Context())
		if err := s.users.UpdatePassword(r.Context(), user.ID, form.NewPassword); err != nil {
			s.internalError(w, r, err.Error())
			return
		}
		s.setFlash(w, "success", "Password updated")
	}

	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}
