package web

import (
	"encoding/base64"
	"net/http"
	"strings"
)

const flashCookieName = "taskboard_flash"

// Flash is a one-time notification shown on the next rendered page.
// Category maps to the alert styling (success, danger).
type Flash struct {
	Category string
	Message  string
}

func (s *Server) setFlash(w http.ResponseWriter, category, message string) {
	value := base64.RawURLEncoding.EncodeToString([]byte(category + "|" + message))
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash reads and clears the pending flash notification, if any.
func (s *Server) popFlash(w http.ResponseWriter, r *http.Request) *Flash {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	decoded, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}

	category, message, ok := strings.Cut(string(decoded), "|")
	if !ok {
		return nil
	}

	return &Flash{Category: category, Message: message}
}
