package models

import "time"

// Session binds a browser to a user identity. Token is an opaque id carried
// inside the signed session cookie; the row is the server-side source of
// truth so logout can revoke it.
type Session struct {
	Token   string
	UserID  int64
	Expires time.Time
}
