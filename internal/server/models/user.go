// Package models defines the persistent entities of the taskboard server.
package models

// User is a registered account. PasswordHash is the encoded argon2id
// credential; the raw password is never stored.
type User struct {
	ID           int64
	UserName     string
	Email        string
	PasswordHash string
}
