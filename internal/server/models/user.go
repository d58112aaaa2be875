// Package models holds the server's persisted records.
package models

type User struct {
	ID           int64
	UserName     string
	PasswordHash []byte
	Salt         []byte
	IsAdmin      bool
}
