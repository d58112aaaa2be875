// Package common contains shared constants and sentinel errors used across
// the rfidcredits client and development server.
package common

// HTTP routes shared by the client and the development server.
const (
	LoginPath     = "/auth/login"
	AddCreditPath = "/admin/add"
	AdminPath     = "/admin"
)

// Gateway JSON endpoints of the development server.
const (
	DeductPath = "/rfid/deduct"
	PayoutPath = "/rfid/add"
)

// Form field names of the wire contract.
const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldRFIDID   = "rfid_id"
	FieldAmount   = "amount"
)

// SessionCookieName is the cookie the server sets on a successful login.
const SessionCookieName = "session"

// RequestIDHeaderName carries the per-request correlation id.
const RequestIDHeaderName = "X-Request-ID"
