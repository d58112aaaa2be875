package models

// Card is the credit balance of one RFID tag, keyed by its wire identifier.
type Card struct {
	ID      int64
	RFIDID  string
	Credits int64
}
