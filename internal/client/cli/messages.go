package cli

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/rfidcredits/internal/client/client"
	"github.com/dmitrijs2005/rfidcredits/internal/client/models"
)

// failureMessage maps an operation error to the line shown to the user.
func failureMessage(err error) string {
	var (
		cue *client.CreditUpdateError
		te  *client.TransportError
	)
	switch {
	case err == nil:
		return "Error: unexpected response"
	case errors.Is(err, models.ErrPrecondition):
		return "Please scan an RFID card and enter an amount"
	case errors.Is(err, client.ErrAuthenticationFailed):
		return "Login Failed"
	case errors.As(err, &cue):
		return fmt.Sprintf("Failed to add credits. Response code: %d", cue.StatusCode)
	case errors.As(err, &te):
		return "Error: " + te.Err.Error()
	default:
		return "Error: " + err.Error()
	}
}
