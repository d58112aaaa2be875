package cli

import (
	"context"

	"github.com/dmitrijs2005/rfidcredits/internal/asyncx"
	"github.com/dmitrijs2005/rfidcredits/internal/client/models"
	"github.com/dmitrijs2005/rfidcredits/internal/client/tag"
)

// Scan records a tag id typed by hand, as if the reader had detected it.
func (a *App) Scan(_ context.Context, hex string) error {
	id, err := tag.ParseHex(hex)
	if err != nil {
		a.say("Invalid tag id:", hex)
		return err
	}
	a.tags.Set(id)
	a.say("RFID Tag ID: " + tag.DisplayID(id))
	return nil
}

// ShowTag prints the current tag in display form.
func (a *App) ShowTag(_ context.Context) error {
	display, ok := a.tags.Display()
	if !ok {
		a.say("No RFID card scanned yet")
		return nil
	}
	a.say("RFID Tag ID: " + display)
	return nil
}

// AddCredits submits amount for the current tag. When amount is empty the
// user is asked for it. Missing tag or amount is reported without touching
// the network.
func (a *App) AddCredits(ctx context.Context, amount string) error {
	if amount == "" {
		var err error
		if amount, err = a.prompt(ctx, "Enter amount"); err != nil {
			return err
		}
	}

	tagID, _ := a.tags.Current()
	req, err := models.NewCreditAddRequest(tagID, amount)
	if err != nil {
		a.say(failureMessage(err))
		return err
	}

	asyncx.Go(ctx, func(ctx context.Context) (models.Outcome, error) {
		return a.creditService.AddCredits(ctx, req)
	}).Then(a.ui, func(out models.Outcome, err error) {
		a.onCreditsAdded(ctx, req, out, err)
	})

	return nil
}

func (a *App) onCreditsAdded(ctx context.Context, req models.CreditAddRequest, out models.Outcome, err error) {
	if err != nil || !out.OK() {
		a.logger.Warn(ctx, "credit update failed", "rfid_id", req.TagID, "status", out.StatusCode, "error", err)
		a.say(failureMessage(err))
		return
	}
	a.logger.Info(ctx, "credits added", "rfid_id", req.TagID, "amount", req.Amount)
	a.say("Credits added successfully")
}
