package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/rfidcredits/internal/asyncx"
	"github.com/dmitrijs2005/rfidcredits/internal/client/models"
	"github.com/dmitrijs2005/rfidcredits/internal/common"
)

// readLine and readSecret are indirections used to facilitate testing.
// They point to the interactive input helpers and can be swapped in tests.
var readLine = ReadLine
var readSecret = ReadPassword

// prompt prints text and waits for one line, running UI callbacks meanwhile.
func (a *App) prompt(ctx context.Context, text string) (string, error) {
	fmt.Fprint(a.out, text+"\n> ")
	return awaitInput(ctx, func() (string, error) { return readLine(a.reader) }, a.ui)
}

func (a *App) promptPassword(ctx context.Context) ([]byte, error) {
	fmt.Fprint(a.out, "Enter password: ")
	pw, err := awaitInput(ctx, func() ([]byte, error) { return readSecret(a.reader) }, a.ui)
	fmt.Fprintln(a.out)
	return pw, err
}

// Login prompts for credentials and submits them on a background goroutine.
// The outcome is reported through the UI dispatcher; the password buffer is
// wiped once the request completes.
func (a *App) Login(ctx context.Context) error {
	userName, err := a.prompt(ctx, "Enter username")
	if err != nil {
		return err
	}

	password, err := a.promptPassword(ctx)
	if err != nil {
		return err
	}

	cred := models.Credential{Username: userName, Password: password}

	asyncx.Go(ctx, func(ctx context.Context) (models.Outcome, error) {
		defer common.WipeByteArray(cred.Password)
		return a.authService.Login(ctx, cred.Username, cred.Password)
	}).Then(a.ui, func(out models.Outcome, err error) {
		a.onLogin(ctx, cred.Username, out, err)
	})

	return nil
}

func (a *App) onLogin(ctx context.Context, userName string, out models.Outcome, err error) {
	if err != nil || !out.OK() {
		a.logger.Info(ctx, "login unsuccessful", "user", userName, "status", out.StatusCode, "error", err)
		a.say(failureMessage(err))
		return
	}

	a.logger.Info(ctx, "login successful", "user", userName)
	a.userName = userName
	a.authenticated = true
	a.say("Login successful")
}
