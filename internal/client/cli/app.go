package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/rfidcredits/internal/asyncx"
	"github.com/dmitrijs2005/rfidcredits/internal/client/client"
	"github.com/dmitrijs2005/rfidcredits/internal/client/config"
	"github.com/dmitrijs2005/rfidcredits/internal/client/services"
	"github.com/dmitrijs2005/rfidcredits/internal/client/tag"
	"github.com/dmitrijs2005/rfidcredits/internal/logging"
)

// uiQueueSize bounds callbacks waiting for the REPL goroutine.
const uiQueueSize = 16

// openTagSource is a test seam for opening the configured reader.
var openTagSource = func(path string) (io.ReadCloser, error) { return os.Open(path) }

type App struct {
	config        *config.Config
	logger        logging.Logger
	authService   services.AuthService
	creditService services.CreditService
	tags          *tag.Holder
	ui            *asyncx.Dispatcher
	reader        *bufio.Reader
	out           io.Writer
	userName      string
	authenticated bool
}

// NewApp creates the session jar once and hands it, through a single
// executor, to both services.
func NewApp(c *config.Config, logger logging.Logger) (*App, error) {
	session, err := client.NewSessionContext()
	if err != nil {
		return nil, err
	}

	exec, err := client.NewFormExecutor(c.ServerBaseURL, session, c.RequestTimeout, logger)
	if err != nil {
		return nil, err
	}

	return &App{
		config:        c,
		logger:        logger,
		authService:   services.NewAuthService(exec, logger),
		creditService: services.NewCreditService(exec, logger),
		tags:          tag.NewHolder(),
		ui:            asyncx.NewDispatcher(uiQueueSize),
		reader:        bufio.NewReader(os.Stdin),
		out:           os.Stdout,
	}, nil
}

// Run greets the user, starts the tag watcher when a reader is configured,
// asks for credentials and then serves commands until exit or ctx ends.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer a.ui.Close()

	a.say("Welcome to rfidcredits CLI (type 'help' for commands)")

	if a.config.TagSource != "" {
		if err := a.startTagWatcher(ctx, a.config.TagSource); err != nil {
			a.logger.Error(ctx, "tag reader unavailable", "path", a.config.TagSource, "error", err)
			a.say(failureMessage(err))
		}
	}

	_ = a.Login(ctx)

	runREPL(ctx, a, a.getStatus, a.readCommand, a.ui)

	// show messages that arrived after the last command was read
	a.ui.RunPending()
}

func (a *App) readCommand() (string, error) {
	return readLine(a.reader)
}

func (a *App) say(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) isLoggedIn() bool {
	return a.authenticated
}

func (a *App) getStatus() string {
	if !a.authenticated {
		return ""
	}
	return fmt.Sprintf("(%s authenticated)", a.userName)
}

// startTagWatcher feeds the tag holder from the reader at path. Each detected
// tag is announced through the UI dispatcher. The watcher stops with ctx or
// when the reader is exhausted.
func (a *App) startTagWatcher(ctx context.Context, path string) error {
	rc, err := openTagSource(path)
	if err != nil {
		return err
	}

	go func() {
		defer rc.Close()
		notify := func(ev tag.Event) {
			display := tag.DisplayID(ev.ID)
			a.ui.Post(func() { a.say("RFID Tag ID: " + display) })
		}
		if err := tag.Watch(ctx, tag.NewLineSource(rc), a.tags, notify); err != nil && ctx.Err() == nil {
			a.logger.Warn(ctx, "tag reader stopped", "path", path, "error", err)
		}
	}()

	a.logger.Info(ctx, "tag reader started", "path", path)
	return nil
}
