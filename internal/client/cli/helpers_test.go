package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/rfidcredits/internal/asyncx"
	"github.com/dmitrijs2005/rfidcredits/internal/client/config"
	"github.com/dmitrijs2005/rfidcredits/internal/client/models"
	"github.com/dmitrijs2005/rfidcredits/internal/client/tag"
	"github.com/dmitrijs2005/rfidcredits/internal/logging"
)

type fakeAuth struct {
	mu      sync.Mutex
	user    string
	pass    []byte
	rawPass []byte
	calls   int
	out     models.Outcome
	err     error
}

func (f *fakeAuth) Login(_ context.Context, user string, pass []byte) (models.Outcome, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.user, f.pass, f.rawPass = user, append([]byte(nil), pass...), pass
	return f.out, f.err
}

type fakeCredits struct {
	mu   sync.Mutex
	reqs []models.CreditAddRequest
	out  models.Outcome
	err  error
}

func (f *fakeCredits) AddCredits(_ context.Context, req models.CreditAddRequest) (models.Outcome, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reqs = append(f.reqs, req)
	return f.out, f.err
}

func (f *fakeCredits) requests() []models.CreditAddRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.CreditAddRequest(nil), f.reqs...)
}

// newTestApp builds an App reading input and writing to the returned buffer.
// Password prompts read from input as stdin is treated as a non-terminal.
func newTestApp(t *testing.T, input string, auth *fakeAuth, credits *fakeCredits) (*App, *bytes.Buffer) {
	t.Helper()

	origIsTerminal := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = origIsTerminal })

	if auth == nil {
		auth = &fakeAuth{}
	}
	if credits == nil {
		credits = &fakeCredits{}
	}

	var out bytes.Buffer
	ui := asyncx.NewDispatcher(uiQueueSize)
	t.Cleanup(ui.Close)

	return &App{
		config:        &config.Config{},
		logger:        logging.NewNopLogger(),
		authService:   auth,
		creditService: credits,
		tags:          tag.NewHolder(),
		ui:            ui,
		reader:        bufio.NewReader(strings.NewReader(input)),
		out:           &out,
	}, &out
}

// runNext waits for one posted callback and runs it on the test goroutine.
func runNext(t *testing.T, ui *asyncx.Dispatcher) {
	t.Helper()
	select {
	case fn := <-ui.C():
		fn()
	case <-time.After(2 * time.Second):
		t.Fatal("no callback posted to the UI dispatcher")
	}
}

// silenceREPL swallows REPL output for the duration of the test.
func silenceREPL(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	origPrintln, origPrint := printlnFn, printFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	printFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn, printFn = origPrintln, origPrint })
	return &lines
}
