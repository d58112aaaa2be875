package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/rfidcredits/internal/asyncx"
)

// printlnFn and printFn are test seams for REPL output.
var (
	printlnFn = fmt.Println
	printFn   = fmt.Print
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Scan(ctx context.Context, hex string) error
	ShowTag(ctx context.Context) error
	AddCredits(ctx context.Context, amount string) error
}

// runREPL reads commands with read and dispatches them to a. While waiting
// for a line it runs callbacks posted to ui, so results of background
// requests are printed as soon as they arrive. The loop exits on a read
// error (EOF included), when ctx ends, or on "exit"/"quit".
//
// Handler errors are ignored here; handlers report to the user themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, read func() (string, error), ui *asyncx.Dispatcher) {
	for {
		printFn(fmt.Sprintf("rfid %s> ", statusFn()))
		line, err := awaitInput(ctx, read, ui)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: scan <hex>, tag, add [amount], login, exit")
			} else {
				printlnFn("Available commands: login, scan <hex>, tag, add [amount], exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "scan":
			if len(args) == 0 {
				printlnFn("Usage: scan <hex>")
				continue
			}
			_ = a.Scan(ctx, strings.Join(args, " "))

		case "tag":
			_ = a.ShowTag(ctx)

		case "add":
			_ = a.AddCredits(ctx, strings.Join(args, " "))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
