package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/rfidcredits/internal/asyncx"
	"golang.org/x/term"
)

// readPassword, isTerminal and stdinFd are test seams for the terminal.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
	stdinFd      = func() int { return int(os.Stdin.Fd()) }
)

// ReadLine reads a single line from reader with surrounding whitespace
// trimmed. If EOF occurs after some input was read, the partial line is
// returned.
func ReadLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ReadPassword reads a password from the terminal without echo. When stdin
// is not a terminal (pipes, scripts) it falls back to reading a line from
// reader.
//
// The returned byte slice should be wiped by the caller when no longer needed.
func ReadPassword(reader *bufio.Reader) ([]byte, error) {
	fd := stdinFd()
	if !isTerminal(fd) {
		line, err := ReadLine(reader)
		if err != nil {
			return nil, err
		}
		return []byte(line), nil
	}
	return readPassword(fd)
}

// awaitInput runs read on its own goroutine and, while waiting, runs the
// callbacks posted to ui. It must be called from the goroutine that owns ui,
// and never while another read is outstanding.
func awaitInput[T any](ctx context.Context, read func() (T, error), ui *asyncx.Dispatcher) (T, error) {
	f := asyncx.Go(ctx, func(context.Context) (T, error) { return read() })
	for {
		select {
		case <-f.Done():
			return f.Await(ctx)
		case fn := <-ui.C():
			fn()
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		}
	}
}
