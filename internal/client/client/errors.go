package client

import (
	"errors"
	"fmt"
)

var (
	ErrTransport            = errors.New("transport error")
	ErrAuthenticationFailed = errors.New("authentication failed")
)

// TransportError is any failure to obtain a status code: DNS, refused
// connection, timeout, I/O, cancelled context.
type TransportError struct {
	Op  string
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%v: %v", ErrTransport, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// CreditUpdateError is a credit-add response outside {200, 303}.
type CreditUpdateError struct {
	StatusCode int
}

func (e *CreditUpdateError) Error() string {
	return fmt.Sprintf("credit update rejected with status %d", e.StatusCode)
}
