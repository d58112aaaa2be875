// Package models holds the client-side data types exchanged between the
// front-end, the services and the transport.
package models

import (
	"errors"
	"fmt"
)

var (
	// ErrPrecondition marks input rejected before any network call.
	ErrPrecondition = errors.New("precondition failed")
	ErrEmptyTagID   = fmt.Errorf("%w: no tag identifier", ErrPrecondition)
	ErrEmptyAmount  = fmt.Errorf("%w: no amount", ErrPrecondition)
)

// Credential is built from user input at login time and never persisted.
// Callers wipe Password once the request has been sent.
type Credential struct {
	Username string
	Password []byte
}

// CreditAddRequest is one top-up of Amount credits on the tag TagID
// (wire hex form). Amount is passed through verbatim, the server validates it.
type CreditAddRequest struct {
	TagID  string
	Amount string
}

// NewCreditAddRequest refuses to build a request without a tag or amount.
func NewCreditAddRequest(tagID, amount string) (CreditAddRequest, error) {
	r := CreditAddRequest{TagID: tagID, Amount: amount}
	if err := r.Validate(); err != nil {
		return CreditAddRequest{}, err
	}
	return r, nil
}

// Validate reports ErrEmptyTagID or ErrEmptyAmount.
func (r CreditAddRequest) Validate() error {
	if r.TagID == "" {
		return ErrEmptyTagID
	}
	if r.Amount == "" {
		return ErrEmptyAmount
	}
	return nil
}
