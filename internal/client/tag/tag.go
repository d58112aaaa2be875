// Package tag turns RFID/NFC tag detections into the identifier the credit
// endpoint expects and keeps the most recent one.
package tag

import (
	"encoding/hex"
	"errors"
	"strings"
	"sync"
	"time"
)

var ErrInvalidTagID = errors.New("invalid tag identifier")

// Event is one TagDetected notification carrying the raw tag bytes.
type Event struct {
	ID []byte
	At time.Time
}

// WireID renders id as uppercase hex without separators: DEADBEEF.
func WireID(id []byte) string {
	return strings.ToUpper(hex.EncodeToString(id))
}

// DisplayID renders id as colon separated uppercase hex: DE:AD:BE:EF.
func DisplayID(id []byte) string {
	parts := make([]string, len(id))
	for i, b := range id {
		parts[i] = strings.ToUpper(hex.EncodeToString([]byte{b}))
	}
	return strings.Join(parts, ":")
}

// Encode returns both renderings of id.
func Encode(id []byte) (wire, display string) {
	return WireID(id), DisplayID(id)
}

// ParseHex accepts "DEADBEEF", "DE:AD:BE:EF", "de ad be ef" or "DE-AD-BE-EF".
func ParseHex(s string) ([]byte, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ':', ' ', '-', '\t':
			return -1
		}
		return r
	}, strings.TrimSpace(s))

	if cleaned == "" {
		return nil, ErrInvalidTagID
	}
	id, err := hex.DecodeString(cleaned)
	if err != nil {
		return nil, ErrInvalidTagID
	}
	return id, nil
}

// Holder is the single "current tag" slot. Each Set overwrites the previous
// tag; there is no history and no deduplication.
type Holder struct {
	mu sync.RWMutex
	id []byte
}

func NewHolder() *Holder {
	return &Holder{}
}

// Set stores a copy of id. An empty id clears the slot.
func (h *Holder) Set(id []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(id) == 0 {
		h.id = nil
		return
	}
	h.id = append([]byte(nil), id...)
}

// Current returns the wire identifier of the last tag, if any.
func (h *Holder) Current() (string, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.id == nil {
		return "", false
	}
	return WireID(h.id), true
}

// Display returns the display form of the last tag, if any.
func (h *Holder) Display() (string, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.id == nil {
		return "", false
	}
	return DisplayID(h.id), true
}
