package tag

import (
	"bufio"
	"context"
	"io"
	"regexp"
	"strings"
	"time"
)

// Source produces tag detections until ctx ends or the source is exhausted.
type Source interface {
	Run(ctx context.Context, out chan<- Event) error
}

// readerLine matches the reader firmware output, e.g. "USER ID tag : 53 4E 23 A2".
var readerLine = regexp.MustCompile(`(?i)USER ID tag\s*:\s*([0-9A-F ]+)`)

// minBareTagBytes is the shortest bare-hex line taken as a tag. RFID UIDs
// are 4, 7 or 10 bytes; shorter hex-looking lines are reader chatter.
const minBareTagBytes = 4

// ParseLine extracts a tag id from one line of reader output. Lines that carry
// no tag (banners, blank lines, short hex words such as "CAFE") report false.
func ParseLine(line string) ([]byte, bool) {
	if m := readerLine.FindStringSubmatch(line); m != nil {
		id, err := ParseHex(m[1])
		return id, err == nil
	}
	id, err := ParseHex(line)
	if err != nil || len(id) < minBareTagBytes {
		return nil, false
	}
	return id, true
}

// LineSource reads tags from a line oriented stream such as a serial reader
// device, a named pipe or a file.
type LineSource struct {
	r   io.Reader
	now func() time.Time
}

func NewLineSource(r io.Reader) *LineSource {
	return &LineSource{r: r, now: time.Now}
}

// Run emits one Event per recognised line. It returns nil at EOF.
func (s *LineSource) Run(ctx context.Context, out chan<- Event) error {
	scanner := bufio.NewScanner(s.r)
	for scanner.Scan() {
		id, ok := ParseLine(strings.TrimSpace(scanner.Text()))
		if !ok {
			continue
		}
		select {
		case out <- Event{ID: id, At: s.now()}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return scanner.Err()
}

// Watch runs src and stores every detected tag in h, then calls notify (if
// set) from the watcher goroutine. It returns when src stops.
func Watch(ctx context.Context, src Source, h *Holder, notify func(Event)) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan Event)
	errc := make(chan error, 1)
	go func() {
		errc <- src.Run(ctx, events)
		close(events)
	}()

	for ev := range events {
		h.Set(ev.ID)
		if notify != nil {
			notify(ev)
		}
	}
	return <-errc
}
