package asyncx

import "sync"

// Dispatcher is a queue of callbacks owned by a single consumer goroutine.
type Dispatcher struct {
	queue     chan func()
	closed    chan struct{}
	closeOnce sync.Once
}

func NewDispatcher(buffer int) *Dispatcher {
	return &Dispatcher{queue: make(chan func(), buffer), closed: make(chan struct{})}
}

// Post enqueues fn, blocking while the queue is full. After Close it drops fn.
func (d *Dispatcher) Post(fn func()) {
	select {
	case <-d.closed:
		return
	default:
	}
	select {
	case d.queue <- fn:
	case <-d.closed:
	}
}

// C is read by the consumer; every value must be called.
func (d *Dispatcher) C() <-chan func() {
	return d.queue
}

// RunPending calls queued callbacks until the queue is empty and returns how
// many ran. It must only be used by the consumer goroutine.
func (d *Dispatcher) RunPending() int {
	n := 0
	for {
		select {
		case fn := <-d.queue:
			fn()
			n++
		default:
			return n
		}
	}
}

// Close releases pending and future posters. Safe to call more than once.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() { close(d.closed) })
}
