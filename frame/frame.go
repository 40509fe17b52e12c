// Package frame runs callbacks once per display frame, the way a browser's
// requestAnimationFrame does. The host calls Loop.Run from its frame callback.
package frame

// Handle identifies a pending request. The zero Handle is never issued.
type Handle uint64

// Scheduler queues work for the next frame.
type Scheduler interface {
	Request(fn func()) Handle
	Cancel(h Handle)
}

type request struct {
	handle Handle
	fn     func()
}

// Loop is a single-threaded Scheduler. It must only be used from the
// goroutine that calls Run.
type Loop struct {
	next    Handle
	pending []request
	running []request
	frames  uint64
}

func NewLoop() *Loop {
	return &Loop{}
}

// Request queues fn for the next call to Run.
func (l *Loop) Request(fn func()) Handle {
	if fn == nil {
		return 0
	}
	l.next++
	l.pending = append(l.pending, request{handle: l.next, fn: fn})
	return l.next
}

// Cancel drops a request that has not run yet. Unknown or already-run handles
// are ignored.
func (l *Loop) Cancel(h Handle) {
	if h == 0 {
		return
	}
	for i, r := range l.pending {
		if r.handle == h {
			l.pending = append(l.pending[:i], l.pending[i+1:]...)
			return
		}
	}
	for i := range l.running {
		if l.running[i].handle == h {
			l.running[i].fn = nil
			return
		}
	}
}

// Run executes the callbacks that were pending when it was called and returns
// how many ran. Callbacks requested while Run is executing wait for the next
// frame.
func (l *Loop) Run() int {
	l.frames++
	l.running = l.pending
	l.pending = nil

	ran := 0
	for i := range l.running {
		fn := l.running[i].fn
		if fn == nil {
			continue
		}
		l.running[i].fn = nil
		fn()
		ran++
	}
	l.running = nil
	return ran
}

// Pending reports how many callbacks are waiting for the next frame.
func (l *Loop) Pending() int {
	return len(l.pending)
}

// Frames reports how many times Run has been called.
func (l *Loop) Frames() uint64 {
	return l.frames
}
