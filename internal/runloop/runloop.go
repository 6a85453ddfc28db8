// Package runloop is the single-threaded scheduler that hosts drive.
//
// A Loop keeps virtual time. Hosts call Advance from one goroutine (a
// browser tick, a terminal ticker, an offline renderer) and every timer
// and frame callback due inside the advanced window runs synchronously on
// that goroutine, in deadline order. Nothing here is safe for concurrent
// use, and nothing needs to be: callbacks never overlap.
package runloop

import (
	"time"

	"github.com/emirpasic/gods/trees/binaryheap"

	"github.com/cequella/portfolio/backend-go/internal/sketch"
)

// DefaultFrameInterval approximates a 60Hz display.
const DefaultFrameInterval = 16 * time.Millisecond

type timer struct {
	id       sketch.TimerID
	deadline time.Time
	seq      uint64
	fn       func()
}

// Loop implements sketch.Scheduler over virtual time.
type Loop struct {
	start    time.Time
	now      time.Time
	interval time.Duration

	seq    uint64
	timers *binaryheap.Heap
	live   map[sketch.TimerID]*timer

	nextFrame sketch.FrameID
	frameAt   time.Time
	order     []sketch.FrameID
	batch     map[sketch.FrameID]func(time.Time)
	firing    map[sketch.FrameID]func(time.Time)
}

var _ sketch.Scheduler = (*Loop)(nil)

// New creates a loop whose frames fire every interval. A non-positive
// interval selects DefaultFrameInterval.
func New(interval time.Duration) *Loop {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	start := time.Unix(0, 0).UTC()
	return &Loop{
		start:    start,
		now:      start,
		interval: interval,
		timers:   binaryheap.NewWith(byDeadline),
		live:     make(map[sketch.TimerID]*timer),
		batch:    make(map[sketch.FrameID]func(time.Time)),
	}
}

func byDeadline(a, b interface{}) int {
	ta, tb := a.(*timer), b.(*timer)
	switch {
	case ta.deadline.Before(tb.deadline):
		return -1
	case ta.deadline.After(tb.deadline):
		return 1
	case ta.seq < tb.seq:
		return -1
	case ta.seq > tb.seq:
		return 1
	}
	return 0
}

// Now returns the loop's current virtual time.
func (l *Loop) Now() time.Time {
	return l.now
}

// FrameInterval returns the display refresh period.
func (l *Loop) FrameInterval() time.Duration {
	return l.interval
}

// SetTimeout schedules fn to run once, d after the current time.
func (l *Loop) SetTimeout(d time.Duration, fn func()) sketch.TimerID {
	if d < 0 {
		d = 0
	}
	l.seq++
	t := &timer{
		id:       sketch.TimerID(l.seq),
		deadline: l.now.Add(d),
		seq:      l.seq,
		fn:       fn,
	}
	l.live[t.id] = t
	l.timers.Push(t)
	return t.id
}

// ClearTimeout cancels a pending timeout.
func (l *Loop) ClearTimeout(id sketch.TimerID) {
	delete(l.live, id)
}

// RequestFrame schedules fn for the next display refresh. Callbacks
// requested while a frame is running belong to the following frame.
func (l *Loop) RequestFrame(fn func(now time.Time)) sketch.FrameID {
	l.nextFrame++
	id := l.nextFrame
	if len(l.batch) == 0 {
		l.order = l.order[:0]
		l.frameAt = l.nextBoundary()
	}
	l.order = append(l.order, id)
	l.batch[id] = fn
	return id
}

// CancelFrame removes a pending frame callback, including one queued in
// the frame that is currently running.
func (l *Loop) CancelFrame(id sketch.FrameID) {
	delete(l.batch, id)
	if l.firing != nil {
		delete(l.firing, id)
	}
}

// Pending reports how many timers and frame callbacks are still queued.
func (l *Loop) Pending() int {
	return len(l.live) + len(l.batch)
}

// Advance moves virtual time forward by d, running everything that falls
// due on the way.
func (l *Loop) Advance(d time.Duration) {
	end := l.now.Add(d)
	for {
		t, hasTimer := l.peekTimer()
		hasFrame := len(l.batch) > 0

		switch {
		case hasTimer && !t.deadline.After(end) && (!hasFrame || !t.deadline.After(l.frameAt)):
			l.timers.Pop()
			delete(l.live, t.id)
			if t.deadline.After(l.now) {
				l.now = t.deadline
			}
			t.fn()
		case hasFrame && !l.frameAt.After(end):
			if l.frameAt.After(l.now) {
				l.now = l.frameAt
			}
			l.runFrame()
		default:
			l.now = end
			return
		}
	}
}

func (l *Loop) peekTimer() (*timer, bool) {
	for !l.timers.Empty() {
		v, _ := l.timers.Peek()
		t := v.(*timer)
		if _, ok := l.live[t.id]; ok {
			return t, true
		}
		l.timers.Pop()
	}
	return nil, false
}

func (l *Loop) runFrame() {
	order := l.order
	l.firing = l.batch
	l.order = nil
	l.batch = make(map[sketch.FrameID]func(time.Time))

	now := l.now
	for _, id := range order {
		fn, ok := l.firing[id]
		if !ok {
			continue
		}
		delete(l.firing, id)
		fn(now)
	}
	l.firing = nil
}

// nextBoundary returns the first frame boundary strictly after now.
func (l *Loop) nextBoundary() time.Time {
	elapsed := l.now.Sub(l.start)
	n := elapsed/l.interval + 1
	return l.start.Add(n * l.interval)
}
