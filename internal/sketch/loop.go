package sketch

import "time"

// Loop drives continuous redraws for one sketch instance. Each frame it
// calls draw and requests the next frame from the scheduler.
type Loop struct {
	sched   Scheduler
	draw    func(now time.Time)
	frame   FrameID
	running bool
}

// NewLoop returns a stopped loop.
func NewLoop(sched Scheduler, draw func(now time.Time)) *Loop {
	return &Loop{sched: sched, draw: draw}
}

// Start begins redrawing on the next frame. Starting a running loop does
// nothing.
func (l *Loop) Start() {
	if l.running || l.sched == nil {
		return
	}
	l.running = true
	l.frame = l.sched.RequestFrame(l.tick)
}

// Stop cancels the pending frame. No draw happens after Stop returns.
func (l *Loop) Stop() {
	if !l.running {
		return
	}
	l.running = false
	l.sched.CancelFrame(l.frame)
}

// Running reports whether the loop is scheduled.
func (l *Loop) Running() bool {
	return l.running
}

func (l *Loop) tick(now time.Time) {
	if !l.running {
		return
	}
	l.draw(now)
	// draw may have stopped us
	if l.running {
		l.frame = l.sched.RequestFrame(l.tick)
	}
}
