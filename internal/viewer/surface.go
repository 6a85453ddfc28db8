package viewer

import (
	"github.com/cequella/portfolio/backend-go/internal/geom"
	"github.com/cequella/portfolio/backend-go/internal/i18n"
	"github.com/cequella/portfolio/backend-go/internal/runloop"
	"github.com/cequella/portfolio/backend-go/internal/sketch"
)

type listener struct {
	id sketch.ListenerID
	t  sketch.EventType
	h  sketch.Handler
}

// target is an ordered listener list. Ids come from a counter shared by
// every target of one viewer so they never collide.
type target struct {
	next      *sketch.ListenerID
	listeners []listener
}

func (t *target) AddListener(et sketch.EventType, h sketch.Handler) sketch.ListenerID {
	*t.next++
	id := *t.next
	t.listeners = append(t.listeners, listener{id: id, t: et, h: h})
	return id
}

func (t *target) RemoveListener(id sketch.ListenerID) {
	for i, l := range t.listeners {
		if l.id == id {
			t.listeners = append(t.listeners[:i], t.listeners[i+1:]...)
			return
		}
	}
}

// dispatch calls every handler for e.Type in registration order. Handlers
// added or removed while dispatching take effect on the next event.
func (t *target) dispatch(e sketch.Event) int {
	var hs []sketch.Handler
	for _, l := range t.listeners {
		if l.t == e.Type {
			hs = append(hs, l.h)
		}
	}
	for _, h := range hs {
		h(e)
	}
	return len(hs)
}

// surface is the sketch.Surface handed to every mounted sketch.
type surface struct {
	target
	window *target

	width, height int
	bounds        geom.Rect
	autoBounds    bool

	canvas sketch.Canvas
	loop   *runloop.Loop
	cursor sketch.Cursor
	locale i18n.Lang
}

var _ sketch.Surface = (*surface)(nil)

func (s *surface) Size() (int, int)               { return s.width, s.height }
func (s *surface) Bounds() geom.Rect              { return s.bounds }
func (s *surface) Window() sketch.EventTarget     { return s.window }
func (s *surface) Scheduler() sketch.Scheduler    { return s.loop }
func (s *surface) SetCursor(c sketch.Cursor)      { s.cursor = c }
func (s *surface) Locale() i18n.Lang              { return s.locale }
func (s *surface) Context() (sketch.Canvas, bool) { return s.canvas, s.canvas != nil }
