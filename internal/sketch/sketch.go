// Package sketch defines the contract between a host view and the visual
// modules it mounts, plus the small helpers every sketch shares: pointer
// mapping, listener bookkeeping, the render loop driver and the registry.
package sketch

import (
	"time"

	"github.com/cequella/portfolio/backend-go/internal/geom"
	"github.com/cequella/portfolio/backend-go/internal/i18n"
)

// Sketch is a visual module with a host-controlled lifetime.
//
// Setup is called once with a fresh surface. Resize reports new backing
// store dimensions. Destroy stops the render loop, cancels pending timers
// and removes every listener registered in Setup before it returns.
type Sketch interface {
	Setup(s Surface)
	Resize(width, height int)
	Destroy()
}

// Described is implemented by sketches that expose gallery metadata.
type Described interface {
	Metadata() Metadata
}

// Metadata is the read-only descriptor consumed by gallery listings.
type Metadata struct {
	ID          string    `json:"id"`
	Title       i18n.Text `json:"title"`
	Description i18n.Text `json:"description"`
	Image       string    `json:"image"`
}

// EventType names an input event a sketch can listen for.
type EventType string

const (
	EventClick       EventType = "click"
	EventPointerDown EventType = "pointerdown"
	EventPointerMove EventType = "pointermove"
	EventPointerUp   EventType = "pointerup"
)

// Event is an input event in host display coordinates.
type Event struct {
	Type    EventType
	ClientX float64
	ClientY float64
}

// Handler receives dispatched events.
type Handler func(Event)

// ListenerID identifies a registered handler.
type ListenerID uint64

// EventTarget is anything handlers can be attached to.
// Removing an unknown or already removed id is a no-op.
type EventTarget interface {
	AddListener(t EventType, h Handler) ListenerID
	RemoveListener(id ListenerID)
}

// Cursor is the pointer shape a sketch asks the host to show.
type Cursor string

const (
	CursorDefault Cursor = "default"
	CursorPointer Cursor = "pointer"
)

// FrameID identifies a requested frame callback.
type FrameID uint64

// TimerID identifies a pending timeout.
type TimerID uint64

// Scheduler is the host's timing primitive: display-refresh callbacks and
// one-shot timeouts. Cancelling an unknown or fired id is a no-op.
type Scheduler interface {
	RequestFrame(fn func(now time.Time)) FrameID
	CancelFrame(id FrameID)
	SetTimeout(d time.Duration, fn func()) TimerID
	ClearTimeout(id TimerID)
}

// Surface is the drawing surface a host hands to Setup.
type Surface interface {
	EventTarget

	// Size reports the backing store dimensions in pixels.
	Size() (width, height int)
	// Bounds reports where the surface sits on the host display.
	Bounds() geom.Rect
	// Context returns the 2D context. ok is false when the host could not
	// provide one; sketches then draw nothing.
	Context() (c Canvas, ok bool)
	// Window is the global event target, used for drag releases that
	// happen outside the surface.
	Window() EventTarget
	Scheduler() Scheduler
	SetCursor(c Cursor)
	Locale() i18n.Lang
}

// PointerPosition converts an event's display coordinates into the
// surface's internal pixel space, scaling each axis by
// internal size / display size.
func PointerPosition(s Surface, e Event) geom.Point {
	sx, sy := PixelScale(s)
	b := s.Bounds()
	m := geom.Scale(sx, sy).Multiply(geom.Translate(-b.X, -b.Y))
	return m.Apply(geom.Pt(e.ClientX, e.ClientY))
}

// PixelScale returns the backing-store to display ratio per axis.
// An axis with no display size reports 1.
func PixelScale(s Surface) (sx, sy float64) {
	w, h := s.Size()
	b := s.Bounds()
	sx, sy = 1, 1
	if b.Width > 0 {
		sx = float64(w) / b.Width
	}
	if b.Height > 0 {
		sy = float64(h) / b.Height
	}
	return sx, sy
}
