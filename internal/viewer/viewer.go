// Package viewer hosts one sketch at a time. It owns the surface, the
// listener tables and the run loop, and it is the only place that calls a
// sketch's lifecycle methods. Hosts (the wasm bridge, the terminal
// viewer, the thumbnail renderer) talk to a Viewer and never to a sketch.
package viewer

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cequella/portfolio/backend-go/internal/geom"
	"github.com/cequella/portfolio/backend-go/internal/i18n"
	"github.com/cequella/portfolio/backend-go/internal/render"
	"github.com/cequella/portfolio/backend-go/internal/runloop"
	"github.com/cequella/portfolio/backend-go/internal/sketch"
	"github.com/cequella/portfolio/backend-go/internal/typeid"
)

var (
	// ErrNotMounted is returned by calls that need a mounted sketch.
	ErrNotMounted = errors.New("no sketch mounted")
	// ErrStaleInstance is returned when a host addresses an instance that
	// has since been unmounted or replaced.
	ErrStaleInstance = errors.New("stale sketch instance")
)

// Options configures a Viewer.
type Options struct {
	Width, Height int
	Locale        i18n.Lang
	FrameInterval time.Duration
}

// Viewer mounts sketches from a registry onto a single surface.
type Viewer struct {
	reg     *sketch.Registry
	surface *surface
	nextID  sketch.ListenerID

	current  sketch.Sketch
	sketchID string
	instance string
}

// New creates an empty viewer drawing on canvas. A nil canvas gives
// sketches a surface without a context, so they draw nothing.
func New(reg *sketch.Registry, canvas sketch.Canvas, opts Options) *Viewer {
	if opts.Locale == "" {
		opts.Locale = i18n.PT
	}
	v := &Viewer{reg: reg}
	v.surface = &surface{
		width:      opts.Width,
		height:     opts.Height,
		bounds:     geom.Rect{Width: float64(opts.Width), Height: float64(opts.Height)},
		autoBounds: true,
		canvas:     canvas,
		loop:       runloop.New(opts.FrameInterval),
		cursor:     sketch.CursorDefault,
		locale:     opts.Locale,
	}
	v.surface.target.next = &v.nextID
	v.surface.window = &target{next: &v.nextID}
	return v
}

// Mount destroys the current sketch, if any, then creates and sets up the
// sketch registered under id. It returns the new instance id. An unknown
// id leaves the viewer empty.
func (v *Viewer) Mount(id string) (string, error) {
	v.Unmount()

	sk, err := v.reg.New(id)
	if err != nil {
		return "", fmt.Errorf("mount: %w", err)
	}
	v.current = sk
	v.sketchID = id
	v.instance = typeid.NewInstanceID()
	v.surface.cursor = sketch.CursorDefault

	w, h := v.surface.Size()
	slog.Debug("sketch mounted", "sketch", id, "instance", v.instance, "width", w, "height", h)
	sk.Setup(v.surface)
	return v.instance, nil
}

// Unmount destroys the current sketch. It does nothing when the viewer is
// empty, so Destroy runs exactly once per mount.
func (v *Viewer) Unmount() {
	if v.current == nil {
		return
	}
	sk := v.current
	v.current = nil
	sk.Destroy()
	slog.Debug("sketch unmounted", "sketch", v.sketchID, "instance", v.instance,
		"listeners", v.Listeners(), "pending", v.surface.loop.Pending())
	v.sketchID = ""
	v.instance = ""
	v.surface.cursor = sketch.CursorDefault
}

// Resize changes the backing store size and notifies the mounted sketch.
// Until SetBounds is called the display bounds follow the size.
func (v *Viewer) Resize(width, height int) {
	s := v.surface
	s.width, s.height = width, height
	if s.autoBounds {
		s.bounds = geom.Rect{Width: float64(width), Height: float64(height)}
	}
	if r, ok := s.canvas.(*render.Raster); ok {
		if err := r.Resize(width, height); err != nil {
			slog.Warn("raster resize failed", "error", err)
		}
	}
	if v.current != nil {
		slog.Debug("sketch resized", "instance", v.instance, "width", width, "height", height)
		v.current.Resize(width, height)
	}
}

// SetBounds records where the surface sits on the host display.
func (v *Viewer) SetBounds(r geom.Rect) {
	v.surface.bounds = r
	v.surface.autoBounds = false
}

// Pointer dispatches an input event to the surface listeners of the given
// instance. A pointerup then bubbles to the window listeners.
func (v *Viewer) Pointer(instance string, t sketch.EventType, x, y float64) error {
	if err := v.check(instance); err != nil {
		return err
	}
	e := sketch.Event{Type: t, ClientX: x, ClientY: y}
	v.surface.dispatch(e)
	if t == sketch.EventPointerUp && v.current != nil {
		v.surface.window.dispatch(e)
	}
	return nil
}

// WindowPointerUp delivers a pointerup that happened outside the surface.
func (v *Viewer) WindowPointerUp(instance string, x, y float64) error {
	if err := v.check(instance); err != nil {
		return err
	}
	v.surface.window.dispatch(sketch.Event{Type: sketch.EventPointerUp, ClientX: x, ClientY: y})
	return nil
}

func (v *Viewer) check(instance string) error {
	if v.current == nil {
		return ErrNotMounted
	}
	if instance != v.instance {
		return fmt.Errorf("%w: %q", ErrStaleInstance, instance)
	}
	return nil
}

// Tick advances the run loop by d, running every frame and timer due.
func (v *Viewer) Tick(d time.Duration) {
	v.surface.loop.Advance(d)
}

// Frame returns the draw commands issued since the last call when the
// viewer records, and nil otherwise.
func (v *Viewer) Frame() []render.DrawCommand {
	if r, ok := v.surface.canvas.(*render.Recorder); ok {
		return r.Flush()
	}
	return nil
}

// SetLocale changes the language sketches read on their next draw.
func (v *Viewer) SetLocale(l i18n.Lang) {
	v.surface.locale = l
}

func (v *Viewer) Cursor() sketch.Cursor { return v.surface.cursor }
func (v *Viewer) Instance() string      { return v.instance }
func (v *Viewer) SketchID() string      { return v.sketchID }
func (v *Viewer) Mounted() bool         { return v.current != nil }

// Current returns the mounted sketch, or nil.
func (v *Viewer) Current() sketch.Sketch { return v.current }

// Size reports the backing store size.
func (v *Viewer) Size() (int, int) { return v.surface.Size() }

// Now reports the run loop's virtual time.
func (v *Viewer) Now() time.Time { return v.surface.loop.Now() }

// Listeners reports how many surface and window listeners are registered.
func (v *Viewer) Listeners() int {
	return len(v.surface.listeners) + len(v.surface.window.listeners)
}

// Pending reports queued frames and timers.
func (v *Viewer) Pending() int {
	return v.surface.loop.Pending()
}
