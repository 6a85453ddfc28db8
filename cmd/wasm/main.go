//go:build js && wasm

package main

import (
	"encoding/json"
	"log/slog"
	"syscall/js"
	"time"

	"github.com/cequella/portfolio/backend-go/internal/gallery"
	"github.com/cequella/portfolio/backend-go/internal/geom"
	"github.com/cequella/portfolio/backend-go/internal/i18n"
	"github.com/cequella/portfolio/backend-go/internal/render"
	"github.com/cequella/portfolio/backend-go/internal/sketch"
	"github.com/cequella/portfolio/backend-go/internal/sketches"
	"github.com/cequella/portfolio/backend-go/internal/viewer"
)

var (
	view    *viewer.Viewer
	catalog *gallery.Catalog
)

func main() {
	reg := sketches.Default()
	catalog = gallery.NewCatalog(reg, gallery.Articles()...)
	view = viewer.New(reg, render.NewRecorder(), viewer.Options{Locale: i18n.PT})

	// Create the runtime API object
	runtime := js.Global().Get("Object").New()

	// --- Commands (frontend → runtime) ---
	runtime.Set("mount", js.FuncOf(mount))
	runtime.Set("unmount", js.FuncOf(unmount))
	runtime.Set("resize", js.FuncOf(resize))
	runtime.Set("setBounds", js.FuncOf(setBounds))
	runtime.Set("setLocale", js.FuncOf(setLocale))
	runtime.Set("pointer", js.FuncOf(pointer))
	runtime.Set("windowPointerUp", js.FuncOf(windowPointerUp))
	runtime.Set("tick", js.FuncOf(tick))

	// --- Queries (frontend ← runtime) ---
	runtime.Set("cursor", js.FuncOf(cursor))
	runtime.Set("list", js.FuncOf(list))

	js.Global().Set("sketchRuntime", runtime)
	js.Global().Set("sketchRuntimeReady", js.ValueOf(true))

	// Keep Go runtime alive
	select {}
}

func errorValue(err error) js.Value {
	return js.ValueOf(map[string]interface{}{"error": err.Error()})
}

func ok() js.Value {
	return js.ValueOf(map[string]interface{}{"ok": true})
}

// --- Command Handlers ---

// mount(id, width, height)
func mount(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return js.ValueOf(map[string]interface{}{"error": "usage: mount(id, width, height)"})
	}
	view.Unmount()
	view.Resize(args[1].Int(), args[2].Int())
	inst, err := view.Mount(args[0].String())
	if err != nil {
		slog.Warn("mount failed", "error", err)
		return errorValue(err)
	}
	return js.ValueOf(map[string]interface{}{"instance": inst})
}

func unmount(this js.Value, args []js.Value) interface{} {
	view.Unmount()
	return ok()
}

func resize(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}
	view.Resize(args[0].Int(), args[1].Int())
	return nil
}

// setBounds(x, y, width, height) from getBoundingClientRect.
func setBounds(this js.Value, args []js.Value) interface{} {
	if len(args) < 4 {
		return nil
	}
	view.SetBounds(geom.Rect{X: args[0].Float(), Y: args[1].Float(), Width: args[2].Float(), Height: args[3].Float()})
	return nil
}

func setLocale(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	if l, found := i18n.Parse(args[0].String()); found {
		view.SetLocale(l)
	}
	return nil
}

// pointer(instance, type, clientX, clientY)
func pointer(this js.Value, args []js.Value) interface{} {
	if len(args) < 4 {
		return js.ValueOf(map[string]interface{}{"error": "usage: pointer(instance, type, x, y)"})
	}
	err := view.Pointer(args[0].String(), sketch.EventType(args[1].String()), args[2].Float(), args[3].Float())
	if err != nil {
		return errorValue(err)
	}
	return ok()
}

// windowPointerUp(instance, clientX, clientY)
func windowPointerUp(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return js.ValueOf(map[string]interface{}{"error": "usage: windowPointerUp(instance, x, y)"})
	}
	if err := view.WindowPointerUp(args[0].String(), args[1].Float(), args[2].Float()); err != nil {
		return errorValue(err)
	}
	return ok()
}

// tick(elapsedMs) advances the run loop and returns the draw commands
// issued since the previous tick as JSON.
func tick(this js.Value, args []js.Value) interface{} {
	if len(args) > 0 {
		view.Tick(time.Duration(args[0].Float() * float64(time.Millisecond)))
	}
	out, err := render.DrawCommandsToJSON(view.Frame())
	if err != nil {
		slog.Error("encode frame", "error", err)
	}
	return js.ValueOf(out)
}

// --- Query Handlers ---

func cursor(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(string(view.Cursor()))
}

// list(lang) returns the localized sketch listing as JSON.
func list(this js.Value, args []js.Value) interface{} {
	lang := i18n.PT
	if len(args) > 0 {
		if l, found := i18n.Parse(args[0].String()); found {
			lang = l
		}
	}
	data, err := json.Marshal(catalog.Sketches(lang))
	if err != nil {
		return js.ValueOf("[]")
	}
	return js.ValueOf(string(data))
}
