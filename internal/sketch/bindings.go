package sketch

type binding struct {
	target EventTarget
	id     ListenerID
}

// Bindings remembers listeners registered during Setup so Destroy can
// remove all of them symmetrically.
type Bindings struct {
	entries []binding
}

// Bind registers h on target and records it.
func (b *Bindings) Bind(target EventTarget, t EventType, h Handler) {
	id := target.AddListener(t, h)
	b.entries = append(b.entries, binding{target: target, id: id})
}

// Release removes every recorded listener. Calling it again does nothing.
func (b *Bindings) Release() {
	for _, e := range b.entries {
		e.target.RemoveListener(e.id)
	}
	b.entries = nil
}

// Len reports how many listeners are still recorded.
func (b *Bindings) Len() int {
	return len(b.entries)
}
