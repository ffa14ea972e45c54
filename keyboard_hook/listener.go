package keyboard_hook

import (
	"sync"

	"keytap/keyboard"
)

type Listener interface {
	KeyTyped(e keyboard.Event)
	KeyPressed(e keyboard.Event)
	KeyReleased(e keyboard.Event)
}

// ListenerFuncs adapts plain functions to Listener. Nil funcs are skipped.
type ListenerFuncs struct {
	Typed    func(e keyboard.Event)
	Pressed  func(e keyboard.Event)
	Released func(e keyboard.Event)
}

func (l ListenerFuncs) KeyTyped(e keyboard.Event) {
	if l.Typed != nil {
		l.Typed(e)
	}
}

func (l ListenerFuncs) KeyPressed(e keyboard.Event) {
	if l.Pressed != nil {
		l.Pressed(e)
	}
}

func (l ListenerFuncs) KeyReleased(e keyboard.Event) {
	if l.Released != nil {
		l.Released(e)
	}
}

// Dispatcher routes events to every registered listener by kind.
type Dispatcher struct {
	mu        sync.RWMutex
	listeners []Listener
}

func NewDispatcher(listeners ...Listener) *Dispatcher {
	return &Dispatcher{listeners: listeners}
}

func (d *Dispatcher) Add(l Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners = append(d.listeners, l)
}

func (d *Dispatcher) Dispatch(e keyboard.Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, l := range d.listeners {
		switch e.Kind {
		case keyboard.KindTyped:
			l.KeyTyped(e)
		case keyboard.KindPressed:
			l.KeyPressed(e)
		case keyboard.KindReleased:
			l.KeyReleased(e)
		}
	}
}
