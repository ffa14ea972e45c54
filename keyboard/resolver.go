// Package keyboard turns raw virtual-key transitions into key events.
//
// A Resolver owns the modifier State of one hook session. Each call applies
// the transition to the State first and then looks the code up, so a
// modifier key's own event already carries its new modifier state.
package keyboard

import (
	"sync"
	"time"
)

type Resolver struct {
	mu    sync.Mutex
	state *State
	now   func() time.Time
}

func NewResolver() *Resolver {
	return &Resolver{
		state: NewState(),
		now:   time.Now,
	}
}

// Resolve applies one transition of code to the modifier state and resolves
// a logical event of the given kind. ok is false when code is on the ignore
// list; any other code yields an event, with KeyUndefined for codes outside
// the table.
//
// Every call applies the transition, so a raw key-down must not be resolved
// twice through Resolve: caps-lock would flip twice. Translate does the
// typed/pressed fan-out with a single apply.
func (r *Resolver) Resolve(code uint32, down bool, kind Kind) (Event, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resolve(code, down, kind, r.now(), true)
}

func (r *Resolver) resolve(code uint32, down bool, kind Kind, when time.Time, apply bool) (Event, bool) {
	if apply {
		r.state.Apply(code, down)
	}
	if IsIgnored(code) {
		return Event{}, false
	}

	e := Event{
		Kind:       kind,
		VirtualKey: code,
		Key:        KeyUndefined,
		Char:       NoChar,
		Modifiers:  r.state.Modifiers(),
		When:       when,
	}
	if d, ok := lookup(code); ok {
		e.Key = d.key
		if kind == KindTyped {
			e.Char = d.rule.resolve(e.Modifiers)
		}
	}
	return e, true
}

// Translate expands a raw transition into its logical events: typed and
// pressed for a key-down, released for a key-up. Ignored codes yield nil.
func (r *Resolver) Translate(t Transition) []Event {
	when := t.When
	if when.IsZero() {
		when = r.now()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if !t.Down {
		e, ok := r.resolve(t.Code, false, KindReleased, when, true)
		if !ok {
			return nil
		}
		return []Event{e}
	}

	typed, ok := r.resolve(t.Code, true, KindTyped, when, true)
	if !ok {
		return nil
	}
	// pressed shares the transition the typed event already applied
	pressed, _ := r.resolve(t.Code, true, KindPressed, when, false)
	return []Event{typed, pressed}
}

// Modifiers returns the current modifier snapshot.
func (r *Resolver) Modifiers() Modifiers {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.Modifiers()
}

func (r *Resolver) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.Reset()
}
