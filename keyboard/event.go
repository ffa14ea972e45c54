package keyboard

import (
	"fmt"
	"strings"
	"time"
)

type Kind uint8

const (
	KindUnknown Kind = iota
	KindTyped
	KindPressed
	KindReleased
)

var kindNames = [...]string{"UNKNOWN", "TYPED", "PRESSED", "RELEASED"}

func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return kindNames[KindUnknown]
	}
	return kindNames[k]
}

// Transition is one raw key-down or key-up reported by a hook.
type Transition struct {
	Code uint32
	Down bool
	When time.Time
}

// Event is a resolved key event. Char is NoChar unless Kind is KindTyped
// and the key produces a character under Modifiers.
type Event struct {
	Kind       Kind      `json:"kind"`
	VirtualKey uint32    `json:"vk"`
	Key        Key       `json:"key"`
	Char       rune      `json:"char,omitempty"`
	Modifiers  Modifiers `json:"modifiers"`
	When       time.Time `json:"when"`
}

func (e Event) HasChar() bool {
	return e.Char != NoChar
}

func (e Event) HasShift() bool {
	return e.Modifiers.Has(Shift)
}

func (e Event) HasControl() bool {
	return e.Modifiers.Has(Control)
}

func (e Event) HasAlt() bool {
	return e.Modifiers.Has(Alt)
}

func (e Event) CapsLock() bool {
	return e.Modifiers.Has(Capital)
}

func (e Event) IsLeft() bool {
	return e.Modifiers.Has(Left)
}

func (e Event) IsRight() bool {
	return e.Modifiers.Has(Right)
}

func (e Event) IsTransition() bool {
	return e.Kind != KindReleased
}

// Equal reports whether both events come from the same key under the same modifiers.
func (e Event) Equal(o Event) bool {
	return e.VirtualKey == o.VirtualKey && e.Modifiers == o.Modifiers
}

func (e Event) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s vk=0x%02X", e.Kind, e.Key, e.VirtualKey)
	if e.HasChar() {
		fmt.Fprintf(&b, " char=%q", e.Char)
	}
	fmt.Fprintf(&b, " mods=%s", e.Modifiers)
	return b.String()
}
