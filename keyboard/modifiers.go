package keyboard

import "strings"

// Modifiers is the bitmask snapshot carried by every Event.
type Modifiers uint8

const (
	Capital Modifiers = 1 << iota
	Left
	Right
	Shift
	Control
	Alt
	InTransition
)

var modifierNames = []struct {
	m    Modifiers
	name string
}{
	{Capital, "CAPITAL"},
	{Left, "LEFT"},
	{Right, "RIGHT"},
	{Shift, "SHIFT"},
	{Control, "CONTROL"},
	{Alt, "ALT"},
	{InTransition, "TRANSITION"},
}

func (m Modifiers) Has(f Modifiers) bool {
	return m&f == f
}

func (m *Modifiers) Set(f Modifiers) {
	*m |= f
}

func (m *Modifiers) Clear(f Modifiers) {
	*m &^= f
}

func (m *Modifiers) Toggle(f Modifiers) {
	*m ^= f
}

func (m Modifiers) String() string {
	if m == 0 {
		return "NONE"
	}
	var names []string
	for _, n := range modifierNames {
		if m.Has(n.m) {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, "|")
}

// State tracks the modifier keys across successive transitions.
// It is not safe for concurrent use; Resolver serializes access to it.
type State struct {
	mods Modifiers
}

func NewState() *State {
	return &State{}
}

// Apply records one raw transition of code.
func (s *State) Apply(code uint32, down bool) {
	if down {
		s.mods.Set(InTransition)
	} else {
		s.mods.Clear(InTransition)
	}

	var flag, side Modifiers
	switch code {
	case VKCapital:
		// flips on release too
		s.mods.Toggle(Capital)
		return
	case VKLShift:
		flag, side = Shift, Left
	case VKRShift:
		flag, side = Shift, Right
	case VKLControl:
		flag, side = Control, Left
	case VKRControl:
		flag, side = Control, Right
	case VKLMenu:
		flag, side = Alt, Left
	case VKRMenu:
		flag, side = Alt, Right
	default:
		return
	}

	if down {
		s.mods.Set(flag | side)
	} else {
		s.mods.Clear(flag | side)
	}
}

func (s *State) Modifiers() Modifiers {
	return s.mods
}

func (s *State) ShiftHeld() bool {
	return s.mods.Has(Shift)
}

func (s *State) ControlHeld() bool {
	return s.mods.Has(Control)
}

func (s *State) AltHeld() bool {
	return s.mods.Has(Alt)
}

func (s *State) CapsLockOn() bool {
	return s.mods.Has(Capital)
}

func (s *State) InTransition() bool {
	return s.mods.Has(InTransition)
}

// Reset forgets every held modifier and the caps-lock toggle.
func (s *State) Reset() {
	s.mods = 0
}
