package keyboard

import (
	"testing"
	"unicode"
)

func press(r *Resolver, code uint32) []Event {
	return r.Translate(Transition{Code: code, Down: true})
}

func release(r *Resolver, code uint32) []Event {
	return r.Translate(Transition{Code: code, Down: false})
}

func TestKeyDownOnA(t *testing.T) {
	r := NewResolver()
	evs := press(r, VKA)
	if len(evs) != 2 {
		t.Fatalf("got %d events, want 2", len(evs))
	}
	if evs[0].Kind != KindTyped || evs[0].Key != KeyA || evs[0].Char != 'a' {
		t.Errorf("typed event = %v", evs[0])
	}
	if evs[1].Kind != KindPressed || evs[1].Key != KeyA || evs[1].Char != NoChar {
		t.Errorf("pressed event = %v", evs[1])
	}

	evs = release(r, VKA)
	if len(evs) != 1 || evs[0].Kind != KindReleased || evs[0].Char != NoChar {
		t.Errorf("release events = %v", evs)
	}
}

func TestShiftThenA(t *testing.T) {
	r := NewResolver()
	press(r, VKLShift)
	evs := press(r, VKA)
	if evs[0].Char != 'A' {
		t.Errorf("char = %q, want 'A'", evs[0].Char)
	}
	if !evs[0].HasShift() || !evs[0].IsLeft() {
		t.Errorf("modifiers = %s, want SHIFT|LEFT", evs[0].Modifiers)
	}
}

func TestCapsLockThenA(t *testing.T) {
	r := NewResolver()
	press(r, VKCapital)
	evs := press(r, VKA)
	if evs[0].Char != 'A' {
		t.Errorf("char = %q, want 'A'", evs[0].Char)
	}
	if !evs[0].CapsLock() {
		t.Error("caps lock should be on")
	}
}

func TestShiftAltOne(t *testing.T) {
	r := NewResolver()
	press(r, VKLShift)
	press(r, VKLMenu)
	evs := press(r, VK1)
	if evs[0].Char != '¹' {
		t.Errorf("char = %q, want '¹'", evs[0].Char)
	}
}

func TestLetterCase(t *testing.T) {
	for _, tc := range []struct {
		name  string
		mods  Modifiers
		upper bool
	}{
		{"none", 0, false},
		{"shift", Shift, true},
		{"caps", Capital, true},
		{"shift and caps", Shift | Capital, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			for code := uint32(VKA); code <= VKZ; code++ {
				d, ok := lookup(code)
				if !ok {
					t.Fatalf("0x%02X not mapped", code)
				}
				ch := d.rule.resolve(tc.mods)
				if unicode.IsUpper(ch) != tc.upper {
					t.Errorf("%s: got %q", d.key, ch)
				}
				if unicode.ToLower(ch) != 'a'+rune(code-VKA) {
					t.Errorf("%s: got %q", d.key, ch)
				}
			}
		})
	}
}

func TestDigitLevels(t *testing.T) {
	want := map[uint32][3]rune{
		VK0: {'0', ')', NoChar},
		VK1: {'1', '!', '¹'},
		VK2: {'2', '@', '²'},
		VK3: {'3', '#', '³'},
		VK4: {'4', '$', '£'},
		VK5: {'5', '%', '¢'},
		VK6: {'6', '¨', '¬'},
		VK7: {'7', '&', NoChar},
		VK8: {'8', '*', NoChar},
		VK9: {'9', '(', NoChar},
	}
	for code, levels := range want {
		d, _ := lookup(code)
		for i, mods := range []Modifiers{0, Shift, Shift | Alt} {
			if got := d.rule.resolve(mods); got != levels[i] {
				t.Errorf("%s with %s: got %q, want %q", d.key, mods, got, levels[i])
			}
		}
		// alt alone keeps the base level
		if got := d.rule.resolve(Alt); got != levels[0] {
			t.Errorf("%s with ALT: got %q, want %q", d.key, got, levels[0])
		}
	}
}

func TestDigitLevelsThroughResolver(t *testing.T) {
	r := NewResolver()
	if evs := press(r, VK2); evs[0].Char != '2' {
		t.Errorf("base: got %q", evs[0].Char)
	}
	press(r, VKRShift)
	if evs := press(r, VK2); evs[0].Char != '@' {
		t.Errorf("shifted: got %q", evs[0].Char)
	}
	press(r, VKRMenu)
	if evs := press(r, VK2); evs[0].Char != '²' {
		t.Errorf("third level: got %q", evs[0].Char)
	}
	if evs := press(r, VK9); evs[0].Char != NoChar {
		t.Errorf("missing third level: got %q", evs[0].Char)
	}
}

func TestNonTypedKindsCarryNoChar(t *testing.T) {
	r := NewResolver()
	press(r, VKLShift)
	for code := uint32(0); code < 0x100; code++ {
		for _, kind := range []Kind{KindPressed, KindReleased} {
			e, ok := r.Resolve(code, kind != KindReleased, kind)
			if ok && e.HasChar() {
				t.Errorf("0x%02X %s: got char %q", code, kind, e.Char)
			}
		}
	}
}

func TestStructuralKeys(t *testing.T) {
	r := NewResolver()
	for code, want := range map[uint32]rune{
		VKTab:       '\t',
		VKReturn:    '\n',
		VKSpace:     ' ',
		VKNumpad0:   '0',
		VKNumpad0+7: '7',
		VKMultiply:  '×',
		VKDivide:    '/',
		VKF1:        NoChar,
		VKHome:      NoChar,
		VKLShift:    NoChar,
	} {
		e, ok := r.Resolve(code, true, KindTyped)
		if !ok {
			t.Fatalf("0x%02X: no event", code)
		}
		if e.Key == KeyUndefined {
			t.Errorf("0x%02X: undefined key", code)
		}
		if e.Char != want {
			t.Errorf("%s: got %q, want %q", e.Key, e.Char, want)
		}
		r.Resolve(code, false, KindReleased)
	}
}

func TestIgnoredKeys(t *testing.T) {
	for _, mods := range []uint32{0, VKLShift, VKLControl, VKRMenu, VKCapital} {
		r := NewResolver()
		if mods != 0 {
			press(r, mods)
		}
		for code := range ignored {
			for _, kind := range []Kind{KindTyped, KindPressed, KindReleased} {
				if _, ok := r.Resolve(code, kind != KindReleased, kind); ok {
					t.Errorf("0x%02X %s: want no event", code, kind)
				}
			}
		}
		if evs := press(r, VKMediaNextTrack); evs != nil {
			t.Errorf("media next track: got %v", evs)
		}
	}
}

func TestUnmappedKeyYieldsUndefined(t *testing.T) {
	r := NewResolver()
	e, ok := r.Resolve(0x07, true, KindTyped)
	if !ok {
		t.Fatal("want an event for an unmapped code")
	}
	if e.Key != KeyUndefined || e.HasChar() || e.VirtualKey != 0x07 {
		t.Errorf("got %v", e)
	}
}

func TestModifierEventSeesNewState(t *testing.T) {
	r := NewResolver()
	evs := press(r, VKLControl)
	for _, e := range evs {
		if !e.HasControl() || e.Key != KeyLeftControl {
			t.Errorf("press: got %v", e)
		}
	}
	evs = release(r, VKLControl)
	if evs[0].HasControl() {
		t.Errorf("release: got %v", evs[0])
	}
}

func TestResolverReset(t *testing.T) {
	r := NewResolver()
	press(r, VKLShift)
	press(r, VKCapital)
	r.Reset()
	if m := r.Modifiers(); m != 0 {
		t.Errorf("modifiers after reset = %s", m)
	}
}

func TestResolveAppliesEveryCall(t *testing.T) {
	r := NewResolver()
	e, ok := r.Resolve(VKLShift, true, KindPressed)
	if !ok || !e.HasShift() || !e.IsLeft() || !e.Modifiers.Has(InTransition) {
		t.Errorf("pressed shift = %v", e)
	}

	// each Resolve call is a transition of its own
	r.Resolve(VKCapital, true, KindTyped)
	r.Resolve(VKCapital, true, KindPressed)
	if r.Modifiers().Has(Capital) {
		t.Errorf("two caps transitions should cancel out: %s", r.Modifiers())
	}
}

func TestTranslateAppliesOncePerKeyDown(t *testing.T) {
	r := NewResolver()
	evs := press(r, VKCapital)
	if len(evs) != 2 || !evs[0].CapsLock() || !evs[1].CapsLock() {
		t.Fatalf("caps key-down = %v", evs)
	}
	if evs := press(r, VKA); evs[0].Char != 'A' {
		t.Errorf("typed while caps held = %q", evs[0].Char)
	}
}

func TestCodeOf(t *testing.T) {
	for k, want := range map[Key]uint32{
		KeyA:         VKA,
		KeyNumpad0:   VKNumpad0,
		KeyLeftShift: VKLShift,
		KeyLeftAlt:   VKLMenu,
		KeySlash:     VKABNTC1,
	} {
		if got, ok := CodeOf(k); !ok || got != want {
			t.Errorf("CodeOf(%s) = 0x%02X, %v, want 0x%02X", k, got, ok, want)
		}
	}
	if _, ok := CodeOf(KeyUndefined); ok {
		t.Error("KeyUndefined has no code")
	}
}
