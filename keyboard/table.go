package keyboard

// NoChar marks an event without a printable character.
const NoChar rune = 0

type ruleKind uint8

const (
	ruleNone ruleKind = iota
	ruleFixed
	ruleCase
	ruleLevel
)

// charRule selects the character a key produces under the current modifiers.
// ruleFixed uses base; ruleCase uses base/shifted as lower/upper case;
// ruleLevel uses base, shifted and third (Shift+Alt).
type charRule struct {
	kind    ruleKind
	base    rune
	shifted rune
	third   rune
}

func (r charRule) resolve(m Modifiers) rune {
	switch r.kind {
	case ruleFixed:
		return r.base
	case ruleCase:
		if m.Has(Shift) != m.Has(Capital) {
			return r.shifted
		}
		return r.base
	case ruleLevel:
		if !m.Has(Shift) {
			return r.base
		}
		if m.Has(Alt) {
			return r.third
		}
		return r.shifted
	}
	return NoChar
}

type descriptor struct {
	key  Key
	rule charRule
}

func none() charRule {
	return charRule{}
}

func fixed(ch rune) charRule {
	return charRule{kind: ruleFixed, base: ch}
}

func letter(lower rune) charRule {
	return cased(lower, lower-'a'+'A')
}

func cased(lower, upper rune) charRule {
	return charRule{kind: ruleCase, base: lower, shifted: upper}
}

func level(base, shifted, third rune) charRule {
	return charRule{kind: ruleLevel, base: base, shifted: shifted, third: third}
}

// ignored holds the codes that never produce an event: IME, browser, media,
// launcher and OEM-reserved keys.
var ignored = map[uint32]struct{}{
	VKClear: {}, VKKana: {}, VKJunja: {}, VKFinal: {}, VKHanja: {},
	VKConvert: {}, VKNonConvert: {}, VKAccept: {}, VKModeChange: {},
	VKSelect: {}, VKPrint: {}, VKExecute: {}, VKHelp: {}, VKSleep: {},
	VKBrowserBack: {}, VKBrowserForward: {}, VKBrowserRefresh: {}, VKBrowserStop: {},
	VKBrowserSearch: {}, VKBrowserFavorites: {}, VKBrowserHome: {},
	VKVolumeMute: {}, VKVolumeDown: {}, VKVolumeUp: {},
	VKMediaNextTrack: {}, VKMediaPrevTrack: {}, VKMediaStop: {}, VKMediaPlayPause: {},
	VKLaunchMail: {}, VKLaunchMediaSelect: {}, VKLaunchApp1: {}, VKLaunchApp2: {},
	VKProcessKey: {}, VKPacket: {}, VKAttn: {}, VKCrSel: {}, VKExSel: {}, VKErEOF: {},
	VKPlay: {}, VKZoom: {}, VKNoName: {}, VKPA1: {}, VKOEM8: {}, VKOEMClear: {},
}

// IsIgnored reports whether code is on the fixed ignore list.
func IsIgnored(code uint32) bool {
	_, ok := ignored[code]
	return ok
}

var descriptors = buildDescriptors()

func buildDescriptors() map[uint32]descriptor {
	t := map[uint32]descriptor{
		VKTab:    {KeyTab, fixed('\t')},
		VKReturn: {KeyEnter, fixed('\n')},
		VKSpace:  {KeySpace, fixed(' ')},

		// generic codes carry no side information and leave State untouched
		VKShift:   {KeyLeftShift, none()},
		VKControl: {KeyLeftControl, none()},
		VKMenu:    {KeyLeftAlt, none()},

		VKBack:     {KeyBackspace, none()},
		VKPause:    {KeyPauseBreak, none()},
		VKEscape:   {KeyEscape, none()},
		VKPrior:    {KeyPageUp, none()},
		VKNext:     {KeyPageDown, none()},
		VKEnd:      {KeyEnd, none()},
		VKHome:     {KeyHome, none()},
		VKLeft:     {KeyLeft, none()},
		VKUp:       {KeyUp, none()},
		VKRight:    {KeyRight, none()},
		VKDown:     {KeyDown, none()},
		VKSnapshot: {KeyPrintScreen, none()},
		VKInsert:   {KeyInsert, none()},
		VKDelete:   {KeyDelete, none()},
		VKNumLock:  {KeyNumLock, none()},
		VKScroll:   {KeyScrollLock, none()},
		VKLWin:     {KeyLeftWindow, none()},
		VKRWin:     {KeyRightWindow, none()},
		VKApps:     {KeyApplications, none()},

		VKCapital:  {KeyCapsLock, none()},
		VKLShift:   {KeyLeftShift, none()},
		VKRShift:   {KeyRightShift, none()},
		VKLControl: {KeyLeftControl, none()},
		VKRControl: {KeyRightControl, none()},
		VKLMenu:    {KeyLeftAlt, none()},
		VKRMenu:    {KeyRightAlt, none()},

		VK0: {Key0, level('0', ')', NoChar)},
		VK1: {Key1, level('1', '!', '¹')},
		VK2: {Key2, level('2', '@', '²')},
		VK3: {Key3, level('3', '#', '³')},
		VK4: {Key4, level('4', '$', '£')},
		VK5: {Key5, level('5', '%', '¢')},
		VK6: {Key6, level('6', '¨', '¬')},
		VK7: {Key7, level('7', '&', NoChar)},
		VK8: {Key8, level('8', '*', NoChar)},
		VK9: {Key9, level('9', '(', NoChar)},

		VKMultiply:  {KeyMultiply, fixed('×')},
		VKAdd:       {KeyAdd, fixed('+')},
		VKSeparator: {KeySeparator, fixed('.')},
		VKSubtract:  {KeySubtract, fixed('-')},
		VKDecimal:   {KeyDecimal, fixed(',')},
		VKDivide:    {KeyDivide, fixed('/')},

		// ABNT2 punctuation
		VKOEM1:      {KeyCedilla, cased('ç', 'Ç')},
		VKOEMPlus:   {KeyPlus, fixed('+')},
		VKOEMComma:  {KeyComma, fixed(',')},
		VKOEMMinus:  {KeyMinus, fixed('-')},
		VKOEMPeriod: {KeyPeriod, fixed('.')},
		VKOEM2:      {KeyColon, level(';', ':', NoChar)},
		VKOEM3:      {KeyQuote, level('\'', '"', NoChar)},
		VKOEM4:      {KeyAcute, level('´', '`', NoChar)},
		VKOEM5:      {KeyRightBracket, level(']', '}', NoChar)},
		VKOEM6:      {KeyLeftBracket, level('[', '{', NoChar)},
		VKOEM7:      {KeyTilde, level('~', '^', NoChar)},
		VKABNTC1:    {KeySlash, level('/', '?', '#')},
		VKOEM102:    {KeyBackSlash, level('\\', '|', '#')},
	}

	for i := uint32(0); i < 26; i++ {
		t[VKA+i] = descriptor{KeyA + Key(i), letter('a' + rune(i))}
	}
	for i := uint32(0); i < 10; i++ {
		t[VKNumpad0+i] = descriptor{KeyNumpad0 + Key(i), fixed('0' + rune(i))}
	}
	for i := uint32(0); i < 24; i++ {
		t[VKF1+i] = descriptor{KeyF1 + Key(i), none()}
	}
	return t
}

var codes = buildCodes()

// buildCodes inverts descriptors. Sided modifier codes win over the generic
// VK_SHIFT, VK_CONTROL and VK_MENU, which map to the same keys.
func buildCodes() map[Key]uint32 {
	m := make(map[Key]uint32, len(descriptors))
	for code, d := range descriptors {
		if cur, ok := m[d.key]; !ok || code > cur {
			m[d.key] = code
		}
	}
	return m
}

// CodeOf returns the virtual-key code that resolves to k.
func CodeOf(k Key) (uint32, bool) {
	code, ok := codes[k]
	return code, ok
}

func lookup(code uint32) (descriptor, bool) {
	d, ok := descriptors[code]
	return d, ok
}
