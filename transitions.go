package main

import (
	"fmt"
	"strconv"
	"strings"

	"keytap/keyboard"
)

// parseTransitions turns tokens like "down:0xA0", "up:160" and "tap:KEY_A"
// into raw transitions. A tap is a press followed by a release.
func parseTransitions(tokens []string) ([]keyboard.Transition, error) {
	var ts []keyboard.Transition
	for _, tok := range tokens {
		action, value, ok := strings.Cut(tok, ":")
		if !ok {
			return nil, fmt.Errorf("invalid token %q, expected ACTION:CODE", tok)
		}
		c, err := parseCode(value)
		if err != nil {
			return nil, fmt.Errorf("invalid code in %q: %w", tok, err)
		}
		switch strings.ToLower(action) {
		case "down":
			ts = append(ts, keyboard.Transition{Code: c, Down: true})
		case "up":
			ts = append(ts, keyboard.Transition{Code: c})
		case "tap":
			ts = append(ts, keyboard.Transition{Code: c, Down: true}, keyboard.Transition{Code: c})
		default:
			return nil, fmt.Errorf("unknown action %q in %q", action, tok)
		}
	}
	return ts, nil
}

// parseCode accepts a numeric virtual-key code or a key name such as KEY_A.
func parseCode(value string) (uint32, error) {
	if k, ok := keyboard.ParseKey(strings.ToUpper(value)); ok {
		code, ok := keyboard.CodeOf(k)
		if !ok {
			return 0, fmt.Errorf("key %s has no virtual-key code", k)
		}
		return code, nil
	}
	code, err := strconv.ParseUint(value, 0, 32)
	if err != nil {
		return 0, err
	}
	return uint32(code), nil
}
