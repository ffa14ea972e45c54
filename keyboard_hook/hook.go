package keyboard_hook

import (
	"errors"
	"fmt"
	"log/slog"

	"keytap/keyboard"
)

var (
	ErrUnsupported       = errors.New("hook backend is not supported on this platform")
	ErrNotRegistered     = errors.New("hook is not registered")
	ErrAlreadyRegistered = errors.New("hook is already registered")
	ErrUnknownBackend    = errors.New("unknown hook backend")
)

// Hook installs a system-wide keyboard hook.
// Register blocks, delivering raw transitions to onTransition one at a time,
// until Unregister is called or the hook fails. An Unregister that arrives
// before Register has started is kept, and Register then returns nil at once.
type Hook interface {
	Name() string
	Register(onTransition func(keyboard.Transition)) error
	Unregister() error
}

const (
	BackendGoHook = "gohook"
	BackendNative = "native"
)

func NewHook(backend string, logger *slog.Logger) (Hook, error) {
	switch backend {
	case "", BackendGoHook:
		return NewGoHook(logger), nil
	case BackendNative:
		return NewNativeHook(logger), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
}
