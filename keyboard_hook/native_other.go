//go:build !windows

package keyboard_hook

import (
	"log/slog"

	"keytap/keyboard"
)

// NativeHook is only available on windows; use GoHook elsewhere.
type NativeHook struct {
	logger *slog.Logger
}

func NewNativeHook(logger *slog.Logger) *NativeHook {
	return &NativeHook{logger: logger}
}

func (h *NativeHook) Name() string {
	return "NativeHook"
}

func (h *NativeHook) Register(onTransition func(keyboard.Transition)) error {
	return ErrUnsupported
}

func (h *NativeHook) Unregister() error {
	return ErrNotRegistered
}
