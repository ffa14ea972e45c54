package keyboard_hook

import (
	"log/slog"
	"sync"

	"keytap/keyboard"

	hook "github.com/robotn/gohook"
)

// GoHook captures keys through libuiohook. Only KeyHold (raw press) and
// KeyUp are consumed; the typed/pressed fan-out is done by the Resolver.
type GoHook struct {
	logger *slog.Logger

	mu       sync.Mutex
	running  bool
	stopping bool
}

func NewGoHook(logger *slog.Logger) *GoHook {
	return &GoHook{logger: logger}
}

func (h *GoHook) Name() string {
	return "GoHook"
}

func (h *GoHook) Register(onTransition func(keyboard.Transition)) error {
	h.mu.Lock()
	if h.running {
		h.mu.Unlock()
		return ErrAlreadyRegistered
	}
	if h.stopping {
		h.stopping = false
		h.mu.Unlock()
		h.logger.Debug("gohook unregistered before start")
		return nil
	}
	h.running = true
	h.logger.Debug("start gohook")
	s := hook.Start()
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		h.running = false
		h.stopping = false
		h.mu.Unlock()
	}()

	for ev := range s {
		switch ev.Kind {
		case hook.KeyHold:
			onTransition(keyboard.Transition{Code: uint32(ev.Rawcode), Down: true, When: ev.When})
		case hook.KeyUp:
			onTransition(keyboard.Transition{Code: uint32(ev.Rawcode), Down: false, When: ev.When})
		}
	}
	h.logger.Debug("gohook stopped")
	return nil
}

// Unregister stops a running hook. Called before Register, it makes the next
// Register return at once.
func (h *GoHook) Unregister() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stopping {
		return nil
	}
	h.stopping = true
	if h.running {
		hook.End()
	}
	return nil
}
