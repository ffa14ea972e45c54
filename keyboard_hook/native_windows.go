//go:build windows

package keyboard_hook

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"unsafe"

	"keytap/keyboard"

	"golang.org/x/sys/windows"
)

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procSetWindowsHookExW   = user32.NewProc("SetWindowsHookExW")
	procUnhookWindowsHookEx = user32.NewProc("UnhookWindowsHookEx")
	procCallNextHookEx      = user32.NewProc("CallNextHookEx")
	procGetMessageW         = user32.NewProc("GetMessageW")
	procPostThreadMessageW  = user32.NewProc("PostThreadMessageW")
)

const (
	whKeyboardLL = 13

	wmQuit       = 0x0012
	wmKeyDown    = 0x0100
	wmKeyUp      = 0x0101
	wmSysKeyDown = 0x0104
	wmSysKeyUp   = 0x0105
)

type kbdllHookStruct struct {
	VkCode      uint32
	ScanCode    uint32
	Flags       uint32
	Time        uint32
	DwExtraInfo uintptr
}

type msg struct {
	Hwnd    uintptr
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      struct{ X, Y int32 }
}

// A low-level hook procedure cannot carry state, so the registered hook is
// package-wide. Only one NativeHook may be registered at a time.
var (
	activeMu     sync.Mutex
	activeHook   *NativeHook
	callbackOnce sync.Once
	callbackPtr  uintptr
)

// NativeHook installs WH_KEYBOARD_LL directly and pumps the message loop on
// a locked OS thread.
type NativeHook struct {
	logger       *slog.Logger
	onTransition func(keyboard.Transition)
	threadID     uint32
	stopping     bool
}

func NewNativeHook(logger *slog.Logger) *NativeHook {
	return &NativeHook{logger: logger}
}

func (h *NativeHook) Name() string {
	return "NativeHook"
}

func (h *NativeHook) Register(onTransition func(keyboard.Transition)) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	activeMu.Lock()
	if activeHook != nil {
		activeMu.Unlock()
		return ErrAlreadyRegistered
	}
	if h.stopping {
		h.stopping = false
		activeMu.Unlock()
		return nil
	}
	h.onTransition = onTransition
	h.threadID = windows.GetCurrentThreadId()
	activeHook = h
	activeMu.Unlock()

	defer func() {
		activeMu.Lock()
		activeHook = nil
		h.threadID = 0
		h.stopping = false
		activeMu.Unlock()
	}()

	callbackOnce.Do(func() {
		callbackPtr = windows.NewCallback(lowLevelKeyboardProc)
	})
	handle, _, err := procSetWindowsHookExW.Call(whKeyboardLL, callbackPtr, 0, 0)
	if handle == 0 {
		return fmt.Errorf("SetWindowsHookExW: %w", err)
	}
	defer procUnhookWindowsHookEx.Call(handle)
	h.logger.Debug("native hook installed", slog.Uint64("thread", uint64(h.threadID)))

	var m msg
	for {
		ret, _, err := procGetMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
		switch int32(ret) {
		case -1:
			return fmt.Errorf("GetMessageW: %w", err)
		case 0:
			h.logger.Debug("native hook message loop exited")
			return nil
		}
	}
}

// Unregister quits the message loop. Called before Register, it makes the
// next Register return at once. It fails while the hook thread has no
// message queue yet; callers retry.
func (h *NativeHook) Unregister() error {
	activeMu.Lock()
	defer activeMu.Unlock()
	if activeHook != h || h.threadID == 0 {
		h.stopping = true
		return nil
	}
	if h.stopping {
		return nil
	}
	ret, _, err := procPostThreadMessageW.Call(uintptr(h.threadID), wmQuit, 0, 0)
	if ret == 0 {
		return fmt.Errorf("PostThreadMessageW: %w", err)
	}
	h.stopping = true
	return nil
}

func lowLevelKeyboardProc(nCode int, wParam uintptr, lParam uintptr) uintptr {
	if nCode >= 0 {
		kb := (*kbdllHookStruct)(unsafe.Pointer(lParam))

		// the hook thread is the only caller, activeHook is stable while it runs
		h := activeHook
		if h != nil {
			switch wParam {
			case wmKeyDown, wmSysKeyDown:
				h.onTransition(keyboard.Transition{Code: kb.VkCode, Down: true})
			case wmKeyUp, wmSysKeyUp:
				h.onTransition(keyboard.Transition{Code: kb.VkCode, Down: false})
			}
		}
	}
	ret, _, _ := procCallNextHookEx.Call(0, uintptr(nCode), wParam, lParam)
	return ret
}
