package journal

import (
	"bytes"
	"errors"
	"os/exec"
	"runtime"
)

type Notificator interface {
	Notify(title, message string) error
}

func NewNotificator() Notificator {
	switch runtime.GOOS {
	case "darwin":
		return &MacNotificator{}
	case "linux":
		return &LinuxNotificator{}
	}
	return NopNotificator{}
}

type MacNotificator struct{}

func (no *MacNotificator) Notify(title string, message string) error {
	var errOut bytes.Buffer
	cmd := exec.Command("osascript", "-e", `display notification "`+message+`" with title "keytap" subtitle "`+title+`"`)
	cmd.Stderr = &errOut
	if err := cmd.Run(); err != nil {
		return errors.New(errOut.String())
	}
	return nil
}

type LinuxNotificator struct{}

func (no *LinuxNotificator) Notify(title string, message string) error {
	var errOut bytes.Buffer
	cmd := exec.Command("notify-send", "keytap: "+title, message)
	cmd.Stderr = &errOut
	if err := cmd.Run(); err != nil {
		return errors.New(errOut.String())
	}
	return nil
}

type NopNotificator struct{}

func (NopNotificator) Notify(title, message string) error {
	return nil
}
