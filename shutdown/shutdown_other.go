//go:build !windows

package shutdown

import (
	"os"
	"os/signal"
	"syscall"
)

func Notify(ch chan os.Signal) {
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
}

// NotifyToggle registers the external toggle signal. Scripts and
// window-manager bindings send SIGUSR1 to flip capture without the
// hardware key.
func NotifyToggle(ch chan os.Signal) {
	signal.Notify(ch, syscall.SIGUSR1)
}
