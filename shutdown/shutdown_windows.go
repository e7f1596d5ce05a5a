//go:build windows

package shutdown

import (
	"os"
	"os/signal"
)

func Notify(ch chan os.Signal) {
	signal.Notify(ch, os.Interrupt)
}

// NotifyToggle is a no-op: there is no SIGUSR1 equivalent here, the
// hardware key is the only toggle surface.
func NotifyToggle(ch chan os.Signal) {}
