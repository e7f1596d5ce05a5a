//go:build linux

package doctor

import (
	"fmt"
	"os"
)

func checkInjection() bool {
	fmt.Println()
	fmt.Println("[4/4] Text injection (uinput)")

	path := "/dev/uinput"
	if _, err := os.Stat(path); err != nil {
		path = "/dev/input/uinput"
		if _, err := os.Stat(path); err != nil {
			fmt.Println("  FAIL: uinput device not found (try: sudo modprobe uinput)")
			return false
		}
	}
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		fmt.Printf("  FAIL: cannot open %s: %v\n", path, err)
		fmt.Println("        grant access with a udev rule or run: sudo usermod -aG input $USER")
		return false
	}
	f.Close()
	fmt.Printf("  PASS: %s is writable\n", path)
	return true
}
