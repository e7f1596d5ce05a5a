//go:build !linux

package doctor

import (
	"fmt"

	"github.com/atotto/clipboard"
)

func checkInjection() bool {
	fmt.Println()
	fmt.Println("[4/4] Text injection (clipboard)")

	const probe = "whisper-toggle-doctor"
	prev, _ := clipboard.ReadAll()
	if err := clipboard.WriteAll(probe); err != nil {
		fmt.Printf("  FAIL: clipboard write: %v\n", err)
		return false
	}
	got, err := clipboard.ReadAll()
	if prev != "" {
		clipboard.WriteAll(prev)
	}
	if err != nil {
		fmt.Printf("  FAIL: clipboard read: %v\n", err)
		return false
	}
	if got != probe {
		fmt.Println("  FAIL: clipboard round-trip mismatch")
		return false
	}
	fmt.Println("  PASS: clipboard round-trip works")
	return true
}
