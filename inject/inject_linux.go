//go:build linux

package inject

import (
	"fmt"
	"os/exec"
	"time"
)

// New builds the injector for the configured output method.
func New(method string) (Injector, error) {
	if err := validMethod(method); err != nil {
		return nil, err
	}
	switch method {
	case "type":
		return &typer{}, nil
	case "paste":
		return &paster{}, nil
	default:
		return &ydotool{}, nil
	}
}

// typer synthesizes one keystroke per character through uinput.
type typer struct{}

func (t *typer) Name() string { return "type" }

func (t *typer) Inject(text string) error {
	if err := uinputInit(); err != nil {
		return fmt.Errorf("uinput: %w", err)
	}
	// Give the compositor a beat to settle focus after the toggle key.
	time.Sleep(50 * time.Millisecond)
	return uinputType(text)
}

// paster copies the text, sends Ctrl+V, and restores the previous
// clipboard contents shortly after.
type paster struct{}

func (p *paster) Name() string { return "paste" }

func (p *paster) Inject(text string) error {
	prev, _ := clipboardRead()
	if err := clipboardCopy(text); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	if err := uinputPaste(); err != nil {
		return fmt.Errorf("paste keystroke: %w", err)
	}
	if prev != "" {
		go func() {
			time.Sleep(600 * time.Millisecond)
			clipboardCopy(prev)
		}()
	}
	return nil
}

// ydotool shells out to the ydotool daemon, as older setups expect.
type ydotool struct{}

func (y *ydotool) Name() string { return "ydotool" }

func (y *ydotool) Inject(text string) error {
	cmd := exec.Command("ydotool", "type", text)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ydotool: %w (%s)", err, firstLine(string(out)))
	}
	return nil
}

func firstLine(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			return s[:i]
		}
	}
	return s
}
