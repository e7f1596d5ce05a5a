//go:build !linux

package inject

import "fmt"

// New falls back to clipboard delivery on platforms without uinput:
// the text is copied and the user pastes it manually.
func New(method string) (Injector, error) {
	if err := validMethod(method); err != nil {
		return nil, err
	}
	return &clipboardOnly{}, nil
}

type clipboardOnly struct{}

func (c *clipboardOnly) Name() string { return "clipboard" }

func (c *clipboardOnly) Inject(text string) error {
	if err := clipboardCopy(text); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	return nil
}
