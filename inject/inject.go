// Package inject delivers transcribed text to the focused window. It
// is a one-way sink: delivery failure is reported to the caller but
// nothing is queued or retried.
package inject

import (
	"fmt"
	"slices"
)

// Injector types a string into the active application.
type Injector interface {
	Name() string
	Inject(text string) error
}

var methods = []string{"type", "paste", "ydotool"}

func validMethod(method string) error {
	if !slices.Contains(methods, method) {
		return fmt.Errorf("unknown output method %q (use one of %v)", method, methods)
	}
	return nil
}
