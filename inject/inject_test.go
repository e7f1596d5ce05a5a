package inject

import "testing"

func TestValidMethod(t *testing.T) {
	for _, m := range []string{"type", "paste", "ydotool"} {
		if err := validMethod(m); err != nil {
			t.Errorf("validMethod(%q) = %v, want nil", m, err)
		}
	}
	if err := validMethod("xdotool"); err == nil {
		t.Error("validMethod(xdotool) = nil, want error")
	}
	if err := validMethod(""); err == nil {
		t.Error("validMethod(empty) = nil, want error")
	}
}

func TestNewRejectsUnknownMethod(t *testing.T) {
	if _, err := New("teleport"); err == nil {
		t.Error("New(teleport) = nil error, want error")
	}
}
