package indicator

import (
	"os"
	"path/filepath"

	"github.com/bradjmsu/whisper-toggle/log"
)

// StatusFile mirrors the current pipeline state into a small file so
// status bars can show a mic icon. Terminal outcomes write "idle".
type StatusFile struct {
	path string
}

func NewStatusFile(path string) *StatusFile {
	if path == "" {
		path = filepath.Join(os.TempDir(), "whisper-toggle-status")
	}
	return &StatusFile{path: path}
}

func (s *StatusFile) Path() string { return s.path }

func (s *StatusFile) Notify(e Event, detail string) {
	var state string
	switch e {
	case Listening:
		state = "listening"
	case Processing:
		state = "processing"
	case Success, Failure, EmptyAudio, DeviceRecovered:
		state = "idle"
	case DeviceLost:
		state = "error"
	default:
		return
	}
	if err := os.WriteFile(s.path, []byte(state+"\n"), 0o644); err != nil {
		log.Debugf("status file write failed: %v", err)
	}
}

// Remove deletes the status file. Called at shutdown.
func (s *StatusFile) Remove() {
	os.Remove(s.path)
}
