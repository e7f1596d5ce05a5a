package indicator

import (
	"os/exec"

	"github.com/bradjmsu/whisper-toggle/log"
)

const notifyAppName = "whisper-toggle"

// Notifier shows desktop notifications through notify-send. Failures
// are logged and dropped: a missing notification daemon must not
// affect transcription.
type Notifier struct{}

func NewNotifier() *Notifier { return &Notifier{} }

func (n *Notifier) Notify(e Event, detail string) {
	title, body, urgency := notifyContent(e, detail)
	if title == "" {
		return
	}
	cmd := exec.Command("notify-send",
		"--app-name", notifyAppName,
		"--urgency", urgency,
		"--expire-time", "2000",
		title, body)
	if err := cmd.Run(); err != nil {
		log.Debugf("notify-send failed: %v", err)
	}
}

func notifyContent(e Event, detail string) (title, body, urgency string) {
	switch e {
	case Listening:
		return "Listening", "Speak now", "low"
	case Processing:
		return "Transcribing", "", "low"
	case Success:
		return "Transcribed", detail, "low"
	case Failure:
		return "Transcription failed", detail, "critical"
	case EmptyAudio:
		return "Nothing heard", "No speech detected", "low"
	case DeviceLost:
		return "Input device lost", detail, "critical"
	case DeviceRecovered:
		return "Input device recovered", "", "low"
	default:
		return "", "", ""
	}
}
