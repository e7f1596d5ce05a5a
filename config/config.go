// Package config handles loading and persisting application configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

const (
	appName        = "whisper-toggle"
	configFileName = "config.json"
)

// ModelSizes lists the recognized whisper model sizes, smallest first.
var ModelSizes = []string{"tiny", "base", "small", "medium", "large"}

// OutputMethods lists the recognized text injection methods.
var OutputMethods = []string{"type", "paste", "ydotool"}

// KeyF16 is the default toggle key (evdev code for the "X button" on
// keyboards that expose one).
const KeyF16 = 186

// Config represents the application configuration. Every field has a
// default so a missing or partial config file is never an error.
type Config struct {
	AudioDeviceIndex  int     `json:"audio_device_index"`
	AudioDeviceName   string  `json:"audio_device_name"`
	SampleRate        int     `json:"sample_rate"`
	SilenceThreshold  float64 `json:"silence_threshold"`
	ModelSize         string  `json:"model_size"`
	Language          string  `json:"language"`
	TrailingSilenceMs int     `json:"trailing_silence_ms"`
	MaxSessionSeconds int     `json:"max_session_seconds"`
	DebounceMs        int     `json:"debounce_ms"`
	ToggleKeyCode     int     `json:"toggle_key_code"`
	AudioGain         float64 `json:"audio_gain"`
	OutputMethod      string  `json:"output_method"`
	ShowNotifications bool    `json:"show_notifications"`
	PlaySounds        bool    `json:"play_sounds"`
	WriteStatusFile   bool    `json:"write_status_file"`
	SaveRecordings    bool    `json:"save_recordings"`
	RecordingsDir     string  `json:"recordings_dir"`
	ModelDir          string  `json:"model_dir"`
	WhisperBin        string  `json:"whisper_bin"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		AudioDeviceIndex:  -1, // system default
		SampleRate:        16000,
		SilenceThreshold:  0.002,
		ModelSize:         "base",
		Language:          "en",
		TrailingSilenceMs: 1500,
		MaxSessionSeconds: 120,
		DebounceMs:        150,
		ToggleKeyCode:     KeyF16,
		AudioGain:         1.0,
		OutputMethod:      "type",
		ShowNotifications: true,
		PlaySounds:        true,
		WriteStatusFile:   true,
		SaveRecordings:    false,
		RecordingsDir:     dataPath("recordings"),
		ModelDir:          dataPath("models"),
	}
}

// Load reads the config file from the default location. Returns the
// default config if the file does not exist.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), fmt.Errorf("config path: %w", err)
	}
	return LoadFrom(path)
}

// LoadFrom reads a config file from an explicit path. Absent keys keep
// their defaults; unknown keys are ignored.
func LoadFrom(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the default location, creating the
// directory if needed.
func (c Config) Save() error {
	path, err := Path()
	if err != nil {
		return fmt.Errorf("config path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// Validate checks enum-valued fields and numeric ranges.
func (c Config) Validate() error {
	if !slices.Contains(ModelSizes, c.ModelSize) {
		return fmt.Errorf("unknown model size %q (use one of %v)", c.ModelSize, ModelSizes)
	}
	if !slices.Contains(OutputMethods, c.OutputMethod) {
		return fmt.Errorf("unknown output method %q (use one of %v)", c.OutputMethod, OutputMethods)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("sample_rate must be positive, got %d", c.SampleRate)
	}
	if c.SilenceThreshold < 0 || c.SilenceThreshold > 1 {
		return fmt.Errorf("silence_threshold must be in [0,1], got %g", c.SilenceThreshold)
	}
	if c.TrailingSilenceMs <= 0 {
		return fmt.Errorf("trailing_silence_ms must be positive, got %d", c.TrailingSilenceMs)
	}
	if c.MaxSessionSeconds <= 0 {
		return fmt.Errorf("max_session_seconds must be positive, got %d", c.MaxSessionSeconds)
	}
	if c.AudioGain <= 0 {
		return fmt.Errorf("audio_gain must be positive, got %g", c.AudioGain)
	}
	return nil
}

// ModelPath returns the on-disk path of the ggml model for the
// configured size.
func (c Config) ModelPath() string {
	return filepath.Join(c.ModelDir, fmt.Sprintf("ggml-%s.bin", c.ModelSize))
}

// Path returns the config file location (~/.config/whisper-toggle/config.json).
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appName, configFileName), nil
}

func dataPath(sub string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", appName, sub)
	}
	return filepath.Join(home, ".local", "share", appName, sub)
}
