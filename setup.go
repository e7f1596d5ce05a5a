package main

import (
	"fmt"
	"os"

	"github.com/bradjmsu/whisper-toggle/audio"
	"github.com/bradjmsu/whisper-toggle/config"
)

// runSetup lets the user pick a microphone and persists the choice.
func runSetup(cfg config.Config) int {
	actx, err := audio.NewContext()
	if err != nil {
		fmt.Fprintf(os.Stderr, "audio: %v\n", err)
		return 1
	}
	defer actx.Close()

	dev, err := audio.SelectDevice(actx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "device selection: %v\n", err)
		return 1
	}

	cfg.AudioDeviceName = dev.Name
	cfg.AudioDeviceIndex = -1
	if err := cfg.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "saving config: %v\n", err)
		return 1
	}
	path, _ := config.Path()
	fmt.Printf("Saved %q to %s\n", dev.Name, path)
	return 0
}
