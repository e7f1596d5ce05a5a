//go:build !linux

package indicator

func playSamples(samples []int16) {}
