package models

import (
	"image"
	"time"
)

// Cover is a decoded album cover.
type Cover struct {
	Path        string
	Image       image.Image
	Width       int
	Height      int
	Placeholder bool
}

// Track is a decoded PCM audio track.
type Track struct {
	Path       string
	SampleRate int
	Channels   int
	BitDepth   int
	Duration   time.Duration
	Samples    []int
}
