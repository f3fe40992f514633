package models

import (
	"fmt"
	"time"
)

type PlayerState string

const (
	// PlayerStateIdle - nothing loaded yet
	PlayerStateIdle PlayerState = "idle"
	// PlayerStateLoading - an album is loading in the background
	PlayerStateLoading PlayerState = "loading"
	// PlayerStatePlaying - the live album is playing
	PlayerStatePlaying PlayerState = "playing"
)

func ParsePlayerState(s string) (PlayerState, error) {
	switch s {
	case "idle":
		return PlayerStateIdle, nil
	case "loading":
		return PlayerStateLoading, nil
	case "playing":
		return PlayerStatePlaying, nil
	default:
		return "", fmt.Errorf("invalid player state: %s", s)
	}
}

// NowPlaying holds the artifacts activated by the last finalize.
type NowPlaying struct {
	Album     Album
	Cover     *Cover
	Track     *Track
	Degraded  []string
	UpdatedAt time.Time
}

type PlayerStatus struct {
	State      PlayerState
	Requested  *int
	Loading    *int
	NowPlaying *NowPlaying
	Error      error
}
