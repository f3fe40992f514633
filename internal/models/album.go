package models

import (
	"fmt"
	"time"
)

// Album is one entry of the catalog. Index is the key used by the loader.
type Album struct {
	Index     int
	Title     string
	Artist    string
	CoverPath string
	TrackPath string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (a Album) String() string {
	if a.Artist == "" {
		return a.Title
	}
	return fmt.Sprintf("%s - %s", a.Artist, a.Title)
}

// UntitledAlbum is served when an album cannot be resolved from the catalog.
func UntitledAlbum(index int) Album {
	return Album{Index: index, Title: "Untitled"}
}
