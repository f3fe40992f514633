// Package assets decodes album artifacts and adapts them to the background loader.
//
// Covers are decoded with the standard image decoders (PNG, JPEG, GIF) and
// tracks with go-audio/wav. The Library caches decoded artifacts by path and
// is passed explicitly to whoever needs it.
//
// Artifacts returns the three artifacts of an album:
//
//	┌────────┬──────────────────────────┬──────────────────────────────────┐
//	│ Name   │ Load                     │ On failure                       │
//	├────────┼──────────────────────────┼──────────────────────────────────┤
//	│ album  │ catalog metadata         │ "Untitled" album                 │
//	│ cover  │ decode album.CoverPath   │ default cover, else placeholder  │
//	│ track  │ decode album.TrackPath   │ keep the track already playing   │
//	└────────┴──────────────────────────┴──────────────────────────────────┘
package assets
