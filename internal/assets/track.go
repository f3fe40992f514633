package assets

import (
	"fmt"
	"os"
	"time"

	"github.com/go-audio/wav"

	"github.com/tupyy/parcm/internal/models"
)

// DecodeTrack decodes a WAV file into PCM samples.
func DecodeTrack(path string) (*models.Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open track %s: %w", path, err)
	}
	defer f.Close()

	d := wav.NewDecoder(f)
	if !d.IsValidFile() {
		return nil, fmt.Errorf("track %s is not a valid wav file", path)
	}

	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to decode track %s: %w", path, err)
	}

	t := &models.Track{
		Path:       path,
		SampleRate: int(d.SampleRate),
		Channels:   int(d.NumChans),
		BitDepth:   int(d.BitDepth),
		Samples:    buf.Data,
	}
	if t.SampleRate > 0 && t.Channels > 0 {
		frames := len(t.Samples) / t.Channels
		t.Duration = time.Duration(frames) * time.Second / time.Duration(t.SampleRate)
	}
	return t, nil
}
