package v1

import (
	"github.com/tupyy/parcm/internal/models"
	"github.com/tupyy/parcm/pkg/loader"
	"github.com/tupyy/parcm/pkg/scheduler"
)

func NewAlbumFromModel(a models.Album) Album {
	return Album{
		Index:  a.Index,
		Title:  a.Title,
		Artist: a.Artist,
		Cover:  a.CoverPath,
		Track:  a.TrackPath,
	}
}

func (s *PlayerStatus) FromModel(m models.PlayerStatus) {
	s.State = PlayerState(m.State)
	s.Requested = m.Requested
	s.Loading = m.Loading

	if m.Error != nil {
		msg := m.Error.Error()
		s.Error = &msg
	}

	if m.NowPlaying == nil {
		return
	}

	np := &NowPlaying{
		Album:     NewAlbumFromModel(m.NowPlaying.Album),
		Degraded:  m.NowPlaying.Degraded,
		UpdatedAt: m.NowPlaying.UpdatedAt,
	}
	if c := m.NowPlaying.Cover; c != nil {
		np.Cover = &Cover{Width: c.Width, Height: c.Height, Placeholder: c.Placeholder}
	}
	if t := m.NowPlaying.Track; t != nil {
		np.Track = &Track{
			SampleRate: t.SampleRate,
			Channels:   t.Channels,
			BitDepth:   t.BitDepth,
			Duration:   t.Duration.String(),
		}
	}
	s.NowPlaying = np
}

func (s *PlayerStatus) WithSlot(slot loader.Slot) *PlayerStatus {
	s.Slot = LoadSlot{
		State:      slot.State.String(),
		Key:        slot.Key,
		Generation: slot.Generation,
		InProgress: slot.InProgress,
		Finished:   slot.Finished,
		Finalized:  slot.Finalized,
	}
	return s
}

func (s *PlayerStatus) WithPool(stats scheduler.Stats) *PlayerStatus {
	s.Pool = PoolStats{
		Workers:   stats.Workers,
		Idle:      stats.Idle,
		Active:    stats.Active,
		Pending:   stats.Pending,
		Running:   stats.Running,
		Submitted: stats.Submitted,
		Completed: stats.Completed,
		Failed:    stats.Failed,
		Rejected:  stats.Rejected,
	}
	return s
}
