package v1

import "time"

type PlayerState string

const (
	PlayerStateIdle    PlayerState = "idle"
	PlayerStateLoading PlayerState = "loading"
	PlayerStatePlaying PlayerState = "playing"
)

type Album struct {
	Index  int    `json:"index"`
	Title  string `json:"title"`
	Artist string `json:"artist,omitempty"`
	Cover  string `json:"cover,omitempty"`
	Track  string `json:"track,omitempty"`
}

type Cover struct {
	Width       int  `json:"width"`
	Height      int  `json:"height"`
	Placeholder bool `json:"placeholder"`
}

type Track struct {
	SampleRate int    `json:"sampleRate"`
	Channels   int    `json:"channels"`
	BitDepth   int    `json:"bitDepth"`
	Duration   string `json:"duration"`
}

type NowPlaying struct {
	Album     Album     `json:"album"`
	Cover     *Cover    `json:"cover,omitempty"`
	Track     *Track    `json:"track,omitempty"`
	Degraded  []string  `json:"degraded,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LoadSlot is the state of the background load slot.
type LoadSlot struct {
	State      string `json:"state"`
	Key        int    `json:"key"`
	Generation uint64 `json:"generation"`
	InProgress bool   `json:"inProgress"`
	Finished   bool   `json:"finished"`
	Finalized  bool   `json:"finalized"`
}

type PoolStats struct {
	Workers   int    `json:"workers"`
	Idle      int    `json:"idle"`
	Active    int    `json:"active"`
	Pending   int    `json:"pending"`
	Running   bool   `json:"running"`
	Submitted uint64 `json:"submitted"`
	Completed uint64 `json:"completed"`
	Failed    uint64 `json:"failed"`
	Rejected  uint64 `json:"rejected"`
}

type PlayerStatus struct {
	State      PlayerState `json:"state"`
	Requested  *int        `json:"requested,omitempty"`
	Loading    *int        `json:"loading,omitempty"`
	NowPlaying *NowPlaying `json:"nowPlaying,omitempty"`
	Error      *string     `json:"error,omitempty"`
	Slot       LoadSlot    `json:"slot"`
	Pool       PoolStats   `json:"pool"`
}

type NavigationResponse struct {
	Requested int `json:"requested"`
}

type AlbumListResponse struct {
	Albums    []Album `json:"albums"`
	Page      int     `json:"page"`
	PageCount int     `json:"pageCount"`
	Total     int     `json:"total"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// ListAlbumsParams defines parameters for ListAlbums.
type ListAlbumsParams struct {
	Artist   *[]string `form:"artist,omitempty" json:"artist,omitempty"`
	Title    *string   `form:"title,omitempty" json:"title,omitempty"`
	Page     *int      `form:"page,omitempty" json:"page,omitempty"`
	PageSize *int      `form:"pageSize,omitempty" json:"pageSize,omitempty"`
}
