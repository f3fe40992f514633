package assets

import (
	"context"

	"github.com/tupyy/parcm/internal/models"
	"github.com/tupyy/parcm/pkg/loader"
)

const (
	ArtifactAlbum = "album"
	ArtifactCover = "cover"
	ArtifactTrack = "track"

	placeholderSize = 256
)

// Catalog resolves an album index to its metadata.
type Catalog interface {
	Get(ctx context.Context, index int) (*models.Album, error)
}

// Artifacts builds the loader artifacts of an album. A failed cover falls back to
// defaultCover, or to a placeholder when defaultCover is empty or cannot be decoded.
// A failed track keeps the track that is already playing.
func Artifacts(lib *Library, catalog Catalog, defaultCover string) []loader.Artifact {
	return []loader.Artifact{
		{
			Name: ArtifactAlbum,
			Load: func(ctx context.Context, key int) (any, error) {
				album, err := catalog.Get(ctx, key)
				if err != nil {
					return nil, err
				}
				return *album, nil
			},
			Fallback: func(ctx context.Context) (any, error) {
				return models.UntitledAlbum(-1), nil
			},
		},
		{
			Name: ArtifactCover,
			Load: func(ctx context.Context, key int) (any, error) {
				album, err := catalog.Get(ctx, key)
				if err != nil {
					return nil, err
				}
				return lib.Cover(ctx, album.CoverPath)
			},
			Fallback: func(ctx context.Context) (any, error) {
				if defaultCover != "" {
					if c, err := lib.Cover(ctx, defaultCover); err == nil {
						return c, nil
					}
				}
				return Placeholder(placeholderSize, placeholderSize), nil
			},
		},
		{
			Name: ArtifactTrack,
			Load: func(ctx context.Context, key int) (any, error) {
				album, err := catalog.Get(ctx, key)
				if err != nil {
					return nil, err
				}
				return lib.Track(ctx, album.TrackPath)
			},
		},
	}
}
