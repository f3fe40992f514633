package services

import (
	"context"

	"github.com/tupyy/parcm/internal/models"
	"github.com/tupyy/parcm/internal/store"
)

type AlbumService struct {
	store *store.Store
}

func NewAlbumService(st *store.Store) *AlbumService {
	return &AlbumService{store: st}
}

type AlbumListParams struct {
	Artists []string
	Title   string
	Limit   uint64
	Offset  uint64
}

type AlbumListResult struct {
	Albums []models.Album
	Total  int
}

func (s *AlbumService) Get(ctx context.Context, index int) (*models.Album, error) {
	return s.store.Album().Get(ctx, index)
}

func (s *AlbumService) List(ctx context.Context, params AlbumListParams) (*AlbumListResult, error) {
	filters := s.buildFilters(params)

	opts := append(filters, store.WithDefaultSort())
	if params.Limit > 0 {
		opts = append(opts, store.WithLimit(params.Limit))
	}
	if params.Offset > 0 {
		opts = append(opts, store.WithOffset(params.Offset))
	}

	albums, err := s.store.Album().List(ctx, opts...)
	if err != nil {
		return nil, err
	}

	// total ignores pagination
	total, err := s.store.Album().Count(ctx, s.buildFilters(params)...)
	if err != nil {
		return nil, err
	}

	return &AlbumListResult{
		Albums: albums,
		Total:  total,
	}, nil
}

func (s *AlbumService) Import(ctx context.Context, path string) (int, error) {
	return s.store.Album().ImportXLSX(ctx, path)
}

func (s *AlbumService) buildFilters(params AlbumListParams) []store.ListOption {
	var opts []store.ListOption

	if len(params.Artists) > 0 {
		opts = append(opts, store.ByArtists(params.Artists...))
	}
	if params.Title != "" {
		opts = append(opts, store.ByTitleLike(params.Title))
	}

	return opts
}
