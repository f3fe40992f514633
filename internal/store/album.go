package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/tupyy/parcm/internal/models"
	srvErrors "github.com/tupyy/parcm/pkg/errors"
)

// AlbumStore handles the album catalog.
type AlbumStore struct {
	db QueryInterceptor
}

func NewAlbumStore(db QueryInterceptor) *AlbumStore {
	return &AlbumStore{db: db}
}

// Get returns the album at index or a ResourceNotFoundError.
func (s *AlbumStore) Get(ctx context.Context, index int) (*models.Album, error) {
	var a models.Album
	err := s.db.QueryRowContext(ctx, queryGetAlbum, index).Scan(
		&a.Index,
		&a.Title,
		&a.Artist,
		&a.CoverPath,
		&a.TrackPath,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, srvErrors.NewAlbumNotFoundError(index)
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *AlbumStore) List(ctx context.Context, opts ...ListOption) ([]models.Album, error) {
	builder := sq.Select(
		"idx",
		"title",
		"artist",
		"cover_path",
		"track_path",
		"created_at",
		"updated_at",
	).From("albums")

	for _, opt := range opts {
		builder = opt(builder)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var albums []models.Album
	for rows.Next() {
		var a models.Album
		if err := rows.Scan(
			&a.Index,
			&a.Title,
			&a.Artist,
			&a.CoverPath,
			&a.TrackPath,
			&a.CreatedAt,
			&a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		albums = append(albums, a)
	}

	return albums, rows.Err()
}

func (s *AlbumStore) Count(ctx context.Context, opts ...ListOption) (int, error) {
	builder := sq.Select("COUNT(*)").From("albums")

	for _, opt := range opts {
		builder = opt(builder)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&count)
	return count, err
}

// Indexes returns every album index in ascending order.
func (s *AlbumStore) Indexes(ctx context.Context) ([]int, error) {
	rows, err := s.db.QueryContext(ctx, queryAlbumIndexes)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var idx []int
	for rows.Next() {
		var i int
		if err := rows.Scan(&i); err != nil {
			return nil, err
		}
		idx = append(idx, i)
	}
	return idx, rows.Err()
}

// Save stores or updates the album.
func (s *AlbumStore) Save(ctx context.Context, a models.Album) error {
	_, err := s.db.ExecContext(ctx, queryUpsertAlbum, a.Index, a.Title, a.Artist, a.CoverPath, a.TrackPath)
	return err
}

// SaveAll upserts albums in a single transaction.
func (s *AlbumStore) SaveAll(ctx context.Context, albums []models.Album) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, a := range albums {
		if _, err := tx.ExecContext(ctx, queryUpsertAlbum, a.Index, a.Title, a.Artist, a.CoverPath, a.TrackPath); err != nil {
			return fmt.Errorf("failed to save album %d: %w", a.Index, err)
		}
	}
	return tx.Commit()
}

func (s *AlbumStore) Delete(ctx context.Context, index int) error {
	res, err := s.db.ExecContext(ctx, queryDeleteAlbum, index)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return srvErrors.NewAlbumNotFoundError(index)
	}
	return nil
}

type ListOption func(sq.SelectBuilder) sq.SelectBuilder

func ByArtists(artists ...string) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		if len(artists) == 0 {
			return b
		}
		return b.Where(sq.Eq{"artist": artists})
	}
}

func ByTitleLike(pattern string) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		if pattern == "" {
			return b
		}
		return b.Where(sq.ILike{"title": "%" + pattern + "%"})
	}
}

func WithLimit(limit uint64) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Limit(limit)
	}
}

func WithOffset(offset uint64) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Offset(offset)
	}
}

func WithDefaultSort() ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.OrderBy("idx")
	}
}
