package store

import (
	"context"
	"database/sql"

	"github.com/tupyy/parcm/internal/store/migrations"
)

// Store provides access to all storage repositories.
type Store struct {
	db     *sql.DB
	albums *AlbumStore
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:     db,
		albums: NewAlbumStore(newLoggingInterceptor(db)),
	}
}

func (s *Store) Migrate(ctx context.Context) error {
	return migrations.Run(ctx, s.db)
}

func (s *Store) Album() *AlbumStore {
	return s.albums
}

func (s *Store) Close() error {
	return s.db.Close()
}
