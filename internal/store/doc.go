// Package store implements the album catalog on top of DuckDB.
//
// # Architecture Overview
//
//	┌──────────────────────────────────────────┐
//	│              Store (facade)              │
//	├──────────────────────────────────────────┤
//	│               AlbumStore                 │
//	│                   ▼                      │
//	│   loggingInterceptor (QueryInterceptor)  │
//	│                   ▼                      │
//	│                *sql.DB                   │
//	└──────────────────────────────────────────┘
//
// Tables created by migrations (internal/store/migrations/sql/):
//
//	┌────────────────────┬──────────────────────────────────────────┐
//	│  Table             │  Purpose                                 │
//	├────────────────────┼──────────────────────────────────────────┤
//	│  albums            │  One row per album, keyed by its index   │
//	│  schema_migrations │  Migration version tracking              │
//	└────────────────────┴──────────────────────────────────────────┘
//
// Schema:
//
//	albums (
//	    idx INTEGER PRIMARY KEY,
//	    title VARCHAR NOT NULL,
//	    artist VARCHAR NOT NULL DEFAULT '',
//	    cover_path VARCHAR NOT NULL DEFAULT '',
//	    track_path VARCHAR NOT NULL DEFAULT '',
//	    created_at TIMESTAMP NOT NULL DEFAULT now(),
//	    updated_at TIMESTAMP NOT NULL DEFAULT now()
//	)
//
// # AlbumStore
//
//   - Get(ctx, index) → *models.Album, ResourceNotFoundError when missing
//   - List(ctx, opts...) → []models.Album, built with squirrel
//   - Count(ctx, opts...) → int
//   - Indexes(ctx) → []int in ascending order
//   - Save(ctx, album) / SaveAll(ctx, albums) → upsert on idx
//   - Delete(ctx, index)
//   - ImportXLSX(ctx, path) → reads the first sheet of a workbook
//
// List options compose on the select builder:
//
//	s.Album().List(ctx,
//	    store.ByArtists("Miles Davis"),
//	    store.WithDefaultSort(),
//	    store.WithLimit(20),
//	)
//
// # Catalog Workbook
//
// The first row names the columns; order does not matter and case is ignored.
//
//	┌───────┬──────────────┬─────────────┬──────────────┬──────────────┐
//	│ index │ title        │ artist      │ cover        │ track        │
//	├───────┼──────────────┼─────────────┼──────────────┼──────────────┤
//	│ 0     │ Kind of Blue │ Miles Davis │ covers/0.png │ tracks/0.wav │
//	└───────┴──────────────┴─────────────┴──────────────┴──────────────┘
//
// artist is optional. Relative paths are resolved against the workbook
// directory. Any bad row aborts the import and nothing is written.
package store
