package store

// Album queries
const (
	queryGetAlbum = `
		SELECT idx, title, artist, cover_path, track_path, created_at, updated_at
		FROM albums WHERE idx = ?`

	queryUpsertAlbum = `
		INSERT INTO albums (idx, title, artist, cover_path, track_path, updated_at)
		VALUES (?, ?, ?, ?, ?, now())
		ON CONFLICT (idx) DO UPDATE SET
			title = EXCLUDED.title,
			artist = EXCLUDED.artist,
			cover_path = EXCLUDED.cover_path,
			track_path = EXCLUDED.track_path,
			updated_at = now()`

	queryDeleteAlbum = `DELETE FROM albums WHERE idx = ?`

	queryAlbumIndexes = `SELECT idx FROM albums ORDER BY idx`
)
