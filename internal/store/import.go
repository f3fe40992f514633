package store

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/tupyy/parcm/internal/models"
	srvErrors "github.com/tupyy/parcm/pkg/errors"
)

var catalogColumns = []string{"index", "title", "artist", "cover", "track"}

// ImportXLSX reads albums from the first sheet of an xlsx workbook and upserts them.
// The first row is a header naming the columns index, title, artist, cover and track.
// Relative cover and track paths are resolved against the workbook directory.
func (s *AlbumStore) ImportXLSX(ctx context.Context, path string) (int, error) {
	albums, err := ReadXLSX(path)
	if err != nil {
		return 0, err
	}
	if err := s.SaveAll(ctx, albums); err != nil {
		return 0, err
	}
	zap.S().Named("store").Infow("catalog imported", "path", path, "albums", len(albums))
	return len(albums), nil
}

func ReadXLSX(path string) ([]models.Album, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, srvErrors.NewInvalidCatalogError(1, "missing header")
	}

	cols := make(map[string]int, len(catalogColumns))
	for i, h := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, c := range catalogColumns {
		if _, ok := cols[c]; !ok && c != "artist" {
			return nil, srvErrors.NewInvalidCatalogError(1, fmt.Sprintf("missing column %q", c))
		}
	}

	base := filepath.Dir(path)
	cell := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(base, p)
	}

	albums := make([]models.Album, 0, len(rows)-1)
	for n, row := range rows[1:] {
		line := n + 2
		if len(strings.Join(row, "")) == 0 {
			continue
		}

		idx, err := strconv.Atoi(cell(row, "index"))
		if err != nil || idx < 0 {
			return nil, srvErrors.NewInvalidCatalogError(line, "index must be a non-negative integer")
		}
		a := models.Album{
			Index:     idx,
			Title:     cell(row, "title"),
			Artist:    cell(row, "artist"),
			CoverPath: resolve(cell(row, "cover")),
			TrackPath: resolve(cell(row, "track")),
		}
		if a.Title == "" {
			return nil, srvErrors.NewInvalidCatalogError(line, "title is empty")
		}
		albums = append(albums, a)
	}

	return albums, nil
}
