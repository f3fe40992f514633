package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/tupyy/parcm/api/v1"
	"github.com/tupyy/parcm/internal/services"
	srvErrors "github.com/tupyy/parcm/pkg/errors"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ListAlbums returns the catalog with filtering and pagination
// (GET /albums)
func (h *Handler) ListAlbums(c *gin.Context, params v1.ListAlbumsParams) {
	page := 1
	if params.Page != nil && *params.Page > 0 {
		page = *params.Page
	}
	pageSize := defaultPageSize
	if params.PageSize != nil && *params.PageSize > 0 {
		pageSize = min(*params.PageSize, maxPageSize)
	}

	svcParams := services.AlbumListParams{
		Limit:  uint64(pageSize),
		Offset: uint64((page - 1) * pageSize),
	}
	if params.Artist != nil {
		svcParams.Artists = *params.Artist
	}
	if params.Title != nil {
		svcParams.Title = *params.Title
	}

	result, err := h.albumSrv.List(c.Request.Context(), svcParams)
	if err != nil {
		zap.S().Named("album_handler").Errorw("failed to list albums", "error", err)
		c.JSON(http.StatusInternalServerError, v1.ErrorResponse{Error: "failed to list albums"})
		return
	}

	pageCount := (result.Total + pageSize - 1) / pageSize
	if pageCount == 0 {
		pageCount = 1
	}

	albums := make([]v1.Album, 0, len(result.Albums))
	for _, a := range result.Albums {
		albums = append(albums, v1.NewAlbumFromModel(a))
	}

	c.JSON(http.StatusOK, v1.AlbumListResponse{
		Albums:    albums,
		Page:      page,
		PageCount: pageCount,
		Total:     result.Total,
	})
}

// GetAlbum returns one album
// (GET /albums/{index})
func (h *Handler) GetAlbum(c *gin.Context, index int) {
	album, err := h.albumSrv.Get(c.Request.Context(), index)
	if err != nil {
		if srvErrors.IsResourceNotFoundError(err) {
			c.JSON(http.StatusNotFound, v1.ErrorResponse{Error: err.Error()})
			return
		}
		zap.S().Named("album_handler").Errorw("failed to get album", "index", index, "error", err)
		c.JSON(http.StatusInternalServerError, v1.ErrorResponse{Error: "failed to get album"})
		return
	}
	c.JSON(http.StatusOK, v1.NewAlbumFromModel(*album))
}
