package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/tupyy/parcm/api/v1"
	srvErrors "github.com/tupyy/parcm/pkg/errors"
)

// GetStatus returns the player status with the load slot and pool counters
// (GET /status)
func (h *Handler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.status())
}

// PlayerNext requests the next album
// (POST /player/next)
func (h *Handler) PlayerNext(c *gin.Context) {
	requested, err := h.player.Next(c.Request.Context())
	if err != nil {
		h.navigationError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, v1.NavigationResponse{Requested: requested})
}

// PlayerPrev requests the previous album
// (POST /player/prev)
func (h *Handler) PlayerPrev(c *gin.Context) {
	requested, err := h.player.Prev(c.Request.Context())
	if err != nil {
		h.navigationError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, v1.NavigationResponse{Requested: requested})
}

// PlayerPlay requests a specific album
// (POST /player/play/{index})
func (h *Handler) PlayerPlay(c *gin.Context, index int) {
	if err := h.player.Play(c.Request.Context(), index); err != nil {
		h.navigationError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, v1.NavigationResponse{Requested: index})
}

func (h *Handler) status() *v1.PlayerStatus {
	var s v1.PlayerStatus
	s.FromModel(h.player.Status())
	return s.WithSlot(h.player.Slot()).WithPool(h.player.PoolStats())
}

func (h *Handler) navigationError(c *gin.Context, err error) {
	switch {
	case srvErrors.IsResourceNotFoundError(err):
		c.JSON(http.StatusNotFound, v1.ErrorResponse{Error: err.Error()})
	case srvErrors.IsEmptyCatalogError(err):
		c.JSON(http.StatusConflict, v1.ErrorResponse{Error: err.Error()})
	default:
		zap.S().Named("player_handler").Errorw("failed to request album", "error", err)
		c.JSON(http.StatusInternalServerError, v1.ErrorResponse{Error: "failed to request album"})
	}
}
