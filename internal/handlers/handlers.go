package handlers

import (
	v1 "github.com/tupyy/parcm/api/v1"
	"github.com/tupyy/parcm/internal/services"
)

type Handler struct {
	player   *services.Player
	albumSrv *services.AlbumService
}

var _ v1.ServerInterface = (*Handler)(nil)

func New(player *services.Player, albumSrv *services.AlbumService) *Handler {
	return &Handler{
		player:   player,
		albumSrv: albumSrv,
	}
}
