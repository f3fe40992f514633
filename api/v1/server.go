package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /status)
	GetStatus(c *gin.Context)
	// (POST /player/next)
	PlayerNext(c *gin.Context)
	// (POST /player/prev)
	PlayerPrev(c *gin.Context)
	// (POST /player/play/{index})
	PlayerPlay(c *gin.Context, index int)
	// (GET /albums)
	ListAlbums(c *gin.Context, params ListAlbumsParams)
	// (GET /albums/{index})
	GetAlbum(c *gin.Context, index int)
}

// ServerInterfaceWrapper binds request parameters before calling the handler.
type ServerInterfaceWrapper struct {
	Handler      ServerInterface
	ErrorHandler func(*gin.Context, error, int)
}

func (w *ServerInterfaceWrapper) GetStatus(c *gin.Context) {
	w.Handler.GetStatus(c)
}

func (w *ServerInterfaceWrapper) PlayerNext(c *gin.Context) {
	w.Handler.PlayerNext(c)
}

func (w *ServerInterfaceWrapper) PlayerPrev(c *gin.Context) {
	w.Handler.PlayerPrev(c)
}

func (w *ServerInterfaceWrapper) PlayerPlay(c *gin.Context) {
	index, ok := w.bindIndex(c)
	if !ok {
		return
	}
	w.Handler.PlayerPlay(c, index)
}

func (w *ServerInterfaceWrapper) GetAlbum(c *gin.Context) {
	index, ok := w.bindIndex(c)
	if !ok {
		return
	}
	w.Handler.GetAlbum(c, index)
}

func (w *ServerInterfaceWrapper) ListAlbums(c *gin.Context) {
	var params ListAlbumsParams
	query := c.Request.URL.Query()

	if err := runtime.BindQueryParameter("form", true, false, "artist", query, &params.Artist); err != nil {
		w.ErrorHandler(c, fmt.Errorf("invalid format for parameter artist: %w", err), http.StatusBadRequest)
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "title", query, &params.Title); err != nil {
		w.ErrorHandler(c, fmt.Errorf("invalid format for parameter title: %w", err), http.StatusBadRequest)
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "page", query, &params.Page); err != nil {
		w.ErrorHandler(c, fmt.Errorf("invalid format for parameter page: %w", err), http.StatusBadRequest)
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "pageSize", query, &params.PageSize); err != nil {
		w.ErrorHandler(c, fmt.Errorf("invalid format for parameter pageSize: %w", err), http.StatusBadRequest)
		return
	}

	w.Handler.ListAlbums(c, params)
}

func (w *ServerInterfaceWrapper) bindIndex(c *gin.Context) (int, bool) {
	var index int
	err := runtime.BindStyledParameterWithOptions("simple", "index", c.Param("index"), &index, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		w.ErrorHandler(c, fmt.Errorf("invalid format for parameter index: %w", err), http.StatusBadRequest)
		return 0, false
	}
	return index, true
}

// RegisterHandlers adds each server route to the router.
func RegisterHandlers(router gin.IRouter, si ServerInterface) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
		ErrorHandler: func(c *gin.Context, err error, statusCode int) {
			c.JSON(statusCode, ErrorResponse{Error: err.Error()})
		},
	}

	router.GET("/status", wrapper.GetStatus)
	router.POST("/player/next", wrapper.PlayerNext)
	router.POST("/player/prev", wrapper.PlayerPrev)
	router.POST("/player/play/:index", wrapper.PlayerPlay)
	router.GET("/albums", wrapper.ListAlbums)
	router.GET("/albums/:index", wrapper.GetAlbum)
}
