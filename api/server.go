package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/matt-g-everett/ledtween/stream"
	"github.com/matt-g-everett/ledtween/tween"
)

// Player is the part of the streamer the API drives.
type Player interface {
	Play(overrides *stream.PlayOverrides) error
	Stop()
	Status() stream.Status
}

// Response wraps every API reply.
type Response struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data,omitempty"`
	Error  string      `json:"error,omitempty"`
}

type Api struct {
	player Player
	engine *gin.Engine
}

// NewApi creates the HTTP API. When staticDir is set, unmatched paths are
// served from it.
func NewApi(player Player, staticDir string) *Api {
	a := new(Api)
	a.player = player
	a.engine = gin.New()
	a.engine.Use(gin.Recovery())

	api := a.engine.Group("/api")
	{
		api.POST("/play", a.handlePlay)
		api.POST("/stop", a.handleStop)
		api.GET("/status", a.handleStatus)
		api.GET("/easings", a.handleEasings)
	}

	if staticDir != "" {
		a.engine.NoRoute(gin.WrapH(http.FileServer(http.Dir(staticDir))))
	}
	return a
}

// Handler exposes the routes, mainly for tests.
func (a *Api) Handler() http.Handler {
	return a.engine
}

// Serve listens on addr until the server fails.
func (a *Api) Serve(addr string) error {
	log.Printf("Listening on %s...", addr)
	return a.engine.Run(addr)
}

func (a *Api) handlePlay(c *gin.Context) {
	var overrides *stream.PlayOverrides
	if c.Request.ContentLength > 0 {
		overrides = new(stream.PlayOverrides)
		if err := c.ShouldBindJSON(overrides); err != nil {
			c.JSON(http.StatusBadRequest, Response{Status: "error", Error: "invalid play request: " + err.Error()})
			return
		}
	}

	if err := a.player.Play(overrides); err != nil {
		c.JSON(http.StatusUnprocessableEntity, Response{Status: "error", Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, Response{Status: "success", Data: a.player.Status()})
}

func (a *Api) handleStop(c *gin.Context) {
	a.player.Stop()
	c.JSON(http.StatusOK, Response{Status: "success", Data: a.player.Status()})
}

func (a *Api) handleStatus(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Status: "success", Data: a.player.Status()})
}

func (a *Api) handleEasings(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Status: "success", Data: tween.Easings()})
}
