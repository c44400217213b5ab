package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s Server) registerRoute() {
	s.engine.NoRoute(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusNotFound)
	})

	s.engine.GET("/", s.health)
	s.engine.GET("/healthz", s.health)
}

func (s Server) health(c *gin.Context) {
	c.String(http.StatusOK, "Bot is running")
}
