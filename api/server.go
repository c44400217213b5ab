package api

import (
	"net/http"

	_ "net/http/pprof"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server health check server running next to the update loop
type Server struct {
	engine  *gin.Engine
	address string
}

// NewServer create health check server listening on address
func NewServer(address string) *Server {
	gin.SetMode(gin.ReleaseMode)
	server := &Server{
		engine:  gin.New(),
		address: address,
	}

	server.engine.Use(server.logger(), server.recovery())

	pprof.Register(server.engine, "/debug/pprof")

	server.registerRoute()

	zap.L().Debug("register route success")

	return server
}

func (s Server) Run() error {
	zap.L().Info("listen address: " + s.address)
	return s.engine.Run(s.address)
}

func (s Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.engine.ServeHTTP(w, r)
}
