package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (s Server) logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestURL := c.Request.URL.String()

		c.Next()

		duration := time.Since(start)
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("url", requestURL),
			zap.Int("status", c.Writer.Status()),
			zap.Int64("duration", duration.Milliseconds()),
		}

		fn := zap.L().Debug
		if c.Writer.Status() == http.StatusInternalServerError {
			fn = zap.L().Error
		}

		fn(fmt.Sprintf("%s %s (%d) in %s", c.Request.Method, requestURL, c.Writer.Status(), duration.String()), fields...)
	}
}

// recovery returns a middleware that recovers from any panics and writes a 500 if there was one.
func (s Server) recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				zap.L().Error("panic recovered",
					zap.Stack("stack"),
					zap.String("method", c.Request.Method),
					zap.String("url", c.Request.URL.String()))

				c.AbortWithStatus(http.StatusInternalServerError)
			}
		}()
		c.Next()
	}
}
