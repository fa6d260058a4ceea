package logmodule

import (
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Ginrus logs every request handled by a route group with its own prefix
func Ginrus(prefix string) gin.HandlerFunc {
	logger := log.WithField("prefix", prefix)

	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if c.Request.URL.RawQuery != "" {
			path = path + "?" + c.Request.URL.RawQuery
		}

		c.Next()

		entry := logger.WithFields(log.Fields{
			"status":    c.Writer.Status(),
			"method":    c.Request.Method,
			"path":      path,
			"latency":   time.Since(start),
			"client_ip": c.ClientIP(),
		})

		switch {
		case len(c.Errors) > 0:
			entry.Error(c.Errors.String())
		case c.Writer.Status() >= 500:
			entry.Error()
		case c.Writer.Status() >= 400:
			entry.Warn()
		default:
			entry.Info()
		}
	}
}
