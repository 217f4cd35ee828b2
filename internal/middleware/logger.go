package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/monoapi/logging/logger"
	"github.com/sirupsen/logrus"
)

// Logger writes one structured line per request.
func Logger(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path += "?" + raw
		}

		c.Next()

		status := c.Writer.Status()
		entry := l.WithFieldsContext(c.Request.Context(), logrus.Fields{
			logger.LoggerKey: "http",
			"method":         c.Request.Method,
			"path":           path,
			"route":          c.FullPath(),
			"status":         status,
			"duration":       formatMillis(time.Since(start)),
			"client_ip":      c.ClientIP(),
			"size":           c.Writer.Size(),
		})
		if len(c.Errors) > 0 {
			entry = entry.WithField("errors", c.Errors.String())
		}

		if status >= 500 {
			entry.Error("HTTP request")
			return
		}
		entry.Info("HTTP request")
	}
}
