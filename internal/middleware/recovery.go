package middleware

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"runtime/debug"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/ncobase/monoapi/logging/logger"
	"github.com/ncobase/monoapi/net/resp"
	"github.com/sirupsen/logrus"
)

// Recovery turns a panic into a 500 INTERNAL_ERROR envelope. The panic is
// logged with its stack and reported to sentry when reportSentry is set.
func Recovery(l *logger.Logger, reportSentry bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if brokenPipe(rec) {
				l.Warnf(c.Request.Context(), "client went away on %s: %v", c.Request.URL.Path, rec)
				c.Abort()
				return
			}

			if reportSentry {
				hub := sentry.CurrentHub().Clone()
				hub.Scope().SetRequest(c.Request)
				hub.RecoverWithContext(c.Request.Context(), rec)
			}

			l.WithFieldsContext(c.Request.Context(), logrus.Fields{
				logger.StackKey: string(debug.Stack()),
				"method":        c.Request.Method,
				"path":          c.Request.URL.Path,
			}).Errorf("panic recovered: %v", rec)

			c.Abort()
			if !c.Writer.Written() {
				resp.Fail(c.Writer, resp.InternalServer("Internal server error"))
			}
		}()
		c.Next()
	}
}

// brokenPipe reports a write to a connection the client already closed.
func brokenPipe(rec any) bool {
	err, ok := rec.(error)
	if !ok {
		return false
	}
	var ne *net.OpError
	if !errors.As(err, &ne) {
		return false
	}
	var se *os.SyscallError
	if errors.As(ne, &se) {
		msg := strings.ToLower(se.Error())
		return strings.Contains(msg, "broken pipe") || strings.Contains(msg, "connection reset by peer")
	}
	return false
}

// NoRoute answers unknown paths with the error envelope.
func NoRoute(c *gin.Context) {
	resp.Fail(c.Writer, resp.NotFound(fmt.Sprintf("Path %s not found", c.Request.URL.Path)))
}

// NoMethod answers a known path with an unsupported method.
func NoMethod(c *gin.Context) {
	resp.Fail(c.Writer, resp.NotAllowed(http.StatusText(http.StatusMethodNotAllowed)))
}
