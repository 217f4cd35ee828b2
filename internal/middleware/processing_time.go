package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// ProcessingTimeHeader carries the handler time in milliseconds, e.g. "12.34ms".
const ProcessingTimeHeader = "X-Processing-Time"

// ProcessingTime sets X-Processing-Time. The header is added when the response
// starts, so the time covers everything up to the first byte.
func ProcessingTime() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Writer = &headerWriter{
			ResponseWriter: c.Writer,
			before: func(w gin.ResponseWriter) {
				w.Header().Set(ProcessingTimeHeader, formatMillis(time.Since(start)))
			},
		}
		c.Next()
	}
}

func formatMillis(d time.Duration) string {
	return fmt.Sprintf("%.2fms", float64(d.Microseconds())/1000)
}
