package middleware

import (
	"bytes"
	"sync"

	"github.com/gin-gonic/gin"
)

// headerWriter calls before once, right before the status line is written.
type headerWriter struct {
	gin.ResponseWriter
	once   sync.Once
	before func(gin.ResponseWriter)
}

func (w *headerWriter) fire() {
	w.once.Do(func() { w.before(w.ResponseWriter) })
}

func (w *headerWriter) WriteHeader(code int) {
	w.fire()
	w.ResponseWriter.WriteHeader(code)
}

func (w *headerWriter) WriteHeaderNow() {
	w.fire()
	w.ResponseWriter.WriteHeaderNow()
}

func (w *headerWriter) Write(b []byte) (int, error) {
	w.fire()
	return w.ResponseWriter.Write(b)
}

func (w *headerWriter) WriteString(s string) (int, error) {
	w.fire()
	return w.ResponseWriter.WriteString(s)
}

// captureWriter keeps up to limit bytes of the response body.
type captureWriter struct {
	gin.ResponseWriter
	body  bytes.Buffer
	limit int
}

func (w *captureWriter) keep(b []byte) {
	if room := w.limit - w.body.Len(); room > 0 {
		if len(b) > room {
			b = b[:room]
		}
		w.body.Write(b)
	}
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.keep(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.keep([]byte(s))
	return w.ResponseWriter.WriteString(s)
}
