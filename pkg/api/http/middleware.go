package http

import (
	"errors"
	"math"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDHeader carries the correlation id on every response
const RequestIDHeader = "X-Request-ID"

const (
	requestIDKey = "request_id"
	bookIDKey    = "book_id"
)

// requestContext lives for one tracked request and is dropped once the
// log line is written
type requestContext struct {
	id     string
	start  time.Time
	method string
	path   string
	status int
}

// RequestID returns the correlation id of the current request
func RequestID(c *gin.Context) string {
	if id := c.GetString(requestIDKey); id != "" {
		return id
	}
	return c.Writer.Header().Get(RequestIDHeader)
}

// requestID stamps a fresh X-Request-ID before anything else runs, so routes
// that are never tracked still answer with one
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header(RequestIDHeader, uuid.NewString())
		c.Next()
	}
}

// recovery turns a panic into an opaque 500 and logs it with the request id
func recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			if err, ok := r.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(r)
			}

			logger.Error("panic recovered",
				zap.String("request_id", RequestID(c)),
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Any("panic", r),
				zap.ByteString("stack", debug.Stack()))

			abortWithError(c, http.StatusInternalServerError, msgInternalError)
		}()

		c.Next()
	}
}

// track wraps a handler with correlation id, metrics and the request log
// line. Recording runs in a deferred call, so a panicking handler is still
// counted (as 500) before the panic continues up to recovery.
func (s *Server) track() gin.HandlerFunc {
	return func(c *gin.Context) {
		rc := &requestContext{
			id:     uuid.NewString(),
			method: c.Request.Method,
			path:   c.Request.URL.Path,
		}
		c.Set(requestIDKey, rc.id)
		c.Header(RequestIDHeader, rc.id)

		rc.start = time.Now()
		completed := false
		defer func() {
			rc.status = c.Writer.Status()
			if !completed {
				rc.status = http.StatusInternalServerError
			}
			s.finish(rc)
		}()

		c.Next()
		completed = true
	}
}

// finish records the outcome of a tracked request
func (s *Server) finish(rc *requestContext) {
	elapsed := time.Since(rc.start)

	s.metrics.RecordRequest(rc.method, rc.path, rc.status, elapsed)

	s.logger.Info("Request processed",
		zap.String("request_id", rc.id),
		zap.String("method", rc.method),
		zap.String("path", rc.path),
		zap.Int("status_code", rc.status),
		zap.Float64("response_time_ms", roundMillis(elapsed)))
}

func roundMillis(d time.Duration) float64 {
	return math.Round(d.Seconds()*1000*100) / 100
}

// bookIDParam rejects non-integer ids the same way an unknown route is
// rejected. It runs before track, so such requests are not counted.
func bookIDParam() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseBookID(c.Param("id"))
		if !ok {
			handleNoRoute(c)
			return
		}
		c.Set(bookIDKey, id)
		c.Next()
	}
}

// parseBookID accepts unsigned decimal digits only
func parseBookID(raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return id, true
}

// corsMiddleware allows browser clients from origin and lets them read the
// request id
func corsMiddleware(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Expose-Headers", RequestIDHeader)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
