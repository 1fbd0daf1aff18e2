package httpapi

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/example/plantops/internal/ctxutil"
	"github.com/example/plantops/internal/logging"
	"github.com/example/plantops/internal/metrics"
)

const (
	// HeaderActor names the person acting on the request.
	HeaderActor = "X-Actor"

	// HeaderRequestID carries the correlation id.
	HeaderRequestID = "X-Request-ID"
)

// RequestContext copies the actor and request id into the request context
// so services and loggers see them.
func RequestContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if actor := strings.TrimSpace(c.GetHeader(HeaderActor)); actor != "" {
			ctx = ctxutil.WithActorID(ctx, actor)
		}
		ctx = ctxutil.WithRequestID(ctx, c.GetHeader(HeaderRequestID))
		c.Request = c.Request.WithContext(ctx)
		c.Header(HeaderRequestID, ctxutil.RequestIDFromContext(ctx))
		c.Next()
	}
}

// AccessLog logs every request and records its latency. The route label is
// the matched pattern so ids do not explode cardinality.
func AccessLog(logger logging.Logger, collectors *metrics.Collectors) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()

		if collectors != nil {
			collectors.ObserveRequest(c.Request.Method, route, status, elapsed)
		}

		ctx := c.Request.Context()
		args := []any{
			"method", c.Request.Method,
			"route", route,
			"status", status,
			"duration_ms", elapsed.Milliseconds(),
			"request_id", ctxutil.RequestIDFromContext(ctx),
		}
		if status >= 500 {
			logger.Error(ctx, "request failed", args...)
			return
		}
		logger.Debug(ctx, "request served", args...)
	}
}
