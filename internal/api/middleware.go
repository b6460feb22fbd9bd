package api

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// RequestID propagates the caller's X-Request-ID or assigns a new UUID.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// GetRequestID returns the id assigned by RequestID.
func GetRequestID(c *gin.Context) string {
	if v, ok := c.Get(requestIDKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return c.GetHeader(requestIDHeader)
}

// AccessLog writes one structured entry per request, at a level chosen by
// the response status class.
func AccessLog(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("request_id", GetRequestID(c)),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}
		switch {
		case status >= 500:
			logger.Error("HTTP request", fields...)
		case status >= 400:
			logger.Warn("HTTP request", fields...)
		default:
			logger.Info("HTTP request", fields...)
		}
	}
}

// Recovery turns a panic into a 500 with the standard failure body.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered",
					zap.String("request_id", GetRequestID(c)),
					zap.String("panic", fmt.Sprint(r)),
					zap.Stack("stack"),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, failure(errInternal))
			}
		}()
		c.Next()
	}
}

// RateLimit is a per-client token bucket keyed by client IP.
type RateLimit struct {
	logger   *zap.Logger
	limit    rate.Limit
	burst    int
	idleTTL  time.Duration
	mu       sync.Mutex
	clients  map[string]*clientLimiter
	lastScan time.Time
	now      func() time.Time
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimit creates a limiter allowing rps requests per second per client
// with the given burst.
func NewRateLimit(logger *zap.Logger, rps float64, burst int) *RateLimit {
	return &RateLimit{
		logger:  logger,
		limit:   rate.Limit(rps),
		burst:   burst,
		idleTTL: 10 * time.Minute,
		clients: make(map[string]*clientLimiter),
		now:     time.Now,
	}
}

// Middleware returns the gin handler.
func (m *RateLimit) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		client := c.ClientIP()
		if !m.allow(client) {
			m.logger.Debug("rate limited",
				zap.String("client_ip", client),
				zap.String("request_id", GetRequestID(c)),
			)
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, failure(errRateLimited))
			return
		}
		c.Next()
	}
}

func (m *RateLimit) allow(client string) bool {
	now := m.now()

	m.mu.Lock()
	if now.Sub(m.lastScan) > m.idleTTL {
		for k, cl := range m.clients {
			if now.Sub(cl.lastSeen) > m.idleTTL {
				delete(m.clients, k)
			}
		}
		m.lastScan = now
	}
	cl, ok := m.clients[client]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(m.limit, m.burst)}
		m.clients[client] = cl
	}
	cl.lastSeen = now
	m.mu.Unlock()

	return cl.limiter.AllowN(now, 1)
}

// size reports the number of tracked clients.
func (m *RateLimit) size() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.clients)
}
