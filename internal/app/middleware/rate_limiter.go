package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/NotMomex/my-store-crm/internal/domain/services"
	"github.com/NotMomex/my-store-crm/internal/error/code"
	"github.com/NotMomex/my-store-crm/internal/error/response"
	Logger "github.com/NotMomex/my-store-crm/pkg/logger"
)

// TokenBucket is a simple token bucket
type TokenBucket struct {
	rate       float64 // tokens added per second
	capacity   int
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

// NewTokenBucket creates a full bucket
func NewTokenBucket(rate float64, capacity int) *TokenBucket {
	return &TokenBucket{
		rate:       rate,
		capacity:   capacity,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// Allow takes one token if available
func (tb *TokenBucket) Allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill).Seconds()
	tb.lastRefill = now

	tb.tokens += elapsed * tb.rate
	if tb.tokens > float64(tb.capacity) {
		tb.tokens = float64(tb.capacity)
	}

	if tb.tokens >= 1 {
		tb.tokens--
		return true
	}
	return false
}

// RateLimiterConfig rate limiter configuration; buckets are kept per client IP
type RateLimiterConfig struct {
	Rate       float64       // requests per second
	Burst      int           // bucket capacity
	ExpiryTime time.Duration // idle buckets older than this are dropped
	Message    string
}

// DefaultRateLimiterConfig default rate limiter configuration
var DefaultRateLimiterConfig = RateLimiterConfig{
	Rate:       1,
	Burst:      5,
	ExpiryTime: 1 * time.Hour,
}

type bucketEntry struct {
	bucket   *TokenBucket
	lastSeen time.Time
}

// bucketSet holds the buckets of one limiter instance
type bucketSet struct {
	mu        sync.Mutex
	buckets   map[string]*bucketEntry
	cfg       RateLimiterConfig
	lastSweep time.Time
}

func (s *bucketSet) get(key string) *TokenBucket {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if s.cfg.ExpiryTime > 0 && now.Sub(s.lastSweep) > s.cfg.ExpiryTime {
		for k, e := range s.buckets {
			if now.Sub(e.lastSeen) > s.cfg.ExpiryTime {
				delete(s.buckets, k)
			}
		}
		s.lastSweep = now
	}

	e, ok := s.buckets[key]
	if !ok {
		e = &bucketEntry{bucket: NewTokenBucket(s.cfg.Rate, s.cfg.Burst)}
		s.buckets[key] = e
	}
	e.lastSeen = now
	return e.bucket
}

// RateLimiter creates a token bucket rate limiting middleware
func RateLimiter(config ...RateLimiterConfig) gin.HandlerFunc {
	var cfg RateLimiterConfig
	if len(config) > 0 {
		cfg = config[0]
	} else {
		cfg = DefaultRateLimiterConfig
	}

	if cfg.Rate <= 0 {
		cfg.Rate = DefaultRateLimiterConfig.Rate
	}
	if cfg.Burst <= 0 {
		cfg.Burst = DefaultRateLimiterConfig.Burst
	}
	if cfg.ExpiryTime == 0 {
		cfg.ExpiryTime = DefaultRateLimiterConfig.ExpiryTime
	}
	if cfg.Message == "" {
		cfg.Message = code.GetMessage(code.ErrTooManyRequests)
	}

	set := &bucketSet{buckets: make(map[string]*bucketEntry), cfg: cfg, lastSweep: time.Now()}

	return func(c *gin.Context) {
		if !set.get(c.ClientIP()).Allow() {
			response.FailWithMessage(c, code.ErrTooManyRequests, cfg.Message, nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// IPRateLimiter limits requests per client IP
func IPRateLimiter(rate float64, burst int) gin.HandlerFunc {
	return RateLimiter(RateLimiterConfig{
		Rate:  rate,
		Burst: burst,
	})
}

const loginLimitMessage = "Too many login attempts, please try again later"

// LoginRateLimiter allows perMinute login attempts per client IP. With a
// Redis service the window is shared across instances; otherwise an
// in-memory token bucket is used. Redis errors let the request through.
func LoginRateLimiter(redisService services.InterfaceRedisService, perMinute int) gin.HandlerFunc {
	if perMinute <= 0 {
		perMinute = 10
	}
	if redisService == nil {
		return RateLimiter(RateLimiterConfig{
			Rate:    float64(perMinute) / 60,
			Burst:   perMinute,
			Message: loginLimitMessage,
		})
	}

	return func(c *gin.Context) {
		allowed, err := redisService.Allow(c.Request.Context(), "login:"+c.ClientIP(), perMinute, time.Minute)
		if err != nil {
			Logger.Warning("login rate limiter: redis unavailable: %v", err)
			c.Next()
			return
		}
		if !allowed {
			response.FailWithMessage(c, code.ErrTooManyRequests, loginLimitMessage, nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
