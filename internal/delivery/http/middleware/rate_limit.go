package middleware

import (
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"swiftauth/config"
	deliverycontext "swiftauth/internal/delivery/context"
	domainerrors "swiftauth/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// tokenBucketScript refills and takes one token atomically.
// It returns {allowed, remaining, retry_after_ms}.
var tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local now_ms = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local refill_tokens = tonumber(ARGV[3])
local interval_ms = tonumber(ARGV[4])
local ttl_ms = tonumber(ARGV[5])

local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
local tokens = tonumber(state[1])
local last_refill = tonumber(state[2])

if tokens == nil or last_refill == nil then
	tokens = capacity
	last_refill = now_ms
end

if interval_ms > 0 and refill_tokens > 0 then
	local elapsed = math.max(0, now_ms - last_refill)
	local intervals = math.floor(elapsed / interval_ms)
	if intervals > 0 then
		tokens = math.min(capacity, tokens + (intervals * refill_tokens))
		last_refill = last_refill + (intervals * interval_ms)
	end
end

local allowed = 0
local retry_after_ms = 0
if tokens > 0 then
	allowed = 1
	tokens = tokens - 1
else
	retry_after_ms = math.max(0, interval_ms - (now_ms - last_refill))
end

redis.call('HSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
redis.call('PEXPIRE', key, ttl_ms)

return { allowed, tokens, retry_after_ms }
`)

// RateLimiter is a Redis token bucket keyed by client IP and route.
// Redis failures let the request through.
type RateLimiter struct {
	cfg    config.RateLimitConfig
	client *redis.Client
	logger *slog.Logger
	now    func() time.Time
}

// NewRateLimiter returns a limiter; it passes every request through when rate limiting is
// disabled or Redis is not configured.
func NewRateLimiter(cfg *config.Config, client *redis.Client, logger *slog.Logger) *RateLimiter {
	if cfg.RateLimit.Enabled && client == nil {
		logger.Warn("Rate limiting enabled without Redis, requests will not be limited")
	}

	return &RateLimiter{
		cfg:    cfg.RateLimit,
		client: client,
		logger: logger,
		now:    time.Now,
	}
}

// Limit is the echo middleware.
func (l *RateLimiter) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !l.cfg.Enabled || l.client == nil {
			return next(c)
		}

		ctx := c.Request().Context()
		key := l.key(c)

		vals, err := tokenBucketScript.Run(ctx, l.client, []string{key},
			l.now().UnixMilli(),
			l.cfg.Capacity,
			l.cfg.RefillTokens,
			l.cfg.RefillInterval.Milliseconds(),
			l.cfg.TTL.Milliseconds(),
		).Int64Slice()
		if err != nil || len(vals) != 3 {
			deliverycontext.LoggerOr(ctx, l.logger).Warn("Rate limiter unavailable, allowing request",
				slog.String("key", key),
				slog.Any("error", err),
			)

			return next(c)
		}

		allowed, remaining, retryMs := vals[0] == 1, vals[1], vals[2]

		header := c.Response().Header()
		header.Set("X-RateLimit-Limit", strconv.Itoa(l.cfg.Capacity))
		header.Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if !allowed {
			retryAfter := max(int(math.Ceil(float64(retryMs)/1000.0)), 1)
			header.Set(echo.HeaderRetryAfter, strconv.Itoa(retryAfter))

			return domainerrors.ErrTooManyRequests.WithDetails("retry after " + strconv.Itoa(retryAfter) + "s")
		}

		return next(c)
	}
}

func (l *RateLimiter) key(c echo.Context) string {
	ip := c.RealIP()
	if ip == "" {
		ip = "unknown"
	}

	return strings.Join([]string{l.cfg.Prefix, "ip", ip, "route", c.Request().Method + " " + c.Path()}, ":")
}
