package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"clinicore/config"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// The limiter counts per-IP requests in Redis so that multiple server
// instances share one budget. When Redis is unreachable it falls back to an
// in-process limiter rather than letting traffic through unmetered.

type fallbackLimiterStore struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
}

var fallbackStore = &fallbackLimiterStore{
	limiters: make(map[string]*rate.Limiter),
}

func (s *fallbackLimiterStore) getLimiter(ip string, perMin int) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMin)), perMin)
		s.limiters[ip] = limiter
	}
	return limiter
}

// RateLimitMiddleware limits requests per IP address using a fixed one-minute
// window in Redis.
func RateLimitMiddleware(client *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := zap.L()
		ip := getClientIP(c)
		perMin := config.AppConfig.MaxRequestsPerMin
		if perMin <= 0 {
			perMin = 100
		}

		allowed, err := allowRedis(c, client, ip, perMin)
		if err != nil {
			logger.Warn("Redis rate limiter unavailable, using in-process fallback", zap.Error(err))
			allowed = fallbackStore.getLimiter(ip, perMin).Allow()
		}
		if !allowed {
			logger.Warn("Rate limit exceeded", zap.String("ip", ip))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded. Try again later."})
			return
		}
		c.Next()
	}
}

func allowRedis(c *gin.Context, client *redis.Client, ip string, perMin int) (bool, error) {
	if client == nil {
		return false, fmt.Errorf("no redis client configured")
	}
	key := fmt.Sprintf("ratelimit:%s:%d", ip, time.Now().Unix()/60)

	count, err := client.Incr(c.Request.Context(), key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		client.Expire(c.Request.Context(), key, time.Minute)
	}
	return count <= int64(perMin), nil
}
