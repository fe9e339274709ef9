// internal/middleware/rate_limit.go
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/bsfdc/film-portal-backend/internal/utils"
)

// IPRateLimiter keeps one token bucket per client IP and evicts buckets
// that have been idle longer than idleTTL.
type IPRateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientBucket
	rate    rate.Limit
	burst   int
	idleTTL time.Duration
}

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewIPRateLimiter(r rate.Limit, burst int) *IPRateLimiter {
	rl := &IPRateLimiter{
		clients: make(map[string]*clientBucket),
		rate:    r,
		burst:   burst,
		idleTTL: 3 * time.Minute,
	}

	go rl.evictIdle()

	return rl
}

func (rl *IPRateLimiter) evictIdle() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		rl.mu.Lock()
		for ip, b := range rl.clients {
			if time.Since(b.lastSeen) > rl.idleTTL {
				delete(rl.clients, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// Allow reports whether the given client may proceed right now.
func (rl *IPRateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, ok := rl.clients[ip]
	if !ok {
		b = &clientBucket{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.clients[ip] = b
	}
	b.lastSeen = time.Now()

	return b.limiter.Allow()
}

func (rl *IPRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			utils.ErrorResponse(c, http.StatusTooManyRequests,
				"RATE_LIMITED", "Too many requests. Please try again later.", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

// Tiers tuned for the portal: browsing is generous, credential guessing
// and NOC submissions are not. An applicant has no legitimate reason to
// file more than a handful of applications in a minute.
var (
	generalLimiter   = NewIPRateLimiter(rate.Every(time.Second), 20)
	authLimiter      = NewIPRateLimiter(rate.Every(time.Minute), 5)
	uploadLimiter    = NewIPRateLimiter(rate.Every(time.Minute), 10)
	nocSubmitLimiter = NewIPRateLimiter(rate.Every(time.Minute), 3)
)

func GeneralRateLimit() gin.HandlerFunc {
	return generalLimiter.Middleware()
}

func AuthRateLimit() gin.HandlerFunc {
	return authLimiter.Middleware()
}

func UploadRateLimit() gin.HandlerFunc {
	return uploadLimiter.Middleware()
}

func NOCSubmitRateLimit() gin.HandlerFunc {
	return nocSubmitLimiter.Middleware()
}
