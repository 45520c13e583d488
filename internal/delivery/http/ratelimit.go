package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/productlens/backend/internal/domain"
	"golang.org/x/time/rate"
)

// clientEntry tracks one client's token bucket and when it was last used
type clientEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ClientLimiter enforces a per-client-IP request rate. Entries for idle
// clients are swept periodically so the registry does not grow without
// bound.
type ClientLimiter struct {
	clients map[string]*clientEntry
	mutex   sync.Mutex
	limit   rate.Limit
	burst   int
}

// NewClientLimiter creates a limiter allowing perMinute requests per
// client IP, with a small burst allowance for scanner UIs that fire a
// few lookups in quick succession.
func NewClientLimiter(perMinute int) *ClientLimiter {
	if perMinute <= 0 {
		perMinute = 60
	}

	l := &ClientLimiter{
		clients: make(map[string]*clientEntry),
		limit:   rate.Limit(float64(perMinute) / 60.0),
		burst:   5,
	}

	// Sweep idle client entries every 10 minutes
	go l.cleanupIdle()

	return l
}

// Allow reports whether the client may make a request now
func (l *ClientLimiter) Allow(clientIP string) bool {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	entry, exists := l.clients[clientIP]
	if !exists {
		entry = &clientEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[clientIP] = entry
	}
	entry.lastSeen = time.Now()

	return entry.limiter.Allow()
}

// Middleware rejects over-limit requests with 429 before they reach
// the lookup pipeline
func (l *ClientLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success":  false,
				"category": CategoryRateLimited,
				"error":    domain.ErrRateLimited.Error(),
			})
			return
		}
		c.Next()
	}
}

// cleanupIdle removes entries for clients not seen recently
func (l *ClientLimiter) cleanupIdle() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		l.mutex.Lock()
		cutoff := time.Now().Add(-15 * time.Minute)
		for ip, entry := range l.clients {
			if entry.lastSeen.Before(cutoff) {
				delete(l.clients, ip)
			}
		}
		l.mutex.Unlock()
	}
}

// Size returns the current number of tracked clients (for debugging/monitoring)
func (l *ClientLimiter) Size() int {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return len(l.clients)
}
