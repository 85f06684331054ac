// File: middleware/rate_limiter.go
package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"tutorhive/utils"
)

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	clients = make(map[string]*client)
	mu      sync.Mutex
)

// getClientIP prefers the first X-Forwarded-For hop so limits hold behind a
// proxy, falling back to the socket address.
func getClientIP(c *gin.Context) string {
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		return strings.TrimSpace(parts[0])
	}
	ip, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return ip
}

// RateLimitMiddleware enforces a per-IP token bucket. Stale entries are swept
// in the background so the map does not grow without bound.
func RateLimitMiddleware(r rate.Limit, burst int) gin.HandlerFunc {
	go cleanupClients()

	return func(c *gin.Context) {
		ip := getClientIP(c)

		mu.Lock()
		entry, found := clients[ip]
		if !found {
			entry = &client{limiter: rate.NewLimiter(r, burst)}
			clients[ip] = entry
		}
		entry.lastSeen = time.Now()
		mu.Unlock()

		if !entry.limiter.Allow() {
			utils.JSONError(c, http.StatusTooManyRequests, "Too many requests, slow down", "")
			c.Abort()
			return
		}
		c.Next()
	}
}

func cleanupClients() {
	for {
		time.Sleep(time.Minute)
		mu.Lock()
		for ip, entry := range clients {
			if time.Since(entry.lastSeen) > 3*time.Minute {
				delete(clients, ip)
			}
		}
		mu.Unlock()
	}
}
