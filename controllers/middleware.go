package controllers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/HoangPhanDev98/jobhunt-backend/kv"
	"github.com/gin-gonic/gin"
)

// RateLimit bounds attempts per client IP within a fixed window. It is
// attached to login only, to slow down credential stuffing.
func RateLimit(store kv.KeyValueStore, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s:%s", c.FullPath(), c.ClientIP())

		n, err := store.Incr(c.Request.Context(), key, window)
		if err != nil {
			// A broken limiter store should not take logins down with it.
			slog.Error("rate limiter unavailable", "error", err)
			c.Next()
			return
		}
		if n > int64(limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "Too many attempts, please try again later"})
			return
		}
		c.Next()
	}
}
