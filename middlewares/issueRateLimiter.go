package middlewares

import (
	"context"
	"net/http"
	"time"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const issueLimitWindow = 24 * time.Hour

// WindowCounter counts events per key inside an expiring window.
type WindowCounter interface {
	// Incr increments key and returns the new count, starting the window on
	// the first increment.
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
	// TTL is the time left in the window of key.
	TTL(ctx context.Context, key string) (time.Duration, error)
}

// RedisCounter is a WindowCounter on top of INCR + EXPIRE.
type RedisCounter struct {
	client *redis.Client
}

func NewRedisCounter(client *redis.Client) *RedisCounter {
	return &RedisCounter{client: client}
}

func (r *RedisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	// Set TTL only for the first increment (when count = 1)
	if count == 1 {
		if err := r.client.Expire(ctx, key, window).Err(); err != nil {
			return 0, err
		}
	}
	return count, nil
}

func (r *RedisCounter) TTL(ctx context.Context, key string) (time.Duration, error) {
	return r.client.TTL(ctx, key).Result()
}

// IssueRateLimiter caps how many issues one caller may create per day. It must
// run after AuthMiddleware.
func IssueRateLimiter(counter WindowCounter, prefix string, limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(userIDKey)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			return
		}

		ctx := c.Request.Context()
		// Create individual key for each user
		userKey := prefix + ":" + userID

		count, err := counter.Incr(ctx, userKey, issueLimitWindow)
		if err != nil {
			log.WithError(err).WithField("key", userKey).Error("Rate limiter increment failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		if count > int64(limit) {
			retryAfter, _ := counter.TTL(ctx, userKey)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"retry_after": retryAfter.Seconds(),
			})
			return
		}

		c.Next()
	}
}
