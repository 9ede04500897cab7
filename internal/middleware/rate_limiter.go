package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

// RateLimiter throttles by client IP: porMinuto requests per minute. Counters
// live in redis so every instance shares them; if the store cannot be built
// it falls back to in-process counting.
func RateLimiter(rdb *redis.Client, porMinuto int, prefix string) gin.HandlerFunc {
	rate := limiter.Rate{Period: time.Minute, Limit: int64(porMinuto)}

	var store limiter.Store
	store, err := sredis.NewStoreWithOptions(rdb, limiter.StoreOptions{Prefix: prefix})
	if err != nil {
		log.Warn().Err(err).Msg("limiter: redis store no disponible, usando memoria")
		store = memorystore.NewStore()
	}
	return mgin.NewMiddleware(limiter.New(store, rate))
}
