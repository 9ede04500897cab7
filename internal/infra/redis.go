package infra

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedis abre y verifica la conexión a Redis, que aquí respalda tres cosas:
// sesiones de login, las colas de trabajos de reportes y el rate limiter.
// Un Redis caído al arranque es fatal, así que el ping lleva timeout propio
// en lugar de heredar uno vacío.
func NewRedis(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis: URL inválida: %w", err)
	}
	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis: sin respuesta en %s: %w", opts.Addr, err)
	}
	return rdb, nil
}
