package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis implementación de Store sobre Redis, para cuando se quiere que los
// snapshots sobrevivan al host (o se comparten entre arranques en contenedor).
type Redis struct {
	client *redis.Client
}

// NewRedis conecta y verifica el servidor con un PING.
func NewRedis(ctx context.Context, addr string, db int) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("kv: conectar a redis %s: %w", addr, err)
	}
	return &Redis{client: client}, nil
}

// Get devuelve el valor de la clave o ErrNotFound.
func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("kv: leer %s: %w", key, err)
	}
	return data, nil
}

// Set guarda el valor sin expiración (los snapshots viven hasta el siguiente).
func (r *Redis) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("kv: escribir %s: %w", key, err)
	}
	return nil
}

// Close libera la conexión.
func (r *Redis) Close() error {
	return r.client.Close()
}
