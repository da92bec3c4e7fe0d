// Package cache implementa el cache de respuestas GET sobre Redis con
// invalidación por etiqueta: cada entrada queda registrada bajo la etiqueta
// de su recurso y toda mutación del recurso borra el grupo completo. Es el
// disparador de invalidación explícito del lado servidor; sin Redis
// configurado todo degrada a no-op.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/serviagenda/agenda-api/pkg/config"
)

// NewClient crea el cliente Redis, o devuelve nil si no hay Redis
// configurado o no responde al ping; los consumidores degradan a no-op.
func NewClient(ctx context.Context, cfg config.RedisConfig) *redis.Client {
	if !cfg.Enabled() {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil
	}
	return rdb
}

// Store guarda respuestas serializadas agrupadas por etiqueta de recurso.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewStore construye el store. rdb nil => todas las operaciones son no-op.
func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

// Enabled reporta si hay un Redis vivo detrás.
func (s *Store) Enabled() bool { return s != nil && s.rdb != nil }

// Get devuelve el cuerpo cacheado de la clave, o false si no hay entrada.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool) {
	if !s.Enabled() {
		return nil, false
	}
	body, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return body, true
}

// Set guarda el cuerpo bajo key y registra la clave en el set de su
// etiqueta para poder invalidar el grupo. Errores de Redis se ignoran: el
// cache nunca rompe una petición.
func (s *Store) Set(ctx context.Context, tag, key string, body []byte) {
	if !s.Enabled() {
		return
	}
	pipe := s.rdb.TxPipeline()
	pipe.Set(ctx, key, body, s.ttl)
	pipe.SAdd(ctx, tagKey(tag), key)
	pipe.Expire(ctx, tagKey(tag), s.ttl*2)
	_, _ = pipe.Exec(ctx)
}

// Invalidate borra todas las entradas registradas bajo las etiquetas dadas.
func (s *Store) Invalidate(ctx context.Context, tags ...string) {
	if !s.Enabled() {
		return
	}
	for _, tag := range tags {
		keys, err := s.rdb.SMembers(ctx, tagKey(tag)).Result()
		if err != nil {
			continue
		}
		keys = append(keys, tagKey(tag))
		_ = s.rdb.Del(ctx, keys...).Err()
	}
}

func tagKey(tag string) string { return "cache:tag:" + tag }
