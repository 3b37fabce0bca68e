package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/prefeitura-rio/app-cadastro/internal/models"
	"github.com/prefeitura-rio/app-cadastro/internal/observability"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// PessoaCache is a read-through Redis cache for get-by-id lookups. Cache
// failures degrade to the database and never fail a request.
type PessoaCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewPessoaCache creates a new pessoa cache instance
func NewPessoaCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *PessoaCache {
	return &PessoaCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func cacheKey(id int64) string {
	return fmt.Sprintf("pessoa:%d", id)
}

// Get returns the cached record for id, if any
func (c *PessoaCache) Get(ctx context.Context, id int64) (*models.Pessoa, bool) {
	data, err := c.client.Get(ctx, cacheKey(id)).Result()
	if err != nil {
		observability.CacheHits.WithLabelValues("pessoa_miss").Inc()
		return nil, false
	}

	var pessoa models.Pessoa
	if err := json.Unmarshal([]byte(data), &pessoa); err != nil {
		c.logger.Warn("failed to unmarshal cached pessoa", zap.Int64("id", id), zap.Error(err))
		return nil, false
	}

	observability.CacheHits.WithLabelValues("pessoa_hit").Inc()
	return &pessoa, true
}

// Set stores a record under its id
func (c *PessoaCache) Set(ctx context.Context, pessoa *models.Pessoa) {
	data, err := json.Marshal(pessoa)
	if err != nil {
		c.logger.Warn("failed to marshal pessoa for cache", zap.Int64("id", pessoa.ID), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, cacheKey(pessoa.ID), data, c.ttl).Err(); err != nil {
		c.logger.Warn("failed to cache pessoa", zap.Int64("id", pessoa.ID), zap.Error(err))
	}
}

// Invalidate drops the cached record for id. Called on every write.
func (c *PessoaCache) Invalidate(ctx context.Context, id int64) {
	if err := c.client.Del(ctx, cacheKey(id)).Err(); err != nil {
		c.logger.Warn("failed to invalidate cached pessoa", zap.Int64("id", id), zap.Error(err))
	}
}
