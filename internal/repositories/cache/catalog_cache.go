package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/sopas_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/sopas_backend/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const keyPrefix = "sopas:catalog:tipo:"

// CatalogCache is a read-through redis cache in front of the catalog repository.
// Price updates evict the entry so the next lookup reads the new price.
type CatalogCache struct {
	portsrepo.CatalogRepositoryFacade
	rdb *redis.Client
	ttl time.Duration
}

func NewCatalogCache(next portsrepo.CatalogRepositoryFacade, rdb *redis.Client, ttl time.Duration) *CatalogCache {
	return &CatalogCache{
		CatalogRepositoryFacade: next,
		rdb:                     rdb,
		ttl:                     ttl,
	}
}

var (
	_ portsrepo.CatalogRepositoryFacade = (*CatalogCache)(nil)
	_ portsrepo.HealthChecker           = (*CatalogCache)(nil)
)

func cacheKey(codigo string) string {
	return keyPrefix + codigo
}

// FindTipoSopaByCodigo serves from redis when possible. Redis failures degrade to the
// underlying repository.
func (c *CatalogCache) FindTipoSopaByCodigo(ctx context.Context, codigo string) (*domain.TipoSopa, error) {
	data, err := c.rdb.Get(ctx, cacheKey(codigo)).Bytes()
	switch {
	case err == nil:
		var tipo domain.TipoSopa
		if jerr := json.Unmarshal(data, &tipo); jerr == nil {
			return &tipo, nil
		}
		slog.WarnContext(ctx, "Discarding corrupt catalog cache entry", slog.String("codigo", codigo))
	case !errors.Is(err, redis.Nil):
		slog.WarnContext(ctx, "Catalog cache read failed", slog.String("codigo", codigo), slog.String("error", err.Error()))
	}

	tipo, err := c.CatalogRepositoryFacade.FindTipoSopaByCodigo(ctx, codigo)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(tipo); err == nil {
		if err := c.rdb.Set(ctx, cacheKey(codigo), data, c.ttl).Err(); err != nil {
			slog.WarnContext(ctx, "Catalog cache write failed", slog.String("codigo", codigo), slog.String("error", err.Error()))
		}
	}
	return tipo, nil
}

func (c *CatalogCache) UpdatePrecio(ctx context.Context, codigo string, precio decimal.Decimal, updatedAt time.Time) (*domain.TipoSopa, error) {
	tipo, err := c.CatalogRepositoryFacade.UpdatePrecio(ctx, codigo, precio, updatedAt)
	if err != nil {
		return nil, err
	}
	if err := c.rdb.Del(ctx, cacheKey(codigo)).Err(); err != nil {
		slog.WarnContext(ctx, "Catalog cache eviction failed", slog.String("codigo", codigo), slog.String("error", err.Error()))
	}
	return tipo, nil
}

// Ping reports whether redis is reachable.
func (c *CatalogCache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}
