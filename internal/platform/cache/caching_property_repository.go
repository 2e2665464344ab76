// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"estate_backend/internal/feature/property/domain/entity"
	"estate_backend/internal/feature/property/usecase"
)

// CachingPropertyRepository decorates a PropertyRepository with Redis caching.
// Reads are served cache-first with a database fallback; every mutation writes
// through and invalidates the namespace. All cache traffic is best effort and
// never fails the request.
type CachingPropertyRepository struct {
	inner     usecase.PropertyRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingPropertyRepository decorates a PropertyRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses
// "properties". A nil rdb disables caching entirely.
func NewCachingPropertyRepository(rdb *redis.Client, ttl time.Duration, inner usecase.PropertyRepository, namespace string) *CachingPropertyRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "properties"
	}
	return &CachingPropertyRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// FindAll retrieves all listings, checking cache first then falling back to
// the database.
func (c *CachingPropertyRepository) FindAll(ctx context.Context) ([]entity.Property, error) {
	if c.rdb == nil {
		return c.inner.FindAll(ctx)
	}

	key := c.listKey()

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Property
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return out, nil
}

// FindByID retrieves one listing, checking cache first then falling back to
// the database. Not-found results are not cached.
func (c *CachingPropertyRepository) FindByID(ctx context.Context, id uint) (*entity.Property, error) {
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}

	key := c.itemKey(id)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.Property
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return out, nil
}

// Create inserts a listing and invalidates the cached namespace.
func (c *CachingPropertyRepository) Create(ctx context.Context, p *entity.Property) error {
	if err := c.inner.Create(ctx, p); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// Update persists a listing and invalidates the cached namespace.
func (c *CachingPropertyRepository) Update(ctx context.Context, p *entity.Property) error {
	if err := c.inner.Update(ctx, p); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// Delete removes a listing and invalidates the cached namespace.
func (c *CachingPropertyRepository) Delete(ctx context.Context, id uint) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// invalidate drops every cache entry under the namespace, best effort.
func (c *CachingPropertyRepository) invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	_ = c.deleteByPattern(ctx, c.namespace+":*")
}

// listKey is the cache key of the full listing collection.
func (c *CachingPropertyRepository) listKey() string {
	return c.namespace + ":all"
}

// itemKey is the cache key of one listing.
func (c *CachingPropertyRepository) itemKey(id uint) string {
	return fmt.Sprintf("%s:id:%d", c.namespace, id)
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingPropertyRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, next, err := c.rdb.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}
