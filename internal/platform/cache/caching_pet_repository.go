// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"

	"pets_backend/internal/feature/pets/domain/entity"
	"pets_backend/internal/feature/pets/usecase"
	userentity "pets_backend/internal/feature/users/domain/entity"
)

// cachedOwner is the slice of the owner a cached listing needs for the
// display-name projection.
type cachedOwner struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// cachedPet carries the owner explicitly: the entity hides Owner from JSON,
// so round-tripping entity.Pet through the cache would lose it.
type cachedPet struct {
	Pet   entity.Pet  `json:"pet"`
	Owner cachedOwner `json:"owner"`
}

// cachedPage is the serialized form of one filtered listing page.
type cachedPage struct {
	Pets  []cachedPet `json:"pets"`
	Total int64       `json:"total"`
}

func toCachedPage(pets []entity.Pet, total int64) cachedPage {
	cached := make([]cachedPet, len(pets))
	for i, p := range pets {
		cached[i] = cachedPet{
			Pet:   p,
			Owner: cachedOwner{ID: p.Owner.ID, Name: p.Owner.Name},
		}
	}
	return cachedPage{Pets: cached, Total: total}
}

// entities restores the pets with their preloaded owners reattached.
func (p cachedPage) entities() []entity.Pet {
	pets := make([]entity.Pet, len(p.Pets))
	for i, cp := range p.Pets {
		pets[i] = cp.Pet
		pets[i].Owner = userentity.User{ID: cp.Owner.ID, Name: cp.Owner.Name}
	}
	return pets
}

// CachingPetRepository decorates a PetRepository with Redis caching of listing pages.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository. Writes invalidate the whole namespace,
// since any filter may match the written pet.
type CachingPetRepository struct {
	inner     usecase.PetRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingPetRepository decorates a PetRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "pets".
func NewCachingPetRepository(rdb *redis.Client, ttl time.Duration, inner usecase.PetRepository, namespace string) *CachingPetRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "pets"
	}
	return &CachingPetRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

var _ usecase.PetRepository = (*CachingPetRepository)(nil)

// Create persists a new pet and invalidates cached listing pages.
func (c *CachingPetRepository) Create(ctx context.Context, pet *entity.Pet) error {
	if err := c.inner.Create(ctx, pet); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// FindByID always hits the underlying repository; single-pet reads are cheap
// and ownership checks must see current data.
func (c *CachingPetRepository) FindByID(ctx context.Context, id uint) (*entity.Pet, error) {
	return c.inner.FindByID(ctx, id)
}

// List retrieves one filtered listing page, checking cache first then falling
// back to the database.
func (c *CachingPetRepository) List(ctx context.Context, f usecase.ListFilter) ([]entity.Pet, int64, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.List(ctx, f)
	}

	key := c.cacheKey(f)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var page cachedPage
		if err := json.Unmarshal(b, &page); err == nil {
			return page.entities(), page.Total, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	pets, total, err := c.inner.List(ctx, f)
	if err != nil {
		return nil, 0, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(toCachedPage(pets, total)); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return pets, total, nil
}

// Save persists pet changes and invalidates cached listing pages.
func (c *CachingPetRepository) Save(ctx context.Context, pet *entity.Pet) error {
	if err := c.inner.Save(ctx, pet); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// invalidate drops every cached listing page. Best effort: a stale page is
// bounded by the TTL, so cache failures never fail the write.
func (c *CachingPetRepository) invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	_ = c.deleteByPattern(ctx, c.namespace+":*")
}

// cacheKey generates a cache key for a specific filter + page combination.
// Filter values are query-escaped so two distinct filters can never alias to
// the same key.
func (c *CachingPetRepository) cacheKey(f usecase.ListFilter) string {
	return fmt.Sprintf("%s:%d:%d:%s:%s",
		c.namespace,
		f.Page,
		f.PageSize,
		url.QueryEscape(f.Name),
		url.QueryEscape(f.Type),
	)
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingPetRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}
