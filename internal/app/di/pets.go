package di

import (
	"time"

	petadapters "pets_backend/internal/feature/pets/adapters"
	"pets_backend/internal/feature/pets/usecase"
	"pets_backend/internal/platform/cache"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// NewPetRepository creates a PetRepository implementation.
// If Redis is available, listing pages are served through the caching decorator.
// Otherwise, the plain PostgreSQL repository is used.
func NewPetRepository(rdb *redis.Client, db *gorm.DB, ttl time.Duration) usecase.PetRepository {
	repo := petadapters.NewPetPostgres(db)
	if rdb != nil {
		return cache.NewCachingPetRepository(rdb, ttl, repo, "pets")
	}
	return repo
}
