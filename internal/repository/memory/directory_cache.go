package memory

import (
	"time"

	"github.com/SudeepMalipeddi/Service-Sphere/internal/dto"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// DirectoryCache keeps assembled professional profiles around so the public
// directory endpoints do not hit the database on every read. Entries are
// invalidated whenever a review or verification change touches the profile.
type DirectoryCache struct {
	cache *cache.Cache
}

func NewDirectoryCache() *DirectoryCache {
	// Create a cache with a default expiration time of 1 hour, and which
	// purges expired items every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &DirectoryCache{
		cache: c,
	}
}

func (r *DirectoryCache) Save(profile *dto.ProfessionalProfileResponse) {
	r.cache.Set(profile.Id.String(), profile, cache.DefaultExpiration)
}

func (r *DirectoryCache) Get(professionalId uuid.UUID) (*dto.ProfessionalProfileResponse, bool) {
	if x, found := r.cache.Get(professionalId.String()); found {
		return x.(*dto.ProfessionalProfileResponse), true
	}
	return nil, false
}

func (r *DirectoryCache) Invalidate(professionalId uuid.UUID) {
	r.cache.Delete(professionalId.String())
}
