package cache_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"tripdesk/pkg/imagecache"
)

var Module = fx.Provide(
	provideCache)

// provideCache picks Redis when REDIS_URL is set, otherwise the in-process
// map. A bad Redis URL degrades to the in-process map instead of failing
// startup.
func provideCache() imagecache.Cache {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		return imagecache.NewMemoryCache()
	}

	cache, err := imagecache.NewRedisCache(redisURL)
	if err != nil {
		log.Printf("Invalid REDIS_URL, using in-process image cache: %v", err)
		return imagecache.NewMemoryCache()
	}

	log.Println("Using Redis image cache")
	return cache
}
