package cache

import (
	"encoding/json"
	"fmt"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

// Cache stores JSON-encoded per-user lists.
type Cache interface {
	Get(kind string, userID int, dest any) bool
	Set(kind string, userID int, value any)
	Invalidate(userID int, kinds ...string)
}

var _ Cache = (*CatalogCache)(nil)

type CatalogCache struct {
	mainCache *freecache.Cache
	ttlSec    int
}

// NewCatalogCache allocates sizeBytes up front; freecache enforces a 512KB minimum.
func NewCatalogCache(sizeBytes, ttlSec int) *CatalogCache {
	return &CatalogCache{
		mainCache: freecache.NewCache(sizeBytes),
		ttlSec:    ttlSec,
	}
}

func cacheKey(kind string, userID int) []byte {
	return []byte(fmt.Sprintf("catalog:%s:%d", kind, userID))
}

func (c *CatalogCache) Get(kind string, userID int, dest any) bool {
	valueBytes, err := c.mainCache.Get(cacheKey(kind, userID))
	if err != nil {
		return false
	}
	if err := json.Unmarshal(valueBytes, dest); err != nil {
		log.Warnf("catalog cache, unmarshal %s for user %d: %s", kind, userID, err)
		return false
	}
	return true
}

func (c *CatalogCache) Set(kind string, userID int, value any) {
	valueBytes, err := json.Marshal(value)
	if err != nil {
		log.Warnf("catalog cache, marshal %s for user %d: %s", kind, userID, err)
		return
	}
	if err := c.mainCache.Set(cacheKey(kind, userID), valueBytes, c.ttlSec); err != nil {
		log.Warnf("catalog cache, set %s for user %d: %s", kind, userID, err)
	}
}

func (c *CatalogCache) Invalidate(userID int, kinds ...string) {
	for _, kind := range kinds {
		c.mainCache.Del(cacheKey(kind, userID))
	}
}
