package game

import (
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/LithosProtocol_Go/internal/domain"
)

// CacheSchemaVersion is the current version of the cache schema
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

type cachedPlayerEntry struct {
	Version string
	Player  domain.Player
}

// playerCache is an in-memory LRU of committed player records with
// time-based expiration. Entries are invalidated after every commit that
// touches the player. Every invalidation bumps gen, and a fill read before
// the bump is dropped so a read racing a commit never caches the old row.
type playerCache struct {
	mu  sync.Mutex
	gen uint64
	lru *expirable.LRU[common.Address, *cachedPlayerEntry]
}

func newPlayerCache() *playerCache {
	return &playerCache{
		lru: expirable.NewLRU[common.Address, *cachedPlayerEntry](PlayerCacheSize, nil, PlayerCacheTTL),
	}
}

// Get returns a copy of the cached player
func (c *playerCache) Get(addr common.Address) (*domain.Player, bool) {
	entry, found := c.lru.Get(addr)
	if !found {
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(addr)
		return nil, false
	}
	p := entry.Player
	return &p, true
}

// Generation returns the token a later Set must present. Take it before
// reading the player from the store.
func (c *playerCache) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen
}

// Set stores a copy of p unless an invalidation happened after gen was taken
func (c *playerCache) Set(p *domain.Player, gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return false
	}
	c.lru.Add(p.Address, &cachedPlayerEntry{Version: CacheSchemaVersion, Player: *p})
	return true
}

// Invalidate removes the given players
func (c *playerCache) Invalidate(addrs ...common.Address) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	for _, a := range addrs {
		c.lru.Remove(a)
	}
}
