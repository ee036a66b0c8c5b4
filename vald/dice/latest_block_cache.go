package dice

import (
	"sync"
)

//go:generate moq -out ./mock/latest_block_cache.go -pkg mock . LatestBlockCache

// LatestBlockCache is a cache for the latest block number seen on the chain
type LatestBlockCache interface {
	// Get returns the latest block number, or false if no block has been seen yet
	Get() (uint64, bool)
	// Set sets the latest block number if the given block number is greater than the current one, and reports whether it did
	Set(blockNumber uint64) bool
}

type latestBlockCache struct {
	blockNumber uint64
	seen        bool
	lock        sync.RWMutex
}

// NewLatestBlockCache returns an empty LatestBlockCache
func NewLatestBlockCache() LatestBlockCache {
	return &latestBlockCache{
		lock: sync.RWMutex{},
	}
}

// Get returns the latest block number, or false if no block has been seen yet
func (c *latestBlockCache) Get() (uint64, bool) {
	c.lock.RLock()
	defer c.lock.RUnlock()

	return c.blockNumber, c.seen
}

// Set sets the latest block number if the given block number is greater than the current one, and reports whether it did
func (c *latestBlockCache) Set(blockNumber uint64) bool {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.seen && blockNumber <= c.blockNumber {
		return false
	}

	c.blockNumber = blockNumber
	c.seen = true
	return true
}
