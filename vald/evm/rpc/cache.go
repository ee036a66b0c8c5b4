package rpc

import (
	"context"
	"math/big"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/axelarnetwork/utils/monads/results"
)

// CachedClient serves historical headers from an in-memory LRU cache.
// Only headers buried at least reorgSafeDepth blocks below the latest seen block are cached, since they no longer change
type CachedClient struct {
	Client
	headers        *lru.Cache[uint64, *Header]
	reorgSafeDepth uint64
	latest         atomic.Uint64
}

// NewCachedClient wraps client with a header cache of the given size
func NewCachedClient(client Client, size int, reorgSafeDepth uint64) (*CachedClient, error) {
	headers, err := lru.New[uint64, *Header](size)
	if err != nil {
		return nil, err
	}

	return &CachedClient{
		Client:         client,
		headers:        headers,
		reorgSafeDepth: reorgSafeDepth,
	}, nil
}

// BlockNumber returns the number of the most recent block and remembers it to decide which headers are safe to cache
func (c *CachedClient) BlockNumber(ctx context.Context) (uint64, error) {
	blockNumber, err := c.Client.BlockNumber(ctx)
	if err != nil {
		return 0, err
	}

	c.observe(blockNumber)
	return blockNumber, nil
}

// HeaderByNumber returns the block header for the given block number
func (c *CachedClient) HeaderByNumber(ctx context.Context, number *big.Int) (*Header, error) {
	if header, ok := c.get(number); ok {
		return header, nil
	}

	header, err := c.Client.HeaderByNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	c.add(header)
	return header, nil
}

// HeadersByNumber returns cached headers directly and fetches the rest in a single batch
func (c *CachedClient) HeadersByNumber(ctx context.Context, numbers []*big.Int) ([]HeaderResult, error) {
	headers := make([]HeaderResult, len(numbers))

	var missing []*big.Int
	var missingIdx []int
	for i, number := range numbers {
		if header, ok := c.get(number); ok {
			headers[i] = HeaderResult(results.FromOk(header))
			continue
		}

		missing = append(missing, number)
		missingIdx = append(missingIdx, i)
	}

	if len(missing) == 0 {
		return headers, nil
	}

	fetched, err := c.Client.HeadersByNumber(ctx, missing)
	if err != nil {
		return nil, err
	}

	for i, result := range fetched {
		if result.Result().Err() == nil {
			c.add(result.Result().Ok())
		}

		headers[missingIdx[i]] = result
	}

	return headers, nil
}

func (c *CachedClient) observe(blockNumber uint64) {
	for {
		latest := c.latest.Load()
		if blockNumber <= latest || c.latest.CompareAndSwap(latest, blockNumber) {
			return
		}
	}
}

func (c *CachedClient) get(number *big.Int) (*Header, bool) {
	if number == nil || !number.IsUint64() {
		return nil, false
	}

	return c.headers.Get(number.Uint64())
}

func (c *CachedClient) add(header *Header) {
	if header == nil || header.Number == nil || !header.Number.ToInt().IsUint64() {
		return
	}

	number := header.Number.ToInt().Uint64()
	latest := c.latest.Load()
	if latest < c.reorgSafeDepth || number > latest-c.reorgSafeDepth {
		return
	}

	c.headers.Add(number, header)
}
