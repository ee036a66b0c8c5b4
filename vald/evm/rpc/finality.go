package rpc

import (
	"context"
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/exp/maps"
)

// FinalityOverride forces how the client decides that a block is final
type FinalityOverride int

const (
	// NoOverride uses the chain's "finalized" block tag when the node supports it, and confirmations otherwise
	NoOverride FinalityOverride = iota
	// Confirmation always counts confirmations from the latest block
	Confirmation
)

var finalityOverrideNames = map[FinalityOverride]string{
	NoOverride:   "",
	Confirmation: "confirmation",
}

func (o FinalityOverride) String() string {
	if name, ok := finalityOverrideNames[o]; ok {
		return name
	}

	return fmt.Sprintf("FinalityOverride(%d)", int(o))
}

// ParseFinalityOverride parses the config representation of a FinalityOverride. "none" is accepted for NoOverride
func ParseFinalityOverride(s string) (FinalityOverride, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "none" {
		return NoOverride, nil
	}

	for override, overrideName := range finalityOverrideNames {
		if overrideName == name {
			return override, nil
		}
	}

	names := maps.Values(finalityOverrideNames)
	sort.Strings(names)
	return NoOverride, fmt.Errorf("invalid finality override %q, expected one of %q", s, names)
}

// FinalizedTagClient is a JSON-RPC client of a chain that exposes the "finalized" block tag
type FinalizedTagClient struct {
	*EthereumClient
}

// NewFinalizedTagClient is the constructor. It fails if the node does not support the "finalized" block tag
func NewFinalizedTagClient(ethereumClient *EthereumClient) (*FinalizedTagClient, error) {
	client := &FinalizedTagClient{EthereumClient: ethereumClient}
	if _, err := client.FinalizedBlockNumber(context.Background(), 0); err != nil {
		return nil, err
	}

	return client, nil
}

// FinalizedBlockNumber returns the number of the block the chain itself reports as finalized
func (c *FinalizedTagClient) FinalizedBlockNumber(ctx context.Context, _ uint64) (*big.Int, error) {
	var head *Header
	if err := c.rpc.CallContext(ctx, &head, "eth_getBlockByNumber", "finalized", false); err != nil {
		return nil, err
	}

	if head == nil || head.Number == nil {
		return nil, ethereum.NotFound
	}

	return head.Number.ToInt(), nil
}

// IsFinalized determines whether or not the given transaction receipt is at or below the finalized block
func (c *FinalizedTagClient) IsFinalized(ctx context.Context, conf uint64, txReceipt *types.Receipt) (bool, error) {
	finalized, err := c.FinalizedBlockNumber(ctx, conf)
	if err != nil {
		return false, err
	}

	return finalized.Cmp(txReceipt.BlockNumber) >= 0, nil
}
