package rpc

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/axelarnetwork/utils/monads/results"
)

//go:generate moq -out ./mock/client.go -pkg mock . Client

// HeaderResult is a custom type that allows moq to correctly generate the mock for
// results.Result with *Header.
type HeaderResult results.Result[*Header]

// Result converts back to results.Result[*Header]
func (r HeaderResult) Result() results.Result[*Header] {
	return results.Result[*Header](r)
}

// Client provides calls to EVM JSON-RPC endpoints
type Client interface {
	// BlockNumber returns the number of the most recent block
	BlockNumber(ctx context.Context) (uint64, error)
	// HeaderByNumber returns the block header for the given block number, or ethereum.NotFound if it is not mined yet
	HeaderByNumber(ctx context.Context, number *big.Int) (*Header, error)
	// HeadersByNumber returns the block headers for the given block numbers in a single batch
	HeadersByNumber(ctx context.Context, numbers []*big.Int) ([]HeaderResult, error)
	// TransactionReceipt returns the transaction receipt for the given transaction hash
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	// IsFinalized determines whether or not the given transaction receipt is finalized on the chain
	IsFinalized(ctx context.Context, conf uint64, txReceipt *types.Receipt) (bool, error)
	// FinalizedBlockNumber returns the finalized block number based on the given confirmation number
	FinalizedBlockNumber(ctx context.Context, conf uint64) (*big.Int, error)
	// Close closes the client connection
	Close()
}

// Dial connects to the EVM JSON-RPC endpoint at url.
// The returned ethclient is also a contract backend, the raw client serves calls ethclient does not expose
func Dial(ctx context.Context, url string) (*ethclient.Client, *rpc.Client, error) {
	rpcClient, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, nil, err
	}

	return ethclient.NewClient(rpcClient), rpcClient, nil
}

// NewClient returns an EVM JSON-RPC client
func NewClient(ethClient EthereumJSONRPCClient, rpcClient JSONRPCClient, override FinalityOverride) (Client, error) {
	ethereumClient, err := NewEthereumClient(ethClient, rpcClient)
	if err != nil {
		return nil, err
	}

	if override == Confirmation {
		return ethereumClient, nil
	}

	if finalizedTagClient, err := NewFinalizedTagClient(ethereumClient); err == nil {
		return finalizedTagClient, nil
	}

	return ethereumClient, nil
}
