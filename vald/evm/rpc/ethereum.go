package rpc

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/axelarnetwork/utils/monads/results"
	"github.com/axelarnetwork/utils/slices"
)

//go:generate moq -out ./mock/ethereum.go -pkg mock . EthereumJSONRPCClient JSONRPCClient

// EthereumJSONRPCClient represents the functionality of github.com/ethereum/go-ethereum/ethclient.Client
type EthereumJSONRPCClient interface {
	BlockNumber(ctx context.Context) (uint64, error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	Close()
}

// JSONRPCClient represents the functionality of github.com/ethereum/go-ethereum/rpc.Client
type JSONRPCClient interface {
	CallContext(ctx context.Context, result interface{}, method string, args ...interface{}) error
	BatchCallContext(ctx context.Context, b []rpc.BatchElem) error
}

// EthereumClient is a JSON-RPC client of any Ethereum-compact chains
type EthereumClient struct {
	EthereumJSONRPCClient
	rpc JSONRPCClient
}

// NewEthereumClient is the constructor
func NewEthereumClient(ethClient EthereumJSONRPCClient, rpc JSONRPCClient) (*EthereumClient, error) {
	client := &EthereumClient{
		EthereumJSONRPCClient: ethClient,
		rpc:                   rpc,
	}
	// validate that the given url implements standard ethereum JSON-RPC
	if _, err := client.BlockNumber(context.Background()); err != nil {
		return nil, err
	}

	return client, nil
}

// HeaderByNumber returns the block header for the given block number
func (c *EthereumClient) HeaderByNumber(ctx context.Context, number *big.Int) (*Header, error) {
	var head *Header
	err := c.rpc.CallContext(ctx, &head, "eth_getBlockByNumber", toBlockNumArg(number), false)
	if err == nil && head == nil {
		err = ethereum.NotFound
	}

	return head, err
}

// HeadersByNumber fetches all given headers in one batch request. Blocks that are not mined yet result in ethereum.NotFound
func (c *EthereumClient) HeadersByNumber(ctx context.Context, numbers []*big.Int) ([]HeaderResult, error) {
	heads := make([]*Header, len(numbers))
	batch := make([]rpc.BatchElem, len(numbers))
	for i, number := range numbers {
		batch[i] = rpc.BatchElem{
			Method: "eth_getBlockByNumber",
			Args:   []interface{}{toBlockNumArg(number), false},
			Result: &heads[i],
		}
	}

	if err := c.rpc.BatchCallContext(ctx, batch); err != nil {
		return nil, fmt.Errorf("unable to send batch request: %v", err)
	}

	return slices.Map(batch, func(elem rpc.BatchElem) HeaderResult {
		if elem.Error != nil {
			return HeaderResult(results.FromErr[*Header](elem.Error))
		}

		head := *elem.Result.(**Header)
		if head == nil {
			return HeaderResult(results.FromErr[*Header](ethereum.NotFound))
		}

		return HeaderResult(results.FromOk(head))
	}), nil
}

// IsFinalized determines whether or not the given transaction receipt is finalized on the chain
func (c *EthereumClient) IsFinalized(ctx context.Context, conf uint64, txReceipt *types.Receipt) (bool, error) {
	latestFinalizedBlockNumber, err := c.FinalizedBlockNumber(ctx, conf)
	if err != nil {
		return false, err
	}

	return latestFinalizedBlockNumber.Cmp(txReceipt.BlockNumber) >= 0, nil
}

// FinalizedBlockNumber returns the finalized block number based on the given confirmation number
func (c *EthereumClient) FinalizedBlockNumber(ctx context.Context, conf uint64) (*big.Int, error) {
	blockNumber, err := c.BlockNumber(ctx)
	if err != nil {
		return nil, err
	}

	// the latest block counts as the first confirmation
	if conf == 0 {
		conf = 1
	}

	if blockNumber+1 < conf {
		return big.NewInt(0), nil
	}

	return new(big.Int).SetUint64(blockNumber + 1 - conf), nil
}

// copied from https://github.com/ethereum/go-ethereum/blob/69568c554880b3567bace64f8848ff1be27d084d/ethclient/ethclient.go#L565
func toBlockNumArg(number *big.Int) string {
	if number == nil {
		return "latest"
	}

	return hexutil.EncodeBig(number)
}
