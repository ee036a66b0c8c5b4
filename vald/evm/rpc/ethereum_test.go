package rpc_test

import (
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"testing"

	"github.com/axelarnetwork/utils/funcs"
	. "github.com/axelarnetwork/utils/test"
	"github.com/axelarnetwork/utils/test/rand"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	ethrpc "github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/assert"

	"github.com/axelarnetwork/dicegame/vald/evm/rpc"
	"github.com/axelarnetwork/dicegame/vald/evm/rpc/mock"
	dice "github.com/axelarnetwork/dicegame/x/dice/types"
)

func TestEthereumClient_HeaderByNumber(t *testing.T) {
	var (
		rpcClient *mock.JSONRPCClientMock
		client    *rpc.EthereumClient
		mined     *types.Header
	)

	givenClient := Given("an ethereum client", func() {
		ethClient := &mock.EthereumJSONRPCClientMock{
			BlockNumberFunc: func(context.Context) (uint64, error) { return 0, nil },
		}
		rpcClient = &mock.JSONRPCClientMock{}
		client = funcs.Must(rpc.NewEthereumClient(ethClient, rpcClient))
	})

	givenClient.
		When("the block is mined", func() {
			mined = randomGethHeader()
			rpcClient.CallContextFunc = func(_ context.Context, result interface{}, method string, args ...interface{}) error {
				return json.Unmarshal(funcs.Must(json.Marshal(mined)), result)
			}
		}).
		Then("should return a header that verifies against the block hash", func(t *testing.T) {
			header, err := client.HeaderByNumber(context.Background(), mined.Number)
			assert.NoError(t, err)
			assert.Equal(t, mined.Hash(), header.Hash)

			assert.Len(t, rpcClient.CallContextCalls(), 1)
			assert.Equal(t, "eth_getBlockByNumber", rpcClient.CallContextCalls()[0].Method)
			assert.Equal(t, []interface{}{hexutil.EncodeBig(mined.Number), false}, rpcClient.CallContextCalls()[0].Args)

			blockHeader, err := header.ToBlockHeader()
			assert.NoError(t, err)

			encoded, err := dice.Verify(blockHeader, header.Hash)
			assert.NoError(t, err)
			assert.Equal(t, mined.Hash(), dice.Hash(encoded))
		}).
		Run(t, 20)

	givenClient.
		When("the block is not mined yet", func() {
			rpcClient.CallContextFunc = func(context.Context, interface{}, string, ...interface{}) error { return nil }
		}).
		Then("should return not found", func(t *testing.T) {
			_, err := client.HeaderByNumber(context.Background(), big.NewInt(rand.PosI64()))
			assert.ErrorIs(t, err, ethereum.NotFound)
		}).
		Run(t)
}

func TestEthereumClient_HeadersByNumber(t *testing.T) {
	var (
		rpcClient *mock.JSONRPCClientMock
		client    *rpc.EthereumClient
		mined     map[uint64]*types.Header
		numbers   []*big.Int
	)

	Given("an ethereum client", func() {
		ethClient := &mock.EthereumJSONRPCClientMock{
			BlockNumberFunc: func(context.Context) (uint64, error) { return 0, nil },
		}
		rpcClient = &mock.JSONRPCClientMock{}
		client = funcs.Must(rpc.NewEthereumClient(ethClient, rpcClient))
	}).
		When("some of the requested blocks are mined", func() {
			mined = make(map[uint64]*types.Header)
			numbers = nil

			count := rand.I64Between(1, 20)
			for i := int64(0); i < count; i++ {
				header := randomGethHeader()
				header.Number = big.NewInt(i + 1)
				numbers = append(numbers, header.Number)

				if rand.I64Between(0, 2) == 0 {
					mined[header.Number.Uint64()] = header
				}
			}

			rpcClient.BatchCallContextFunc = func(_ context.Context, batch []ethrpc.BatchElem) error {
				for i := range batch {
					number := funcs.Must(hexutil.DecodeBig(batch[i].Args[0].(string))).Uint64()
					header, ok := mined[number]
					if !ok {
						funcs.MustNoErr(json.Unmarshal([]byte("null"), batch[i].Result))
						continue
					}

					funcs.MustNoErr(json.Unmarshal(funcs.Must(json.Marshal(header)), batch[i].Result))
				}
				return nil
			}
		}).
		Then("should return mined headers and not found for the rest", func(t *testing.T) {
			headers, err := client.HeadersByNumber(context.Background(), numbers)
			assert.NoError(t, err)
			assert.Len(t, headers, len(numbers))
			assert.Len(t, rpcClient.BatchCallContextCalls(), 1)

			for i, result := range headers {
				header, ok := mined[numbers[i].Uint64()]
				if !ok {
					assert.ErrorIs(t, result.Result().Err(), ethereum.NotFound)
					continue
				}

				assert.NoError(t, result.Result().Err())
				assert.Equal(t, header.Hash(), result.Result().Ok().Hash)
			}
		}).
		Run(t, 10)
}

func TestEthereumClient_HeadersByNumber_BatchFails(t *testing.T) {
	ethClient := &mock.EthereumJSONRPCClientMock{
		BlockNumberFunc: func(context.Context) (uint64, error) { return 0, nil },
	}
	rpcClient := &mock.JSONRPCClientMock{
		BatchCallContextFunc: func(context.Context, []ethrpc.BatchElem) error { return errors.New("connection refused") },
	}
	client := funcs.Must(rpc.NewEthereumClient(ethClient, rpcClient))

	_, err := client.HeadersByNumber(context.Background(), []*big.Int{big.NewInt(1)})
	assert.ErrorContains(t, err, "connection refused")
}

func TestEthereumClient_FinalizedBlockNumber(t *testing.T) {
	var latest uint64
	ethClient := &mock.EthereumJSONRPCClientMock{
		BlockNumberFunc: func(context.Context) (uint64, error) { return latest, nil },
	}
	client := funcs.Must(rpc.NewEthereumClient(ethClient, &mock.JSONRPCClientMock{}))

	latest = 100
	assert.EqualValues(t, 100, funcs.Must(client.FinalizedBlockNumber(context.Background(), 1)).Uint64())
	assert.EqualValues(t, 100, funcs.Must(client.FinalizedBlockNumber(context.Background(), 0)).Uint64())
	assert.EqualValues(t, 91, funcs.Must(client.FinalizedBlockNumber(context.Background(), 10)).Uint64())

	latest = 3
	assert.EqualValues(t, 0, funcs.Must(client.FinalizedBlockNumber(context.Background(), 10)).Uint64())

	latest = 100
	finalized, err := client.IsFinalized(context.Background(), 10, &types.Receipt{BlockNumber: big.NewInt(91)})
	assert.NoError(t, err)
	assert.True(t, finalized)

	finalized, err = client.IsFinalized(context.Background(), 10, &types.Receipt{BlockNumber: big.NewInt(92)})
	assert.NoError(t, err)
	assert.False(t, finalized)
}

func TestNewEthereumClient_InvalidEndpoint(t *testing.T) {
	ethClient := &mock.EthereumJSONRPCClientMock{
		BlockNumberFunc: func(context.Context) (uint64, error) { return 0, errors.New("method not found") },
	}

	_, err := rpc.NewEthereumClient(ethClient, &mock.JSONRPCClientMock{})
	assert.Error(t, err)
}

func TestNewClient_FinalityOverride(t *testing.T) {
	ethClient := &mock.EthereumJSONRPCClientMock{
		BlockNumberFunc: func(context.Context) (uint64, error) { return 100, nil },
	}
	finalized := randomGethHeader()
	finalized.Number = big.NewInt(42)
	rpcClient := &mock.JSONRPCClientMock{
		CallContextFunc: func(_ context.Context, result interface{}, _ string, args ...interface{}) error {
			if args[0] != "finalized" {
				return errors.New("unexpected block tag")
			}

			return json.Unmarshal(funcs.Must(json.Marshal(finalized)), result)
		},
	}

	client := funcs.Must(rpc.NewClient(ethClient, rpcClient, rpc.NoOverride))
	assert.IsType(t, &rpc.FinalizedTagClient{}, client)
	assert.EqualValues(t, 42, funcs.Must(client.FinalizedBlockNumber(context.Background(), 10)).Uint64())

	client = funcs.Must(rpc.NewClient(ethClient, rpcClient, rpc.Confirmation))
	assert.IsType(t, &rpc.EthereumClient{}, client)
	assert.EqualValues(t, 91, funcs.Must(client.FinalizedBlockNumber(context.Background(), 10)).Uint64())

	rpcClient.CallContextFunc = func(context.Context, interface{}, string, ...interface{}) error {
		return errors.New("invalid block tag")
	}
	client = funcs.Must(rpc.NewClient(ethClient, rpcClient, rpc.NoOverride))
	assert.IsType(t, &rpc.EthereumClient{}, client)
}

func TestParseFinalityOverride(t *testing.T) {
	assert.Equal(t, rpc.Confirmation, funcs.Must(rpc.ParseFinalityOverride("confirmation")))
	assert.Equal(t, rpc.Confirmation, funcs.Must(rpc.ParseFinalityOverride(" Confirmation ")))
	assert.Equal(t, rpc.NoOverride, funcs.Must(rpc.ParseFinalityOverride("")))
	assert.Equal(t, "confirmation", rpc.Confirmation.String())

	assert.Equal(t, rpc.NoOverride, funcs.Must(rpc.ParseFinalityOverride("none")))

	_, err := rpc.ParseFinalityOverride("finalized")
	assert.ErrorContains(t, err, `expected one of ["" "confirmation"]`)
}

func TestHeader_ToBlockHeader_MissingField(t *testing.T) {
	var header rpc.Header
	assert.NoError(t, json.Unmarshal(funcs.Must(json.Marshal(randomGethHeader())), &header))

	header.GasUsed = nil
	_, err := header.ToBlockHeader()
	assert.ErrorIs(t, err, dice.ErrInvalidHeader)
}

func randomGethHeader() *types.Header {
	optional := rand.I64Between(0, 7)
	hash := func() *common.Hash {
		h := common.BytesToHash(rand.Bytes(common.HashLength))
		return &h
	}
	u64 := func(x int64) *uint64 {
		v := uint64(x)
		return &v
	}

	header := &types.Header{
		ParentHash:  common.BytesToHash(rand.Bytes(common.HashLength)),
		UncleHash:   types.EmptyUncleHash,
		Coinbase:    common.BytesToAddress(rand.Bytes(common.AddressLength)),
		Root:        common.BytesToHash(rand.Bytes(common.HashLength)),
		TxHash:      common.BytesToHash(rand.Bytes(common.HashLength)),
		ReceiptHash: common.BytesToHash(rand.Bytes(common.HashLength)),
		Bloom:       types.BytesToBloom(rand.Bytes(types.BloomByteLength)),
		Difficulty:  big.NewInt(rand.I64Between(0, 3)),
		Number:      big.NewInt(rand.I64Between(1, 30_000_000)),
		GasLimit:    uint64(rand.I64Between(1, 30_000_000)),
		GasUsed:     uint64(rand.I64Between(0, 30_000_000)),
		Time:        uint64(rand.PosI64()),
		Extra:       rand.Bytes(int(rand.I64Between(0, 33))),
		MixDigest:   common.BytesToHash(rand.Bytes(common.HashLength)),
		Nonce:       types.EncodeNonce(uint64(rand.I64Between(0, 3))),
	}

	if optional > 0 {
		header.BaseFee = big.NewInt(rand.I64Between(0, 100_000_000_000))
	}
	if optional > 1 {
		header.WithdrawalsHash = hash()
	}
	if optional > 2 {
		header.BlobGasUsed = u64(rand.I64Between(0, 1_000_000))
		header.ExcessBlobGas = u64(rand.I64Between(0, 1_000_000))
	}
	if optional > 3 {
		header.ParentBeaconRoot = hash()
	}
	if optional > 4 {
		header.RequestsHash = hash()
	}

	return header
}
