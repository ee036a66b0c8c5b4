package vald

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"
	"time"

	"cosmossdk.io/log"
	"github.com/axelarnetwork/utils/funcs"
	"github.com/axelarnetwork/utils/test/rand"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"github.com/axelarnetwork/dicegame/vald/config"
	"github.com/axelarnetwork/dicegame/vald/dice/game"
	gamemock "github.com/axelarnetwork/dicegame/vald/dice/game/mock"
	"github.com/axelarnetwork/dicegame/vald/evm/rpc"
	rpcmock "github.com/axelarnetwork/dicegame/vald/evm/rpc/mock"
	"github.com/axelarnetwork/dicegame/x/dice/types"
)

func TestPollBlocks(t *testing.T) {
	heights := []uint64{1, 1, 2, 2, 4, 3}
	var lock sync.Mutex
	var calls int

	chain := &rpcmock.ClientMock{
		BlockNumberFunc: func(context.Context) (uint64, error) {
			lock.Lock()
			defer lock.Unlock()

			if calls >= len(heights) {
				return heights[len(heights)-1], nil
			}
			calls++
			if calls == 2 {
				return 0, errors.New("connection reset")
			}
			return heights[calls-1], nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var processed []uint64
	process := func(_ context.Context, blockNumber uint64) error {
		processed = append(processed, blockNumber)
		if blockNumber == 4 {
			cancel()
		}
		return nil
	}

	job := pollBlocks(chain, time.Millisecond, time.Hour, process, log.NewTestLogger(t))
	assert.NoError(t, job(ctx))
	assert.Equal(t, []uint64{1, 2, 4}, processed)
}

func TestWaitTillNetworkSync(t *testing.T) {
	cfg := config.DefaultValdConfig()
	cfg.MaxLatestBlockAge = 10 * time.Millisecond

	header := func(blockTime time.Time) *rpc.Header {
		return &rpc.Header{
			Number: (*hexutil.Big)(big.NewInt(42)),
			Time:   (*hexutil.Big)(big.NewInt(blockTime.Unix())),
		}
	}

	synced := &rpcmock.ClientMock{
		HeaderByNumberFunc: func(_ context.Context, number *big.Int) (*rpc.Header, error) {
			assert.Nil(t, number)
			return header(time.Now().Add(time.Minute)), nil
		},
	}
	height, err := waitTillNetworkSync(context.Background(), cfg, synced, log.NewNopLogger())
	assert.NoError(t, err)
	assert.EqualValues(t, 42, height)

	stale := &rpcmock.ClientMock{
		HeaderByNumberFunc: func(context.Context, *big.Int) (*rpc.Header, error) {
			return header(time.Now().Add(-time.Hour)), nil
		},
	}
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = waitTillNetworkSync(ctx, cfg, stale, log.NewNopLogger())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Greater(t, len(stale.HeaderByNumberCalls()), 1)
}

func TestExecCheck(t *testing.T) {
	var checked int
	check := func(err error) checkCmd {
		return func(context.Context, *session, config.ValdConfig) error {
			checked++
			return err
		}
	}

	assert.True(t, execCheck(context.Background(), nil, config.ValdConfig{}, "test", true, check(errors.New("unreachable"))))
	assert.Zero(t, checked)

	assert.False(t, execCheck(context.Background(), nil, config.ValdConfig{}, "test", false, check(errors.New("unreachable"))))
	assert.True(t, execCheck(context.Background(), nil, config.ValdConfig{}, "test", false, check(nil)))
	assert.Equal(t, 2, checked)
}

func TestCheckPlayer(t *testing.T) {
	cfg := config.DefaultValdConfig()
	cfg.KeyFile = "key"
	stake := funcs.Must(types.EtherToWei(cfg.Stake))

	balance := new(big.Int)
	backend := &gamemock.BackendMock{
		BalanceAtFunc: func(context.Context, common.Address, *big.Int) (*big.Int, error) { return balance, nil },
	}
	s := &session{game: game.NewDiceGame(backend, common.BytesToAddress(rand.Bytes(common.AddressLength)), funcs.Must(crypto.GenerateKey()))}

	balance.Sub(stake, big.NewInt(1))
	assert.ErrorContains(t, checkPlayer(context.Background(), s, cfg), "not have enough funds")

	balance.Set(stake)
	assert.NoError(t, checkPlayer(context.Background(), s, cfg))

	cfg.KeyFile = ""
	assert.Error(t, checkPlayer(context.Background(), s, cfg))
}

func TestGetContextFromCmd(t *testing.T) {
	cmd := &cobra.Command{}
	assert.NotNil(t, GetContextFromCmd(cmd).Viper)

	ctx := NewDefaultContext()
	ctx.Viper.Set("poll_interval", "3s")
	ctx.Viper.Set("dice.contract_address", "0x5FbDB2315678afecb367f032d93F642f64180aa3")
	SetCmdContext(cmd, ctx)

	valdCfg, err := GetContextFromCmd(cmd).ValdConfig()
	assert.NoError(t, err)
	assert.Equal(t, 3*time.Second, valdCfg.PollInterval)
	assert.Equal(t, common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3"), valdCfg.ContractAddress)
	assert.Equal(t, config.DefaultBroadcastConfig(), valdCfg.BroadcastConfig)
}
