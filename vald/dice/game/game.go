package game

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"

	errorsmod "cosmossdk.io/errors"
	"github.com/axelarnetwork/utils/funcs"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rpc"

	dice "github.com/axelarnetwork/dicegame/x/dice/types"
)

//go:generate moq -out ./mock/game.go -pkg mock . Game Backend

const diceGameABI = `[
	{"type":"function","name":"futureBlocks","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"bets","stateMutability":"view","inputs":[{"name":"","type":"address"}],"outputs":[
		{"name":"number","type":"uint8"},
		{"name":"blockNumber","type":"uint256"},
		{"name":"rolled","type":"bool"},
		{"name":"rolledNumber","type":"uint8"}
	]},
	{"type":"function","name":"bet","stateMutability":"payable","inputs":[{"name":"_number","type":"uint8"}],"outputs":[]},
	{"type":"function","name":"rollTheDice","stateMutability":"nonpayable","inputs":[{"name":"rlpBytes","type":"bytes"}],"outputs":[]}
]`

// ABI is the interface of the DiceGame contract
var ABI = funcs.Must(abi.JSON(strings.NewReader(diceGameABI)))

// Backend represents the functionality of github.com/ethereum/go-ethereum/ethclient.Client needed to play
type Backend interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error)
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	ChainID(ctx context.Context) (*big.Int, error)
}

// Game provides the calls to the DiceGame contract
type Game interface {
	// Account returns the address bets are placed from
	Account() common.Address
	// FutureBlocks returns how many blocks after the bet the deciding block is mined
	FutureBlocks(ctx context.Context) (uint64, error)
	// Bet returns the latest bet of the given player
	Bet(ctx context.Context, player common.Address) (dice.BetRecord, error)
	// PlaceBet submits a bet on guess with the given stake in wei
	PlaceBet(ctx context.Context, guess uint8, stake *big.Int) (common.Hash, error)
	// RollTheDice submits the encoded header of the deciding block
	RollTheDice(ctx context.Context, encodedHeader []byte) (common.Hash, error)
}

// DiceGame is a client of a deployed DiceGame contract
type DiceGame struct {
	backend Backend
	address common.Address
	key     *ecdsa.PrivateKey
	account common.Address
}

// NewDiceGame returns a client of the contract at address. Without a key the client can only read
func NewDiceGame(backend Backend, address common.Address, key *ecdsa.PrivateKey) *DiceGame {
	game := &DiceGame{
		backend: backend,
		address: address,
		key:     key,
	}

	if key != nil {
		game.account = crypto.PubkeyToAddress(key.PublicKey)
	}

	return game
}

// Address returns the contract address
func (g *DiceGame) Address() common.Address {
	return g.address
}

// Account returns the address bets are placed from
func (g *DiceGame) Account() common.Address {
	return g.account
}

// FutureBlocks returns how many blocks after the bet the deciding block is mined
func (g *DiceGame) FutureBlocks(ctx context.Context) (uint64, error) {
	out, err := g.call(ctx, "futureBlocks")
	if err != nil {
		return 0, err
	}

	futureBlocks, ok := out[0].(*big.Int)
	if !ok || !futureBlocks.IsUint64() {
		return 0, fmt.Errorf("unexpected futureBlocks result %v", out[0])
	}

	return futureBlocks.Uint64(), nil
}

// Bet returns the latest bet of the given player
func (g *DiceGame) Bet(ctx context.Context, player common.Address) (dice.BetRecord, error) {
	out, err := g.call(ctx, "bets", player)
	if err != nil {
		return dice.BetRecord{}, err
	}

	number, ok1 := out[0].(uint8)
	blockNumber, ok2 := out[1].(*big.Int)
	rolled, ok3 := out[2].(bool)
	rolledNumber, ok4 := out[3].(uint8)
	if !ok1 || !ok2 || !ok3 || !ok4 || !blockNumber.IsUint64() {
		return dice.BetRecord{}, fmt.Errorf("unexpected bets result %v", out)
	}

	return dice.BetRecord{
		Number:       number,
		BlockNumber:  blockNumber.Uint64(),
		Rolled:       rolled,
		RolledNumber: rolledNumber,
	}, nil
}

// PlaceBet submits a bet on guess with the given stake in wei
func (g *DiceGame) PlaceBet(ctx context.Context, guess uint8, stake *big.Int) (common.Hash, error) {
	if _, err := dice.ValidateGuess(int64(guess)); err != nil {
		return common.Hash{}, err
	}

	data, err := ABI.Pack("bet", guess)
	if err != nil {
		return common.Hash{}, err
	}

	return g.transact(ctx, stake, data)
}

// RollTheDice submits the encoded header of the deciding block
func (g *DiceGame) RollTheDice(ctx context.Context, encodedHeader []byte) (common.Hash, error) {
	data, err := ABI.Pack("rollTheDice", encodedHeader)
	if err != nil {
		return common.Hash{}, err
	}

	return g.transact(ctx, big.NewInt(0), data)
}

// IsDeployed returns true if there is contract code at the game address
func (g *DiceGame) IsDeployed(ctx context.Context) (bool, error) {
	code, err := g.backend.CodeAt(ctx, g.address, nil)
	if err != nil {
		return false, err
	}

	return len(code) > 0, nil
}

// Balance returns the balance of the playing account in wei
func (g *DiceGame) Balance(ctx context.Context) (*big.Int, error) {
	return g.backend.BalanceAt(ctx, g.account, nil)
}

func (g *DiceGame) call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	data, err := ABI.Pack(method, args...)
	if err != nil {
		return nil, err
	}

	bz, err := g.backend.CallContract(ctx, ethereum.CallMsg{From: g.account, To: &g.address, Data: data}, nil)
	if err != nil {
		return nil, errorsmod.Wrapf(err, "failed to call %s", method)
	}

	return ABI.Unpack(method, bz)
}

func (g *DiceGame) transact(ctx context.Context, value *big.Int, data []byte) (common.Hash, error) {
	if g.key == nil {
		return common.Hash{}, fmt.Errorf("no signing key configured")
	}

	nonce, err := g.backend.PendingNonceAt(ctx, g.account)
	if err != nil {
		return common.Hash{}, errorsmod.Wrap(err, "failed to get nonce")
	}

	gasPrice, err := g.backend.SuggestGasPrice(ctx)
	if err != nil {
		return common.Hash{}, errorsmod.Wrap(err, "failed to get gas price")
	}

	// a reverting call fails estimation, so the contract's rejection surfaces here before anything is sent
	gas, err := g.backend.EstimateGas(ctx, ethereum.CallMsg{
		From:     g.account,
		To:       &g.address,
		GasPrice: gasPrice,
		Value:    value,
		Data:     data,
	})
	switch {
	case err == nil:
	case isRevert(err):
		return common.Hash{}, fmt.Errorf("%w: %w", dice.ErrTxFailed, err)
	default:
		return common.Hash{}, errorsmod.Wrap(err, "failed to estimate gas")
	}

	chainID, err := g.backend.ChainID(ctx)
	if err != nil {
		return common.Hash{}, errorsmod.Wrap(err, "failed to get chain id")
	}

	tx, err := types.SignTx(types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      gas,
		To:       &g.address,
		Value:    value,
		Data:     data,
	}), types.LatestSignerForChainID(chainID), g.key)
	if err != nil {
		return common.Hash{}, err
	}

	if err := g.backend.SendTransaction(ctx, tx); err != nil {
		return common.Hash{}, err
	}

	return tx.Hash(), nil
}

// isRevert reports whether the node rejected a call because the contract reverted, as opposed to a transport failure
func isRevert(err error) bool {
	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		return true
	}

	return strings.Contains(err.Error(), "execution reverted")
}
