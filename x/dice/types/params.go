package types

import (
	"fmt"
	"math/big"

	errorsmod "cosmossdk.io/errors"
	"github.com/shopspring/decimal"
)

const (
	// ModuleName is the codespace of all dice errors
	ModuleName = "dice"

	// MinGuess is the smallest number a player may bet on
	MinGuess = 0
	// MaxGuess is the largest number a player may bet on
	MaxGuess = 15

	// DefaultStake is the amount of ether sent along with every bet
	DefaultStake = "0.001"
	// DefaultPrize is the amount of ether paid out for a correct guess
	DefaultPrize = "0.015"

	etherDecimals = 18
)

// ValidateGuess checks that guess is a number the game accepts and converts it to its on-chain representation
func ValidateGuess(guess int64) (uint8, error) {
	if guess < MinGuess || guess > MaxGuess {
		return 0, errorsmod.Wrapf(ErrInputOutOfRange, "guess must be between %d and %d, got %d", MinGuess, MaxGuess, guess)
	}

	return uint8(guess), nil
}

// EtherToWei parses a decimal ether amount (e.g. "0.001") into wei
func EtherToWei(ether string) (*big.Int, error) {
	amount, err := decimal.NewFromString(ether)
	if err != nil {
		return nil, fmt.Errorf("invalid ether amount %q: %w", ether, err)
	}

	if amount.IsNegative() {
		return nil, fmt.Errorf("ether amount %q must not be negative", ether)
	}

	wei := amount.Shift(etherDecimals)
	if !wei.Equal(wei.Truncate(0)) {
		return nil, fmt.Errorf("ether amount %q has more than %d decimals", ether, etherDecimals)
	}

	return wei.BigInt(), nil
}

// WeiToEther renders a wei amount as a decimal ether string
func WeiToEther(wei *big.Int) string {
	if wei == nil {
		return "0"
	}

	return decimal.NewFromBigInt(wei, -etherDecimals).String()
}
