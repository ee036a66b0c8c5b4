package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/axelarnetwork/dicegame/x/dice/types"
)

func TestBetStatus_CanTransitionTo(t *testing.T) {
	all := []types.BetStatus{types.NoBet, types.Betted, types.RolledWin, types.RolledLose, types.Missed}
	allowed := map[types.BetStatus][]types.BetStatus{
		types.NoBet:      {types.Betted},
		types.Betted:     {types.RolledWin, types.RolledLose, types.Missed},
		types.RolledWin:  {types.Betted},
		types.RolledLose: {types.Betted},
		types.Missed:     {types.Betted},
	}

	for _, from := range all {
		for _, to := range all {
			assert.Equal(t, contains(allowed[from], to), from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}

	assert.False(t, types.BetStatus(42).CanTransitionTo(types.Betted))
	assert.Equal(t, "unknown(42)", types.BetStatus(42).String())
}

func TestBetStatus_IsTerminal(t *testing.T) {
	assert.False(t, types.NoBet.IsTerminal())
	assert.False(t, types.Betted.IsTerminal())
	assert.True(t, types.RolledWin.IsTerminal())
	assert.True(t, types.RolledLose.IsTerminal())
	assert.True(t, types.Missed.IsTerminal())
}

func TestStatusOf(t *testing.T) {
	open := types.WindowState{}
	missed := types.WindowState{WindowMissed: true, RollDisabled: true}

	assert.Equal(t, types.NoBet, types.StatusOf(types.BetRecord{}, open))
	assert.Equal(t, types.Betted, types.StatusOf(types.BetRecord{Number: 4, BlockNumber: 10}, open))
	assert.Equal(t, types.Missed, types.StatusOf(types.BetRecord{Number: 4, BlockNumber: 10}, missed))
	assert.Equal(t, types.RolledWin, types.StatusOf(types.BetRecord{Number: 4, BlockNumber: 10, Rolled: true, RolledNumber: 4}, open))
	assert.Equal(t, types.RolledLose, types.StatusOf(types.BetRecord{Number: 4, BlockNumber: 10, Rolled: true, RolledNumber: 5}, open))
}

func TestValidateGuess(t *testing.T) {
	for guess := int64(types.MinGuess); guess <= types.MaxGuess; guess++ {
		actual, err := types.ValidateGuess(guess)
		assert.NoError(t, err)
		assert.EqualValues(t, guess, actual)
	}

	for _, guess := range []int64{-1, 16, 255, 256} {
		_, err := types.ValidateGuess(guess)
		assert.ErrorIs(t, err, types.ErrInputOutOfRange)
	}
}

func TestEtherToWei(t *testing.T) {
	stake, err := types.EtherToWei(types.DefaultStake)
	assert.NoError(t, err)
	assert.Equal(t, "1000000000000000", stake.String())

	prize, err := types.EtherToWei(types.DefaultPrize)
	assert.NoError(t, err)
	assert.Equal(t, "15000000000000000", prize.String())

	assert.Equal(t, types.DefaultPrize, types.WeiToEther(prize))
	assert.Equal(t, "0", types.WeiToEther(nil))

	for _, invalid := range []string{"", "abc", "-1", "0.0000000000000000001"} {
		_, err := types.EtherToWei(invalid)
		assert.Error(t, err, invalid)
	}
}

func contains(statuses []types.BetStatus, status types.BetStatus) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}

	return false
}
