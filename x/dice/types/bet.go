package types

import "fmt"

// BetRecord is the contract's record of the latest bet of a player
type BetRecord struct {
	Number       uint8
	BlockNumber  uint64
	Rolled       bool
	RolledNumber uint8
}

// HasBet returns true if the player has placed a bet. The contract stores block 0 for "no bet"
func (r BetRecord) HasBet() bool {
	return r.BlockNumber > 0
}

// TargetBlock returns the block whose hash decides the bet, or nil if there is no bet
func (r BetRecord) TargetBlock(futureBlocks uint64) *uint64 {
	if !r.HasBet() {
		return nil
	}

	target := r.BlockNumber + futureBlocks
	return &target
}

// Won returns true if the bet was rolled and the rolled number matches the guess
func (r BetRecord) Won() bool {
	return r.Rolled && r.RolledNumber == r.Number
}

// BetStatus is the lifecycle state of a player's bet
type BetStatus int

const (
	NoBet BetStatus = iota
	Betted
	RolledWin
	RolledLose
	Missed
)

func (s BetStatus) String() string {
	switch s {
	case NoBet:
		return "no_bet"
	case Betted:
		return "betted"
	case RolledWin:
		return "rolled_win"
	case RolledLose:
		return "rolled_lose"
	case Missed:
		return "missed"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// IsTerminal returns true if the bet can no longer change without a new bet
func (s BetStatus) IsTerminal() bool {
	switch s {
	case RolledWin, RolledLose, Missed:
		return true
	default:
		return false
	}
}

// CanTransitionTo returns true if a bet may move from s to next
func (s BetStatus) CanTransitionTo(next BetStatus) bool {
	switch s {
	case NoBet:
		return next == Betted
	case Betted:
		return next == RolledWin || next == RolledLose || next == Missed
	case RolledWin, RolledLose, Missed:
		return next == Betted
	default:
		return false
	}
}

// StatusOf classifies a bet record given the window derived for it
func StatusOf(record BetRecord, window WindowState) BetStatus {
	switch {
	case !record.HasBet():
		return NoBet
	case record.Won():
		return RolledWin
	case record.Rolled:
		return RolledLose
	case window.WindowMissed:
		return Missed
	default:
		return Betted
	}
}
