package types

// RetrievableBlockHorizon is the number of most recent block hashes the EVM exposes to contracts.
// A reveal for a target block older than this can no longer be checked on-chain
const RetrievableBlockHorizon uint64 = 256

// WindowParams are the inputs of the betting window policy. Nil block numbers are unknown
type WindowParams struct {
	CurrentBlock *uint64
	TargetBlock  *uint64
	HasBet       bool
	HasRolled    bool
	// BetInFlight is set while a bet transaction is being submitted or mined
	BetInFlight bool
	// RollInFlight is set while a reveal transaction is outstanding
	RollInFlight bool
}

// WindowState is the gating derived from WindowParams. It is never persisted
type WindowState struct {
	WindowNotYetOpen bool
	WindowMissed     bool
	RollDisabled     bool
	BetDisabled      bool
	// BlocksUntilOpen is the number of blocks left before the target block is mined, 0 once the window is open
	BlocksUntilOpen uint64
}

// NewWindowState derives the betting window from the given block numbers and bet flags
func NewWindowState(p WindowParams) WindowState {
	known := p.CurrentBlock != nil && p.TargetBlock != nil

	var state WindowState
	if known {
		current, target := *p.CurrentBlock, *p.TargetBlock

		state.WindowNotYetOpen = current < target
		if state.WindowNotYetOpen {
			state.BlocksUntilOpen = target - current
		}

		state.WindowMissed = current > target && current-target > RetrievableBlockHorizon && p.HasBet && !p.HasRolled
	}

	state.RollDisabled = !known ||
		!p.HasBet ||
		p.HasRolled ||
		p.RollInFlight ||
		state.WindowNotYetOpen ||
		state.WindowMissed

	// an open bet must be rolled or missed before the next one
	state.BetDisabled = p.CurrentBlock == nil ||
		p.BetInFlight ||
		(p.HasBet && !state.WindowMissed && !p.HasRolled)

	return state
}

// Params returns the window inputs for this bet record at the given chain height
func (r BetRecord) Params(currentBlock *uint64, futureBlocks uint64) WindowParams {
	return WindowParams{
		CurrentBlock: currentBlock,
		TargetBlock:  r.TargetBlock(futureBlocks),
		HasBet:       r.HasBet(),
		HasRolled:    r.Rolled,
	}
}
