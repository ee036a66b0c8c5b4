package types

import errorsmod "cosmossdk.io/errors"

// module errors
var (
	// Code 1 is a reserved code for internal errors and should not be used for anything else
	_ = errorsmod.Register(ModuleName, 1, "internal error")

	ErrHashMismatch       = errorsmod.Register(ModuleName, 2, "block hash mismatch")
	ErrBlockNotAvailable  = errorsmod.Register(ModuleName, 3, "block not available")
	ErrInputOutOfRange    = errorsmod.Register(ModuleName, 4, "input out of range")
	ErrInvalidHeader      = errorsmod.Register(ModuleName, 5, "invalid block header")
	ErrNoBet              = errorsmod.Register(ModuleName, 6, "no bet placed")
	ErrAlreadyRolled      = errorsmod.Register(ModuleName, 7, "bet already rolled")
	ErrSubmissionInFlight = errorsmod.Register(ModuleName, 8, "submission already in flight")
	ErrTxFailed           = errorsmod.Register(ModuleName, 9, "transaction failed")
	ErrBetPending         = errorsmod.Register(ModuleName, 10, "bet still pending")
)
