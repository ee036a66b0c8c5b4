package vald

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/axelarnetwork/utils/funcs"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/axelarnetwork/dicegame/x/dice/types"
)

const flagWait = "wait"

// GetStatusCommand returns the command to show the state of the player's bet
func GetStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the player's bet and whether it can be rolled",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := GetContextFromCmd(cmd)
			valdCfg, err := ctx.ValdConfig()
			if err != nil {
				return err
			}

			s, err := newSession(cmd.Context(), valdCfg, ctx.Logger, false)
			if err != nil {
				return err
			}
			defer s.Close()

			snapshot, err := s.mgr.Snapshot(cmd.Context())
			if err != nil {
				return err
			}

			details := map[string]interface{}{
				"chain":             valdCfg.Name,
				"contract":          s.game.Address().Hex(),
				"player":            s.game.Account().Hex(),
				"current_block":     snapshot.CurrentBlock,
				"status":            snapshot.Status.String(),
				"bet_disabled":      snapshot.Window.BetDisabled,
				"roll_disabled":     snapshot.Window.RollDisabled,
				"window_not_open":   snapshot.Window.WindowNotYetOpen,
				"window_missed":     snapshot.Window.WindowMissed,
				"blocks_until_open": snapshot.Window.BlocksUntilOpen,
				"stake":             valdCfg.Stake,
				"prize":             valdCfg.Prize,
			}

			if snapshot.Bet.HasBet() {
				target, _ := snapshot.TargetBlock()
				details["guess"] = snapshot.Bet.Number
				details["bet_block"] = snapshot.Bet.BlockNumber
				details["target_block"] = target
				if snapshot.Bet.Rolled {
					details["rolled_number"] = snapshot.Bet.RolledNumber
				}

				entry, ok, err := s.journal.Get(s.game.Account(), snapshot.Bet.BlockNumber)
				if err != nil {
					return err
				}
				if ok {
					details["reveal_tx"] = entry.TxHash.Hex()
					details["reveal_status"] = entry.Status.String()
				}
			}

			if valdCfg.KeyFile != "" {
				balance, err := s.game.Balance(cmd.Context())
				if err != nil {
					return err
				}
				details["balance"] = types.WeiToEther(balance)
			}

			fmt.Printf("%s\n", funcs.Must(json.MarshalIndent(details, "", "  ")))
			return nil
		},
	}
}

// GetBetCommand returns the command to bet the configured stake on a number
func GetBetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bet [number]",
		Short: fmt.Sprintf("Bet the configured stake on a number between %d and %d", types.MinGuess, types.MaxGuess),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			guess, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return errors.Wrapf(types.ErrInputOutOfRange, "%s is not a number", args[0])
			}

			if _, err := types.ValidateGuess(guess); err != nil {
				return err
			}

			wait, err := cmd.Flags().GetBool(flagWait)
			if err != nil {
				return err
			}

			ctx := GetContextFromCmd(cmd)
			valdCfg, err := ctx.ValdConfig()
			if err != nil {
				return err
			}

			s, err := newSession(cmd.Context(), valdCfg, ctx.Logger, true)
			if err != nil {
				return err
			}
			defer s.Close()

			txHash, err := s.mgr.PlaceBet(cmd.Context(), guess)
			if err != nil {
				return err
			}

			details := map[string]interface{}{
				"guess":   guess,
				"stake":   valdCfg.Stake,
				"tx_hash": txHash.Hex(),
			}

			if wait {
				receipt, err := s.mgr.AwaitReceipt(cmd.Context(), txHash)
				if err != nil {
					return err
				}

				details["bet_block"] = receipt.BlockNumber.Uint64()
			}

			fmt.Printf("%s\n", funcs.Must(json.MarshalIndent(details, "", "  ")))
			return nil
		},
	}

	cmd.Flags().Bool(flagWait, false, "wait until the bet transaction is final")
	return cmd
}

// GetRollCommand returns the command to reveal the deciding block of the player's bet
func GetRollCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roll",
		Short: "Reveal the deciding block of the player's bet once its header matches the block hash",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			wait, err := cmd.Flags().GetBool(flagWait)
			if err != nil {
				return err
			}

			ctx := GetContextFromCmd(cmd)
			valdCfg, err := ctx.ValdConfig()
			if err != nil {
				return err
			}

			s, err := newSession(cmd.Context(), valdCfg, ctx.Logger, true)
			if err != nil {
				return err
			}
			defer s.Close()

			entry, err := s.mgr.Roll(cmd.Context())
			if err != nil {
				return err
			}

			details := map[string]interface{}{
				"bet_block": entry.BetBlock,
				"tx_hash":   entry.TxHash.Hex(),
				"status":    entry.Status.String(),
			}

			if wait {
				if _, err := s.mgr.ConfirmRoll(cmd.Context(), entry); err != nil {
					return err
				}

				snapshot, err := s.mgr.Snapshot(cmd.Context())
				if err != nil {
					return err
				}

				details["status"] = snapshot.Status.String()
				details["guess"] = snapshot.Bet.Number
				details["rolled_number"] = snapshot.Bet.RolledNumber
				if snapshot.Bet.Won() {
					details["prize"] = valdCfg.Prize
				}
			}

			fmt.Printf("%s\n", funcs.Must(json.MarshalIndent(details, "", "  ")))
			return nil
		},
	}

	cmd.Flags().Bool(flagWait, false, "wait until the reveal is final and show the outcome")
	return cmd
}

func encodedDetails(blockNumber uint64, encoded []byte) map[string]interface{} {
	return map[string]interface{}{
		"block":   blockNumber,
		"hash":    types.Hash(encoded).Hex(),
		"size":    len(encoded),
		"encoded": hexutil.Encode(encoded),
	}
}
