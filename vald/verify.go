package vald

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/axelarnetwork/utils/funcs"
	"github.com/spf13/cobra"

	"github.com/axelarnetwork/dicegame/vald/parse"
	"github.com/axelarnetwork/dicegame/x/dice/types"
)

// GetVerifyBlockCommand returns the command to check that a block header re-encodes to its block hash
func GetVerifyBlockCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify-block [number]",
		Short: "Fetch a block header, re-encode it and compare its hash with the hash reported by the node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blockNumber, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid block number %q", args[0])
			}

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

			encoded, err := s.mgr.VerifyBlock(cmd.Context(), blockNumber)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", funcs.Must(json.MarshalIndent(encodedDetails(blockNumber, encoded), "", "  ")))
			return nil
		},
	}
}

// GetVerifyHeadersCommand returns the command to check many block headers in one batch
func GetVerifyHeadersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify-headers [numbers or ranges...]",
		Short: "Check that the headers of all given blocks re-encode to their block hashes, e.g. verify-headers 100-120,130",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blockNumbers, err := parse.BlockNumbers(args)
			if err != nil {
				return err
			}

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

			verified, err := s.mgr.VerifyBlocks(cmd.Context(), blockNumbers)
			if err != nil {
				return err
			}

			failed := 0
			for i, result := range verified {
				if result.Err() == nil {
					fmt.Printf("block %d: passed (%s)\n", blockNumbers[i], types.Hash(result.Ok()).Hex())
					continue
				}

				failed++
				fmt.Printf("block %d: failed (%s)\n", blockNumbers[i], result.Err().Error())
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d headers failed verification", failed, len(blockNumbers))
			}

			return nil
		},
	}
}
