package vald

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/axelarnetwork/dicegame/vald/config"
	"github.com/axelarnetwork/dicegame/x/dice/types"
)

const (
	timeout = 30 * time.Second

	flagSkipRPC      = "skip-rpc"
	flagSkipContract = "skip-contract"
	flagSkipPlayer   = "skip-player"
)

// GetHealthCheckCommand returns the command to execute a node health check
func GetHealthCheckCommand() *cobra.Command {
	var skipRPC bool
	var skipContract bool
	var skipPlayer bool

	cmd := &cobra.Command{
		Use:   "health-check",
		Short: "Check that the node, the game contract and the playing account are usable",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := GetContextFromCmd(cmd)
			valdCfg, err := ctx.ValdConfig()
			if err != nil {
				return err
			}

			s, err := newSession(cmd.Context(), valdCfg, ctx.Logger, false)
			if err != nil {
				fmt.Printf("rpc check: failed (%s)\n", err.Error())
				os.Exit(1)
			}
			defer s.Close()

			ok := execCheck(cmd.Context(), s, valdCfg, "rpc", skipRPC, checkRPC) &&
				execCheck(cmd.Context(), s, valdCfg, "contract", skipContract, checkContract) &&
				execCheck(cmd.Context(), s, valdCfg, "player", skipPlayer, checkPlayer)

			// enforce a non-zero exit code in case health checks fail without printing cobra output
			if !ok {
				s.Close()
				os.Exit(1)
			}

			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&skipRPC, flagSkipRPC, false, "skip rpc check")
	cmd.PersistentFlags().BoolVar(&skipContract, flagSkipContract, false, "skip contract check")
	cmd.PersistentFlags().BoolVar(&skipPlayer, flagSkipPlayer, false, "skip player check")

	return cmd
}

type checkCmd func(ctx context.Context, s *session, valdCfg config.ValdConfig) error

func execCheck(ctx context.Context, s *session, valdCfg config.ValdConfig, name string, skip bool, check checkCmd) bool {
	if skip {
		fmt.Printf("%s check: skipped\n", name)
		return true
	}

	checkCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	err := check(checkCtx, s, valdCfg)
	if err != nil {
		fmt.Printf("%s check: failed (%s)\n", name, err.Error())
		return false
	}

	fmt.Printf("%s check: passed\n", name)
	return true
}

func checkRPC(ctx context.Context, s *session, valdCfg config.ValdConfig) error {
	header, err := s.chain.HeaderByNumber(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to get the latest block: %s", err.Error())
	}

	if header.Time == nil {
		return fmt.Errorf("latest block has no timestamp")
	}

	age := time.Since(time.Unix(header.Time.ToInt().Int64(), 0))
	if age > valdCfg.MaxLatestBlockAge {
		return fmt.Errorf("latest block is %s old, the node is not synced", age.Round(time.Second))
	}

	return nil
}

func checkContract(ctx context.Context, s *session, _ config.ValdConfig) error {
	deployed, err := s.game.IsDeployed(ctx)
	if err != nil {
		return err
	}

	if !deployed {
		return fmt.Errorf("no contract deployed at %s", s.game.Address().Hex())
	}

	if _, err := s.game.FutureBlocks(ctx); err != nil {
		return fmt.Errorf("contract at %s is not a dice game: %s", s.game.Address().Hex(), err.Error())
	}

	return nil
}

func checkPlayer(ctx context.Context, s *session, valdCfg config.ValdConfig) error {
	if valdCfg.KeyFile == "" {
		return fmt.Errorf("no key file specified")
	}

	balance, err := s.game.Balance(ctx)
	if err != nil {
		return err
	}

	stake, err := types.EtherToWei(valdCfg.Stake)
	if err != nil {
		return err
	}

	if balance.Cmp(stake) < 0 {
		return fmt.Errorf("player %s does not have enough funds (minimum balance is %s ether)", s.game.Account().Hex(), valdCfg.Stake)
	}

	return nil
}
