package vald

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cosmossdk.io/log"
	"github.com/axelarnetwork/utils/jobs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	errors2 "github.com/axelarnetwork/dicegame/utils/errors"
	"github.com/axelarnetwork/dicegame/vald/config"
	"github.com/axelarnetwork/dicegame/vald/evm/rpc"
)

// RW grants -rw------- file permissions
const RW = 0600

// RWX grants -rwx------ file permissions
const RWX = 0700

// GetWatchCommand returns the command that follows the chain and re-evaluates the player's bet on every new block
func GetWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Follow the chain and report the state of the player's bet on every new block",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := GetContextFromCmd(cmd)
			logger := ctx.Logger.With("module", "vald")

			valdCfg, err := ctx.ValdConfig()
			if err != nil {
				return err
			}

			if valdCfg.JournalDir != "" {
				if err := os.MkdirAll(valdCfg.JournalDir, RWX); err != nil {
					return err
				}
			}

			sigCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			logger.Info("start watching the chain")
			err = runWatch(sigCtx, valdCfg, logger)
			logger.Info("shutting down")
			return err
		},
	}

	return cmd
}

func runWatch(ctx context.Context, valdCfg config.ValdConfig, logger log.Logger) error {
	if valdCfg.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be positive, got %s", valdCfg.PollInterval)
	}

	s, err := newSession(ctx, valdCfg, logger, false)
	if err != nil {
		return err
	}
	defer s.Close()

	nodeHeight, err := waitTillNetworkSync(ctx, valdCfg, s.chain, logger)
	if err != nil {
		return err
	}
	logger.Info(fmt.Sprintf("node is synced, node height: %d", nodeHeight))

	eventCtx, cancelEventCtx := context.WithCancel(ctx)
	defer cancelEventCtx()

	mgr := jobs.NewMgr(eventCtx)
	js := []jobs.Job{
		pollBlocks(s.chain, valdCfg.PollInterval, valdCfg.MaxLatestBlockAge, s.mgr.ProcessNewBlock, logger),
		serveMetrics(valdCfg.MetricsAddr, s.registry, cancelEventCtx, logger),
	}

	mgr.AddJobs(js...)
	<-mgr.Done()

	return nil
}

// pollBlocks calls process for every new latest block. It logs an error when no new block shows up for maxBlockAge
func pollBlocks(chain rpc.Client, interval time.Duration, maxBlockAge time.Duration, process func(ctx context.Context, blockNumber uint64) error, logger log.Logger) jobs.Job {
	return func(ctx context.Context) error {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		var latest uint64
		lastSeen := time.Now()
		for {
			blockNumber, err := chain.BlockNumber(ctx)
			switch {
			case ctx.Err() != nil:
				return nil
			case err != nil:
				logger.Error("failed to get the latest block number", "error", err.Error())
			case blockNumber > latest:
				latest, lastSeen = blockNumber, time.Now()
				if err := process(ctx, blockNumber); err != nil {
					logger.Error(err.Error(), errors2.KeyVals(err)...)
				}
			case time.Since(lastSeen) > maxBlockAge:
				logger.Error("no new blocks discovered, is the chain halted?", "latest_block", latest, "since", lastSeen.String())
				lastSeen = time.Now()
			}

			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
			}
		}
	}
}

func serveMetrics(addr string, registry *prometheus.Registry, cancel context.CancelFunc, logger log.Logger) jobs.Job {
	return func(ctx context.Context) error {
		if addr == "" {
			return nil
		}

		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		server := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

		errs := make(chan error, 1)
		go func() { errs <- server.ListenAndServe() }()
		logger.Info("serving metrics", "addr", addr)

		select {
		case <-ctx.Done():
			shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancelShutdown()

			return server.Shutdown(shutdownCtx)
		case err := <-errs:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}

			cancel()
			return fmt.Errorf("metrics server stopped: %w", err)
		}
	}
}

// Wait until the node has synced with the network and return the node height
func waitTillNetworkSync(ctx context.Context, cfg config.ValdConfig, chain rpc.Client, logger log.Logger) (uint64, error) {
	for {
		rpcCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		header, err := chain.HeaderByNumber(rpcCtx, nil)
		cancel()
		if err != nil {
			return 0, err
		}

		if header.Time == nil || header.Number == nil {
			return 0, fmt.Errorf("latest block %s has no number or timestamp", header.Hash.Hex())
		}

		// If the block is older than the allowed time, then wait for the node to sync
		blockTime := time.Unix(header.Time.ToInt().Int64(), 0)
		if blockTime.Add(cfg.MaxLatestBlockAge).After(time.Now()) {
			return header.Number.ToInt().Uint64(), nil
		}

		logger.Info(fmt.Sprintf("node height %d is old, waiting for a recent block", header.Number.ToInt().Uint64()))
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(cfg.MaxLatestBlockAge):
		}
	}
}
