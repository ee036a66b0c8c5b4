package broadcast

import (
	"context"
	"errors"
	"time"

	"cosmossdk.io/log"
	"github.com/ethereum/go-ethereum/common"

	"github.com/axelarnetwork/dicegame/utils"
	errors2 "github.com/axelarnetwork/dicegame/utils/errors"
	"github.com/axelarnetwork/dicegame/vald/config"
	dice "github.com/axelarnetwork/dicegame/x/dice/types"
)

//go:generate moq -pkg mock -out mock/broadcast.go . Broadcaster

// Submit sends a single transaction and returns its hash
type Submit func(ctx context.Context) (common.Hash, error)

// Broadcaster submits transactions from a single account
type Broadcaster interface {
	Broadcast(ctx context.Context, submit Submit) (common.Hash, error)
}

type pipelinedBroadcaster struct {
	retryPipeline *retryPipeline
	timeout       time.Duration
	logger        log.Logger
}

// WithRetry returns a broadcaster that serializes all submissions and retries transport failures with exponential back-off.
// Rejections by the chain or the contract are returned right away
func WithRetry(cfg config.BroadcastConfig, logger log.Logger) Broadcaster {
	return &pipelinedBroadcaster{
		retryPipeline: newPipelineWithRetry(1000, cfg.MaxRetries, utils.Capped(utils.ExponentialBackOff(cfg.MinSleepBeforeRetry), cfg.MaxTimeout)),
		timeout:       cfg.MaxTimeout,
		logger:        logger.With("process", "broadcast"),
	}
}

// Broadcast runs submit once every previously queued submission has finished
func (b *pipelinedBroadcaster) Broadcast(ctx context.Context, submit Submit) (common.Hash, error) {
	var txHash common.Hash
	err := b.retryPipeline.Push(ctx,
		func(ctx context.Context) error {
			attemptCtx, cancel := context.WithTimeout(ctx, b.timeout)
			defer cancel()

			var err error
			txHash, err = submit(attemptCtx)
			return err
		},
		func(err error) bool {
			if !isTransient(err) {
				return false
			}

			b.logger.Debug("retrying transaction submission", append([]interface{}{"error", err.Error()}, errors2.KeyVals(err)...)...)
			return true
		})
	if err != nil {
		return common.Hash{}, err
	}

	b.logger.Info("transaction submitted", "tx_hash", txHash.Hex())
	return txHash, nil
}

// isTransient returns false for errors that will not go away by sending the same transaction again
func isTransient(err error) bool {
	switch {
	case errors.Is(err, context.Canceled):
		return false
	case errors.Is(err, dice.ErrTxFailed), errors.Is(err, dice.ErrInputOutOfRange):
		return false
	default:
		return true
	}
}
