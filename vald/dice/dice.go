package dice

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"sync/atomic"
	"time"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	"github.com/axelarnetwork/utils/monads/results"
	"github.com/axelarnetwork/utils/slices"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	geth "github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/sync/errgroup"

	"github.com/axelarnetwork/dicegame/utils"
	errors2 "github.com/axelarnetwork/dicegame/utils/errors"
	"github.com/axelarnetwork/dicegame/vald/config"
	"github.com/axelarnetwork/dicegame/vald/dice/broadcast"
	"github.com/axelarnetwork/dicegame/vald/dice/game"
	"github.com/axelarnetwork/dicegame/vald/dice/journal"
	"github.com/axelarnetwork/dicegame/vald/evm/rpc"
	"github.com/axelarnetwork/dicegame/x/dice/types"
)

// Snapshot is the state of the player's bet at a given block
type Snapshot struct {
	CurrentBlock uint64
	FutureBlocks uint64
	Bet          types.BetRecord
	Window       types.WindowState
	Status       types.BetStatus
}

// TargetBlock returns the number of the block deciding the bet, if there is one
func (s Snapshot) TargetBlock() (uint64, bool) {
	target := s.Bet.TargetBlock(s.FutureBlocks)
	if target == nil {
		return 0, false
	}

	return *target, true
}

// Mgr plays the dice game for a single account
type Mgr struct {
	chain       rpc.Client
	game        game.Game
	broadcaster broadcast.Broadcaster
	journal     journal.Journal
	latest      LatestBlockCache
	metrics     *Metrics
	logger      log.Logger

	confirmations     uint64
	stake             *big.Int
	stalePendingAfter time.Duration
	pollBackOff       utils.BackOff

	betInFlight  atomic.Bool
	rollInFlight atomic.Bool

	statusLock  sync.Mutex
	status      types.BetStatus
	statusKnown bool

	now func() time.Time
}

// NewMgr returns a new Mgr instance
func NewMgr(
	chain rpc.Client,
	game game.Game,
	broadcaster broadcast.Broadcaster,
	journal journal.Journal,
	latest LatestBlockCache,
	metrics *Metrics,
	cfg config.ValdConfig,
	logger log.Logger,
) (*Mgr, error) {
	if err := cfg.DiceConfig.Validate(); err != nil {
		return nil, err
	}

	stake, err := types.EtherToWei(cfg.Stake)
	if err != nil {
		return nil, err
	}

	return &Mgr{
		chain:             chain,
		game:              game,
		broadcaster:       broadcaster,
		journal:           journal,
		latest:            latest,
		metrics:           metrics,
		logger:            logger.With("listener", "dice", "chain", cfg.Name),
		confirmations:     cfg.Confirmations,
		stake:             stake,
		stalePendingAfter: cfg.StalePendingAfter,
		pollBackOff:       utils.Capped(utils.LinearBackOff(cfg.PollInterval), cfg.MaxTimeout),
		now:               time.Now,
	}, nil
}

// Snapshot returns the state of the player's bet at the latest block
func (mgr *Mgr) Snapshot(ctx context.Context) (Snapshot, error) {
	return mgr.snapshot(ctx, nil, mgr.betInFlight.Load(), mgr.rollInFlight.Load())
}

// ProcessNewBlock re-evaluates the betting window when the chain reaches a new block
func (mgr *Mgr) ProcessNewBlock(ctx context.Context, blockNumber uint64) error {
	if !mgr.latest.Set(blockNumber) {
		return nil
	}

	snapshot, err := mgr.snapshot(ctx, &blockNumber, mgr.betInFlight.Load(), mgr.rollInFlight.Load())
	if err != nil {
		return errorsmod.Wrapf(err, "failed to evaluate block %d", blockNumber)
	}

	if snapshot.Bet.HasBet() && !snapshot.Bet.Rolled {
		if err := mgr.reconcilePending(ctx, snapshot.Bet); err != nil {
			mgr.logger.Error(err.Error(), errors2.KeyVals(err)...)
		}
	}

	mgr.updateStatus(snapshot)

	switch {
	case snapshot.Window.WindowNotYetOpen:
		mgr.logger.Debug(fmt.Sprintf("wait for %d blocks before rolling", snapshot.Window.BlocksUntilOpen), "block", blockNumber)
	case snapshot.Window.WindowMissed:
		mgr.logger.Debug("the deciding block is no longer retrievable, the bet can no longer be rolled", "block", blockNumber)
	case !snapshot.Window.RollDisabled:
		mgr.logger.Debug("the dice can be rolled", "block", blockNumber)
	}

	return nil
}

// PlaceBet bets the configured stake on guess
func (mgr *Mgr) PlaceBet(ctx context.Context, guess int64) (common.Hash, error) {
	number, err := types.ValidateGuess(guess)
	if err != nil {
		return common.Hash{}, err
	}

	if !mgr.betInFlight.CompareAndSwap(false, true) {
		return common.Hash{}, errorsmod.Wrap(types.ErrSubmissionInFlight, "a bet is already being placed")
	}
	defer mgr.betInFlight.Store(false)

	snapshot, err := mgr.snapshot(ctx, nil, false, mgr.rollInFlight.Load())
	if err != nil {
		return common.Hash{}, err
	}

	if snapshot.Window.BetDisabled {
		return common.Hash{}, errors2.With(
			errorsmod.Wrapf(types.ErrBetPending, "bet on block %d is still open", snapshot.Bet.BlockNumber),
			"status", snapshot.Status.String(),
		)
	}

	txHash, err := mgr.broadcaster.Broadcast(ctx, func(ctx context.Context) (common.Hash, error) {
		return mgr.game.PlaceBet(ctx, number, mgr.stake)
	})
	mgr.metrics.observeSubmission("bet", err)
	if err != nil {
		return common.Hash{}, errorsmod.Wrap(err, "failed to place bet")
	}

	mgr.logger.Info("bet placed", "guess", number, "stake", types.WeiToEther(mgr.stake), "tx_hash", txHash.Hex())
	return txHash, nil
}

// Roll reveals the deciding block of the player's open bet. The header is only submitted once it matches its claimed hash
func (mgr *Mgr) Roll(ctx context.Context) (journal.Entry, error) {
	if !mgr.rollInFlight.CompareAndSwap(false, true) {
		return journal.Entry{}, errorsmod.Wrap(types.ErrSubmissionInFlight, "the dice are already rolling")
	}
	defer mgr.rollInFlight.Store(false)

	snapshot, err := mgr.snapshot(ctx, nil, mgr.betInFlight.Load(), false)
	if err != nil {
		return journal.Entry{}, err
	}

	target, err := mgr.checkRollable(snapshot)
	if err != nil {
		return journal.Entry{}, err
	}

	if err := mgr.checkJournal(ctx, snapshot.Bet); err != nil {
		return journal.Entry{}, err
	}

	encoded, err := mgr.VerifyBlock(ctx, target)
	if err != nil {
		return journal.Entry{}, err
	}

	txHash, err := mgr.broadcaster.Broadcast(ctx, func(ctx context.Context) (common.Hash, error) {
		return mgr.game.RollTheDice(ctx, encoded)
	})
	mgr.metrics.observeSubmission("roll", err)
	if err != nil {
		return journal.Entry{}, errorsmod.Wrap(err, "failed to roll the dice")
	}

	entry := journal.Entry{
		Player:      mgr.game.Account(),
		BetBlock:    snapshot.Bet.BlockNumber,
		TxHash:      txHash,
		Status:      journal.Pending,
		SubmittedAt: mgr.now(),
	}
	if err := mgr.journal.Put(entry); err != nil {
		return entry, errorsmod.Wrapf(err, "failed to journal reveal %s", txHash.Hex())
	}

	mgr.logger.Info("dice rolled", "bet_block", entry.BetBlock, "target_block", target, "tx_hash", txHash.Hex())
	return entry, nil
}

// ConfirmRoll waits until the reveal is final and records its outcome in the journal
func (mgr *Mgr) ConfirmRoll(ctx context.Context, entry journal.Entry) (*geth.Receipt, error) {
	receipt, err := mgr.AwaitReceipt(ctx, entry.TxHash)
	switch {
	case errors.Is(err, types.ErrTxFailed):
		entry.Status = journal.Failed
	case err != nil:
		return nil, err
	default:
		entry.Status = journal.Confirmed
	}

	if putErr := mgr.journal.Put(entry); putErr != nil {
		return nil, errorsmod.Wrapf(putErr, "failed to journal reveal %s", entry.TxHash.Hex())
	}

	return receipt, err
}

// AwaitReceipt polls the chain until the transaction is mined and final
func (mgr *Mgr) AwaitReceipt(ctx context.Context, txHash common.Hash) (*geth.Receipt, error) {
	for attempt := 0; ; attempt++ {
		receipt, err := mgr.finalReceipt(ctx, txHash)
		if err != nil {
			return nil, err
		}

		if receipt != nil {
			if receipt.Status != geth.ReceiptStatusSuccessful {
				return receipt, errors2.With(
					errorsmod.Wrapf(types.ErrTxFailed, "transaction %s reverted", txHash.Hex()),
					"block", receipt.BlockNumber.String(),
				)
			}

			return receipt, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(mgr.pollBackOff(attempt)):
		}
	}
}

// VerifyBlock fetches the given block and returns its encoded header if it matches the block hash reported by the chain
func (mgr *Mgr) VerifyBlock(ctx context.Context, blockNumber uint64) ([]byte, error) {
	header, err := mgr.chain.HeaderByNumber(ctx, new(big.Int).SetUint64(blockNumber))
	if errors.Is(err, ethereum.NotFound) {
		err = errorsmod.Wrapf(types.ErrBlockNotAvailable, "block %d is not mined yet", blockNumber)
	}
	if err != nil {
		mgr.metrics.observeVerification(err)
		return nil, err
	}

	encoded, err := verifyHeader(blockNumber, header)
	mgr.metrics.observeVerification(err)
	if err != nil {
		mgr.logger.Error("block header does not match its hash", append([]interface{}{"block", blockNumber, "error", err.Error()}, errors2.KeyVals(err)...)...)
		return nil, err
	}

	return encoded, nil
}

// VerifyBlocks verifies the given blocks in a single batch
func (mgr *Mgr) VerifyBlocks(ctx context.Context, blockNumbers []uint64) ([]results.Result[[]byte], error) {
	headers, err := mgr.chain.HeadersByNumber(ctx, slices.Map(blockNumbers, func(n uint64) *big.Int { return new(big.Int).SetUint64(n) }))
	if err != nil {
		return nil, err
	}

	if len(headers) != len(blockNumbers) {
		return nil, fmt.Errorf("requested %d headers, received %d", len(blockNumbers), len(headers))
	}

	verified := make([]results.Result[[]byte], len(headers))
	for i, result := range headers {
		header, err := result.Result().Ok(), result.Result().Err()
		if errors.Is(err, ethereum.NotFound) {
			err = errorsmod.Wrapf(types.ErrBlockNotAvailable, "block %d is not mined yet", blockNumbers[i])
		}

		var encoded []byte
		if err == nil {
			encoded, err = verifyHeader(blockNumbers[i], header)
		}

		mgr.metrics.observeVerification(err)
		if err != nil {
			verified[i] = results.FromErr[[]byte](err)
			continue
		}
		verified[i] = results.FromOk(encoded)
	}

	return verified, nil
}

func verifyHeader(blockNumber uint64, header *rpc.Header) ([]byte, error) {
	blockHeader, err := header.ToBlockHeader()
	if err != nil {
		return nil, err
	}

	if blockHeader.Number.Cmp(new(big.Int).SetUint64(blockNumber)) != 0 {
		return nil, errorsmod.Wrapf(types.ErrInvalidHeader, "requested block %d, received block %s", blockNumber, blockHeader.Number)
	}

	return types.Verify(blockHeader, header.Hash)
}

func (mgr *Mgr) snapshot(ctx context.Context, currentBlock *uint64, betInFlight, rollInFlight bool) (Snapshot, error) {
	var (
		bet          types.BetRecord
		futureBlocks uint64
	)

	g, gCtx := errgroup.WithContext(ctx)
	if currentBlock == nil {
		g.Go(func() error {
			blockNumber, err := mgr.chain.BlockNumber(gCtx)
			if err != nil {
				return errorsmod.Wrap(err, "failed to get the latest block number")
			}

			mgr.latest.Set(blockNumber)
			currentBlock = &blockNumber
			return nil
		})
	}
	g.Go(func() (err error) {
		bet, err = mgr.game.Bet(gCtx, mgr.game.Account())
		return errorsmod.Wrap(err, "failed to get the bet record")
	})
	g.Go(func() (err error) {
		futureBlocks, err = mgr.game.FutureBlocks(gCtx)
		return errorsmod.Wrap(err, "failed to get the future blocks offset")
	})

	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}

	params := bet.Params(currentBlock, futureBlocks)
	params.BetInFlight = betInFlight
	params.RollInFlight = rollInFlight
	window := types.NewWindowState(params)

	return Snapshot{
		CurrentBlock: *currentBlock,
		FutureBlocks: futureBlocks,
		Bet:          bet,
		Window:       window,
		Status:       types.StatusOf(bet, window),
	}, nil
}

func (mgr *Mgr) checkRollable(snapshot Snapshot) (uint64, error) {
	target, ok := snapshot.TargetBlock()

	switch {
	case !ok:
		return 0, errorsmod.Wrap(types.ErrNoBet, "place a bet before rolling")
	case snapshot.Bet.Rolled:
		return 0, errorsmod.Wrapf(types.ErrAlreadyRolled, "bet on block %d was rolled %d", snapshot.Bet.BlockNumber, snapshot.Bet.RolledNumber)
	case snapshot.Window.WindowNotYetOpen:
		return 0, errors2.With(
			errorsmod.Wrapf(types.ErrBlockNotAvailable, "wait for %d blocks", snapshot.Window.BlocksUntilOpen),
			"target_block", target, "current_block", snapshot.CurrentBlock,
		)
	case snapshot.Window.WindowMissed:
		return 0, errors2.With(
			errorsmod.Wrapf(types.ErrBlockNotAvailable, "block %d is more than %d blocks old", target, types.RetrievableBlockHorizon),
			"target_block", target, "current_block", snapshot.CurrentBlock,
		)
	case snapshot.Window.RollDisabled:
		return 0, errorsmod.Wrap(types.ErrSubmissionInFlight, "rolling is disabled")
	default:
		return target, nil
	}
}

// checkJournal refuses a reveal while an earlier one for the same bet may still land
func (mgr *Mgr) checkJournal(ctx context.Context, bet types.BetRecord) error {
	entry, ok, err := mgr.journal.Get(mgr.game.Account(), bet.BlockNumber)
	if err != nil {
		return errorsmod.Wrap(err, "failed to read the roll journal")
	}
	if !ok {
		return nil
	}

	if entry.Status == journal.Pending {
		if entry, err = mgr.reconcile(ctx, entry); err != nil {
			return err
		}
	}

	switch entry.Status {
	case journal.Confirmed:
		return errorsmod.Wrapf(types.ErrAlreadyRolled, "reveal %s was confirmed", entry.TxHash.Hex())
	case journal.Pending:
		if age := mgr.now().Sub(entry.SubmittedAt); age < mgr.stalePendingAfter {
			return errors2.With(
				errorsmod.Wrapf(types.ErrSubmissionInFlight, "reveal %s is pending", entry.TxHash.Hex()),
				"submitted_at", entry.SubmittedAt.String(),
			)
		}

		mgr.logger.Info("replacing stale reveal", "tx_hash", entry.TxHash.Hex(), "bet_block", entry.BetBlock)
		return nil
	default:
		return nil
	}
}

func (mgr *Mgr) reconcilePending(ctx context.Context, bet types.BetRecord) error {
	entry, ok, err := mgr.journal.Get(mgr.game.Account(), bet.BlockNumber)
	if err != nil || !ok || entry.Status != journal.Pending {
		return err
	}

	_, err = mgr.reconcile(ctx, entry)
	return err
}

// reconcile updates a pending entry once its receipt is final
func (mgr *Mgr) reconcile(ctx context.Context, entry journal.Entry) (journal.Entry, error) {
	receipt, err := mgr.finalReceipt(ctx, entry.TxHash)
	if err != nil || receipt == nil {
		return entry, err
	}

	entry.Status = journal.Failed
	if receipt.Status == geth.ReceiptStatusSuccessful {
		entry.Status = journal.Confirmed
	}

	if err := mgr.journal.Put(entry); err != nil {
		return entry, errorsmod.Wrapf(err, "failed to journal reveal %s", entry.TxHash.Hex())
	}

	mgr.logger.Info("reveal settled", "tx_hash", entry.TxHash.Hex(), "status", entry.Status.String())
	return entry, nil
}

// finalReceipt returns nil without error while the transaction is not mined or not final yet
func (mgr *Mgr) finalReceipt(ctx context.Context, txHash common.Hash) (*geth.Receipt, error) {
	receipt, err := mgr.chain.TransactionReceipt(ctx, txHash)
	if errors.Is(err, ethereum.NotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errorsmod.Wrapf(err, "failed to get receipt of %s", txHash.Hex())
	}

	final, err := mgr.chain.IsFinalized(ctx, mgr.confirmations, receipt)
	if err != nil {
		return nil, errorsmod.Wrapf(err, "failed to check finality of %s", txHash.Hex())
	}
	if !final {
		return nil, nil
	}

	return receipt, nil
}

func (mgr *Mgr) updateStatus(snapshot Snapshot) {
	mgr.metrics.observeSnapshot(snapshot)

	mgr.statusLock.Lock()
	defer mgr.statusLock.Unlock()

	prev, known := mgr.status, mgr.statusKnown
	mgr.status, mgr.statusKnown = snapshot.Status, true

	if !known || prev == snapshot.Status {
		return
	}

	if !prev.CanTransitionTo(snapshot.Status) {
		mgr.logger.Error("unexpected bet status transition", "from", prev.String(), "to", snapshot.Status.String(), "bet_block", snapshot.Bet.BlockNumber)
		return
	}

	mgr.logger.Info("bet status changed", "from", prev.String(), "to", snapshot.Status.String(), "bet_block", snapshot.Bet.BlockNumber)
}
