package vald

import (
	"context"
	"crypto/ecdsa"
	"fmt"

	"cosmossdk.io/log"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/axelarnetwork/dicegame/vald/config"
	"github.com/axelarnetwork/dicegame/vald/dice"
	"github.com/axelarnetwork/dicegame/vald/dice/broadcast"
	"github.com/axelarnetwork/dicegame/vald/dice/game"
	"github.com/axelarnetwork/dicegame/vald/dice/journal"
	"github.com/axelarnetwork/dicegame/vald/evm/rpc"
)

// session holds every connection a command needs to play
type session struct {
	eth      *ethclient.Client
	chain    rpc.Client
	game     *game.DiceGame
	journal  *journal.BadgerJournal
	registry *prometheus.Registry
	mgr      *dice.Mgr
}

func newSession(ctx context.Context, valdCfg config.ValdConfig, logger log.Logger, signing bool) (*session, error) {
	if err := valdCfg.DiceConfig.Validate(); err != nil {
		return nil, err
	}

	key, err := loadKey(valdCfg.KeyFile, signing)
	if err != nil {
		return nil, err
	}

	ethClient, rpcClient, err := rpc.Dial(ctx, valdCfg.RPCAddr)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to dial %s", valdCfg.RPCAddr)
	}

	client, err := rpc.NewClient(ethClient, rpcClient, valdCfg.FinalityOverride)
	if err != nil {
		ethClient.Close()
		return nil, errors.Wrapf(err, "failed to create an RPC client for chain %s", valdCfg.Name)
	}

	chain, err := rpc.NewCachedClient(client, valdCfg.HeaderCacheSize, valdCfg.ReorgSafeDepth)
	if err != nil {
		client.Close()
		return nil, err
	}

	j, err := journal.Open(valdCfg.JournalDir)
	if err != nil {
		chain.Close()
		return nil, err
	}

	s := &session{
		eth:      ethClient,
		chain:    chain,
		game:     game.NewDiceGame(ethClient, valdCfg.ContractAddress, key),
		journal:  j,
		registry: prometheus.NewRegistry(),
	}

	s.mgr, err = dice.NewMgr(
		s.chain,
		s.game,
		broadcast.WithRetry(valdCfg.BroadcastConfig, logger),
		s.journal,
		dice.NewLatestBlockCache(),
		dice.NewMetrics(s.registry),
		valdCfg,
		logger,
	)
	if err != nil {
		s.Close()
		return nil, err
	}

	return s, nil
}

// Close releases the journal and the RPC connection
func (s *session) Close() {
	if err := s.journal.Close(); err != nil {
		fmt.Printf("failed to close the journal: %s\n", err.Error())
	}
	s.chain.Close()
}

func loadKey(keyFile string, signing bool) (*ecdsa.PrivateKey, error) {
	if keyFile == "" {
		if signing {
			return nil, fmt.Errorf("key_file must be set to send transactions")
		}

		return nil, nil
	}

	key, err := crypto.LoadECDSA(keyFile)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load the signing key from %s", keyFile)
	}

	return key, nil
}
