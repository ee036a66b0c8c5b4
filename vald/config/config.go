package config

import (
	"time"

	"github.com/axelarnetwork/dicegame/vald/evm/rpc"
	dice "github.com/axelarnetwork/dicegame/x/dice/types"
)

// ValdConfig contains all necessary vald configurations
type ValdConfig struct {
	dice.DiceConfig   `mapstructure:"dice"`
	BroadcastConfig   `mapstructure:"broadcast"`
	FinalityOverride  rpc.FinalityOverride `mapstructure:"finality_override"`
	PollInterval      time.Duration        `mapstructure:"poll_interval"`
	MaxLatestBlockAge time.Duration        `mapstructure:"max_latest_block_age"` // If the latest block is older than this, the node is considered to be out of sync.
	HeaderCacheSize   int                  `mapstructure:"header_cache_size"`
	ReorgSafeDepth    uint64               `mapstructure:"reorg_safe_depth"` // Headers at least this deep below the latest block are cached.
	StalePendingAfter time.Duration        `mapstructure:"stale_pending_after"`
	JournalDir        string               `mapstructure:"journal_dir"`
	KeyFile           string               `mapstructure:"key_file"`
	MetricsAddr       string               `mapstructure:"metrics_addr"`
}

// DefaultValdConfig returns a configurations populated with default values
func DefaultValdConfig() ValdConfig {
	return ValdConfig{
		DiceConfig:        dice.DefaultConfig(),
		BroadcastConfig:   DefaultBroadcastConfig(),
		FinalityOverride:  rpc.NoOverride,
		PollInterval:      2 * time.Second,
		MaxLatestBlockAge: time.Minute,
		HeaderCacheSize:   1024,
		ReorgSafeDepth:    64,
		StalePendingAfter: 10 * time.Minute,
		MetricsAddr:       "127.0.0.1:26660",
	}
}

// BroadcastConfig is the configuration for transaction broadcasting
type BroadcastConfig struct {
	MaxRetries          int           `mapstructure:"max_retries"`
	MinSleepBeforeRetry time.Duration `mapstructure:"min_sleep_before_retry"`
	MaxTimeout          time.Duration `mapstructure:"max_timeout"`
}

// DefaultBroadcastConfig returns a configurations populated with default values
func DefaultBroadcastConfig() BroadcastConfig {
	return BroadcastConfig{
		MaxRetries:          3,
		MinSleepBeforeRetry: 5 * time.Second,
		MaxTimeout:          15 * time.Second,
	}
}
