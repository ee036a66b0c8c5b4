package types

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// DiceConfig contains all dice game configurations
type DiceConfig struct {
	Name            string         `mapstructure:"name"`
	RPCAddr         string         `mapstructure:"rpc_addr"`
	ContractAddress common.Address `mapstructure:"contract_address"`
	// Confirmations is the number of blocks a header must be buried under before the daemon treats it as final
	Confirmations uint64 `mapstructure:"confirmations"`
	Stake         string `mapstructure:"stake"`
	Prize         string `mapstructure:"prize"`
}

// DefaultConfig returns a configuration populated with default values
func DefaultConfig() DiceConfig {
	return DiceConfig{
		Name:          "localhost",
		RPCAddr:       "http://127.0.0.1:8545",
		Confirmations: 1,
		Stake:         DefaultStake,
		Prize:         DefaultPrize,
	}
}

// Validate returns an error if the config cannot be used to play
func (c DiceConfig) Validate() error {
	if c.RPCAddr == "" {
		return fmt.Errorf("rpc address must be set for chain %s", c.Name)
	}

	if c.ContractAddress == (common.Address{}) {
		return fmt.Errorf("contract address must be set for chain %s", c.Name)
	}

	if c.Confirmations == 0 {
		return fmt.Errorf("confirmations must be at least 1 for chain %s", c.Name)
	}

	if _, err := EtherToWei(c.Stake); err != nil {
		return fmt.Errorf("invalid stake for chain %s: %w", c.Name, err)
	}

	if _, err := EtherToWei(c.Prize); err != nil {
		return fmt.Errorf("invalid prize for chain %s: %w", c.Name, err)
	}

	return nil
}
