package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axelarnetwork/dicegame/vald/evm/rpc"
	dice "github.com/axelarnetwork/dicegame/x/dice/types"
)

func TestConfigFile(t *testing.T) {
	fp, err := buildTestdataFilePath()
	assert.NoError(t, err)

	v := viper.New()
	v.SetConfigFile(filepath.Join(fp, "config.toml"))
	assert.NoError(t, v.ReadInConfig())

	conf := DefaultValdConfig()
	assert.NoError(t, v.Unmarshal(&conf, AddDecodeHooks))

	assert.Equal(t, 99*time.Hour, conf.MaxTimeout)
	assert.Equal(t, 1*time.Nanosecond, conf.MinSleepBeforeRetry)
	assert.Equal(t, 5, conf.MaxRetries)
	assert.Equal(t, rpc.Confirmation, conf.FinalityOverride)
	assert.Equal(t, 500*time.Millisecond, conf.PollInterval)
	assert.Equal(t, "/var/lib/diced/journal", conf.JournalDir)

	assert.Equal(t, "sepolia", conf.Name)
	assert.Equal(t, common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3"), conf.ContractAddress)
	assert.EqualValues(t, 3, conf.Confirmations)
	assert.Equal(t, "0.01", conf.Stake)
	assert.Equal(t, dice.DefaultPrize, conf.Prize)
	assert.NoError(t, conf.DiceConfig.Validate())
}

func TestWriteTOML_RoundTrip(t *testing.T) {
	expected := DefaultValdConfig()
	expected.ContractAddress = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	expected.FinalityOverride = rpc.Confirmation
	expected.KeyFile = "/home/player/.diced/key"

	var buf bytes.Buffer
	require.NoError(t, WriteTOML(&buf, expected))
	assert.Contains(t, buf.String(), `finality_override = "confirmation"`)
	assert.Contains(t, buf.String(), `max_timeout = "15s"`)

	v := viper.New()
	v.SetConfigType("toml")
	require.NoError(t, v.ReadConfig(&buf))

	var actual ValdConfig
	require.NoError(t, v.Unmarshal(&actual, AddDecodeHooks))
	assert.Equal(t, expected, actual)
}

func TestWriteTOML_NoOverrideOmitted(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTOML(&buf, DefaultValdConfig()))
	assert.NotContains(t, buf.String(), "finality_override")

	v := viper.New()
	v.SetConfigType("toml")
	require.NoError(t, v.ReadConfig(&buf))

	actual := DefaultValdConfig()
	actual.FinalityOverride = rpc.Confirmation
	require.NoError(t, v.Unmarshal(&actual, AddDecodeHooks))
	assert.Equal(t, rpc.Confirmation, actual.FinalityOverride)
	assert.Equal(t, common.Address{}, actual.ContractAddress)
}

func TestWriteTOML_Sections(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTOML(&buf, DefaultValdConfig()))
	assert.Contains(t, buf.String(), "[broadcast]")
	assert.Contains(t, buf.String(), "[dice]")
	assert.Contains(t, buf.String(), `contract_address = ""`)
	assert.Contains(t, buf.String(), `poll_interval = "2s"`)

	cfg := DefaultValdConfig()
	cfg.FinalityOverride = rpc.FinalityOverride(42)
	assert.ErrorContains(t, WriteTOML(&bytes.Buffer{}, cfg), "finality_override")
}

func TestDecodeHooks_InvalidValues(t *testing.T) {
	for key, value := range map[string]string{
		"finality_override":     "finalized-ish",
		"dice.contract_address": "0x1234",
	} {
		t.Run(key, func(t *testing.T) {
			v := viper.New()
			v.Set(key, value)

			conf := DefaultValdConfig()
			assert.Error(t, v.Unmarshal(&conf, AddDecodeHooks))
		})
	}
}

func buildTestdataFilePath() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	fp := filepath.Join(wd, "testdata")
	return fp, nil
}
