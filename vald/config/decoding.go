package config

import (
	"fmt"
	"reflect"

	"github.com/ethereum/go-ethereum/common"
	"github.com/mitchellh/mapstructure"

	"github.com/axelarnetwork/dicegame/vald/evm/rpc"
)

func stringToFinalityOverride(
	f reflect.Type,
	t reflect.Type,
	data interface{}) (interface{}, error) {
	if f.Kind() != reflect.String {
		return data, nil
	}

	if t != reflect.TypeOf(rpc.FinalityOverride(0)) {
		return data, nil
	}

	return rpc.ParseFinalityOverride(data.(string))
}

func stringToAddress(
	f reflect.Type,
	t reflect.Type,
	data interface{}) (interface{}, error) {
	if f.Kind() != reflect.String {
		return data, nil
	}

	if t != reflect.TypeOf(common.Address{}) {
		return data, nil
	}

	s := data.(string)
	if s == "" {
		return common.Address{}, nil
	}

	if !common.IsHexAddress(s) {
		return nil, fmt.Errorf("invalid address %q", s)
	}

	return common.HexToAddress(s), nil
}

// AddDecodeHooks adds decode hooks to the given config to correctly translate strings into FinalityOverride and common.Address
func AddDecodeHooks(cfg *mapstructure.DecoderConfig) {
	hooks := []mapstructure.DecodeHookFunc{
		stringToFinalityOverride,
		stringToAddress,
	}
	if cfg.DecodeHook != nil {
		hooks = append(hooks, cfg.DecodeHook)
	}

	cfg.DecodeHook = mapstructure.ComposeDecodeHookFunc(hooks...)
}
