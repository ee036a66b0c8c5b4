package config

import (
	"fmt"
	"io"
	"reflect"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/ethereum/go-ethereum/common"
	"github.com/mitchellh/mapstructure"

	"github.com/axelarnetwork/dicegame/vald/evm/rpc"
)

// WriteTOML writes cfg as TOML keyed by its mapstructure tags, so the output can be read back with AddDecodeHooks.
// The default finality override is left out
func WriteTOML(w io.Writer, cfg interface{}) error {
	table, err := toTable(cfg)
	if err != nil {
		return err
	}

	return toml.NewEncoder(w).Encode(table)
}

// toTable maps cfg by its mapstructure tags. Nested config sections become nested tables
func toTable(cfg interface{}) (map[string]interface{}, error) {
	var table map[string]interface{}
	if err := mapstructure.Decode(cfg, &table); err != nil {
		return nil, err
	}

	return convertTable(table)
}

func convertTable(table map[string]interface{}) (map[string]interface{}, error) {
	for key, value := range table {
		converted, err := tomlValue(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: %w", key, err)
		}

		if converted == nil {
			delete(table, key)
			continue
		}

		table[key] = converted
	}

	return table, nil
}

func tomlValue(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case time.Duration:
		return v.String(), nil
	case common.Address:
		if v == (common.Address{}) {
			return "", nil
		}

		return v.Hex(), nil
	case rpc.FinalityOverride:
		switch v {
		case rpc.NoOverride:
			return nil, nil
		case rpc.Confirmation:
			return v.String(), nil
		default:
			return nil, fmt.Errorf("unknown finality override %d", v)
		}
	case map[string]interface{}:
		return convertTable(v)
	case nil:
		return nil, nil
	}

	if reflect.TypeOf(value).Kind() == reflect.Struct {
		return toTable(value)
	}

	return value, nil
}
