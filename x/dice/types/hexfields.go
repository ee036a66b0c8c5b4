package types

import (
	"math/big"
	"strings"

	errorsmod "cosmossdk.io/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// NormalizeHexField converts a 0x-prefixed hex value as returned by JSON-RPC into the bytes that get RLP encoded.
// The literal zero quantity "0x0" becomes the empty string and odd-length values are left-padded with a zero nibble
func NormalizeHexField(field string) ([]byte, error) {
	if !strings.HasPrefix(field, "0x") && !strings.HasPrefix(field, "0X") {
		return nil, errorsmod.Wrapf(ErrInvalidHeader, "field %q is missing the 0x prefix", field)
	}

	digits := field[2:]
	switch {
	case digits == "0":
		return []byte{}, nil
	case len(digits)%2 == 1:
		digits = "0" + digits
	}

	bz, err := hexutil.Decode("0x" + digits)
	if err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidHeader, "field %q is not valid hex: %s", field, err)
	}

	return bz, nil
}

// HexFields renders the header fields the way a JSON-RPC node returns them, in canonical order.
// Quantities use the shortest hex form, so zero is "0x0" and odd lengths occur
func (h BlockHeader) HexFields() []string {
	fields := []string{
		h.ParentHash.Hex(),
		h.UncleHash.Hex(),
		hexutil.Encode(h.Coinbase.Bytes()),
		h.Root.Hex(),
		h.TxHash.Hex(),
		h.ReceiptHash.Hex(),
		hexutil.Encode(h.Bloom.Bytes()),
		hexQuantity(h.Difficulty),
		hexQuantity(h.Number),
		hexQuantity(h.GasLimit),
		hexQuantity(h.GasUsed),
		hexQuantity(h.Time),
		hexutil.Encode(h.Extra),
		h.MixDigest.Hex(),
		hexutil.Encode(h.Nonce[:]),
	}

	optional := []string{
		hexOptionalQuantity(h.BaseFee),
		hexOptionalHash(h.WithdrawalsHash),
		hexOptionalQuantity(h.BlobGasUsed),
		hexOptionalQuantity(h.ExcessBlobGas),
		hexOptionalHash(h.ParentBeaconRoot),
		hexOptionalHash(h.RequestsHash),
	}
	for _, field := range optional {
		if field == "" {
			break
		}

		fields = append(fields, field)
	}

	return fields
}

func hexOptionalQuantity(x *big.Int) string {
	if x == nil {
		return ""
	}

	return hexutil.EncodeBig(x)
}

func hexOptionalHash(hash *common.Hash) string {
	if hash == nil {
		return ""
	}

	return hash.Hex()
}

func hexQuantity(x *big.Int) string {
	if x == nil {
		return "0x0"
	}

	return hexutil.EncodeBig(x)
}

// EncodeHexFields normalizes every field and RLP encodes them as a list
func EncodeHexFields(fields []string) ([]byte, error) {
	normalized := make([][]byte, 0, len(fields))
	for i, field := range fields {
		bz, err := NormalizeHexField(field)
		if err != nil {
			return nil, errorsmod.Wrapf(err, "field %d", i)
		}

		normalized = append(normalized, bz)
	}

	return encodeFields(normalized), nil
}
