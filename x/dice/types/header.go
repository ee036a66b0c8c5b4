package types

import (
	"fmt"
	"math/big"

	errorsmod "cosmossdk.io/errors"
	"github.com/axelarnetwork/utils/funcs"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/axelarnetwork/dicegame/utils/errors"
)

// BlockHeader is an EVM block header in canonical field order.
// Optional fields are appended to the encoding only when set, and only in the order they were introduced by chain upgrades
type BlockHeader struct {
	ParentHash  common.Hash
	UncleHash   common.Hash
	Coinbase    common.Address
	Root        common.Hash
	TxHash      common.Hash
	ReceiptHash common.Hash
	Bloom       ethtypes.Bloom
	Difficulty  *big.Int
	Number      *big.Int
	GasLimit    *big.Int
	GasUsed     *big.Int
	Time        *big.Int
	Extra       []byte
	MixDigest   common.Hash
	Nonce       ethtypes.BlockNonce

	// London
	BaseFee *big.Int
	// Shanghai
	WithdrawalsHash *common.Hash
	// Cancun
	BlobGasUsed      *big.Int
	ExcessBlobGas    *big.Int
	ParentBeaconRoot *common.Hash
	// Prague
	RequestsHash *common.Hash
}

// ValidateBasic returns an error if the header cannot be encoded canonically
func (h BlockHeader) ValidateBasic() error {
	required := []struct {
		name  string
		value *big.Int
	}{
		{"difficulty", h.Difficulty},
		{"number", h.Number},
		{"gas limit", h.GasLimit},
		{"gas used", h.GasUsed},
		{"timestamp", h.Time},
	}

	for _, field := range required {
		if field.value == nil {
			return errorsmod.Wrapf(ErrInvalidHeader, "%s must be set", field.name)
		}

		if field.value.Sign() < 0 {
			return errorsmod.Wrapf(ErrInvalidHeader, "%s must not be negative", field.name)
		}
	}

	present := h.optionalPresence()
	for i := 1; i < len(present); i++ {
		if present[i].set && !present[i-1].set {
			return errorsmod.Wrapf(ErrInvalidHeader, "%s is set but %s is missing", present[i].name, present[i-1].name)
		}
	}

	for _, field := range []struct {
		name  string
		value *big.Int
	}{{"base fee", h.BaseFee}, {"blob gas used", h.BlobGasUsed}, {"excess blob gas", h.ExcessBlobGas}} {
		if field.value != nil && field.value.Sign() < 0 {
			return errorsmod.Wrapf(ErrInvalidHeader, "%s must not be negative", field.name)
		}
	}

	return nil
}

type presence struct {
	name string
	set  bool
}

func (h BlockHeader) optionalPresence() []presence {
	return []presence{
		{"base fee", h.BaseFee != nil},
		{"withdrawals root", h.WithdrawalsHash != nil},
		{"blob gas used", h.BlobGasUsed != nil},
		{"excess blob gas", h.ExcessBlobGas != nil},
		{"parent beacon root", h.ParentBeaconRoot != nil},
		{"requests hash", h.RequestsHash != nil},
	}
}

// Fields returns the byte strings of the header in canonical order.
// Quantities are minimal big-endian, zero is the empty string
func (h BlockHeader) Fields() [][]byte {
	fields := [][]byte{
		h.ParentHash.Bytes(),
		h.UncleHash.Bytes(),
		h.Coinbase.Bytes(),
		h.Root.Bytes(),
		h.TxHash.Bytes(),
		h.ReceiptHash.Bytes(),
		h.Bloom.Bytes(),
		quantity(h.Difficulty),
		quantity(h.Number),
		quantity(h.GasLimit),
		quantity(h.GasUsed),
		quantity(h.Time),
		h.Extra,
		h.MixDigest.Bytes(),
		h.Nonce[:],
	}

	for _, field := range h.optionalFields() {
		if field == nil {
			break
		}
		fields = append(fields, field)
	}

	return fields
}

// optionalFields returns the encoded optional fields in upgrade order, nil for the ones that are not set
func (h BlockHeader) optionalFields() [][]byte {
	return [][]byte{
		optionalQuantity(h.BaseFee),
		optionalHash(h.WithdrawalsHash),
		optionalQuantity(h.BlobGasUsed),
		optionalQuantity(h.ExcessBlobGas),
		optionalHash(h.ParentBeaconRoot),
		optionalHash(h.RequestsHash),
	}
}

func optionalQuantity(x *big.Int) []byte {
	if x == nil {
		return nil
	}

	return quantity(x)
}

func optionalHash(hash *common.Hash) []byte {
	if hash == nil {
		return nil
	}

	return hash.Bytes()
}

func quantity(x *big.Int) []byte {
	if x == nil || x.Sign() == 0 {
		return []byte{}
	}

	return x.Bytes()
}

// Encode returns the canonical RLP encoding of the header
func Encode(header BlockHeader) []byte {
	return encodeFields(header.Fields())
}

func encodeFields(fields [][]byte) []byte {
	// encoding a list of byte strings cannot fail
	return funcs.Must(rlp.EncodeToBytes(fields))
}

// Hash returns the Keccak-256 digest of the encoded header
func Hash(encoded []byte) common.Hash {
	return crypto.Keccak256Hash(encoded)
}

// Verify encodes the header and checks that it hashes to the claimed block hash.
// On success it returns the encoded header, ready to be submitted as the reveal payload
func Verify(header BlockHeader, claimed common.Hash) ([]byte, error) {
	encoded := Encode(header)

	if computed := Hash(encoded); computed != claimed {
		return nil, errors.With(
			errorsmod.Wrapf(ErrHashMismatch, "block %s", numberString(header.Number)),
			"computed", computed.Hex(),
			"claimed", claimed.Hex(),
		)
	}

	return encoded, nil
}

func numberString(n *big.Int) string {
	if n == nil {
		return "<nil>"
	}

	return fmt.Sprintf("%d", n)
}
