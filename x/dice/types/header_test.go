package types_test

import (
	"math/big"
	"testing"

	errorsmod "cosmossdk.io/errors"
	"github.com/axelarnetwork/utils/funcs"
	. "github.com/axelarnetwork/utils/test"
	"github.com/axelarnetwork/utils/test/rand"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/stretchr/testify/assert"

	"github.com/axelarnetwork/dicegame/utils/errors"
	"github.com/axelarnetwork/dicegame/x/dice/types"
)

var mainnetGenesisHash = common.HexToHash("0xd4e56740f876aef8c010b86a40d5f56745a118d0906a34e69aec8c0db1cb8fa3")

func mainnetGenesis() types.BlockHeader {
	return types.BlockHeader{
		UncleHash:   common.HexToHash("0x1dcc4de8dec75d7aab85b567b6ccd41ad312451b948a7413f0a142fd40d49347"),
		Root:        common.HexToHash("0xd7f8974fb5ac78d9ac099b9ad5018bedc2ce0a72dad1827a1709da30580f0544"),
		TxHash:      common.HexToHash("0x56e81f171bcc55a6ff8345e692c0f86e5b48e01b996cadc001622fb5e363b421"),
		ReceiptHash: common.HexToHash("0x56e81f171bcc55a6ff8345e692c0f86e5b48e01b996cadc001622fb5e363b421"),
		Difficulty:  big.NewInt(0x400000000),
		Number:      big.NewInt(0),
		GasLimit:    big.NewInt(5000),
		GasUsed:     big.NewInt(0),
		Time:        big.NewInt(0),
		Extra:       hexutil.MustDecode("0x11bbe8db4e347b4e8c937c1c8370e4b5ed33adb3db69cbdb7a38e1e50b1b82fa"),
		Nonce:       ethtypes.EncodeNonce(0x42),
	}
}

func TestEncode_MainnetGenesis(t *testing.T) {
	header := mainnetGenesis()
	encoded := types.Encode(header)

	assert.Len(t, encoded, 535)
	assert.Equal(t, []byte{0xf9, 0x02, 0x14}, encoded[:3])
	assert.Equal(t, mainnetGenesisHash, types.Hash(encoded))

	verified, err := types.Verify(header, mainnetGenesisHash)
	assert.NoError(t, err)
	assert.Equal(t, encoded, verified)
}

func TestEncode_Deterministic(t *testing.T) {
	header := randomHeader(int(rand.I64Between(0, 7)))

	first := types.Encode(header)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, types.Encode(header))
	}
}

func TestEncode_ZeroQuantitiesAreEmptyStrings(t *testing.T) {
	header := mainnetGenesis()

	var fields [][]byte
	assert.NoError(t, rlp.DecodeBytes(types.Encode(header), &fields))
	assert.Len(t, fields, 15)
	assert.Empty(t, fields[8], "number")
	assert.Empty(t, fields[10], "gas used")
	assert.Empty(t, fields[11], "timestamp")
	assert.Equal(t, []byte{0x04, 0x00, 0x00, 0x00, 0x00}, fields[7], "difficulty")
	assert.Equal(t, []byte{0x13, 0x88}, fields[9], "gas limit")
	assert.Len(t, fields[14], 8, "nonce keeps its fixed width")
}

func TestEncodeHexFields(t *testing.T) {
	encoded, err := types.EncodeHexFields([]string{"0x0", "0xabc", "0x01"})

	assert.NoError(t, err)
	assert.Equal(t, []byte{0xc5, 0x80, 0x82, 0x0a, 0xbc, 0x01}, encoded)
}

func TestNormalizeHexField(t *testing.T) {
	testCases := []struct {
		field    string
		expected []byte
	}{
		{"0x0", []byte{}},
		{"0x", []byte{}},
		{"0x1", []byte{0x01}},
		{"0xabc", []byte{0x0a, 0xbc}},
		{"0x00", []byte{0x00}},
		{"0x0000000000000042", []byte{0, 0, 0, 0, 0, 0, 0, 0x42}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.field, func(t *testing.T) {
			actual, err := types.NormalizeHexField(testCase.field)
			assert.NoError(t, err)
			assert.Equal(t, testCase.expected, actual)
		})
	}

	for _, invalid := range []string{"", "abc", "0xzz", "-0x1"} {
		_, err := types.NormalizeHexField(invalid)
		assert.ErrorIs(t, err, types.ErrInvalidHeader, invalid)
	}
}

func TestHexFields_MatchTypedEncoding(t *testing.T) {
	for optional := 0; optional <= 6; optional++ {
		header := randomHeader(optional)

		encoded, err := types.EncodeHexFields(header.HexFields())
		assert.NoError(t, err)
		assert.Equal(t, types.Encode(header), encoded)
	}

	encoded, err := types.EncodeHexFields(mainnetGenesis().HexFields())
	assert.NoError(t, err)
	assert.Equal(t, mainnetGenesisHash, types.Hash(encoded))
}

func TestHash_MatchesGethHeaderHash(t *testing.T) {
	for optional := 0; optional <= 6; optional++ {
		header := randomHeader(optional)
		assert.Equal(t, toGethHeader(header).Hash(), types.Hash(types.Encode(header)), "optional fields: %d", optional)
	}
}

func TestVerify(t *testing.T) {
	var (
		header  types.BlockHeader
		claimed common.Hash
	)

	Given("a header of a mined block", func() {
		header = randomHeader(int(rand.I64Between(0, 7)))
		claimed = toGethHeader(header).Hash()
	}).
		Branch(
			When("the header is unchanged", func() {}).
				Then("verification returns the encoded header", func(t *testing.T) {
					encoded, err := types.Verify(header, claimed)
					assert.NoError(t, err)
					assert.Equal(t, funcs.Must(rlp.EncodeToBytes(toGethHeader(header))), encoded)
				}),

			When("the beneficiary is forged", func() {
				header.Coinbase = common.BytesToAddress(rand.Bytes(common.AddressLength))
			}).
				Then("verification fails with a hash mismatch", func(t *testing.T) {
					encoded, err := types.Verify(header, claimed)
					assert.Nil(t, encoded)
					assert.ErrorIs(t, err, types.ErrHashMismatch)
					assert.True(t, errors.Is[*errorsmod.Error](err))

					keyVals := errors.KeyVals(err)
					assert.Equal(t, []interface{}{"computed", types.Hash(types.Encode(header)).Hex(), "claimed", claimed.Hex()}, keyVals)
				}),

			When("an optional field is dropped", func() {
				if header.BaseFee == nil {
					header.BaseFee = big.NewInt(rand.PosI64())
					return
				}

				header.BaseFee = nil
				header.WithdrawalsHash = nil
				header.BlobGasUsed = nil
				header.ExcessBlobGas = nil
				header.ParentBeaconRoot = nil
				header.RequestsHash = nil
			}).
				Then("verification fails with a hash mismatch", func(t *testing.T) {
					_, err := types.Verify(header, claimed)
					assert.ErrorIs(t, err, types.ErrHashMismatch)
				}),
		).
		Run(t, 20)
}

func TestBlockHeader_ValidateBasic(t *testing.T) {
	assert.NoError(t, mainnetGenesis().ValidateBasic())
	assert.NoError(t, randomHeader(6).ValidateBasic())

	missingNumber := mainnetGenesis()
	missingNumber.Number = nil
	assert.ErrorIs(t, missingNumber.ValidateBasic(), types.ErrInvalidHeader)

	negativeGas := mainnetGenesis()
	negativeGas.GasUsed = big.NewInt(-1)
	assert.ErrorIs(t, negativeGas.ValidateBasic(), types.ErrInvalidHeader)

	gap := randomHeader(0)
	withdrawals := common.BytesToHash(rand.Bytes(common.HashLength))
	gap.WithdrawalsHash = &withdrawals
	assert.ErrorIs(t, gap.ValidateBasic(), types.ErrInvalidHeader)
}

// randomHeader returns a random header with the first n optional fields set
func randomHeader(n int) types.BlockHeader {
	header := types.BlockHeader{
		ParentHash:  common.BytesToHash(rand.Bytes(common.HashLength)),
		UncleHash:   common.BytesToHash(rand.Bytes(common.HashLength)),
		Coinbase:    common.BytesToAddress(rand.Bytes(common.AddressLength)),
		Root:        common.BytesToHash(rand.Bytes(common.HashLength)),
		TxHash:      common.BytesToHash(rand.Bytes(common.HashLength)),
		ReceiptHash: common.BytesToHash(rand.Bytes(common.HashLength)),
		Bloom:       ethtypes.BytesToBloom(rand.Bytes(ethtypes.BloomByteLength)),
		Difficulty:  big.NewInt(rand.I64Between(0, 2)),
		Number:      big.NewInt(rand.PosI64()),
		GasLimit:    big.NewInt(rand.I64Between(1, 30_000_000)),
		GasUsed:     big.NewInt(rand.I64Between(0, 30_000_000)),
		Time:        big.NewInt(rand.PosI64()),
		Extra:       rand.Bytes(int(rand.I64Between(0, 33))),
		MixDigest:   common.BytesToHash(rand.Bytes(common.HashLength)),
		Nonce:       ethtypes.EncodeNonce(uint64(rand.I64Between(0, 2))),
	}

	hash := func() *common.Hash {
		h := common.BytesToHash(rand.Bytes(common.HashLength))
		return &h
	}

	setters := []func(){
		func() { header.BaseFee = big.NewInt(rand.I64Between(0, 1_000_000_000_000)) },
		func() { header.WithdrawalsHash = hash() },
		func() { header.BlobGasUsed = big.NewInt(rand.I64Between(0, 1_000_000)) },
		func() { header.ExcessBlobGas = big.NewInt(rand.I64Between(0, 1_000_000)) },
		func() { header.ParentBeaconRoot = hash() },
		func() { header.RequestsHash = hash() },
	}
	for i := 0; i < n && i < len(setters); i++ {
		setters[i]()
	}

	return header
}

func toGethHeader(h types.BlockHeader) *ethtypes.Header {
	optionalUint64 := func(x *big.Int) *uint64 {
		if x == nil {
			return nil
		}

		v := x.Uint64()
		return &v
	}

	return &ethtypes.Header{
		ParentHash:       h.ParentHash,
		UncleHash:        h.UncleHash,
		Coinbase:         h.Coinbase,
		Root:             h.Root,
		TxHash:           h.TxHash,
		ReceiptHash:      h.ReceiptHash,
		Bloom:            h.Bloom,
		Difficulty:       h.Difficulty,
		Number:           h.Number,
		GasLimit:         h.GasLimit.Uint64(),
		GasUsed:          h.GasUsed.Uint64(),
		Time:             h.Time.Uint64(),
		Extra:            h.Extra,
		MixDigest:        h.MixDigest,
		Nonce:            h.Nonce,
		BaseFee:          h.BaseFee,
		WithdrawalsHash:  h.WithdrawalsHash,
		BlobGasUsed:      optionalUint64(h.BlobGasUsed),
		ExcessBlobGas:    optionalUint64(h.ExcessBlobGas),
		ParentBeaconRoot: h.ParentBeaconRoot,
		RequestsHash:     h.RequestsHash,
	}
}
