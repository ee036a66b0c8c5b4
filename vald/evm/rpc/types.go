package rpc

import (
	"math/big"

	errorsmod "cosmossdk.io/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"

	dice "github.com/axelarnetwork/dicegame/x/dice/types"
)

// Header represents a block header in any EVM blockchain, as returned by eth_getBlockByNumber
type Header struct {
	ParentHash  common.Hash      `json:"parentHash"       gencodec:"required"`
	UncleHash   common.Hash      `json:"sha3Uncles"       gencodec:"required"`
	Coinbase    common.Address   `json:"miner"`
	Root        common.Hash      `json:"stateRoot"        gencodec:"required"`
	TxHash      common.Hash      `json:"transactionsRoot" gencodec:"required"`
	ReceiptHash common.Hash      `json:"receiptsRoot"     gencodec:"required"`
	Bloom       types.Bloom      `json:"logsBloom"        gencodec:"required"`
	Difficulty  *hexutil.Big     `json:"difficulty"       gencodec:"required"`
	Number      *hexutil.Big     `json:"number"           gencodec:"required"`
	GasLimit    *hexutil.Big     `json:"gasLimit"         gencodec:"required"`
	GasUsed     *hexutil.Big     `json:"gasUsed"          gencodec:"required"`
	Time        *hexutil.Big     `json:"timestamp"        gencodec:"required"`
	Extra       hexutil.Bytes    `json:"extraData"        gencodec:"required"`
	MixDigest   common.Hash      `json:"mixHash"`
	Nonce       types.BlockNonce `json:"nonce"`
	Hash        common.Hash      `json:"hash"`

	BaseFee          *hexutil.Big `json:"baseFeePerGas"         rlp:"optional"`
	WithdrawalsHash  *common.Hash `json:"withdrawalsRoot"       rlp:"optional"`
	BlobGasUsed      *hexutil.Big `json:"blobGasUsed"           rlp:"optional"`
	ExcessBlobGas    *hexutil.Big `json:"excessBlobGas"         rlp:"optional"`
	ParentBeaconRoot *common.Hash `json:"parentBeaconBlockRoot" rlp:"optional"`
	RequestsHash     *common.Hash `json:"requestsHash"          rlp:"optional"`
}

// ToBlockHeader converts the JSON-RPC representation into the header that gets encoded and verified
func (h Header) ToBlockHeader() (dice.BlockHeader, error) {
	required := []struct {
		name  string
		value *hexutil.Big
	}{
		{"difficulty", h.Difficulty},
		{"number", h.Number},
		{"gasLimit", h.GasLimit},
		{"gasUsed", h.GasUsed},
		{"timestamp", h.Time},
	}
	for _, field := range required {
		if field.value == nil {
			return dice.BlockHeader{}, errorsmod.Wrapf(dice.ErrInvalidHeader, "missing %s in block %s", field.name, h.Hash.Hex())
		}
	}

	header := dice.BlockHeader{
		ParentHash:       h.ParentHash,
		UncleHash:        h.UncleHash,
		Coinbase:         h.Coinbase,
		Root:             h.Root,
		TxHash:           h.TxHash,
		ReceiptHash:      h.ReceiptHash,
		Bloom:            h.Bloom,
		Difficulty:       h.Difficulty.ToInt(),
		Number:           h.Number.ToInt(),
		GasLimit:         h.GasLimit.ToInt(),
		GasUsed:          h.GasUsed.ToInt(),
		Time:             h.Time.ToInt(),
		Extra:            h.Extra,
		MixDigest:        h.MixDigest,
		Nonce:            h.Nonce,
		BaseFee:          toInt(h.BaseFee),
		WithdrawalsHash:  h.WithdrawalsHash,
		BlobGasUsed:      toInt(h.BlobGasUsed),
		ExcessBlobGas:    toInt(h.ExcessBlobGas),
		ParentBeaconRoot: h.ParentBeaconRoot,
		RequestsHash:     h.RequestsHash,
	}

	if err := header.ValidateBasic(); err != nil {
		return dice.BlockHeader{}, errorsmod.Wrapf(err, "block %s", h.Hash.Hex())
	}

	return header, nil
}

func toInt(x *hexutil.Big) *big.Int {
	if x == nil {
		return nil
	}

	return x.ToInt()
}
