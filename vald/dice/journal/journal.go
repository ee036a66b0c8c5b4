package journal

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/ethereum/go-ethereum/common"
)

//go:generate moq -out ./mock/journal.go -pkg mock . Journal

var rollPrefix = []byte("roll/")

// Status is the state of a submitted reveal
type Status int

const (
	// Pending reveals were sent but their receipt has not been seen yet
	Pending Status = iota + 1
	// Confirmed reveals were mined successfully
	Confirmed
	// Failed reveals were mined and reverted, or never made it into a block
	Failed
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Confirmed:
		return "confirmed"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Entry records a reveal transaction sent for a bet
type Entry struct {
	Player      common.Address `json:"player"`
	BetBlock    uint64         `json:"bet_block"`
	TxHash      common.Hash    `json:"tx_hash"`
	Status      Status         `json:"status"`
	SubmittedAt time.Time      `json:"submitted_at"`
}

// Journal persists reveal submissions so a restarted daemon does not reveal the same bet twice
type Journal interface {
	Get(player common.Address, betBlock uint64) (Entry, bool, error)
	Put(entry Entry) error
	Entries(player common.Address) ([]Entry, error)
}

// BadgerJournal is a Journal backed by a badger key-value store
type BadgerJournal struct {
	db *badger.DB
}

// Open opens the journal in dir. An empty dir keeps the journal in memory
func Open(dir string) (*BadgerJournal, error) {
	opts := badger.DefaultOptions(dir).
		WithLogger(nil)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}

	return &BadgerJournal{db: db}, nil
}

// Get returns the entry for the given bet, if any
func (j *BadgerJournal) Get(player common.Address, betBlock uint64) (Entry, bool, error) {
	var entry Entry
	err := j.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(player, betBlock))
		if err != nil {
			return err
		}

		bz, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}

		return json.Unmarshal(bz, &entry)
	})

	switch {
	case errors.Is(err, badger.ErrKeyNotFound):
		return Entry{}, false, nil
	case err != nil:
		return Entry{}, false, err
	default:
		return entry, true, nil
	}
}

// Put stores the entry, replacing any previous entry for the same bet
func (j *BadgerJournal) Put(entry Entry) error {
	if entry.BetBlock == 0 {
		return fmt.Errorf("cannot journal a reveal without a bet block")
	}

	bz, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	return j.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(entry.Player, entry.BetBlock), bz)
	})
}

// Entries returns all entries of the given player ordered by bet block
func (j *BadgerJournal) Entries(player common.Address) ([]Entry, error) {
	prefix := playerPrefix(player)

	var entries []Entry
	err := j.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			bz, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}

			var entry Entry
			if err := json.Unmarshal(bz, &entry); err != nil {
				return err
			}
			entries = append(entries, entry)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// Close closes the underlying store
func (j *BadgerJournal) Close() error {
	return j.db.Close()
}

func playerPrefix(player common.Address) []byte {
	prefix := append([]byte{}, rollPrefix...)
	prefix = append(prefix, []byte(player.Hex())...)
	return append(prefix, '/')
}

// bet blocks are big-endian so iteration follows block order
func key(player common.Address, betBlock uint64) []byte {
	return binary.BigEndian.AppendUint64(playerPrefix(player), betBlock)
}
