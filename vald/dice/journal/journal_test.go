package journal_test

import (
	"testing"
	"time"

	. "github.com/axelarnetwork/utils/test"
	"github.com/axelarnetwork/utils/test/rand"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axelarnetwork/dicegame/vald/dice/journal"
)

func TestBadgerJournal(t *testing.T) {
	var (
		j      *journal.BadgerJournal
		player common.Address
		entry  journal.Entry
	)

	givenJournal := Given("an empty journal", func() {
		var err error
		j, err = journal.Open("")
		require.NoError(t, err)
		t.Cleanup(func() { assert.NoError(t, j.Close()) })

		player = common.BytesToAddress(rand.Bytes(common.AddressLength))
	})

	givenJournal.
		When("nothing was recorded", func() {}).
		Then("return no entry", func(t *testing.T) {
			_, ok, err := j.Get(player, uint64(rand.PosI64()))
			assert.NoError(t, err)
			assert.False(t, ok)

			entries, err := j.Entries(player)
			assert.NoError(t, err)
			assert.Empty(t, entries)
		}).
		Run(t)

	givenJournal.
		When("a pending reveal is recorded", func() {
			entry = journal.Entry{
				Player:      player,
				BetBlock:    uint64(rand.I64Between(1, 1_000_000)),
				TxHash:      common.BytesToHash(rand.Bytes(common.HashLength)),
				Status:      journal.Pending,
				SubmittedAt: time.Unix(rand.I64Between(0, 2_000_000_000), 0).UTC(),
			}
			require.NoError(t, j.Put(entry))
		}).
		Branch(
			Then("return it for the same bet only", func(t *testing.T) {
				actual, ok, err := j.Get(player, entry.BetBlock)
				assert.NoError(t, err)
				assert.True(t, ok)
				assert.Equal(t, entry, actual)

				_, ok, err = j.Get(player, entry.BetBlock+1)
				assert.NoError(t, err)
				assert.False(t, ok)

				_, ok, err = j.Get(common.BytesToAddress(rand.Bytes(common.AddressLength)), entry.BetBlock)
				assert.NoError(t, err)
				assert.False(t, ok)
			}),

			Then("replace it when the reveal is confirmed", func(t *testing.T) {
				entry.Status = journal.Confirmed
				require.NoError(t, j.Put(entry))

				actual, ok, err := j.Get(player, entry.BetBlock)
				assert.NoError(t, err)
				assert.True(t, ok)
				assert.Equal(t, journal.Confirmed, actual.Status)
			}),
		).
		Run(t, 5)
}

func TestBadgerJournal_Entries(t *testing.T) {
	j, err := journal.Open("")
	require.NoError(t, err)
	defer j.Close()

	player := common.BytesToAddress(rand.Bytes(common.AddressLength))
	other := common.BytesToAddress(rand.Bytes(common.AddressLength))

	// 256 and 1 would sort the other way round as decimal strings
	for _, betBlock := range []uint64{256, 1, 70_000} {
		require.NoError(t, j.Put(journal.Entry{Player: player, BetBlock: betBlock, Status: journal.Failed}))
	}
	require.NoError(t, j.Put(journal.Entry{Player: other, BetBlock: 2, Status: journal.Pending}))

	entries, err := j.Entries(player)
	assert.NoError(t, err)
	assert.Len(t, entries, 3)
	for i, betBlock := range []uint64{1, 256, 70_000} {
		assert.Equal(t, betBlock, entries[i].BetBlock)
		assert.Equal(t, player, entries[i].Player)
	}
}

func TestBadgerJournal_Persists(t *testing.T) {
	dir := t.TempDir()
	entry := journal.Entry{
		Player:   common.BytesToAddress(rand.Bytes(common.AddressLength)),
		BetBlock: uint64(rand.I64Between(1, 1_000_000)),
		TxHash:   common.BytesToHash(rand.Bytes(common.HashLength)),
		Status:   journal.Pending,
	}

	j, err := journal.Open(dir)
	require.NoError(t, err)
	require.NoError(t, j.Put(entry))
	require.NoError(t, j.Close())

	j, err = journal.Open(dir)
	require.NoError(t, err)
	defer j.Close()

	actual, ok, err := j.Get(entry.Player, entry.BetBlock)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, entry.TxHash, actual.TxHash)
}

func TestBadgerJournal_RejectsMissingBet(t *testing.T) {
	j, err := journal.Open("")
	require.NoError(t, err)
	defer j.Close()

	assert.Error(t, j.Put(journal.Entry{Player: common.BytesToAddress(rand.Bytes(common.AddressLength))}))
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "pending", journal.Pending.String())
	assert.Equal(t, "confirmed", journal.Confirmed.String())
	assert.Equal(t, "failed", journal.Failed.String())
	assert.Equal(t, "unknown(0)", journal.Status(0).String())
}
