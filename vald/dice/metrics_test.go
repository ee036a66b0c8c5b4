package dice

import (
	"errors"
	"testing"

	errorsmod "cosmossdk.io/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/axelarnetwork/dicegame/x/dice/types"
)

func TestResultLabel(t *testing.T) {
	assert.Equal(t, "ok", resultLabel(nil))
	assert.Equal(t, "mismatch", resultLabel(errorsmod.Wrap(types.ErrHashMismatch, "block 10")))
	assert.Equal(t, "unavailable", resultLabel(errorsmod.Wrap(types.ErrBlockNotAvailable, "block 10")))
	assert.Equal(t, "invalid", resultLabel(types.ErrInvalidHeader))
	assert.Equal(t, "reverted", resultLabel(types.ErrTxFailed))
	assert.Equal(t, "error", resultLabel(errors.New("connection refused")))
}

func TestMetrics(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.observeSnapshot(Snapshot{CurrentBlock: 100, Window: types.WindowState{BlocksUntilOpen: 3}, Status: types.Betted})
	assert.Equal(t, 100.0, testutil.ToFloat64(m.latestBlock))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.blocksUntilOpen))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.betStatus.WithLabelValues(types.Betted.String())))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.betStatus.WithLabelValues(types.NoBet.String())))

	m.observeSnapshot(Snapshot{CurrentBlock: 101, Status: types.RolledWin})
	assert.Equal(t, 0.0, testutil.ToFloat64(m.betStatus.WithLabelValues(types.Betted.String())))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.betStatus.WithLabelValues(types.RolledWin.String())))

	m.observeSubmission("roll", nil)
	m.observeSubmission("roll", types.ErrTxFailed)
	m.observeVerification(types.ErrHashMismatch)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.submissions.WithLabelValues("roll", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.submissions.WithLabelValues("roll", "reverted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.verifications.WithLabelValues("mismatch")))
}
