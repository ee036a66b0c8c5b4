package dice

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/axelarnetwork/dicegame/x/dice/types"
)

const metricsNamespace = "diced"

// Metrics exposes the state of the game to prometheus
type Metrics struct {
	latestBlock     prometheus.Gauge
	blocksUntilOpen prometheus.Gauge
	betStatus       *prometheus.GaugeVec
	submissions     *prometheus.CounterVec
	verifications   *prometheus.CounterVec
}

// NewMetrics creates the game metrics and registers them with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		latestBlock: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "latest_block",
			Help:      "Latest block number seen on the chain",
		}),
		blocksUntilOpen: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "blocks_until_roll_window",
			Help:      "Blocks left until the deciding block of the open bet is mined",
		}),
		betStatus: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "bet_status",
			Help:      "Set to 1 for the current status of the player's bet",
		}, []string{"status"}),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "submissions_total",
			Help:      "Transactions submitted to the game contract",
		}, []string{"kind", "result"}),
		verifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "header_verifications_total",
			Help:      "Block header commitment checks",
		}, []string{"result"}),
	}

	reg.MustRegister(m.latestBlock, m.blocksUntilOpen, m.betStatus, m.submissions, m.verifications)
	return m
}

func (m *Metrics) observeSnapshot(s Snapshot) {
	m.latestBlock.Set(float64(s.CurrentBlock))
	m.blocksUntilOpen.Set(float64(s.Window.BlocksUntilOpen))

	for _, status := range []types.BetStatus{types.NoBet, types.Betted, types.RolledWin, types.RolledLose, types.Missed} {
		value := 0.0
		if status == s.Status {
			value = 1
		}
		m.betStatus.WithLabelValues(status.String()).Set(value)
	}
}

func (m *Metrics) observeSubmission(kind string, err error) {
	m.submissions.WithLabelValues(kind, resultLabel(err)).Inc()
}

func (m *Metrics) observeVerification(err error) {
	m.verifications.WithLabelValues(resultLabel(err)).Inc()
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, types.ErrHashMismatch):
		return "mismatch"
	case errors.Is(err, types.ErrBlockNotAvailable):
		return "unavailable"
	case errors.Is(err, types.ErrInvalidHeader):
		return "invalid"
	case errors.Is(err, types.ErrTxFailed):
		return "reverted"
	default:
		return "error"
	}
}
