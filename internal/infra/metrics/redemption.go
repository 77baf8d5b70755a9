package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// RedemptionMetrics exposes operational counters for code issuing,
// redemption outcomes and payout lifecycle.
type RedemptionMetrics struct {
	codesIssued     *prometheus.CounterVec
	redemptions     *prometheus.CounterVec
	payouts         *prometheus.CounterVec
	payoutAmountSum *prometheus.CounterVec
}

func NewRedemptionMetrics(reg prometheus.Registerer) *RedemptionMetrics {
	m := &RedemptionMetrics{
		codesIssued: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "washclub",
			Name:      "codes_issued_total",
			Help:      "Verification codes issued, by wash type.",
		}, []string{"wash_type"}),
		redemptions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "washclub",
			Name:      "redemptions_total",
			Help:      "Redemption completion attempts, by outcome.",
		}, []string{"outcome"}),
		payouts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "washclub",
			Name:      "payouts_total",
			Help:      "Payout records, by status.",
		}, []string{"status"}),
		payoutAmountSum: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "washclub",
			Name:      "payout_amount_cents_total",
			Help:      "Accumulated payout amount in cents, by status.",
		}, []string{"status"}),
	}
	reg.MustRegister(m.codesIssued, m.redemptions, m.payouts, m.payoutAmountSum)
	return m
}

func (m *RedemptionMetrics) CodeIssued(washType string) {
	m.codesIssued.WithLabelValues(washType).Inc()
}

func (m *RedemptionMetrics) RedemptionFinished(outcome string) {
	m.redemptions.WithLabelValues(outcome).Inc()
}

func (m *RedemptionMetrics) PayoutRecorded(status string, amountCents int64) {
	m.payouts.WithLabelValues(status).Inc()
	m.payoutAmountSum.WithLabelValues(status).Add(float64(amountCents))
}
