package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// GameMetricsCollector tracks seasons: starts, decisions, finances and endings
type GameMetricsCollector struct {
	gamesStarted *prometheus.CounterVec
	choicesTotal *prometheus.CounterVec
	endingsTotal *prometheus.CounterVec
	gradesTotal  *prometheus.CounterVec

	payroll   *prometheus.GaugeVec
	luxuryTax *prometheus.GaugeVec

	finalWins *prometheus.HistogramVec
}

var _ GameMetricsRecorder = (*GameMetricsCollector)(nil)

// NewGameMetricsCollector creates a new game metrics collector
func NewGameMetricsCollector() *GameMetricsCollector {
	return &GameMetricsCollector{
		gamesStarted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "games_started_total",
				Help:      "Games started per team",
			},
			[]string{"team"},
		),
		choicesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "choices_total",
				Help:      "Choices applied per team and choice type",
			},
			[]string{"team", "type"},
		),
		endingsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "endings_total",
				Help:      "Finished seasons per team and ending",
			},
			[]string{"team", "ending"},
		),
		gradesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "grades_total",
				Help:      "GM ratings handed out per letter grade",
			},
			[]string{"grade"},
		),
		payroll: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "payroll_dollars",
				Help:      "Payroll after the latest choice",
			},
			[]string{"team"},
		),
		luxuryTax: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "luxury_tax_dollars",
				Help:      "Luxury tax owed after the latest choice",
			},
			[]string{"team"},
		),
		finalWins: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "final_wins",
				Help:      "Win totals of finished seasons",
				Buckets:   []float64{30, 35, 40, 46, 50, 55, 60},
			},
			[]string{"team"},
		),
	}
}

// Register registers all game metrics with the Prometheus registry
func (c *GameMetricsCollector) Register() error {
	if Registry == nil {
		return nil // Metrics not enabled
	}

	metrics := []prometheus.Collector{
		c.gamesStarted,
		c.choicesTotal,
		c.endingsTotal,
		c.gradesTotal,
		c.payroll,
		c.luxuryTax,
		c.finalWins,
	}

	for _, metric := range metrics {
		if err := Registry.Register(metric); err != nil {
			return err
		}
	}

	return nil
}

// RecordGameStarted counts a new game
func (c *GameMetricsCollector) RecordGameStarted(team string) {
	c.gamesStarted.WithLabelValues(team).Inc()
}

// RecordChoice counts the choice and publishes the new payroll and tax
func (c *GameMetricsCollector) RecordChoice(team, choiceType string, payroll, luxuryTax int64) {
	c.choicesTotal.WithLabelValues(team, choiceType).Inc()
	c.payroll.WithLabelValues(team).Set(float64(payroll))
	c.luxuryTax.WithLabelValues(team).Set(float64(luxuryTax))
}

// RecordEnding counts the ending and grade and observes the win total
func (c *GameMetricsCollector) RecordEnding(team, ending, grade string, wins int) {
	c.endingsTotal.WithLabelValues(team, ending).Inc()
	c.gradesTotal.WithLabelValues(grade).Inc()
	c.finalWins.WithLabelValues(team).Observe(float64(wins))
}
