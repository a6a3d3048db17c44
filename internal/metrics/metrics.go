package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MeasurementsParsedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "netlog_analyzer_measurements_parsed_total",
		Help: "Total number of traceroute measurements extracted",
	}, []string{"target"})

	ParseErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "netlog_analyzer_parse_errors_total",
		Help: "Total number of capture sessions that failed to parse",
	}, []string{"kind"})

	PingSamplesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "netlog_analyzer_ping_samples_total",
		Help: "Total number of ping captures extracted",
	}, []string{"target"})

	Targets = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "netlog_analyzer_targets",
		Help: "Number of targets per stability verdict in the last run",
	}, []string{"verdict"})

	LatencyMedianMs = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "netlog_analyzer_latency_median_ms",
		Help: "Median average RTT of a target in the last run",
	}, []string{"target"})
)
