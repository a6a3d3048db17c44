package models

import "io"

// Bundle is the raw text collected for one target
type Bundle struct {
	Target string
	// Traceroute holds every traceroute capture, delimited by session separators
	Traceroute string
	// Pings holds one entry per ping capture
	Pings []string
	Files []string
}

// TargetReport is the analysis result for one target
type TargetReport struct {
	Target       string        `json:"target"`
	Measurements []Measurement `json:"measurements"`
	Pings        []PingSample  `json:"pings"`
	AvgRTTs      []float64     `json:"avg_rtts"`
	// LossRates has one entry per ping capture; nil entries had no loss line
	LossRates []*int    `json:"loss_rates"`
	Loss      LossClass `json:"loss_class"`

	// Stability is nil when the target was excluded from stability analysis
	Stability      *Verdict      `json:"stability,omitempty"`
	StabilityError string        `json:"stability_error,omitempty"`
	Latency        *LatencyStats `json:"latency,omitempty"`
	LatencyError   string        `json:"latency_error,omitempty"`
	// Err is set when the target's logs could not be collected at all
	Err string `json:"error,omitempty"`
}

// RunSummary is the outcome of one analysis pass over all targets
type RunSummary struct {
	Targets  []TargetReport `json:"targets"`
	Stable   []string       `json:"stable_targets"`
	Changing []string       `json:"changing_targets"`
}

// Find returns the report for target
func (s RunSummary) Find(target string) (TargetReport, bool) {
	for _, r := range s.Targets {
		if r.Target == target {
			return r, true
		}
	}
	return TargetReport{}, false
}

// LogSource supplies the raw captures of a target
type LogSource interface {
	Aggregate(target string) (Bundle, error)
}

// ReportEmitter renders a run summary
type ReportEmitter interface {
	Generate(outputDir string, summary RunSummary) (string, error)
	WriteTable(w io.Writer, summary RunSummary) error
}
