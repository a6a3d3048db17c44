package models

// RTTStats is one "min/avg/max/mdev" summary line, in milliseconds
type RTTStats struct {
	Min  float64 `json:"min"`
	Avg  float64 `json:"avg"`
	Max  float64 `json:"max"`
	Mdev float64 `json:"mdev"`
}

// PingSample is the summary of a single ping capture
type PingSample struct {
	// LossPercent is nil when the capture has no packet loss line
	LossPercent *int       `json:"loss_percent"`
	RTTStats    []RTTStats `json:"rtt_stats"`
}
