package models

import "fmt"

// LatencyStats summarizes a sequence of average RTT values
type LatencyStats struct {
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
}

// LossClass is the severity bucket of a packet loss percentage
type LossClass int

const (
	LossFree LossClass = iota
	Minor
	Significant
	Major
)

var lossClassNames = map[LossClass]string{
	LossFree:    "loss-free",
	Minor:       "minor",
	Significant: "significant",
	Major:       "major",
}

func (c LossClass) String() string {
	if name, ok := lossClassNames[c]; ok {
		return name
	}
	return fmt.Sprintf("LossClass(%d)", int(c))
}

// MarshalText encodes the class by name so JSON output stays readable
func (c LossClass) MarshalText() ([]byte, error) {
	name, ok := lossClassNames[c]
	if !ok {
		return nil, fmt.Errorf("unknown loss class %d", int(c))
	}
	return []byte(name), nil
}

// UnmarshalText decodes a class name produced by MarshalText
func (c *LossClass) UnmarshalText(text []byte) error {
	for class, name := range lossClassNames {
		if name == string(text) {
			*c = class
			return nil
		}
	}
	return fmt.Errorf("unknown loss class %q", text)
}
