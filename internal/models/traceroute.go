package models

// Hop is one router entry on a traced path. Its index along the path is its
// position in Measurement.Hops.
type Hop struct {
	Address string     `json:"address"`
	RTT     [3]float64 `json:"rtt_ms"` // milliseconds
}

// Measurement is one traceroute capture session for one target
type Measurement struct {
	Timestamp string `json:"timestamp"`
	Hops      []Hop  `json:"hops"`
}

// PathSignature returns the ordered hop addresses of the measurement
func (m Measurement) PathSignature() []string {
	sig := make([]string, len(m.Hops))
	for i, h := range m.Hops {
		sig[i] = h.Address
	}
	return sig
}

// Verdict is the routing stability classification of a target
type Verdict string

const (
	Stable   Verdict = "stable"
	Changing Verdict = "changing"
)
