// Package analysis classifies routing stability, summarizes latency and
// buckets packet loss.
package analysis

import (
	"slices"
	"sync"

	"netlog-analyzer/internal/models"
)

// Stability reports whether every measurement follows the same path as the
// first one. Only hop addresses are compared; RTTs play no part.
func Stability(measurements []models.Measurement) models.Verdict {
	if len(measurements) <= 1 {
		return models.Stable
	}

	first := measurements[0].PathSignature()
	for _, m := range measurements[1:] {
		if !slices.Equal(first, m.PathSignature()) {
			return models.Changing
		}
	}
	return models.Stable
}

// Classifier collects the stability verdicts of many targets. It is safe for
// concurrent use.
type Classifier struct {
	mu       sync.Mutex
	stable   []string
	changing []string
}

// Add records the verdict for target
func (c *Classifier) Add(target string, verdict models.Verdict) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch verdict {
	case models.Stable:
		c.stable = append(c.stable, target)
	case models.Changing:
		c.changing = append(c.changing, target)
	}
}

// Stable returns the stable targets in the order they were added
func (c *Classifier) Stable() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.stable)
}

// Changing returns the changing targets in the order they were added
func (c *Classifier) Changing() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.changing)
}
