package ping

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"netlog-analyzer/internal/models"
)

var (
	lossPattern    = regexp.MustCompile(`(?:^|[^\d.])(\d+(?:\.\d+)?)% packet loss`)
	summaryPattern = regexp.MustCompile(`min/avg/max/mdev = ([0-9.]+)/([0-9.]+)/([0-9.]+)/([0-9.]+) ms`)
)

// Extract parses the loss rate and RTT summary lines of one ping capture
func Extract(output string) models.PingSample {
	return models.PingSample{
		LossPercent: parseLoss(output),
		RTTStats:    parseSummaries(output),
	}
}

// ExtractAll parses each capture in order. Blank captures are skipped.
func ExtractAll(captures []string) []models.PingSample {
	var samples []models.PingSample
	for _, c := range captures {
		if strings.TrimSpace(c) == "" {
			continue
		}
		samples = append(samples, Extract(c))
	}
	return samples
}

// parseLoss returns the first "<n>% packet loss" value, or nil if the capture
// has none. Fractional values are rounded up so any loss stays above zero,
// and the result is kept within 0-100.
func parseLoss(output string) *int {
	matches := lossPattern.FindStringSubmatch(output)
	if len(matches) < 2 {
		return nil
	}
	value, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return nil
	}
	loss := int(math.Ceil(min(max(value, 0), 100)))
	return &loss
}

// parseSummaries returns one tuple per "min/avg/max/mdev" line in text order
func parseSummaries(output string) []models.RTTStats {
	stats := []models.RTTStats{}
	for _, m := range summaryPattern.FindAllStringSubmatch(output, -1) {
		var values [4]float64
		ok := true
		for i := range values {
			v, err := strconv.ParseFloat(m[i+1], 64)
			if err != nil {
				ok = false
				break
			}
			values[i] = v
		}
		if !ok {
			continue
		}
		stats = append(stats, models.RTTStats{
			Min:  values[0],
			Avg:  values[1],
			Max:  values[2],
			Mdev: values[3],
		})
	}
	return stats
}
