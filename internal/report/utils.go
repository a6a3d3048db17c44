package report

import (
	"fmt"
	"strconv"
	"strings"

	"netlog-analyzer/internal/models"
)

// sanitizeFilename replaces dots and special characters for safe filenames
func sanitizeFilename(s string) string {
	replacer := strings.NewReplacer(
		".", "_",
		":", "_",
		"/", "_",
		"\\", "_",
		" ", "_",
	)
	return replacer.Replace(s)
}

// fileKeys returns one filename key per target. Targets that sanitize to the
// same name get a numeric suffix in report order.
func fileKeys(targets []models.TargetReport) []string {
	keys := make([]string, len(targets))
	used := make(map[string]bool, len(targets))
	for i, t := range targets {
		base := sanitizeFilename(t.Target)
		key := base
		for n := 2; used[key]; n++ {
			key = fmt.Sprintf("%s_%d", base, n)
		}
		used[key] = true
		keys[i] = key
	}
	return keys
}

// formatLoss renders a loss percentage, or n/a when the capture had none
func formatLoss(loss *int) string {
	if loss == nil {
		return "n/a"
	}
	return strconv.Itoa(*loss) + "%"
}
