package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/olekukonko/tablewriter"

	"netlog-analyzer/internal/models"
)

func (g *Generator) generateTextReport(outputDir string, summary models.RunSummary) error {
	filename := filepath.Join(outputDir, "summary.txt")
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	fmt.Fprintf(file, "Network Path and Latency Report\n")
	fmt.Fprintf(file, "Generated: %s\n\n", g.now().Format("2006-01-02 15:04:05"))
	fmt.Fprintln(file, strings.Repeat("=", 60))

	for _, t := range summary.Targets {
		writeTarget(file, t)
		fmt.Fprintln(file, strings.Repeat("-", 60))
	}

	fmt.Fprintln(file)
	fmt.Fprintln(file, strings.Repeat("=", 60))
	writeSets(file, summary)

	return nil
}

func writeTarget(w io.Writer, t models.TargetReport) {
	fmt.Fprintf(w, "Target: %s\n", t.Target)
	if t.Err != "" {
		fmt.Fprintf(w, "  Error: %s\n", t.Err)
		return
	}

	fmt.Fprintf(w, "  Measurements: %d\n", len(t.Measurements))
	if t.Stability != nil {
		fmt.Fprintf(w, "  Routing: %s\n", describeVerdict(*t.Stability))
	} else {
		fmt.Fprintf(w, "  Routing: not analyzed (%s)\n", t.StabilityError)
	}

	for _, m := range t.Measurements {
		fmt.Fprintf(w, "    %s: %d hops %s\n", m.Timestamp, len(m.Hops), strings.Join(m.PathSignature(), " > "))
	}

	fmt.Fprintf(w, "  Ping Captures: %d\n", len(t.Pings))
	fmt.Fprintf(w, "  Latest Loss: %s\n", t.Loss)
	if n := len(t.LossRates); n > 0 {
		fmt.Fprintf(w, "  Latest Loss Rate: %s\n", formatLoss(t.LossRates[n-1]))
	}

	if t.Latency != nil {
		fmt.Fprintf(w, "  Average RTT Samples: %d\n", t.Latency.Count)
		fmt.Fprintf(w, "  Min RTT: %.2f ms\n", t.Latency.Min)
		fmt.Fprintf(w, "  Max RTT: %.2f ms\n", t.Latency.Max)
		fmt.Fprintf(w, "  Mean RTT: %.2f ms\n", t.Latency.Mean)
		fmt.Fprintf(w, "  Median RTT: %.2f ms\n", t.Latency.Median)
	} else {
		fmt.Fprintf(w, "  Latency: %s\n", t.LatencyError)
	}
}

func describeVerdict(v models.Verdict) string {
	if v == models.Stable {
		return "all measurements have the same routing path"
	}
	return "routing path changed in at least one measurement"
}

func writeSets(w io.Writer, summary models.RunSummary) {
	fmt.Fprintf(w, "Stable Targets: %s\n", formatSet(summary.Stable))
	fmt.Fprintf(w, "Changing Targets: %s\n", formatSet(summary.Changing))
}

func formatSet(targets []string) string {
	return "[" + strings.Join(targets, ", ") + "]"
}

// WriteTable renders one row per target followed by the stable and changing sets
func (g *Generator) WriteTable(w io.Writer, summary models.RunSummary) error {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_CENTER)
	table.SetAutoFormatHeaders(false)
	table.SetBorder(true)
	table.SetHeader([]string{
		"Target", "Runs", "Routing", "Pings", "Loss",
		"Min\n(ms)", "Median\n(ms)", "Mean\n(ms)", "Max\n(ms)",
	})

	for _, t := range summary.Targets {
		routing := "n/a"
		if t.Stability != nil {
			routing = string(*t.Stability)
		} else if t.Err != "" {
			routing = "error"
		}

		row := []string{
			t.Target,
			fmt.Sprintf("%d", len(t.Measurements)),
			routing,
			fmt.Sprintf("%d", len(t.Pings)),
			t.Loss.String(),
		}
		if t.Latency != nil {
			row = append(row,
				fmt.Sprintf("%.2f", t.Latency.Min),
				fmt.Sprintf("%.2f", t.Latency.Median),
				fmt.Sprintf("%.2f", t.Latency.Mean),
				fmt.Sprintf("%.2f", t.Latency.Max),
			)
		} else {
			row = append(row, "-", "-", "-", "-")
		}
		table.Append(row)
	}
	table.Render()

	fmt.Fprintln(w)
	writeSets(w, summary)
	return nil
}
