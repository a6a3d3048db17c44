package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"netlog-analyzer/internal/models"
)

var errNotEnoughPoints = errors.New("not enough data points to plot")

var gridStyle = chart.Style{
	StrokeColor: drawing.Color{R: 200, G: 200, B: 200, A: 255},
	StrokeWidth: 1.0,
}

var chartPadding = chart.Style{
	Padding: chart.Box{
		Top:    20,
		Left:   20,
		Right:  20,
		Bottom: 20,
	},
}

// generatePathChart plots the hop count of every measurement against its
// capture timestamp
func (g *Generator) generatePathChart(outputDir, key string, target models.TargetReport) error {
	if len(target.Measurements) == 0 {
		return errNotEnoughPoints
	}

	var (
		xs      []float64
		ys      []float64
		ticks   []chart.Tick
		maxHops float64
	)
	for i, m := range target.Measurements {
		x := float64(i + 1)
		hops := float64(len(m.Hops))
		xs = append(xs, x)
		ys = append(ys, hops)
		ticks = append(ticks, chart.Tick{Value: x, Label: m.Timestamp})
		if hops > maxHops {
			maxHops = hops
		}
	}

	graph := chart.Chart{
		Title: fmt.Sprintf("Routing Path Stability - %s", target.Target),
		TitleStyle: chart.Style{
			FontSize: 16,
		},
		Background: chartPadding,
		Width:      1200,
		Height:     500,
		XAxis: chart.XAxis{
			Name: "Timestamp",
			Style: chart.Style{
				StrokeColor:         drawing.ColorBlack,
				FontSize:            10,
				TextRotationDegrees: 45,
			},
			Range: &chart.ContinuousRange{
				Min: 0,
				Max: float64(len(target.Measurements) + 1),
			},
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Name: "Number of Hops",
			Style: chart.Style{
				StrokeColor: drawing.ColorBlack,
				FontSize:    10,
			},
			Range: &chart.ContinuousRange{
				Min: 0,
				Max: maxHops + 1,
			},
			GridMajorStyle: gridStyle,
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name: target.Target,
				Style: chart.Style{
					StrokeColor: chart.GetDefaultColor(0),
					StrokeWidth: 2,
					DotColor:    chart.GetDefaultColor(0),
					DotWidth:    4,
				},
				XValues: xs,
				YValues: ys,
			},
		},
	}

	return renderPNG(filepath.Join(outputDir, fmt.Sprintf("path_%s.png", key)), graph)
}

// generateLatencyChart plots the average RTT of every ping summary line
func (g *Generator) generateLatencyChart(outputDir, key string, target models.TargetReport) error {
	if len(target.AvgRTTs) < 2 {
		return errNotEnoughPoints
	}

	xs := make([]float64, len(target.AvgRTTs))
	maxRTT := 0.0
	for i, v := range target.AvgRTTs {
		xs[i] = float64(i + 1)
		if v > maxRTT {
			maxRTT = v
		}
	}
	if maxRTT == 0 {
		maxRTT = 1
	}

	series := chart.ContinuousSeries{
		Name: target.Target,
		Style: chart.Style{
			StrokeColor: chart.GetDefaultColor(0),
			StrokeWidth: 2,
		},
		XValues: xs,
		YValues: target.AvgRTTs,
	}

	graph := chart.Chart{
		Title: fmt.Sprintf("Average RTT - %s", target.Target),
		TitleStyle: chart.Style{
			FontSize: 16,
		},
		Background: chartPadding,
		Width:      1200,
		Height:     400,
		XAxis: chart.XAxis{
			Name: "Capture",
			Style: chart.Style{
				StrokeColor: drawing.ColorBlack,
				FontSize:    10,
			},
		},
		YAxis: chart.YAxis{
			Name: "Latency (ms)",
			Style: chart.Style{
				StrokeColor: drawing.ColorBlack,
				FontSize:    10,
			},
			Range: &chart.ContinuousRange{
				Min: 0,
				Max: maxRTT * 1.1,
			},
			GridMajorStyle: gridStyle,
		},
		Series: []chart.Series{series},
	}

	// Add moving average
	if len(target.AvgRTTs) > 10 {
		graph.Series = append(graph.Series, chart.SMASeries{
			Name: "Moving Avg",
			Style: chart.Style{
				StrokeColor:     chart.GetDefaultColor(1),
				StrokeWidth:     2,
				StrokeDashArray: []float64{5, 5},
			},
			InnerSeries: series,
			Period:      10,
		})
		graph.Elements = []chart.Renderable{
			chart.Legend(&graph),
		}
	}

	return renderPNG(filepath.Join(outputDir, fmt.Sprintf("latency_%s.png", key)), graph)
}

// generateLossChart draws one bar per ping capture
func (g *Generator) generateLossChart(outputDir, key string, target models.TargetReport) error {
	if len(target.LossRates) == 0 {
		return errNotEnoughPoints
	}

	var bars []chart.Value
	for i, loss := range target.LossRates {
		value := 0.0
		if loss != nil {
			value = float64(*loss)
		}
		bars = append(bars, chart.Value{
			Label: fmt.Sprintf("#%d %s", i+1, formatLoss(loss)),
			Value: value,
		})
	}

	graph := chart.BarChart{
		Title: fmt.Sprintf("Packet Loss - %s", target.Target),
		TitleStyle: chart.Style{
			FontSize: 16,
		},
		Background: chartPadding,
		Width:      1200,
		Height:     400,
		BarWidth:   40,
		YAxis: chart.YAxis{
			Name: "Loss %",
			Range: &chart.ContinuousRange{
				Min: 0,
				Max: 100,
			},
		},
		Bars: bars,
	}

	filename := filepath.Join(outputDir, fmt.Sprintf("loss_%s.png", key))
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return graph.Render(chart.PNG, file)
}

func renderPNG(filename string, graph chart.Chart) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return graph.Render(chart.PNG, file)
}
