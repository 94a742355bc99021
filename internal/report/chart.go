package report

import (
	"bytes"
	"time"

	"github.com/mauv0809/bvtracker/internal/ledger"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	averageColor = drawing.ColorFromHex("2e7d32")
	targetColor  = drawing.ColorFromHex("c62828")
	textColor    = drawing.ColorFromHex("333333")
)

// AverageChart renders the rolling average over time against the target as a PNG.
func AverageChart(matches []ledger.MatchRecord, target int) ([]byte, error) {
	history := AverageHistory(matches)
	// A time series needs two distinct dates to span the x axis.
	switch len(history) {
	case 0:
		today := time.Now().UTC().Truncate(24 * time.Hour)
		history = []AveragePoint{{Date: today.AddDate(0, 0, -1)}, {Date: today}}
	case 1:
		history = append(history, AveragePoint{Date: history[0].Date.AddDate(0, 0, 1), Average: history[0].Average})
	}

	xValues := make([]time.Time, len(history))
	yValues := make([]float64, len(history))
	targetValues := make([]float64, len(history))
	top := float64(max(target, 1))
	for i, p := range history {
		xValues[i] = p.Date
		yValues[i] = float64(p.Average)
		targetValues[i] = float64(target)
		if yValues[i] > top {
			top = yValues[i]
		}
	}

	graph := chart.Chart{
		Width:  800,
		Height: 400,
		XAxis: chart.XAxis{
			Name:           "Date",
			ValueFormatter: chart.TimeValueFormatterWithFormat("02-01-2006"),
			Style:          chart.Style{FontColor: textColor},
		},
		YAxis: chart.YAxis{
			Name:  "Average",
			Style: chart.Style{FontColor: textColor},
			Range: &chart.ContinuousRange{Min: 0, Max: top * 1.1},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Average",
				XValues: xValues,
				YValues: yValues,
				Style: chart.Style{
					StrokeColor: averageColor,
					StrokeWidth: 2,
					DotWidth:    4,
					DotColor:    averageColor,
				},
			},
			chart.TimeSeries{
				Name:    "Target",
				XValues: xValues,
				YValues: targetValues,
				Style: chart.Style{
					StrokeColor:     targetColor,
					StrokeWidth:     1,
					StrokeDashArray: []float64{5, 5},
				},
			},
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
