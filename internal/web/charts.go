package web

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"flightsite/internal/models"
)

// ChartBuilder renders the interactive and static charts for a profile page
type ChartBuilder struct{}

// NewChartBuilder creates a chart builder
func NewChartBuilder() *ChartBuilder {
	return &ChartBuilder{}
}

// MonthlyBarChart renders the hours-per-month bar chart as an embeddable
// HTML fragment
func (cb *ChartBuilder) MonthlyBarChart(monthly []models.MonthlyTotal) (string, error) {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  types.ThemeWesteros,
			Width:  "800px",
			Height: "360px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Flight Hours by Month",
			Subtitle: "Logged block time",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Hours",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	)

	xAxis := make([]string, 0, len(monthly))
	data := make([]opts.BarData, 0, len(monthly))
	for _, m := range monthly {
		xAxis = append(xAxis, m.Month)
		data = append(data, opts.BarData{Value: m.Hours})
	}

	bar.SetXAxis(xAxis).AddSeries("Hours", data)

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		return "", fmt.Errorf("failed to render monthly chart: %w", err)
	}
	return buf.String(), nil
}

// ActivityHeatmap renders the daily flying heatmap (weekday x week) as an
// embeddable HTML fragment
func (cb *ChartBuilder) ActivityHeatmap(daily []models.DailyAggregate) (string, error) {
	heatmap := charts.NewHeatMap()

	weekdays := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

	// Bucket days into (week, weekday) cells
	weekKeys := make([]string, 0)
	weekIndex := make(map[string]int)
	var cells []opts.HeatMapData
	maxHours := 0.0

	for _, d := range daily {
		date, err := time.Parse("2006-01-02", d.Date)
		if err != nil {
			continue
		}
		year, week := date.ISOWeek()
		key := fmt.Sprintf("%04d-W%02d", year, week)
		if _, ok := weekIndex[key]; !ok {
			weekIndex[key] = len(weekKeys)
			weekKeys = append(weekKeys, key)
		}
		weekday := (int(date.Weekday()) + 6) % 7 // Monday first
		cells = append(cells, opts.HeatMapData{
			Value: [3]interface{}{weekIndex[key], weekday, d.Hours},
		})
		if d.Hours > maxHours {
			maxHours = d.Hours
		}
	}
	if maxHours == 0 {
		maxHours = 1
	}

	heatmap.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  types.ThemeWesteros,
			Width:  "800px",
			Height: "280px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Flying Activity",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "category",
			Data: weekKeys,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "category",
			Data: weekdays,
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: true,
			Min:        0,
			Max:        float32(maxHours),
			InRange: &opts.VisualMapInRange{
				Color: []string{"#e0f3f8", "#74add1", "#4575b4", "#313695"},
			},
		}),
	)

	heatmap.AddSeries("Hours", cells)

	var buf bytes.Buffer
	if err := heatmap.Render(&buf); err != nil {
		return "", fmt.Errorf("failed to render activity heatmap: %w", err)
	}
	return buf.String(), nil
}

// MonthlyPNG renders the hours-per-month chart as a static PNG for
// published snapshots
func (cb *ChartBuilder) MonthlyPNG(monthly []models.MonthlyTotal) ([]byte, error) {
	if len(monthly) == 0 {
		return nil, fmt.Errorf("no monthly data to chart")
	}

	bars := make([]chart.Value, 0, len(monthly))
	for _, m := range monthly {
		bars = append(bars, chart.Value{
			Label: m.Month,
			Value: m.Hours,
		})
	}

	graph := chart.BarChart{
		Title: "Flight Hours by Month",
		TitleStyle: chart.Style{
			FontSize:  16,
			FontColor: drawing.ColorBlack,
		},
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
		},
		Height:   400,
		Width:    80 * len(bars),
		BarWidth: 40,
		Bars:     bars,
	}
	if graph.Width < 600 {
		graph.Width = 600
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render monthly PNG: %w", err)
	}
	return buf.Bytes(), nil
}
