package web

import (
	"bytes"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/sandcourt/beachrank/internal/rating"
)

// renderRatingChart draws the rating history as a PNG line, one point
// per game. The first point is the starting rating.
func renderRatingChart(history []rating.Snapshot) ([]byte, error) {
	if len(history) < 2 {
		return renderEmptyChart()
	}

	xValues := make([]float64, len(history))
	yValues := make([]float64, len(history))
	for i, snapshot := range history {
		xValues[i] = float64(i)
		yValues[i] = float64(snapshot.Rating)
	}

	graph := chart.Chart{
		Width:  800,
		Height: 400,
		XAxis: chart.XAxis{
			Name:           "Игры",
			ValueFormatter: chart.IntValueFormatter,
		},
		YAxis: chart.YAxis{
			Name: "Рейтинг",
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: xValues,
				YValues: yValues,
				Style: chart.Style{
					StrokeWidth: 2,
					DotWidth:    3,
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderEmptyChart() ([]byte, error) {
	const msg = "нет сыгранных матчей"

	graph := chart.Chart{
		Width:  400,
		Height: 200,
		Elements: []chart.Renderable{
			func(r chart.Renderer, cb chart.Box, chartDefaults chart.Style) {
				r.SetFontSize(12.0)
				tb := r.MeasureText(msg)
				x := (cb.Width() - tb.Width()) / 2
				y := (cb.Height() + tb.Height()) / 2
				r.Text(msg, x, y)
			},
		},
	}
	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
