package report

import (
	"bytes"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"weeklyreport/internal/domain"
)

var weekdayLabels = []string{"Пн", "Вт", "Ср", "Чт", "Пт", "Сб", "Вс"}

// Chart renders the tracked per-day series as a PNG line chart.
// Returns nil bytes when neither metric was tracked.
func Chart(a domain.Answers) ([]byte, error) {
	series := make([]chart.Series, 0, 2)

	if s := continuousSeries("Пульс покоя", a.RestingHR, chart.ColorRed); s != nil {
		series = append(series, s)
	}
	if s := continuousSeries("Сон (часы)", a.Sleep, chart.ColorBlue); s != nil {
		series = append(series, s)
	}
	if len(series) == 0 {
		return nil, nil
	}

	graph := chart.Chart{
		Title:  "Неделя " + a.Range.StartString() + " — " + a.Range.EndString(),
		Width:  800,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 25, Right: 25, Bottom: 25},
		},
		XAxis: chart.XAxis{
			Ticks: weekdayTicks(),
		},
		Series: series,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func continuousSeries(name string, s *domain.Series, color drawing.Color) chart.Series {
	if s == nil || s.NotTracked || len(s.Values) == 0 {
		return nil
	}
	xs := make([]float64, len(s.Values))
	for i := range s.Values {
		xs[i] = float64(i + 1)
	}
	return chart.ContinuousSeries{
		Name:    name,
		XValues: xs,
		YValues: s.Values,
		Style: chart.Style{
			StrokeColor: color,
			StrokeWidth: 2,
		},
	}
}

func weekdayTicks() []chart.Tick {
	ticks := make([]chart.Tick, 0, len(weekdayLabels))
	for i, label := range weekdayLabels {
		ticks = append(ticks, chart.Tick{Value: float64(i + 1), Label: label})
	}
	return ticks
}
