package chart

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	gochart "github.com/wcharczuk/go-chart/v2"

	"econviz/internal/model"
)

// ErrEmptySeries is returned when there is nothing to plot. Callers should
// report "no observations in the requested range" instead of rendering.
var ErrEmptySeries = errors.New("series has no samples")

// Renderer draws one series as a PNG line chart
type Renderer struct {
	Width  int
	Height int
	logger zerolog.Logger
}

// NewRenderer creates a renderer with the default canvas size
func NewRenderer() *Renderer {
	return &Renderer{
		Width:  1024,
		Height: 640,
		logger: log.With().Str("component", "chart_renderer").Logger(),
	}
}

// unit is a magnitude divisor applied to values before plotting so the
// Y axis stays readable for large indicators like nominal GDP.
type unit struct {
	divisor float64
	label   string
}

func pickUnit(maxValue float64) unit {
	switch {
	case maxValue >= 1e12:
		return unit{divisor: 1e12, label: "Trillions"}
	case maxValue >= 1e9:
		return unit{divisor: 1e9, label: "Billions"}
	case maxValue >= 1e6:
		return unit{divisor: 1e6, label: "Millions"}
	}
	return unit{divisor: 1}
}

// Render writes the series to w as a PNG line chart
func (r *Renderer) Render(title string, series model.Series, w io.Writer) error {
	if len(series) == 0 {
		return ErrEmptySeries
	}

	maxValue := 0.0
	for _, v := range series.Values() {
		if v > maxValue {
			maxValue = v
		}
	}
	u := pickUnit(maxValue)

	xValues := make([]float64, len(series))
	yValues := make([]float64, len(series))
	for i, sample := range series {
		xValues[i] = float64(sample.Year)
		yValues[i] = sample.Value / u.divisor
	}

	yAxisName := "Value"
	if u.label != "" {
		yAxisName = fmt.Sprintf("Value (%s)", u.label)
	}

	graph := gochart.Chart{
		Title:  title,
		Width:  r.Width,
		Height: r.Height,
		XAxis: gochart.XAxis{
			Name: "Year",
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f", f)
				}
				return fmt.Sprint(v)
			},
		},
		YAxis: gochart.YAxis{
			Name: yAxisName,
		},
		Series: []gochart.Series{
			gochart.ContinuousSeries{
				Name:    title,
				XValues: xValues,
				YValues: yValues,
				Style: gochart.Style{
					StrokeWidth: 3,
					DotWidth:    5,
				},
			},
		},
	}

	if err := graph.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}

	r.logger.Debug().Int("samples", len(series)).Str("unit", u.label).Msg("Rendered chart")
	return nil
}
