package chart

import (
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/queueloop/internal/sim"
)

// Terminal draws r and y on one chart and u below it. Width zero keeps one
// column per sample; long runs are best given an explicit width.
func Terminal(samples []sim.Sample, width, height int) string {
	if len(samples) == 0 {
		return ""
	}
	if height <= 0 {
		height = 12
	}

	r := make([]float64, len(samples))
	y := make([]float64, len(samples))
	u := make([]float64, len(samples))
	for i, s := range samples {
		r[i], y[i], u[i] = float64(s.R), float64(s.Y), s.U
	}

	opts := []asciigraph.Option{asciigraph.Height(height)}
	if width > 0 {
		opts = append(opts, asciigraph.Width(width))
	}

	var b strings.Builder
	b.WriteString(asciigraph.PlotMany([][]float64{r, y}, append(opts,
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Blue),
		asciigraph.SeriesLegends("r", "y"),
		asciigraph.Caption("queue level"),
	)...))
	b.WriteString("\n\n")
	b.WriteString(asciigraph.Plot(u, append(opts,
		asciigraph.SeriesColors(asciigraph.Green),
		asciigraph.Caption("control effort u"),
	)...))
	b.WriteString("\n")
	return b.String()
}
