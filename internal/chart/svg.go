// Package chart renders recorded loop traces, as vector images through
// gonum/plot or as text charts for the terminal.
package chart

import (
	"errors"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/queueloop/internal/sim"
)

var ErrNoSamples = errors.New("chart: no samples to plot")

// DefaultWidth and DefaultHeight size images when the caller passes zero.
const (
	DefaultWidth  = 10 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

type series struct {
	name string
	pick func(sim.Sample) float64
}

var traceSeries = []series{
	{"r", func(s sim.Sample) float64 { return float64(s.R) }},
	{"y", func(s sim.Sample) float64 { return float64(s.Y) }},
	{"u", func(s sim.Sample) float64 { return s.U }},
}

// Build lays out set-point, output and control effort against time.
func Build(samples []sim.Sample) (*plot.Plot, error) {
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}

	p := plot.New()
	p.Title.Text = "queue level"
	p.X.Label.Text = "t"
	p.Y.Label.Text = "items"
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	for i, sr := range traceSeries {
		pts := make(plotter.XYs, len(samples))
		for j, s := range samples {
			pts[j].X = float64(s.T)
			pts[j].Y = sr.pick(s)
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return nil, err
		}
		l.Color = plotutil.Color(i)
		l.Width = vg.Points(1)
		if sr.name == "u" {
			l.Dashes = plotutil.Dashes(1)
		}
		p.Add(l)
		p.Legend.Add(sr.name, l)
	}
	return p, nil
}

// WriteSVG renders samples as an SVG document into w.
func WriteSVG(w io.Writer, samples []sim.Sample, width, height vg.Length) error {
	p, err := Build(samples)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(orDefault(width, DefaultWidth), orDefault(height, DefaultHeight), "svg")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// Save writes an image file whose format follows the path's extension.
func Save(path string, samples []sim.Sample, width, height vg.Length) error {
	p, err := Build(samples)
	if err != nil {
		return err
	}
	return p.Save(orDefault(width, DefaultWidth), orDefault(height, DefaultHeight), path)
}

func orDefault(v, def vg.Length) vg.Length {
	if v <= 0 {
		return def
	}
	return v
}
