/*This provides plots for descriptor tables, so per-frame results can be
inspected visually.*/

package descplot

import (
	"fmt"
	"image/color"

	"github.com/rmera/chemprint/descriptors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func column(t *descriptors.Table, name string) ([]float64, error) {
	col, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	vals := make([]float64, len(col))
	for i, v := range col {
		f, ok := v.Float64()
		if !ok {
			return nil, fmt.Errorf("column '%s' is textual, can't be plotted", name)
		}
		vals[i] = f
	}
	return vals, nil
}

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	return p
}

// Series plots one numeric column of a descriptor table against the
// frame number, in png format. The extension is appended to plotname.
func Series(t *descriptors.Table, name, title, plotname string) error {
	vals, err := column(t, name)
	if err != nil {
		return err
	}
	p := basicPlot(title, "Frame", name)
	pts := make(plotter.XYs, len(vals))
	for i, v := range vals {
		pts[i].X = float64(i)
		pts[i].Y = v
	}
	line, scatter, err := plotter.NewLinePoints(pts)
	if err != nil {
		return err
	}
	line.Color = color.RGBA{B: 255, A: 255}
	scatter.GlyphStyle.Color = color.RGBA{R: 255, A: 255}
	p.Add(line, scatter)
	return p.Save(4*vg.Inch, 4*vg.Inch, fmt.Sprintf("%s.png", plotname))
}

// Histogram plots the distribution of one numeric column of a descriptor
// table over the frames, in png format. The extension is appended to
// plotname.
func Histogram(t *descriptors.Table, name string, bins int, title, plotname string) error {
	vals, err := column(t, name)
	if err != nil {
		return err
	}
	p := basicPlot(title, name, "Frames")
	h, err := plotter.NewHist(plotter.Values(vals), bins)
	if err != nil {
		return err
	}
	h.FillColor = color.RGBA{B: 255, A: 100}
	p.Add(h)
	return p.Save(4*vg.Inch, 4*vg.Inch, fmt.Sprintf("%s.png", plotname))
}
