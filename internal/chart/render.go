package chart

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/Veraticus/techplot/internal/model"
	"github.com/Veraticus/techplot/internal/summary"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// DefaultBoxWidth is the fraction of a technique slot a box occupies.
const DefaultBoxWidth = 0.5

const (
	titleFontSize = 18
	titleHeight   = 36
)

// Renderer draws chart specs as PNG images with one column per classifier.
type Renderer struct {
	Classifiers []string
	DPI         int
	BoxWidth    float64
}

// NewRenderer creates a renderer for the given classifiers.
func NewRenderer(classifiers []string, dpi int) *Renderer {
	return &Renderer{
		Classifiers: classifiers,
		DPI:         dpi,
		BoxWidth:    DefaultBoxWidth,
	}
}

// RenderFile renders spec into dir and returns the written path.
func (r *Renderer) RenderFile(ctx context.Context, spec Spec, rows []model.ResultRow, project, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, spec.File)
	f, err := os.Create(path) //nolint:gosec // output path is built from configuration
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := r.Render(ctx, spec, rows, project, f); err != nil {
		_ = f.Close()
		if rmErr := os.Remove(path); rmErr != nil {
			slog.Warn("Failed to remove partial chart", "path", path, "error", rmErr)
		}
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", path, err)
	}

	return path, nil
}

// Render draws spec as a PNG image to w.
func (r *Renderer) Render(ctx context.Context, spec Spec, rows []model.ResultRow, project string, w io.Writer) error {
	if len(r.Classifiers) == 0 {
		return fmt.Errorf("chart %s: no classifiers configured", spec.Name)
	}
	if len(spec.Panels) == 0 {
		return fmt.Errorf("chart %s: no panels", spec.Name)
	}
	if len(spec.Order) == 0 {
		return fmt.Errorf("chart %s: no technique order", spec.Name)
	}

	plots := make([][]*plot.Plot, len(spec.Panels))
	for i, panel := range spec.Panels {
		if err := ctx.Err(); err != nil {
			return err
		}

		groups := summary.Group(rows, panel.Metric)
		if dropped := groups.Dropped(spec.Order); dropped > 0 {
			slog.Debug("Dropping values with techniques outside the chart order",
				"chart", spec.Name, "metric", panel.Metric, "values", dropped)
		}

		row, err := r.panelRow(spec, panel, groups, i == len(spec.Panels)-1)
		if err != nil {
			return fmt.Errorf("chart %s: %w", spec.Name, err)
		}
		if i == 0 {
			for j, p := range row {
				p.Title.Text = r.Classifiers[j]
			}
		}
		plots[i] = row
	}

	img := vgimg.NewWith(vgimg.UseWH(spec.Width, spec.Height), vgimg.UseDPI(r.dpi()))
	dc := draw.New(img)

	tiles := draw.Tiles{
		Rows:      len(spec.Panels),
		Cols:      len(r.Classifiers),
		PadTop:    vg.Points(titleHeight),
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 4,
		PadX:      vg.Millimeter * 6,
		PadY:      vg.Millimeter * 6,
	}

	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		for j := range plots[i] {
			plots[i][j].Draw(canvases[i][j])
		}
	}

	sty := plots[0][0].Title.TextStyle
	sty.Font.Size = vg.Points(titleFontSize)
	sty.XAlign = draw.XCenter
	sty.YAlign = draw.YTop
	dc.FillText(sty, vg.Point{X: dc.Center().X, Y: dc.Max.Y - vg.Millimeter*2}, spec.FullTitle(project))

	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(w); err != nil {
		return fmt.Errorf("chart %s: failed to encode png: %w", spec.Name, err)
	}
	return nil
}

// panelRow builds one plot per classifier for panel. All plots in the row share a y range.
func (r *Renderer) panelRow(spec Spec, panel Panel, groups summary.Groups, last bool) ([]*plot.Plot, error) {
	row := make([]*plot.Plot, len(r.Classifiers))
	ymin, ymax := math.Inf(1), math.Inf(-1)

	boxWidth := r.boxWidth(spec)
	for j, clf := range r.Classifiers {
		p, err := plot.New()
		if err != nil {
			return nil, fmt.Errorf("failed to create plot: %w", err)
		}

		for k, label := range spec.Order {
			values := groups.Values(clf, label)
			if len(values) == 0 {
				continue
			}
			box, err := plotter.NewBoxPlot(boxWidth, float64(k), plotter.Values(values))
			if err != nil {
				return nil, fmt.Errorf("failed to build box for %s/%s: %w", clf, label, err)
			}
			p.Add(&filledBox{BoxPlot: box, Fill: panel.Color})

			for _, v := range values {
				ymin = math.Min(ymin, v)
				ymax = math.Max(ymax, v)
			}
		}

		p.NominalX(tickLabels(spec.Order, last)...)
		p.X.Min = -0.5
		p.X.Max = float64(len(spec.Order)) - 0.5
		if last {
			p.X.Tick.Label.Rotation = math.Pi / 4
			p.X.Tick.Label.XAlign = draw.XRight
			p.X.Tick.Label.YAlign = draw.YCenter
		}
		if j == 0 {
			p.Y.Label.Text = panel.YLabel
		}

		row[j] = p
	}

	if math.IsInf(ymin, 1) {
		ymin, ymax = 0, 1
	}
	pad := (ymax - ymin) * 0.05
	if pad == 0 {
		pad = 0.5
	}
	for _, p := range row {
		p.Y.Min = ymin - pad
		p.Y.Max = ymax + pad
	}

	return row, nil
}

func (r *Renderer) boxWidth(spec Spec) vg.Length {
	frac := r.BoxWidth
	if frac <= 0 {
		frac = DefaultBoxWidth
	}
	// Axis labels and padding take roughly a fifth of each panel.
	slot := spec.Width / vg.Length(len(r.Classifiers)) * 0.8 / vg.Length(len(spec.Order))
	return slot * vg.Length(frac)
}

func (r *Renderer) dpi() int {
	if r.DPI <= 0 {
		return vgimg.DefaultDPI
	}
	return r.DPI
}

func tickLabels(order []model.TechniqueLabel, show bool) []string {
	names := make([]string, len(order))
	if !show {
		return names
	}
	for i, l := range order {
		names[i] = l.String()
	}
	return names
}

// filledBox paints the interquartile range of a box plot before drawing the box outline,
// median and whiskers on top.
type filledBox struct {
	*plotter.BoxPlot
	Fill color.Color
}

func (b *filledBox) Plot(c draw.Canvas, plt *plot.Plot) {
	if b.Fill != nil {
		trX, trY := plt.Transforms(&c)
		x := trX(b.Location) + b.Offset
		q1, q3 := trY(b.Quartile1), trY(b.Quartile3)
		half := b.Width / 2
		pts := []vg.Point{
			{X: x - half, Y: q1},
			{X: x + half, Y: q1},
			{X: x + half, Y: q3},
			{X: x - half, Y: q3},
		}
		c.FillPolygon(b.Fill, c.ClipPolygonY(pts))
	}
	b.BoxPlot.Plot(c, plt)
}
