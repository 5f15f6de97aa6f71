package chart

import (
	"fmt"
	"math"

	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/nao1215/wordhist/internal/model"
)

// maxBarWidth keeps bars readable when only a few words are drawn.
const maxBarWidth = 40

// Bar builds a bar chart of the first limit entries of list.
// The list is expected to be ranked already, so the tallest bar comes first.
func Bar(list model.RankedList, opts ...Option) (*hplot.Plot, error) {
	o := newOptions(DefaultTitle, DefaultLimit, opts...)

	top := list.Top(o.limit)
	if len(top) == 0 {
		return nil, ErrNoData
	}

	values := make(plotter.Values, len(top))
	for i, e := range top {
		values[i] = float64(e.Count)
	}

	bars, err := plotter.NewBarChart(values, barWidth(len(top)))
	if err != nil {
		return nil, fmt.Errorf("failed to create bar chart: %w", err)
	}
	bars.Color = barColor
	bars.LineStyle.Width = 0

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil

	p := hplot.New()
	p.Title.Text = o.title
	p.Y.Label.Text = "Frequency"
	p.Y.Min = 0
	p.Add(grid, bars)
	p.NominalX(top.Words()...)

	// Vertical labels so long words do not overlap.
	p.X.Tick.Label.Rotation = math.Pi / 2
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	return p, nil
}

// barWidth spreads n bars over the default chart width.
func barWidth(n int) vg.Length {
	w := BarSize.Width * 0.7 / vg.Length(n)
	if w > maxBarWidth {
		return maxBarWidth
	}
	return w
}
