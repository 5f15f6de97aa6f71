package chart

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/nao1215/wordhist/internal/model"
)

// Word cloud layout parameters.
const (
	// spiralStep is the angle increment, in radians, between placement attempts.
	spiralStep = 0.1

	// spiralTurns bounds the search before a word is dropped.
	spiralTurns = 60

	// cloudPadding is the gap kept around every word.
	cloudPadding = vg.Length(2)
)

// Placement is a word positioned by the cloud layout.
type Placement struct {
	Word string

	// Size is the font size.
	Size vg.Length

	// Rect is the area occupied by the word, relative to the canvas center.
	Rect vg.Rectangle

	// Rank is the word's index in the ranked list, used to pick its color.
	Rank int
}

// Measurer returns the width and height of word drawn at size.
type Measurer func(word string, size vg.Length) (vg.Length, vg.Length)

// FontSizes maps each entry's count linearly onto [minSize, maxSize].
// When every count is equal all words get maxSize.
func FontSizes(list model.RankedList, minSize, maxSize vg.Length) []vg.Length {
	sizes := make([]vg.Length, len(list))
	if len(list) == 0 {
		return sizes
	}

	hi := float64(list[0].Count)
	lo := float64(list[len(list)-1].Count)
	for i, e := range list {
		if hi == lo {
			sizes[i] = maxSize
			continue
		}
		frac := (float64(e.Count) - lo) / (hi - lo)
		sizes[i] = minSize + vg.Length(frac)*(maxSize-minSize)
	}
	return sizes
}

// Layout places words on an archimedean spiral around the center of an
// area of the given width and height, largest first. Words that do not fit
// anywhere inside the area are dropped. The result is deterministic.
func Layout(list model.RankedList, sizes []vg.Length, width, height vg.Length, measure Measurer) []Placement {
	bounds := vg.Rectangle{
		Min: vg.Point{X: -width / 2, Y: -height / 2},
		Max: vg.Point{X: width / 2, Y: height / 2},
	}
	// Stretch the spiral to the aspect ratio of the area.
	aspect := float64(height / width)
	radiusStep := float64(min(width, height)) / (2 * math.Pi * spiralTurns)

	placed := make([]Placement, 0, len(list))
	for i, e := range list {
		w, h := measure(e.Word, sizes[i])
		w += 2 * cloudPadding
		h += 2 * cloudPadding

		for t := 0.0; t < 2*math.Pi*spiralTurns; t += spiralStep {
			r := radiusStep * t
			cx := vg.Length(r * math.Cos(t))
			cy := vg.Length(r * math.Sin(t) * aspect)
			rect := vg.Rectangle{
				Min: vg.Point{X: cx - w/2, Y: cy - h/2},
				Max: vg.Point{X: cx + w/2, Y: cy + h/2},
			}
			if !contains(bounds, rect) || overlapsAny(rect, placed) {
				continue
			}
			placed = append(placed, Placement{Word: e.Word, Size: sizes[i], Rect: rect, Rank: i})
			break
		}
	}
	return placed
}

// contains reports whether inner lies entirely within outer.
func contains(outer, inner vg.Rectangle) bool {
	return inner.Min.X >= outer.Min.X && inner.Min.Y >= outer.Min.Y &&
		inner.Max.X <= outer.Max.X && inner.Max.Y <= outer.Max.Y
}

// overlapsAny reports whether rect intersects any placed word.
func overlapsAny(rect vg.Rectangle, placed []Placement) bool {
	for _, p := range placed {
		if rect.Min.X < p.Rect.Max.X && rect.Max.X > p.Rect.Min.X &&
			rect.Min.Y < p.Rect.Max.Y && rect.Max.Y > p.Rect.Min.Y {
			return true
		}
	}
	return false
}

// cloudPlotter draws a word cloud into the data area of a plot.
// It implements plot.Plotter.
type cloudPlotter struct {
	list model.RankedList
}

// Plot lays out and draws the words. Layout happens here because font
// metrics and the final canvas size are only known at draw time.
func (cp *cloudPlotter) Plot(c draw.Canvas, _ *plot.Plot) {
	size := c.Size()
	maxSize := min(size.X, size.Y) / 8
	minSize := max(maxSize/6, vg.Points(6))

	style := func(s vg.Length, col color.Color) text.Style {
		return text.Style{
			Color:   col,
			Font:    font.From(plot.DefaultFont, s),
			XAlign:  draw.XCenter,
			YAlign:  draw.YCenter,
			Handler: plot.DefaultTextHandler,
		}
	}
	measure := func(word string, s vg.Length) (vg.Length, vg.Length) {
		sty := style(s, color.Black)
		return sty.Width(word), sty.Height(word)
	}

	center := vg.Point{
		X: (c.Min.X + c.Max.X) / 2,
		Y: (c.Min.Y + c.Max.Y) / 2,
	}
	for _, p := range Layout(cp.list, FontSizes(cp.list, minSize, maxSize), size.X, size.Y, measure) {
		pt := vg.Point{
			X: center.X + (p.Rect.Min.X+p.Rect.Max.X)/2,
			Y: center.Y + (p.Rect.Min.Y+p.Rect.Max.Y)/2,
		}
		c.FillText(style(p.Size, plotutil.Color(p.Rank)), pt, p.Word)
	}
}

// newCloudPlotter returns the plotter for the first o.limit entries of list.
func newCloudPlotter(list model.RankedList, o *options) (*cloudPlotter, error) {
	top := list.Top(o.limit)
	if len(top) == 0 {
		return nil, ErrNoData
	}
	return &cloudPlotter{list: top}, nil
}

// WordCloud builds a word cloud of at most limit entries of list.
// Font size grows linearly with the word's count.
func WordCloud(list model.RankedList, opts ...Option) (*plot.Plot, error) {
	o := newOptions("", DefaultCloudWords, opts...)

	cp, err := newCloudPlotter(list, o)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = o.title
	p.HideAxes()
	p.Add(cp)

	return p, nil
}
