package chart

import (
	"image/color"

	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot/plotter"

	"github.com/nao1215/wordhist/internal/model"
)

// maxDistributionBins caps the histogram resolution for very frequent words.
const maxDistributionBins = 50

// DistributionTitle is the default distribution histogram title.
const DistributionTitle = "Word Count Distribution"

// Distribution builds a histogram of word counts: for each number of
// occurrences k, how many distinct words occur k times. Natural text puts
// most words in the first bin. WithLimit restricts the histogram to the
// most frequent words; by default every word is counted.
func Distribution(list model.RankedList, opts ...Option) (*hplot.Plot, error) {
	o := newOptions(DistributionTitle, 0, opts...)

	top := list.Top(o.limit)
	if len(top) == 0 {
		return nil, ErrNoData
	}

	hh := hplot.NewH1D(CountHistogram(top))
	hh.FillColor = barColor
	hh.LineStyle.Color = color.NRGBA{R: 31, G: 119, B: 180, A: 255}

	p := hplot.New()
	p.Title.Text = o.title
	p.X.Label.Text = "Occurrences per word"
	p.Y.Label.Text = "Words"
	p.Add(hh, plotter.NewGrid())

	return p, nil
}

// CountHistogram returns the histogram behind Distribution. Bins are centered
// on whole counts until the highest count exceeds maxDistributionBins.
func CountHistogram(list model.RankedList) *hbook.H1D {
	maxCount := max(list.MaxCount(), 1)
	h := hbook.NewH1D(min(maxCount, maxDistributionBins), 0.5, float64(maxCount)+0.5)
	for _, e := range list {
		h.Fill(float64(e.Count), 1)
	}
	return h
}
