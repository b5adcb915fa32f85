package chart

import (
	"bytes"
	"fmt"

	"github.com/ukaji3/scorelens/pkg/scorelens/models"
	"github.com/ukaji3/scorelens/pkg/scorelens/stats"
	"gonum.org/v1/gonum/stat/distuv"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Render draws the density histogram of the sample with the fitted normal
// curve and a dashed marker at the mean, returning PNG bytes. The summary
// must have been computed from the same sample.
func Render(sum models.Summary, xs []float64, theme Theme) ([]byte, error) {
	if len(xs) < 2 {
		return nil, stats.ErrInsufficientData
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s 分布概览", sum.Column)
	if sum.Column == "" {
		p.Title.Text = "成绩分布概览"
	}
	p.Title.TextStyle.Color = theme.Main
	p.BackgroundColor = theme.Background
	p.X.LineStyle.Color = theme.Text
	p.Y.LineStyle.Color = theme.Text

	hist, err := plotter.NewHist(plotter.Values(xs), stats.HistogramBins)
	if err != nil {
		return nil, err
	}
	hist.Normalize(1)
	hist.FillColor = alpha(theme.Main, 0x33)
	hist.LineStyle.Color = theme.Main
	hist.LineStyle.Width = vg.Points(1)

	dist := distuv.Normal{Mu: sum.Mean, Sigma: sum.StdDev}
	curve := plotter.NewFunction(dist.Prob)
	curve.Samples = 300
	curve.Color = theme.Main
	curve.Width = vg.Points(3)

	peak := dist.Prob(sum.Mean)
	meanLine, err := plotter.NewLine(plotter.XYs{
		{X: sum.Mean, Y: 0},
		{X: sum.Mean, Y: peak},
	})
	if err != nil {
		return nil, err
	}
	meanLine.Color = theme.Accent
	meanLine.Width = vg.Points(2)
	meanLine.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}

	p.Add(hist, curve, meanLine)
	p.Legend.Add("理论正态分布", curve)
	p.Legend.Add("平均分", meanLine)
	p.Legend.Top = true
	p.Legend.Left = true

	p.X.Min, p.X.Max = stats.XRange(sum)

	wt, err := p.WriterTo(10*vg.Inch, 6*vg.Inch, "png")
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
