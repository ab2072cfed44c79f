// Package chart renders the dataset distribution as a scatter plot image.
package chart

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"pricing-datagen/internal/generator"
)

// SaveScatter plots Price against Quantity and saves the chart to filename.
// The image format is inferred from the file extension.
func SaveScatter(rows []generator.Observation, filename string) error {
	p := plot.New()
	p.Title.Text = "Data Distribution"
	p.X.Label.Text = "Price"
	p.Y.Label.Text = "Quantity"

	pts := make(plotter.XYs, len(rows))
	for i, r := range rows {
		pts[i].X = r.Price
		pts[i].Y = r.Quantity
	}

	s, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	s.GlyphStyle.Radius = vg.Points(2)
	s.Color = color.RGBA{R: 50, G: 50, B: 255, A: 255}
	p.Add(s)

	return p.Save(12*vg.Inch, 6*vg.Inch, filename)
}
