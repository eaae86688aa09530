package app

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/ewaldman/surveygen/dataset"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// plotHistogram renders a normalized histogram PNG of the table's
// representative numeric column next to the CSV output.
func plotHistogram(tbl *dataset.Table, outputDirectory string, log *slog.Logger) error {
	if len(tbl.PlotColumn) <= 0 {
		return nil
	}
	values, valuesErr := tbl.Float64Column(tbl.PlotColumn)
	if valuesErr != nil {
		return valuesErr
	}

	// Make a plot and set its title.
	p := plot.New()
	p.X.Label.Text = tbl.PlotColumn
	p.Y.Label.Text = "Probability"
	p.Title.Text = fmt.Sprintf("%s: %s", tbl.Name, tbl.PlotColumn)

	// Bin the data into 30 bins and graph that.
	hist, histErr := plotter.NewHist(plotter.Values(values), 30)
	if histErr != nil {
		return histErr
	}
	hist.Normalize(1)
	p.Add(hist)

	histogramName := strings.TrimSuffix(tbl.FileName, ".csv") + ".png"
	histogramPath := filepath.Join(outputDirectory, histogramName)
	log.Info("Writing histogram", "path", histogramPath)

	// Save the plot to a PNG file.
	return p.Save(8*vg.Inch, 6*vg.Inch, histogramPath)
}
