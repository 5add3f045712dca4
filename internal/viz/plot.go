package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/astroloom/alpmix/internal/mixing"
)

// ConversionPlot renders the photon-ALP conversion probability over the
// energy grid. The x axis is the grid index, which is uniform in log energy.
func ConversionPlot(result *mixing.Result, width, height int) string {
	caption := fmt.Sprintf("P(gamma->a), E = %.3g .. %.3g GeV (log spaced)",
		result.EnergiesGeV[0], result.EnergiesGeV[len(result.EnergiesGeV)-1])

	return asciigraph.Plot(result.Paa,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// SurvivalPlot renders the photon survival probability.
func SurvivalPlot(result *mixing.Result, width, height int) string {
	caption := fmt.Sprintf("P(gamma->gamma), E = %.3g .. %.3g GeV (log spaced)",
		result.EnergiesGeV[0], result.EnergiesGeV[len(result.EnergiesGeV)-1])

	return asciigraph.Plot(result.Pgg(),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// EnvelopePlot renders the mean conversion probability of an ensemble with
// its min/max band as separate series.
func EnvelopePlot(result *mixing.EnsembleResult, width, height int) string {
	caption := fmt.Sprintf("P(gamma->a) over %d realizations (min/mean/max)", result.Runs)

	return asciigraph.PlotMany(
		[][]float64{result.MinPaa, result.MeanPaa, result.MaxPaa},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Green, asciigraph.Blue),
	)
}
