// Package export renders computed spectra to standalone SVG documents.
package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/astroloom/alpmix/internal/mixing"
)

const margin = 40.0

// SpectrumToSVG draws the conversion probability curve with a logarithmic
// energy axis. Width and height are the pixel dimensions of the document.
func SpectrumToSVG(result *mixing.Result, width, height int) string {
	n := len(result.EnergiesGeV)
	if n < 2 {
		return ""
	}

	w := float64(width)
	h := float64(height)
	plotW := w - 2*margin
	plotH := h - 2*margin

	logLo := math.Log10(result.EnergiesGeV[0])
	logHi := math.Log10(result.EnergiesGeV[n-1])
	if logHi <= logLo {
		return ""
	}

	maxP := 0.0
	for _, p := range result.Paa {
		if p > maxP {
			maxP = p
		}
	}
	if maxP == 0 {
		maxP = 1
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	// Axes.
	sb.WriteString(fmt.Sprintf(`<g stroke="#555555" stroke-width="1">
<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
</g>
`, margin, h-margin, w-margin, h-margin, margin, margin, margin, h-margin))

	// Decade ticks on the energy axis.
	sb.WriteString(`<g fill="#888888" font-family="monospace" font-size="10">` + "\n")
	for d := math.Ceil(logLo); d <= logHi; d++ {
		x := margin + plotW*(d-logLo)/(logHi-logLo)
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="middle">1e%d</text>
`, x, h-margin+14, int(d)))
	}
	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="middle">E [GeV]</text>
`, w/2, h-8))
	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="start">P(g-&gt;a), max %.3g</text>
`, margin, margin-8, maxP))
	sb.WriteString("</g>\n")

	// Spectrum polyline.
	var pts strings.Builder
	for i := 0; i < n; i++ {
		x := margin + plotW*(math.Log10(result.EnergiesGeV[i])-logLo)/(logHi-logLo)
		y := h - margin - plotH*(result.Paa[i]/maxP)
		if i > 0 {
			pts.WriteString(" ")
		}
		pts.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
	}
	sb.WriteString(fmt.Sprintf(`<polyline points="%s" fill="none" stroke="#00ff00" stroke-width="1.5"/>
`, pts.String()))

	sb.WriteString("</svg>")
	return sb.String()
}
