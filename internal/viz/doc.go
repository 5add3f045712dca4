// Package viz renders mixing spectra in the terminal: static asciigraph
// plots and a bubbletea live view with adjustable ALP parameters.
package viz
