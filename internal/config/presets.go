package config

// Presets are ready-made configurations for well-studied sightlines.
var Presets = map[string]*Config{
	// NGC 1275 seen through the Perseus cluster field.
	"perseus": {
		Environment:  "icm",
		Polarization: "unpolarized",
		ALP:          ALPConfig{MassNeV: 10.0, G11: 0.5},
		Source:       SourceConfig{Z: 0.017559, GalLon: 150.58, GalLat: -13.26},
		Grid:         GridConfig{EminGeV: 0.1, EmaxGeV: 1000.0, N: 300},
		ICM: ICMConfig{
			B0MuG: 10.0, RadiusKpc: 500.0, NCells: 100,
			N0Cm3: 3.9e-2, RCoreKpc: 80.0, Beta: 1.2, Eta: 0.5,
		},
		Ensemble: 10,
	},
	// Intergalactic field at its observational upper limit.
	"igmf": {
		Environment:  "igm",
		Polarization: "unpolarized",
		ALP:          ALPConfig{MassNeV: 1.0, G11: 1.0},
		Source:       SourceConfig{Z: 0.2},
		Grid:         GridConfig{EminGeV: 10.0, EmaxGeV: 10000.0, N: 250},
		IGM:          IGMConfig{B0NanoG: 1.0, N0Cm3: 1e-7, NCells: 50},
		Ensemble:     10,
	},
	// Single homogeneous domain, the textbook configuration.
	"slab": {
		Environment:  "slab",
		Polarization: "y",
		ALP:          ALPConfig{MassNeV: 1.0, G11: 5.0},
		Grid:         GridConfig{EminGeV: 0.05, EmaxGeV: 50.0, N: 200},
		Slab:         SlabConfig{BMuG: 1.0, NelCm3: 1e-3, LengthKpc: 100.0},
		Ensemble:     1,
	},
}

// GetPreset returns a copy of the named preset, or nil if it does not exist.
// Callers may overwrite fields without touching the shared table.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *p
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
