package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultMassNeV  = 10.0
	DefaultG11      = 0.5
	DefaultEminGeV  = 0.1
	DefaultEmaxGeV  = 100.0
	DefaultNEnergy  = 200
	DefaultEnsemble = 10
)

type Config struct {
	Environment  string       `yaml:"environment"`
	Polarization string       `yaml:"polarization"`
	ALP          ALPConfig    `yaml:"alp"`
	Source       SourceConfig `yaml:"source"`
	Grid         GridConfig   `yaml:"grid"`
	ICM          ICMConfig    `yaml:"icm"`
	IGM          IGMConfig    `yaml:"igm"`
	Slab         SlabConfig   `yaml:"slab"`
	Seed         int64        `yaml:"seed"`
	Ensemble     int          `yaml:"ensemble"`
	QED          bool         `yaml:"qed"`
}

type ALPConfig struct {
	MassNeV float64 `yaml:"mass_nev"`
	G11     float64 `yaml:"g11"`
}

type SourceConfig struct {
	Z      float64 `yaml:"z"`
	GalLon float64 `yaml:"gal_lon"`
	GalLat float64 `yaml:"gal_lat"`
}

type GridConfig struct {
	EminGeV float64 `yaml:"emin_gev"`
	EmaxGeV float64 `yaml:"emax_gev"`
	N       int     `yaml:"n"`
}

type ICMConfig struct {
	B0MuG     float64 `yaml:"b0_mug"`
	RadiusKpc float64 `yaml:"radius_kpc"`
	NCells    int     `yaml:"n_cells"`
	N0Cm3     float64 `yaml:"n0_cm3"`
	RCoreKpc  float64 `yaml:"r_core_kpc"`
	Beta      float64 `yaml:"beta"`
	Eta       float64 `yaml:"eta"`
	SigmaB    float64 `yaml:"sigma_b"`
}

type IGMConfig struct {
	B0NanoG  float64 `yaml:"b0_ng"`
	N0Cm3    float64 `yaml:"n0_cm3"`
	NCells   int     `yaml:"n_cells"`
	TauTotal float64 `yaml:"tau_total"`
}

type SlabConfig struct {
	BMuG      float64 `yaml:"b_mug"`
	PsiRad    float64 `yaml:"psi_rad"`
	NelCm3    float64 `yaml:"nel_cm3"`
	LengthKpc float64 `yaml:"length_kpc"`
	GammaKpc  float64 `yaml:"gamma_kpc"`
}

func DefaultConfig() *Config {
	return &Config{
		Environment:  "icm",
		Polarization: "unpolarized",
		ALP:          ALPConfig{MassNeV: DefaultMassNeV, G11: DefaultG11},
		Grid:         GridConfig{EminGeV: DefaultEminGeV, EmaxGeV: DefaultEmaxGeV, N: DefaultNEnergy},
		ICM: ICMConfig{
			B0MuG: 10.0, RadiusKpc: 500.0, NCells: 100,
			N0Cm3: 3.9e-2, RCoreKpc: 80.0, Beta: 1.2, Eta: 0.5,
		},
		IGM:      IGMConfig{B0NanoG: 1.0, N0Cm3: 1e-7, NCells: 50},
		Slab:     SlabConfig{BMuG: 1.0, NelCm3: 1e-3, LengthKpc: 100.0},
		Ensemble: DefaultEnsemble,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate catches parameter combinations the solver would reject anyway,
// with friendlier messages.
func (c *Config) Validate() error {
	if c.ALP.MassNeV < 0 || c.ALP.G11 < 0 {
		return fmt.Errorf("config: ALP parameters must be non-negative")
	}
	if c.Grid.EminGeV <= 0 || c.Grid.EmaxGeV <= c.Grid.EminGeV {
		return fmt.Errorf("config: invalid energy grid [%g, %g]", c.Grid.EminGeV, c.Grid.EmaxGeV)
	}
	if c.Grid.N < 2 {
		return fmt.Errorf("config: energy grid needs at least 2 points")
	}
	if c.Environment == "igm" && c.Source.Z <= 0 {
		return fmt.Errorf("config: igm environment requires a positive source redshift")
	}
	return nil
}
