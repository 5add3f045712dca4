// Package registry maps environment and polarization names to constructors,
// so the CLI and config layer can refer to them by string.
package registry

import (
	"fmt"
	"math"
	"sort"

	"github.com/astroloom/alpmix/internal/alp"
	"github.com/astroloom/alpmix/internal/beam"
	"github.com/astroloom/alpmix/internal/config"
	"github.com/astroloom/alpmix/internal/environ"
)

type Registry struct {
	environments  map[string]func(*config.Config) (environ.Module, error)
	polarizations map[string]func() beam.Density
}

func New() *Registry {
	r := &Registry{
		environments:  make(map[string]func(*config.Config) (environ.Module, error)),
		polarizations: make(map[string]func() beam.Density),
	}

	r.environments["icm"] = func(cfg *config.Config) (environ.Module, error) {
		m := environ.NewCellICM(cfg.Seed)
		m.B0MuG = cfg.ICM.B0MuG
		m.RadiusKpc = cfg.ICM.RadiusKpc
		m.NCells = cfg.ICM.NCells
		m.N0Cm3 = cfg.ICM.N0Cm3
		m.RCoreKpc = cfg.ICM.RCoreKpc
		m.Beta = cfg.ICM.Beta
		m.Eta = cfg.ICM.Eta
		m.SigmaB = cfg.ICM.SigmaB
		return m, nil
	}
	r.environments["igm"] = func(cfg *config.Config) (environ.Module, error) {
		src, err := alp.NewSource(cfg.Source.Z, cfg.Source.GalLon, cfg.Source.GalLat)
		if err != nil {
			return nil, err
		}
		if src.Z == 0 {
			return nil, fmt.Errorf("registry: igm environment requires a positive source redshift")
		}
		m := environ.NewCellIGM(src.Z, cfg.Seed)
		m.B0NanoG = cfg.IGM.B0NanoG
		m.N0Cm3 = cfg.IGM.N0Cm3
		m.NCells = cfg.IGM.NCells
		m.TauTotal = cfg.IGM.TauTotal
		return m, nil
	}
	r.environments["slab"] = func(cfg *config.Config) (environ.Module, error) {
		m := environ.NewSlab(cfg.Slab.BMuG, cfg.Slab.PsiRad, cfg.Slab.NelCm3, cfg.Slab.LengthKpc)
		m.GammaKpc = cfg.Slab.GammaKpc
		return m, nil
	}

	r.polarizations["unpolarized"] = beam.UnpolarizedPhoton
	r.polarizations["x"] = func() beam.Density { return beam.PhotonPol(0) }
	r.polarizations["y"] = func() beam.Density { return beam.PhotonPol(math.Pi / 2) }
	r.polarizations["alp"] = beam.PureALP

	return r
}

func (r *Registry) GetEnvironment(name string, cfg *config.Config) (environ.Module, error) {
	fn, ok := r.environments[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown environment: %s", name)
	}
	return fn(cfg)
}

func (r *Registry) GetPolarization(name string) (beam.Density, error) {
	fn, ok := r.polarizations[name]
	if !ok {
		return beam.Density{}, fmt.Errorf("registry: unknown polarization: %s", name)
	}
	return fn(), nil
}

func (r *Registry) ListEnvironments() []string {
	names := make([]string, 0, len(r.environments))
	for name := range r.environments {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) ListPolarizations() []string {
	names := make([]string, 0, len(r.polarizations))
	for name := range r.polarizations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
