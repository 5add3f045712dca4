package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/astroloom/alpmix/internal/alp"
	"github.com/astroloom/alpmix/internal/analysis"
	"github.com/astroloom/alpmix/internal/config"
	"github.com/astroloom/alpmix/internal/environ"
	"github.com/astroloom/alpmix/internal/export"
	"github.com/astroloom/alpmix/internal/grid"
	"github.com/astroloom/alpmix/internal/mixing"
	"github.com/astroloom/alpmix/internal/registry"
	"github.com/astroloom/alpmix/internal/storage"
	"github.com/astroloom/alpmix/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string

	massNeV float64
	g11     float64
	envName string
	polName string
	eminGeV float64
	emaxGeV float64
	nEnergy int
	seed    int64
	zSource float64
	qed     bool

	ensembleRuns int

	massMin, massMax float64
	gMin, gMax       float64
	scanSteps        int
	bandMin, bandMax float64

	svgWidth, svgHeight int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "alpmix",
		Short: "photon-ALP mixing simulation lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".alpmix", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "compute a mixing spectrum",
		RunE:  runSpectrum,
	}
	addSolverFlags(runCmd)

	ensembleCmd := &cobra.Command{
		Use:   "ensemble",
		Short: "envelope over turbulence realizations",
		RunE:  runEnsemble,
	}
	addSolverFlags(ensembleCmd)
	ensembleCmd.Flags().IntVar(&ensembleRuns, "runs", config.DefaultEnsemble, "number of realizations")

	scanCmd := &cobra.Command{
		Use:   "scan",
		Short: "grid scan over mass and coupling",
		RunE:  runScan,
	}
	addSolverFlags(scanCmd)
	scanCmd.Flags().Float64Var(&massMin, "mass-min", 0.1, "minimum mass (neV)")
	scanCmd.Flags().Float64Var(&massMax, "mass-max", 100, "maximum mass (neV)")
	scanCmd.Flags().Float64Var(&gMin, "g-min", 0.1, "minimum coupling (1e-11/GeV)")
	scanCmd.Flags().Float64Var(&gMax, "g-max", 10, "maximum coupling (1e-11/GeV)")
	scanCmd.Flags().IntVar(&scanSteps, "steps", 5, "grid steps per axis")
	scanCmd.Flags().Float64Var(&bandMin, "band-min", 1, "lower edge of scoring band (GeV)")
	scanCmd.Flags().Float64Var(&bandMax, "band-max", 100, "upper edge of scoring band (GeV)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved spectrum",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export spectrum to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export spectrum to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 800, "image width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 500, "image height")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "spectrum statistics and oscillation scale",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [env]",
		Short: "list built-in presets, optionally for one environment",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			found := 0
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				if len(args) == 1 && cfg.Environment != args[0] {
					continue
				}
				found++
				fmt.Printf("%-10s %s, m=%.3g neV, g=%.3g\n",
					name, cfg.Environment, cfg.ALP.MassNeV, cfg.ALP.G11)
			}
			if found == 0 && len(args) == 1 {
				fmt.Printf("no presets for environment: %s\n", args[0])
			}
			return nil
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive live spectrum",
		RunE:  runLive,
	}
	addSolverFlags(liveCmd)

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark the solver",
		RunE:  benchSolver,
	}
	addSolverFlags(benchCmd)

	rootCmd.AddCommand(runCmd, ensembleCmd, scanCmd, listCmd, plotCmd,
		exportCmd, exportJSONCmd, exportCSVCmd, exportSVGCmd, analyzeCmd,
		presetsCmd, liveCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSolverFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use a built-in preset")
	cmd.Flags().Float64Var(&massNeV, "mass", config.DefaultMassNeV, "ALP mass (neV)")
	cmd.Flags().Float64Var(&g11, "g11", config.DefaultG11, "photon coupling (1e-11/GeV)")
	cmd.Flags().StringVar(&envName, "env", "icm", "environment (icm, igm, slab)")
	cmd.Flags().StringVar(&polName, "pol", "unpolarized", "initial polarization")
	cmd.Flags().Float64Var(&eminGeV, "emin", config.DefaultEminGeV, "minimum energy (GeV)")
	cmd.Flags().Float64Var(&emaxGeV, "emax", config.DefaultEmaxGeV, "maximum energy (GeV)")
	cmd.Flags().IntVar(&nEnergy, "points", config.DefaultNEnergy, "energy grid points")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().Float64Var(&zSource, "z", 0, "source redshift")
	cmd.Flags().BoolVar(&qed, "qed", false, "include QED birefringence term")
}

// buildConfig layers preset < config file < explicit flags.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("mass") {
		cfg.ALP.MassNeV = massNeV
	}
	if cmd.Flags().Changed("g11") {
		cfg.ALP.G11 = g11
	}
	if cmd.Flags().Changed("env") {
		cfg.Environment = envName
	}
	if cmd.Flags().Changed("pol") {
		cfg.Polarization = polName
	}
	if cmd.Flags().Changed("emin") {
		cfg.Grid.EminGeV = eminGeV
	}
	if cmd.Flags().Changed("emax") {
		cfg.Grid.EmaxGeV = emaxGeV
	}
	if cmd.Flags().Changed("points") {
		cfg.Grid.N = nEnergy
	}
	if cmd.Flags().Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("z") {
		cfg.Source.Z = zSource
	}
	if cmd.Flags().Changed("qed") {
		cfg.QED = qed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func buildSolver(cfg *config.Config) (*mixing.Solver, environ.Module, error) {
	reg := registry.New()

	env, err := reg.GetEnvironment(cfg.Environment, cfg)
	if err != nil {
		return nil, nil, err
	}
	rho0, err := reg.GetPolarization(cfg.Polarization)
	if err != nil {
		return nil, nil, err
	}

	particle, err := alp.New(cfg.ALP.MassNeV, cfg.ALP.G11)
	if err != nil {
		return nil, nil, err
	}

	s := mixing.New(particle, env)
	s.Rho0 = rho0
	s.QED = cfg.QED
	return s, env, nil
}

func runSpectrum(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	s, env, err := buildSolver(cfg)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	energies := grid.LogSpace(cfg.Grid.EminGeV, cfg.Grid.EmaxGeV, cfg.Grid.N)

	fmt.Printf("computing %s spectrum (%d cells, %d energies)...\n",
		env.Name(), len(env.Cells()), len(energies))
	start := time.Now()

	result, err := s.Run(context.Background(), energies)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	summary := analysis.Summarize(result)
	runID, err := st.Save(storage.RunMetadata{
		Environment:  env.Name(),
		MassNeV:      cfg.ALP.MassNeV,
		G11:          cfg.ALP.G11,
		Seed:         cfg.Seed,
		Polarization: cfg.Polarization,
		Metrics:      summary.Metrics(),
	}, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Println("\nmetrics:")
	for name, val := range summary.Metrics() {
		fmt.Printf("  %s: %.6g\n", name, val)
	}
	return nil
}

func runEnsemble(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("runs") {
		cfg.Ensemble = ensembleRuns
	}

	reg := registry.New()
	env, err := reg.GetEnvironment(cfg.Environment, cfg)
	if err != nil {
		return err
	}
	realizer, ok := env.(environ.Realizer)
	if !ok {
		return fmt.Errorf("environment %s has no random realizations", env.Name())
	}

	particle, err := alp.New(cfg.ALP.MassNeV, cfg.ALP.G11)
	if err != nil {
		return err
	}
	rho0, err := reg.GetPolarization(cfg.Polarization)
	if err != nil {
		return err
	}

	ens := mixing.NewEnsemble(particle, realizer, cfg.Ensemble, cfg.Seed)
	ens.Rho0 = rho0
	ens.QED = cfg.QED

	energies := grid.LogSpace(cfg.Grid.EminGeV, cfg.Grid.EmaxGeV, cfg.Grid.N)

	fmt.Printf("running %d realizations of %s...\n", cfg.Ensemble, env.Name())
	result, err := ens.Run(context.Background(), energies)
	if err != nil {
		return err
	}

	fmt.Println(viz.EnvelopePlot(result, 80, 15))

	maxSpread := 0.0
	for i := range result.EnergiesGeV {
		if spread := result.MaxPaa[i] - result.MinPaa[i]; spread > maxSpread {
			maxSpread = spread
		}
	}
	fmt.Printf("\nmax realization spread: %.4f\n", maxSpread)
	return nil
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	masses := grid.LogSpace(massMin, massMax, scanSteps)
	couplings := grid.LogSpace(gMin, gMax, scanSteps)
	energies := grid.LogSpace(bandMin, bandMax, 50)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MASS_NEV\tG11\tMEAN_PAA\tMAX_PAA")

	bestMean := -1.0
	var bestMass, bestG float64

	for _, m := range masses {
		for _, g := range couplings {
			scanCfg := *cfg
			scanCfg.ALP.MassNeV = m
			scanCfg.ALP.G11 = g

			s, _, err := buildSolver(&scanCfg)
			if err != nil {
				return err
			}
			result, err := s.Run(context.Background(), energies)
			if err != nil {
				return err
			}

			summary := analysis.Summarize(result)
			fmt.Fprintf(w, "%.3g\t%.3g\t%.4f\t%.4f\n", m, g, summary.MeanPaa, summary.MaxPaa)

			if summary.MeanPaa > bestMean {
				bestMean = summary.MeanPaa
				bestMass = m
				bestG = g
			}
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nstrongest mixing in band [%.3g, %.3g] GeV: m=%.3g neV, g=%.3g (mean P=%.4f)\n",
		bandMin, bandMax, bestMass, bestG, bestMean)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tENV\tTIME\tMASS_NEV\tG11\tGRID\tPOL")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.3g\t%.3g\t[%.3g, %.3g] x%d\t%s\n",
			run.ID,
			run.Environment,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.MassNeV,
			run.G11,
			run.EminGeV,
			run.EmaxGeV,
			run.NEnergies,
			run.Polarization,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)

	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	result, err := st.LoadSpectrum(args[0])
	if err != nil {
		return err
	}
	if len(result.EnergiesGeV) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("environment: %s, m=%.3g neV, g=%.3g\n\n", meta.Environment, meta.MassNeV, meta.G11)

	fmt.Println(viz.ConversionPlot(result, 80, 12))
	fmt.Println()
	fmt.Println(viz.SurvivalPlot(result, 80, 12))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)

	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	result, err := st.LoadSpectrum(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, *meta, result)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	result, err := st.LoadSpectrum(args[0])
	if err != nil {
		return err
	}
	if len(result.EnergiesGeV) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"energy_gev", "pgx", "pgy", "paa", "pgg"}); err != nil {
		return err
	}
	pgg := result.Pgg()
	for i := range result.EnergiesGeV {
		row := []string{
			strconv.FormatFloat(result.EnergiesGeV[i], 'e', 9, 64),
			strconv.FormatFloat(result.Pgx[i], 'e', 9, 64),
			strconv.FormatFloat(result.Pgy[i], 'e', 9, 64),
			strconv.FormatFloat(result.Paa[i], 'e', 9, 64),
			strconv.FormatFloat(pgg[i], 'e', 9, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	result, err := st.LoadSpectrum(args[0])
	if err != nil {
		return err
	}

	svg := export.SpectrumToSVG(result, svgWidth, svgHeight)
	if svg == "" {
		return fmt.Errorf("no data to export")
	}
	_, err = fmt.Println(svg)
	return err
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)

	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	result, err := st.LoadSpectrum(args[0])
	if err != nil {
		return err
	}
	if len(result.EnergiesGeV) == 0 {
		return fmt.Errorf("no data")
	}

	summary := analysis.Summarize(result)

	fmt.Printf("analysis: %s\n", meta.ID)
	fmt.Printf("environment: %s\n\n", meta.Environment)
	fmt.Printf("mean P(g->a): %.4f\n", summary.MeanPaa)
	fmt.Printf("max P(g->a):  %.4f at %.3g GeV\n", summary.MaxPaa, summary.EnergyAtMaxGeV)
	fmt.Printf("min survival: %.4f\n", summary.MinPgg)

	if ec := analysis.CriticalEnergyGeV(result); ec > 0 {
		fmt.Printf("half-max onset: %.3g GeV\n", ec)
	}

	decades := analysis.LogDecades(result.EnergiesGeV)
	if scale := analysis.OscillationScale(result.Paa, decades); scale > 0 {
		fmt.Printf("dominant oscillation scale: %.3f decades\n", scale)
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	env := environ.NewCellICM(cfg.Seed)
	env.B0MuG = cfg.ICM.B0MuG
	env.RadiusKpc = cfg.ICM.RadiusKpc
	env.NCells = cfg.ICM.NCells
	env.N0Cm3 = cfg.ICM.N0Cm3
	env.RCoreKpc = cfg.ICM.RCoreKpc
	env.Beta = cfg.ICM.Beta
	env.Eta = cfg.ICM.Eta

	m := viz.NewModel(cfg.ALP.MassNeV, cfg.ALP.G11, env, cfg.Grid.EminGeV, cfg.Grid.EmaxGeV)

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func benchSolver(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CELLS\tENERGIES\tTIME\tENERGIES/SEC")

	for _, nCells := range []int{10, 100, 500} {
		for _, nE := range []int{50, 200, 1000} {
			benchCfg := *cfg
			benchCfg.Environment = "icm"
			benchCfg.ICM.NCells = nCells

			s, _, err := buildSolver(&benchCfg)
			if err != nil {
				return err
			}
			energies := grid.LogSpace(cfg.Grid.EminGeV, cfg.Grid.EmaxGeV, nE)

			start := time.Now()
			if _, err := s.Run(context.Background(), energies); err != nil {
				return err
			}
			elapsed := time.Since(start)

			perSec := float64(nE) / elapsed.Seconds()
			if math.IsInf(perSec, 0) {
				perSec = 0
			}
			fmt.Fprintf(w, "%d\t%d\t%v\t%.0f\n", nCells, nE, elapsed, perSec)
		}
	}
	return w.Flush()
}
