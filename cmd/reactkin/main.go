package main

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/det-lab/reaction-kinematics/internal/config"
	"github.com/det-lab/reaction-kinematics/internal/export"
	"github.com/det-lab/reaction-kinematics/internal/isotope"
	"github.com/det-lab/reaction-kinematics/internal/kinematics"
	"github.com/det-lab/reaction-kinematics/internal/mathx"
	"github.com/det-lab/reaction-kinematics/internal/reaction"
	"github.com/det-lab/reaction-kinematics/internal/scan"
	"github.com/det-lab/reaction-kinematics/internal/store"
	"github.com/det-lab/reaction-kinematics/internal/unit"
	"github.com/det-lab/reaction-kinematics/internal/viz"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	projectile string
	target     string
	ejectile   string
	recoil     string
	beamEnergy float64
	energyUnit string
	massUnit   string
	angleUnit  string
	exEjectile float64 // ejectile excitation energy
	exRecoil   float64 // recoil excitation energy
	samples    int
	configFile string
	presetName string
	// solve
	saveSolution bool
	// lookup
	lookupY []string
	dupTol  float64
	// plot
	svgPath    string
	plotWidth  int
	plotHeight int
	// scan
	scanFrom   float64
	scanTo     float64
	scanPoints int
	observable string
	// table
	outPath string
)

// main is the entry point for the reactkin CLI; it registers commands
// and flags, defaults to the interactive browser when no subcommand is
// given, and executes the root command. It exits the process with
// status 1 if command execution returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "reactkin",
		Short: "relativistic two-body reaction kinematics lab",
		RunE:  browseReaction,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".reactkin", "data directory")
	rootCmd.PersistentFlags().StringVar(&projectile, "projectile", "a", "projectile (isotope name, or mass with a numeric mass unit)")
	rootCmd.PersistentFlags().StringVar(&target, "target", "12C", "target")
	rootCmd.PersistentFlags().StringVar(&ejectile, "ejectile", "", "ejectile (defaults to projectile)")
	rootCmd.PersistentFlags().StringVar(&recoil, "recoil", "", "recoil (defaults to target)")
	rootCmd.PersistentFlags().Float64Var(&beamEnergy, "energy", 4.0, "projectile lab kinetic energy")
	rootCmd.PersistentFlags().StringVar(&energyUnit, "energy-unit", "MeV", "energy unit (keV/MeV/GeV/TeV)")
	rootCmd.PersistentFlags().StringVar(&massUnit, "mass-unit", "ael", "mass entry mode (ael/MeV/amu)")
	rootCmd.PersistentFlags().StringVar(&angleUnit, "angle-unit", "deg", "angle unit (rad/deg/mrad)")
	rootCmd.PersistentFlags().Float64Var(&exEjectile, "ex-ejectile", 0, "ejectile excitation energy")
	rootCmd.PersistentFlags().Float64Var(&exRecoil, "ex-recoil", 0, "recoil excitation energy")
	rootCmd.PersistentFlags().IntVar(&samples, "samples", kinematics.DefaultSamples, "angle samples per hemisphere")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&presetName, "preset", "", "use preset reaction")

	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "solve the reaction and print its invariants",
		RunE:  solveReaction,
	}
	solveCmd.Flags().BoolVar(&saveSolution, "save", false, "persist the solution to the data directory")

	tableCmd := &cobra.Command{
		Use:   "table",
		Short: "print the full observable table as CSV",
		RunE:  tableReaction,
	}
	tableCmd.Flags().StringVar(&outPath, "out", "", "write to file instead of stdout")

	lookupCmd := &cobra.Command{
		Use:   "lookup [column] [value]",
		Short: "invert the table: find angles matching an observable value",
		Args:  cobra.ExactArgs(2),
		RunE:  lookupValue,
	}
	lookupCmd.Flags().StringSliceVar(&lookupY, "y", nil, "columns to report (default all)")
	lookupCmd.Flags().Float64Var(&dupTol, "tol", 0, "duplicate-root tolerance in the lookup column's unit (0 = default)")

	plotCmd := &cobra.Command{
		Use:   "plot [y] [x]",
		Short: "chart one observable against another",
		Args:  cobra.MaximumNArgs(2),
		RunE:  plotReaction,
	}
	plotCmd.Flags().StringVar(&svgPath, "svg", "", "write an SVG file instead of a terminal chart")
	plotCmd.Flags().IntVar(&plotWidth, "width", 70, "chart width in characters")
	plotCmd.Flags().IntVar(&plotHeight, "height", 18, "chart height in characters")

	browseCmd := &cobra.Command{
		Use:   "browse",
		Short: "browse the solved table interactively",
		RunE:  browseReaction,
	}

	scanCmd := &cobra.Command{
		Use:   "scan",
		Short: "sweep the beam energy and chart one invariant",
		RunE:  scanEnergies,
	}
	scanCmd.Flags().Float64Var(&scanFrom, "from", 1.0, "first beam energy (in the energy unit)")
	scanCmd.Flags().Float64Var(&scanTo, "to", 10.0, "last beam energy")
	scanCmd.Flags().IntVar(&scanPoints, "points", 60, "number of energies")
	scanCmd.Flags().StringVar(&observable, "observable", "emax3", "invariant to chart")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved solutions",
		RunE:  listSolutions,
	}

	exportCmd := &cobra.Command{
		Use:   "export [id]",
		Short: "export saved solution metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportMetadata,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [id]",
		Short: "export a saved table to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSavedCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [id]",
		Short: "export a saved solution to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSavedJSON,
	}

	isotopesCmd := &cobra.Command{
		Use:   "isotopes [element]",
		Short: "list the built-in isotope masses",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listIsotopes,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available reaction presets",
		RunE:  listPresets,
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the current reaction setup as a starter config file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}

	rootCmd.AddCommand(solveCmd, tableCmd, lookupCmd, plotCmd, browseCmd, scanCmd, listCmd, exportCmd, exportCSVCmd, exportJSONCmd, isotopesCmd, presetsCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildSpec assembles the reaction spec for a command invocation.
// Precedence: defaults, then preset, then config file, then any flag
// the user explicitly set.
func buildSpec(cmd *cobra.Command) (*reaction.Spec, error) {
	spec, err := config.DefaultConfig().Spec()
	if err != nil {
		return nil, err
	}

	if presetName != "" {
		p := reaction.GetPreset(presetName)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %s)", presetName, strings.Join(reaction.ListPresets(), ", "))
		}
		spec = p
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		spec, err = cfg.Spec()
		if err != nil {
			return nil, err
		}
	}

	f := cmd.Flags()
	if f.Changed("projectile") {
		spec.Projectile = projectile
	}
	if f.Changed("target") {
		spec.Target = target
	}
	if f.Changed("ejectile") {
		spec.Ejectile = ejectile
	}
	if f.Changed("recoil") {
		spec.Recoil = recoil
	}
	if f.Changed("energy") {
		spec.Energy = beamEnergy
	}
	if f.Changed("energy-unit") {
		eu, err := unit.ParseEnergy(energyUnit)
		if err != nil {
			return nil, err
		}
		spec.EnergyUnit = eu
	}
	if f.Changed("mass-unit") {
		mu, err := unit.ParseMass(massUnit)
		if err != nil {
			return nil, err
		}
		spec.MassUnit = mu
	}
	if f.Changed("angle-unit") {
		au, err := unit.ParseAngle(angleUnit)
		if err != nil {
			return nil, err
		}
		spec.AngleUnit = au
	}
	if f.Changed("ex-ejectile") {
		spec.ExEjectile = exEjectile
	}
	if f.Changed("ex-recoil") {
		spec.ExRecoil = exRecoil
	}
	if f.Changed("samples") {
		spec.Samples = samples
	}

	if spec.Ejectile == "" {
		spec.Ejectile = spec.Projectile
	}
	if spec.Recoil == "" {
		spec.Recoil = spec.Target
	}
	return spec, nil
}

// resolveReaction solves the current spec, decorating forbidden-channel
// errors with the threshold energy.
func resolveReaction(cmd *cobra.Command) (*reaction.Spec, *kinematics.Reaction, error) {
	spec, err := buildSpec(cmd)
	if err != nil {
		return nil, nil, err
	}

	rxn, err := spec.Resolve()
	if err != nil {
		if errors.Is(err, kinematics.ErrForbidden) {
			if m1, m2, m3, m4, merr := spec.Masses(); merr == nil {
				thr := kinematics.Threshold(m1, m2, m3, m4)
				return nil, nil, fmt.Errorf("%w (threshold %.6g %s)", err, spec.EnergyUnit.FromMeV(thr), spec.EnergyUnit)
			}
		}
		return nil, nil, err
	}
	return spec, rxn, nil
}

// colLabel renders a column name with its display unit.
func colLabel(name string, spec *reaction.Spec) string {
	kind, _ := kinematics.ColumnKind(name)
	switch kind {
	case kinematics.KindAngle:
		return fmt.Sprintf("%s [%s]", name, spec.AngleUnit)
	case kinematics.KindEnergy:
		return fmt.Sprintf("%s [%s]", name, spec.EnergyUnit)
	case kinematics.KindMomentum:
		return fmt.Sprintf("%s [%s/c]", name, spec.EnergyUnit)
	}
	return name
}

func fromBase(kind kinematics.Kind, v float64, spec *reaction.Spec) float64 {
	switch kind {
	case kinematics.KindAngle:
		return spec.AngleUnit.FromRad(v)
	case kinematics.KindEnergy, kinematics.KindMomentum:
		return spec.EnergyUnit.FromMeV(v)
	}
	return v
}

func toBase(kind kinematics.Kind, v float64, spec *reaction.Spec) float64 {
	switch kind {
	case kinematics.KindAngle:
		return spec.AngleUnit.ToRad(v)
	case kinematics.KindEnergy, kinematics.KindMomentum:
		return spec.EnergyUnit.ToMeV(v)
	}
	return v
}

func solveReaction(cmd *cobra.Command, args []string) error {
	spec, rxn, err := resolveReaction(cmd)
	if err != nil {
		return err
	}

	eu, au := spec.EnergyUnit, spec.AngleUnit
	energy := func(v float64) string { return fmt.Sprintf("%.6g %s", eu.FromMeV(v), eu) }

	fmt.Printf("reaction: %s\n", spec.Label())
	fmt.Printf("beam energy: %s\n", energy(rxn.Ek))
	fmt.Printf("q-value: %s\n", energy(rxn.Q()))
	if rxn.Q() < 0 {
		fmt.Printf("threshold: %s\n", energy(rxn.Threshold()))
	}
	fmt.Printf("masses [MeV]: %.6f %.6f %.6f %.6f\n", rxn.M1, rxn.M2, rxn.M3, rxn.M4)

	fmt.Println("\ninvariants:")
	fmt.Printf("  %-14s %.8g MeV^2\n", "s:", rxn.S)
	fmt.Printf("  %-14s %.6g %s/c\n", "pcm:", eu.FromMeV(rxn.Pcm), eu)
	fmt.Printf("  %-14s %.6g %s/c\n", "pcm':", eu.FromMeV(rxn.Pcmp), eu)
	fmt.Printf("  %-14s %.8g\n", "rapidity:", rxn.Rapidity)
	fmt.Printf("  %-14s %.8g\n", "gamma:", rxn.Gamma)

	fmt.Println("\nlab energy spread:")
	fmt.Printf("  %-14s %s .. %s\n", "ejectile:", energy(rxn.Emin3), energy(rxn.Emax3))
	fmt.Printf("  %-14s %s .. %s\n", "recoil:", energy(rxn.Emin4), energy(rxn.Emax4))

	if rxn.Max3 != nil {
		fmt.Printf("\nejectile max angle: %.6g %s (E = %s, cos_cm = %.6g)\n",
			au.FromRad(rxn.Max3.ThetaMax), au, energy(rxn.Max3.Energy), rxn.Max3.CMCos)
	}
	if rxn.Max4 != nil {
		fmt.Printf("recoil max angle: %.6g %s (E = %s, cos_cm = %.6g)\n",
			au.FromRad(rxn.Max4.ThetaMax), au, energy(rxn.Max4.Energy), rxn.Max4.CMCos)
	}

	if saveSolution {
		st := store.New(dataDir)
		id, err := st.Save(spec.Label(), rxn)
		if err != nil {
			return err
		}
		fmt.Printf("\nsaved: %s\n", id)
	}

	return nil
}

func tableReaction(cmd *cobra.Command, args []string) error {
	spec, rxn, err := resolveReaction(cmd)
	if err != nil {
		return err
	}

	if outPath != "" {
		if err := export.CSVFile(outPath, rxn.Table(), spec.AngleUnit, spec.EnergyUnit); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", outPath)
		return nil
	}
	return export.CSV(os.Stdout, rxn.Table(), spec.AngleUnit, spec.EnergyUnit)
}

func lookupValue(cmd *cobra.Command, args []string) error {
	spec, rxn, err := resolveReaction(cmd)
	if err != nil {
		return err
	}

	xName := args[0]
	raw, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("bad lookup value %q: %w", args[1], err)
	}
	kind, err := kinematics.ColumnKind(xName)
	if err != nil {
		return err
	}

	xTarget := toBase(kind, raw, spec)
	tol := toBase(kind, dupTol, spec)

	roots, err := rxn.AtValue(xName, xTarget, lookupY, tol)
	if err != nil {
		if errors.Is(err, kinematics.ErrOutOfRange) {
			lo, hi, rerr := columnRange(rxn.Table(), xName)
			if rerr == nil {
				return fmt.Errorf("%s = %g out of range [%.6g, %.6g]: %w",
					colLabel(xName, spec), raw, fromBase(kind, lo, spec), fromBase(kind, hi, spec), kinematics.ErrOutOfRange)
			}
		}
		return err
	}

	names := lookupY
	if len(names) == 0 {
		names = kinematics.Columns()
	}

	fmt.Printf("reaction: %s\n", spec.Label())
	fmt.Printf("%s = %g, %d match(es)\n\n", colLabel(xName, spec), raw, len(roots[names[0]]))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "OBSERVABLE\tMATCHES")
	for _, name := range names {
		vals := roots[name]
		k, _ := kinematics.ColumnKind(name)
		parts := make([]string, len(vals))
		for i, v := range vals {
			parts[i] = fmt.Sprintf("%.6g", fromBase(k, v, spec))
		}
		fmt.Fprintf(w, "%s\t%s\n", colLabel(name, spec), strings.Join(parts, "  "))
	}
	return w.Flush()
}

func columnRange(tab *kinematics.Table, name string) (lo, hi float64, err error) {
	col, err := tab.Column(name)
	if err != nil {
		return 0, 0, err
	}
	lo, hi = mathx.MinMax(col)
	return lo, hi, nil
}

func plotReaction(cmd *cobra.Command, args []string) error {
	spec, rxn, err := resolveReaction(cmd)
	if err != nil {
		return err
	}

	yName := kinematics.ColE3
	xName := kinematics.ColThetaCM
	if len(args) > 0 {
		yName = args[0]
	}
	if len(args) > 1 {
		xName = args[1]
	}

	tab := rxn.Table()
	xs, err := tab.Column(xName)
	if err != nil {
		return err
	}
	ys, err := tab.Column(yName)
	if err != nil {
		return err
	}

	xKind, _ := kinematics.ColumnKind(xName)
	yKind, _ := kinematics.ColumnKind(yName)
	for i := range xs {
		xs[i] = fromBase(xKind, xs[i], spec)
		ys[i] = fromBase(yKind, ys[i], spec)
	}

	xLabel := colLabel(xName, spec)
	yLabel := colLabel(yName, spec)

	if svgPath != "" {
		svg := export.CurveSVG(xs, ys, 800, 520, xLabel, yLabel)
		if svg == "" {
			return fmt.Errorf("nothing to plot")
		}
		if err := os.WriteFile(svgPath, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgPath)
		return nil
	}

	fmt.Printf("reaction: %s\n", spec.Label())
	fmt.Printf("beam energy: %.6g %s\n\n", spec.EnergyUnit.FromMeV(rxn.Ek), spec.EnergyUnit)
	chart := viz.Curve(xs, ys, plotWidth, plotHeight, xLabel, yLabel)
	if chart == "" {
		return fmt.Errorf("nothing to plot")
	}
	fmt.Println(chart)
	return nil
}

func browseReaction(cmd *cobra.Command, args []string) error {
	spec, rxn, err := resolveReaction(cmd)
	if err != nil {
		return err
	}

	p := tea.NewProgram(viz.NewBrowser(spec.Label(), rxn))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

// scanObservables maps chartable invariants to extractors. Turning
// angles are NaN where the particle reaches all angles.
var scanObservables = map[string]func(*kinematics.Reaction) float64{
	"s":         func(r *kinematics.Reaction) float64 { return r.S },
	"emax3":     func(r *kinematics.Reaction) float64 { return r.Emax3 },
	"emin3":     func(r *kinematics.Reaction) float64 { return r.Emin3 },
	"emax4":     func(r *kinematics.Reaction) float64 { return r.Emax4 },
	"emin4":     func(r *kinematics.Reaction) float64 { return r.Emin4 },
	"pcm":       func(r *kinematics.Reaction) float64 { return r.Pcm },
	"pcmp":      func(r *kinematics.Reaction) float64 { return r.Pcmp },
	"rapidity":  func(r *kinematics.Reaction) float64 { return r.Rapidity },
	"theta3max": func(r *kinematics.Reaction) float64 { return turningAngle(r.Max3) },
	"theta4max": func(r *kinematics.Reaction) float64 { return turningAngle(r.Max4) },
}

var scanKinds = map[string]kinematics.Kind{
	"s":     kinematics.KindScalar,
	"emax3": kinematics.KindEnergy, "emin3": kinematics.KindEnergy,
	"emax4": kinematics.KindEnergy, "emin4": kinematics.KindEnergy,
	"pcm": kinematics.KindMomentum, "pcmp": kinematics.KindMomentum,
	"rapidity":  kinematics.KindScalar,
	"theta3max": kinematics.KindAngle, "theta4max": kinematics.KindAngle,
}

func turningAngle(t *kinematics.Turning) float64 {
	if t == nil {
		return math.NaN()
	}
	return t.ThetaMax
}

func scanEnergies(cmd *cobra.Command, args []string) error {
	spec, err := buildSpec(cmd)
	if err != nil {
		return err
	}
	m1, m2, m3, m4, err := spec.Masses()
	if err != nil {
		return err
	}

	extract, ok := scanObservables[observable]
	if !ok {
		names := make([]string, 0, len(scanObservables))
		for name := range scanObservables {
			names = append(names, name)
		}
		sort.Strings(names)
		return fmt.Errorf("unknown observable: %s (available: %s)", observable, strings.Join(names, ", "))
	}

	if scanTo <= scanFrom {
		return fmt.Errorf("scan range is empty: from %g to %g", scanFrom, scanTo)
	}
	if scanPoints < 2 {
		scanPoints = 2
	}

	eu := spec.EnergyUnit
	energies := mathx.Linspace(eu.ToMeV(scanFrom), eu.ToMeV(scanTo), scanPoints)

	sc := scan.New(m1, m2, m3, m4, spec.Samples)
	start := time.Now()
	points := sc.Run(energies)
	elapsed := time.Since(start)

	eks, vals := scan.Observable(points, extract)

	kind := scanKinds[observable]
	data := make([]float64, 0, len(vals))
	first, last := math.NaN(), math.NaN()
	for i, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if math.IsNaN(first) {
			first = eks[i]
		}
		last = eks[i]
		data = append(data, fromBase(kind, v, spec))
	}

	fmt.Printf("reaction: %s\n", spec.Label())
	thr := kinematics.Threshold(m1, m2, m3, m4)
	if thr > 0 {
		fmt.Printf("threshold: %.6g %s\n", eu.FromMeV(thr), eu)
	}
	fmt.Printf("scanned %d energies in %v (%d open)\n\n", len(points), elapsed, len(eks))

	if len(eks) == 0 {
		return fmt.Errorf("channel closed over the whole scan range")
	}
	if len(data) < 2 {
		return fmt.Errorf("not enough points to chart %s", observable)
	}

	caption := fmt.Sprintf("%s vs beam energy [%.6g .. %.6g %s]",
		scanLabel(observable, spec), eu.FromMeV(first), eu.FromMeV(last), eu)
	graph := asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(70),
		asciigraph.Caption(caption),
	)
	fmt.Println(graph)

	return nil
}

// scanLabel renders a scan observable with its display unit, mirroring
// colLabel for table columns. Mandelstam s is always MeV^2, like the
// solve summary.
func scanLabel(obs string, spec *reaction.Spec) string {
	if obs == "s" {
		return "s [MeV^2]"
	}
	switch scanKinds[obs] {
	case kinematics.KindAngle:
		return fmt.Sprintf("%s [%s]", obs, spec.AngleUnit)
	case kinematics.KindEnergy:
		return fmt.Sprintf("%s [%s]", obs, spec.EnergyUnit)
	case kinematics.KindMomentum:
		return fmt.Sprintf("%s [%s/c]", obs, spec.EnergyUnit)
	}
	return obs
}

func listSolutions(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	metas, err := st.List()
	if err != nil {
		return err
	}

	if len(metas) == 0 {
		fmt.Println("no saved solutions")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tREACTION\tTIME\tEK\tQ\tSAMPLES")
	for _, meta := range metas {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.4g MeV\t%.4g MeV\t%d\n",
			meta.ID,
			meta.Reaction,
			meta.CreatedAt.Format("2006-01-02 15:04:05"),
			meta.Ek,
			meta.Q,
			meta.Samples,
		)
	}
	return w.Flush()
}

func exportMetadata(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportSavedCSV(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	header, rows, err := st.LoadTable(args[0])
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write(header); err != nil {
		return err
	}
	record := make([]string, len(header))
	for _, row := range rows {
		for i, v := range row {
			record[i] = strconv.FormatFloat(v, 'f', 6, 64)
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func exportSavedJSON(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	rxn, err := kinematics.SolveN(meta.Masses[0], meta.Masses[1], meta.Masses[2], meta.Masses[3], meta.Ek, meta.Samples)
	if err != nil {
		return err
	}
	return export.JSON(os.Stdout, export.NewSolution(meta.Reaction, rxn))
}

func listIsotopes(cmd *cobra.Command, args []string) error {
	nuclides, err := isotope.List()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tZ\tA\tEXCESS [keV]\tMASS [MeV]\tMASS [amu]")
	for _, n := range nuclides {
		if len(args) > 0 && !strings.EqualFold(n.Element, args[0]) {
			continue
		}
		mass := n.Mass()
		fmt.Fprintf(w, "%s\t%d\t%d\t%.4f\t%.4f\t%.6f\n",
			n.Name(), n.Z, n.A, n.MassExcess, mass, mass/unit.AMU)
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tREACTION\tENERGY")
	for _, name := range reaction.ListPresets() {
		p := reaction.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\t%g %s\n", name, p.Label(), p.Energy, p.EnergyUnit)
	}
	return w.Flush()
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "reaction.yaml"
	if len(args) > 0 {
		path = args[0]
	}

	spec, err := buildSpec(cmd)
	if err != nil {
		return err
	}
	if err := config.Save(path, config.FromSpec(spec)); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
