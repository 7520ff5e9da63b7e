package main

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/boardlab/internal/bench"
	"github.com/san-kum/boardlab/internal/board"
	"github.com/san-kum/boardlab/internal/config"
	"github.com/san-kum/boardlab/internal/export"
	"github.com/san-kum/boardlab/internal/logging"
	"github.com/san-kum/boardlab/internal/playground"
	"github.com/san-kum/boardlab/internal/render"
	"github.com/san-kum/boardlab/internal/storage"
	"github.com/san-kum/boardlab/internal/telemetry"
	"github.com/san-kum/boardlab/internal/tui"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	verbose    bool

	iterations int
	points     bool
	segments   bool
	width      float64
	height     float64
	seed       int64
	preset     string
	save       bool

	count  int
	outDir string
	prefix string

	svgOut   string
	jsonOut  string
	theme    string
	renderer string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "boardlab",
		Short: "interactive geometry board and renderer benchmark",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logging.Set(logging.NewText(os.Stderr, slog.LevelDebug))
			}
		},
		RunE: runTUI,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "data directory (default from config, ~/.boardlab)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (.yaml or .toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")

	benchCmd := &cobra.Command{
		Use:   "bench [renderer]",
		Short: "benchmark one renderer",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBench,
	}
	addBenchFlags(benchCmd)
	benchCmd.Flags().BoolVar(&save, "save", false, "save the run to the data directory")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "benchmark every renderer with the same workload",
		Args:  cobra.NoArgs,
		RunE:  runCompare,
	}
	addBenchFlags(compareCmd)
	compareCmd.Flags().BoolVar(&save, "save", false, "save every run to the data directory")

	renderCmd := &cobra.Command{
		Use:   "render [renderer]",
		Short: "draw the demo scene plus random elements and write the surfaces",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRender,
	}
	renderCmd.Flags().IntVarP(&count, "count", "n", 20, "random elements to add")
	renderCmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory")
	renderCmd.Flags().StringVar(&prefix, "prefix", "board", "output file prefix")
	renderCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time based)")
	renderCmd.Flags().Float64Var(&width, "width", config.DefaultWidth, "board width")
	renderCmd.Flags().Float64Var(&height, "height", config.DefaultHeight, "board height")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved benchmark runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot render durations of a saved run (latest if omitted)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&svgOut, "svg", "", "also write the chart as SVG")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a saved run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&jsonOut, "out", "o", "", "output file (default stdout)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list benchmark presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tITER\tPOINTS\tSEGMENTS\tSIZE\tDESCRIPTION")
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Fprintf(w, "%s\t%d\t%t\t%t\t%gx%g\t%s\n",
					name, p.Bench.Iterations, p.Bench.Points, p.Bench.Segments, p.Width, p.Height, p.Description)
			}
			return w.Flush()
		},
	}

	renderersCmd := &cobra.Command{
		Use:   "renderers",
		Short: "list available renderers",
		Run: func(cmd *cobra.Command, args []string) {
			for _, k := range render.Kinds() {
				fmt.Println(k)
			}
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive board playground",
		RunE:  runTUI,
	}
	for _, c := range []*cobra.Command{rootCmd, tuiCmd} {
		c.Flags().StringVar(&theme, "theme", "", "color theme")
		c.Flags().StringVarP(&renderer, "renderer", "r", "", "initial renderer")
	}

	rootCmd.AddCommand(benchCmd, compareCmd, renderCmd, listCmd, plotCmd, exportJSONCmd, presetsCmd, renderersCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addBenchFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&iterations, "iterations", "n", bench.DefaultIterations, "benchmark rounds")
	cmd.Flags().BoolVar(&points, "points", true, "add a point each round")
	cmd.Flags().BoolVar(&segments, "segments", true, "add a segment each round")
	cmd.Flags().Float64Var(&width, "width", config.DefaultWidth, "board width")
	cmd.Flags().Float64Var(&height, "height", config.DefaultHeight, "board height")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time based)")
	cmd.Flags().StringVarP(&preset, "preset", "p", "", "workload preset (see presets)")
}

// loadConfig layers defaults, the config file, a preset and then any flag
// the user actually set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if preset != "" {
		if err := cfg.ApplyPreset(preset); err != nil {
			return nil, fmt.Errorf("%w (available: %v)", err, config.ListPresets())
		}
	}

	flags := cmd.Flags()
	if flags.Changed("iterations") {
		cfg.Bench.Iterations = iterations
	}
	if flags.Changed("points") {
		cfg.Bench.Points = points
	}
	if flags.Changed("segments") {
		cfg.Bench.Segments = segments
	}
	if flags.Changed("width") {
		cfg.Board.Width = width
	}
	if flags.Changed("height") {
		cfg.Board.Height = height
	}
	if flags.Changed("seed") {
		cfg.Bench.Seed = seed
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("renderer") {
		cfg.Renderer = renderer
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}

	if !cfg.BoardSize().Valid() {
		return nil, fmt.Errorf("%w: %v", render.ErrInvalidSize, cfg.BoardSize())
	}
	return cfg, nil
}

func openStore(cfg *config.Config) (*storage.Store, error) {
	dir, err := cfg.ResolveDataDir()
	if err != nil {
		return nil, err
	}
	return storage.New(dir)
}

func rendererArg(cfg *config.Config, args []string) (render.Kind, error) {
	if len(args) > 0 {
		return render.ParseKind(args[0])
	}
	return cfg.RendererKind()
}

// benchmark builds a fresh board for kind and runs the driver on it.
func benchmark(kind render.Kind, name string, opts bench.Options) (bench.Result, error) {
	if name == "" {
		name = strings.ToUpper(kind.String()) + " Board"
	}
	r, err := render.New(kind)
	if err != nil {
		return bench.Result{}, err
	}
	b, err := board.New(board.Config{
		Container: render.NewContainer("bench"),
		Renderer:  r,
		Size:      opts.Size,
		Name:      name,
	})
	if err != nil {
		return bench.Result{}, err
	}
	defer b.Destroy()
	return bench.Run(b, opts), nil
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	kind, err := rendererArg(cfg, args)
	if err != nil {
		return err
	}

	opts := withSeed(cfg.BenchOptions())
	fmt.Printf("benchmarking %s renderer (%d iterations, %v)...\n", kind, opts.Iterations, opts.Size)
	res, err := benchmark(kind, cfg.Board.Name, opts)
	if err != nil {
		return err
	}

	printSummaries([]row{{kind, res}})
	if len(res.Durations) >= 2 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(msValues(res.Durations),
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("%s render time (ms) per add", kind)),
		))
	}

	if save {
		return saveRun(cfg, kind, opts, res)
	}
	return nil
}

// withSeed resolves a zero seed to a concrete one so saved runs can be
// replayed.
func withSeed(opts bench.Options) bench.Options {
	if opts.Seed == 0 {
		opts.Seed = bench.NewSource(0, nil).Seed()
	}
	return opts
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	opts := withSeed(cfg.BenchOptions())

	fmt.Printf("comparing renderers (%d iterations, %v, seed %d)...\n\n", opts.Iterations, opts.Size, opts.Seed)
	var rows []row
	for _, kind := range render.Kinds() {
		res, err := benchmark(kind, cfg.Board.Name, opts)
		if err != nil {
			return fmt.Errorf("%s: %w", kind, err)
		}
		rows = append(rows, row{kind, res})
		if save {
			if err := saveRun(cfg, kind, opts, res); err != nil {
				return err
			}
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].res.Summary.Average < rows[j].res.Summary.Average
	})
	printSummaries(rows)
	return nil
}

type row struct {
	kind render.Kind
	res  bench.Result
}

func printSummaries(rows []row) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RENDERER\tSAMPLES\tAVG\tMIN\tMAX\tFPS")
	for _, r := range rows {
		s := r.res.Summary
		fps := 0.0
		if s.Average > 0 {
			fps = 1000 / telemetry.Milliseconds(s.Average)
		}
		fmt.Fprintf(w, "%s\t%d\t%.3fms\t%.3fms\t%.3fms\t%.1f\n",
			r.kind, s.SampleCount,
			telemetry.Milliseconds(s.Average),
			telemetry.Milliseconds(s.Min),
			telemetry.Milliseconds(s.Max),
			fps)
	}
	w.Flush()
}

func saveRun(cfg *config.Config, kind render.Kind, opts bench.Options, res bench.Result) error {
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	runID, err := st.Save(kind.String(), opts, res)
	if err != nil {
		return fmt.Errorf("save run: %w", err)
	}
	fmt.Printf("run id: %s\n", runID)
	return nil
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	kind, err := rendererArg(cfg, args)
	if err != nil {
		return err
	}

	x := playground.New(playground.Options{Size: cfg.BoardSize(), Seed: cfg.Bench.Seed})
	defer x.Close()
	if err := x.Attach(kind); err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		if i%2 == 0 {
			x.AddRandomPoint()
		} else {
			x.AddRandomSegment()
		}
	}

	paths, err := export.Surfaces(x.Container(), outDir, prefix)
	if err != nil {
		return err
	}
	stats := x.Stats()
	fmt.Printf("%s: %d elements, last render %.3fms, avg %.3fms\n",
		x.Board().Name(), len(x.Board().Elements()),
		telemetry.Milliseconds(stats.Last), telemetry.Milliseconds(stats.Average))
	for _, p := range paths {
		fmt.Printf("wrote %s\n", p)
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tRENDERER\tTIME\tITER\tSIZE\tSAMPLES\tAVG")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%gx%g\t%d\t%.3fms\n",
			run.ID,
			run.Renderer,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Iterations,
			run.Width, run.Height,
			run.Summary.SampleCount,
			run.Summary.AverageMs,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}

	var meta *storage.RunMetadata
	if len(args) > 0 {
		meta, err = st.Load(args[0])
	} else {
		meta, err = st.Latest()
	}
	if err != nil {
		return err
	}

	durations, err := st.LoadDurations(meta.ID)
	if err != nil {
		return err
	}
	if len(durations) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("renderer: %s\n", meta.Renderer)
	fmt.Printf("samples: %d\n\n", len(durations))
	fmt.Println(asciigraph.Plot(msValues(durations),
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("render time (ms)"),
	))

	if svgOut != "" {
		svg := export.DurationsSVG(durations, 800, 300, "#4dabf7")
		if svg == "" {
			return fmt.Errorf("need at least two samples for an SVG chart")
		}
		if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("\nwrote %s\n", svgOut)
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}

	if jsonOut == "" {
		return st.ExportJSON(os.Stdout, args[0])
	}
	f, err := os.Create(jsonOut)
	if err != nil {
		return err
	}
	if err := st.ExportJSON(f, args[0]); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Printf("exported to %s\n", jsonOut)
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	kind, err := cfg.RendererKind()
	if err != nil {
		return err
	}
	return tui.Run(tui.Options{
		Playground: playground.Options{
			Size:        cfg.BoardSize(),
			StatsWindow: cfg.StatsWindow,
			Seed:        cfg.Bench.Seed,
		},
		Renderer:        kind,
		Theme:           cfg.Theme,
		BenchIterations: cfg.Bench.Iterations,
	})
}

func msValues(durations []time.Duration) []float64 {
	values := make([]float64, len(durations))
	for i, d := range durations {
		values[i] = telemetry.Milliseconds(d)
	}
	return values
}
