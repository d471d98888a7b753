package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/san-kum/queueloop/internal/chart"
	"github.com/san-kum/queueloop/internal/config"
	"github.com/san-kum/queueloop/internal/experiment"
	"github.com/san-kum/queueloop/internal/optim"
	"github.com/san-kum/queueloop/internal/randsrc"
	"github.com/san-kum/queueloop/internal/trace"
	"github.com/san-kum/queueloop/internal/tui"
)

var (
	verbose    bool
	kp         float64
	ki         float64
	maxWIP     int
	maxFlow    int
	steps      int
	seed       uint64
	profile    string
	value      int
	configFile string
	preset     string
	midpoint   bool
	// run output
	plot      bool
	plotWidth int
	svgPath   string
	quiet     bool
	// tune
	kpGrid   []float64
	kiGrid   []float64
	metric   string
	parallel int
	// live
	theme string
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "queueloop",
		Short:         "closed-loop PI control of a stochastic two-stage buffer",
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(stderr)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the loop and stream the trace",
		Args:  cobra.NoArgs,
		RunE:  runLoop,
	}
	addLoopFlags(runCmd)
	runCmd.Flags().BoolVar(&plot, "plot", false, "draw a terminal chart after the run")
	runCmd.Flags().IntVar(&plotWidth, "plot-width", 100, "terminal chart width")
	runCmd.Flags().StringVar(&svgPath, "svg", "", "write a chart image (format from extension)")
	runCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not stream the trace")

	tuneCmd := &cobra.Command{
		Use:   "tune",
		Short: "grid search controller gains",
		Args:  cobra.NoArgs,
		RunE:  tuneGains,
	}
	addLoopFlags(tuneCmd)
	tuneCmd.Flags().Float64SliceVar(&kpGrid, "kp-grid", []float64{0.5, 0.75, 1, 1.25, 1.5, 2}, "kp candidates")
	tuneCmd.Flags().Float64SliceVar(&kiGrid, "ki-grid", []float64{0, 0.005, 0.01, 0.02, 0.05}, "ki candidates")
	tuneCmd.Flags().StringVar(&metric, "metric", "iae", "metric to minimise")
	tuneCmd.Flags().IntVar(&parallel, "parallel", runtime.GOMAXPROCS(0), "experiments in flight")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run the loop with a live terminal view",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	addLoopFlags(liveCmd)
	liveCmd.Flags().StringVar(&theme, "theme", tui.Themes[0].Name, "color theme")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tKP\tKI\tMAX_WIP\tMAX_FLOW\tPROFILE\tSTEPS")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%g\t%g\t%d\t%d\t%s\t%d\n",
					name,
					p.Controller.Kp,
					p.Controller.Ki,
					p.Buffer.MaxWIP,
					p.Buffer.MaxFlow,
					p.SetPoint.Profile,
					p.Steps,
				)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(runCmd, tuneCmd, liveCmd, presetsCmd)
	return rootCmd
}

func setupLogging(w io.Writer) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: "15:04:05",
		}),
	))
}

func addLoopFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&kp, "kp", config.DefaultKp, "proportional gain")
	cmd.Flags().Float64Var(&ki, "ki", config.DefaultKi, "integral gain")
	cmd.Flags().IntVar(&maxWIP, "max-wip", config.DefaultMaxWIP, "work-in-progress capacity")
	cmd.Flags().IntVar(&maxFlow, "max-flow", config.DefaultMaxFlow, "outflow ceiling per step (0 seals the outlet)")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of steps")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (default: time based)")
	cmd.Flags().StringVar(&profile, "profile", config.DefaultProfile, "setpoint profile: canonical, constant, schedule")
	cmd.Flags().IntVar(&value, "value", 0, "setpoint for the constant profile")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().BoolVar(&midpoint, "midpoint", false, "replace random draws with the range midpoint")
}

// resolveConfig layers defaults, preset, config file and explicit flags, in
// that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
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

	flags := cmd.Flags()
	if flags.Changed("kp") {
		cfg.Controller.Kp = kp
	}
	if flags.Changed("ki") {
		cfg.Controller.Ki = ki
	}
	if flags.Changed("max-wip") {
		cfg.Buffer.MaxWIP = maxWIP
	}
	if flags.Changed("max-flow") {
		cfg.Buffer.MaxFlow = maxFlow
	}
	if flags.Changed("steps") {
		cfg.Steps = steps
	}
	if flags.Changed("profile") {
		cfg.SetPoint.Profile = profile
	}
	if flags.Changed("value") {
		cfg.SetPoint.Value = value
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	} else if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func experimentOptions() []experiment.Option {
	opts := []experiment.Option{experiment.WithLogger(slog.Default())}
	if midpoint {
		opts = append(opts, experiment.WithSource(randsrc.Midpoint{}))
	}
	return opts
}

func runLoop(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	opts := experimentOptions()
	var tw *trace.Writer
	if !quiet {
		tw = trace.NewWriter(cmd.OutOrStdout())
		opts = append(opts, experiment.WithObserver(tw))
	}

	exp := experiment.New(*cfg, opts...)
	if err := exp.Setup(); err != nil {
		return err
	}

	slog.Info("running loop",
		"id", exp.ID(),
		"seed", cfg.Seed,
		"steps", cfg.Steps,
		"kp", cfg.Controller.Kp,
		"ki", cfg.Controller.Ki,
	)

	result, err := exp.Run()
	if err != nil {
		return err
	}
	if tw != nil {
		if err := tw.Flush(); err != nil {
			return fmt.Errorf("write trace: %w", err)
		}
	}

	stderr := cmd.ErrOrStderr()
	if plot {
		fmt.Fprintln(stderr)
		fmt.Fprint(stderr, chart.Terminal(result.Samples, plotWidth, 12))
	}
	if svgPath != "" {
		if err := chart.Save(svgPath, result.Samples, 0, 0); err != nil {
			return fmt.Errorf("write chart: %w", err)
		}
		slog.Info("chart written", "path", svgPath)
	}

	slog.Info("run complete",
		"id", result.ID,
		"steps", len(result.Samples),
		"elapsed", result.Elapsed,
	)
	w := tabwriter.NewWriter(stderr, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE")
	for _, name := range []string{"iae", "control_effort", "peak_queue", "final_error"} {
		fmt.Fprintf(w, "%s\t%.6f\n", name, result.Metrics[name])
	}
	return w.Flush()
}

func tuneGains(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	gs := optim.NewGridSearch([]string{"kp", "ki"}, [][]float64{kpGrid, kiGrid})
	gs.SetParallel(parallel)

	// Per-experiment debug lines would interleave across workers.
	opts := experimentOptions()
	opts = append(opts, experiment.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

	slog.Info("tuning",
		"candidates", len(kpGrid)*len(kiGrid),
		"metric", metric,
		"seed", cfg.Seed,
		"parallel", parallel,
	)
	start := time.Now()

	best, scores, err := gs.Search(context.Background(), optim.PIBuilder(*cfg, opts...), metric)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "KP\tKI\t%s\n", metric)
	for _, c := range scores {
		fmt.Fprintf(w, "%g\t%g\t%.6f\n", c.Params["kp"], c.Params["ki"], c.Score)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	slog.Info("best gains",
		"kp", best.Params["kp"],
		"ki", best.Params["ki"],
		metric, best.Score,
		"elapsed", time.Since(start),
	)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	// The alt screen owns the terminal; keep log lines out of it.
	opts := append(experimentOptions(), experiment.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	m, err := tui.NewModel(func() (*experiment.Experiment, error) {
		return experiment.New(*cfg, opts...), nil
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(m.WithTheme(theme), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
