package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/san-kum/ballpit/internal/config"
	"github.com/san-kum/ballpit/internal/export"
	"github.com/san-kum/ballpit/internal/gui"
	"github.com/san-kum/ballpit/internal/metrics"
	"github.com/san-kum/ballpit/internal/sim"
	"github.com/san-kum/ballpit/internal/storage"
	"github.com/san-kum/ballpit/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string

	count        int
	gravity      float64
	friction     float64
	wallBounce   float64
	followCursor bool
	colors       []string
	seed         int64

	dataDir  string
	duration float64
	dt       float64
	sample   int
	outFile  string
	warmup   int
	svgWidth float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ballpit",
		Short: "interactive ball-pit particle simulation",
		RunE: func(cmd *cobra.Command, args []string) error {
			return gui.Run(buildConfig(cmd))
		},
	}
	addConfigFlags(rootCmd)
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".ballpit", "data directory")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run in a window",
		RunE: func(cmd *cobra.Command, args []string) error {
			return gui.Run(buildConfig(cmd))
		},
	}
	addConfigFlags(guiCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return viz.Run(buildConfig(cmd))
		},
	}
	addConfigFlags(liveCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless and record the result",
		RunE:  runHeadless,
	}
	addConfigFlags(runCmd)
	runCmd.Flags().Float64Var(&duration, "time", 10.0, "simulated seconds")
	runCmd.Flags().Float64Var(&dt, "dt", 1.0/60.0, "timestep")
	runCmd.Flags().IntVar(&sample, "sample", 10, "record every Nth frame")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "render one frame to SVG",
		RunE:  exportSnapshot,
	}
	addConfigFlags(exportCmd)
	exportCmd.Flags().StringVar(&outFile, "out", "ballpit.svg", "output file")
	exportCmd.Flags().IntVar(&warmup, "warmup", 120, "frames to simulate before the snapshot")
	exportCmd.Flags().Float64Var(&svgWidth, "width", 1280, "output width in pixels")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(guiCmd, liveCmd, runCmd, exportCmd, presetsCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "named preset")
	cmd.Flags().IntVar(&count, "count", config.DefaultCount, "number of balls")
	cmd.Flags().Float64Var(&gravity, "gravity", config.DefaultGravity, "gravity magnitude")
	cmd.Flags().Float64Var(&friction, "friction", config.DefaultFriction, "velocity damping per step")
	cmd.Flags().Float64Var(&wallBounce, "wall-bounce", config.DefaultWallBounce, "wall restitution [0,1]")
	cmd.Flags().BoolVar(&followCursor, "follow-cursor", true, "attract balls toward the pointer")
	cmd.Flags().StringSliceVar(&colors, "colors", nil, "palette as hex colors")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
}

// buildConfig resolves precedence: defaults, then preset, then config
// file, then any flag the user set explicitly.
func buildConfig(cmd *cobra.Command) *config.Config {
	cfg := config.DefaultConfig()
	if preset != "" {
		if p := config.Preset(preset); p != nil {
			cfg = p
		}
	}
	if configFile != "" {
		if c, err := config.Load(configFile); err == nil {
			cfg = c
		} else {
			fmt.Fprintf(os.Stderr, "config %s: %v (using defaults)\n", configFile, err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("count") {
		cfg.Count = count
	}
	if flags.Changed("gravity") {
		cfg.Gravity = gravity
	}
	if flags.Changed("friction") {
		cfg.Friction = friction
	}
	if flags.Changed("wall-bounce") {
		cfg.WallBounce = wallBounce
	}
	if flags.Changed("follow-cursor") {
		cfg.FollowCursor = followCursor
	}
	if flags.Changed("colors") {
		cfg.Colors = colors
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	cfg.Normalize()
	return cfg
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg := buildConfig(cmd)
	eng := sim.New(cfg)

	ke := metrics.NewKineticEnergy()
	pen := metrics.NewMaxPenetration()
	contain := metrics.NewContainment(eng.Bounds)
	eng.AddObserver(ke)
	eng.AddObserver(pen)
	eng.AddObserver(contain)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := eng.RunHeadless(ctx, duration, dt, sample)
	if err != nil {
		return err
	}
	result.Metrics[ke.Name()] = ke.Value()
	result.Metrics["kinetic_energy_drift"] = ke.Drift()
	result.Metrics[pen.Name()] = pen.Value()
	result.Metrics[contain.Name()] = contain.Value()

	store := storage.New(dataDir)
	if err := store.Init(); err != nil {
		return err
	}
	runID, err := store.Save(cfg, result)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "run\t%s\n", runID)
	fmt.Fprintf(w, "frames\t%d\n", result.Frames)
	for name, v := range result.Metrics {
		fmt.Fprintf(w, "%s\t%.6f\n", name, v)
	}
	return w.Flush()
}

func exportSnapshot(cmd *cobra.Command, args []string) error {
	cfg := buildConfig(cmd)
	eng := sim.New(cfg)
	eng.Start()
	for i := 0; i < warmup; i++ {
		eng.Step(1.0 / 60.0)
	}
	eng.Stop()

	if err := export.WriteSnapshot(outFile, eng.Particles(), eng.Bounds(), cfg.Palette(), svgWidth); err != nil {
		return err
	}
	fmt.Println(outFile)
	return nil
}
