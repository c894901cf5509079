package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/cdc6d/nbody/internal/config"
	"github.com/cdc6d/nbody/internal/engine"
	"github.com/cdc6d/nbody/internal/gui"
	"github.com/cdc6d/nbody/internal/metrics"
	"github.com/cdc6d/nbody/internal/viz"
	"github.com/cdc6d/nbody/internal/world"
)

var (
	configFile string
	preset     string
	ticks      int
	plot       bool
	csvOut     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "nbody",
		Short: "interactive gravitational n-body demo",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the windowed demo when no command given.
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return gui.Run(cfg)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run the windowed demo",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return gui.Run(cfg)
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run the terminal demo",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return viz.Run(cfg)
		},
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless and report conservation metrics",
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVar(&ticks, "ticks", 1000, "number of ticks to simulate")
	runCmd.Flags().BoolVar(&plot, "plot", false, "plot per-body x trajectories")
	runCmd.Flags().BoolVar(&csvOut, "csv", false, "stream per-tick state as CSV to stdout")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			names := config.ListPresets()
			sort.Strings(names)
			for _, name := range names {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(guiCmd, tuiCmd, runCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the startup configuration: preset if named,
// then config file, falling back to the built-in reference setup.
func loadConfig() (*config.Config, error) {
	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		return cfg, nil
	}
	if configFile != "" {
		return config.Load(configFile)
	}
	return config.Default(), nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	w, err := cfg.NewWorld()
	if err != nil {
		return err
	}

	session := engine.NewSession(w, cfg.G)

	ms := []metrics.Metric{
		metrics.NewEnergyDrift(cfg.G),
		metrics.NewMomentumDrift(),
	}
	for _, m := range ms {
		m.Observe(w, 0)
	}

	history := make([][]float64, w.Len())

	var csvWriter *csv.Writer
	if csvOut {
		csvWriter = csv.NewWriter(os.Stdout)
		defer csvWriter.Flush()
		header := []string{"tick"}
		for i := 0; i < w.Len(); i++ {
			header = append(header,
				fmt.Sprintf("x%d", i), fmt.Sprintf("y%d", i),
				fmt.Sprintf("vx%d", i), fmt.Sprintf("vy%d", i))
		}
		if err := csvWriter.Write(header); err != nil {
			return err
		}
	}

	loop := engine.NewLoop(session,
		engine.RenderFunc(func(*world.World) {}),
		engine.PollFunc(func() engine.Command { return engine.CmdNone }),
		engine.LoopConfig{
			MaxTicks: ticks,
			Bound:    cfg.Bound,
			UseBound: true,
		})

	loop.AddObserver(engine.ObserverFunc(func(w *world.World, tick int) {
		for _, m := range ms {
			m.Observe(w, tick)
		}
		for i := 0; i < w.Len(); i++ {
			history[i] = append(history[i], w.X[i])
		}
		if csvWriter != nil {
			row := []string{strconv.Itoa(tick)}
			for i := 0; i < w.Len(); i++ {
				row = append(row,
					strconv.FormatFloat(w.X[i], 'f', 6, 64),
					strconv.FormatFloat(w.Y[i], 'f', 6, 64),
					strconv.FormatFloat(w.VX[i], 'f', 6, 64),
					strconv.FormatFloat(w.VY[i], 'f', 6, 64))
			}
			if err := csvWriter.Write(row); err != nil {
				fmt.Fprintf(os.Stderr, "csv write: %v\n", err)
			}
		}
	}))

	start := time.Now()
	if err := loop.Run(context.Background()); err != nil {
		return err
	}
	elapsed := time.Since(start)

	if csvWriter != nil {
		csvWriter.Flush()
	}

	fmt.Fprintf(os.Stderr, "ticks: %d (%v)\n", session.Ticks(), elapsed)
	if session.Ticks() < ticks {
		fmt.Fprintln(os.Stderr, "stopped early: body escaped bound")
	}
	fmt.Fprintln(os.Stderr, "metrics:")
	for _, m := range ms {
		fmt.Fprintf(os.Stderr, "  %s: %.6g\n", m.Name(), m.Value())
	}

	if plot {
		for i, data := range history {
			if len(data) == 0 {
				continue
			}
			graph := asciigraph.Plot(data,
				asciigraph.Height(10),
				asciigraph.Width(80),
				asciigraph.Caption(fmt.Sprintf("body %d x vs tick", i)),
			)
			fmt.Println(graph)
			fmt.Println()
		}
	}

	return nil
}
