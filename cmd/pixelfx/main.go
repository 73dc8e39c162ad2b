package main

import (
	"fmt"
	"math/rand"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/pixelfx/internal/config"
	"github.com/san-kum/pixelfx/internal/effects"
	"github.com/san-kum/pixelfx/internal/pixel"
	"github.com/san-kum/pixelfx/internal/viz"
)

var (
	configFile  string
	preset      string
	width       int
	height      int
	fps         int
	seed        int64
	divisor     float64
	palette     string
	atTime      float64
	recFrames   int
	benchFrames int
	output      string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pixelfx",
		Short: "procedural pixel effects for the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd, "")
			if err != nil {
				return err
			}
			return viz.Run(cfg)
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live [effect]",
		Short: "run an effect in the interactive viewer",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			effect := ""
			if len(args) > 0 {
				effect = args[0]
			}
			cfg, err := buildConfig(cmd, effect)
			if err != nil {
				return err
			}
			return viz.Run(cfg)
		},
	}

	renderCmd := &cobra.Command{
		Use:   "render [effect]",
		Short: "render a single frame to stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  renderFrame,
	}
	renderCmd.Flags().Float64Var(&atTime, "time", 0, "animation phase to render at")

	recordCmd := &cobra.Command{
		Use:   "record [effect]",
		Short: "render frames offscreen and write an animated GIF",
		Args:  cobra.ExactArgs(1),
		RunE:  recordGIF,
	}
	recordCmd.Flags().IntVar(&recFrames, "frames", 120, "number of frames to record")
	recordCmd.Flags().StringVarP(&output, "output", "o", "pixelfx.gif", "output path")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list available effects and palettes",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("effects:")
			for _, name := range effects.NewRegistry().List() {
				fmt.Printf("  %s\n", name)
			}
			fmt.Println("palettes:")
			for _, name := range effects.GradientNames() {
				fmt.Printf("  %s\n", name)
			}
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named presets",
		Run: func(cmd *cobra.Command, args []string) {
			names := config.ListPresets()
			sort.Strings(names)
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tEFFECT\tPALETTE\tFPS\tDIVISOR")
			for _, name := range names {
				cfg := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.2f\n",
					name, cfg.Effect, cfg.Palette, cfg.FPS, cfg.Divisor)
			}
			w.Flush()
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench [effect]",
		Short: "benchmark an effect's render loop",
		Args:  cobra.ExactArgs(1),
		RunE:  benchEffect,
	}
	benchCmd.Flags().IntVar(&benchFrames, "frames", 200, "frames per size")

	for _, cmd := range []*cobra.Command{rootCmd, liveCmd, renderCmd, recordCmd, benchCmd} {
		cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
		cmd.Flags().StringVar(&preset, "preset", "", "use a named preset")
		cmd.Flags().IntVar(&width, "width", 0, "canvas width in cells")
		cmd.Flags().IntVar(&height, "height", 0, "canvas height in cells")
		cmd.Flags().IntVar(&fps, "fps", 0, "frames per second")
		cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
		cmd.Flags().Float64Var(&divisor, "divisor", 0, "time normalization divisor")
		cmd.Flags().StringVar(&palette, "palette", "", "gradient palette name")
	}

	rootCmd.AddCommand(liveCmd, renderCmd, recordCmd, listCmd, presetsCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildConfig layers preset, config file, and flags (flags win) over the
// defaults.
func buildConfig(cmd *cobra.Command, effect string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if effect != "" {
		cfg.Effect = effect
	}
	if cmd.Flags().Changed("width") {
		cfg.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = height
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = fps
	}
	if cmd.Flags().Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("divisor") {
		cfg.Divisor = divisor
	}
	if cmd.Flags().Changed("palette") {
		cfg.Palette = palette
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newRenderer(cfg *config.Config) (effects.Renderer, error) {
	r, err := effects.NewRegistry().Get(cfg.Effect, cfg.Width, cfg.Height, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		return nil, err
	}
	if cfg.Palette != "" && cfg.Palette != "default" {
		pal, err := effects.LookupGradient(cfg.Palette)
		if err != nil {
			return nil, err
		}
		if p, ok := r.(effects.Paletted); ok {
			p.SetPalette(pal)
		}
	}
	return r, nil
}

func renderFrame(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}
	r, err := newRenderer(cfg)
	if err != nil {
		return err
	}

	cells := viz.RenderCells(r, atTime, cfg.Width, cfg.Height)
	fmt.Println(viz.NewPainter().Paint(cells, cfg.Width, cfg.Height))
	return nil
}

func recordGIF(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}
	r, err := newRenderer(cfg)
	if err != nil {
		return err
	}

	rec := viz.NewRecorder()
	dt := 1.0 / float64(cfg.FPS)
	for i := 0; i < recFrames; i++ {
		t := float64(i) * dt / cfg.Divisor
		rec.Capture(viz.RenderCells(r, t, cfg.Width, cfg.Height), cfg.Width, cfg.Height)
	}

	if err := rec.Save(output); err != nil {
		return err
	}
	fmt.Printf("wrote %d frames to %s\n", rec.Len(), output)
	return nil
}

func benchEffect(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	sizes := []struct{ w, h int }{
		{40, 12},
		{80, 24},
		{160, 48},
	}

	fmt.Printf("benchmarking %s (%d frames per size)\n\n", cfg.Effect, benchFrames)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tCELLS\tTOTAL\tPER FRAME\tFRAMES/SEC")

	var series []float64
	for _, size := range sizes {
		r, err := effects.NewRegistry().Get(cfg.Effect, size.w, size.h, rand.New(rand.NewSource(cfg.Seed)))
		if err != nil {
			return err
		}

		sink := effects.Sink(func(x, y int, p pixel.Pixel) {})
		start := time.Now()
		for i := 0; i < benchFrames; i++ {
			frameStart := time.Now()
			r.Render(float64(i)/60.0, size.w, size.h, sink)
			if size.w == 80 {
				series = append(series, float64(time.Since(frameStart).Microseconds()))
			}
		}
		elapsed := time.Since(start)

		perFrame := elapsed / time.Duration(benchFrames)
		fmt.Fprintf(w, "%dx%d\t%d\t%v\t%v\t%.0f\n",
			size.w, size.h, size.w*size.h, elapsed, perFrame,
			float64(benchFrames)/elapsed.Seconds())
	}
	w.Flush()

	if len(series) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(series,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("per-frame render time at 80x24 (µs)"),
		))
	}

	return nil
}
