package main

import (
	"fmt"
	"math"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"modviz/internal/analysis"
	"modviz/internal/config"
	"modviz/internal/display"
	"modviz/internal/tui"
	"modviz/internal/viz"
)

var (
	configFile string
	preset     string

	vertexCount int
	modulus     int
	multiplier  int
	angleDeg    int

	termWidth  int
	termHeight int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "modviz",
		Short: "modular multiplication pattern visualizer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadParams(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "named parameter preset")
	addParamFlags(rootCmd)

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render a single frame to stdout",
		RunE:  runRender,
	}
	addParamFlags(renderCmd)
	renderCmd.Flags().IntVar(&termWidth, "width", 72, "frame width in cells")
	renderCmd.Flags().IntVar(&termHeight, "height", 34, "frame height in cells")

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "orbit and chord statistics of the multiplication graph",
		RunE:  runAnalyze,
	}
	addParamFlags(analyzeCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named parameter presets",
		RunE:  listPresets,
	}

	rootCmd.AddCommand(renderCmd, analyzeCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addParamFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&vertexCount, "vertices", 3, "polygon vertex count (50 = circle)")
	cmd.Flags().IntVar(&modulus, "modulus", 9, "number of boundary sample points")
	cmd.Flags().IntVar(&multiplier, "multiplier", 2, "connection multiplier")
	cmd.Flags().IntVar(&angleDeg, "angle", 0, "rotation in degrees")
}

// loadParams resolves startup parameters: config file, then preset,
// then explicit flags, clamped to the slider bounds.
func loadParams(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if cmd.Flags().Changed("vertices") {
		cfg.VertexCount = vertexCount
	}
	if cmd.Flags().Changed("modulus") {
		cfg.Modulus = modulus
	}
	if cmd.Flags().Changed("multiplier") {
		cfg.Multiplier = multiplier
	}
	if cmd.Flags().Changed("angle") {
		cfg.AngleDeg = angleDeg
	}

	cfg.Clamp()
	return cfg, nil
}

func buildController(cmd *cobra.Command) (*display.Controller, *config.Config, error) {
	cfg, err := loadParams(cmd)
	if err != nil {
		return nil, nil, err
	}
	ctrl := display.New(cfg.CanvasSize)
	angle := float64(cfg.AngleDeg) * math.Pi / 180
	if err := ctrl.ChangeParameters(cfg.VertexCount, cfg.Modulus, cfg.Multiplier, angle); err != nil {
		return nil, nil, err
	}
	return ctrl, cfg, nil
}

func runRender(cmd *cobra.Command, args []string) error {
	ctrl, _, err := buildController(cmd)
	if err != nil {
		return err
	}
	scene := ctrl.Scene()
	renderer := viz.NewRenderer(termWidth, termHeight)
	fmt.Print(renderer.Render(scene))
	fmt.Println(scene.Caption)
	return nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctrl, cfg, err := buildController(cmd)
	if err != nil {
		return err
	}
	scene := ctrl.Scene()
	n := len(scene.EdgePoints)

	fmt.Println(scene.Caption)
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "EDGE POINTS\tCYCLES\tLARGEST\tTAILS")
	orbits := analysis.Orbits(n, cfg.Multiplier)
	largest := 0
	for _, c := range orbits {
		if len(c) > largest {
			largest = len(c)
		}
	}
	fmt.Fprintf(w, "%d\t%d\t%d\t%d\n", n, len(orbits), largest, analysis.TailCount(n, cfg.Multiplier))
	if err := w.Flush(); err != nil {
		return err
	}

	if n == 0 {
		fmt.Println("\nempty pattern: modulus below vertex count leaves no edge points")
		return nil
	}

	sizes := analysis.OrbitSizes(orbits)
	if len(sizes) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(sizes,
			asciigraph.Height(8),
			asciigraph.Width(60),
			asciigraph.Caption("cycle sizes, largest first"),
		))
	}

	lengths := analysis.ChordLengths(scene.EdgePoints, scene.Connections)
	sort.Float64s(lengths)
	fmt.Println()
	fmt.Println(asciigraph.Plot(lengths,
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Caption("chord lengths, sorted"),
	))
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	names := config.ListPresets()
	sort.Strings(names)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tV\tM\tK\tANGLE")
	for _, name := range names {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d°\n", name, p.VertexCount, p.Modulus, p.Multiplier, p.AngleDeg)
	}
	return w.Flush()
}
