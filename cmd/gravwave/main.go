package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/gravwave/internal/analysis"
	"github.com/san-kum/gravwave/internal/anim"
	"github.com/san-kum/gravwave/internal/config"
	"github.com/san-kum/gravwave/internal/encode"
	"github.com/san-kum/gravwave/internal/scene"
	"github.com/san-kum/gravwave/internal/storage"
	"github.com/san-kum/gravwave/internal/viz"
)

var (
	configFile string
	preset     string
	outPath    string
	// Source parameters
	mass1          float64
	mass2          float64
	separation     float64
	amplitudeScale float64
	period         float64
	// Render parameters
	totalFrames int
	fps         int
	gridPoints  int
	width       int
	height      int
	bitrate     int
	writeMeta   bool
	// frame command
	frameTime float64
	// preview command
	probeX float64
	probeY float64
)

// main registers commands and flags; a bare invocation renders the default
// MP4. Exits with status 1 on any unhandled error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "gravwave",
		Short: "binary-orbit gravitational wave renderer",
		RunE:  runRender,
	}

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render the animation to an mp4 file",
		RunE:  runRender,
	}
	addRenderFlags(renderCmd)
	renderCmd.Flags().BoolVar(&writeMeta, "metadata", false, "write a metadata sidecar next to the output")

	gifCmd := &cobra.Command{
		Use:   "gif",
		Short: "render the animation to an animated gif (no ffmpeg needed)",
		RunE:  runGIF,
	}
	addRenderFlags(gifCmd)

	frameCmd := &cobra.Command{
		Use:   "frame",
		Short: "render a single frame to a png",
		RunE:  runFrame,
	}
	addRenderFlags(frameCmd)
	frameCmd.Flags().Float64Var(&frameTime, "time", 0.0, "simulation time of the frame")

	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "plot the strain time series at a probe point",
		RunE:  runPreview,
	}
	addRenderFlags(previewCmd)
	previewCmd.Flags().Float64Var(&probeX, "probe-x", 3.0, "probe x coordinate")
	previewCmd.Flags().Float64Var(&probeY, "probe-y", 0.5, "probe y coordinate")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "animate the deformation field in the terminal",
		RunE:  runLive,
	}
	addRenderFlags(liveCmd)

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "frequency analysis of the strain at a probe point",
		RunE:  runAnalyze,
	}
	addRenderFlags(analyzeCmd)
	analyzeCmd.Flags().Float64Var(&probeX, "probe-x", 3.0, "probe x coordinate")
	analyzeCmd.Flags().Float64Var(&probeY, "probe-y", 0.5, "probe y coordinate")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("presets:")
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(renderCmd, gifCmd, frameCmd, previewCmd, liveCmd, analyzeCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRenderFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().StringVar(&outPath, "out", "", "output file path")
	cmd.Flags().Float64Var(&mass1, "mass1", 1.0, "first body mass")
	cmd.Flags().Float64Var(&mass2, "mass2", 1.0, "second body mass")
	cmd.Flags().Float64Var(&separation, "separation", config.DefaultSeparation, "orbital separation")
	cmd.Flags().Float64Var(&amplitudeScale, "amplitude", 1.0, "wave amplitude multiplier")
	cmd.Flags().Float64Var(&period, "period", config.DefaultPeriod, "orbital period in seconds")
	cmd.Flags().IntVar(&totalFrames, "frames", config.DefaultTotalFrames, "total frames to render")
	cmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frames per second")
	cmd.Flags().IntVar(&gridPoints, "grid", config.DefaultGridPoints, "grid resolution per axis")
	cmd.Flags().IntVar(&width, "width", config.DefaultWidth, "frame width in pixels")
	cmd.Flags().IntVar(&height, "height", config.DefaultHeight, "frame height in pixels")
	cmd.Flags().IntVar(&bitrate, "bitrate", config.DefaultBitrate, "video bitrate in kbps")
}

// resolveConfig layers preset, config file, and flags, in increasing
// precedence.
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

	if cmd.Flags().Changed("mass1") {
		cfg.Mass1 = mass1
	}
	if cmd.Flags().Changed("mass2") {
		cfg.Mass2 = mass2
	}
	if cmd.Flags().Changed("separation") {
		cfg.Separation = separation
	}
	if cmd.Flags().Changed("amplitude") {
		cfg.AmplitudeScale = amplitudeScale
	}
	if cmd.Flags().Changed("period") {
		cfg.Period = period
	}
	if cmd.Flags().Changed("frames") {
		cfg.TotalFrames = totalFrames
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = fps
	}
	if cmd.Flags().Changed("grid") {
		cfg.GridPoints = gridPoints
	}
	if cmd.Flags().Changed("width") {
		cfg.WidthPx = width
	}
	if cmd.Flags().Changed("height") {
		cfg.HeightPx = height
	}
	if cmd.Flags().Changed("bitrate") {
		cfg.Bitrate = bitrate
	}
	if cmd.Flags().Changed("out") {
		cfg.OutputPath = outPath
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newAnimator(cfg *config.Config) *anim.Animator {
	renderer := scene.New(cfg.WidthPx, cfg.HeightPx)
	renderer.Camera.Elev = cfg.Elevation
	renderer.Camera.Azim = cfg.Azimuth

	a := &anim.Animator{
		Source:   cfg.Source(),
		Grid:     cfg.Grid(),
		Renderer: renderer,
		FPS:      cfg.FPS,
		Total:    cfg.TotalFrames,
	}
	a.OnFrame = func(frame, total int, t float64) {
		if frame%cfg.FPS == 0 || frame == total {
			fmt.Printf("frame %d/%d (t=%.1fs)\n", frame, total, t)
		}
	}
	return a
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	enc, err := encode.NewFFmpeg(cfg.OutputPath, cfg.FPS, cfg.Bitrate)
	if err != nil {
		return err
	}

	fmt.Printf("rendering %d frames at %d fps -> %s\n", cfg.TotalFrames, cfg.FPS, cfg.OutputPath)
	start := time.Now()

	a := newAnimator(cfg)
	if err := a.Run(cmd.Context(), enc); err != nil {
		// Never leave a half-written artifact behind.
		os.Remove(cfg.OutputPath)
		return err
	}
	elapsed := time.Since(start)

	fmt.Println(viz.SummaryTitle.Render("render complete"))
	fmt.Printf("  %s %s\n", viz.SummaryValue.Render("output:"), cfg.OutputPath)
	fmt.Printf("  %s %.1fs playable, %v to render\n", viz.SummaryValue.Render("length:"), cfg.Duration(), elapsed.Round(time.Millisecond))

	if writeMeta {
		sidecar, err := storage.WriteSidecar(storage.RunMetadata{
			Output:          cfg.OutputPath,
			Timestamp:       time.Now(),
			TotalFrames:     cfg.TotalFrames,
			FPS:             cfg.FPS,
			DurationSeconds: cfg.Duration(),
			Mass1:           cfg.Mass1,
			Mass2:           cfg.Mass2,
			Separation:      cfg.Separation,
			AmplitudeScale:  cfg.AmplitudeScale,
			RenderSeconds:   elapsed.Seconds(),
		})
		if err != nil {
			return fmt.Errorf("write metadata: %w", err)
		}
		fmt.Printf("  %s %s\n", viz.SummaryValue.Render("metadata:"), sidecar)
	}
	return nil
}

func runGIF(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("out") {
		cfg.OutputPath = swapExt(cfg.OutputPath, ".gif")
	}

	enc, err := encode.NewGIF(cfg.OutputPath, cfg.FPS)
	if err != nil {
		return err
	}

	fmt.Printf("rendering %d frames -> %s\n", cfg.TotalFrames, cfg.OutputPath)
	a := newAnimator(cfg)
	if err := a.Run(cmd.Context(), enc); err != nil {
		os.Remove(cfg.OutputPath)
		return err
	}

	fmt.Printf("wrote %s\n", cfg.OutputPath)
	return nil
}

func runFrame(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("out") {
		cfg.OutputPath = swapExt(cfg.OutputPath, ".png")
	}

	src := cfg.Source()
	grid := cfg.Grid()
	renderer := scene.New(cfg.WidthPx, cfg.HeightPx)
	renderer.Camera.Elev = cfg.Elevation
	renderer.Camera.Azim = cfg.Azimuth

	field := src.Deformation(grid, frameTime)
	p1, p2 := src.Positions(frameTime)
	z1 := src.DisplacementAt(p1.X, p1.Y, frameTime)
	z2 := src.DisplacementAt(p2.X, p2.Y, frameTime)

	img := renderer.Render(grid, field, p1, p2, z1, z2)
	if err := encode.WritePNG(cfg.OutputPath, img); err != nil {
		return err
	}
	fmt.Printf("wrote %s (t=%.2fs)\n", cfg.OutputPath, frameTime)
	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	src := cfg.Source()
	series := anim.StrainSeries(src, probeX, probeY, cfg.TotalFrames, cfg.FPS)

	graph := asciigraph.Plot(series,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("strain at (%.1f, %.1f)", probeX, probeY)),
	)
	fmt.Println(graph)
	fmt.Println()

	peak := 0.0
	for _, v := range series {
		if a := abs(v); a > peak {
			peak = a
		}
	}
	fmt.Printf("frames: %d  duration: %.1fs  peak strain: %.4f\n", cfg.TotalFrames, cfg.Duration(), peak)
	return nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	src := cfg.Source()
	series := anim.StrainSeries(src, probeX, probeY, cfg.TotalFrames, cfg.FPS)

	ps := analysis.PowerSpectrum(series)
	plotData := ps[:len(ps)/4]
	if len(plotData) < 2 {
		return fmt.Errorf("series too short for spectrum analysis (%d frames)", cfg.TotalFrames)
	}

	graph := asciigraph.Plot(plotData,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("strain power spectrum at (%.1f, %.1f)", probeX, probeY)),
	)
	fmt.Println(graph)
	fmt.Println()

	freq := analysis.DominantFrequency(series, float64(cfg.FPS))
	fmt.Printf("dominant frequency: %.3f hz\n", freq)
	fmt.Printf("orbital frequency:  %.3f hz\n", 1.0/cfg.Period)
	if freq > 0 {
		fmt.Printf("period: %.3f s\n", 1.0/freq)
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	m := viz.NewModel(cfg.Source(), cfg.Grid(), cfg.FPS)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func swapExt(path, ext string) string {
	if i := strings.LastIndex(path, "."); i > strings.LastIndex(path, "/") {
		return path[:i] + ext
	}
	return path + ext
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
