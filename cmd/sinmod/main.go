package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/mattn/go-isatty"
	"github.com/san-kum/sinmod/internal/analysis"
	"github.com/san-kum/sinmod/internal/automation"
	"github.com/san-kum/sinmod/internal/config"
	"github.com/san-kum/sinmod/internal/export"
	"github.com/san-kum/sinmod/internal/sinmod"
	"github.com/san-kum/sinmod/internal/tui"
	"github.com/san-kum/sinmod/internal/viz"
	"github.com/san-kum/sinmod/internal/widget"
	"github.com/spf13/cobra"
)

var (
	amplitude float64
	phase     float64
	omega     float64
	period    float64
	harmonics int
	preset    string
	sets      []string

	configFile string
	theme      string
	fps        int
	debug      bool
	animate    bool
	recordDir  string

	renderFrames int
	sampleFrames int
	gifFrames    int
	graph        bool

	atTime  float64
	pxWidth int
	pxHigh  int
	samples int
	maxHarm int
	format  string
	columns int
	gifOut  string
)

// main wires the sinmod commands and exits with status 1 when a command
// fails.
func main() {
	rootCmd := &cobra.Command{
		Use:          "sinmod",
		Short:        "sinusoidal modelling of tagged motion",
		SilenceUsage: true,
		RunE:         runInteractive,
	}

	pf := rootCmd.PersistentFlags()
	pf.Float64Var(&amplitude, "amplitude", sinmod.DefaultAmplitude, "amplitude A")
	pf.Float64Var(&phase, "phase", sinmod.DefaultPhase, "phase φ")
	pf.Float64Var(&omega, "omega", sinmod.DefaultAngularFrequency, "angular frequency ω")
	pf.Float64Var(&period, "period", sinmod.DefaultPeriod, "number of periods across the view")
	pf.IntVar(&harmonics, "harmonics", sinmod.DefaultHarmonics, "harmonic count")
	pf.StringVar(&preset, "preset", "", "start from a preset")
	pf.StringArrayVar(&sets, "set", nil, "set a parameter, field=value (repeatable)")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&theme, "theme", "", "color theme")
	pf.IntVar(&fps, "fps", 0, "animation frame rate")
	pf.BoolVar(&debug, "debug", false, "log to sinmod-debug.log")

	rootCmd.Flags().BoolVar(&animate, "animate", false, "start animating")
	rootCmd.Flags().StringVar(&recordDir, "record-dir", ".", "directory for gif recordings")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "print one frame to stdout",
		RunE:  renderFrame,
	}
	renderCmd.Flags().IntVar(&renderFrames, "frames", 0, "animation frames to step first")
	renderCmd.Flags().BoolVar(&graph, "graph", false, "plot with asciigraph instead of braille")

	svgCmd := &cobra.Command{
		Use:   "svg [file]",
		Short: "write a frame as svg",
		Args:  cobra.MaximumNArgs(1),
		RunE:  writeSVG,
	}
	svgCmd.Flags().Float64Var(&atTime, "time", 0, "time offset")

	pngCmd := &cobra.Command{
		Use:   "png [file]",
		Short: "write a frame as png",
		Args:  cobra.MaximumNArgs(1),
		RunE:  writePNG,
	}
	pngCmd.Flags().Float64Var(&atTime, "time", 0, "time offset")
	pngCmd.Flags().IntVar(&pxWidth, "width", viz.SurfaceWidth, "image width in pixels")
	pngCmd.Flags().IntVar(&pxHigh, "height", viz.SurfaceHeight, "image height in pixels")

	gifCmd := &cobra.Command{
		Use:   "gif [file]",
		Short: "write an animated gif of the first frames",
		Args:  cobra.MaximumNArgs(1),
		RunE:  writeGIF,
	}
	gifCmd.Flags().IntVar(&gifFrames, "frames", 60, "animation frames")
	gifCmd.Flags().IntVar(&pxWidth, "width", viz.SurfaceWidth, "image width in pixels")
	gifCmd.Flags().IntVar(&pxHigh, "height", viz.SurfaceHeight, "image height in pixels")

	spectrumCmd := &cobra.Command{
		Use:   "spectrum",
		Short: "harmonic magnitudes over one period",
		RunE:  showSpectrum,
	}
	spectrumCmd.Flags().IntVar(&samples, "samples", 1024, "samples per period")
	spectrumCmd.Flags().IntVar(&maxHarm, "max", 10, "highest harmonic to measure")

	samplesCmd := &cobra.Command{
		Use:   "samples",
		Short: "dump the sampled curve over animation frames",
		RunE:  dumpSamples,
	}
	samplesCmd.Flags().IntVar(&sampleFrames, "frames", 20, "animation frames to record")
	samplesCmd.Flags().IntVar(&columns, "columns", 60, "samples per frame")
	samplesCmd.Flags().StringVar(&format, "format", "csv", "output format (csv, json)")

	scriptCmd := &cobra.Command{
		Use:   "script [scenario.yaml]",
		Short: "play a scripted scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runScript,
	}
	scriptCmd.Flags().StringVar(&gifOut, "gif", "", "record the scenario to a gif file")

	sweepCmd := &cobra.Command{
		Use:   "sweep [field]",
		Short: "sweep one parameter across its slider range",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE:  listPresets,
	}

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list color themes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range viz.ThemeNames() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(renderCmd, svgCmd, pngCmd, gifCmd, spectrumCmd, samplesCmd, scriptCmd, sweepCmd, presetsCmd, themesCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, p, err := setup(cmd)
	if err != nil {
		return err
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		fmt.Println(brailleFrame(cfg, p, 0))
		return nil
	}
	if debug {
		f, err := tea.LogToFile("sinmod-debug.log", "sinmod")
		if err != nil {
			return fmt.Errorf("debug log: %w", err)
		}
		defer f.Close()
	}
	return tui.Run(tui.Options{
		Config:    cfg,
		Params:    p,
		Animate:   animate,
		RecordDir: recordDir,
	}, tea.WithAltScreen())
}

func renderFrame(cmd *cobra.Command, args []string) error {
	cfg, p, err := setup(cmd)
	if err != nil {
		return err
	}

	sched := widget.NewManualScheduler()
	surface := viz.NewBrailleSurface(cfg.Columns, cfg.Rows)
	w := widget.New(sched, viz.RendererForTheme(viz.GetTheme(cfg.Theme)))
	defer w.Dispose()
	w.SetFrameStep(cfg.FrameStep)
	if err := w.Apply(p); err != nil {
		return err
	}
	w.Mount(surface)
	if renderFrames > 0 {
		w.Toggle()
		sched.Run(renderFrames)
		w.Toggle()
	}

	if graph {
		fmt.Println(asciigraph.Plot(p.Sample(cfg.Columns*2, w.Time()),
			asciigraph.Height(cfg.Rows),
			asciigraph.Caption(fmt.Sprintf("%s  t=%.2f", p, w.Time())),
		))
		return nil
	}
	fmt.Println(surface.Canvas().String())
	fmt.Printf("%s  t=%.2f\n", p, w.Time())
	return nil
}

func brailleFrame(cfg *config.Config, p sinmod.Params, t float64) string {
	s := viz.NewBrailleSurface(cfg.Columns, cfg.Rows)
	viz.RendererForTheme(viz.GetTheme(cfg.Theme)).Draw(s, p, t)
	return s.Canvas().String()
}

func writeSVG(cmd *cobra.Command, args []string) error {
	cfg, p, err := setup(cmd)
	if err != nil {
		return err
	}
	path := outputPath(args, "sinmod.svg")
	doc := export.SVG(viz.RendererForTheme(viz.GetTheme(cfg.Theme)), p, atTime)
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func writePNG(cmd *cobra.Command, args []string) error {
	cfg, p, err := setup(cmd)
	if err != nil {
		return err
	}
	path := outputPath(args, "sinmod.png")
	r := viz.RendererForTheme(viz.GetTheme(cfg.Theme))
	err = writeFile(path, func(w io.Writer) error {
		return export.PNG(w, r, p, atTime, pxWidth, pxHigh)
	})
	if err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func writeGIF(cmd *cobra.Command, args []string) error {
	cfg, p, err := setup(cmd)
	if err != nil {
		return err
	}
	if gifFrames <= 0 {
		return fmt.Errorf("frames must be positive")
	}
	r := viz.RendererForTheme(viz.GetTheme(cfg.Theme))
	anim := export.Animation(r, p, gifFrames, cfg.FrameStep, pxWidth, pxHigh)

	var path string
	if len(args) == 0 {
		path, err = anim.Save(".")
	} else {
		path = outputPath(args, "")
		err = writeFile(path, anim.Encode)
	}
	if err != nil {
		return fmt.Errorf("write gif: %w", err)
	}
	fmt.Printf("wrote %s (%d frames)\n", path, anim.Len())
	return nil
}

func writeFile(path string, encode func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func outputPath(args []string, def string) string {
	if len(args) > 0 {
		return filepath.Clean(args[0])
	}
	return def
}

func showSpectrum(cmd *cobra.Command, args []string) error {
	_, p, err := setup(cmd)
	if err != nil {
		return err
	}
	hs, err := analysis.HarmonicSpectrum(p, samples, maxHarm)
	if err != nil {
		return err
	}

	fmt.Printf("harmonic spectrum: %s\n\n", p)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "N\tMAGNITUDE\tEXPECTED")
	for _, h := range hs {
		fmt.Fprintf(w, "%d\t%.4f\t%.4f\n", h.N, h.Magnitude, h.Expected)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(asciigraph.Plot(analysis.Magnitudes(hs),
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption("magnitude by harmonic"),
	))
	return nil
}

// dumpSamples animates a headless widget and records the curve after
// every frame.
func dumpSamples(cmd *cobra.Command, args []string) error {
	cfg, p, err := setup(cmd)
	if err != nil {
		return err
	}
	if columns <= 0 {
		return fmt.Errorf("columns must be positive")
	}

	sched := widget.NewManualScheduler()
	w := widget.New(sched, nil)
	defer w.Dispose()
	w.SetFrameStep(cfg.FrameStep)
	if err := w.Apply(p); err != nil {
		return err
	}

	tr := export.NewTrace(p, columns)
	tr.Add(w.Time())
	w.OnFrame(tr.Add)
	w.Toggle()
	sched.Run(sampleFrames)

	switch format {
	case "csv":
		return tr.WriteCSV(os.Stdout)
	case "json":
		return tr.WriteJSON(os.Stdout)
	}
	return fmt.Errorf("unknown format: %s (available: csv, json)", format)
}

func runScript(cmd *cobra.Command, args []string) error {
	cfg, _, err := setup(cmd)
	if err != nil {
		return err
	}
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}

	var rec *export.GIFRecorder
	if gifOut != "" {
		rec = export.NewGIFRecorder(viz.RendererForTheme(viz.GetTheme(cfg.Theme)), viz.SurfaceWidth, viz.SurfaceHeight)
	}
	surface := viz.NewBrailleSurface(cfg.Columns, cfg.Rows)
	frameCount := 0
	final, err := automation.RunScenario(cmd.Context(), sc, surface, cfg.FrameStep, func(f automation.Frame) {
		frameCount++
		if rec != nil {
			rec.Capture(f.Params, f.Time)
		}
	})
	if err != nil {
		return err
	}

	fmt.Println(surface.Canvas().String())
	fmt.Printf("scenario %s: %d steps, %d frames\n", sc.Name, len(sc.Steps), frameCount)
	fmt.Printf("final: %s\n", final)
	if rec != nil {
		if err := writeFile(gifOut, rec.Encode); err != nil {
			return fmt.Errorf("write gif: %w", err)
		}
		fmt.Printf("wrote %s\n", gifOut)
	}
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	_, p, err := setup(cmd)
	if err != nil {
		return err
	}
	field, err := sinmod.ParseField(args[0])
	if err != nil {
		return err
	}
	results, err := automation.RunSweep(cmd.Context(), &automation.ParameterSweep{
		Base:  p,
		Field: field,
	})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tPEAK\tRMS\n", strings.ToUpper(field.Title()))
	peaks := make([]float64, len(results))
	for i, r := range results {
		fmt.Fprintf(w, "%.2f\t%.4f\t%.4f\n", r.Value, r.Peak, r.RMS)
		peaks[i] = r.Peak
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if len(peaks) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(peaks,
			asciigraph.Height(8),
			asciigraph.Caption("peak by "+string(field)),
		))
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPARAMETERS")
	for _, name := range config.ListPresets() {
		p, err := config.GetPreset(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\n", name, p)
	}
	return w.Flush()
}

// setup loads the config and resolves the starting parameters. Logging
// is discarded unless --debug redirects it.
func setup(cmd *cobra.Command) (*config.Config, sinmod.Params, error) {
	if !debug {
		log.SetOutput(io.Discard)
	}

	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, sinmod.Params{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = theme
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = fps
	}
	if err := cfg.Validate(); err != nil {
		return nil, sinmod.Params{}, err
	}

	name := cfg.Preset
	if cmd.Flags().Changed("preset") {
		name = preset
	}
	p, err := resolveParams(name, sets, changedParams(cmd))
	if err != nil {
		return nil, sinmod.Params{}, err
	}
	return cfg, p, nil
}
