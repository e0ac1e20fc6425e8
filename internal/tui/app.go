// Package tui runs the sinusoid widget as a Bubble Tea program: a braille
// view of the curve next to a panel of parameter sliders.
package tui

import (
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/sinmod/internal/config"
	"github.com/san-kum/sinmod/internal/export"
	"github.com/san-kum/sinmod/internal/sinmod"
	"github.com/san-kum/sinmod/internal/viz"
	"github.com/san-kum/sinmod/internal/widget"
)

const formula = `I₁(P, t) = A·cos(ωx + φ + π/2) + φ₁(P, t)
I₂(P, t) = A·cos(ωx + φ - π/2) + φ₂(P, t)`

const helpText = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space     - Start/stop animation    ║
║  Tab/J/↓   - Next slider             ║
║  S-Tab/K/↑ - Previous slider         ║
║  →/L       - Increase one step       ║
║  ←/H       - Decrease one step       ║
║  R         - Reset parameters        ║
║  P         - Next preset             ║
║  T         - Cycle themes            ║
║  G         - Toggle GIF recording    ║
║  ?         - Toggle this help        ║
║  Q         - Quit                    ║
╚══════════════════════════════════════╝
`

// Options configure a Model.
type Options struct {
	Config *config.Config
	Params sinmod.Params
	// Animate starts the animation right away.
	Animate bool
	// RecordDir receives GIF recordings.
	RecordDir string
}

// Model is the Bubble Tea model wrapping a widget.
type Model struct {
	w       *widget.Widget
	sched   *FrameScheduler
	surface *viz.BrailleSurface
	sliders []widget.Slider

	selected int
	theme    viz.Theme
	styles   viz.Styles
	presets  []string
	preset   int

	trace    *trace
	status   string
	showHelp bool

	recorder  *export.GIFRecorder
	recordDir string
}

func NewModel(opts Options) (Model, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	theme := viz.GetTheme(cfg.Theme)
	sched := NewFrameScheduler(cfg.FPS)
	w := widget.New(sched, viz.RendererForTheme(theme))
	w.SetFrameStep(cfg.FrameStep)
	params := opts.Params
	if params == (sinmod.Params{}) {
		params = sinmod.Default()
	}
	if err := w.Apply(params); err != nil {
		return Model{}, fmt.Errorf("initial parameters: %w", err)
	}

	m := Model{
		w:         w,
		sched:     sched,
		surface:   viz.NewBrailleSurface(cfg.Columns, cfg.Rows),
		sliders:   widget.Sliders(),
		theme:     theme,
		styles:    viz.NewStyles(theme),
		presets:   config.ListPresets(),
		trace:     newTrace(cfg.History),
		recordDir: opts.RecordDir,
	}
	if m.recordDir == "" {
		m.recordDir = "."
	}
	for i, name := range m.presets {
		if name == cfg.Preset {
			m.preset = i
		}
	}

	w.Mount(m.surface)
	tr := m.trace
	tr.add(w.Params().Value(0, w.Time()))
	w.OnFrame(func(t float64) { tr.add(w.Params().Value(0, t)) })
	if opts.Animate {
		w.Toggle()
	}
	return m, nil
}

// Widget exposes the underlying widget.
func (m Model) Widget() *widget.Widget { return m.w }

func (m Model) Init() tea.Cmd { return m.sched.Cmd() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		var quit bool
		m, quit = m.handleKey(msg)
		if quit {
			return m, tea.Quit
		}
	case frameMsg:
		if m.sched.Fire(msg.handle) && m.recorder != nil {
			m.recorder.Capture(m.w.Params(), m.w.Time())
		}
	}
	return m, m.sched.Cmd()
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, bool) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.stopRecording()
		m.w.Dispose()
		log.Printf("disposed at t=%.2f", m.w.Time())
		return m, true
	case " ":
		state := m.w.Toggle()
		log.Printf("animation %s at t=%.2f", state, m.w.Time())
	case "tab", "down", "j":
		m.selected = (m.selected + 1) % len(m.sliders)
	case "shift+tab", "up", "k":
		m.selected = (m.selected + len(m.sliders) - 1) % len(m.sliders)
	case "right", "l":
		m.nudge(1)
	case "left", "h":
		m.nudge(-1)
	case "r":
		m.w.Reset()
		m.trace.reset()
		m.trace.add(m.w.Params().Value(0, m.w.Time()))
		m.status = "reset"
	case "p":
		m.preset = (m.preset + 1) % len(m.presets)
		m.applyPreset(m.presets[m.preset])
	case "t":
		m.theme = viz.NextTheme(m.theme.Name)
		m.styles = viz.NewStyles(m.theme)
		m.w.SetRenderer(viz.RendererForTheme(m.theme))
	case "g":
		if m.recorder != nil {
			m.stopRecording()
		} else {
			m.recorder = export.NewGIFRecorder(nil, viz.SurfaceWidth, viz.SurfaceHeight)
			m.recorder.Capture(m.w.Params(), m.w.Time())
			m.status = "recording"
		}
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, false
}

// nudge moves the selected slider one step and feeds the new value back
// as a slider input event.
func (m *Model) nudge(dir int) {
	sl := m.sliders[m.selected]
	v := sl.Nudge(m.w.Params().Get(sl.Field), dir)
	if err := m.w.Input(string(sl.Field), sl.Format(v)); err != nil {
		log.Printf("input %s: %v", sl.Field, err)
		m.status = err.Error()
		return
	}
	m.status = ""
}

func (m *Model) applyPreset(name string) {
	p, err := config.GetPreset(name)
	if err == nil {
		err = m.w.Apply(p)
	}
	if err != nil {
		log.Printf("preset %s: %v", name, err)
		m.status = err.Error()
		return
	}
	m.status = "preset " + name
}

func (m *Model) stopRecording() {
	if m.recorder == nil {
		return
	}
	path, err := m.recorder.Save(m.recordDir)
	m.recorder = nil
	if err != nil {
		log.Printf("save recording: %v", err)
		m.status = err.Error()
		return
	}
	m.status = "saved " + path
}

// trace keeps the recent values of the curve at x=0. It is shared by
// pointer because frame callbacks outlive the model copy that
// registered them.
type trace struct {
	values []float64
	limit  int
	frames int
}

func newTrace(limit int) *trace {
	return &trace{values: make([]float64, 0, limit), limit: limit}
}

func (tr *trace) add(v float64) {
	tr.values = append(tr.values, v)
	if len(tr.values) > tr.limit {
		tr.values = tr.values[1:]
	}
	tr.frames++
}

func (tr *trace) reset() {
	tr.values = tr.values[:0]
}

func (m Model) View() string {
	canvasView := m.styles.Canvas.Render(m.surface.Canvas().Render())

	var s strings.Builder
	s.WriteString(viz.GradientText("SINMOD", m.theme.Primary, m.theme.Secondary) + "\n")
	s.WriteString(m.styles.Subtle.Render("sinusoidal modelling of tagged motion") + "\n\n")

	if m.w.Animating() {
		s.WriteString(m.styles.Animating.Render(viz.AnimatedSpinner(m.trace.frames) + " ANIMATING"))
	} else {
		s.WriteString(m.styles.Idle.Render("■ IDLE"))
	}
	if m.recorder != nil {
		s.WriteString("  " + m.styles.Recording.Render(fmt.Sprintf("● REC %d", m.recorder.Len())))
	}
	s.WriteString("\n")
	s.WriteString(m.styles.Label.Render("Time") + m.styles.Value.Render(fmt.Sprintf("%.2f", m.w.Time())) + "\n")
	s.WriteString(m.styles.Label.Render("Preset") + m.styles.Value.Render(m.presets[m.preset]) + "\n")

	if len(m.trace.values) > 1 {
		chart := asciigraph.Plot(m.trace.values, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("value(0, t)"))
		s.WriteString(m.styles.Graph.Render(chart) + "\n")
	}

	s.WriteString("\n" + m.styles.Header.Render("PARAMETERS") + "\n")
	p := m.w.Params()
	for i, sl := range m.sliders {
		v := p.Get(sl.Field)
		line := fmt.Sprintf("%-22s %s", widget.Label(sl.Field, v), viz.SliderBar(sl.Ratio(v), 10))
		if i == m.selected {
			s.WriteString(m.styles.Active.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + m.styles.Value.Render(line) + "\n")
		}
	}

	s.WriteString("\n" + m.styles.Formula.Render(formula) + "\n")
	if m.status != "" {
		s.WriteString(m.styles.Subtle.Render(m.status) + "\n")
	}
	s.WriteString(m.styles.Help.Render(viz.Separator(30, m.styles.Subtle) + "\nSP:Animate ←→:Tune Tab:Select\nR:Reset P:Preset T:Theme\nG:Record ?:Help Q:Quit"))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, m.styles.Panel.Render(s.String()))
	if m.showHelp {
		return helpText + "\n" + mainView
	}
	return mainView
}

// Run starts the interactive program and blocks until it quits. The
// widget is disposed when the program ends, however it ends.
func Run(opts Options, progOpts ...tea.ProgramOption) error {
	m, err := NewModel(opts)
	if err != nil {
		return err
	}
	defer m.w.Dispose()

	if _, err := tea.NewProgram(m, progOpts...).Run(); err != nil {
		return err
	}
	return nil
}
