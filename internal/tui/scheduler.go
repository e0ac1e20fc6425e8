package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/sinmod/internal/widget"
)

type frameMsg struct {
	handle widget.Handle
}

// FrameScheduler implements widget.Scheduler on bubbletea ticks. Each
// scheduled callback becomes one tea.Tick; a cancelled callback is
// dropped when its tick arrives.
type FrameScheduler struct {
	interval time.Duration
	next     widget.Handle
	pending  map[widget.Handle]func()
	queued   []widget.Handle
}

func NewFrameScheduler(fps int) *FrameScheduler {
	if fps <= 0 {
		fps = 60
	}
	return &FrameScheduler{
		interval: time.Second / time.Duration(fps),
		pending:  make(map[widget.Handle]func()),
	}
}

func (s *FrameScheduler) Schedule(fn func()) widget.Handle {
	s.next++
	s.pending[s.next] = fn
	s.queued = append(s.queued, s.next)
	return s.next
}

func (s *FrameScheduler) Cancel(h widget.Handle) {
	delete(s.pending, h)
}

// Pending returns the number of callbacks waiting for their tick.
func (s *FrameScheduler) Pending() int { return len(s.pending) }

// Fire runs the callback of h if it is still pending.
func (s *FrameScheduler) Fire(h widget.Handle) bool {
	fn, ok := s.pending[h]
	if !ok {
		return false
	}
	delete(s.pending, h)
	fn()
	return true
}

// Cmd returns the ticks for callbacks scheduled since the last call.
func (s *FrameScheduler) Cmd() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(s.queued))
	for _, h := range s.queued {
		h := h
		cmds = append(cmds, tea.Tick(s.interval, func(time.Time) tea.Msg { return frameMsg{handle: h} }))
	}
	s.queued = s.queued[:0]
	return tea.Batch(cmds...)
}
