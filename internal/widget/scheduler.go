package widget

import "sort"

// Handle identifies a scheduled frame callback. The zero Handle is never
// returned by a Scheduler and cancelling it is a no-op.
type Handle uint64

// Scheduler is the host frame-scheduling primitive. Schedule arranges for
// fn to run once on the next display frame. Cancel drops a pending
// callback; cancelling an unknown, fired or already cancelled handle is a
// no-op.
type Scheduler interface {
	Schedule(fn func()) Handle
	Cancel(h Handle)
}

// ManualScheduler is a Scheduler whose frames are advanced explicitly
// with Step. It is used for headless rendering and in tests.
type ManualScheduler struct {
	next    Handle
	pending map[Handle]func()

	Scheduled int
	Cancelled int
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{pending: make(map[Handle]func())}
}

func (s *ManualScheduler) Schedule(fn func()) Handle {
	s.next++
	s.pending[s.next] = fn
	s.Scheduled++
	return s.next
}

func (s *ManualScheduler) Cancel(h Handle) {
	if _, ok := s.pending[h]; !ok {
		return
	}
	delete(s.pending, h)
	s.Cancelled++
}

// Pending returns the number of callbacks waiting for a frame.
func (s *ManualScheduler) Pending() int { return len(s.pending) }

// Step runs one display frame: every callback pending at the start of the
// frame fires once, in scheduling order. Callbacks scheduled while the
// frame runs wait for the next Step. It returns the number fired.
func (s *ManualScheduler) Step() int {
	handles := make([]Handle, 0, len(s.pending))
	for h := range s.pending {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })

	fired := 0
	for _, h := range handles {
		fn, ok := s.pending[h]
		if !ok {
			continue
		}
		delete(s.pending, h)
		fn()
		fired++
	}
	return fired
}

// Run steps n frames and returns the total number of callbacks fired.
func (s *ManualScheduler) Run(n int) int {
	total := 0
	for i := 0; i < n; i++ {
		total += s.Step()
	}
	return total
}
