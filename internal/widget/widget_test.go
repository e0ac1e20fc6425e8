package widget_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sinmod/internal/sinmod"
	"github.com/san-kum/sinmod/internal/viz"
	"github.com/san-kum/sinmod/internal/widget"
)

var _ = Describe("Widget", func() {
	var (
		sched   *widget.ManualScheduler
		w       *widget.Widget
		surface *viz.BrailleSurface
	)

	BeforeEach(func() {
		sched = widget.NewManualScheduler()
		w = widget.New(sched, nil)
		surface = viz.NewBrailleSurface(40, 10)
	})

	It("starts idle with default parameters", func() {
		Expect(w.State()).To(Equal(widget.Idle))
		Expect(w.Params()).To(Equal(sinmod.Default()))
		Expect(w.Time()).To(BeZero())
		Expect(w.Handle()).To(BeZero())
	})

	Describe("drawing", func() {
		It("skips redraws until a surface is mounted", func() {
			Expect(w.Set(sinmod.FieldAmplitude, 1.5)).To(Succeed())
			Expect(w.Redraws()).To(BeZero())

			w.Mount(surface)
			Expect(w.Redraws()).To(Equal(1))
		})

		It("redraws once per parameter change", func() {
			w.Mount(surface)
			Expect(w.Input("amplitude", "1.5")).To(Succeed())
			Expect(w.Input("harmonicCount", "5")).To(Succeed())
			Expect(w.Redraws()).To(Equal(3))
			Expect(w.Params().Amplitude).To(Equal(1.5))
			Expect(w.Params().Harmonics).To(Equal(5))
		})
	})

	Describe("Input", func() {
		It("rejects unknown fields", func() {
			Expect(w.Input("gain", "1")).To(MatchError(sinmod.ErrUnknownParam))
		})

		It("rejects values that do not parse", func() {
			Expect(w.Input("phase", "half")).To(MatchError(sinmod.ErrInvalidValue))
			Expect(w.Params()).To(Equal(sinmod.Default()))
		})

		It("rejects values outside the slider range", func() {
			Expect(w.Input("period", "9")).To(MatchError(sinmod.ErrParameterBounds))
			Expect(w.Params().Period).To(Equal(sinmod.DefaultPeriod))
		})

		It("accepts the short control names", func() {
			Expect(w.Input("omega", " 2.5 ")).To(Succeed())
			Expect(w.Params().AngularFrequency).To(Equal(2.5))
		})
	})

	Describe("animation", func() {
		It("leaves time unchanged when toggled on and off without a frame", func() {
			Expect(w.Toggle()).To(Equal(widget.Animating))
			Expect(w.Toggle()).To(Equal(widget.Idle))
			Expect(w.Time()).To(BeZero())
			Expect(sched.Pending()).To(BeZero())
			Expect(sched.Step()).To(BeZero())
			Expect(w.Time()).To(BeZero())
		})

		It("advances time by the frame step on every frame", func() {
			w.Mount(surface)
			w.Toggle()
			const k = 37
			Expect(sched.Run(k)).To(Equal(k))
			Expect(w.Time()).To(BeNumerically("~", 0.05*k, 1e-9))
			Expect(w.Redraws()).To(Equal(1 + k))
			Expect(sched.Pending()).To(Equal(1))
		})

		It("continues from the time it was stopped at", func() {
			w.Toggle()
			sched.Run(4)
			w.Toggle()
			start := w.Time()
			sched.Run(3)
			Expect(w.Time()).To(Equal(start))

			w.Toggle()
			sched.Run(6)
			Expect(w.Time()).To(BeNumerically("~", start+0.05*6, 1e-9))
		})

		It("stops rescheduling once stopped", func() {
			w.Toggle()
			sched.Run(2)
			w.Toggle()
			Expect(w.Handle()).To(BeZero())
			Expect(sched.Pending()).To(BeZero())
			Expect(sched.Cancelled).To(Equal(1))
		})

		It("notifies the frame observer", func() {
			var seen []float64
			w.OnFrame(func(t float64) { seen = append(seen, t) })
			w.Toggle()
			sched.Run(3)
			Expect(seen).To(HaveLen(3))
			Expect(seen[2]).To(BeNumerically("~", 0.15, 1e-12))
		})

		It("honours a custom frame step", func() {
			w.SetFrameStep(0.1)
			w.Toggle()
			sched.Run(5)
			Expect(w.Time()).To(BeNumerically("~", 0.5, 1e-9))
		})
	})

	Describe("Dispose", func() {
		It("leaves no pending callback when disposed while animating", func() {
			w.Mount(surface)
			w.Toggle()
			sched.Run(2)
			scheduled := sched.Scheduled

			w.Dispose()
			Expect(w.State()).To(Equal(widget.Disposed))
			Expect(sched.Pending()).To(BeZero())

			Expect(sched.Run(5)).To(BeZero())
			Expect(sched.Scheduled).To(Equal(scheduled))
		})

		It("is idempotent and safe when idle", func() {
			w.Dispose()
			w.Dispose()
			Expect(sched.Cancelled).To(BeZero())
			Expect(w.State()).To(Equal(widget.Disposed))
		})

		It("is terminal", func() {
			w.Dispose()
			Expect(w.Toggle()).To(Equal(widget.Disposed))
			Expect(sched.Pending()).To(BeZero())
			Expect(w.Input("amplitude", "1")).To(MatchError(widget.ErrDisposed))
			Expect(w.Apply(sinmod.Default())).To(MatchError(widget.ErrDisposed))
		})
	})

	Describe("Reset and Apply", func() {
		It("restores defaults and rewinds time", func() {
			Expect(w.Set(sinmod.FieldHarmonics, 9)).To(Succeed())
			w.Toggle()
			sched.Run(3)
			w.Reset()
			Expect(w.Params()).To(Equal(sinmod.Default()))
			Expect(w.Time()).To(BeZero())
			Expect(w.State()).To(Equal(widget.Animating))
		})

		It("validates a whole parameter set", func() {
			p := sinmod.Default()
			p.Harmonics = 0
			Expect(w.Apply(p)).To(MatchError(sinmod.ErrParameterBounds))

			p.Harmonics = 10
			p.Phase = math.Pi
			Expect(w.Apply(p)).To(Succeed())
			Expect(w.Params()).To(Equal(p))
		})
	})

	It("formats control labels", func() {
		Expect(w.Label(sinmod.FieldAmplitude)).To(Equal("Amplitude (A): 1.00"))
		Expect(w.Label(sinmod.FieldHarmonics)).To(Equal("Harmonics: 3"))
	})
})
