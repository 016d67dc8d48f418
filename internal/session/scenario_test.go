package session

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/breathe/internal/particles"
	"github.com/san-kum/breathe/internal/technique"
	"github.com/san-kum/breathe/internal/theme"
)

var _ = Describe("a full breathing run", func() {
	var (
		s     *Session
		clock *fakeClock
	)

	tick := func(dt float64) {
		clock.advance(time.Duration(dt * float64(time.Second)))
		s.Tick(dt)
	}

	BeforeEach(func() {
		cat, err := technique.NewCatalog()
		Expect(err).NotTo(HaveOccurred())

		tech := &technique.Technique{
			ID:            "two-step",
			Name:          "Two Step",
			DefaultCycles: 2,
			Phases: []technique.Phase{
				{Kind: technique.Inhale, Duration: 1},
				{Kind: technique.Exhale, Duration: 1},
			},
		}
		s = NewWithTechnique(cat, theme.Default(), tech, 2)
		clock = newFakeClock()
		s.now = clock.now
		Expect(s.Start()).To(Succeed())
	})

	It("completes after exactly the configured cycles", func() {
		completions := 0
		for i := 0; i < 8; i++ {
			before := s.State()
			tick(0.5)
			if before != StateComplete && s.State() == StateComplete {
				completions++
			}
		}
		Expect(s.State()).To(Equal(StateComplete))
		Expect(completions).To(Equal(1))
		Expect(s.CyclesCompleted()).To(Equal(2))
	})

	It("freezes the session duration at completion", func() {
		for i := 0; i < 8; i++ {
			tick(0.5)
		}
		Expect(s.State()).To(Equal(StateComplete))
		at := s.SessionElapsed()

		clock.advance(time.Minute)
		Expect(s.SessionElapsed()).To(Equal(at))
		Expect(at).To(BeNumerically("~", 4*time.Second, time.Millisecond))
	})

	It("fires a single celebration burst", func() {
		for i := 0; i < 8; i++ {
			tick(0.5)
		}
		c := s.Celebration()
		Expect(c).NotTo(BeNil())
		Expect(c.Particles()).To(HaveLen(100))

		// The burst does not refire on later ticks.
		tick(0.016)
		Expect(s.Celebration().Particles()).To(HaveLen(100))
	})

	It("retires the celebration once it finishes", func() {
		for i := 0; i < 8; i++ {
			tick(0.5)
		}
		Expect(s.Celebration()).NotTo(BeNil())

		for i := 0; i < 300; i++ {
			tick(0.016)
		}
		Expect(s.Celebration()).To(BeNil())
	})

	It("rebuilds the emitters on every phase change", func() {
		seen := map[particles.Kind]bool{}
		record := func() {
			for _, p := range s.Field().Particles() {
				seen[p.Kind] = true
			}
		}
		for i := 0; i < 6; i++ {
			tick(0.25)
			record()
		}
		Expect(seen[particles.Inward]).To(BeTrue(), "inhale should pull particles inward")
		Expect(seen[particles.Outward]).To(BeTrue(), "exhale should push particles outward")
	})

	It("restarts cleanly after a reset", func() {
		for i := 0; i < 8; i++ {
			tick(0.5)
		}
		Expect(s.State()).To(Equal(StateComplete))

		s.Reset()
		Expect(s.Start()).To(Succeed())
		for i := 0; i < 8; i++ {
			tick(0.5)
		}
		Expect(s.State()).To(Equal(StateComplete))
		Expect(s.CyclesCompleted()).To(Equal(2))
	})
})
