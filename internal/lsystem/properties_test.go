package lsystem_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/lsys/internal/lsystem"
)

var _ = Describe("rewriting properties", func() {
	newKoch := func() *lsystem.RuleSet {
		rs, err := lsystem.New("F", map[rune]string{'F': "F+F-F-F+F"})
		Expect(err).NotTo(HaveOccurred())
		return rs
	}

	newDragon := func() *lsystem.RuleSet {
		rs, err := lsystem.New("F", map[rune]string{'F': "F+G", 'G': "F-G"})
		Expect(err).NotTo(HaveOccurred())
		return rs
	}

	Describe("eager and lazy expansion", func() {
		It("produce identical sequences generation by generation", func() {
			for _, rs := range []*lsystem.RuleSet{newKoch(), newDragon()} {
				rw := lsystem.NewRewriter(rs)
				for depth := 0; depth <= 7; depth++ {
					rw.Reset()
					eager := rw.IterateN(depth)
					lazy := lsystem.NewExpander(rs, depth).Drain()
					Expect(lazy).To(Equal(eager), "depth %d", depth)
				}
			}
		})
	})

	Describe("generation stepping", func() {
		It("composes: n then m steps equals n+m steps", func() {
			rs := newDragon()
			for n := 0; n <= 4; n++ {
				for m := 0; m <= 4; m++ {
					split := lsystem.NewRewriter(rs)
					split.IterateN(n)
					split.IterateN(m)

					whole := lsystem.NewRewriter(rs)
					whole.IterateN(n + m)

					Expect(split.Sequence()).To(Equal(whole.Sequence()))
					Expect(split.Generation()).To(Equal(n + m))
				}
			}
		})

		It("always restores the axiom on reset", func() {
			rs := newKoch()
			rw := lsystem.NewRewriter(rs)
			for _, n := range []int{1, 3, 5} {
				rw.IterateN(n)
				rw.Reset()
				Expect(rw.Sequence()).To(Equal("F"))
				Expect(rw.Generation()).To(BeZero())
			}
		})
	})

	Describe("growth estimation", func() {
		It("stays finite and non-negative for deep generations", func() {
			rs := newKoch()
			for _, n := range []int{10, 100, 10_000} {
				Expect(lsystem.EstimateLength(rs, n)).To(BeNumerically(">=", 0))
			}
		})
	})
})
