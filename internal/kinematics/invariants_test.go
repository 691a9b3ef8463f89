package kinematics_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/det-lab/reaction-kinematics/internal/kinematics"
)

// channels spanning elastic, exothermic and inverse kinematics
var channels = []struct {
	label          string
	m1, m2, m3, m4 float64
	ek             float64
}{
	{"12C(a,a)12C elastic", 3727.3793, 11174.8633, 3727.3793, 11174.8633, 4.0},
	{"7Li(p,a)a exothermic", 938.2721, 6533.8331, 3727.3793, 3727.3793, 2.0},
	{"t(d,n)a fusion", 1875.6129, 2808.9211, 939.5654, 3727.3793, 0.1},
	{"p(12C,12C)p inverse", 11174.8633, 938.2721, 11174.8633, 938.2721, 50.0},
	{"12C(a,p)15N endothermic", 3727.3793, 11174.8633, 938.2721, 13968.9360, 9.0},
}

var _ = Describe("Reaction invariants", func() {
	for _, ch := range channels {
		ch := ch
		Context(ch.label, func() {
			var rxn *kinematics.Reaction

			BeforeEach(func() {
				var err error
				rxn, err = kinematics.Solve(ch.m1, ch.m2, ch.m3, ch.m4, ch.ek)
				Expect(err).NotTo(HaveOccurred())
			})

			It("keeps s above the exit channel mass-sum square", func() {
				Expect(rxn.S).To(BeNumerically(">=", (ch.m3+ch.m4)*(ch.m3+ch.m4)))
				Expect(rxn.Pcm).To(BeNumerically(">", 0))
				Expect(rxn.Pcmp).To(BeNumerically(">", 0))
			})

			It("reaches the energy extrema exactly at the angular endpoints", func() {
				scale := math.Max(1, rxn.Emax3)
				Expect(rxn.RowAt(1).E3).To(BeNumerically("~", rxn.Emax3, 1e-9*scale))
				Expect(rxn.RowAt(-1).E3).To(BeNumerically("~", rxn.Emin3, 1e-9*scale))
				Expect(rxn.RowAt(-1).E4).To(BeNumerically("~", rxn.Emax4, 1e-9*scale))
				Expect(rxn.RowAt(1).E4).To(BeNumerically("~", rxn.Emin4, 1e-9*scale))
			})

			It("conserves energy and the momentum identity in every row", func() {
				for _, row := range rxn.Rows(80) {
					Expect(row.E3+row.E4).To(BeNumerically("~", rxn.Ek+rxn.Q(), 1e-8))

					p2 := (row.E3+rxn.M3)*(row.E3+rxn.M3) - rxn.M3*rxn.M3
					Expect(row.P3 * row.P3).To(BeNumerically("~", p2, 1e-6*math.Max(1, p2)))
					p2 = (row.E4+rxn.M4)*(row.E4+rxn.M4) - rxn.M4*rxn.M4
					Expect(row.P4 * row.P4).To(BeNumerically("~", p2, 1e-6*math.Max(1, p2)))
				}
			})

			It("stays within the extrema everywhere", func() {
				slack := 1e-9 * math.Max(1, rxn.Emax3)
				for _, row := range rxn.Rows(80) {
					Expect(row.E3).To(BeNumerically(">=", rxn.Emin3-slack))
					Expect(row.E3).To(BeNumerically("<=", rxn.Emax3+slack))
					Expect(row.E4).To(BeNumerically(">=", rxn.Emin4-slack))
					Expect(row.E4).To(BeNumerically("<=", rxn.Emax4+slack))
				}
			})

			It("builds one shared table and answers round-trip queries", func() {
				Expect(rxn.Table()).To(BeIdenticalTo(rxn.Table()))

				res, err := rxn.AtValue(kinematics.ColThetaCM, 1.1, []string{kinematics.ColThetaCM}, 0)
				Expect(err).NotTo(HaveOccurred())
				Expect(res[kinematics.ColThetaCM]).To(HaveLen(1))
				Expect(res[kinematics.ColThetaCM][0]).To(BeNumerically("~", 1.1, 1e-9))
			})
		})
	}
})

var _ = Describe("Forbidden channels", func() {
	It("classifies a negative beam energy", func() {
		_, err := kinematics.Solve(3727.3793, 11174.8633, 3727.3793, 11174.8633, -1.0)
		Expect(err).To(MatchError(kinematics.ErrForbidden))
	})

	It("classifies a closed exit channel", func() {
		_, err := kinematics.Solve(3727.3793, 11174.8633, 938.2721, 13968.9360, 4.0)
		Expect(err).To(MatchError(kinematics.ErrForbidden))
	})

	It("classifies a beam at rest", func() {
		_, err := kinematics.Solve(938.2721, 938.2721, 938.2721, 938.2721, 0)
		Expect(err).To(MatchError(kinematics.ErrForbidden))
	})
})
