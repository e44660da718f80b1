package scoring_test

import (
	"testing"

	scoring "github.com/okian/gazelens/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

// ideal is an input where every component earns its maximum:
// 50 + 25 + 20 + 15 + 10 = 120, clamped to 100.
var ideal = scoring.Input{
	Duration:    20,
	AvgMovement: 125,
	Stability:   100,
	Points:      200,
}

func TestEvaluator_Score(t *testing.T) {
	Convey("Given the score evaluator", t, func() {
		e := scoring.NewEvaluator()

		Convey("When every component is at its maximum", func() {
			r := e.Score(ideal)

			Convey("Then the total clamps to 100", func() {
				So(r.Score, ShouldEqual, 100)
				So(r.Label, ShouldEqual, "Excellent attention patterns")
			})
		})

		Convey("When every component is at its worst", func() {
			r := e.Score(scoring.Input{
				Duration:    0,
				AvgMovement: 1000, // far outside the band, falloff floors at 0
				Stability:   -500,
				Points:      0,
			})

			Convey("Then the total clamps up to 1", func() {
				So(r.Score, ShouldEqual, 1)
				So(r.Label, ShouldEqual, "Poor attention patterns")
			})
		})

		Convey("When probing the duration boundaries", func() {
			// Fix everything else at maximum so only duration varies:
			// base 50 + stability 20 + quality 15 + movement 10 = 95.
			at := func(d float64) int {
				in := ideal
				in.Duration = d
				return e.Score(in).Score
			}

			Convey("Then 10 and 30 seconds both earn the full 25", func() {
				// 95 + 25 clamps to 100 either way; drop stability to
				// separate the values: 50 + 15 + 10 = 75 base-line.
				probe := func(d float64) int {
					in := ideal
					in.Duration = d
					in.Stability = 0
					return e.Score(in).Score
				}
				So(probe(10), ShouldEqual, 100) // 75 + 25
				So(probe(30), ShouldEqual, 100) // 75 + 25
				So(probe(9), ShouldEqual, 97)   // 75 + 22.5, truncated
				So(probe(0), ShouldEqual, 75)   // ramp bottoms at 0
			})

			Convey("And the overrun penalty caps at 15", func() {
				So(at(31), ShouldEqual, at(30.99)) // both still clamp to 100 here
				in := ideal
				in.Duration = 1000
				in.Stability = 0
				// 50 + (25-15) + 0 + 15 + 10 = 85
				So(e.Score(in).Score, ShouldEqual, 85)
			})
		})

		Convey("When probing the movement band", func() {
			probe := func(m float64) int {
				in := ideal
				in.AvgMovement = m
				in.Stability = 0 // keep totals under the clamp
				in.Duration = 0  // duration contributes nothing
				return e.Score(in).Score
			}

			Convey("Then both band edges earn the full 10", func() {
				// 50 + 0 + 0 + 15 + 10 = 75
				So(probe(50), ShouldEqual, 75)
				So(probe(200), ShouldEqual, 75)
			})

			Convey("And movement outside the band decays toward 0", func() {
				So(probe(49), ShouldEqual, 71)  // 65 + max(10-76*0.05,0) = 65+6.2
				So(probe(300), ShouldEqual, 66) // 65 + max(10-175*0.05,0) = 65+1.25
				So(probe(0), ShouldEqual, 68)   // 65 + max(10-125*0.05,0) = 65+3.75
			})
		})

		Convey("When probing the quality saturation", func() {
			probe := func(points int) int {
				in := ideal
				in.Points = points
				in.Stability = 0
				in.Duration = 0
				in.AvgMovement = 1000
				return e.Score(in).Score
			}

			Convey("Then 100 points earns the full 15 and more adds nothing", func() {
				// 50 + 0 + 0 + q + 0
				So(probe(100), ShouldEqual, 65)
				So(probe(1000), ShouldEqual, 65)
				So(probe(0), ShouldEqual, 50)
				So(probe(50), ShouldEqual, 57) // 50 + 7.5, truncated
			})
		})

		Convey("When stability is negative", func() {
			in := ideal
			in.Stability = -100 // contributes -30

			Convey("Then the negative contribution flows through unclamped", func() {
				// 50 + 25 - 30 + 15 + 10 = 70
				So(e.Score(in).Score, ShouldEqual, 70)
			})
		})
	})
}

func TestLabel(t *testing.T) {
	Convey("Given the label buckets", t, func() {
		cases := []struct {
			score int
			label string
		}{
			{100, "Excellent attention patterns"},
			{85, "Excellent attention patterns"},
			{84, "Good attention stability"},
			{70, "Good attention stability"},
			{69, "Moderate attention focus"},
			{55, "Moderate attention focus"},
			{54, "Needs attention improvement"},
			{40, "Needs attention improvement"},
			{39, "Poor attention patterns"},
			{1, "Poor attention patterns"},
		}

		Convey("When mapping scores across all boundaries", func() {
			for _, tc := range cases {
				So(scoring.Label(tc.score), ShouldEqual, tc.label)
			}
		})
	})
}
