package testgaze

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/okian/gazelens/internal/domain/trace"
	"github.com/okian/gazelens/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestBuildCSV(t *testing.T) {
	Convey("Given the trace generator", t, func() {
		rng := rand.New(rand.NewSource(42))

		Convey("When building a fixation trace", func() {
			csv := buildCSV(PatternFixation, 60, rng)

			Convey("Then the output should parse back into the expected samples", func() {
				samples, err := trace.Parse(csv)
				So(err, ShouldBeNil)
				So(samples, ShouldHaveLength, 60)
			})

			Convey("And timestamps should advance at the sample interval", func() {
				samples, err := trace.Parse(csv)
				So(err, ShouldBeNil)
				So(samples[0].ElapsedTime, ShouldEqual, 0)
				So(samples[1].ElapsedTime, ShouldAlmostEqual, sampleInterval, 0.0005)
				So(samples[59].ElapsedTime, ShouldBeGreaterThan, samples[0].ElapsedTime)
			})
		})

		Convey("When building traces for every pattern", func() {
			for _, pattern := range patterns {
				samples, err := trace.Parse(buildCSV(pattern, minSamples, rng))
				So(err, ShouldBeNil)
				So(samples, ShouldHaveLength, minSamples)
			}
		})
	})
}

func TestStripYColumn(t *testing.T) {
	Convey("Given a well-formed trace", t, func() {
		rng := rand.New(rand.NewSource(7))
		csv := buildCSV(PatternScan, 40, rng)

		Convey("When stripping the y column", func() {
			corrupted := stripYColumn(csv)

			Convey("Then the header should lose its last column", func() {
				firstLine := strings.SplitN(corrupted, "\n", 2)[0]
				So(firstLine, ShouldEqual, "elapsedTime(seconds),x")
			})

			Convey("And parsing should fail with a missing column error", func() {
				_, err := trace.Parse(corrupted)
				So(err, ShouldNotBeNil)
				So(errors.Is(err, trace.ErrMissingColumn), ShouldBeTrue)
			})
		})
	})
}

func TestGenerateTraces(t *testing.T) {
	Convey("Given the trace generator", t, func() {
		So(logger.Init(), ShouldBeNil)
		ctx := context.Background()
		rng := rand.New(rand.NewSource(1))

		Convey("When generating a batch with no corruption", func() {
			config := &Config{NumTraces: 9, CorruptRatio: 0}
			traces := generateTraces(ctx, config, rng)

			Convey("Then every trace should be valid and patterns should rotate", func() {
				So(traces, ShouldHaveLength, 9)
				for i, tr := range traces {
					So(tr.ID, ShouldNotBeEmpty)
					So(tr.Corrupted, ShouldBeFalse)
					So(tr.Pattern, ShouldEqual, patterns[i%len(patterns)])

					samples, err := trace.Parse(tr.CSV)
					So(err, ShouldBeNil)
					So(len(samples), ShouldBeGreaterThanOrEqualTo, minSamples)
				}
			})
		})

		Convey("When generating a batch with full corruption", func() {
			config := &Config{NumTraces: 6, CorruptRatio: 1}
			traces := generateTraces(ctx, config, rng)

			Convey("Then every trace should be rejected by the parser", func() {
				So(traces, ShouldHaveLength, 6)
				for _, tr := range traces {
					So(tr.Corrupted, ShouldBeTrue)
					_, err := trace.Parse(tr.CSV)
					So(err, ShouldNotBeNil)
				}
			})
		})
	})
}
