package service_test

import (
	"context"
	"encoding/json"
	"testing"

	service "github.com/okian/gazelens/internal/app"
	"github.com/okian/gazelens/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

const smoothTrace = `elapsedTime(seconds),x,y
0.000,100.50,200.30
0.016,101.20,201.15
0.032,102.10,202.05
0.048,103.05,203.20
0.064,104.15,204.35
`

func newStartedService(t *testing.T, opts ...service.Option) *service.Service {
	t.Helper()
	if err := logger.Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}
	svc := service.New(opts...)
	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("failed to start service: %v", err)
	}
	return svc
}

func TestService_Analyze(t *testing.T) {
	Convey("Given a started analysis service", t, func() {
		svc := newStartedService(t)
		defer svc.Stop()
		ctx := context.Background()

		Convey("When analyzing a smooth five-sample trace", func() {
			report := svc.Analyze(ctx, smoothTrace)

			Convey("Then the success variant is produced", func() {
				So(report.Failed(), ShouldBeFalse)
				So(report.Analysis, ShouldNotBeNil)
				So(report.Analysis.TotalPoints, ShouldEqual, 5)
				So(report.Analysis.DurationSeconds, ShouldEqual, 0.06)
				So(report.Analysis.AverageMovement, ShouldEqual, 1.36)
				So(report.Analysis.TotalMovement, ShouldEqual, 5.46)
				So(report.Analysis.CoverageArea, ShouldEqual, 14.78)
				So(report.Analysis.StabilityScore, ShouldEqual, 0)
			})

			Convey("And the score follows the formula for these statistics", func() {
				// 50 base + 0.16 duration + 0 stability + 0.75 quality
				// + ~3.82 movement = ~54.73, truncated to 54.
				So(report.Score, ShouldEqual, 54)
				So(report.Message, ShouldEqual, "Analysis completed: Needs attention improvement")
			})
		})

		Convey("When analyzing the same text twice", func() {
			first := svc.Analyze(ctx, smoothTrace)
			second := svc.Analyze(ctx, smoothTrace)

			Convey("Then the outputs are identical", func() {
				a, err := json.Marshal(first)
				So(err, ShouldBeNil)
				b, err := json.Marshal(second)
				So(err, ShouldBeNil)
				So(string(a), ShouldEqual, string(b))
			})
		})

		Convey("When the y column is missing", func() {
			report := svc.Analyze(ctx, "elapsedTime(seconds),x\n0.000,100.50\n")

			Convey("Then the failure variant is produced", func() {
				So(report.Failed(), ShouldBeTrue)
				So(report.Score, ShouldEqual, 0)
				So(report.Analysis, ShouldBeNil)
				So(report.Error, ShouldNotBeEmpty)
				So(report.Message, ShouldEqual, "Analysis failed")
			})
		})

		Convey("When a timestamp repeats", func() {
			input := "elapsedTime(seconds),x,y\n0.0,0,0\n0.1,1,1\n0.1,2,2\n"
			report := svc.Analyze(ctx, input)

			Convey("Then the computation error surfaces as a failure report", func() {
				So(report.Failed(), ShouldBeTrue)
				So(report.Score, ShouldEqual, 0)
				So(report.Error, ShouldContainSubstring, "zero elapsed-time delta")
				So(report.Message, ShouldEqual, "Analysis failed")
			})
		})

		Convey("When the input is not tabular at all", func() {
			report := svc.Analyze(ctx, "this is not a trace")

			Convey("Then the report is still well-formed", func() {
				So(report.Score, ShouldEqual, 0)
				So(report.Message, ShouldEqual, "Analysis failed")
				So(report.Error, ShouldNotBeEmpty)
			})
		})
	})

	Convey("Given a service with a small row cap", t, func() {
		svc := newStartedService(t, service.WithMaxTraceRows(2))
		defer svc.Stop()

		Convey("When the trace exceeds the cap", func() {
			report := svc.Analyze(context.Background(), smoothTrace)

			Convey("Then it fails with the row limit error", func() {
				So(report.Failed(), ShouldBeTrue)
				So(report.Error, ShouldContainSubstring, "too many data rows")
			})
		})
	})
}

func TestService_Lifecycle(t *testing.T) {
	Convey("Given a new service", t, func() {
		svc := newStartedService(t)

		Convey("When starting twice", func() {
			err := svc.Start(context.Background())

			Convey("Then the second start is a no-op", func() {
				So(err, ShouldBeNil)
			})
		})

		Convey("When reading stats after a few analyses", func() {
			ctx := context.Background()
			svc.Analyze(ctx, smoothTrace)
			svc.Analyze(ctx, "garbage")
			stats := svc.GetStats()

			Convey("Then the counters reflect the activity", func() {
				So(stats["started"], ShouldBeTrue)
				So(stats["analyses"].(int), ShouldBeGreaterThanOrEqualTo, 2)
				So(stats["failures"].(int), ShouldBeGreaterThanOrEqualTo, 1)
			})
		})

		Convey("When stopping twice", func() {
			svc.Stop()

			Convey("Then the second stop is safe", func() {
				So(svc.Stop, ShouldNotPanic)
			})
		})
	})
}
