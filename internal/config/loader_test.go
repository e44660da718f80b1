package config_test

import (
	"context"
	"os"
	"testing"

	"github.com/okian/gazelens/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func clearConfigEnvVars() {
	_ = os.Unsetenv("GAZE_CONFIG")
	_ = os.Unsetenv("GAZE_ADDR")
	_ = os.Unsetenv("GAZE_LOG_LEVEL")
	_ = os.Unsetenv("GAZE_MAX_BODY_BYTES")
	_ = os.Unsetenv("GAZE_MAX_TRACE_ROWS")
}

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
				convey.So(cfg.MaxBodyBytes, convey.ShouldEqual, int64(4<<20))
				convey.So(cfg.MaxTraceRows, convey.ShouldEqual, 250_000)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("GAZE_ADDR", ":8080")
			_ = os.Setenv("GAZE_LOG_LEVEL", "debug")
			_ = os.Setenv("GAZE_MAX_BODY_BYTES", "1048576")
			_ = os.Setenv("GAZE_MAX_TRACE_ROWS", "5000")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.MaxBodyBytes, convey.ShouldEqual, int64(1048576))
				convey.So(cfg.MaxTraceRows, convey.ShouldEqual, 5000)
			})
		})

		convey.Convey("When loading config from a YAML file", func() {
			clearConfigEnvVars()

			f, err := os.CreateTemp(t.TempDir(), "gaze-*.yaml")
			convey.So(err, convey.ShouldBeNil)
			_, err = f.WriteString("addr: \":7070\"\nlog_level: warn\nmax_trace_rows: 100\n")
			convey.So(err, convey.ShouldBeNil)
			convey.So(f.Close(), convey.ShouldBeNil)

			_ = os.Setenv("GAZE_CONFIG", f.Name())
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then file values override defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "warn")
				convey.So(cfg.MaxTraceRows, convey.ShouldEqual, 100)
				// Untouched fields keep their defaults
				convey.So(cfg.MaxBodyBytes, convey.ShouldEqual, int64(4<<20))
			})
		})

		convey.Convey("When env invalidates a limit", func() {
			clearConfigEnvVars()
			_ = os.Setenv("GAZE_MAX_TRACE_ROWS", "0")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then validation rejects it", func() {
				convey.So(err, convey.ShouldNotBeNil)
			})
		})
	})
}
