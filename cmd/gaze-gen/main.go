package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/okian/gazelens/internal/testgaze"
)

// Default configuration constants.
const (
	defaultNumTraces    = 1000
	defaultWorkers      = 2 // multiplier for runtime.NumCPU()
	defaultTimeout      = 30 * time.Second
	defaultCorruptRatio = 0.1
	defaultTestTimeout  = 10 * time.Minute
)

func main() {
	var (
		baseURL      = flag.String("url", "http://localhost:9080", "Base URL of the service")
		numTraces    = flag.Int("traces", defaultNumTraces, "Number of traces to generate and submit")
		workers      = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Number of concurrent workers")
		timeout      = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		corruptRatio = flag.Float64("corrupt", defaultCorruptRatio, "Fraction of traces submitted without a y column")
		logFile      = flag.String("log", "", "Log file for test output (default: gaze_test_TIMESTAMP.log)")
		verbose      = flag.Bool("verbose", false, "Enable verbose logging")
		help         = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		testgaze.ShowHelp()
		return
	}

	if err := testgaze.SetupLogging(*logFile); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTestTimeout)
	defer cancel()

	config := &testgaze.Config{
		BaseURL:      *baseURL,
		NumTraces:    *numTraces,
		Workers:      *workers,
		Timeout:      *timeout,
		CorruptRatio: *corruptRatio,
		LogFile:      *logFile,
		Verbose:      *verbose,
	}

	if err := testgaze.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Test failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
