package testgaze

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/okian/gazelens/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0600
)

// SetupLogging configures logging to both console and file.
// If logFile is empty, a timestamped filename is generated.
func SetupLogging(logFile string) error {
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if logFile == "" {
		timestamp := time.Now().Format("20060102_150405")
		logFile = "gaze_test_" + timestamp + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, file)
	log.SetOutput(multiWriter)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return nil
}

// ShowHelp prints usage information for the gaze load tool.
func ShowHelp() {
	os.Stdout.WriteString(`Gazelens Trace Test Tool
========================

Generates synthetic gaze traces and submits them to a running gazelens
service, verifying the score and report invariants.

Usage:
  go run cmd/gaze-gen/main.go [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:9080")
  -traces int
        Number of traces to generate and submit (default 1000)
  -workers int
        Number of concurrent workers (default CPU cores * 2)
  -timeout duration
        HTTP request timeout (default 30s)
  -corrupt float
        Fraction of traces submitted without a y column (default 0.1)
  -log string
        Log file for test output (default: gaze_test_TIMESTAMP.log)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Test with default settings
  go run cmd/gaze-gen/main.go

  # Heavier run against a local instance
  go run cmd/gaze-gen/main.go -traces 20000 -workers 16
`)
}
