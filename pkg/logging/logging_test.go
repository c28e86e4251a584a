package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/agentstation/boxoffice/pkg/logging"
)

func TestDefaultLogger(t *testing.T) {
	// Capture output through a replaced default logger
	buf := &bytes.Buffer{}
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	logger := zerolog.New(buf).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	logging.SetDefault(logger)

	logging.Debug().Msg("debug message")
	logging.Info().Msg("info message")
	logging.Warn().Msg("warning message")
	logging.Error().Msg("error message")

	output := buf.String()
	if !strings.Contains(output, "info message") {
		t.Errorf("Expected info message in output, got: %s", output)
	}
	if !strings.Contains(output, "debug message") {
		t.Errorf("Expected debug message in output, got: %s", output)
	}
}

func TestSetLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	logging.SetDefault(zerolog.New(buf).With().Timestamp().Logger())

	logging.SetLevel("warn")
	logging.Info().Msg("filtered out")
	logging.Warn().Msg("kept")

	output := buf.String()
	if strings.Contains(output, "filtered out") {
		t.Errorf("Expected info message to be filtered, got: %s", output)
	}
	if !strings.Contains(output, "kept") {
		t.Errorf("Expected warn message in output, got: %s", output)
	}

	// Unknown levels fall back to info
	logging.SetLevel("nonsense")
	if zerolog.GlobalLevel() != zerolog.InfoLevel {
		t.Errorf("Expected fallback to info level, got: %s", zerolog.GlobalLevel())
	}
}

func TestStructuredFields(t *testing.T) {
	buf := &bytes.Buffer{}
	logging.SetDefault(zerolog.New(buf).Level(zerolog.DebugLevel).With().Timestamp().Logger())
	logging.SetLevel("debug")

	logging.Debug().
		Str("path", "movies.txt").
		Int("skipped", 2).
		Msg("Skipped malformed lines")

	output := buf.String()
	for _, want := range []string{`"path":"movies.txt"`, `"skipped":2`, "Skipped malformed lines"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in output, got: %s", want, output)
		}
	}
}
