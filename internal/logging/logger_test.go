package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"marquee/internal/logging"
	"marquee/internal/services"
)

func TestNewConsoleFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("should be dropped")
	logger.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "should be dropped") {
		t.Fatalf("info record leaked through warn level: %q", out)
	}
	if !strings.Contains(out, "WARN kept") {
		t.Fatalf("missing warn record: %q", out)
	}
}

func TestConsoleComponentPrefixAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logging.NewComponentLogger(logger, "enrich").Info("row merged",
		logging.Int("row", 3),
		logging.String("title", "Dune: Part Two"),
	)

	out := buf.String()
	if !strings.Contains(out, "enrich: row merged") {
		t.Fatalf("component prefix missing: %q", out)
	}
	if !strings.Contains(out, "row=3") {
		t.Fatalf("int attr missing: %q", out)
	}
	if !strings.Contains(out, `title="Dune: Part Two"`) {
		t.Fatalf("quoted string attr missing: %q", out)
	}
}

func TestNewJSONEmitsLowercaseLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("hello", logging.String("k", "v"))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("unmarshal record: %v", err)
	}
	if record["level"] != "info" {
		t.Fatalf("unexpected level: %v", record["level"])
	}
	if record["msg"] != "hello" {
		t.Fatalf("unexpected msg: %v", record["msg"])
	}
	if _, ok := record["ts"]; !ok {
		t.Fatal("expected ts key")
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestWithContextAnnotatesRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	ctx := services.WithRequestID(context.Background(), "run-42")
	logging.WithContext(ctx, logger).Info("started")

	if out := buf.String(); !strings.Contains(out, "request_id=run-42") {
		t.Fatalf("request id missing: %q", out)
	}
}

func TestWithContextWithoutValuesReturnsSameLogger(t *testing.T) {
	logger := logging.NewNop()
	if got := logging.WithContext(context.Background(), logger); got != logger {
		t.Fatal("expected logger to pass through unchanged")
	}
}

func TestNopLoggerSilent(t *testing.T) {
	logger := logging.NewNop()
	logger.Error("discarded", logging.Error(nil))
}
