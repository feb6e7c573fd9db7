package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/YuminosukeSato/goneuron/pkg/errors"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("invalid JSON line %q: %v", line, err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestZerologLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(&buf, LevelInfo)

	logger.Debug("hidden")
	logger.Info("training finished", SolverKey, "BGD", EpochsKey, 500, LossKey, 0.42)
	logger.Warn("loss is not finite", EpochKey, 3)

	entries := decodeLines(t, &buf)
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d: %s", len(entries), buf.String())
	}

	first := entries[0]
	if first["message"] != "training finished" {
		t.Errorf("message = %v", first["message"])
	}
	if first["level"] != "info" {
		t.Errorf("level = %v", first["level"])
	}
	if first[SolverKey] != "BGD" || first[EpochsKey] != 500.0 || first[LossKey] != 0.42 {
		t.Errorf("unexpected fields: %v", first)
	}
	if entries[1]["level"] != "warn" {
		t.Errorf("level = %v", entries[1]["level"])
	}
}

func TestZerologLoggerEnabled(t *testing.T) {
	logger := NewZerologLogger(&bytes.Buffer{}, LevelWarn)
	ctx := context.Background()

	if logger.Enabled(ctx, LevelInfo) {
		t.Error("Info should be disabled at Warn level")
	}
	if !logger.Enabled(ctx, LevelError) {
		t.Error("Error should be enabled at Warn level")
	}
}

func TestZerologLoggerErrorStacktrace(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(&buf, LevelDebug)

	err := errors.NewDimensionError("LinearNeuron.Predict", 2, 3, 0)
	logger.Error("prediction failed", err, OperationKey, OperationPredict)

	entries := decodeLines(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	entry := entries[0]
	if !strings.Contains(fmt.Sprint(entry[ErrorKey]), "dimension mismatch") {
		t.Errorf("error field = %v", entry[ErrorKey])
	}
	if entry[StacktraceKey] == nil || entry[StacktraceKey] == "" {
		t.Error("Expected stack trace field")
	}
	if entry[OperationKey] != OperationPredict {
		t.Errorf("operation = %v", entry[OperationKey])
	}
}

func TestZerologLoggerWith(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(&buf, LevelInfo).With(ModelNameKey, "LinearNeuron", ComponentKey, "neuron")

	logger.Info("fit", WeightsKey, []float64{-1, 0.5}, LossKey, math.NaN())

	entries := decodeLines(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	if entries[0][ModelNameKey] != "LinearNeuron" || entries[0][ComponentKey] != "neuron" {
		t.Errorf("context fields missing: %v", entries[0])
	}
	weights, ok := entries[0][WeightsKey].([]interface{})
	if !ok || len(weights) != 2 {
		t.Errorf("weights = %v", entries[0][WeightsKey])
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"warn", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"verbose", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSetLogger(t *testing.T) {
	previous := GetLogger()
	defer SetLogger(previous)

	testLogger, _ := NewTestLogger(LevelDebug)
	SetLogger(testLogger)

	GetLogger().Info("routed")
	if !testLogger.ContainsMessage("routed") {
		t.Error("Expected message through the global logger")
	}
}

func TestTestLogger(t *testing.T) {
	testLogger, buffer := NewTestLogger(LevelInfo)

	testLogger.Debug("debug message")
	testLogger.With(ModelNameKey, "LinearNeuron").Info("info message", EpochKey, 1, LossKey, math.Inf(1))
	testLogger.Error("error message", fmt.Errorf("boom"))

	if buffer.String() == "" {
		t.Fatal("Expected log output, got empty string")
	}
	if testLogger.ContainsMessage("debug message") {
		t.Error("Debug message should not appear when level is Info")
	}
	if !testLogger.ContainsField(ModelNameKey, "LinearNeuron") {
		t.Error("Expected context field")
	}
	if !testLogger.ContainsField(LossKey, "+Inf") {
		t.Error("Expected non-finite loss rendered as string")
	}
	if !testLogger.ContainsField(ErrorKey, "boom") {
		t.Error("Expected leading error under the error key")
	}

	entries, err := testLogger.GetLogEntries()
	if err != nil {
		t.Fatalf("Failed to parse log entries: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("Expected 2 entries, got %d", len(entries))
	}

	testLogger.Clear()
	if buffer.Len() != 0 {
		t.Error("Clear should empty the buffer")
	}
}

func BenchmarkZerologLogger(b *testing.B) {
	logger := NewZerologLogger(&bytes.Buffer{}, LevelInfo)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("epoch", EpochKey, i, LossKey, 0.5)
	}
}
