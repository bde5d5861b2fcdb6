package profiler

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/kontza/mediawalker/logging"
)

func TestRecordEvent(t *testing.T) {
	Reset()

	testCases := []struct {
		event    string
		duration time.Duration
	}{
		{"classifier.Classify", 100 * time.Millisecond},
		{"classifier.Classify", 200 * time.Millisecond},
		{"importer.Walk", 150 * time.Millisecond},
		{"classifier.Classify", 50 * time.Millisecond},
		{"importer.Walk", 300 * time.Millisecond},
	}

	for _, tc := range testCases {
		RecordEvent(tc.event, tc.duration)
	}

	profilerSingleton.muProfiler.Lock()
	defer profilerSingleton.muProfiler.Unlock()

	if count := profilerSingleton.eventCounts["classifier.Classify"]; count != 3 {
		t.Errorf("Expected classifier.Classify count to be 3, got %d", count)
	}
	if total := profilerSingleton.eventDurations["classifier.Classify"]; total != 350*time.Millisecond {
		t.Errorf("Expected classifier.Classify total duration to be 350ms, got %v", total)
	}
	if min := profilerSingleton.eventDurationsMin["classifier.Classify"]; min != 50*time.Millisecond {
		t.Errorf("Expected classifier.Classify min duration to be 50ms, got %v", min)
	}
	if max := profilerSingleton.eventDurationsMax["classifier.Classify"]; max != 200*time.Millisecond {
		t.Errorf("Expected classifier.Classify max duration to be 200ms, got %v", max)
	}

	if count := profilerSingleton.eventCounts["importer.Walk"]; count != 2 {
		t.Errorf("Expected importer.Walk count to be 2, got %d", count)
	}
	if total := profilerSingleton.eventDurations["importer.Walk"]; total != 450*time.Millisecond {
		t.Errorf("Expected importer.Walk total duration to be 450ms, got %v", total)
	}
}

func TestDisplay(t *testing.T) {
	Reset()

	RecordEvent("b.event", 10*time.Millisecond)
	RecordEvent("a.event", 30*time.Millisecond)
	RecordEvent("a.event", 10*time.Millisecond)

	var stdout, stderr bytes.Buffer
	logger := logging.NewLogger(&stdout, &stderr)

	Display(logger)
	if stderr.Len() != 0 {
		t.Fatalf("Expected no output with profiling disabled, got %q", stderr.String())
	}

	logger.EnableProfiling()
	Display(logger)

	output := stderr.String()
	if !strings.Contains(output, "a.event: calls=2, min=10ms, avg=20ms, max=30ms, total=40ms") {
		t.Errorf("Unexpected profile output for a.event: %q", output)
	}
	if !strings.Contains(output, "b.event: calls=1") {
		t.Errorf("Unexpected profile output for b.event: %q", output)
	}
	if strings.Index(output, "a.event") > strings.Index(output, "b.event") {
		t.Errorf("Expected events sorted by name: %q", output)
	}
}
