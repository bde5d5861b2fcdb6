package profiler

import (
	"sort"
	"sync"
	"time"

	"github.com/kontza/mediawalker/logging"
)

type profiler struct {
	muProfiler sync.Mutex

	events            map[string]bool
	eventDurations    map[string]time.Duration
	eventDurationsMin map[string]time.Duration
	eventDurationsMax map[string]time.Duration

	eventCounts map[string]uint64
}

var profilerSingleton *profiler

func init() {
	Reset()
}

func Reset() {
	p := &profiler{
		events:            make(map[string]bool),
		eventDurations:    make(map[string]time.Duration),
		eventDurationsMin: make(map[string]time.Duration),
		eventDurationsMax: make(map[string]time.Duration),
		eventCounts:       make(map[string]uint64),
	}
	if profilerSingleton == nil {
		profilerSingleton = p
		return
	}
	profilerSingleton.muProfiler.Lock()
	defer profilerSingleton.muProfiler.Unlock()
	profilerSingleton.events = p.events
	profilerSingleton.eventDurations = p.eventDurations
	profilerSingleton.eventDurationsMin = p.eventDurationsMin
	profilerSingleton.eventDurationsMax = p.eventDurationsMax
	profilerSingleton.eventCounts = p.eventCounts
}

func RecordEvent(event string, duration time.Duration) {
	profilerSingleton.muProfiler.Lock()
	defer profilerSingleton.muProfiler.Unlock()

	if _, exists := profilerSingleton.events[event]; !exists {
		profilerSingleton.events[event] = true
		profilerSingleton.eventDurations[event] = 0
		profilerSingleton.eventDurationsMin[event] = duration
		profilerSingleton.eventDurationsMax[event] = duration
		profilerSingleton.eventCounts[event] = 0
	}

	profilerSingleton.eventDurations[event] += duration
	if duration < profilerSingleton.eventDurationsMin[event] {
		profilerSingleton.eventDurationsMin[event] = duration
	}
	if duration > profilerSingleton.eventDurationsMax[event] {
		profilerSingleton.eventDurationsMax[event] = duration
	}
	profilerSingleton.eventCounts[event] += 1
}

// Display reports every recorded event through the logger's profile channel,
// sorted by event name.
func Display(logger *logging.Logger) {
	profilerSingleton.muProfiler.Lock()
	defer profilerSingleton.muProfiler.Unlock()

	names := make([]string, 0, len(profilerSingleton.events))
	for event := range profilerSingleton.events {
		names = append(names, event)
	}
	sort.Strings(names)

	for _, event := range names {
		count := profilerSingleton.eventCounts[event]
		duration := profilerSingleton.eventDurations[event]
		durationMin := profilerSingleton.eventDurationsMin[event]
		durationMax := profilerSingleton.eventDurationsMax[event]
		durationAvg := time.Duration(uint64(duration) / count)
		logger.Profile("%s: calls=%d, min=%s, avg=%s, max=%s, total=%s", event, count, durationMin, durationAvg, durationMax, duration)
	}
}
