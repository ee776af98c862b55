package scheduler

import (
	"fmt"
	"time"

	"github.com/Atyab124/Automated-Newsletter/internal/domain"
)

// Accepted last_run layouts. The orchestrator writes RFC3339; the second
// layout tolerates rows imported from the previous system.
var lastRunLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// IsDue reports whether a topic's refresh interval has elapsed. The check
// fails open: a topic that has never run, or whose stored timestamp cannot
// be parsed, is always due.
func IsDue(topic domain.Topic, now time.Time) bool {
	if topic.LastRun == nil || *topic.LastRun == "" {
		return true
	}

	lastRun, err := parseLastRun(*topic.LastRun)
	if err != nil {
		return true
	}

	nextRun := lastRun.AddDate(0, 0, topic.Frequency.Days())
	return !now.Before(nextRun)
}

func parseLastRun(raw string) (time.Time, error) {
	for _, layout := range lastRunLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparsable last_run %q", raw)
}
