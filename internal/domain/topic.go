package domain

import "time"

// Frequency is how often a topic's newsletter is regenerated.
type Frequency string

const (
	FrequencyDaily    Frequency = "daily"
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
)

// Days resolves a frequency to its interval in days.
// Unknown values fall back to weekly.
func (f Frequency) Days() int {
	switch f {
	case FrequencyDaily:
		return 1
	case FrequencyWeekly:
		return 7
	case FrequencyBiweekly:
		return 14
	case FrequencyMonthly:
		return 30
	default:
		return 7
	}
}

// Valid reports whether f is one of the supported frequencies.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly:
		return true
	}
	return false
}

// Topic is a named subject tracked for recurring newsletter generation.
// LastRun is the raw stored timestamp; nil means the pipeline has never
// completed for this topic. It is kept as text so a corrupt value can be
// detected (and treated as due) instead of failing a row scan.
type Topic struct {
	ID        int64     `db:"id"`
	Name      string    `db:"topic_name"`
	Frequency Frequency `db:"frequency"`
	LastRun   *string   `db:"last_run"`
	CreatedAt time.Time `db:"created_at"`
}

// WritingSample is a raw text sample of the topic owner's voice.
// Read-only input to style extraction.
type WritingSample struct {
	ID        int64     `db:"id"`
	TopicID   int64     `db:"topic_id"`
	Text      string    `db:"text"`
	CreatedAt time.Time `db:"created_at"`
}
