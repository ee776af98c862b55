package domain

import "time"

// RunStats summarizes one pipeline run for a topic.
type RunStats struct {
	TopicID      int64
	TopicName    string
	ItemsByKind  map[SourceKind]int
	FactSheetID  int64
	NewsletterID int64
	Duration     time.Duration
}
