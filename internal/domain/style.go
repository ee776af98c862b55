package domain

// StyleProfile describes the writing voice derived from a topic's samples.
// It is ephemeral: consumed by the composer, never persisted.
type StyleProfile struct {
	Tone          string   `json:"tone"`
	Structure     string   `json:"structure"`
	Voice         string   `json:"voice"`
	CommonPhrases []string `json:"common_phrases"`
}

// DefaultStyleProfile is the profile used when a topic has no writing
// samples or style extraction degrades.
func DefaultStyleProfile() StyleProfile {
	return StyleProfile{
		Tone:          "professional",
		Structure:     "clear paragraphs with headings",
		Voice:         "third person, informative",
		CommonPhrases: []string{},
	}
}
