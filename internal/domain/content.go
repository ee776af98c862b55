package domain

import "time"

// SourceKind identifies one of the four content domains gathered into a
// fact sheet. The order of the constants is the gather and render order.
type SourceKind string

const (
	SourceResearch SourceKind = "research_papers"
	SourceNews     SourceKind = "news_headlines"
	SourceLinkedIn SourceKind = "linkedin_posts"
	SourceWeb      SourceKind = "web_articles"
)

// SourceKinds lists all content domains in gather order.
func SourceKinds() []SourceKind {
	return []SourceKind{SourceResearch, SourceNews, SourceLinkedIn, SourceWeb}
}

// ContentItem is a single gathered result from any source.
type ContentItem struct {
	Source   string `json:"source"`
	Headline string `json:"headline"`
	Abstract string `json:"abstract,omitempty"`
	URL      string `json:"url"`
}

// Valid reports whether the item carries both a headline and a url.
// Items failing this check are dropped before fact sheet assembly.
func (c ContentItem) Valid() bool {
	return c.Headline != "" && c.URL != ""
}

// FactSheetPayload is the structured half of a fact sheet.
type FactSheetPayload struct {
	Topic          string        `json:"topic"`
	CreatedAt      time.Time     `json:"created_at"`
	ResearchPapers []ContentItem `json:"research_papers"`
	NewsHeadlines  []ContentItem `json:"news_headlines"`
	LinkedInPosts  []ContentItem `json:"linkedin_posts"`
	WebArticles    []ContentItem `json:"web_articles"`
}

// Items returns the list for the given kind.
func (p *FactSheetPayload) Items(kind SourceKind) []ContentItem {
	switch kind {
	case SourceResearch:
		return p.ResearchPapers
	case SourceNews:
		return p.NewsHeadlines
	case SourceLinkedIn:
		return p.LinkedInPosts
	case SourceWeb:
		return p.WebArticles
	}
	return nil
}

// SetItems assigns the list for the given kind.
func (p *FactSheetPayload) SetItems(kind SourceKind, items []ContentItem) {
	switch kind {
	case SourceResearch:
		p.ResearchPapers = items
	case SourceNews:
		p.NewsHeadlines = items
	case SourceLinkedIn:
		p.LinkedInPosts = items
	case SourceWeb:
		p.WebArticles = items
	}
}

// FactSheet is a persisted snapshot of gathered content for one topic.
type FactSheet struct {
	ID        int64     `db:"id"`
	TopicID   int64     `db:"topic_id"`
	Markdown  string    `db:"markdown"`
	JSONData  string    `db:"json_data"`
	CreatedAt time.Time `db:"created_at"`
}

// Newsletter is the final generated artifact for one pipeline run.
type Newsletter struct {
	ID        int64     `db:"id"`
	TopicID   int64     `db:"topic_id"`
	Markdown  string    `db:"markdown"`
	CreatedAt time.Time `db:"created_at"`
}
