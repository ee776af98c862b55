package news

// newsAPIResponse is the NewsAPI /v2/everything envelope.
type newsAPIResponse struct {
	Status   string           `json:"status"`
	Articles []newsAPIArticle `json:"articles"`
}

type newsAPIArticle struct {
	Source      newsAPISource `json:"source"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	URL         string        `json:"url"`
}

type newsAPISource struct {
	Name string `json:"name"`
}
