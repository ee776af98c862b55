package research

// arxivFeed is the Atom envelope returned by the arXiv query API.
type arxivFeed struct {
	Entries []arxivEntry `xml:"entry"`
}

type arxivEntry struct {
	ID      string `xml:"id"`
	Title   string `xml:"title"`
	Summary string `xml:"summary"`
}

// scholarResponse is the Semantic Scholar paper search envelope.
type scholarResponse struct {
	Total int            `json:"total"`
	Data  []scholarPaper `json:"data"`
}

type scholarPaper struct {
	PaperID  string `json:"paperId"`
	Title    string `json:"title"`
	Abstract string `json:"abstract"`
}
