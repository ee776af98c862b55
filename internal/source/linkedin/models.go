package linkedin

// postSearchResponse is the Rest.li collection envelope for post search.
type postSearchResponse struct {
	Elements []post `json:"elements"`
}

type post struct {
	ID         string `json:"id"`
	Commentary string `json:"commentary"`
}
