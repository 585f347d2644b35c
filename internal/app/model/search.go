package model

// SearchParams are the already-validated inputs to an establishment search.
// BusinessType and Grade use "all" to disable the corresponding filter.
type SearchParams struct {
	Query        string
	BusinessType string // "all", "restaurant", "hotel"
	Grade        string // "all", "A", "B", "C"
	City         string
	Limit        int
	Offset       int
}

// SearchResult is the paginated search response. Total counts every match
// after filtering, independent of the requested page.
type SearchResult struct {
	Establishments []EstablishmentWithDetails `json:"establishments"`
	Total          int                        `json:"total"`
}

// Suggestion is a lightweight typeahead entry.
type Suggestion struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Address string `json:"address"`
}
