package omdb

// responseFalse is the catalog's string-encoded success indicator
const responseFalse = "False"

// SearchResponse is the body of a search (?s=) request
type SearchResponse struct {
	Search       []SearchItem `json:"Search"`
	TotalResults string       `json:"totalResults,omitempty"`
	Response     string       `json:"Response"` // "True" or "False"
	Error        string       `json:"Error,omitempty"`
}

// SearchItem is one entry of a search response
type SearchItem struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	IMDbID string `json:"imdbID"`
	Type   string `json:"Type,omitempty"`
	Poster string `json:"Poster"`
}

// DetailResponse is the body of a detail (?i=) request
type DetailResponse struct {
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Rated      string `json:"Rated,omitempty"`
	Released   string `json:"Released"`
	Runtime    string `json:"Runtime"`
	Genre      string `json:"Genre"`
	Director   string `json:"Director"`
	Writer     string `json:"Writer,omitempty"`
	Actors     string `json:"Actors"`
	Plot       string `json:"Plot"`
	Language   string `json:"Language,omitempty"`
	Country    string `json:"Country,omitempty"`
	Poster     string `json:"Poster"`
	IMDbRating string `json:"imdbRating"`
	IMDbVotes  string `json:"imdbVotes,omitempty"`
	IMDbID     string `json:"imdbID"`
	Type       string `json:"Type,omitempty"`
	Response   string `json:"Response"`
	Error      string `json:"Error,omitempty"`
}
