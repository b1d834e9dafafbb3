package tavily

// Response types for embedders that want structure instead of raw
// JSON. Tool shells hand the agent the raw body untouched; these
// structs exist for direct Client use and for rendering.

// SearchResponse is the service's answer to one search call.
type SearchResponse struct {
	Query        string         `json:"query"`
	Answer       string         `json:"answer,omitempty"`
	Images       []SearchImage  `json:"images,omitempty"`
	Results      []SearchResult `json:"results"`
	ResponseTime float64        `json:"response_time"`
}

// SearchImage is one related image, optionally with a description.
type SearchImage struct {
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// SearchResult is one ranked search hit.
type SearchResult struct {
	Title      string  `json:"title"`
	URL        string  `json:"url"`
	Content    string  `json:"content"`
	Score      float64 `json:"score"`
	RawContent string  `json:"raw_content,omitempty"`
	Favicon    string  `json:"favicon,omitempty"`
}

// ExtractResponse lists the pages that could and could not be read.
type ExtractResponse struct {
	Results       []ExtractResult `json:"results"`
	FailedResults []FailedResult  `json:"failed_results,omitempty"`
	ResponseTime  float64         `json:"response_time"`
}

// ExtractResult is the content pulled from one URL.
type ExtractResult struct {
	URL        string   `json:"url"`
	RawContent string   `json:"raw_content"`
	Images     []string `json:"images,omitempty"`
	Favicon    string   `json:"favicon,omitempty"`
}

// FailedResult names a URL the service could not extract.
type FailedResult struct {
	URL   string `json:"url"`
	Error string `json:"error"`
}

// CrawlResponse lists the pages reached from the root URL.
type CrawlResponse struct {
	BaseURL      string        `json:"base_url"`
	Results      []CrawlResult `json:"results"`
	ResponseTime float64       `json:"response_time"`
}

// CrawlResult is one crawled page.
type CrawlResult struct {
	URL        string   `json:"url"`
	RawContent string   `json:"raw_content"`
	Images     []string `json:"images,omitempty"`
	Favicon    string   `json:"favicon,omitempty"`
}

// MapResponse lists the URLs discovered from the root URL.
type MapResponse struct {
	BaseURL      string   `json:"base_url"`
	Results      []string `json:"results"`
	ResponseTime float64  `json:"response_time"`
}
