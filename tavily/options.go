package tavily

// Construction-time options for each tool kind. Zero values mean
// unset: the field falls through to the per-call input, the field
// table's default, or the service's own default. Booleans are
// pointers so an explicit false survives resolution. The yaml tags
// let application configuration files use the wire names directly.
//
// The primary argument of each kind (query, urls, url) is always
// supplied per call and has no construction-time counterpart.

// SearchOptions carries developer defaults for the search kind.
type SearchOptions struct {
	SearchDepth              string   `yaml:"search_depth"`
	Topic                    string   `yaml:"topic"`
	MaxResults               int      `yaml:"max_results"`
	TimeRange                string   `yaml:"time_range"`
	Days                     int      `yaml:"days"`
	IncludeAnswer            *bool    `yaml:"include_answer"`
	IncludeRawContent        *bool    `yaml:"include_raw_content"`
	IncludeImages            *bool    `yaml:"include_images"`
	IncludeImageDescriptions *bool    `yaml:"include_image_descriptions"`
	IncludeFavicon           *bool    `yaml:"include_favicon"`
	IncludeDomains           []string `yaml:"include_domains"`
	ExcludeDomains           []string `yaml:"exclude_domains"`
	Country                  string   `yaml:"country"`
	AutoParameters           *bool    `yaml:"auto_parameters"`
	ChunksPerSource          int      `yaml:"chunks_per_source"`
	IncludeUsage             *bool    `yaml:"include_usage"`
	Timeout                  int      `yaml:"timeout"`
}

// Params converts the set fields into a Params layer. Nil receivers
// yield an empty layer.
func (o *SearchOptions) Params() Params {
	p := Params{}
	if o == nil {
		return p
	}
	setString(p, "searchDepth", o.SearchDepth)
	setString(p, "topic", o.Topic)
	setInt(p, "maxResults", o.MaxResults)
	setString(p, "timeRange", o.TimeRange)
	setInt(p, "days", o.Days)
	setBool(p, "includeAnswer", o.IncludeAnswer)
	setBool(p, "includeRawContent", o.IncludeRawContent)
	setBool(p, "includeImages", o.IncludeImages)
	setBool(p, "includeImageDescriptions", o.IncludeImageDescriptions)
	setBool(p, "includeFavicon", o.IncludeFavicon)
	setList(p, "includeDomains", o.IncludeDomains)
	setList(p, "excludeDomains", o.ExcludeDomains)
	setString(p, "country", o.Country)
	setBool(p, "autoParameters", o.AutoParameters)
	setInt(p, "chunksPerSource", o.ChunksPerSource)
	setBool(p, "includeUsage", o.IncludeUsage)
	setInt(p, "timeout", o.Timeout)
	return p
}

// ExtractOptions carries developer defaults for the extract kind.
type ExtractOptions struct {
	ExtractDepth   string `yaml:"extract_depth"`
	IncludeImages  *bool  `yaml:"include_images"`
	IncludeFavicon *bool  `yaml:"include_favicon"`
	Format         string `yaml:"format"`
	IncludeUsage   *bool  `yaml:"include_usage"`
	Timeout        int    `yaml:"timeout"`
}

func (o *ExtractOptions) Params() Params {
	p := Params{}
	if o == nil {
		return p
	}
	setString(p, "extractDepth", o.ExtractDepth)
	setBool(p, "includeImages", o.IncludeImages)
	setBool(p, "includeFavicon", o.IncludeFavicon)
	setString(p, "format", o.Format)
	setBool(p, "includeUsage", o.IncludeUsage)
	setInt(p, "timeout", o.Timeout)
	return p
}

// CrawlOptions carries developer defaults for the crawl kind. The
// path and domain fences (SelectPaths, SelectDomains, ExcludePaths,
// ExcludeDomains, AllowExternal) exist only here: agents cannot widen
// a crawl boundary the embedding application imposed.
type CrawlOptions struct {
	MaxDepth       int      `yaml:"max_depth"`
	MaxBreadth     int      `yaml:"max_breadth"`
	Limit          int      `yaml:"limit"`
	Instructions   string   `yaml:"instructions"`
	SelectPaths    []string `yaml:"select_paths"`
	SelectDomains  []string `yaml:"select_domains"`
	ExcludePaths   []string `yaml:"exclude_paths"`
	ExcludeDomains []string `yaml:"exclude_domains"`
	AllowExternal  *bool    `yaml:"allow_external"`
	Categories     []string `yaml:"categories"`
	ExtractDepth   string   `yaml:"extract_depth"`
	Format         string   `yaml:"format"`
	IncludeImages  *bool    `yaml:"include_images"`
	IncludeFavicon *bool    `yaml:"include_favicon"`
	IncludeUsage   *bool    `yaml:"include_usage"`
	Timeout        int      `yaml:"timeout"`
}

func (o *CrawlOptions) Params() Params {
	p := Params{}
	if o == nil {
		return p
	}
	o.coreParams(p)
	setString(p, "extractDepth", o.ExtractDepth)
	setString(p, "format", o.Format)
	setBool(p, "includeImages", o.IncludeImages)
	setBool(p, "includeFavicon", o.IncludeFavicon)
	return p
}

func (o *CrawlOptions) coreParams(p Params) {
	setInt(p, "maxDepth", o.MaxDepth)
	setInt(p, "maxBreadth", o.MaxBreadth)
	setInt(p, "limit", o.Limit)
	setString(p, "instructions", o.Instructions)
	setList(p, "selectPaths", o.SelectPaths)
	setList(p, "selectDomains", o.SelectDomains)
	setList(p, "excludePaths", o.ExcludePaths)
	setList(p, "excludeDomains", o.ExcludeDomains)
	setBool(p, "allowExternal", o.AllowExternal)
	setList(p, "categories", o.Categories)
	setBool(p, "includeUsage", o.IncludeUsage)
	setInt(p, "timeout", o.Timeout)
}

// MapOptions carries developer defaults for the map kind: the crawl
// surface without the extraction fields.
type MapOptions struct {
	MaxDepth       int      `yaml:"max_depth"`
	MaxBreadth     int      `yaml:"max_breadth"`
	Limit          int      `yaml:"limit"`
	Instructions   string   `yaml:"instructions"`
	SelectPaths    []string `yaml:"select_paths"`
	SelectDomains  []string `yaml:"select_domains"`
	ExcludePaths   []string `yaml:"exclude_paths"`
	ExcludeDomains []string `yaml:"exclude_domains"`
	AllowExternal  *bool    `yaml:"allow_external"`
	Categories     []string `yaml:"categories"`
	IncludeUsage   *bool    `yaml:"include_usage"`
	Timeout        int      `yaml:"timeout"`
}

func (o *MapOptions) Params() Params {
	p := Params{}
	if o == nil {
		return p
	}
	c := CrawlOptions{
		MaxDepth:       o.MaxDepth,
		MaxBreadth:     o.MaxBreadth,
		Limit:          o.Limit,
		Instructions:   o.Instructions,
		SelectPaths:    o.SelectPaths,
		SelectDomains:  o.SelectDomains,
		ExcludePaths:   o.ExcludePaths,
		ExcludeDomains: o.ExcludeDomains,
		AllowExternal:  o.AllowExternal,
		Categories:     o.Categories,
		IncludeUsage:   o.IncludeUsage,
		Timeout:        o.Timeout,
	}
	c.coreParams(p)
	return p
}

func setString(p Params, name, v string) {
	if v != "" {
		p[name] = v
	}
}

func setInt(p Params, name string, v int) {
	if v != 0 {
		p[name] = v
	}
}

func setBool(p Params, name string, v *bool) {
	if v != nil {
		p[name] = *v
	}
}

func setList(p Params, name string, v []string) {
	if len(v) > 0 {
		p[name] = v
	}
}
