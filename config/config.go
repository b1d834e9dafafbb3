// Package config loads webtools.yaml, where an embedding application
// or the CLI fixes the developer defaults for each tool kind. The
// credential's environment fallback lives here too; the library
// underneath never reads the environment itself.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/initializ/webtools/tavily"
	"github.com/initializ/webtools/tools"
)

// DefaultPath is where Load looks when no path is given.
const DefaultPath = "webtools.yaml"

// File is the top-level webtools.yaml configuration.
type File struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
	Proxy   string `yaml:"proxy"`

	Search  tavily.SearchOptions  `yaml:"search"`
	Extract tavily.ExtractOptions `yaml:"extract"`
	Crawl   tavily.CrawlOptions   `yaml:"crawl"`
	Map     tavily.MapOptions     `yaml:"map"`
}

// Load reads the configuration at path. An empty path means
// DefaultPath, and a missing file at the default location is not an
// error: the zero configuration works as long as the credential comes
// from the environment. After parsing, an empty api_key falls back to
// the TAVILY_API_KEY environment variable; an explicit file value
// wins over the environment.
func Load(path string) (*File, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	var cfg File
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		parsed, perr := Parse(data)
		if perr != nil {
			return nil, fmt.Errorf("%s: %w", path, perr)
		}
		cfg = *parsed
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// No file is fine; run on the environment and hardcoded defaults.
	default:
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv(tavily.EnvAPIKey)
	}
	return &cfg, nil
}

// Parse parses raw YAML bytes into a File. Unknown keys are an error
// so a typo never silently becomes a no-op.
func Parse(data []byte) (*File, error) {
	var cfg File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// ClientConfig renders the file into the API client configuration.
func (f *File) ClientConfig() tavily.ClientConfig {
	return tavily.ClientConfig{
		APIKey:   f.APIKey,
		BaseURL:  f.BaseURL,
		ProxyURL: f.Proxy,
	}
}

// Defaults renders the per-kind sections into tool defaults.
func (f *File) Defaults() tools.Defaults {
	return tools.Defaults{
		Search:  &f.Search,
		Extract: &f.Extract,
		Crawl:   &f.Crawl,
		Map:     &f.Map,
	}
}
