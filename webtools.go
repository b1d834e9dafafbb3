// Package webtools provides a high-level API surface for embedding the
// Tavily-backed web tools in an agent application.
//
// This is the primary entry point for external consumers who want the
// tool layer without importing CLI dependencies.
package webtools

import (
	"github.com/initializ/webtools/config"
	"github.com/initializ/webtools/tavily"
	"github.com/initializ/webtools/tools"
)

// ─── Setup API ────────────────────────────────────────────────────────

// Setup contains the inputs for building a tool registry.
type Setup struct {
	Client tavily.ClientConfig

	// Defaults fixes construction-time parameters per tool. Fields the
	// agent may not override (crawl fences, usage accounting) can only
	// be set here.
	Defaults tools.Defaults
}

// New builds a Tavily client and a registry with all four web tools
// registered against it.
func New(s Setup) (*tools.Registry, error) {
	client, err := tavily.NewClient(s.Client)
	if err != nil {
		return nil, err
	}

	reg := tools.NewRegistry()
	if err := tools.RegisterAll(reg, client, s.Defaults); err != nil {
		return nil, err
	}
	return reg, nil
}

// ─── Config API ───────────────────────────────────────────────────────

// FromConfig builds a registry from a webtools.yaml file. An empty path
// reads config.DefaultPath and tolerates the file being absent, so a
// bare TAVILY_API_KEY environment is enough to get going.
func FromConfig(path string) (*tools.Registry, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return New(Setup{Client: cfg.ClientConfig(), Defaults: cfg.Defaults()})
}
