package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/initializ/webtools/tavily"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "webtools.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_FullFile(t *testing.T) {
	path := writeConfig(t, `
api_key: tvly-file
base_url: https://gateway.internal
proxy: http://proxy.internal:3128
search:
  search_depth: advanced
  max_results: 3
  exclude_domains: [pinterest.com]
crawl:
  max_depth: 2
  select_domains: ["^docs\\."]
  allow_external: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "tvly-file", cfg.APIKey)
	assert.Equal(t, "https://gateway.internal", cfg.BaseURL)
	assert.Equal(t, "http://proxy.internal:3128", cfg.Proxy)
	assert.Equal(t, "advanced", cfg.Search.SearchDepth)
	assert.Equal(t, 3, cfg.Search.MaxResults)
	assert.Equal(t, []string{"pinterest.com"}, cfg.Search.ExcludeDomains)
	assert.Equal(t, 2, cfg.Crawl.MaxDepth)
	require.NotNil(t, cfg.Crawl.AllowExternal)
	assert.False(t, *cfg.Crawl.AllowExternal)
}

func TestLoad_EnvFallback(t *testing.T) {
	t.Setenv(tavily.EnvAPIKey, "tvly-env")

	cfg, err := Load(writeConfig(t, `base_url: https://gateway.internal`))
	require.NoError(t, err)
	assert.Equal(t, "tvly-env", cfg.APIKey)
}

func TestLoad_ExplicitKeyBeatsEnv(t *testing.T) {
	t.Setenv(tavily.EnvAPIKey, "tvly-env")

	cfg, err := Load(writeConfig(t, `api_key: tvly-file`))
	require.NoError(t, err)
	assert.Equal(t, "tvly-file", cfg.APIKey)
}

func TestLoad_MissingDefaultFileTolerated(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(tavily.EnvAPIKey, "tvly-env")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "tvly-env", cfg.APIKey)
	assert.Zero(t, cfg.Search)
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestParse_UnknownKeyRejected(t *testing.T) {
	_, err := Parse([]byte("api_keyy: oops\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api_keyy")

	_, err = Parse([]byte("search:\n  search_deepness: advanced\n"))
	require.Error(t, err)
}

func TestParse_EmptyFile(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, cfg.APIKey)
}

func TestParse_BooleanTriState(t *testing.T) {
	cfg, err := Parse([]byte("search:\n  include_answer: false\n"))
	require.NoError(t, err)

	require.NotNil(t, cfg.Search.IncludeAnswer)
	assert.False(t, *cfg.Search.IncludeAnswer)
	// Untouched booleans stay unset, not false.
	assert.Nil(t, cfg.Search.IncludeImages)
}

func TestFile_Wiring(t *testing.T) {
	cfg, err := Parse([]byte("api_key: k\nproxy: http://proxy.internal:3128\nsearch:\n  max_results: 7\n"))
	require.NoError(t, err)

	cc := cfg.ClientConfig()
	assert.Equal(t, "k", cc.APIKey)
	assert.Equal(t, "http://proxy.internal:3128", cc.ProxyURL)

	d := cfg.Defaults()
	require.NotNil(t, d.Search)
	assert.Equal(t, 7, d.Search.MaxResults)
}
