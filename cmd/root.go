// Package cmd implements the webtools CLI commands.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/initializ/webtools/config"
	"github.com/initializ/webtools/internal/tui"
	"github.com/initializ/webtools/tavily"
	"github.com/initializ/webtools/tools"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	cfgFile       string
	apiKey        string
	baseURL       string
	themeOverride string
	jsonOut       bool
	verbose       bool

	appVersion = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "webtools",
	Short: "Search, extract, crawl, and map the web from the command line",
	Long: "webtools runs the Tavily-backed agent tools directly: every invocation\n" +
		"assembles the same JSON a tool-calling agent would send and goes through\n" +
		"schema validation, so the CLI doubles as a test bench for tool configs.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (default webtools.yaml)")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "Tavily API key (overrides config file and TAVILY_API_KEY)")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "API base URL override")
	rootCmd.PersistentFlags().StringVar(&themeOverride, "theme", "", "color theme: dark or light")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "print the raw JSON response")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(crawlCmd)
	rootCmd.AddCommand(mapCmd)
	rootCmd.AddCommand(toolCmd)
}

// buildRegistry loads configuration, applies flag overrides, and
// returns a registry with all four web tools registered.
func buildRegistry() (*tools.Registry, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if apiKey != "" {
		cfg.APIKey = apiKey
	}
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	cc := cfg.ClientConfig()
	if verbose {
		cc.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	client, err := tavily.NewClient(cc)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	reg := tools.NewRegistry()
	if err := tools.RegisterAll(reg, client, cfg.Defaults()); err != nil {
		return nil, fmt.Errorf("registering tools: %w", err)
	}
	return reg, nil
}

// executeTool runs one tool call through the registry, exactly as an
// agent invocation would: the call map becomes the JSON argument
// payload and passes through schema validation before any request.
func executeTool(ctx context.Context, name string, call map[string]any, label string) (string, error) {
	reg, err := buildRegistry()
	if err != nil {
		return "", err
	}
	args, err := json.Marshal(call)
	if err != nil {
		return "", fmt.Errorf("encoding arguments: %w", err)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return tui.Spin(ctx, label, tui.Detect(themeOverride), func(ctx context.Context) (string, error) {
		return reg.Execute(ctx, name, args)
	})
}

func styles() *tui.StyleSet {
	return tui.NewStyleSet(tui.Detect(themeOverride))
}

// rawOutput reports whether the response should be printed verbatim
// instead of rendered: either --json was passed or stdout is piped.
func rawOutput() bool {
	return jsonOut || !term.IsTerminal(int(os.Stdout.Fd()))
}

// SetVersionInfo sets the version and commit for display.
func SetVersionInfo(version, commit string) {
	appVersion = version
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("webtools %s (commit: %s)\n", version, commit))
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
