package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	crawlMaxDepth     int
	crawlMaxBreadth   int
	crawlLimit        int
	crawlInstructions string
	crawlExtractDepth string
)

var crawlCmd = &cobra.Command{
	Use:   "crawl <url>",
	Short: "Crawl a website and extract page content",
	Args:  cobra.ExactArgs(1),
	RunE:  runCrawl,
}

func init() {
	crawlCmd.Flags().IntVar(&crawlMaxDepth, "max-depth", 0, "link levels to follow from the root URL (1-5)")
	crawlCmd.Flags().IntVar(&crawlMaxBreadth, "max-breadth", 0, "links to follow per page (1-100)")
	crawlCmd.Flags().IntVar(&crawlLimit, "limit", 0, "total pages to process")
	crawlCmd.Flags().StringVar(&crawlInstructions, "instructions", "", "natural-language guidance for the crawler")
	crawlCmd.Flags().StringVar(&crawlExtractDepth, "extract-depth", "", "extraction depth per page: basic or advanced")
}

func runCrawl(cmd *cobra.Command, args []string) error {
	call := map[string]any{"url": args[0]}
	if cmd.Flags().Changed("max-depth") {
		call["maxDepth"] = crawlMaxDepth
	}
	if cmd.Flags().Changed("max-breadth") {
		call["maxBreadth"] = crawlMaxBreadth
	}
	if cmd.Flags().Changed("limit") {
		call["limit"] = crawlLimit
	}
	if cmd.Flags().Changed("instructions") {
		call["instructions"] = crawlInstructions
	}
	if cmd.Flags().Changed("extract-depth") {
		call["extractDepth"] = crawlExtractDepth
	}

	out, err := executeTool(cmd.Context(), "web_crawl", call, "crawling "+args[0])
	if err != nil {
		return err
	}
	if rawOutput() {
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}
	return renderCrawl(cmd.OutOrStdout(), out)
}
