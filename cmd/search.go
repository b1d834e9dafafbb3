package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	searchDepth      string
	searchTopic      string
	searchMaxResults int
	searchTimeRange  string
	searchDays       int
	searchAnswer     bool
	searchRawContent bool
	searchImages     bool
	searchInclude    []string
	searchExclude    []string
	searchCountry    string
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the web",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchDepth, "depth", "", "search depth: basic or advanced")
	searchCmd.Flags().StringVar(&searchTopic, "topic", "", "search topic: general, news, or finance")
	searchCmd.Flags().IntVar(&searchMaxResults, "max-results", 0, "maximum number of results (1-20)")
	searchCmd.Flags().StringVar(&searchTimeRange, "time-range", "", "restrict results to: day, week, month, or year")
	searchCmd.Flags().IntVar(&searchDays, "days", 0, "days back to search (news topic only)")
	searchCmd.Flags().BoolVar(&searchAnswer, "answer", false, "include a synthesized answer")
	searchCmd.Flags().BoolVar(&searchRawContent, "raw-content", false, "include cleaned page content per result")
	searchCmd.Flags().BoolVar(&searchImages, "images", false, "include related images")
	searchCmd.Flags().StringSliceVar(&searchInclude, "include-domains", nil, "only include results from these domains")
	searchCmd.Flags().StringSliceVar(&searchExclude, "exclude-domains", nil, "exclude results from these domains")
	searchCmd.Flags().StringVar(&searchCountry, "country", "", "boost results from this country (general topic only)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	call := map[string]any{"query": strings.Join(args, " ")}
	if cmd.Flags().Changed("depth") {
		call["searchDepth"] = searchDepth
	}
	if cmd.Flags().Changed("topic") {
		call["topic"] = searchTopic
	}
	if cmd.Flags().Changed("max-results") {
		call["maxResults"] = searchMaxResults
	}
	if cmd.Flags().Changed("time-range") {
		call["timeRange"] = searchTimeRange
	}
	if cmd.Flags().Changed("days") {
		call["days"] = searchDays
	}
	if cmd.Flags().Changed("answer") {
		call["includeAnswer"] = searchAnswer
	}
	if cmd.Flags().Changed("raw-content") {
		call["includeRawContent"] = searchRawContent
	}
	if cmd.Flags().Changed("images") {
		call["includeImages"] = searchImages
	}
	if len(searchInclude) > 0 {
		call["includeDomains"] = searchInclude
	}
	if len(searchExclude) > 0 {
		call["excludeDomains"] = searchExclude
	}
	if cmd.Flags().Changed("country") {
		call["country"] = searchCountry
	}

	out, err := executeTool(cmd.Context(), "web_search", call, "searching the web")
	if err != nil {
		return err
	}
	if rawOutput() {
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}
	return renderSearch(cmd.OutOrStdout(), out)
}
