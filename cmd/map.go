package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	mapMaxDepth     int
	mapMaxBreadth   int
	mapLimit        int
	mapInstructions string
)

var mapCmd = &cobra.Command{
	Use:   "map <url>",
	Short: "Map the URL structure of a website",
	Args:  cobra.ExactArgs(1),
	RunE:  runMap,
}

func init() {
	mapCmd.Flags().IntVar(&mapMaxDepth, "max-depth", 0, "link levels to follow from the root URL (1-5)")
	mapCmd.Flags().IntVar(&mapMaxBreadth, "max-breadth", 0, "links to follow per page (1-100)")
	mapCmd.Flags().IntVar(&mapLimit, "limit", 0, "total pages to process")
	mapCmd.Flags().StringVar(&mapInstructions, "instructions", "", "natural-language guidance for the mapper")
}

func runMap(cmd *cobra.Command, args []string) error {
	call := map[string]any{"url": args[0]}
	if cmd.Flags().Changed("max-depth") {
		call["maxDepth"] = mapMaxDepth
	}
	if cmd.Flags().Changed("max-breadth") {
		call["maxBreadth"] = mapMaxBreadth
	}
	if cmd.Flags().Changed("limit") {
		call["limit"] = mapLimit
	}
	if cmd.Flags().Changed("instructions") {
		call["instructions"] = mapInstructions
	}

	out, err := executeTool(cmd.Context(), "web_map", call, "mapping "+args[0])
	if err != nil {
		return err
	}
	if rawOutput() {
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}
	return renderMap(cmd.OutOrStdout(), out)
}
