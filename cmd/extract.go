package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	extractDepth  string
	extractImages bool
)

var extractCmd = &cobra.Command{
	Use:   "extract <url>...",
	Short: "Extract readable content from web pages",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().StringVar(&extractDepth, "depth", "", "extraction depth: basic or advanced")
	extractCmd.Flags().BoolVar(&extractImages, "images", false, "include images found on each page")
}

func runExtract(cmd *cobra.Command, args []string) error {
	call := map[string]any{"urls": args}
	if cmd.Flags().Changed("depth") {
		call["extractDepth"] = extractDepth
	}
	if cmd.Flags().Changed("images") {
		call["includeImages"] = extractImages
	}

	out, err := executeTool(cmd.Context(), "web_extract", call, "extracting content")
	if err != nil {
		return err
	}
	if rawOutput() {
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}
	return renderExtract(cmd.OutOrStdout(), out)
}
