package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var toolCmd = &cobra.Command{
	Use:   "tool",
	Short: "Inspect the web tools and their schemas",
}

var toolListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available tools",
	RunE:  runToolList,
}

var toolDescribeCmd = &cobra.Command{
	Use:   "describe <name>",
	Short: "Show tool details and input schema",
	Args:  cobra.ExactArgs(1),
	RunE:  runToolDescribe,
}

func init() {
	toolCmd.AddCommand(toolListCmd)
	toolCmd.AddCommand(toolDescribeCmd)
}

func runToolList(cmd *cobra.Command, args []string) error {
	reg, err := buildRegistry()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "NAME\tCATEGORY\tDESCRIPTION\n")
	for _, name := range reg.List() {
		t := reg.Get(name)
		fmt.Fprintf(w, "%s\t%s\t%s\n", t.Name(), t.Category(), t.Description())
	}
	return w.Flush()
}

func runToolDescribe(cmd *cobra.Command, args []string) error {
	reg, err := buildRegistry()
	if err != nil {
		return err
	}
	t := reg.Get(args[0])
	if t == nil {
		return fmt.Errorf("unknown tool: %q", args[0])
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Name:        %s\n", t.Name())
	fmt.Fprintf(out, "Category:    %s\n", t.Category())
	fmt.Fprintf(out, "Description: %s\n", t.Description())
	fmt.Fprintf(out, "\nInput Schema:\n")

	var buf bytes.Buffer
	if err := json.Indent(&buf, t.InputSchema(), "", "  "); err != nil {
		return fmt.Errorf("formatting schema: %w", err)
	}
	fmt.Fprintf(out, "%s\n", buf.String())
	return nil
}
