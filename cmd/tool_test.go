package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestToolListCmd(t *testing.T) {
	rootCmd.SetArgs([]string{"tool", "list"})
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("tool list error: %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "NAME") {
		t.Errorf("missing header in output:\n%s", output)
	}
	for _, name := range []string{"web_search", "web_extract", "web_crawl", "web_map"} {
		if !strings.Contains(output, name) {
			t.Errorf("missing tool %q in output:\n%s", name, output)
		}
	}
}

func TestToolDescribeCmd_KnownTool(t *testing.T) {
	rootCmd.SetArgs([]string{"tool", "describe", "web_search"})
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("tool describe error: %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "web_search") {
		t.Errorf("missing tool name in output:\n%s", output)
	}
	if !strings.Contains(output, "searchDepth") {
		t.Errorf("missing schema property in output:\n%s", output)
	}
	if strings.Contains(output, "autoParameters") {
		t.Errorf("construction-only field leaked into schema output:\n%s", output)
	}
}

func TestToolDescribeCmd_UnknownTool(t *testing.T) {
	rootCmd.SetArgs([]string{"tool", "describe", "nonexistent_tool"})
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)

	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected error for unknown tool")
	}
}
