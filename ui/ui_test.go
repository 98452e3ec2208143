package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestTable(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var buf bytes.Buffer
	Table(&buf, []string{"Keys", "Action"}, [][]string{
		{"Tab", "Add child"},
		{"Delete", "Delete subtree"},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected header and 2 rows, got %d lines: %q", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[1], "Tab     Add child") {
		t.Errorf("Expected aligned columns, got %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "Delete  Delete subtree") {
		t.Errorf("Expected aligned columns, got %q", lines[2])
	}
}

func TestTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	Table(&buf, []string{"Keys"}, nil)
	if buf.Len() != 0 {
		t.Errorf("Expected no output for empty table, got %q", buf.String())
	}
}
