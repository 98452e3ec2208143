// Package ui formats command line output.
package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
)

// Output colors
var (
	Brand  = color.New(color.FgHiCyan, color.Bold)
	Subtle = color.New(color.FgHiBlack)
	Good   = color.New(color.FgGreen)
	Bad    = color.New(color.FgRed)
	Bold   = color.New(color.Bold)

	heading = color.New(color.Bold, color.Underline)
)

// Heading prints an underlined section title.
func Heading(w io.Writer, title string) {
	fmt.Fprintln(w, heading.Sprint(title))
}

// Table prints rows aligned in columns under bold headers.
func Table(w io.Writer, headers []string, rows [][]string) {
	if len(rows) == 0 {
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "

	cells := make([]interface{}, len(headers))
	for i, h := range headers {
		cells[i] = Bold.Sprint(h)
	}
	tbl.AddRow(cells...)

	for _, row := range rows {
		cells := make([]interface{}, len(row))
		for i, c := range row {
			cells[i] = c
		}
		tbl.AddRow(cells...)
	}

	fmt.Fprintln(w, tbl)
}
