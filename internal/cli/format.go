package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	headerColor  = color.New(color.FgBlue, color.Bold)
	valueColor   = color.New(color.FgHiBlack)
)

// printSuccess prints a success message with a checkmark.
func printSuccess(w io.Writer, msg string) {
	fmt.Fprintln(w, successColor.Sprintf("✓ %s", msg))
}

// printWarning prints a warning message with a warning symbol.
func printWarning(w io.Writer, msg string) {
	fmt.Fprintln(w, warningColor.Sprintf("⚠ %s", msg))
}

// printError prints an error message, meant for stderr.
func printError(w io.Writer, msg string) {
	fmt.Fprintln(w, errorColor.Sprintf("✗ %s", msg))
}

// printSection prints a section header.
func printSection(w io.Writer, title string) {
	fmt.Fprintln(w, headerColor.Sprintf("▸ %s", title))
}

// printTable prints a simple aligned table with a header row.
func printTable(w io.Writer, headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	fmt.Fprint(w, "  ")
	for i, h := range headers {
		if i > 0 {
			fmt.Fprint(w, "  ")
		}
		fmt.Fprint(w, headerColor.Sprintf("%-*s", widths[i], h))
	}
	fmt.Fprintln(w)

	fmt.Fprint(w, "  ")
	for i, width := range widths {
		if i > 0 {
			fmt.Fprint(w, "  ")
		}
		fmt.Fprint(w, strings.Repeat("-", width))
	}
	fmt.Fprintln(w)

	for _, row := range rows {
		fmt.Fprint(w, "  ")
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if i > 0 {
				fmt.Fprint(w, "  ")
			}
			fmt.Fprint(w, valueColor.Sprintf("%-*s", widths[i], cell))
		}
		fmt.Fprintln(w)
	}
}

// printJSON writes v as indented JSON, for --json consumers.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
