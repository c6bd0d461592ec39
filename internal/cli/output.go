package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cwhaley/espn-qbr/internal/qbr"
	"github.com/nao1215/markdown"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText     OutputFormat = "text"
	FormatJSON     OutputFormat = "json"
	FormatCSV      OutputFormat = "csv"
	FormatMarkdown OutputFormat = "markdown"
)

// jsonResult is the JSON shape of a load result
type jsonResult struct {
	Columns     []string   `json:"columns"`
	Rows        [][]string `json:"rows"`
	RowCount    int        `json:"row_count"`
	Diagnostics []string   `json:"diagnostics,omitempty"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *qbr.Result, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatCSV:
		return writeCSV(w, result)
	case FormatMarkdown:
		return writeMarkdown(w, result)
	case FormatText:
		return writeText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs the result as JSON
func writeJSON(w io.Writer, result *qbr.Result) error {
	out := jsonResult{Diagnostics: result.Diagnostics}
	if !result.Empty() {
		out.Columns = result.Table.Columns
		out.Rows = result.Table.Rows
		out.RowCount = result.Table.Len()
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

// writeCSV outputs the table as CSV with a header row
func writeCSV(w io.Writer, result *qbr.Result) error {
	if result.Empty() {
		return nil
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(result.Table.Columns); err != nil {
		return err
	}
	for _, row := range result.Table.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// writeMarkdown outputs the table as a GitHub-flavored markdown table
func writeMarkdown(w io.Writer, result *qbr.Result) error {
	md := markdown.NewMarkdown(w)

	if result.Empty() {
		md.PlainText("No data to output.")
		return md.Build()
	}

	md.Table(markdown.TableSet{
		Header: result.Table.Columns,
		Rows:   result.Table.Rows,
	})
	return md.Build()
}

// writeText outputs the table as aligned, human-readable columns
func writeText(w io.Writer, result *qbr.Result) error {
	if result.Empty() {
		fmt.Fprintln(w, "No data to output.")
		return nil
	}

	t := result.Table
	widths := make([]int, len(t.Columns))
	for i, c := range t.Columns {
		widths[i] = len(c)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	writeRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = fmt.Sprintf("%-*s", widths[i], cell)
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
	}

	writeRow(t.Columns)
	for _, row := range t.Rows {
		writeRow(row)
	}
	fmt.Fprintf(w, "\nTotal: %d rows\n", t.Len())

	return nil
}
