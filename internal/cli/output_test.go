package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/cwhaley/espn-qbr/internal/qbr"
	"github.com/cwhaley/espn-qbr/internal/table"
)

func sampleResult() *qbr.Result {
	t := table.New([]string{"NAME", "QBR", "year"})
	t.AddRow([]string{"Josh Allen BUF", "90.9", "2020"})
	t.AddRow([]string{"Patrick Mahomes KC", "87.4", "2020"})
	return &qbr.Result{Table: t}
}

func TestWriteOutputText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, sampleResult(), FormatText); err != nil {
		t.Fatalf("WriteOutput failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"NAME", "Josh Allen BUF", "90.9", "Total: 2 rows"} {
		if !strings.Contains(out, want) {
			t.Errorf("text output should contain %q:\n%s", want, out)
		}
	}
}

func TestWriteOutputTextEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, &qbr.Result{}, FormatText); err != nil {
		t.Fatalf("WriteOutput failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No data to output.") {
		t.Errorf("empty text output = %q", buf.String())
	}
}

func TestWriteOutputCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, sampleResult(), FormatCSV); err != nil {
		t.Fatalf("WriteOutput failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "NAME,QBR,year" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "Josh Allen BUF,90.9,2020" {
		t.Errorf("row 1 = %q", lines[1])
	}
}

func TestWriteOutputJSON(t *testing.T) {
	var buf bytes.Buffer
	res := sampleResult()
	res.Diagnostics = []string{"no data for year 2020 regular season week 9: no tables found"}

	if err := WriteOutput(&buf, res, FormatJSON); err != nil {
		t.Fatalf("WriteOutput failed: %v", err)
	}

	var decoded jsonResult
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.RowCount != 2 {
		t.Errorf("row_count = %d, want 2", decoded.RowCount)
	}
	if len(decoded.Columns) != 3 {
		t.Errorf("columns = %v", decoded.Columns)
	}
	if len(decoded.Diagnostics) != 1 {
		t.Errorf("diagnostics = %v", decoded.Diagnostics)
	}
}

func TestWriteOutputMarkdown(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, sampleResult(), FormatMarkdown); err != nil {
		t.Fatalf("WriteOutput failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "| NAME") {
		t.Errorf("markdown output should contain a table header:\n%s", out)
	}
	if !strings.Contains(out, "Josh Allen BUF") {
		t.Errorf("markdown output should contain row data:\n%s", out)
	}
}

func TestWriteOutputUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, sampleResult(), OutputFormat("xml")); err == nil {
		t.Error("expected error for unknown format")
	}
}
