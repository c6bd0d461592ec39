// Package cli implements the command-line interface for espn-qbr.
//
// The cli package provides the Cobra-based CLI with flags selecting years,
// weeks, season type, and stat type, plus output writers for text, JSON, CSV,
// and Markdown. Diagnostics from a load are reported on stderr while the
// combined table goes to stdout or the --output file.
package cli
