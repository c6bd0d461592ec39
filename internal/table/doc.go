// Package table provides the tabular data model for QBR results.
//
// A Table is an ordered grid of string cells with named columns. The package
// supports the two assembly operations the loader needs: joining the tables
// found on one page side-by-side (column-wise), and concatenating per-page
// tables into one combined result (row-wise, with the column set unioned and
// missing cells filled with the Absent marker).
package table
