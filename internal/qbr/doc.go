// Package qbr loads ESPN's Total QBR data into a single combined table.
//
// A Loader describes one request: which years and weeks, whether regular
// season or postseason (or both), and whether per-week stats or season
// leaders. Load visits every matching QBR page in order, extracts its
// tables, tags each page's rows with the year (and, for weekly stats, the
// season type), and concatenates everything into one result.
//
// Loading is best-effort: a page that fails to yield data is recorded as a
// diagnostic on the Result and the batch continues. Only malformed request
// parameters abort a load.
package qbr
