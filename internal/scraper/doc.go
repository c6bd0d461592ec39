// Package scraper provides HTTP fetching and HTML table extraction for ESPN
// QBR pages.
//
// The scraper fetches a page and converts every HTML <table> element on it
// into a table.Table, in document order. ESPN's QBR pages publish two tables
// per page (quarterback names and their stat columns); the scraper makes no
// assumption about the count and returns whatever the page holds. A page
// without any tables yields ErrNoTables.
package scraper
