package table

// Absent fills cells that have no value, such as columns missing from one of
// the concatenated tables. The empty string is not used because scraped cells
// can be legitimately empty.
const Absent = "NA"

// Table is an ordered grid of string cells with named columns. Rows always
// have exactly len(Columns) cells.
type Table struct {
	Columns []string
	Rows    [][]string
}

// New creates an empty table with the given columns.
func New(columns []string) *Table {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Table{Columns: cols}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// AddRow appends a row. Rows shorter than the column set are padded with
// Absent; longer rows are truncated.
func (t *Table) AddRow(cells []string) {
	row := make([]string, len(t.Columns))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		} else {
			row[i] = Absent
		}
	}
	t.Rows = append(t.Rows, row)
}

// AddColumn appends a column holding the same value in every row.
func (t *Table) AddColumn(name, value string) {
	t.Columns = append(t.Columns, name)
	for i := range t.Rows {
		t.Rows[i] = append(t.Rows[i], value)
	}
}

// Column returns the values of the named column. If the name appears more
// than once, the first occurrence wins.
func (t *Table) Column(name string) ([]string, bool) {
	for i, c := range t.Columns {
		if c == name {
			values := make([]string, len(t.Rows))
			for j, row := range t.Rows {
				values[j] = row[i]
			}
			return values, true
		}
	}
	return nil, false
}

// JoinColumns binds tables side-by-side into one table, in the order given.
// When row counts differ, shorter tables are padded with Absent so every
// joined row is complete. Returns nil for empty input.
func JoinColumns(tables []*Table) *Table {
	if len(tables) == 0 {
		return nil
	}

	rows := 0
	var cols []string
	for _, t := range tables {
		cols = append(cols, t.Columns...)
		if t.Len() > rows {
			rows = t.Len()
		}
	}

	out := New(cols)
	for i := 0; i < rows; i++ {
		row := make([]string, 0, len(cols))
		for _, t := range tables {
			if i < t.Len() {
				row = append(row, t.Rows[i]...)
			} else {
				for range t.Columns {
					row = append(row, Absent)
				}
			}
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

// Concat binds tables top-to-bottom into one table, preserving input order
// and re-indexing rows sequentially. The result's column set is the union of
// all input columns in first-seen order; cells for columns a table lacks are
// filled with Absent. Returns nil for empty input, which callers treat as an
// absent dataset rather than an empty one.
func Concat(tables []*Table) *Table {
	if len(tables) == 0 {
		return nil
	}

	var cols []string
	index := make(map[string]int)
	for _, t := range tables {
		for _, c := range t.Columns {
			if _, ok := index[c]; !ok {
				index[c] = len(cols)
				cols = append(cols, c)
			}
		}
	}

	out := New(cols)
	for _, t := range tables {
		dest := make([]int, len(t.Columns))
		for i, c := range t.Columns {
			dest[i] = index[c]
		}
		for _, src := range t.Rows {
			row := make([]string, len(cols))
			for i := range row {
				row[i] = Absent
			}
			for i, v := range src {
				row[dest[i]] = v
			}
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}
