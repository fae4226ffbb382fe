package listview

// Header is a column heading with its sort indicator.
type Header struct {
	Column
	Order  Order  `json:"order,omitempty"`
	Arrow  string `json:"arrow,omitempty"`
	Active bool   `json:"active,omitempty"`
}

// EmptyRow is the single row painted when a table has no records.
type EmptyRow struct {
	Text    string `json:"text"`
	ColSpan int    `json:"colspan"`
}

// Table is the paintable body of a list page.
type Table struct {
	Headers []Header  `json:"headers"`
	Rows    []Row     `json:"rows"`
	Empty   *EmptyRow `json:"empty,omitempty"`
}

// Headers builds headings for columns under state s.
func Headers(columns []Column, s State) []Header {
	out := make([]Header, 0, len(columns))
	for _, c := range columns {
		h := Header{Column: c}
		if c.Sortable {
			h.Order = s.Indicator(c.Key)
			h.Arrow = h.Order.Arrow()
			h.Active = c.Key == s.SortColumn && h.Order == Desc
		}
		out = append(out, h)
	}
	return out
}

// BuildTable renders records into a table. The empty-state row spans the
// data columns plus the checkbox column.
func BuildTable[T any](columns []Column, s State, records []T, row func(T) Row, emptyText string) Table {
	t := Table{Headers: Headers(columns, s), Rows: make([]Row, 0, len(records))}
	if len(records) == 0 {
		t.Empty = &EmptyRow{Text: emptyText, ColSpan: len(columns) + 1}
		return t
	}
	for _, r := range records {
		t.Rows = append(t.Rows, row(r))
	}
	return t
}

// IDs returns the row identifiers in display order.
func (t Table) IDs() []string {
	ids := make([]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		ids = append(ids, r.ID)
	}
	return ids
}
