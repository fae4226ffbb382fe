package listview

import "strconv"

// Placeholders rendered in place of missing values.
const (
	NotSpecified  = "Не указано"
	NotSpecifiedM = "Не указан"
	Untitled      = "Без названия"
	NoFIO         = "Без ФИО"
	Unknown       = "Неизвестно"
)

// Column describes one data column of a table.
type Column struct {
	Key      string `json:"key"`
	Title    string `json:"title"`
	Sortable bool   `json:"sortable"`
}

// Cell is one rendered value. Placeholder is set when the record had no
// value for the column and Text carries the placeholder instead.
type Cell struct {
	Column      string `json:"column"`
	Text        string `json:"text"`
	Href        string `json:"href,omitempty"`
	Placeholder bool   `json:"placeholder,omitempty"`
}

// Row is one rendered record. ID is the value bound to the row checkbox.
type Row struct {
	ID    string `json:"id"`
	Cells []Cell `json:"cells"`
}

// Text renders a string column.
func Text(column, value, placeholder string) Cell {
	if value == "" {
		return Cell{Column: column, Text: placeholder, Placeholder: true}
	}
	return Cell{Column: column, Text: value}
}

// Link renders a string column as a hyperlink to href.
func Link(column, value, placeholder, href string) Cell {
	c := Text(column, value, placeholder)
	c.Href = href
	return c
}

// Int renders an optional number. Only nil is missing; zero is a value.
func Int(column string, value *int, placeholder string) Cell {
	if value == nil {
		return Cell{Column: column, Text: placeholder, Placeholder: true}
	}
	return Cell{Column: column, Text: strconv.Itoa(*value)}
}

// Year renders a year where zero also means missing.
func Year(column string, value *int, placeholder string) Cell {
	if value == nil || *value == 0 {
		return Cell{Column: column, Text: placeholder, Placeholder: true}
	}
	return Cell{Column: column, Text: strconv.Itoa(*value)}
}
