package author

import (
	"libadmin/internal/book"
	"libadmin/internal/listview"
)

// DetailHref is the link target of an author's first column.
func DetailHref(id string) string {
	return "/admin/authors/" + id
}

var Columns = []listview.Column{
	{Key: "fio", Title: "ФИО", Sortable: true},
	{Key: "birthDate", Title: "Дата рождения", Sortable: true},
	{Key: "country", Title: "Страна", Sortable: true},
	{Key: "nickname", Title: "Псевдоним", Sortable: true},
}

// Row renders one author.
func Row(a Author) listview.Row {
	return listview.Row{
		ID: a.Key(),
		Cells: []listview.Cell{
			listview.Link("fio", a.FIO, listview.NoFIO, DetailHref(a.Key())),
			listview.Text("birthDate", a.BirthDate, listview.NotSpecified),
			listview.Text("country", a.Country, listview.NotSpecified),
			listview.Text("nickname", a.Nickname, listview.NotSpecified),
		},
	}
}

var Adapter = listview.Adapter[Author]{
	Name:        "authors",
	Path:        "/api/authors",
	SearchPath:  "/api/authors/search",
	SearchParam: "q",
	DefaultSort: listview.Sort{Column: "fio", Order: listview.Asc},
	Columns:     Columns,
	Row:         Row,
	EmptyText:   "Авторы не найдены.",
}

// Detail is the view model of the author information page.
type Detail struct {
	Author Author          `json:"author"`
	Fields []listview.Cell `json:"fields"`
	Books  listview.Table  `json:"books"`
}

// NewDetail renders a with the table of its books.
func NewDetail(a Author, books listview.Page[book.Book]) Detail {
	return Detail{
		Author: a,
		Fields: []listview.Cell{
			listview.Text("fio", a.FIO, listview.NotSpecified),
			listview.Text("birthDate", a.BirthDate, listview.NotSpecified),
			listview.Text("country", a.Country, listview.NotSpecified),
			listview.Text("nickname", a.Nickname, listview.NotSpecified),
		},
		Books: books.Table,
	}
}
