package book

import (
	"net/url"
	"strconv"
	"strings"

	"libadmin/internal/listview"
)

// DetailHref is the link target of a book's first column.
func DetailHref(isbn string) string {
	return "/admin/books/" + url.PathEscape(isbn)
}

// Columns of the catalog table, in display order.
var Columns = []listview.Column{
	{Key: "name", Title: "Название", Sortable: true},
	{Key: "authors", Title: "Авторы"},
	{Key: "publicationYear", Title: "Год издания", Sortable: true},
	{Key: "publishingCompany", Title: "Издательство", Sortable: true},
	{Key: "countOfBooks", Title: "Количество", Sortable: true},
	{Key: "isbn", Title: "ISBN", Sortable: true},
}

// Row renders one book.
func Row(b Book) listview.Row {
	return listview.Row{
		ID: b.ISBN,
		Cells: []listview.Cell{
			listview.Link("name", b.Name, listview.Untitled, DetailHref(b.ISBN)),
			listview.Text("authors", b.AuthorNames(), listview.Unknown),
			listview.Text("publicationYear", b.PublicationYear, listview.NotSpecified),
			listview.Text("publishingCompany", b.PublishingCompany, listview.NotSpecified),
			listview.Int("countOfBooks", b.CountOfBooks, listview.NotSpecified),
			listview.Text("isbn", b.ISBN, listview.NotSpecified),
		},
	}
}

// Adapter binds the catalog page to the list controller. The books
// endpoint filters by the search parameter itself.
var Adapter = listview.Adapter[Book]{
	Name:        "books",
	Path:        "/api/books",
	SearchParam: "search",
	DefaultSort: listview.Sort{Column: "name", Order: listview.Asc},
	Columns:     Columns,
	Row:         Row,
	EmptyText:   "Книги не найдены.",
}

// Detail is the view model of the book information page.
type Detail struct {
	Book   Book           `json:"book"`
	Fields []listview.Cell `json:"fields"`
}

// NewDetail renders every field of b with placeholders applied.
func NewDetail(b Book) Detail {
	fields := []listview.Cell{
		listview.Text("name", b.Name, listview.Untitled),
		listview.Text("isbn", b.ISBN, listview.NotSpecified),
		listview.Text("authors", b.AuthorNames(), listview.Unknown),
		listview.Text("publicationYear", b.PublicationYear, listview.NotSpecified),
		listview.Link("publishingCompany", b.PublishingCompany, listview.NotSpecified, publisherHref(b.PublishingCompany)),
		listview.Text("language", b.Language, listview.NotSpecifiedM),
		listview.Int("pageCount", b.PageCount, listview.NotSpecified),
		number("ageLimit", b.AgeLimit),
		number("cost", b.Cost),
		listview.Int("countOfBooks", b.CountOfBooks, listview.NotSpecified),
		listview.Text("genres", strings.Join(b.Genres, ", "), listview.NotSpecified),
	}
	return Detail{Book: b, Fields: fields}
}

func publisherHref(name string) string {
	if name == "" {
		return ""
	}
	return "/admin/publishers/" + url.PathEscape(name)
}

func number(column string, v *float64) listview.Cell {
	if v == nil {
		return listview.Text(column, "", listview.NotSpecified)
	}
	return listview.Text(column, strconv.FormatFloat(*v, 'f', -1, 64), listview.NotSpecified)
}
