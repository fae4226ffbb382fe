package publisher

import (
	"fmt"
	"net/url"

	"libadmin/internal/book"
	"libadmin/internal/listview"
)

func DetailHref(name string) string {
	return "/admin/publishers/" + url.PathEscape(name)
}

var Columns = []listview.Column{
	{Key: "name", Title: "Название", Sortable: true},
	{Key: "establishmentYear", Title: "Год основания", Sortable: true},
	{Key: "contactInfo", Title: "Контакты", Sortable: true},
	{Key: "city", Title: "Город", Sortable: true},
}

func Row(c Company) listview.Row {
	return listview.Row{
		ID: c.Name,
		Cells: []listview.Cell{
			listview.Link("name", c.Name, listview.Untitled, DetailHref(c.Name)),
			listview.Year("establishmentYear", c.EstablishmentYear, listview.NotSpecified),
			listview.Text("contactInfo", c.ContactInfo, listview.NotSpecified),
			listview.Text("city", c.City, listview.NotSpecified),
		},
	}
}

// sortKey orders companies on the client; the endpoint ignores sort
// parameters. Years are zero padded so they compare as text.
func sortKey(c Company, column string) string {
	switch column {
	case "establishmentYear":
		if c.EstablishmentYear == nil {
			return ""
		}
		return fmt.Sprintf("%06d", *c.EstablishmentYear)
	case "contactInfo":
		return c.ContactInfo
	case "city":
		return c.City
	default:
		return c.Name
	}
}

var Adapter = listview.Adapter[Company]{
	Name:        "publishing companies",
	Path:        "/api/publishing-companies",
	SearchPath:  "/api/publishing-companies/search",
	SearchParam: "q",
	DefaultSort: listview.Sort{Column: "name", Order: listview.Asc},
	Columns:     Columns,
	Row:         Row,
	EmptyText:   "Издательства не найдены.",
	SortKey:     sortKey,
}

// Detail is the view model of the publishing company information page.
type Detail struct {
	Company Company         `json:"company"`
	Fields  []listview.Cell `json:"fields"`
	Books   listview.Table  `json:"books"`
}

func NewDetail(c Company, books listview.Page[book.Book]) Detail {
	return Detail{
		Company: c,
		Fields: []listview.Cell{
			listview.Text("name", c.Name, listview.NotSpecified),
			listview.Year("establishmentYear", c.EstablishmentYear, listview.NotSpecified),
			listview.Text("contactInfo", c.ContactInfo, listview.NotSpecified),
			listview.Text("city", c.City, listview.NotSpecified),
		},
		Books: books.Table,
	}
}
