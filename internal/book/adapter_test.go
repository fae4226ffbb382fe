package book

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"libadmin/internal/listview"
)

func intPtr(v int) *int             { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestRow_Full(t *testing.T) {
	b := Book{
		ISBN:              "978-5-04-116603-4",
		Name:              "Мастер и Маргарита",
		PublicationYear:   "1967-01-01",
		PublishingCompany: "Эксмо",
		CountOfBooks:      intPtr(0),
		Authors: []AuthorRef{
			{ID: intPtr(1), FIO: "Булгаков Михаил"},
			{FIO: "Соавтор"},
		},
	}

	want := listview.Row{
		ID: "978-5-04-116603-4",
		Cells: []listview.Cell{
			{Column: "name", Text: "Мастер и Маргарита", Href: "/admin/books/978-5-04-116603-4"},
			{Column: "authors", Text: "Булгаков Михаил, Соавтор"},
			{Column: "publicationYear", Text: "1967-01-01"},
			{Column: "publishingCompany", Text: "Эксмо"},
			{Column: "countOfBooks", Text: "0"},
			{Column: "isbn", Text: "978-5-04-116603-4"},
		},
	}
	if diff := cmp.Diff(want, Row(b)); diff != "" {
		t.Errorf("Row mismatch (-want +got):\n%s", diff)
	}
}

func TestRow_Placeholders(t *testing.T) {
	row := Row(Book{ISBN: "1"})

	byColumn := map[string]listview.Cell{}
	for _, c := range row.Cells {
		byColumn[c.Column] = c
		assert.True(t, c.Placeholder || c.Column == "isbn", c.Column)
	}
	assert.Equal(t, listview.Untitled, byColumn["name"].Text)
	assert.Equal(t, "/admin/books/1", byColumn["name"].Href)
	assert.Equal(t, listview.Unknown, byColumn["authors"].Text)
	assert.Equal(t, listview.NotSpecified, byColumn["publicationYear"].Text)
	assert.Equal(t, listview.NotSpecified, byColumn["countOfBooks"].Text)
}

func TestAdapter_EmptyTable(t *testing.T) {
	table := listview.BuildTable(Adapter.Columns, listview.Initial(Adapter.DefaultSort), []Book{}, Adapter.Row, Adapter.EmptyText)

	assert.Empty(t, table.Rows)
	if assert.NotNil(t, table.Empty) {
		assert.Equal(t, "Книги не найдены.", table.Empty.Text)
		assert.Equal(t, len(Columns)+1, table.Empty.ColSpan)
	}
}

func TestNewDetail(t *testing.T) {
	d := NewDetail(Book{
		ISBN:              "978-0-30-640615-7",
		Name:              "Книга",
		PublishingCompany: "АСТ Пресс",
		Cost:              floatPtr(499.5),
		Genres:            []string{"Роман", "Драма"},
	})

	byColumn := map[string]listview.Cell{}
	for _, c := range d.Fields {
		byColumn[c.Column] = c
	}
	assert.Equal(t, "499.5", byColumn["cost"].Text)
	assert.Equal(t, "Роман, Драма", byColumn["genres"].Text)
	assert.Equal(t, "/admin/publishers/%D0%90%D0%A1%D0%A2%20%D0%9F%D1%80%D0%B5%D1%81%D1%81", byColumn["publishingCompany"].Href)
	assert.Equal(t, listview.NotSpecifiedM, byColumn["language"].Text)
	assert.True(t, byColumn["ageLimit"].Placeholder)
}

func TestBook_Relations(t *testing.T) {
	b := Book{PublishingCompany: "Эксмо", Authors: []AuthorRef{{ID: intPtr(7), FIO: "А"}, {FIO: "Б"}}}

	assert.True(t, b.WrittenBy(7))
	assert.False(t, b.WrittenBy(8))
	assert.True(t, b.PublishedBy("Эксмо"))
	assert.False(t, Book{}.PublishedBy(""))
}
