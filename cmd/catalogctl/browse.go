package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"libadmin/internal/author"
	"libadmin/internal/authgate"
	"libadmin/internal/book"
	"libadmin/internal/listview"
	"libadmin/internal/platform/catalogapi"
	"libadmin/internal/publisher"
	"libadmin/internal/selection"
)

// listing binds one entity table to the commands.
type listing struct {
	columns  []listview.Column
	def      listview.Sort
	gate     *authgate.Gate
	messages selection.Messages
	fetch    func(ctx context.Context, s listview.State) (listview.Table, error)
	remove   func(ctx context.Context, ids []string, confirmed bool) (selection.Outcome, error)
}

func (a *app) listing(entity string) (listing, error) {
	switch entity {
	case "books":
		return listing{
			columns:  book.Adapter.Columns,
			def:      book.Adapter.DefaultSort,
			gate:     authgate.Books,
			messages: selection.Books,
			fetch: func(ctx context.Context, s listview.State) (listview.Table, error) {
				page, err := a.books.List(ctx, s)
				return page.Table, err
			},
			remove: a.books.BulkDelete,
		}, nil
	case "authors":
		return listing{
			columns:  author.Adapter.Columns,
			def:      author.Adapter.DefaultSort,
			gate:     authgate.Authors,
			messages: selection.Authors,
			fetch: func(ctx context.Context, s listview.State) (listview.Table, error) {
				page, err := a.authors.List(ctx, s)
				return page.Table, err
			},
			remove: a.authors.BulkDelete,
		}, nil
	case "publishers":
		return listing{
			columns:  publisher.Adapter.Columns,
			def:      publisher.Adapter.DefaultSort,
			gate:     authgate.Publishers,
			messages: selection.Publishers,
			fetch: func(ctx context.Context, s listview.State) (listview.Table, error) {
				page, err := a.publishers.List(ctx, s)
				return page.Table, err
			},
			remove: a.publishers.BulkDelete,
		}, nil
	}
	return listing{}, a.usageErr("unknown entity " + entity + " (books, authors, publishers)")
}

func (l listing) sortable() []listview.Column {
	var out []listview.Column
	for _, c := range l.columns {
		if c.Sortable {
			out = append(out, c)
		}
	}
	return out
}

func (a *app) list(ctx context.Context, entity, query string) error {
	l, err := a.listing(entity)
	if err != nil {
		return err
	}
	s := listview.Initial(l.def).WithSearch(query, l.def)
	if a.listSort.column != "" {
		s.SortColumn = a.listSort.column
		s.SortOrder = listview.Asc
		if a.listSort.desc {
			s.SortOrder = listview.Desc
		}
	}
	t, err := l.fetch(ctx, s)
	if err != nil {
		return err
	}
	a.printf("%s\n", renderTable(t, nil))
	return nil
}

const (
	actionSearch = iota
	actionReset
	actionSort
	actionSelect
	actionSelectAll
	actionClear
	actionDelete
	actionQuit
)

var browseActions = []string{
	actionSearch:    "Поиск",
	actionReset:     "Сбросить поиск",
	actionSort:      "Сортировать",
	actionSelect:    "Отметить строки",
	actionSelectAll: "Выбрать все",
	actionClear:     "Снять выбор",
	actionDelete:    "Удалить выбранные",
	actionQuit:      "Выход",
}

// browse runs the interactive list page. A failed fetch keeps the table
// that was on screen.
func (a *app) browse(ctx context.Context, entity string) error {
	l, err := a.listing(entity)
	if err != nil {
		return err
	}
	state := listview.Initial(l.def)
	table, err := l.fetch(ctx, state)
	if err != nil {
		return err
	}
	set := selection.NewSet(table.IDs())

	for {
		if state.Query != "" {
			a.printf("Поиск: %s\n", state.Query)
		}
		a.printf("%s\n", renderTable(table, set.Checked))

		choice, err := a.prompt.Select(ctx, SelectConfig{Message: "Действие:", Options: browseActions})
		if err != nil {
			return err
		}

		next := state
		switch choice {
		case actionSearch:
			q, err := a.prompt.Input(ctx, InputConfig{Message: "Поиск:", Default: state.Query})
			if err != nil {
				return err
			}
			next = state.WithSearch(q, l.def)
		case actionReset:
			next = state.WithReset(l.def)
		case actionSort:
			cols := l.sortable()
			options := make([]string, len(cols))
			for i, c := range cols {
				options[i] = c.Title + " " + state.Indicator(c.Key).Arrow()
			}
			i, err := a.prompt.Select(ctx, SelectConfig{Message: "Столбец:", Options: options})
			if err != nil {
				return err
			}
			if i < 0 || i >= len(cols) {
				continue
			}
			next = state.ToggleSort(cols[i].Key)
		case actionSelect:
			if err := a.pickRows(ctx, table, set); err != nil {
				return err
			}
			continue
		case actionSelectAll:
			set.ToggleAll(true)
			continue
		case actionClear:
			set.ToggleAll(false)
			continue
		case actionDelete:
			if !a.allowed(l.gate, authgate.ControlDeleteSelected) {
				continue
			}
			deleted, err := a.deleteSelected(ctx, l, set.Selected())
			if err != nil {
				return err
			}
			if !deleted {
				continue
			}
		default:
			return nil
		}

		t, err := l.fetch(ctx, next)
		if err != nil {
			a.printf("Не удалось загрузить данные: %v\n", err)
			continue
		}
		state, table = next, t
		set = selection.NewSet(table.IDs())
	}
}

func (a *app) pickRows(ctx context.Context, t listview.Table, set *selection.Set) error {
	if len(t.Rows) == 0 {
		return nil
	}
	options := make([]string, len(t.Rows))
	var defaults []int
	for i, r := range t.Rows {
		options[i] = rowLabel(r)
		if set.Checked(r.ID) {
			defaults = append(defaults, i)
		}
	}
	picked, err := a.prompt.MultiSelect(ctx, SelectConfig{Message: "Строки:", Options: options, Defaults: defaults, PageSize: 15})
	if err != nil {
		return err
	}
	set.ToggleAll(false)
	for _, i := range picked {
		if i >= 0 && i < len(t.Rows) {
			set.Set(t.Rows[i].ID, true)
		}
	}
	return nil
}

func rowLabel(r listview.Row) string {
	if len(r.Cells) == 0 {
		return r.ID
	}
	return fmt.Sprintf("%s (%s)", r.Cells[0].Text, r.ID)
}

// deleteSelected asks for confirmation and runs the bulk delete. It reports
// whether the table must be reloaded.
func (a *app) deleteSelected(ctx context.Context, l listing, ids []string) (bool, error) {
	confirmed := false
	if len(ids) > 0 {
		var err error
		confirmed, err = a.prompt.Confirm(ctx, ConfirmConfig{Message: l.messages.Confirm})
		if err != nil {
			return false, err
		}
	}
	outcome, err := l.remove(ctx, ids, confirmed)
	a.printf("%s\n", bulkText(l.messages, len(ids), outcome, err))
	return err == nil && outcome == selection.Deleted, nil
}

// bulkText is the message shown after a bulk delete, matching what the
// admin server reports for the same outcome.
func bulkText(m selection.Messages, count int, outcome selection.Outcome, err error) string {
	var se *catalogapi.StatusError
	switch {
	case err == nil:
		return m.Report(outcome, count).Message
	case errors.Is(err, selection.ErrNoSelection):
		return m.Empty
	case errors.Is(err, selection.ErrAborted):
		return m.Aborted
	case errors.As(err, &se):
		if se.StatusCode == http.StatusUnauthorized || se.StatusCode == http.StatusForbidden {
			return "Необходимо войти в систему"
		}
		return m.Failed
	case errors.Is(err, catalogapi.ErrTransport):
		return m.Unreachable
	default:
		return err.Error()
	}
}

func (a *app) show(ctx context.Context, entity, id string) error {
	switch entity {
	case "books":
		b, err := a.books.GetByISBN(ctx, id)
		if errors.Is(err, book.ErrNotFound) {
			a.printf("Книга не найдена\n")
			return nil
		}
		if err != nil {
			return err
		}
		a.printf("%s\n", renderFields(bookLabels, book.NewDetail(b).Fields))
	case "authors":
		n, err := strconv.Atoi(id)
		if err != nil {
			return a.usageErr("author id must be a number")
		}
		d, err := a.authors.Detail(ctx, n)
		if errors.Is(err, author.ErrNotFound) {
			a.printf("%s\n", author.NotFoundText)
			return nil
		}
		if err != nil {
			return err
		}
		a.printf("%s\n%s\n", renderFields(labelsOf(author.Columns), d.Fields), renderTable(d.Books, nil))
	case "publishers":
		d, err := a.publishers.Detail(ctx, id)
		if errors.Is(err, publisher.ErrNotFound) {
			a.printf("Издательство не найдено\n")
			return nil
		}
		if err != nil {
			return err
		}
		a.printf("%s\n%s\n", renderFields(labelsOf(publisher.Columns), d.Fields), renderTable(d.Books, nil))
	default:
		return a.usageErr("unknown entity " + entity)
	}
	return nil
}

func labelsOf(cols []listview.Column) map[string]string {
	out := make(map[string]string, len(cols))
	for _, c := range cols {
		out[c.Key] = c.Title
	}
	return out
}

var bookLabels = map[string]string{
	"name":              "Название",
	"isbn":              "ISBN",
	"authors":           "Авторы",
	"publicationYear":   "Дата издания",
	"publishingCompany": "Издательство",
	"language":          "Язык",
	"pageCount":         "Страниц",
	"ageLimit":          "Возрастное ограничение",
	"cost":              "Цена",
	"countOfBooks":      "Количество",
	"genres":            "Жанры",
}
