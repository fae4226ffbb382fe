package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"libadmin/internal/author"
	"libadmin/internal/authgate"
	"libadmin/internal/autocomplete"
	"libadmin/internal/book"
	"libadmin/internal/form"
	"libadmin/internal/isbn"
	"libadmin/internal/tags"
)

// suggester feeds a survey Suggest hook from an autocomplete widget.
func suggester(ctx context.Context, w *autocomplete.Widget) func(string) []string {
	return func(toComplete string) []string {
		if err := w.Type(ctx, toComplete); err != nil {
			return nil
		}
		var out []string
		for _, s := range w.Suggestions() {
			if !s.Disabled {
				out = append(out, s.Label)
			}
		}
		return out
	}
}

// choose selects the suggestion whose label is answer. It reports false
// and closes the list when the answer was typed rather than picked.
func choose(w *autocomplete.Widget, answer string) (autocomplete.Suggestion, bool) {
	for i, s := range w.Suggestions() {
		if s.Label == answer {
			picked, err := w.Select(i)
			return picked, err == nil
		}
	}
	w.Dismiss()
	return autocomplete.Suggestion{}, false
}

func isbnKeys(s string) error {
	for _, r := range s {
		if r == '-' || isbn.KeyAllowed(string(r)) {
			continue
		}
		return errors.New("ISBN может содержать только цифры")
	}
	return nil
}

func (a *app) addBook(ctx context.Context) error {
	if !a.allowed(authgate.Books, authgate.ControlAdd) {
		return nil
	}

	var f book.Form
	raw, err := a.prompt.Input(ctx, InputConfig{Message: "ISBN:", Help: "13 цифр, дефисы расставляются сами", Validator: isbnKeys})
	if err != nil {
		return err
	}
	f.ISBN = isbn.Format(raw)
	a.printf("ISBN: %s\n", f.ISBN)

	if f.Name, err = a.prompt.Input(ctx, InputConfig{Message: "Название:", Validator: required}); err != nil {
		return err
	}
	if f.PublicationYear, err = a.prompt.Input(ctx, InputConfig{Message: "Дата издания (ГГГГ-ММ-ДД):", Validator: required}); err != nil {
		return err
	}

	publishers := autocomplete.New(a.publishers.Source())
	f.PublishingCompany, err = a.prompt.Input(ctx, InputConfig{Message: "Издательство:", Validator: required, Suggest: suggester(ctx, publishers)})
	if err != nil {
		return err
	}
	if picked, ok := choose(publishers, f.PublishingCompany); ok {
		f.PublishingCompany = picked.Value
	}

	if f.Authors, err = a.askAuthors(ctx); err != nil {
		return err
	}
	if f.Genres, err = a.askGenres(ctx); err != nil {
		return err
	}

	if f.Language, err = a.prompt.Input(ctx, InputConfig{Message: "Язык (необязательно):"}); err != nil {
		return err
	}
	if f.PageCount, err = a.askInt(ctx, "Количество страниц (необязательно):"); err != nil {
		return err
	}
	if f.CountOfBooks, err = a.askInt(ctx, "Количество экземпляров (необязательно):"); err != nil {
		return err
	}
	if f.AgeLimit, err = a.askFloat(ctx, "Возрастное ограничение (необязательно):"); err != nil {
		return err
	}
	if f.Cost, err = a.askFloat(ctx, "Цена (необязательно):"); err != nil {
		return err
	}

	ok, err := a.prompt.Confirm(ctx, ConfirmConfig{Message: "Сохранить книгу?", Default: true})
	if err != nil || !ok {
		return err
	}

	b, err := a.books.Create(ctx, f)
	var invalid form.Errors
	if errors.As(err, &invalid) {
		a.printf("Форма заполнена с ошибками:\n")
		for _, fe := range invalid {
			a.printf("  %s: %s\n", fe.Field, fe.Message)
		}
		return err
	}
	if err != nil {
		return fmt.Errorf("create book: %w", err)
	}
	a.printf("Книга добавлена: %s\n", b.ISBN)
	return nil
}

// askAuthors collects author rows until an empty answer. A picked
// suggestion carries the author's id; typed names create new authors.
func (a *app) askAuthors(ctx context.Context) ([]book.AuthorInput, error) {
	var out []book.AuthorInput
	for {
		w := autocomplete.New(a.authors.Source(), autocomplete.WithNotFound(author.NotFoundText))
		answer, err := a.prompt.Input(ctx, InputConfig{
			Message: "Автор (пусто, чтобы закончить):",
			Suggest: suggester(ctx, w),
		})
		if err != nil {
			return nil, err
		}
		answer = strings.TrimSpace(answer)
		if answer == "" {
			return out, nil
		}
		picked, ok := choose(w, answer)
		if !ok {
			out = append(out, book.AuthorInput{FIO: answer})
			continue
		}
		in := book.AuthorInput{FIO: picked.Value}
		if id, err := strconv.Atoi(w.Hidden()); err == nil {
			in.ID = &id
		}
		out = append(out, in)
	}
}

// askGenres runs the tag editor. "-name" removes a tag; an empty answer
// finishes.
func (a *app) askGenres(ctx context.Context) ([]string, error) {
	editor := tags.NewEditor(tags.ModeAdd)
	w := autocomplete.New(a.books.GenreSource(editor))
	for {
		answer, err := a.prompt.Input(ctx, InputConfig{
			Message: "Жанр (-жанр удаляет, пусто, чтобы закончить):",
			Suggest: func(toComplete string) []string {
				return suggester(ctx, w)(tags.SanitizeInput(toComplete))
			},
		})
		if err != nil {
			return nil, err
		}
		answer = strings.TrimSpace(answer)
		switch {
		case answer == "":
			return editor.Submitted(), nil
		case strings.HasPrefix(answer, "-"):
			editor.Remove(strings.TrimPrefix(answer, "-"))
		default:
			editor.Add(tags.SanitizeInput(answer))
		}
		w.Dismiss()
		a.printf("Жанры: %s\n", strings.Join(editor.Tags(), ", "))
	}
}

func (a *app) askInt(ctx context.Context, msg string) (*int, error) {
	s, err := a.prompt.Input(ctx, InputConfig{Message: msg, Validator: optionalNumber(func(s string) error {
		_, err := strconv.Atoi(s)
		return err
	})})
	if err != nil || strings.TrimSpace(s) == "" {
		return nil, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (a *app) askFloat(ctx context.Context, msg string) (*float64, error) {
	s, err := a.prompt.Input(ctx, InputConfig{Message: msg, Validator: optionalNumber(func(s string) error {
		_, err := strconv.ParseFloat(s, 64)
		return err
	})})
	if err != nil || strings.TrimSpace(s) == "" {
		return nil, err
	}
	v, err := strconv.ParseFloat(strings.Replace(strings.TrimSpace(s), ",", ".", 1), 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func optionalNumber(parse func(string) error) func(string) error {
	return func(s string) error {
		s = strings.Replace(strings.TrimSpace(s), ",", ".", 1)
		if s == "" {
			return nil
		}
		if parse(s) != nil {
			return errors.New("введите число")
		}
		return nil
	}
}
