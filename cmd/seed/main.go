package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"strconv"
	"time"

	"libadmin/internal/author"
	"libadmin/internal/authgate"
	"libadmin/internal/book"
	"libadmin/internal/config"
	"libadmin/internal/isbn"
	"libadmin/internal/platform/catalogapi"
	"libadmin/internal/publisher"
)

func main() {
	cfg, err := config.LoadClient()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var (
		apiURL = flag.String("api", cfg.APIBaseURL, "Catalog API base URL")
		count  = flag.Int("count", 100, "Number of books to create")
		seed   = flag.Uint64("seed", uint64(time.Now().UnixNano()), "Random seed")
	)
	flag.Parse()

	token := cfg.Token
	if token == "" {
		path := cfg.SessionFile
		if path == "" {
			if path, err = authgate.DefaultPath(); err != nil {
				log.Fatalf("session: %v", err)
			}
		}
		if token, err = authgate.NewFileStore(path).Token(); err != nil {
			log.Fatalf("session: %v", err)
		}
	}
	if !authgate.Present(token) {
		log.Fatal("no token: run `catalogctl login` or set CATALOG_TOKEN")
	}

	client := catalogapi.NewClient(*apiURL,
		catalogapi.WithRateLimit(20, 5),
		catalogapi.WithCredentials(func(context.Context) (string, string) { return token, "" }),
	)
	books := book.NewService(book.NewAPIRepo(client), client)
	s := &seeder{
		books:      books,
		authors:    author.NewService(author.NewAPIRepo(client), client, books),
		publishers: publisher.NewService(publisher.NewAPIRepo(client), client, books),
		rnd:        rand.New(rand.NewPCG(*seed, *seed>>1)),
	}

	log.Printf("Seeding %d books into %s", *count, *apiURL)
	st, err := s.run(context.Background(), *count)
	if err != nil {
		log.Fatalf("seed failed after %d books: %v", st.books, err)
	}
	log.Printf("Successfully created publishers=%d authors=%d books=%d", st.publishers, st.authors, st.books)
}

type stats struct {
	publishers, authors, books int
}

type seeder struct {
	books      *book.Service
	authors    *author.Service
	publishers *publisher.Service
	rnd        *rand.Rand
}

var (
	publisherNames = []string{"Эксмо", "АСТ", "Азбука", "Просвещение", "Наука", "Питер", "Альпина"}
	cities         = []string{"Москва", "Санкт-Петербург", "Казань", "Новосибирск"}
	authorNames    = []string{"Иванов Иван", "Петрова Анна", "Сидоров Пётр", "Кузнецова Мария", "Смирнов Олег", "Орлова Вера"}
	genres         = []string{"Роман", "Фантастика", "Детектив", "История", "Поэзия", "Наука", "Биография"}
	languages      = []string{"русский", "английский", "французский"}
	words          = []string{"Путь", "Тайна", "Свет", "Время", "Мир", "Память", "Море", "Город", "Сад", "Дорога"}
)

func (s *seeder) run(ctx context.Context, count int) (stats, error) {
	var st stats
	for _, name := range publisherNames {
		year := 1900 + s.rnd.IntN(120)
		_, err := s.publishers.Create(ctx, publisher.Form{Name: name, EstablishmentYear: &year, City: pick(s.rnd, cities)})
		if err != nil {
			return st, fmt.Errorf("publisher %s: %w", name, err)
		}
		st.publishers++
	}

	ids := make([]int, 0, len(authorNames))
	for _, fio := range authorNames {
		a, err := s.authors.Create(ctx, author.Form{FIO: fio, Country: "Россия"})
		if err != nil {
			return st, fmt.Errorf("author %s: %w", fio, err)
		}
		ids = append(ids, a.ID)
		st.authors++
	}

	for i := 0; i < count; i++ {
		f := s.bookForm(i, ids)
		if _, err := s.books.Create(ctx, f); err != nil {
			return st, fmt.Errorf("book %s: %w", f.ISBN, err)
		}
		st.books++
		if (i+1)%100 == 0 {
			log.Printf("Created %d/%d books", i+1, count)
		}
	}
	return st, nil
}

func (s *seeder) bookForm(i int, authorIDs []int) book.Form {
	pages := 100 + s.rnd.IntN(800)
	copies := s.rnd.IntN(20)
	cost := float64(200 + s.rnd.IntN(1800))
	f := book.Form{
		ISBN:              isbnFor(i),
		Name:              pick(s.rnd, words) + " " + pick(s.rnd, words) + " " + strconv.Itoa(i+1),
		PublicationYear:   fmt.Sprintf("%d-%02d-%02d", 1950+s.rnd.IntN(70), 1+s.rnd.IntN(12), 1+s.rnd.IntN(28)),
		PublishingCompany: pick(s.rnd, publisherNames),
		PageCount:         &pages,
		CountOfBooks:      &copies,
		Cost:              &cost,
		Language:          pick(s.rnd, languages),
		Genres:            []string{pick(s.rnd, genres)},
	}
	if len(authorIDs) > 0 {
		idx := s.rnd.IntN(len(authorIDs))
		id := authorIDs[idx]
		f.Authors = []book.AuthorInput{{ID: &id, FIO: authorNames[idx%len(authorNames)]}}
	}
	return f
}

// isbnFor returns a valid hyphenated ISBN-13 numbered by i.
func isbnFor(i int) string {
	prefix := fmt.Sprintf("978%09d", i%1_000_000_000)
	for d := 0; d <= 9; d++ {
		if candidate := isbn.Format(prefix + strconv.Itoa(d)); isbn.Valid(candidate) {
			return candidate
		}
	}
	return isbn.Format(prefix + "0")
}

func pick(rnd *rand.Rand, from []string) string {
	return from[rnd.IntN(len(from))]
}
