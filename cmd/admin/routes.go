package main

import (
	"context"
	"net/http"
	"time"

	"libadmin/internal/auth"
	"libadmin/internal/author"
	"libadmin/internal/book"
	"libadmin/internal/ingest"
	"libadmin/internal/platform/catalogapi"
	"libadmin/internal/publisher"
)

func newRouter(client *catalogapi.Client) *http.ServeMux {
	bookService := book.NewService(book.NewAPIRepo(client), client)
	authorService := author.NewService(author.NewAPIRepo(client), client, bookService)
	publisherService := publisher.NewService(publisher.NewAPIRepo(client), client, bookService)

	bookHandler := book.NewHTTPHandler(bookService)
	authorHandler := author.NewHTTPHandler(authorService)
	publisherHandler := publisher.NewHTTPHandler(publisherService)
	authHandler := auth.NewHTTPHandler(auth.NewService(client))
	csvHandler := ingest.NewHTTPHandler(ingest.NewService(client))

	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := client.Ping(ctx); err != nil {
			http.Error(w, "catalog api not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.HandleFunc("POST /admin/login", authHandler.Login)
	router.HandleFunc("POST /admin/logout", authHandler.Logout)
	router.HandleFunc("GET /admin/session", authHandler.Session)

	router.HandleFunc("GET /admin/books", bookHandler.List)
	router.HandleFunc("POST /admin/books", bookHandler.Create)
	router.HandleFunc("POST /admin/books/sort", bookHandler.Sort)
	router.HandleFunc("POST /admin/books/bulk-delete", bookHandler.BulkDelete)
	router.HandleFunc("GET /admin/books/{isbn}", bookHandler.GetByISBN)
	router.HandleFunc("PUT /admin/books/{isbn}", bookHandler.Update)
	router.HandleFunc("DELETE /admin/books/{isbn}", bookHandler.Delete)

	router.HandleFunc("GET /admin/authors", authorHandler.List)
	router.HandleFunc("POST /admin/authors", authorHandler.Create)
	router.HandleFunc("POST /admin/authors/sort", authorHandler.Sort)
	router.HandleFunc("POST /admin/authors/bulk-delete", authorHandler.BulkDelete)
	router.HandleFunc("GET /admin/authors/{id}", authorHandler.Get)
	router.HandleFunc("PUT /admin/authors/{id}", authorHandler.Update)
	router.HandleFunc("DELETE /admin/authors/{id}", authorHandler.Delete)

	router.HandleFunc("GET /admin/publishers", publisherHandler.List)
	router.HandleFunc("POST /admin/publishers", publisherHandler.Create)
	router.HandleFunc("POST /admin/publishers/sort", publisherHandler.Sort)
	router.HandleFunc("POST /admin/publishers/bulk-delete", publisherHandler.BulkDelete)
	router.HandleFunc("GET /admin/publishers/{name}", publisherHandler.Get)
	router.HandleFunc("PUT /admin/publishers/{name}", publisherHandler.Update)
	router.HandleFunc("DELETE /admin/publishers/{name}", publisherHandler.Delete)

	router.HandleFunc("GET /admin/suggest/authors", authorHandler.Suggest)
	router.HandleFunc("GET /admin/suggest/genres", bookHandler.SuggestGenres)
	router.HandleFunc("GET /admin/suggest/publishers", publisherHandler.Suggest)

	router.HandleFunc("POST /admin/csv/import", csvHandler.Import)
	router.HandleFunc("POST /admin/csv/export", csvHandler.Export)
	router.HandleFunc("GET /admin/csv/runs", csvHandler.Runs)

	return router
}
