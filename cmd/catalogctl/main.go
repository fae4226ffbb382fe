package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"libadmin/internal/authgate"
	"libadmin/internal/config"
)

const usage = `Usage: catalogctl [flags] <command> [args]

Commands:
  login                       sign in and store the token
  logout                      forget the stored token
  whoami                      show the stored session
  list <entity> [query]       print a table (books, authors, publishers)
  browse <entity>             search, sort, select and delete interactively
  show <entity> <id>          print one record
  add-book                    enter a new book
  import                      run the catalog's CSV import
  export                      run the catalog's CSV export

Flags:
`

func main() {
	cfg, err := config.LoadClient()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var (
		apiURL   = flag.String("api", cfg.APIBaseURL, "Catalog API base URL")
		session  = flag.String("session", cfg.SessionFile, "Session file (default: user config dir)")
		timeout  = flag.Duration("timeout", cfg.APITimeout, "Catalog API request timeout")
		sortCol  = flag.String("sort", "", "Sort column for list")
		sortDesc = flag.Bool("desc", false, "Sort descending for list")
	)
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	path := *session
	if path == "" {
		p, err := authgate.DefaultPath()
		if err != nil {
			log.Fatalf("session: %v", err)
		}
		path = p
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := newApp(*apiURL, *timeout, authgate.NewFileStore(path), surveyDriver{}, os.Stdout)
	a.listSort = listSort{column: *sortCol, desc: *sortDesc}
	if err := a.run(ctx, flag.Args()); err != nil {
		if errors.Is(err, ErrAborted) || errors.Is(err, errUsage) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
