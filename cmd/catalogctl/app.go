package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"libadmin/internal/auth"
	"libadmin/internal/author"
	"libadmin/internal/authgate"
	"libadmin/internal/book"
	"libadmin/internal/ingest"
	"libadmin/internal/platform/catalogapi"
	"libadmin/internal/publisher"
)

var errUsage = errors.New("usage")

type listSort struct {
	column string
	desc   bool
}

type app struct {
	out      io.Writer
	prompt   PromptDriver
	store    authgate.Store
	listSort listSort

	auth       *auth.Service
	books      *book.Service
	authors    *author.Service
	publishers *publisher.Service
	csv        *ingest.Service
}

func newApp(apiURL string, timeout time.Duration, store authgate.Store, prompt PromptDriver, out io.Writer) *app {
	client := catalogapi.NewClient(apiURL,
		catalogapi.WithTimeout(timeout),
		catalogapi.WithUserAgent("catalogctl/1.0"),
		catalogapi.WithCredentials(func(context.Context) (string, string) {
			token, _ := store.Token()
			return token, ""
		}),
	)
	books := book.NewService(book.NewAPIRepo(client), client)
	return &app{
		out:        out,
		prompt:     prompt,
		store:      store,
		auth:       auth.NewService(client),
		books:      books,
		authors:    author.NewService(author.NewAPIRepo(client), client, books),
		publishers: publisher.NewService(publisher.NewAPIRepo(client), client, books),
		csv:        ingest.NewService(client),
	}
}

func (a *app) run(ctx context.Context, args []string) error {
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "login":
		return a.login(ctx)
	case "logout":
		return a.logout()
	case "whoami":
		return a.whoami()
	case "list":
		if len(rest) == 0 {
			return a.usageErr("list needs an entity")
		}
		return a.list(ctx, rest[0], strings.Join(rest[1:], " "))
	case "browse":
		if len(rest) != 1 {
			return a.usageErr("browse needs an entity")
		}
		return a.browse(ctx, rest[0])
	case "show":
		if len(rest) != 2 {
			return a.usageErr("show needs an entity and an id")
		}
		return a.show(ctx, rest[0], rest[1])
	case "add-book":
		return a.addBook(ctx)
	case "import":
		return a.transfer(ctx, ingest.Import, authgate.ControlImport)
	case "export":
		return a.transfer(ctx, ingest.Export, authgate.ControlExport)
	default:
		return a.usageErr("unknown command " + cmd)
	}
}

func (a *app) usageErr(msg string) error {
	fmt.Fprintln(a.out, msg)
	return errUsage
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *app) token() string {
	token, err := a.store.Token()
	if err != nil {
		a.printf("Не удалось прочитать сессию: %v\n", err)
		return ""
	}
	return token
}

// allowed reports whether control is enabled for the stored token and
// prints the control's tooltip when it is not.
func (a *app) allowed(g *authgate.Gate, control string) bool {
	st := g.State(a.token(), control)
	if st.Disabled {
		a.printf("%s\n", st.Tooltip)
		return false
	}
	return true
}

func (a *app) login(ctx context.Context) error {
	username, err := a.prompt.Input(ctx, InputConfig{Message: "Логин:", Validator: required})
	if err != nil {
		return err
	}
	password, err := a.prompt.Password(ctx, InputConfig{Message: "Пароль:", Validator: required})
	if err != nil {
		return err
	}
	sess, err := a.auth.Login(ctx, auth.LoginReq{Username: username, Password: password})
	if errors.Is(err, auth.ErrUnauthorized) {
		a.printf("Неверный логин или пароль\n")
		return err
	}
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if err := a.store.SetToken(sess.Token); err != nil {
		return err
	}
	if sess.Subject != "" {
		a.printf("Вход выполнен: %s\n", sess.Subject)
	} else {
		a.printf("Вход выполнен\n")
	}
	return nil
}

func (a *app) logout() error {
	if err := a.store.Clear(); err != nil {
		return err
	}
	a.printf("Вы вышли из системы\n")
	return nil
}

func (a *app) whoami() error {
	sess := auth.Describe(a.token())
	if !sess.SignedIn {
		a.printf("Вход не выполнен\n")
		return nil
	}
	subject := sess.Subject
	if subject == "" {
		subject = "неизвестно"
	}
	a.printf("Пользователь: %s\n", subject)
	if sess.ExpiresAt != nil {
		state := "действует до"
		if sess.ExpiresAt.Before(time.Now()) {
			state = "истёк"
		}
		a.printf("Токен %s %s\n", state, sess.ExpiresAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

func (a *app) transfer(ctx context.Context, d ingest.Direction, control string) error {
	if !a.allowed(authgate.Header, control) {
		return nil
	}
	run, err := a.csv.Run(ctx, d)
	a.printf("%s\n", run.Message)
	return err
}

func required(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("обязательное поле")
	}
	return nil
}
