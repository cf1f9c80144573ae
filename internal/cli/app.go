// Package cli implements the interactive shell over the controller. It is a
// pure presentation caller: it renders the controller's failure taxonomy as
// user-facing messages and never reaches a store directly.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/blogkeeper/internal/blob"
	"github.com/dmitrijs2005/blogkeeper/internal/codec"
	"github.com/dmitrijs2005/blogkeeper/internal/config"
	"github.com/dmitrijs2005/blogkeeper/internal/credentials"
	"github.com/dmitrijs2005/blogkeeper/internal/filex"
	"github.com/dmitrijs2005/blogkeeper/internal/logging"
	"github.com/dmitrijs2005/blogkeeper/internal/services"
)

// defaultUsers are the development credentials seeded when no users file is
// configured.
var defaultUsers = map[string]string{
	"user": "123456",
	"ali":  "@G00dPassw0rd",
}

type App struct {
	cfg        *config.Config
	controller *services.Controller
	db         *sql.DB
	reader     *bufio.Reader
	log        logging.Logger
}

// NewApp wires the credential store, the configured blob backend and the
// controller together.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := newLogger(cfg.LogLevel)

	creds, err := loadCredentials(cfg)
	if err != nil {
		return nil, err
	}

	a := &App{cfg: cfg, reader: bufio.NewReader(os.Stdin), log: log}

	store, err := a.openBlobStore(ctx)
	if err != nil {
		return nil, err
	}

	a.controller = services.NewController(ctx, creds, store, codec.JSON{}, cfg.Autosave, log)
	return a, nil
}

func newLogger(level string) logging.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	l := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().
		Level(lvl)
	return logging.NewZerologLogger(l)
}

func loadCredentials(cfg *config.Config) (*credentials.Store, error) {
	if cfg.UsersFile == "" {
		return credentials.FromPlain(defaultUsers), nil
	}
	return credentials.LoadFile(cfg.UsersFile)
}

func (a *App) openBlobStore(ctx context.Context) (blob.Store, error) {
	switch a.cfg.Backend {
	case config.BackendFile:
		return blob.NewFileStore(a.cfg.DataDir, ".json")

	case config.BackendSQLite:
		if err := filex.EnsureDir(a.cfg.DataDir); err != nil {
			return nil, err
		}
		db, err := blob.InitSQLite(ctx, filepath.Join(a.cfg.DataDir, "blogkeeper.db"))
		if err != nil {
			return nil, err
		}
		a.db = db
		return blob.NewSQLiteStore(db), nil

	case config.BackendMemory:
		return blob.NewMemStore(), nil

	default:
		return nil, fmt.Errorf("unknown blob backend %q", a.cfg.Backend)
	}
}

// Run drives the REPL until the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	printlnFn("Blogkeeper CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

// Close releases the sqlite handle when that backend is in use.
func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

// status is the prompt fragment: the user name and, when a blog is selected
// for editing, its id.
func (a *App) status() string {
	if !a.controller.LoggedIn() {
		return "anonymous"
	}
	if id, ok := a.controller.CurrentBlogID(); ok {
		return fmt.Sprintf("%s [blog %d]", a.controller.Username(), id)
	}
	return a.controller.Username()
}

func (a *App) isLoggedIn() bool {
	return a.controller.LoggedIn()
}
