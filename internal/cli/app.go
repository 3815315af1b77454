package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/dmitrijs2005/dailytracker/internal/backup"
	"github.com/dmitrijs2005/dailytracker/internal/common"
	"github.com/dmitrijs2005/dailytracker/internal/config"
	"github.com/dmitrijs2005/dailytracker/internal/logging"
	"github.com/dmitrijs2005/dailytracker/internal/models"
	"github.com/dmitrijs2005/dailytracker/internal/repositories/repomanager"
	"github.com/dmitrijs2005/dailytracker/internal/services"
	"github.com/dmitrijs2005/dailytracker/internal/storage"
)

// UserService is the account surface the CLI needs.
type UserService interface {
	CreateUser(ctx context.Context, username, password string) (bool, error)
	Authenticate(ctx context.Context, username, password string) (string, bool, error)
}

type SessionService interface {
	Save(ctx context.Context, userID, username string) (*services.Session, error)
	Resume(ctx context.Context) (*services.Session, error)
	Clear(ctx context.Context) error
}

type ItemService interface {
	Categories() []string
	Add(ctx context.Context, ownerID string, item models.NewItem) (int64, error)
	List(ctx context.Context, ownerID string) ([]models.Item, error)
	SetStatus(ctx context.Context, ownerID string, itemID int64, status models.Status) error
	Toggle(ctx context.Context, ownerID string, itemID int64) (models.Status, error)
	Delete(ctx context.Context, ownerID string, itemID int64) error
	Seed(ctx context.Context, ownerID string, today time.Time, rnd *rand.Rand) (int, error)
}

type Exporter interface {
	Export(ctx context.Context, username string, items []models.Item) (*backup.Result, error)
}

type App struct {
	config   *config.Config
	db       *sql.DB
	log      logging.Logger
	users    UserService
	sessions SessionService
	items    ItemService
	exporter Exporter

	session *services.Session
	reader  *bufio.Reader
	out     io.Writer
	now     func() time.Time
}

// NewApp opens the database named in cfg and builds the services on top of it.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	rm := repomanager.NewSQLiteRepositoryManager()

	db, err := storage.InitDatabase(ctx, cfg.DatabaseDSN, rm)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	return &App{
		config:   cfg,
		db:       db,
		log:      log,
		users:    services.NewUserService(db, rm, log),
		sessions: services.NewSessionService(db, rm, cfg, log),
		items:    services.NewItemService(db, rm, cfg, log),
		exporter: backup.NewExporter(cfg, log),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		now:      time.Now,
	}, nil
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// Run resumes a saved session if there is one and then runs the REPL until
// the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Daily Tracker (type 'help' for commands)")
	a.resume(ctx)
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) resume(ctx context.Context) {
	sess, err := a.sessions.Resume(ctx)
	switch {
	case err == nil:
		a.session = sess
		fmt.Fprintf(a.out, "Welcome back, %s\n", sess.Username)
	case errors.Is(err, common.ErrNoSession):
	case errors.Is(err, common.ErrTokenExpired):
		fmt.Fprintln(a.out, "Session expired, please log in again")
	default:
		a.log.Warn(ctx, "could not resume session", "error", err)
	}
}

// Seed fills the saved session's account with sample items.
func (a *App) Seed(ctx context.Context, rnd *rand.Rand) (int, error) {
	sess, err := a.sessions.Resume(ctx)
	if err != nil {
		if errors.Is(err, common.ErrNoSession) {
			return 0, errors.New("no saved session: log in with the REPL first")
		}
		return 0, err
	}
	n, err := a.items.Seed(ctx, sess.UserID, a.today(), rnd)
	if err != nil {
		return 0, err
	}
	fmt.Fprintf(a.out, "Added %d sample items for %s\n", n, sess.Username)
	return n, nil
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

func (a *App) getStatus() string {
	if a.session == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", a.session.Username)
}

func (a *App) today() time.Time {
	return models.Date(a.now())
}
