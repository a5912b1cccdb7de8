package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/sweetshop/internal/api"
	"github.com/dmitrijs2005/sweetshop/internal/catalog"
	"github.com/dmitrijs2005/sweetshop/internal/config"
	"github.com/dmitrijs2005/sweetshop/internal/guard"
	"github.com/dmitrijs2005/sweetshop/internal/localdb"
	"github.com/dmitrijs2005/sweetshop/internal/logging"
	"github.com/dmitrijs2005/sweetshop/internal/models"
	"github.com/dmitrijs2005/sweetshop/internal/notify"
	"github.com/dmitrijs2005/sweetshop/internal/session"

	_ "modernc.org/sqlite"
)

// sessionStore is the session surface the views use. The real
// *session.Store satisfies it; tests provide fakes.
type sessionStore interface {
	Initialize(ctx context.Context) error
	Login(ctx context.Context, token string) error
	Logout(ctx context.Context) error
	State() session.State
	Token() string
}

// authClient covers the authentication endpoints of the API client.
type authClient interface {
	Login(ctx context.Context, email string, password []byte) (string, error)
	Register(ctx context.Context, email string, password []byte) error
}

// catalogService is the coordinator surface used by the storefront and
// admin views.
type catalogService interface {
	Items() []models.Sweet
	Item(id int64) (models.Sweet, bool)
	Load(ctx context.Context, filter *api.Filter) error
	Purchase(ctx context.Context, id int64) error
	Create(ctx context.Context, item models.NewSweet) error
	Update(ctx context.Context, id int64, patch models.SweetPatch) error
	Delete(ctx context.Context, id int64) error
	Restock(ctx context.Context, id int64, amount int) error
}

type App struct {
	config   *config.Config
	session  sessionStore
	guard    *guard.Guard
	catalog  catalogService
	auth     authClient
	notifier *notify.Notifier
	log      logging.Logger
	reader   *bufio.Reader
	closers  []func() error
}

// NewApp is the composition root: it opens the local database, builds the
// API client, the session store, the guard, and the catalog coordinator,
// and threads the session's token into outbound requests.
func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	repos, err := localdb.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	apiClient := api.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout)
	sess := session.NewStore(repos.Metadata, logger)
	apiClient.SetTokenSource(sess.Token)

	notifier := notify.New(c.NotificationTTL, renderNotification)
	svc := catalog.NewService(apiClient, catalog.NewCache(), notifier, logger)

	return &App{
		config:   c,
		session:  sess,
		guard:    guard.New(sess),
		catalog:  svc,
		auth:     apiClient,
		notifier: notifier,
		log:      logger,
		reader:   bufio.NewReader(os.Stdin),
		closers:  []func() error{apiClient.Close, repos.DB.Close},
	}, nil
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

// Close releases the API client and the local database.
func (a *App) Close() {
	for _, fn := range a.closers {
		if err := fn(); err != nil {
			a.log.Warn(context.Background(), "error on close", "error", err)
		}
	}
}

func (a *App) isLoggedIn() bool {
	return a.guard.Status() == guard.StatusAuthenticated
}
