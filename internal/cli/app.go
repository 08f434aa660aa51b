package cli

import (
	"bufio"
	"context"
	"database/sql"
	"log"
	"log/slog"
	"os"

	"github.com/bestpacific/induction/internal/assistant"
	"github.com/bestpacific/induction/internal/config"
	"github.com/bestpacific/induction/internal/localdb"
	"github.com/bestpacific/induction/internal/logging"
	"github.com/bestpacific/induction/internal/session"
	"github.com/bestpacific/induction/internal/store"

	_ "modernc.org/sqlite"
)

// App wires the portal's components behind the interactive surface.
type App struct {
	config    *config.Config
	db        *sql.DB
	store     *store.Store
	session   *session.Session
	assistant *assistant.Gateway
	reader    *bufio.Reader
}

// NewApp opens the local state database, loads the store and builds the
// assistant gateway.
func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	db, err := localdb.Open(ctx, c.DatabasePath)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	st := store.New(db, logger)
	if err := st.Load(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	gen := assistant.NewGeminiClient(c.AssistantEndpoint, c.AssistantModel, c.AssistantAPIKey, c.AssistantTimeout)
	gw := assistant.NewGateway(gen, logger)

	return &App{
		config:    c,
		db:        db,
		store:     st,
		session:   session.New(),
		assistant: gw,
		reader:    bufio.NewReader(os.Stdin),
	}, nil
}

// Run starts the interactive loop and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	log.Println("Welcome to the Best Pacific Employee Induction Portal (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	runREPL(ctx, a, a.getStatus, scanner)
}

// Close releases the database handle.
func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) isAdminView() bool {
	return a.session.View() == session.ViewAdmin
}

// getStatus renders the prompt suffix: the current user's email and view.
func (a *App) getStatus() string {
	u, ok := a.session.User()
	if !ok {
		return ""
	}
	return "(" + u.Email + " " + string(a.session.View()) + ")"
}
