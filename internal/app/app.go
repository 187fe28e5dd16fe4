package app

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/saheli/saheli/internal/config"
	"github.com/saheli/saheli/internal/database"
	log "github.com/sirupsen/logrus"
)

// Application wires configuration, database, router, and server lifecycle.
type Application struct {
	cfg    config.Application
	router *mux.Router
	srv    *http.Server
}

// NewApplication constructs the full HTTP application, ready to Run().
func NewApplication() (*Application, error) {
	cfg, err := config.Load("./config/application.yaml")
	if err != nil {
		return nil, err
	}

	// DB + migrations
	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, err
	}
	// db will be closed when server shuts down; defer not possible here, leave to process exit.
	if err := database.Migrate(db); err != nil {
		return nil, err
	}

	r := mux.NewRouter()

	// Build dependencies (services, handlers...)
	deps := BuildDependencies(db, cfg)

	// Routes
	RegisterRoutes(r, deps)

	// The advisor call is the slowest thing a request can do; leave room for
	// it before the server gives up on writing the response.
	writeTimeout := time.Duration(cfg.Gemini.TimeoutSeconds+15) * time.Second

	srv := &http.Server{
		Handler:      CorsMiddleware(cfg.Cors, r),
		Addr:         cfg.Server.Addr,
		WriteTimeout: writeTimeout,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Application{cfg: cfg, router: r, srv: srv}, nil
}

// Run starts the HTTP server and blocks.
func (a *Application) Run() error {
	log.Infof("Starting server on %s", a.srv.Addr)
	return a.srv.ListenAndServe()
}
