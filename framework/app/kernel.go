package app

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/km-arc/go-scoped/framework/config"
	"github.com/km-arc/go-scoped/framework/logging"
	"github.com/km-arc/go-scoped/framework/routing"
	"github.com/km-arc/go-scoped/framework/scope"
	"github.com/km-arc/go-scoped/framework/service"
)

// Application is the top-level application object: configuration, logger,
// router, and the service Provider shared by every request.
type Application struct {
	Config   *config.Config
	Log      zerolog.Logger
	Router   *routing.Router
	Services *service.Provider
}

// New bootstraps the application. The request scope and the service
// provider middleware are installed before anything else, so every
// route-specific middleware and handler can resolve services.
//
//	application := app.New() // loads .env automatically
//	application.Services.RegisterGlobal("db", openDB)
//	application.Router.Get("/", handler)
//	application.Run()
func New(envFiles ...string) *Application {
	cfg := config.Load(envFiles...)
	log := logging.New(cfg.Log)
	provider := service.NewProvider()

	router := routing.New()
	router.Middleware(
		scope.Middleware,
		service.Middleware(provider),
		routing.RequestLogger(log),
	)

	return &Application{
		Config:   cfg,
		Log:      log,
		Router:   router,
		Services: provider,
	}
}

// Run starts the HTTP server on APP_PORT (default 8000).
func (a *Application) Run() {
	addr := ":" + a.Config.App.Port
	a.Log.Info().
		Str("app", a.Config.App.Name).
		Str("env", a.Config.App.Env).
		Str("addr", addr).
		Msg("server starting")

	if err := http.ListenAndServe(addr, a.Router); err != nil {
		a.Log.Fatal().Err(err).Msg("server error")
	}
}

// Environment returns the APP_ENV value.
func (a *Application) Environment() string { return a.Config.App.Env }
func (a *Application) IsLocal() bool       { return a.Environment() == "local" }
func (a *Application) IsProduction() bool  { return a.Environment() == "production" }
func (a *Application) IsTesting() bool     { return a.Environment() == "testing" }
func (a *Application) IsDebug() bool       { return a.Config.App.Debug }
