package main

import (
	"context"
	"fmt"
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/ribgsilva/note-app/app/web/handlers"
	"github.com/ribgsilva/note-app/platform/apm"
	"github.com/ribgsilva/note-app/platform/cache"
	"github.com/ribgsilva/note-app/platform/env"
	"github.com/ribgsilva/note-app/platform/logger"
	"github.com/ribgsilva/note-app/sys"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
)

func main() {
	log, err := logger.New("Notes-Web")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer func(log *zap.SugaredLogger) {
		_ = log.Sync()
	}(log)

	if err := run(log); err != nil {
		log.Errorw("startup", "ERROR", err)
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(log *zap.SugaredLogger) error {

	// =======================================================================================================
	// Setup max procs
	if _, err := maxprocs.Set(); err != nil {
		return fmt.Errorf("maxprocs: %w", err)
	}
	log.Infow("startup", "GOMAXPROCS", runtime.GOMAXPROCS(0))

	// =======================================================================================================
	// Setup configs
	env.Load(log)
	sys.Configs.Http.Port = env.OrDefault(log, "HTTP_PORT", "3000")
	sys.Configs.Http.ReadTimeout = env.DurationDefault(log, "HTTP_READ_TIMEOUT", "5s")
	sys.Configs.Http.IdleTimeout = env.DurationDefault(log, "HTTP_IDLE_TIMEOUT", "120s")
	sys.Configs.Http.WriteTimeout = env.DurationDefault(log, "HTTP_WRITE_TIMEOUT", "15s")
	sys.Configs.Http.ShutdownTimeout = env.DurationDefault(log, "HTTP_SHUTDOWN_TIMEOUT", "60s")
	sys.Configs.Cache.ConnectionURL = env.OrDefault(log, "CACHE_CONNECTION_URL", "localhost:6379")
	sys.Configs.Cache.User = env.OrDefault(log, "CACHE_USER", "")
	sys.Configs.Cache.Pass = env.OrDefault(log, "CACHE_PASS", "")
	sys.Configs.Cache.PingTimeout = env.DurationDefault(log, "CACHE_PING_TIMEOUT", "2s")
	sys.Configs.Cache.OperationTimeout = env.DurationDefault(log, "CACHE_OPERATION_TIMEOUT", "2s")
	sys.Configs.OAuth.URL = env.OrDefault(log, "KEYCLOAK_URL", "http://localhost:8080")
	sys.Configs.OAuth.Realm = env.OrDefault(log, "KEYCLOAK_REALM", "notes-realm")
	sys.Configs.OAuth.ClientID = env.OrDefault(log, "KEYCLOAK_CLIENT_ID", "notes-client")
	sys.Configs.OAuth.ClientSecret = env.OrDefault(log, "KEYCLOAK_CLIENT_SECRET", "")
	sys.Configs.OAuth.RedirectURL = env.OrDefault(log, "OAUTH_REDIRECT_URL", "http://localhost:3000")
	sys.Configs.OAuth.StateTTL = env.DurationDefault(log, "OAUTH_STATE_TTL", "5m")
	sys.Configs.Session.CookieName = env.OrDefault(log, "SESSION_COOKIE_NAME", "notes_session")
	sys.Configs.Session.TTL = env.DurationDefault(log, "SESSION_TTL", "12h")
	sys.Configs.Session.Secure = env.BoolDefault(log, "SESSION_SECURE", "f")
	sys.Configs.NotesAPI.URL = env.OrDefault(log, "BACKEND_URL", "http://localhost:5001")
	sys.Configs.NotesAPI.Timeout = env.DurationDefault(log, "BACKEND_TIMEOUT", "5s")
	sys.Configs.NewRelic.AppName = env.OrDefault(log, "NEW_RELIC_APP_NAME", "notes-web")
	sys.Configs.NewRelic.Licence = env.OrDefault(log, "NEW_RELIC_LICENCE", "")
	sys.Configs.NewRelic.Enabled = env.BoolDefault(log, "NEW_RELIC_ENABLED", "f")
	sys.Configs.NewRelic.ConnectionTimeout = env.DurationDefault(log, "NEW_RELIC_CONNECTION_TIMEOUT", "10s")
	sys.Configs.NewRelic.ShutdownTimeout = env.DurationDefault(log, "NEW_RELIC_SHUTDOWN_TIMEOUT", "10s")

	// =======================================================================================================
	// Setup static resources

	// logger
	sys.R.Log = log

	// redis, holds the sessions and the pending oauth states
	rdb, err := cache.Open(sys.Configs.Cache.ConnectionURL, sys.Configs.Cache.User, sys.Configs.Cache.Pass, sys.Configs.Cache.PingTimeout)
	if err != nil {
		return err
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Errorf("could not close redis conn gracefully: %s", err)
		}
	}()
	sys.R.Cache = rdb

	// outbound calls to the identity provider and the notes api
	sys.R.HTTP = &http.Client{
		Timeout:   sys.Configs.NotesAPI.Timeout,
		Transport: newrelic.NewRoundTripper(http.DefaultTransport),
	}

	// =======================================================================================================
	// NR

	nrApp, err := apm.Start()
	if err != nil {
		return err
	}
	defer nrApp.Shutdown(sys.Configs.NewRelic.ShutdownTimeout)

	// =======================================================================================================
	// Router configuration

	router := gin.New()
	router.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/health"},
	}), gin.Recovery(), nrgin.Middleware(nrApp))

	handlers.MapDefaults(router)
	if err := handlers.MapPages(router); err != nil {
		return fmt.Errorf("templates: %w", err)
	}

	// =======================================================================================================
	// App start and shutdown

	svr := &http.Server{
		Addr:         fmt.Sprintf(":%s", sys.Configs.Http.Port),
		Handler:      router,
		ReadTimeout:  sys.Configs.Http.ReadTimeout,
		WriteTimeout: sys.Configs.Http.WriteTimeout,
		IdleTimeout:  sys.Configs.Http.IdleTimeout,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)
	go func() {
		log.Infow("startup", "status", "started http server", "port", sys.Configs.Http.Port)
		serverErrors <- svr.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Infow("shutdown", "status", "shutdown started", "signal", sig)
		defer log.Infow("shutdown", "status", "shutdown complete", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), sys.Configs.Http.ShutdownTimeout)
		defer cancel()

		if err := svr.Shutdown(ctx); err != nil {
			_ = svr.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}
	return nil
}
