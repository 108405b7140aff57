package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newsboard/internal/handlers"
	"newsboard/internal/logger"
	"newsboard/internal/repository"
	"newsboard/internal/server"
	"newsboard/internal/service"

	"github.com/spf13/viper"
)

const (
	defaultDBPath      = "db/news.sqlite"
	defaultSessionDays = 365
	defaultUploadDir   = "static/images"
	hoursPerDay        = 24
)

func main() {
	// load config.yml first so the log level comes from it
	if err := loadConfig(); err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	log := logger.Get(viper.GetString("log.level"))

	// open DB
	db, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			log.Fatalw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(db)
	services := service.NewService(repos, authConfig(), weatherConfig())
	apiHandler := handlers.NewHandler(services, log, handlerConfig())

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", defaultDBPath)
		dbPath = defaultDBPath
	}
	return repository.InitDB(dbPath)
}

func authConfig() service.AuthConfig {
	days := viper.GetInt("auth.session_days")
	if days <= 0 {
		days = defaultSessionDays
	}
	return service.AuthConfig{
		SigningKey: viper.GetString("auth.signing_key"),
		SessionTTL: time.Duration(days) * hoursPerDay * time.Hour,
	}
}

func weatherConfig() service.WeatherConfig {
	return service.WeatherConfig{
		URL:     viper.GetString("weather.url"),
		APIKey:  viper.GetString("weather.api_key"),
		Timeout: viper.GetDuration("weather.timeout"),
	}
}

func handlerConfig() handlers.Config {
	uploadDir := viper.GetString("upload.dir")
	if uploadDir == "" {
		uploadDir = defaultUploadDir
	}
	days := viper.GetInt("auth.session_days")
	if days <= 0 {
		days = defaultSessionDays
	}
	return handlers.Config{
		UploadDir:     uploadDir,
		SessionMaxAge: days * hoursPerDay * 60 * 60,
	}
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
