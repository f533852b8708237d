package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/viper"

	_ "bakehouse/docs"
	"bakehouse/internal/catalog"
	"bakehouse/internal/handlers"
	"bakehouse/internal/logger"
	"bakehouse/internal/repository"
	"bakehouse/internal/repository/db"
	"bakehouse/internal/server"
	"bakehouse/internal/service"
	"bakehouse/internal/stream"
)

// Fallbacks for settings configs/config.yml leaves unset.
const (
	defaultPort            = "8080"
	defaultOvenCount       = 3
	defaultHistoryCapacity = 100
	defaultSimTick         = 1 * time.Second
)

// @title           Bakehouse
// @version         1.0
// @description     A bakery speaking the FLAN protocol: reserve an oven, submit an order, watch it bake.
// @BasePath        /

func main() {
	// load config.yml before the logger so log_level applies
	if err := loadConfig(); err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}
	log := logger.Get(viper.GetString("log_level"))

	// open the event store
	dbConn, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := dbConn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(dbConn, ovenCount(), historyCapacity())
	book, err := buildCatalog()
	if err != nil {
		log.Fatalw("invalid recipe in config", "err", err)
	}
	broker := stream.NewBroker(brokerOptions()...)
	services := service.NewService(repos, book, broker, log)
	apiHandler := handlers.NewHandler(services, log, rateLimit())

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// start the oven temperature simulator (via composed service)
	go services.Simulator.Run(ctx, defaultSimTick)

	// start HTTP server
	port := viper.GetString("port")
	if port == "" {
		port = defaultPort
	}
	srv := &server.Server{}
	runHTTPServer(srv, port, apiHandler, log)

	log.Infow("kitchen open",
		"port", port,
		"ovens", ovenCount(),
		"recipes", book.Len(),
		"history_capacity", historyCapacity(),
	)

	// graceful shutdown
	waitForShutdown(cancel, srv, broker, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}

// openDB initializes the SQLite event store using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dsn := viper.GetString("db.dsn")
	if dsn == "" {
		log.Infow("db.dsn not set in config; keeping the event history in memory")
	}
	return db.InitDB(dsn)
}

func ovenCount() int {
	if n := viper.GetInt("kitchen.ovens"); n > 0 {
		return n
	}
	return defaultOvenCount
}

func historyCapacity() int {
	if n := viper.GetInt("kitchen.history_capacity"); n > 0 {
		return n
	}
	return defaultHistoryCapacity
}

// brokerOptions translates stream settings from config.
func brokerOptions() []stream.BrokerOption {
	var opts []stream.BrokerOption
	if n := viper.GetInt("stream.buffer"); n > 0 {
		opts = append(opts, stream.WithBufferSize(n))
	}
	if d := viper.GetDuration("stream.heartbeat"); d > 0 {
		opts = append(opts, stream.WithHeartbeat(d))
	}
	return opts
}

func rateLimit() handlers.RateLimit {
	return handlers.RateLimit{
		RPS:   viper.GetFloat64("rate_limit.rps"),
		Burst: viper.GetInt("rate_limit.burst"),
	}
}

// buildCatalog loads extra recipes from config on top of the house book.
func buildCatalog() (*catalog.Catalog, error) {
	var extras []catalog.ExtraRecipe
	if err := viper.UnmarshalKey("recipes", &extras); err != nil {
		return nil, err
	}
	converted := make([]catalog.Recipe, 0, len(extras))
	for _, e := range extras {
		converted = append(converted, catalog.FromExtra(e))
	}
	return catalog.New(converted...)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, broker *stream.Broker, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("closing the kitchen...")

	// stop background goroutines and detach feed subscribers, so the
	// streaming handlers return and Shutdown can drain
	cancel()
	broker.Close()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
