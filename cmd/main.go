package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"duka/internal/app"
	"duka/internal/config"
	"duka/internal/handler"
	"duka/internal/middleware"
	"duka/internal/notifier"
	"duka/internal/postgres"
	"duka/internal/repo"
	"duka/internal/service"
	"duka/pkg/cache"
	"duka/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Duka API
// @version         1.0
// @description     E-commerce backend: catalog, customers and order lifecycle
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	orderRepo := repo.NewOrderRepo(db)
	productRepo := repo.NewProductRepo(db)
	categoryRepo := repo.NewCategoryRepo(db)
	customerRepo := repo.NewCustomerRepo(db)
	userRepo := repo.NewUserRepo(db)

	txManager := trm.NewManager(db)
	orderCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
	kafkaNotifier := notifier.NewKafkaNotifier(logger, conf.Kafka)

	authService := service.NewAuthService(logger, userRepo, customerRepo, conf.Auth.SessionTTL)
	orderService := service.NewOrderService(logger, txManager, orderRepo, customerRepo, productRepo, kafkaNotifier, orderCache)
	catalogService := service.NewCatalogService(logger, productRepo, categoryRepo)
	customerService := service.NewCustomerService(logger, customerRepo, userRepo)
	sessionReaper := service.NewSessionReaper(logger, userRepo, conf.Auth.ReapInterval)

	auth := middleware.Auth(logger, authService)

	application := app.New(logger, conf)
	application.SetHTTPHandlers(
		handler.NewAuthHandler(logger, authService, auth),
		handler.NewOrdersHandler(logger, orderService, auth),
		handler.NewProductsHandler(logger, catalogService, auth),
		handler.NewCategoriesHandler(logger, catalogService, auth),
		handler.NewCustomersHandler(logger, customerService, auth),
	)
	application.SetStarters(orderCache, sessionReaper)
	application.SetClosers(kafkaNotifier)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", application.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", application.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
