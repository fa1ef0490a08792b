package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/prontix-store/docs"
	"github.com/SergeyBogomolovv/prontix-store/internal/app"
	"github.com/SergeyBogomolovv/prontix-store/internal/catalog"
	"github.com/SergeyBogomolovv/prontix-store/internal/config"
	"github.com/SergeyBogomolovv/prontix-store/internal/entities"
	"github.com/SergeyBogomolovv/prontix-store/internal/handler"
	"github.com/SergeyBogomolovv/prontix-store/internal/postgres"
	"github.com/SergeyBogomolovv/prontix-store/internal/repo"
	"github.com/SergeyBogomolovv/prontix-store/internal/service"
	"github.com/SergeyBogomolovv/prontix-store/internal/sqlite"
	"github.com/SergeyBogomolovv/prontix-store/internal/storage"
	"github.com/SergeyBogomolovv/prontix-store/pkg/cache"
	"github.com/SergeyBogomolovv/prontix-store/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Prontix Store API
// @version         1.0
// @description     Магазин цифровых товаров: каталог, заказы, защищённые скачивания
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	orderRepo, txManager, closeDB, err := newOrderStorage(ctx, logger, conf.Storage, conf.Postgres)
	panicIfErr("failed to init order storage", err)

	files, err := storage.NewPrivateStorage(conf.Catalog.PrivateDir)
	panicIfErr("failed to open private files", err)

	products := catalog.NewFileCatalog(logger, conf.Catalog.ProductsPath)
	orderCache := cache.NewLRUCache[entities.Order](conf.Cache.Capacity, conf.Cache.TTL)

	orderService := service.NewOrderService(logger, txManager, orderRepo, products, orderCache)
	downloadService := service.NewDownloadService(logger, orderRepo, products, files)

	handler.RegisterMetrics()
	httpHandler := handler.NewHTTPHandler(logger, orderService, downloadService, products, conf.Payments.WebhookSecret)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	if conf.Kafka.Enabled {
		app.SetConsumers(handler.NewKafkaHandler(logger, conf.Kafka, orderService))
	}
	app.SetStarters(orderCache, cacheWarmUpAdapter{svc: orderService, count: conf.Cache.Capacity})
	app.SetClosers(files)
	if closeDB != nil {
		app.SetClosers(closeDB)
	}

	panicIfErr("failed to start app", app.Start(ctx))

	select {
	case <-ctx.Done():
	case err := <-app.Err():
		logger.Error("shutting down after server failure", slog.Any("error", err))
	}

	panicIfErr("failed to stop app", app.Stop())
}

// newOrderStorage выбирает бэкенд заказов. Для SQL бэкендов возвращает соединение,
// которое нужно закрыть при остановке.
func newOrderStorage(ctx context.Context, logger *slog.Logger, cfg config.Storage, pg config.Postgres) (service.OrderRepo, trm.Manager, app.Closer, error) {
	switch cfg.Driver {
	case config.StorageDriverPostgres:
		db, err := postgres.New(pg)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := repo.Migrate(ctx, db, repo.DialectPostgres); err != nil {
			db.Close()
			return nil, nil, nil, err
		}
		logger.Info("postgres connected")
		return repo.NewSQLRepo(db, repo.DialectPostgres), trm.NewManager(db), db, nil

	case config.StorageDriverSQLite:
		db, err := sqlite.New(cfg.SQLitePath)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := repo.Migrate(ctx, db, repo.DialectSQLite); err != nil {
			db.Close()
			return nil, nil, nil, err
		}
		logger.Info("sqlite opened", slog.String("path", cfg.SQLitePath), slog.String("driver", sqlite.DriverName))
		return repo.NewSQLRepo(db, repo.DialectSQLite), trm.NewManager(db), db, nil

	case config.StorageDriverFile:
		logger.Info("using file order storage", slog.String("path", cfg.FilePath))
		return repo.NewFileRepo(logger, cfg.FilePath), trm.NewNopManager(), nil, nil
	}

	return nil, nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
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

type warmUpper interface {
	WarmUpCache(ctx context.Context, count int) error
}

type cacheWarmUpAdapter struct {
	svc   warmUpper
	count int
}

func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	return a.svc.WarmUpCache(ctx, a.count)
}
