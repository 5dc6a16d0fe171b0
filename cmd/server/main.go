package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ltnam/fashion-store/internal/adapter/auth"
	"github.com/ltnam/fashion-store/internal/adapter/handler"
	"github.com/ltnam/fashion-store/internal/adapter/storage"
	"github.com/ltnam/fashion-store/internal/config"
	"github.com/ltnam/fashion-store/internal/core/service"
	"github.com/ltnam/fashion-store/internal/obs"
	"github.com/ltnam/fashion-store/internal/port"
)

// store is the full persistence surface every backend provides.
type store interface {
	port.ProductRepository
	port.OrderRepository
	port.UserRepository
	port.ReviewRepository
	port.StockLedger
}

func main() {
	cfg := config.Load()
	obs.InitLogger(slog.LevelInfo)
	log := obs.Logger

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		log.Error("store init failed", "backend", cfg.StoreBackend, "error", err)
		os.Exit(1)
	}
	defer closeStore()
	log.Info("store ready", "backend", cfg.StoreBackend)

	var ledger port.StockLedger = db
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			PoolSize: 100,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Error("redis ping failed", "addr", cfg.RedisAddr, "error", err)
			os.Exit(1)
		}
		defer rdb.Close()

		wt := storage.NewWriteThroughLedger(storage.NewRedisLedger(rdb), db)
		if err := wt.SyncStock(ctx, db); err != nil {
			log.Error("redis stock sync failed", "error", err)
			os.Exit(1)
		}
		ledger = wt
		log.Info("redis ledger front enabled", "addr", cfg.RedisAddr)
	}

	inventory := service.NewInventoryService(ledger)
	orders := service.NewOrderService(db, db, inventory)
	products := service.NewProductService(db, inventory)
	users := service.NewUserService(db, cfg.BcryptCost)
	reviews := service.NewReviewService(db, db)
	tokens := auth.NewTokenStore(cfg.TokenTTL)

	app := handler.NewApp(orders, products, users, reviews, tokens)
	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: handler.NewRouter(app),
	}

	go func() {
		log.Info("http server listening", "addr", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.Error("http server error", "error", err)
			cancel()
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown error", "error", err)
	}
	log.Info("http server stopped")
}

// openStore wires the durable backend selected by configuration and
// returns it with a close func for connection cleanup.
func openStore(ctx context.Context, cfg config.Config) (store, func(), error) {
	switch cfg.StoreBackend {
	case "mongo":
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			return nil, nil, err
		}
		if err := client.Ping(ctx, nil); err != nil {
			client.Disconnect(ctx)
			return nil, nil, err
		}
		ms := storage.NewMongoStore(client.Database(cfg.MongoDB))
		if err := ms.EnsureIndexes(ctx); err != nil {
			client.Disconnect(ctx)
			return nil, nil, err
		}
		return ms, func() { client.Disconnect(context.Background()) }, nil

	case "mysql":
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			return nil, nil, err
		}
		db.SetMaxOpenConns(50)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return storage.NewMySQLStore(db), func() { db.Close() }, nil

	default:
		return storage.NewMemoryStore(), func() {}, nil
	}
}
