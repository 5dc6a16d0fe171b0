// Command seed loads demo users and products into the configured store.
package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/ltnam/fashion-store/internal/adapter/storage"
	"github.com/ltnam/fashion-store/internal/config"
	"github.com/ltnam/fashion-store/internal/core/domain"
	"github.com/ltnam/fashion-store/internal/core/service"
	"github.com/ltnam/fashion-store/internal/obs"
	"github.com/ltnam/fashion-store/internal/port"
)

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

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		log.Error("store init failed", "backend", cfg.StoreBackend, "error", err)
		os.Exit(1)
	}
	defer closeStore()

	users := service.NewUserService(db, cfg.BcryptCost)
	products := service.NewProductService(db, service.NewInventoryService(db))

	// Register only issues customer accounts, so the admin is inserted
	// through the repository directly.
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), cfg.BcryptCost)
	if err != nil {
		log.Error("hash admin password failed", "error", err)
		os.Exit(1)
	}
	admin := domain.User{
		ID:           uuid.NewString(),
		Name:         "Store Admin",
		Email:        "admin@fashionstore.local",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		Phone:        "9000000001",
		CreatedAt:    time.Now(),
	}
	if err := db.CreateUser(ctx, admin); err != nil {
		log.Error("seed admin failed", "error", err)
		os.Exit(1)
	}
	if _, err := users.Register(ctx, "Demo Customer", "customer@fashionstore.local", "customer123", "9000000002"); err != nil {
		log.Error("seed customer failed", "error", err)
		os.Exit(1)
	}

	for _, p := range demoProducts() {
		if _, err := products.Create(ctx, p); err != nil {
			log.Error("seed product failed", "name", p.Name, "error", err)
			os.Exit(1)
		}
	}

	log.Info("seed complete", "products", len(demoProducts()), "users", 2)
}

func demoProducts() []domain.Product {
	return []domain.Product{
		{
			Name:        "Classic Cotton T-Shirt",
			Description: "Soft breathable cotton tee for everyday wear.",
			Category:    domain.CategoryMen,
			Price:       decimal.NewFromFloat(29.99),
			Images:      []string{"/images/tshirt-white.jpg"},
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"White", "Black"},
			Variants: []domain.Variant{
				{Size: "S", Color: "White", SKU: "TS-W-S", Stock: 20},
				{Size: "M", Color: "White", SKU: "TS-W-M", Stock: 25},
				{Size: "L", Color: "White", SKU: "TS-W-L", Stock: 25},
				{Size: "M", Color: "Black", SKU: "TS-B-M", Stock: 15},
				{Size: "XL", Color: "Black", SKU: "TS-B-XL", Stock: 10},
			},
		},
		{
			Name:        "Floral Summer Dress",
			Description: "Lightweight dress with an all-over floral print.",
			Category:    domain.CategoryWomen,
			Price:       decimal.NewFromFloat(59.99),
			Images:      []string{"/images/dress-floral.jpg"},
			Sizes:       []string{"S", "M", "L"},
			Colors:      []string{"Blue", "Red"},
			Variants: []domain.Variant{
				{Size: "S", Color: "Blue", SKU: "DR-BL-S", Stock: 12},
				{Size: "M", Color: "Blue", SKU: "DR-BL-M", Stock: 18},
				{Size: "M", Color: "Red", SKU: "DR-RD-M", Stock: 9},
				{Size: "L", Color: "Red", SKU: "DR-RD-L", Stock: 7},
			},
		},
		{
			Name:        "Kids Denim Jacket",
			Description: "Durable denim jacket sized for kids.",
			Category:    domain.CategoryKids,
			Price:       decimal.NewFromFloat(44.50),
			Images:      []string{"/images/kids-denim.jpg"},
			Sizes:       []string{"4Y", "6Y", "8Y"},
			Colors:      []string{"Blue"},
			Variants: []domain.Variant{
				{Size: "4Y", Color: "Blue", SKU: "KD-BL-4", Stock: 10},
				{Size: "6Y", Color: "Blue", SKU: "KD-BL-6", Stock: 10},
				{Size: "8Y", Color: "Blue", SKU: "KD-BL-8", Stock: 8},
			},
		},
		{
			Name:        "Leather Belt",
			Description: "Full-grain leather belt with a brushed buckle.",
			Category:    domain.CategoryAccessories,
			Price:       decimal.NewFromFloat(24.00),
			Images:      []string{"/images/belt-brown.jpg"},
			Sizes:       []string{"One Size"},
			Colors:      []string{"Brown", "Black"},
			Variants: []domain.Variant{
				{Size: "One Size", Color: "Brown", SKU: "BL-BR", Stock: 30},
				{Size: "One Size", Color: "Black", SKU: "BL-BK", Stock: 30},
			},
		},
	}
}

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
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return storage.NewMySQLStore(db), func() { db.Close() }, nil

	default:
		return storage.NewMemoryStore(), func() {}, nil
	}
}
