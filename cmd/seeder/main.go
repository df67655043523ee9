// cmd/seeder/main.go
//
// Seeds the database with demo clients, products and sales so the API and
// the forecast worker have realistic data to operate on.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/dmartins/varejo-be/internal/adapters/db"
)

type seedClient struct {
	Name  string
	Email string
	Phone string
}

type seedProduct struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
}

var demoClients = []seedClient{
	{"Maria Souza", "maria.souza@example.com", "+55 11 91234-0001"},
	{"João Pereira", "joao.pereira@example.com", "+55 11 91234-0002"},
	{"Ana Lima", "ana.lima@example.com", "+55 21 91234-0003"},
	{"Carlos Ferreira", "carlos.ferreira@example.com", "+55 31 91234-0004"},
	{"Beatriz Costa", "beatriz.costa@example.com", "+55 41 91234-0005"},
	{"Rafael Almeida", "rafael.almeida@example.com", "+55 51 91234-0006"},
	{"Fernanda Rocha", "fernanda.rocha@example.com", "+55 61 91234-0007"},
	{"Lucas Martins", "lucas.martins@example.com", "+55 71 91234-0008"},
}

var demoProducts = []seedProduct{
	{"Roasted Coffee Beans 500g", "Medium roast, whole beans", decimal.NewFromFloat(34.90), 120},
	{"Green Tea Box", "25 sachets", decimal.NewFromFloat(12.50), 80},
	{"Artisan Chocolate Bar", "70% cacao, 90g", decimal.NewFromFloat(18.00), 200},
	{"Ceramic Mug", "350ml, stoneware", decimal.NewFromFloat(29.90), 60},
	{"French Press 600ml", "Borosilicate glass", decimal.NewFromFloat(89.90), 35},
	{"Honey Jar 300g", "Wildflower honey", decimal.NewFromFloat(24.50), 90},
	{"Granola Pack 1kg", "Oats, nuts and dried fruit", decimal.NewFromFloat(42.00), 70},
	{"Stainless Steel Bottle", "750ml, insulated", decimal.NewFromFloat(65.00), 45},
}

func main() {
	var (
		salesPerProduct = flag.Int("sales", 12, "Approximate number of sales to create per product")
		historyDays     = flag.Int("history-days", 90, "How far back to spread sale dates")
		seed            = flag.Int64("seed", 2025, "Random seed for reproducible data")
		logLevel        = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
		dryRun          = flag.Bool("dry-run", false, "Preview changes without modifying database")
	)
	flag.Parse()

	var slogLevel slog.Level
	switch *logLevel {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slogLevel}))
	slog.SetDefault(logger)

	dbConfig := db.DefaultConfig()
	dbConfig.Host = getEnv("DB_HOST", dbConfig.Host)
	dbConfig.Port = getEnv("DB_PORT", dbConfig.Port)
	dbConfig.User = getEnv("DB_USER", dbConfig.User)
	dbConfig.Password = getEnv("DB_PASSWORD", dbConfig.Password)
	dbConfig.Database = getEnv("DB_NAME", "varejo_records")
	dbConfig.SSLMode = getEnv("DB_SSL_MODE", dbConfig.SSLMode)
	dbConfig.MaxConnections = 4
	dbConfig.MinConnections = 1

	ctx := context.Background()

	var database *db.Database
	if !*dryRun {
		var err error
		database, err = db.NewDatabase(ctx, dbConfig, logger)
		if err != nil {
			logger.Error("failed to connect to database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer database.Close()
	}

	rng := rand.New(rand.NewSource(*seed))

	clientIDs := make([]uuid.UUID, len(demoClients))
	for i := range demoClients {
		clientIDs[i] = uuid.New()
	}
	productIDs := make([]uuid.UUID, len(demoProducts))
	for i := range demoProducts {
		productIDs[i] = uuid.New()
	}

	batch := &pgx.Batch{}

	for i, c := range demoClients {
		batch.Queue(
			`INSERT INTO clients (id, name, email, phone)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (email) DO NOTHING`,
			clientIDs[i], c.Name, c.Email, c.Phone,
		)
	}

	for i, p := range demoProducts {
		batch.Queue(
			`INSERT INTO products (id, name, description, price, stock_quantity)
			 VALUES ($1, $2, $3, $4, $5)`,
			productIDs[i], p.Name, p.Description, p.Price, p.Stock,
		)
	}

	totalSales := 0
	for pi, product := range demoProducts {
		n := *salesPerProduct/2 + rng.Intn(*salesPerProduct)
		for s := 0; s < n; s++ {
			clientIdx := rng.Intn(len(clientIDs))
			quantity := 1 + rng.Intn(4)
			total := product.Price.Mul(decimal.NewFromInt(int64(quantity)))
			saleDate := time.Now().AddDate(0, 0, -rng.Intn(*historyDays))

			batch.Queue(
				`INSERT INTO sales (id, client_id, product_id, quantity, total, sale_date)
				 VALUES ($1, $2, $3, $4, $5, $6)`,
				uuid.New(), clientIDs[clientIdx], productIDs[pi], quantity, total, saleDate,
			)
			totalSales++
		}
	}

	if *dryRun {
		fmt.Println(strings.Repeat("=", 60))
		fmt.Println("SEEDING PREVIEW (dry run)")
		fmt.Println(strings.Repeat("=", 60))
		fmt.Printf("Clients:  %d\n", len(demoClients))
		fmt.Printf("Products: %d\n", len(demoProducts))
		fmt.Printf("Sales:    %d\n", totalSales)
		fmt.Println("\n[DRY RUN] No changes were made to the database")
		return
	}

	// A single transaction keeps the demo data all-or-nothing: a failing
	// statement rolls back every insert instead of leaving a partial seed.
	err := database.Transaction(ctx, func(tx pgx.Tx) error {
		results := tx.SendBatch(ctx, batch)
		for i := 0; i < batch.Len(); i++ {
			if _, err := results.Exec(); err != nil {
				_ = results.Close()
				return fmt.Errorf("seed statement %d failed: %w", i, err)
			}
		}
		return results.Close()
	})
	if err != nil {
		logger.Error("seed operation rolled back", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("seed operation completed",
		slog.Int("clients", len(demoClients)),
		slog.Int("products", len(demoProducts)),
		slog.Int("sales", totalSales))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
