package main

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/selinkorkmz/your-coffee-backend/internal/cart"
	"github.com/selinkorkmz/your-coffee-backend/internal/config"
	"github.com/selinkorkmz/your-coffee-backend/internal/invoice"
	"github.com/selinkorkmz/your-coffee-backend/internal/order"
	"github.com/selinkorkmz/your-coffee-backend/internal/product"
	"github.com/selinkorkmz/your-coffee-backend/internal/review"
	"github.com/selinkorkmz/your-coffee-backend/internal/user"
	"github.com/selinkorkmz/your-coffee-backend/internal/wishlist"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLog)

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()

	mustBootstrapSchema(db)

	userRepo := user.NewPostgresRepository(db)
	userService := user.NewService(userRepo)
	userHandler := user.NewHandler(userService, cfg.JWTSecret, cfg.TokenTTL)

	productRepo := product.NewPostgresRepository(db)
	productService := product.NewService(productRepo)
	productHandler := product.NewHandler(productService)

	cartRepo := cart.NewPostgresRepository(db)
	cartService := cart.NewService(cartRepo)
	cartHandler := cart.NewHandler(cartService)

	wishlistRepo := wishlist.NewPostgresRepository(db)
	wishlistHandler := wishlist.NewHandler(wishlist.NewService(wishlistRepo))

	invoiceRepo := invoice.NewPostgresRepository(db)
	invoiceService := invoice.NewService(invoiceRepo)
	invoiceHandler := invoice.NewHandler(invoiceService)

	orderRepo := order.NewPostgresRepository(db)
	orderService := order.NewService(orderRepo, cartService, invoiceService, nil)
	orderHandler := order.NewHandler(orderService)

	reviewRepo := review.NewPostgresRepository(db)
	reviewHandler := review.NewHandler(review.NewService(reviewRepo))

	userHandler.RegisterPublicRoutes(app)
	productHandler.RegisterPublicRoutes(app)
	reviewHandler.RegisterPublicRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))

	userHandler.RegisterProtectedRoutes(app)
	productHandler.RegisterProtectedRoutes(app)
	cartHandler.RegisterProtectedRoutes(app)
	wishlistHandler.RegisterProtectedRoutes(app)
	// the literal /api/orders/invoices path must be registered before the
	// numeric :orderId order routes
	invoiceHandler.RegisterProtectedRoutes(app)
	orderHandler.RegisterProtectedRoutes(app)
	reviewHandler.RegisterProtectedRoutes(app)

	if err := app.Listen(cfg.Addr); err != nil {
		panic(err)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func requestLog(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	fmt.Printf("URL = %s, Method = %s, Status = %d, Took = %v\n", c.OriginalURL(), c.Method(), c.Response().StatusCode(), time.Since(start))
	return err
}

func mustOpenDB(dbURL string) *sql.DB {
	if dbURL == "" {
		panic("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	return db
}

// mustBootstrapSchema creates the schema idempotently at startup.
func mustBootstrapSchema(db *sql.DB) {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			user_id SERIAL PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			name TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'Customer',
			tax_id TEXT,
			home_address TEXT,
			created_at TEXT,
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			product_id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			category TEXT,
			price numeric NOT NULL DEFAULT 0,
			discounted_price numeric,
			quantity_in_stock INT NOT NULL DEFAULT 0,
			model TEXT,
			serial_number TEXT,
			warranty_status TEXT,
			distributor TEXT,
			created_at TEXT,
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS shopping_cart (
			user_id INT NOT NULL,
			product_id INT NOT NULL,
			quantity INT NOT NULL DEFAULT 0,
			product_name TEXT NOT NULL,
			price numeric NOT NULL DEFAULT 0,
			discounted_price numeric,
			category TEXT,
			added_at TEXT,
			PRIMARY KEY (user_id, product_id)
		)`,
		`CREATE TABLE IF NOT EXISTS wishlist (
			user_id INT NOT NULL,
			product_id INT NOT NULL,
			product_name TEXT NOT NULL,
			price numeric NOT NULL DEFAULT 0,
			discounted_price numeric,
			category TEXT,
			added_at TEXT,
			PRIMARY KEY (user_id, product_id)
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			order_id SERIAL PRIMARY KEY,
			user_id INT NOT NULL,
			total_price numeric NOT NULL DEFAULT 0,
			order_status TEXT NOT NULL DEFAULT 'Processing',
			order_date TEXT,
			delivery_address TEXT,
			payment_status TEXT NOT NULL DEFAULT 'Pending',
			payment_method TEXT,
			transaction_id TEXT,
			transaction_date TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			order_item_id SERIAL PRIMARY KEY,
			order_id INT NOT NULL,
			product_id INT NOT NULL,
			product_name TEXT NOT NULL,
			quantity INT NOT NULL,
			price_at_purchase numeric NOT NULL,
			line_total numeric NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS ratings (
			rating_id SERIAL PRIMARY KEY,
			user_id INT NOT NULL,
			product_id INT NOT NULL,
			comment TEXT,
			rating numeric,
			approved INT NOT NULL DEFAULT 0,
			created_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS invoices (
			invoice_id SERIAL PRIMARY KEY,
			order_id INT NOT NULL,
			user_id INT NOT NULL,
			total_price numeric NOT NULL DEFAULT 0,
			date TEXT
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			panic(err)
		}
	}
}
