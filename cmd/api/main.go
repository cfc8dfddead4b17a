package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"go-laundry-console/internal/config"
	"go-laundry-console/internal/handler"
	"go-laundry-console/internal/middleware"
	"go-laundry-console/internal/model"
	"go-laundry-console/internal/repository"
	"go-laundry-console/internal/service"
	"go-laundry-console/internal/storage"
	"go-laundry-console/internal/store"
	"go-laundry-console/internal/ws"
)

func main() {
	// Structured logger: pretty in dev, JSON in production
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on system env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if cfg.Env == "production" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// 2. Setup Storage Substrate + Record Store
	substrate, err := storage.Open(cfg.StorageDriver, storage.Options{
		DataDir:     cfg.DataDir,
		RedisURL:    cfg.RedisURL,
		DatabaseURL: cfg.DatabaseURL,
	})
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StorageDriver).Msg("failed to open storage")
	}
	st := store.New(substrate)
	log.Info().Str("driver", cfg.StorageDriver).Msg("storage ready")

	// 3. Seed default collections (no-op for already-initialized ones)
	if err := repository.SeedDefaults(st, false); err != nil {
		log.Warn().Err(err).Msg("failed to seed default records")
	}

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	userRepo := repository.NewUserRepo(st)
	outletRepo := repository.NewOutletRepo(st)
	productRepo := repository.NewProductRepo(st)
	customerRepo := repository.NewCustomerRepo(st)
	laundryRepo := repository.NewLaundryRepo(st)
	txRepo := repository.NewTransactionRepo(st)

	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo)
	outletService := service.NewOutletService(outletRepo)
	productService := service.NewProductService(productRepo)
	customerService := service.NewCustomerService(customerRepo)
	laundryService := service.NewLaundryService(laundryRepo, productRepo, txRepo, wsHub)
	reportService := service.NewReportService(txRepo, laundryRepo, outletRepo, productRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	outletHandler := handler.NewOutletHandler(outletService)
	productHandler := handler.NewProductHandler(productService)
	customerHandler := handler.NewCustomerHandler(customerService)
	laundryHandler := handler.NewLaundryHandler(laundryService)
	txHandler := handler.NewTransactionHandler(txRepo)
	reportHandler := handler.NewReportHandler(reportService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Laundry Console v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/reset-password", authHandler.ResetPassword)
	auth.Post("/validate-token", authHandler.ValidateToken)

	// Customer-facing tracking by laundry code
	api.Get("/track/:code", laundryHandler.Track)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(userRepo))

	// Dashboard + Reports
	protected.Get("/dashboard/stats", middleware.RequireFeature(model.FeatureDashboard), reportHandler.GetDashboardStats)
	protected.Get("/reports/summary", middleware.RequireFeature(model.FeatureReports), reportHandler.GetSummary)

	// Outlets
	protected.Get("/outlets", middleware.RequireFeature(model.FeatureOutlets), outletHandler.GetOutlets)
	protected.Get("/outlets/:id", middleware.RequireFeature(model.FeatureOutlets), outletHandler.GetOutlet)
	protected.Post("/outlets", middleware.RequireFeature(model.FeatureOutlets), outletHandler.CreateOutlet)
	protected.Put("/outlets/:id", middleware.RequireFeature(model.FeatureOutlets), outletHandler.UpdateOutlet)
	protected.Delete("/outlets/:id", middleware.RequireFeature(model.FeatureOutlets), outletHandler.DeleteOutlet)

	// Products / Services
	protected.Get("/products", middleware.RequireFeature(model.FeatureProducts), productHandler.GetProducts)
	protected.Get("/products/:id", middleware.RequireFeature(model.FeatureProducts), productHandler.GetProduct)
	protected.Post("/products", middleware.RequireFeature(model.FeatureProducts), productHandler.CreateProduct)
	protected.Put("/products/:id", middleware.RequireFeature(model.FeatureProducts), productHandler.UpdateProduct)
	protected.Delete("/products/:id", middleware.RequireFeature(model.FeatureProducts), productHandler.DeleteProduct)

	// Customers
	protected.Get("/customers", middleware.RequireFeature(model.FeatureCustomers), customerHandler.GetCustomers)
	protected.Get("/customers/:id", middleware.RequireFeature(model.FeatureCustomers), customerHandler.GetCustomer)
	protected.Post("/customers", middleware.RequireFeature(model.FeatureCustomers), customerHandler.CreateCustomer)
	protected.Put("/customers/:id", middleware.RequireFeature(model.FeatureCustomers), customerHandler.UpdateCustomer)
	protected.Delete("/customers/:id", middleware.RequireFeature(model.FeatureCustomers), customerHandler.DeleteCustomer)

	// Users
	protected.Get("/users", middleware.RequireFeature(model.FeatureUsers), userHandler.GetUsers)
	protected.Get("/users/:id", middleware.RequireFeature(model.FeatureUsers), userHandler.GetUser)
	protected.Post("/users", middleware.RequireFeature(model.FeatureUsers), userHandler.CreateUser)
	protected.Put("/users/:id", middleware.RequireFeature(model.FeatureUsers), userHandler.UpdateUser)
	protected.Delete("/users/:id", middleware.RequireFeature(model.FeatureUsers), userHandler.DeleteUser)

	// Laundry Items
	protected.Get("/laundry-items", middleware.RequireFeature(model.FeatureLaundryItems), laundryHandler.GetItems)
	protected.Get("/laundry-items/:id", middleware.RequireFeature(model.FeatureLaundryItems), laundryHandler.GetItem)
	protected.Post("/laundry-items", middleware.RequireFeature(model.FeatureLaundryItems), laundryHandler.CreateItem)
	protected.Put("/laundry-items/:id", middleware.RequireFeature(model.FeatureLaundryItems), laundryHandler.UpdateItem)
	protected.Put("/laundry-items/:id/status", middleware.RequireFeature(model.FeatureLaundryItems), laundryHandler.UpdateStatus)
	protected.Delete("/laundry-items/:id", middleware.RequireFeature(model.FeatureLaundryItems), laundryHandler.DeleteItem)

	// Transactions (read-only; derived by the status-update rule)
	protected.Get("/transactions", middleware.RequireFeature(model.FeatureTransactions), txHandler.GetTransactions)
	protected.Get("/transactions/:id", middleware.RequireFeature(model.FeatureTransactions), txHandler.GetTransaction)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Port)
		log.Info().Msgf("laundry console listening on %s", addr)
		if err := app.Listen(addr); err != nil {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
