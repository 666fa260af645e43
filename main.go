package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"badmintonpro/internal/fixtures"
	"badmintonpro/internal/handlers"
	"badmintonpro/internal/middleware"
	"badmintonpro/internal/models"
	"badmintonpro/internal/repositories"
	"badmintonpro/internal/services"
	"badmintonpro/internal/store"
	"badmintonpro/pkg/rabbitmq"
)

// repoSet bundles the repository adapters selected at startup. Either all
// of them are database-backed or all of them are in-memory demo stores.
type repoSet struct {
	products repositories.ProductRepository
	orders   repositories.OrderRepository
	reviews  repositories.ReviewRepository
	images   repositories.ImageRepository
	carts    repositories.CartRepository
	wishes   repositories.WishlistRepository
	users    repositories.UserRepository
}

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DB_DRIVER", "") // empty runs the in-memory demo store
	viper.SetDefault("DATABASE_DSN", "")
	viper.SetDefault("JWT_SECRET", "change-me-in-production")
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD", "admin123")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("ASSISTANT_API_URL", "")
	viper.SetDefault("ASSISTANT_API_KEY", "")
	viper.AutomaticEnv() // Load environment variables

	appPort := viper.GetString("APP_PORT")

	// --- Repositories ---
	// The persistence adapter is chosen once here; everything downstream
	// only sees the repository interfaces.
	repos := buildRepositories(viper.GetString("DB_DRIVER"), viper.GetString("DATABASE_DSN"))

	// --- RabbitMQ (optional) ---
	var publisher services.Publisher
	var mqClient *rabbitmq.Client
	if url := viper.GetString("RABBITMQ_URL"); url != "" {
		client, err := rabbitmq.NewClient(rabbitmq.Config{URL: url})
		if err != nil {
			log.Printf("Warning: RabbitMQ unavailable, order events disabled: %v", err)
		} else {
			mqClient = client
			publisher = client
			defer mqClient.Close()
		}
	}

	// --- Assistant provider (optional) ---
	var provider services.AssistantProvider
	if url := viper.GetString("ASSISTANT_API_URL"); url != "" {
		provider = services.NewHTTPProvider(url, viper.GetString("ASSISTANT_API_KEY"))
	}

	// --- Services ---
	catalogService := services.NewCatalogService(repos.products, fixtures.Products)
	reviewService := services.NewReviewService(repos.reviews, repos.products)
	imageService := services.NewImageService(repos.images, repos.products)
	orderService := services.NewOrderService(repos.orders, repos.products, publisher)
	adminService := services.NewAdminService(repos.products, repos.orders, reviewService, publisher)
	cartService := services.NewCartService(repos.carts, repos.wishes, repos.products)
	authService := services.NewAuthService(
		repos.users,
		viper.GetString("JWT_SECRET"),
		viper.GetString("ADMIN_USERNAME"),
		viper.GetString("ADMIN_PASSWORD"),
	)
	assistantService := services.NewAssistantService(catalogService, provider)

	sessions := store.NewSessionManager()

	// --- Handlers ---
	catalogHandler := handlers.NewCatalogHandler(catalogService, reviewService, imageService)
	cartHandler := handlers.NewCartHandler(sessions, catalogService, cartService)
	orderHandler := handlers.NewOrderHandler(orderService, sessions)
	authHandler := handlers.NewAuthHandler(authService)
	adminHandler := handlers.NewAdminHandler(adminService, imageService)
	assistantHandler := handlers.NewAssistantHandler(assistantService)

	// --- Fiber App ---
	app := fiber.New()
	app.Use(logger.New()) // Request logger
	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, " + handlers.SessionHeader,
	}))

	authRequired := middleware.AuthRequired(authService)
	adminRequired := middleware.AdminRequired(authService)
	optionalAuth := middleware.OptionalAuth(authService)

	apiV1 := app.Group("/api/v1")
	catalogHandler.RegisterRoutes(apiV1)
	cartHandler.RegisterRoutes(apiV1, authRequired)
	orderHandler.RegisterRoutes(apiV1, optionalAuth, authRequired)
	authHandler.RegisterRoutes(apiV1, authRequired)
	adminHandler.RegisterRoutes(apiV1, adminRequired)
	assistantHandler.RegisterRoutes(apiV1)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- RabbitMQ Consumer ---
	if mqClient != nil {
		go func() {
			log.Println("Starting RabbitMQ consumer for orders...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received order event (tag %d): %s", msg.DeliveryTag, string(msg.Body))
				return nil // Return nil to acknowledge
			}
			if consumerErr := mqClient.ConsumeOrderEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// buildRepositories selects the persistence adapters. With a configured
// database driver the GORM adapters are used; otherwise the in-memory
// demo stores are seeded from the fixture catalog.
func buildRepositories(driver, dsn string) repoSet {
	switch driver {
	case "postgres", "sqlite":
		db := openDatabase(driver, dsn)
		seedDatabase(db)
		return repoSet{
			products: repositories.NewGORMProductRepository(db),
			orders:   repositories.NewGORMOrderRepository(db),
			reviews:  repositories.NewGORMReviewRepository(db),
			images:   repositories.NewGORMImageRepository(db),
			carts:    repositories.NewGORMCartRepository(db),
			wishes:   repositories.NewGORMWishlistRepository(db),
			users:    repositories.NewGORMUserRepository(db),
		}
	case "":
		log.Println("No DB_DRIVER configured, running with the in-memory demo store")
		return repoSet{
			products: repositories.NewMemoryProductRepository(fixtures.Products),
			orders:   repositories.NewMemoryOrderRepository(fixtures.Orders),
			reviews:  repositories.NewMemoryReviewRepository(fixtures.Reviews),
			images:   repositories.NewMemoryImageRepository(nil),
			carts:    repositories.NewMemoryCartRepository(),
			wishes:   repositories.NewMemoryWishlistRepository(),
			users:    repositories.NewMemoryUserRepository(),
		}
	default:
		log.Fatalf("Unsupported DB_DRIVER %q (want postgres, sqlite or empty)", driver)
		return repoSet{}
	}
}

func openDatabase(driver, dsn string) *gorm.DB {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		if dsn == "" {
			dsn = "badmintonpro.db"
		}
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Product{},
		&models.ProductImage{},
		&models.Order{},
		&models.OrderItem{},
		&models.Review{},
		&models.CartEntry{},
		&models.WishlistEntry{},
		&models.User{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	return db
}

// seedDatabase loads the fixture catalog into an empty database so a fresh
// deployment starts with a browsable shop.
func seedDatabase(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		log.Printf("Warning: could not check product count for seeding: %v", err)
		return
	}
	if count > 0 {
		return
	}

	log.Println("Seeding database with the demo catalog...")
	for i := range fixtures.Products {
		p := fixtures.Products[i]
		if err := db.Create(&p).Error; err != nil {
			log.Printf("Error seeding product %s: %v", p.Name, err)
		}
	}
	for i := range fixtures.Reviews {
		r := fixtures.Reviews[i]
		if err := db.Create(&r).Error; err != nil {
			log.Printf("Error seeding review %s: %v", r.ID, err)
		}
	}
}
