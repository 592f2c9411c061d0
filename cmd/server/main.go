// Package main is the entry point for the API server. It initializes the
// databases, sets up the HTTP app and middleware, schedules the maturity
// sweep and starts listening.
package main

import (
	"context"
	"log"
	"strconv"
	"time"

	"vestra/internal/config"
	"vestra/internal/jobs"
	"vestra/internal/repositories"
	"vestra/internal/routes"
	"vestra/internal/services/mailer"
	"vestra/internal/services/notify"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/robfig/cron/v3"
)

func main() {
	config.LoadEnv()

	// Refuse to boot without a signing secret instead of failing every login.
	config.MustGetEnv("JWT_SECRET")

	if err := repositories.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	sqlDB, err := repositories.DB.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	maxIdleConns, _ := strconv.Atoi(config.GetEnv("DB_MAX_IDLE_CONNS", "10"))
	maxOpenConns, _ := strconv.Atoi(config.GetEnv("DB_MAX_OPEN_CONNS", "100"))
	connMaxLifetime, _ := time.ParseDuration(config.GetEnv("DB_CONN_MAX_LIFETIME", "1h"))
	connMaxIdleTime, _ := time.ParseDuration(config.GetEnv("DB_CONN_MAX_IDLE_TIME", "30m"))

	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	// Periodic connection pool stats
	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			stats := sqlDB.Stats()
			log.Printf("DB Stats: Open=%d, Idle=%d, InUse=%d, WaitCount=%d, WaitDuration=%s",
				stats.OpenConnections, stats.Idle, stats.InUse, stats.WaitCount, stats.WaitDuration)
		}
	}()

	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	log.Println("Connected to database with connection pooling")

	// Clear Redis cache on startup
	if repositories.CacheService != nil {
		if err := repositories.CacheService.FlushAll(context.Background()); err != nil {
			log.Printf("Failed to flush Redis cache: %v", err)
		} else {
			log.Println("Redis cache flushed on startup")
		}
	}

	defer func() {
		if err := sqlDB.Close(); err != nil {
			log.Printf("Failed to close database connection: %v", err)
		}
		if repositories.CacheService != nil {
			if err := repositories.CacheService.Close(); err != nil {
				log.Printf("Failed to close Redis connection: %v", err)
			}
		}
	}()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.GetEnv("CORS_ORIGINS", "http://localhost:3000"),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowCredentials: true,
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// Per-IP caps on the credential endpoints
	for _, path := range []string{"/api/login", "/api/register"} {
		app.Use(path, limiter.New(limiter.Config{
			Max:        5,
			Expiration: 1 * time.Minute,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(429).JSON(fiber.Map{
					"error": "Too many requests. Please try again later.",
				})
			},
		}))
	}

	// Outbound email. Fall back to a log-only mailer when SendGrid is not
	// configured so local development works without an API key. One mailer
	// and notifier serve both the HTTP handlers and the maturity sweep.
	var mail mailer.Mailer
	if key := config.GetEnv("SENDGRID_API_KEY", ""); key != "" {
		mail = mailer.NewSendGrid(key, config.GetEnv("MAIL_FROM", "noreply@vestra.app"), "Vestra")
	} else {
		mail = mailer.NewLog()
	}
	notifier := notify.NewService(mail, config.GetEnv("ADMIN_EMAIL", "support@vestra.app"), config.GetEnv("SITE_URL", "http://localhost:3000"))

	routes.SetupRoutes(app, repositories.DB, mail, notifier)

	// Daily maturity sweep
	sweeper := jobs.NewMaturitySweeper(
		repositories.DB,
		repositories.NewInvestmentRepository(repositories.DB),
		repositories.NewBalanceRepository(repositories.DB, repositories.CacheService),
		repositories.NewUserRepository(repositories.DB, repositories.CacheService),
		notifier,
	)
	scheduler := cron.New()
	if _, err := sweeper.Schedule(scheduler); err != nil {
		log.Fatalf("Failed to schedule maturity sweep: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	log.Fatal(app.Listen(":" + config.GetEnv("PORT", "3000")))
}
