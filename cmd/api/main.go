package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/DessysGit/ecommerce-project/internal/admin"
	"github.com/DessysGit/ecommerce-project/internal/cart"
	"github.com/DessysGit/ecommerce-project/internal/config"
	"github.com/DessysGit/ecommerce-project/internal/db"
	"github.com/DessysGit/ecommerce-project/internal/events"
	"github.com/DessysGit/ecommerce-project/internal/order"
	"github.com/DessysGit/ecommerce-project/internal/product"
	"github.com/DessysGit/ecommerce-project/internal/user"
)

// main wires dependencies and starts the HTTP server. Repositories receive
// their *sql.DB at construction; nothing reaches for a global handle.
func main() {
	cfg := config.Load()

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer conn.Close()

	if err := db.RunMigrations(conn); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	// The broker is optional: without AMQP_URL orders are simply not announced.
	var publisher order.EventPublisher
	if cfg.AMQPURL != "" {
		amqpConn, err := amqp.Dial(cfg.AMQPURL)
		if err != nil {
			log.Fatalf("amqp: %v", err)
		}
		defer amqpConn.Close()

		p, err := events.NewPublisher(amqpConn)
		if err != nil {
			log.Fatalf("amqp publisher: %v", err)
		}
		defer p.Close()
		publisher = p
	}

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(requestLogger())

	userService := user.NewService(user.NewPostgresRepository(conn))
	userHandler := user.NewHandler(userService, cfg.JWTSecret)

	productService := product.NewService(product.NewPostgresRepository(conn))
	productHandler := product.NewHandler(productService)

	cartHandler := cart.NewHandler(cart.NewService(cart.NewPostgresRepository(conn)))
	orderHandler := order.NewHandler(order.NewService(order.NewPostgresRepository(conn), publisher))
	adminHandler := admin.NewHandler(admin.NewService(admin.NewPostgresRepository(conn)), userService, productService)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Welcome to the Ecommerce API!"})
	})

	userHandler.RegisterPublicRoutes(app)
	productHandler.RegisterPublicRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))

	cartHandler.RegisterProtectedRoutes(app)
	orderHandler.RegisterProtectedRoutes(app)
	adminHandler.RegisterProtectedRoutes(app)

	log.Printf("server listening on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

// requestLogger tags every request with an X-Request-ID and logs it on the
// way out.
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set("X-Request-ID", rid)

		start := time.Now()
		err := c.Next()
		log.Printf("[http] rid=%s %s %s status=%d dur=%s",
			rid, c.Method(), c.Path(), c.Response().StatusCode(), time.Since(start))
		return err
	}
}
