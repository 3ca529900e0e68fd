package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"

	"github.com/diicsu/room-booking-service/config"
	"github.com/diicsu/room-booking-service/internal/auth"
	"github.com/diicsu/room-booking-service/internal/consumer"
	"github.com/diicsu/room-booking-service/internal/handler"
	"github.com/diicsu/room-booking-service/internal/middleware"
	"github.com/diicsu/room-booking-service/internal/repository"
	"github.com/diicsu/room-booking-service/internal/service"
	"github.com/diicsu/room-booking-service/internal/storage"
	"github.com/diicsu/room-booking-service/pkg/database"
	"github.com/diicsu/room-booking-service/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()

	store := newStore(cfg)

	// Repositories
	roomRepo := repository.NewRoomRepository(store)
	bookingRepo := repository.NewBookingRepository(store)
	notificationRepo := repository.NewNotificationRepository(store)

	notificationSvc := service.NewNotificationService(notificationRepo)

	// RabbitMQ: booking events out, notification records in
	var publisher *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		var err error
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()

		mqConsumer, err := rabbitmq.NewConsumer(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer mqConsumer.Close()

		msgs, err := mqConsumer.Consume()
		if err != nil {
			log.Fatalf("failed to start consuming: %v", err)
		}
		consumer.NewBookingConsumer(notificationSvc).Start(msgs)
	} else {
		log.Println("RABBIT_URL not set, booking events disabled")
	}

	bookingSvc := service.NewBookingService(bookingRepo, roomRepo, auth.RoleAuthorizer{}, publisher)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "room-booking"})
	})

	handler.NewAuthHandler().RegisterRoutes(e)
	handler.NewRoomHandler(roomRepo).RegisterRoutes(e)
	handler.NewBookingHandler(bookingSvc).RegisterRoutes(e)
	handler.NewNotificationHandler(notificationSvc).RegisterRoutes(e)

	log.Printf("Room Booking Service starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}

func newStore(cfg *config.Config) storage.Store {
	switch cfg.StorageDriver {
	case "memory":
		return storage.NewMemoryStore()
	case "file":
		fs, err := storage.NewFileStore(cfg.DataDir)
		if err != nil {
			log.Fatalf("failed to open file store: %v", err)
		}
		return fs
	case "sqlite":
		gs, err := storage.NewGormStore(database.NewSQLiteDB(cfg.SQLitePath))
		if err != nil {
			log.Fatalf("failed to open sqlite store: %v", err)
		}
		return gs
	case "postgres":
		gs, err := storage.NewGormStore(database.NewPostgresDB(cfg.DSN()))
		if err != nil {
			log.Fatalf("failed to open postgres store: %v", err)
		}
		return gs
	default:
		log.Fatalf("unknown storage driver %q", cfg.StorageDriver)
		return nil
	}
}
