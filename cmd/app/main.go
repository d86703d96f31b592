package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"foodcourt/cmd"
	httpadapter "foodcourt/internal/adapters/in/http"
	amqpadapter "foodcourt/internal/adapters/out/amqp"
	"foodcourt/internal/adapters/out/postgres/customitemrepo"
	"foodcourt/internal/adapters/out/postgres/itemrepo"
	"foodcourt/internal/adapters/out/postgres/orderrepo"
	"foodcourt/internal/adapters/out/postgres/tablerepo"
	"foodcourt/internal/core/ports"
	"foodcourt/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultStaleItemThreshold = 15 * time.Minute

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db := openDatabase(configs)
	notifier := createNotifier(configs, logger)

	app := cmd.NewCompositionRoot(configs, db, notifier, logger)

	jobManager := jobs.NewJobManager(
		app.CreateGetStaleItemsQueryHandler(),
		notifier,
		staleItemThreshold(configs, logger),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		AmqpURL:            goDotEnvVariable("AMQP_URL"),
		AmqpExchange:       goDotEnvVariable("AMQP_EXCHANGE"),
		StaleItemThreshold: goDotEnvVariable("STALE_ITEM_THRESHOLD"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&itemrepo.ItemDTO{},
		&customitemrepo.CustomItemDTO{},
		&tablerepo.TableDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func createNotifier(configs cmd.Config, logger *slog.Logger) ports.Notifier {
	if configs.AmqpURL == "" {
		return amqpadapter.NewNoopNotifier(logger)
	}

	exchange := configs.AmqpExchange
	if exchange == "" {
		exchange = "foodcourt.events"
	}

	notifier, err := amqpadapter.NewNotifier(configs.AmqpURL, exchange, logger)
	if err != nil {
		log.Fatalf("Failed to connect to message broker: %v", err)
	}
	return notifier
}

func staleItemThreshold(configs cmd.Config, logger *slog.Logger) time.Duration {
	if configs.StaleItemThreshold == "" {
		return defaultStaleItemThreshold
	}

	threshold, err := time.ParseDuration(configs.StaleItemThreshold)
	if err != nil || threshold <= 0 {
		logger.Warn("Invalid STALE_ITEM_THRESHOLD, using default",
			"value", configs.StaleItemThreshold, "default", defaultStaleItemThreshold.String())
		return defaultStaleItemThreshold
	}
	return threshold
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateRemoveOrderCommandHandler(),
		app.CreateAdvanceItemCommandHandler(),
		app.CreateRevertItemCommandHandler(),
		app.CreateCancelItemCommandHandler(),
		app.CreateCreateCustomItemCommandHandler(),
		app.CreateRemoveCustomItemCommandHandler(),
		app.CreateGetActiveOrdersQueryHandler(),
		app.CreateGetKitchenQueueQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
