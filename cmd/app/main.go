package main

import (
	"fmt"
	"log/slog"
	"os"

	"supermarket/cmd"
	httpadapter "supermarket/internal/adapters/in/http"
	"supermarket/internal/adapters/out/postgres/driverrepo"
	"supermarket/internal/adapters/out/postgres/orderrepo"
	"supermarket/internal/adapters/out/postgres/productrepo"
	"supermarket/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultAssignmentSchedule = "*/30 * * * * *"

func main() {
	configs := getConfigs()

	gormDB, err := openDatabase(configs)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := startJobs(&app, configs)
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
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
		AssignmentSchedule: goDotEnvVariable("ASSIGNMENT_SCHEDULE"),
	}
	if config.AssignmentSchedule == "" {
		config.AssignmentSchedule = defaultAssignmentSchedule
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

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = gormDB.AutoMigrate(
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&driverrepo.DriverDTO{},
	)
	if err != nil {
		return nil, err
	}

	return gormDB, nil
}

func startJobs(app *cmd.CompositionRoot, configs cmd.Config) *jobs.JobManager {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateAssignOrderCommandHandler(),
		configs.AssignmentSchedule,
		logger,
	)

	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}

	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		app.CreatePlaceOrderCommandHandler(),
		app.CreateSetOrderStatusCommandHandler(),
		app.CreateAddProductCommandHandler(),
		app.CreateRestockProductCommandHandler(),
		app.CreateCreateDriverCommandHandler(),
		app.CreateRemoveDriverCommandHandler(),
		app.CreateGetMyOrdersQueryHandler(),
		app.CreateGetActiveDriversQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
