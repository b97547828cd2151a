package main

import (
	"embed"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"portal-service/app/config"
	"portal-service/app/utils/database"
	"portal-service/app/utils/logger"
	"portal-service/app/utils/migration"
)

//go:embed migrations
var migrationsFS embed.FS

func main() {
	os.Exit(run())
}

func run() int {
	var (
		command = flag.String("command", "up", "Migration command (up, down, status)")
		steps   = flag.String("steps", "1", "Number of steps for down migration")
		verbose = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("could not load .env file", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		return 1
	}

	logLevel := cfg.LogLevel
	if *verbose {
		logLevel = "debug"
	}

	appLogger, err := logger.New(logLevel)
	if err != nil {
		slog.Error("failed to initialize logger", "error", err)
		return 1
	}

	dbConn, err := database.Open(cfg, appLogger)
	if err != nil {
		appLogger.Error("failed to open database connection", "error", err)
		return 1
	}
	defer dbConn.Close()

	migrator := migration.NewMigrator(dbConn.DB(), appLogger, migrationsFS)

	switch *command {
	case "up":
		if err := migrator.Up(); err != nil {
			appLogger.Error("migration up failed", "error", err)
			return 1
		}
		appLogger.Info("all migrations applied successfully")

	case "down":
		stepCount, err := strconv.Atoi(*steps)
		if err != nil {
			appLogger.Error("invalid steps value", "steps", *steps, "error", err)
			return 1
		}

		if err := migrator.Down(stepCount); err != nil {
			appLogger.Error("migration down failed", "error", err)
			return 1
		}
		appLogger.Info("migrations rolled back successfully", "steps", stepCount)

	case "status":
		if err := migrator.Status(); err != nil {
			appLogger.Error("migration status failed", "error", err)
			return 1
		}

	default:
		appLogger.Error("unknown command", "command", *command)
		fmt.Println("Available commands: up, down, status")
		return 1
	}

	return 0
}
