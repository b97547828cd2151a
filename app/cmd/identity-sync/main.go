package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"portal-service/app/config"
	"portal-service/app/di"
	"portal-service/app/usecase"
	"portal-service/app/utils/logger"
)

// accountFile is the YAML document the sync job walks: a fixed list of
// provider accounts with their credentials.
type accountFile struct {
	Accounts []usecase.SyncAccount `yaml:"accounts"`
}

func main() {
	// Exiting through run keeps the deferred container teardown ahead of
	// the process exit.
	os.Exit(run())
}

func run() int {
	var (
		accountsPath = flag.String("accounts", "", "Path to the YAML account list (overrides SYNC_ACCOUNTS_FILE)")
		timeout      = flag.Duration("timeout", 10*time.Minute, "Overall batch timeout")
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

	appLogger, err := logger.New(cfg.LogLevel)
	if err != nil {
		slog.Error("failed to initialize logger", "error", err)
		return 1
	}

	path := *accountsPath
	if path == "" {
		path = cfg.SyncAccountsFile
	}
	if path == "" {
		appLogger.Error("no account file given; set SYNC_ACCOUNTS_FILE or pass -accounts")
		return 1
	}

	accounts, err := loadAccounts(path)
	if err != nil {
		appLogger.Error("failed to load account file", "path", path, "error", err)
		return 1
	}

	container, err := di.NewContainer(cfg, appLogger)
	if err != nil {
		appLogger.Error("failed to initialize dependency container", "error", err)
		return 1
	}
	defer container.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	result := container.IdentitySync.Run(ctx, accounts)

	appLogger.Info("identity sync completed",
		"total", result.Total,
		"rewritten", result.Rewritten,
		"in_sync", result.InSync,
		"failed", result.Failed)

	if result.Failed > 0 {
		return 1
	}
	return 0
}

func loadAccounts(path string) ([]usecase.SyncAccount, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var file accountFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if len(file.Accounts) == 0 {
		return nil, fmt.Errorf("%s contains no accounts", path)
	}

	for i, account := range file.Accounts {
		if account.Email == "" || account.Password == "" {
			return nil, fmt.Errorf("account %d in %s is missing email or password", i, path)
		}
	}

	return file.Accounts, nil
}
