package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/solace/internal/catalog"
	"github.com/alexanderramin/solace/internal/cli"
	"github.com/alexanderramin/solace/internal/db"
	"github.com/alexanderramin/solace/internal/protocol"
	"github.com/alexanderramin/solace/internal/repository"
	"github.com/alexanderramin/solace/internal/risk"
	"github.com/alexanderramin/solace/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.solace/solace.db
	dbPath := os.Getenv("SOLACE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".solace", "solace.db")
	}

	// Catalog: embedded defaults, overridable from a data directory.
	var cat *catalog.Catalog
	var err error
	if dataDir := os.Getenv("SOLACE_DATA"); dataDir != "" {
		cat, err = catalog.LoadDir(dataDir)
	} else {
		cat, err = catalog.Load()
	}
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories and unit of work.
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	planRepo := repository.NewSQLiteSafetyPlanRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	classifier := risk.NewClassifier(cat.Indicators(), cat.Resources(), risk.DefaultThresholds())
	selector := protocol.NewSelector(cat.Techniques())

	// Structured use-case logging goes to stderr so it never mixes with
	// command output.
	var observers []service.UseCaseObserver
	if os.Getenv("SOLACE_LOG") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Triage:   service.NewTriageService(classifier, selector, cat, sessionRepo, observers...),
		Sessions: service.NewSessionService(sessionRepo, cat, uow, observers...),
		Plans:    service.NewSafetyPlanService(planRepo, cat.Resources(), observers...),
		Catalog:  cat,
	}

	return cli.NewRootCmd(app).Execute()
}
