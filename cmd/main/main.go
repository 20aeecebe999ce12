package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/CTAG07/Kiln/pkg/publish"
	"github.com/CTAG07/Kiln/pkg/site"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

var errUsage = errors.New("usage: kiln <members.json> <workshops.json>")

func main() {
	baseLogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, configPath(), os.Args[1:], time.Now()); err != nil {
		baseLogger.Error("Site build failed", "error", err)
		stop()
		os.Exit(1)
	}
}

// run performs one full build: load records, render every page in memory,
// write them atomically, then publish if a bucket is configured.
func run(ctx context.Context, cfgPath string, args []string, now time.Time) error {
	config, err := LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: parseLogLevel(config.Site.LogLevel)}))
	logger.Info("Starting site build", "version", Version, "commit", Commit, "build_date", BuildDate)

	today, err := config.Site.ResolveToday(now)
	if err != nil {
		return err
	}

	members, workshops, err := loadRecords(ctx, logger, config.Site, args)
	if err != nil {
		return err
	}
	logger.Info("Loaded records", "members", len(members), "workshops", len(workshops))

	renderer, err := site.NewRenderer(logger, config.Templates)
	if err != nil {
		return err
	}
	pages, err := renderer.RenderAll(members, workshops, today)
	if err != nil {
		return err
	}
	if err = site.WritePages(config.Site.OutputDir, pages); err != nil {
		return err
	}
	for _, p := range pages {
		logger.Info("Generated page", "file", p.Name, "bytes", len(p.HTML))
	}

	if !config.Publish.Enabled() {
		return nil
	}
	publisher, err := publish.New(ctx, logger, config.Publish)
	if err != nil {
		return err
	}
	names := make([]string, len(pages))
	for i, p := range pages {
		names[i] = p.Name
	}
	_, err = publisher.Publish(ctx, config.Site.OutputDir, names)
	return err
}

// loadRecords reads members and workshops from the JSON documents named in
// args. With a database configured, given documents are validated and then
// imported into it in one transaction, and the records are read back from the
// database. Invalid documents never reach the database.
func loadRecords(ctx context.Context, logger *slog.Logger, cfg *SiteConfig, args []string) ([]site.Member, []site.Workshop, error) {
	if cfg.DatabasePath == "" {
		if len(args) != 2 {
			return nil, nil, errUsage
		}
		return loadJSONRecords(args[0], args[1])
	}
	if len(args) != 0 && len(args) != 2 {
		return nil, nil, errUsage
	}

	db, err := initDB(cfg.DatabasePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database", "error", err)
		}
	}(db)

	if err = site.SetupSchema(db); err != nil {
		return nil, nil, err
	}

	if len(args) == 2 {
		members, workshops, err := loadJSONRecords(args[0], args[1])
		if err != nil {
			return nil, nil, err
		}
		if err = site.Validate(members, workshops); err != nil {
			return nil, nil, err
		}
		if err = site.ReplaceRecords(ctx, db, members, workshops); err != nil {
			return nil, nil, err
		}
		logger.Info("Imported records into database", "path", cfg.DatabasePath)
	}

	members, err := site.LoadMembersDB(ctx, db)
	if err != nil {
		return nil, nil, err
	}
	workshops, err := site.LoadWorkshopsDB(ctx, db)
	if err != nil {
		return nil, nil, err
	}
	return members, workshops, nil
}

func loadJSONRecords(membersPath, workshopsPath string) ([]site.Member, []site.Workshop, error) {
	members, err := site.LoadMembers(membersPath)
	if err != nil {
		return nil, nil, err
	}
	workshops, err := site.LoadWorkshops(workshopsPath)
	if err != nil {
		return nil, nil, err
	}
	return members, workshops, nil
}
