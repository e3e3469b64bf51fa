// Package main applies or rolls back the database schema described by the
// service configuration.
//
//	migrate [-steps N] up|down|version
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"

	"shareit/config"
	"shareit/pkg/log"
	"shareit/pkg/sqldb"
)

func main() {
	steps := flag.Int("steps", 0, "number of migrations to apply or roll back (0 = all)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-steps N] up|down|version\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	ctx := context.Background()

	if err := run(ctx, logger, cfg.Database, flag.Arg(0), *steps); err != nil {
		logger.Errorf(ctx, "migrate %s: %v", flag.Arg(0), err)
		os.Exit(1)
	}
}

func run(ctx context.Context, l log.Logger, dbCfg config.DatabaseConfig, command string, steps int) (err error) {
	m, err := sqldb.NewMigrator(sqldb.Config{Driver: dbCfg.Driver, DSN: dbCfg.DSN})
	if err != nil {
		return err
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if err == nil {
			err = errors.Join(srcErr, dbErr)
		}
	}()

	switch command {
	case "up":
		if steps > 0 {
			err = m.Steps(steps)
		} else {
			err = m.Up()
		}
	case "down":
		if steps > 0 {
			err = m.Steps(-steps)
		} else {
			err = m.Down()
		}
	case "version":
	default:
		return fmt.Errorf("unknown command %q", command)
	}
	if errors.Is(err, migrate.ErrNoChange) {
		l.Info(ctx, "No change")
		err = nil
	}
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		l.Info(ctx, "Schema version: none")
		return nil
	case err != nil:
		return err
	}
	l.Infof(ctx, "Schema version: %d (dirty: %t)", version, dirty)
	return nil
}
