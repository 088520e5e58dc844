package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"

	"github.com/hpungsan/todo/internal/config"
	"github.com/hpungsan/todo/internal/db"
	"github.com/hpungsan/todo/internal/logging"
)

// logFileName is the default log file inside the global config dir.
const logFileName = "todo.log"

// env holds what commands share: effective config, logger and store.
// Fields left nil are filled lazily so --help never touches the disk.
type env struct {
	cfg    *config.Config
	logger *log.Logger
	store  *db.Store

	logCloser io.Closer
}

// Close releases the log file, if one was opened.
func (e *env) Close() {
	if e.logCloser != nil {
		e.logCloser.Close()
		e.logCloser = nil
	}
}

// globalDir returns ~/.todo.
func globalDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(homeDir, config.DirName), nil
}

// loadConfig merges global and repo config and applies flag overrides.
func (e *env) loadConfig(c *cli.Context) error {
	if e.cfg != nil {
		return nil
	}

	gDir, err := globalDir()
	if err != nil {
		return err
	}
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("could not determine working directory: %w", err)
	}

	cfg, err := config.LoadWithRepo(gDir, cwd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(gDir, logFileName)
	}
	applyFlags(c, cfg)

	e.cfg = cfg
	return nil
}

// applyFlags copies explicitly set global flags over cfg.
func applyFlags(c *cli.Context, cfg *config.Config) {
	if c.IsSet("db") {
		cfg.DBPath = c.String("db")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("log-file") {
		cfg.LogFile = c.String("log-file")
	}
}

// setup loads config, opens the log file and initializes the schema.
// Only a store that cannot be opened is fatal; schema problems are logged.
func (e *env) setup(c *cli.Context) error {
	if err := e.loadConfig(c); err != nil {
		return err
	}

	if e.logger == nil {
		logger, closer, err := logging.Open(e.cfg.LogFile, e.cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("failed to open log: %w", err)
		}
		e.logger, e.logCloser = logger, closer
	}

	if e.store == nil {
		store, err := db.Init(ctxOf(c), e.cfg.DBPath, db.Options{
			BusyTimeout: time.Duration(e.cfg.BusyTimeoutMS) * time.Millisecond,
			Logger:      e.logger,
		})
		if err != nil {
			e.logger.Error("startup failed", "db", e.cfg.DBPath, "err", err)
			return outputError(err)
		}
		e.store = store
	}
	return nil
}

func ctxOf(c *cli.Context) context.Context {
	if c.Context != nil {
		return c.Context
	}
	return context.Background()
}
