package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/ticksolve/ticksolve/internal/app"
	"github.com/ticksolve/ticksolve/internal/logging"
	"github.com/ticksolve/ticksolve/internal/model"
	"github.com/ticksolve/ticksolve/internal/repo"
	"github.com/ticksolve/ticksolve/internal/session"
	"github.com/ticksolve/ticksolve/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := model.LoadConfig(model.DefaultConfigPath())
	if err != nil {
		return err
	}

	dir := model.DefaultConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data directory %s: %w", dir, err)
	}

	logPath := cfg.LogPath
	if logPath == "" {
		logPath = filepath.Join(dir, "ticksolve.log")
	}
	logger := logging.New(logPath)
	defer logger.Sync()

	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = filepath.Join(dir, "ticksolve.db")
	}
	kv, err := store.NewSQLiteStore(dbPath)
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	defer kv.Close()

	tickets := repo.New(
		context.Background(),
		store.NewTicketStore(kv, logger),
		logger,
	)
	sess := session.New(logger)

	p := tea.NewProgram(app.New(cfg, tickets, sess), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("program exited with error", zap.Error(err))
		return err
	}

	return nil
}
