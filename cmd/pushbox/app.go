package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/pushbox/internal/config"
	"github.com/vovakirdan/pushbox/internal/core"
	"github.com/vovakirdan/pushbox/internal/levels"
	"github.com/vovakirdan/pushbox/internal/registry"
	"github.com/vovakirdan/pushbox/internal/storage"
)

// app bundles what every command needs: configuration, a logger, the
// progress store and the registered packs.
type app struct {
	cfg     config.Config
	logger  *log.Logger
	store   *storage.Store
	logFile io.Closer
}

// logTarget selects where the logger writes.
type logTarget int

const (
	logToFile   logTarget = iota // Interactive commands own the terminal
	logToStderr                  // Headless commands and the server
)

// setup loads configuration, applies flag overrides, builds the logger,
// registers user packs and opens the store. A store that cannot be opened
// is reported and play continues without saving.
func setup(target logTarget, withStore bool) (*app, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	applyFlags(&cfg)

	a := &app{cfg: cfg}
	if a.logger, a.logFile, err = newLogger(cfg.Log, target); err != nil {
		return nil, err
	}
	a.logger.Debug("config loaded", "source", cfg.Source)

	a.registerUserPacks()

	if withStore {
		store, err := storage.Open(cfg.Storage.DBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open progress database: %v\n", err)
			a.logger.Warn("progress database unavailable", "path", cfg.Storage.DBPath, "err", err)
		} else {
			a.store = store
		}
	}
	return a, nil
}

func applyFlags(cfg *config.Config) {
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLevels != "" {
		cfg.Levels.Dir = flagLevels
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
}

// newLogger builds a charm logger at the configured level. Interactive
// commands log to a file so output does not tear the alt screen.
func newLogger(lc config.LogConfig, target logTarget) (*log.Logger, io.Closer, error) {
	level := log.InfoLevel
	var err error
	if lc.Level != "" {
		level, err = log.ParseLevel(lc.Level)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", lc.Level, err)
	}

	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          "pushbox",
		Level:           level,
	}

	switch {
	case target == logToStderr:
		return log.NewWithOptions(os.Stderr, opts), nil, nil
	case lc.File == "":
		return log.NewWithOptions(io.Discard, opts), nil, nil
	}

	path, err := config.ExpandHome(lc.File)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return log.NewWithOptions(f, opts), f, nil
}

// registerUserPacks loads packs from the levels directory. A pack whose ID
// clashes with a built-in one is skipped.
func (a *app) registerUserPacks() {
	dir, err := config.ExpandHome(a.cfg.Levels.Dir)
	if err != nil || dir == "" {
		return
	}

	packs, err := levels.NewLoader(dir, a.logger).LoadAll()
	if err != nil {
		a.logger.Warn("loading user packs", "dir", dir, "err", err)
		return
	}
	for _, p := range packs {
		if err := registry.Add(p); err != nil {
			a.logger.Warn("pack not registered", "pack", p.ID, "file", p.FilePath, "err", err)
			continue
		}
		a.logger.Debug("pack registered", "pack", p.ID, "levels", p.Len())
	}
}

// runtimeConfig sizes the screen from the current terminal.
func (a *app) runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultRuntimeConfig()
	cfg.TickRate = a.cfg.UI.TickRate
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}

func (a *app) Close() {
	if a.store != nil {
		a.store.Close()
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
