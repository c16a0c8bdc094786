package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/raine/portionvision/config"
	"github.com/raine/portionvision/internal/camera"
	"github.com/raine/portionvision/internal/capture"
	"github.com/raine/portionvision/internal/catalog"
	"github.com/raine/portionvision/internal/logbook"
	"github.com/raine/portionvision/internal/storage"
	"github.com/raine/portionvision/internal/ui"
	"github.com/raine/portionvision/internal/workflow"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const logFileName = "portionvision.log"

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	config.LoadEnvFile()

	// First run on an interactive terminal: offer the setup wizard
	if configMissing() && isInteractiveTerminal() {
		if !runSetupWizard() {
			os.Exit(1)
		}
	}

	// The TUI owns the terminal, so logs go to a file
	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err == nil {
		defer logFile.Close()
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: logFile, NoColor: true})
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		log.Warn().Err(err).Msg("failed to open log file, logging to stderr")
	}

	cfg := config.FromEnv()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Portion log store; an in-memory fallback keeps the app usable when
	// the database cannot be opened
	var kv storage.KV
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0700); err != nil {
		log.Warn().Err(err).Msg("failed to create data directory, using in-memory store")
		kv = storage.NewMemoryKV()
	} else if sqliteKV, err := storage.NewSQLiteKV(cfg.DBPath); err != nil {
		log.Warn().Err(err).Str("dbPath", cfg.DBPath).Msg("failed to open database, using in-memory store")
		kv = storage.NewMemoryKV()
	} else {
		kv = sqliteKV
		log.Info().Str("dbPath", cfg.DBPath).Msg("portion store initialized")
	}
	defer kv.Close()

	store := logbook.NewStore(kv)

	cat, err := catalog.Load(ctx, cfg.CatalogURL)
	if err != nil {
		log.Warn().Err(err).Str("url", cfg.CatalogURL).Msg("remote catalog unavailable, using builtin dataset")
	}
	log.Info().Int("foods", cat.Len()).Msg("food catalog loaded")

	device := camera.NewSimulatedDevice()

	model := ui.NewModel(cat, store, device,
		workflow.WithSessionOptions(
			capture.WithFacing(cfg.CameraFacing),
			capture.WithAckDelay(ui.CaptureAckDelay),
		),
	)

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	err = runUntilDone(ctx,
		func() error {
			_, err := program.Run()
			return err
		},
		program.Quit,
		model.Flow().Close,
	)
	if err != nil && err != context.Canceled && err != tea.ErrProgramKilled {
		log.Error().Err(err).Msg("shutdown with error")
		os.Exit(1)
	}
	log.Info().Msg("shutdown complete")
}

// runUntilDone runs the TUI until it exits on its own or ctx is cancelled
// by a signal. Quitting from inside the program must also unblock the
// watcher goroutine, so completion is signaled on a channel rather than
// through context cancellation. Teardown runs on both paths, after the
// program has stopped, so the camera stream is never left acquired.
func runUntilDone(ctx context.Context, run func() error, quit func(), teardown func()) error {
	done := make(chan struct{})
	var g errgroup.Group
	g.Go(func() error {
		defer close(done)
		return run()
	})
	g.Go(func() error {
		select {
		case <-ctx.Done():
			quit()
			<-done
		case <-done:
		}
		teardown()
		return nil
	})
	return g.Wait()
}
