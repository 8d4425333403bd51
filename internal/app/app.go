package app

import (
	"context"
	"fmt"

	"github.com/five82/liftoff/internal/config"
	"github.com/five82/liftoff/internal/logging"
	"github.com/five82/liftoff/internal/prefs"
	"github.com/five82/liftoff/internal/spacex"
	"github.com/five82/liftoff/internal/state"
	"github.com/five82/liftoff/internal/ui"
)

// Options configure the liftoff application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/liftoff/prefs.toml
	LogLevel   string // overrides the config file when set
}

// Run boots the liftoff TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, closer, err := logging.NewFile(cfg.LogPath(), levelFor(cfg, opts))
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = closer.Close() }()

	userPrefs := prefs.Load(opts.PrefsPath)
	store := state.NewStore()

	f, err := newFeed(cfg, logger, store)
	if err != nil {
		return fmt.Errorf("init feed: %w", err)
	}
	defer f.close()

	logger.WithField("launches", cfg.Launches.URL).
		WithField("comments", cfg.Comments.Enabled()).
		Info("liftoff started")

	// Dispatch the launch list before the UI starts so the first frame is
	// already waiting on it.
	f.launches.Use(ctx, spacex.LaunchesRequest())

	uiOpts := ui.Options{
		Context:     ctx,
		Store:       store,
		Comments:    f.comments,
		LogPath:     cfg.LogPath(),
		ThemeName:   userPrefs.Theme,
		HideDetails: userPrefs.HideDetails,
		PrefsPath:   opts.PrefsPath,
	}
	err = ui.Run(uiOpts)
	logger.Info("liftoff stopped")
	return err
}

func levelFor(cfg config.Config, opts Options) string {
	if opts.LogLevel != "" {
		return opts.LogLevel
	}
	return cfg.LogLevel
}
