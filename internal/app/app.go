package app

import (
	"context"
	"fmt"

	"github.com/mikaw/roost/internal/config"
	"github.com/mikaw/roost/internal/directory"
	"github.com/mikaw/roost/internal/location"
	"github.com/mikaw/roost/internal/prefs"
	"github.com/mikaw/roost/internal/ui"
)

// Options configure the roost application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/roost/prefs.toml
}

// Run boots the roost TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	client, err := directory.NewClient(cfg.APIBind)
	if err != nil {
		return fmt.Errorf("init directory client: %w", err)
	}

	locations := location.NewStore(
		location.NewPrefsStore(opts.PrefsPath),
		&location.SessionStore{},
		client,
	)

	uiOpts := ui.Options{
		Context:   ctx,
		Client:    client,
		Locations: locations,
		Config:    &cfg,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
