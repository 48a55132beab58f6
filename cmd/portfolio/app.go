package main

import (
	"context"

	"github.com/uddipan77/portfolio-tui/internal/config"
	"github.com/uddipan77/portfolio-tui/internal/contact"
	"github.com/uddipan77/portfolio-tui/internal/profile"
	"github.com/uddipan77/portfolio-tui/internal/store"
	"github.com/uddipan77/portfolio-tui/internal/ui"
)

// App is the main application container.
type App struct {
	ui             *ui.UI
	config         config.Config
	profile        profile.Profile
	sender         contact.Sender
	outbox         store.Messages
	uiUpdates      chan any
	configUpdates  chan config.Config
	profileUpdates chan profile.Profile
}

// NewApp returns a new application instance. To actually start the app you
// must call Start().
func NewApp(conf config.Config, prof profile.Profile, sender contact.Sender, outbox store.Messages, configUpdates chan config.Config) *App {
	return &App{
		config:         conf,
		profile:        prof,
		sender:         sender,
		outbox:         outbox,
		configUpdates:  configUpdates,
		uiUpdates:      make(chan any),
		profileUpdates: make(chan profile.Profile),
	}
}

// Start brings up the background watchers and runs the main event loop until
// the UI exits or the context is cancelled.
func (app *App) Start(ctx context.Context, done <-chan any) {
	// Watch the profile content dir so edits show up without a restart.
	go profile.Notify(ctx, app.config.ProfileDir, app.profileUpdates)

	go app.uiSender(ctx)

	for {
		select {
		case conf := <-app.configUpdates:
			app.uiUpdates <- conf
		case prof := <-app.profileUpdates:
			app.uiUpdates <- prof
		case <-ctx.Done():
			return
		case <-done:
			return
		}
	}
}

// uiSender handles forwarding all events to the UI.
func (app *App) uiSender(ctx context.Context) {
	for {
		select {
		case msg := <-app.uiUpdates:
			if app.ui != nil {
				app.ui.Send(msg)
			}
		case <-ctx.Done():
			return
		}
	}
}

func (app *App) createUI(ctx context.Context) *ui.UI {
	if app.ui == nil {
		app.ui = ui.New(ctx, app.config, app.profile,
			BuildVersion, BuildDate, BuildCommit,
			app.sender, app.outbox)
	}

	return app.ui
}
