// Package app is the desktop host for the onboarding flow. It owns the
// window, switches scenes as the flow advances and feeds pointer input to
// the hexagon and crown widgets.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"github.com/philipparndt/gethexy/pkg/config"
	"github.com/philipparndt/gethexy/pkg/flow"
	"github.com/philipparndt/gethexy/pkg/leadform"
	"github.com/rs/zerolog/log"
)

// Options configures Run
type Options struct {
	ConfigPath string
	Watch      bool
	Size       fyne.Size
	LeadOutput io.Writer    // Where submitted leads go, stdout by default
	Dispatch   func(func()) // Runs timer callbacks on the UI goroutine, fyne.Do by default
}

// App wires the flow, the scenes and the configuration together
type App struct {
	Config ConfigState
	Scene  SceneState

	window    fyne.Window
	content   *fyne.Container
	flow      *flow.Runner
	submitter *leadform.Submitter
	dispatch  func(func())
	phase     flow.Phase
}

// Run opens the window and blocks until it is closed
func Run(opts Options) error {
	cfg := config.Default()
	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	a := fyneapp.NewWithID("io.github.philipparndt.gethexy")
	app, err := New(a, cfg, opts)
	if err != nil {
		return err
	}

	if opts.Watch && opts.ConfigPath != "" {
		if err := app.watchConfig(); err != nil {
			log.Warn().Err(err).Msg("app: hot reload not available")
		} else {
			defer app.Config.watcher.Close()
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app.Start(ctx)
	app.window.ShowAndRun()
	return nil
}

// New builds the window and scenes without starting the flow
func New(a fyne.App, cfg *config.Config, opts Options) (*App, error) {
	if opts.Size == (fyne.Size{}) {
		opts.Size = fyne.NewSize(1366, 768)
	}
	if opts.LeadOutput == nil {
		opts.LeadOutput = os.Stdout
	}
	if opts.Dispatch == nil {
		opts.Dispatch = fyne.Do
	}

	app := &App{
		Config:    ConfigState{cfg: cfg, path: opts.ConfigPath},
		window:    a.NewWindow("Get Hexy"),
		content:   container.NewStack(),
		submitter: leadform.NewSubmitter(opts.LeadOutput),
		dispatch:  opts.Dispatch,
	}

	if err := app.buildScenes(); err != nil {
		return nil, err
	}

	seq, err := flow.NewSequence(cfg.Steps())
	if err != nil {
		return nil, fmt.Errorf("invalid phases: %w", err)
	}
	app.flow = flow.NewRunner(seq, app.showPhase, flow.WithDispatch(app.dispatch))

	app.window.SetContent(app.content)
	app.window.Resize(opts.Size)
	return app, nil
}

// Start enters the first phase
func (app *App) Start(ctx context.Context) {
	log.Info().Int("phases", len(app.Config.cfg.Phases)).Msg("app: starting flow")
	app.flow.Start(ctx)
}

// Phase returns the active phase of the flow
func (app *App) Phase() flow.Phase {
	return app.flow.Current()
}

// Window returns the main window
func (app *App) Window() fyne.Window {
	return app.window
}

// showPhase swaps the visible scene
func (app *App) showPhase(phase flow.Phase) {
	app.phase = phase
	log.Info().Str("phase", string(phase)).Msg("app: phase")

	var scene fyne.CanvasObject
	switch phase {
	case flow.Intro:
		scene = app.Scene.intro
	case flow.Title:
		scene = app.Scene.title
	case flow.Hexagon:
		scene = app.hexagonScene()
	case flow.Pillow, flow.Crown, flow.Jewel:
		app.Scene.crown.Reveal(phase)
		scene = app.Scene.crown
	case flow.Form:
		scene = app.Scene.form
	default:
		log.Warn().Str("phase", string(phase)).Msg("app: phase has no scene")
		return
	}

	app.content.Objects = []fyne.CanvasObject{scene}
	app.content.Refresh()
}

// afterDelay runs fn on the main goroutine once d has passed
func (app *App) afterDelay(d time.Duration, fn func()) {
	if d <= 0 {
		fn()
		return
	}
	time.AfterFunc(d, func() {
		app.dispatch(fn)
	})
}
