package app

import (
	"github.com/philipparndt/gethexy/pkg/config"
	"github.com/philipparndt/gethexy/pkg/docking"
	"github.com/philipparndt/gethexy/pkg/flow"
	"github.com/philipparndt/gethexy/pkg/leadform"
	"github.com/rs/zerolog/log"
)

// watchConfig reloads the config file when it changes on disk
func (app *App) watchConfig() error {
	w, err := config.Watch(app.Config.path, config.DefaultDebounce, func(cfg *config.Config, err error) {
		if err != nil {
			return
		}
		app.dispatch(func() {
			app.Config.pending = cfg
			app.applyPendingConfig()
		})
	})
	if err != nil {
		return err
	}

	log.Info().Str("path", w.Path()).Msg("app: watching config")
	app.Config.watcher = w
	return nil
}

// applyPendingConfig swaps in a reloaded config unless a drag is in
// progress. Thresholds and hexagon settings apply to the next drag; the
// phase list only applies on the next start.
func (app *App) applyPendingConfig() {
	cfg := app.Config.pending
	if cfg == nil || app.dragging() {
		return
	}
	app.Config.pending = nil

	previous := app.Config.cfg
	app.Config.cfg = cfg

	if app.Scene.hexagon.Tracker().Progress() > 0 {
		// The user's progress is kept; new hexagon settings apply on restart
		log.Info().Msg("app: hexagon in use, keeping its settings")
	} else if err := app.buildHexagon(); err != nil {
		log.Error().Err(err).Msg("app: reloaded hexagon rejected")
		app.Config.cfg = previous
		return
	}

	docker, err := docking.New(cfg.Docking())
	if err != nil {
		log.Error().Err(err).Msg("app: reloaded docking rejected")
		app.Config.cfg = previous
		return
	}
	app.Scene.crown.SetDocker(docker, cfg.Crown.EnlargeFactor)

	if app.phase == flow.Hexagon {
		app.showPhase(flow.Hexagon)
	}
	log.Info().Msg("app: config applied")
}

func (app *App) dragging() bool {
	return app.Scene.hexagon.Dragging() || app.Scene.crown.Dragging()
}

// submit hands a lead to the submitter
func (app *App) submit(lead leadform.Lead) error {
	sub, err := app.submitter.Submit(lead)
	if err != nil {
		return err
	}
	log.Info().Str("email", sub.Email).Str("bucket", sub.Bucket).Msg("app: lead submitted")
	return nil
}
