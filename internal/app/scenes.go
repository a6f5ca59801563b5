package app

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gethexy/pkg/docking"
	"github.com/philipparndt/gethexy/pkg/flow"
	"github.com/philipparndt/gethexy/pkg/perimeter"
	"github.com/philipparndt/gethexy/pkg/viewer"
	"github.com/rs/zerolog/log"
)

func (app *App) buildScenes() error {
	app.Scene.intro = introScene()
	app.Scene.title = titleScene()
	app.Scene.status = widget.NewLabel("")
	app.Scene.status.Alignment = fyne.TextAlignCenter

	if err := app.buildHexagon(); err != nil {
		return err
	}
	if err := app.buildCrown(); err != nil {
		return err
	}

	app.Scene.form = NewLeadForm(app.submit)
	return nil
}

func introScene() fyne.CanvasObject {
	bg := canvas.NewRectangle(viewer.Background)
	text := canvas.NewText("Loading your experience", color.White)
	text.Alignment = fyne.TextAlignCenter

	return container.NewStack(bg, container.NewCenter(container.NewVBox(
		text,
		widget.NewProgressBarInfinite(),
	)))
}

func titleScene() fyne.CanvasObject {
	bg := canvas.NewRectangle(viewer.Background)

	title := canvas.NewText("HEXCELLENCE", viewer.TitleColor)
	title.TextSize = 64
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	rule := canvas.NewRectangle(viewer.GoldColor)
	rule.SetMinSize(fyne.NewSize(320, 2))

	subtitle := canvas.NewText("drag the disc all the way round", viewer.TitleColor)
	subtitle.TextSize = 18
	subtitle.Alignment = fyne.TextAlignCenter

	return container.NewStack(bg, container.NewCenter(container.NewVBox(
		container.NewCenter(rule),
		title,
		container.NewCenter(rule),
		subtitle,
	)))
}

func (app *App) buildHexagon() error {
	cfg := app.Config.cfg

	opts := append(cfg.TrackerOptions(), perimeter.WithOnComplete(func(p perimeter.Position) {
		log.Info().Int("edge", p.Edge).Float64("t", p.T).Msg("app: hexagon traced")
		app.flow.Trigger(flow.Hexagon)
	}))

	tracker, err := perimeter.New(cfg.HexagonPoints(), opts...)
	if err != nil {
		return fmt.Errorf("failed to build hexagon: %w", err)
	}

	style := viewer.Style{
		ViewBox:     cfg.ViewBox(),
		DiscRadius:  cfg.Hexagon.DiscRadius,
		StrokeWidth: cfg.Hexagon.StrokeWidth,
	}

	view := viewer.NewHexagonView(tracker, style)
	view.SetOnDragStart(app.holdFlow)
	view.SetOnProgress(app.showProgress)
	view.SetOnDragEnd(func(p perimeter.Position) {
		app.showProgress(tracker.ProgressPercent(p))
		app.releaseFlow()
	})

	app.Scene.hexagon = view
	app.showProgress(tracker.Progress())
	return nil
}

func (app *App) buildCrown() error {
	cfg := app.Config.cfg

	docker, err := docking.New(cfg.Docking())
	if err != nil {
		return fmt.Errorf("failed to build docking: %w", err)
	}

	view := viewer.NewCrownView(docker, cfg.Crown.EnlargeFactor)
	view.SetOnDragStart(app.holdFlow)
	view.SetOnDragEnd(app.releaseFlow)
	view.SetOnDocked(func(snap docking.Snap) {
		log.Info().
			Float64("dx", snap.Delta.X).
			Float64("dy", snap.Delta.Y).
			Msg("app: jewel docked")

		view.ClearScene()
		app.afterDelay(app.Config.cfg.Crown.RevealDelay, func() {
			app.flow.Trigger(flow.Jewel)
		})
	})

	app.Scene.crown = view
	return nil
}

func (app *App) hexagonScene() fyne.CanvasObject {
	bg := canvas.NewRectangle(viewer.Background)
	return container.NewStack(bg, container.NewBorder(nil, app.Scene.status, nil, nil, app.Scene.hexagon))
}

func (app *App) showProgress(percent float64) {
	app.Scene.status.SetText(fmt.Sprintf("%.0f%%", percent))
}

// holdFlow keeps timed phases from advancing while something is dragged
func (app *App) holdFlow() {
	app.flow.Hold()
}

// releaseFlow resumes the flow and applies any config that arrived
// during the drag.
func (app *App) releaseFlow() {
	app.flow.Release()
	app.applyPendingConfig()
}
