package app

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gethexy/pkg/config"
	"github.com/philipparndt/gethexy/pkg/viewer"
)

// ConfigState holds the active settings and hot reload state
type ConfigState struct {
	cfg     *config.Config
	path    string          // Config file, empty when running on defaults
	watcher *config.Watcher // Set when --watch is given
	pending *config.Config  // Reloaded config waiting for the current drag to end
}

// SceneState holds the widgets for each phase
type SceneState struct {
	intro   fyne.CanvasObject
	title   fyne.CanvasObject
	hexagon *viewer.HexagonView
	crown   *viewer.CrownView
	form    *LeadForm
	status  *widget.Label // Progress readout under the hexagon
}
