package ui

import (
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/flightlog/internal/config"
	"github.com/ytget/flightlog/internal/model"
	"github.com/ytget/flightlog/internal/platform"
)

// SessionService is the platform surface used by the UI.
type SessionService interface {
	ReadFlightData(path string) ([]string, error)
	ShowItemInFolder(path string) error
}

// RootUI represents the main UI structure
type RootUI struct {
	window     fyne.Window
	settings   *config.Settings
	svc        SessionService
	openFolder func(dir string) error
	logger     *zap.Logger

	dirLabel    *widget.Label
	searchEntry *widget.Entry
	sessionList *widget.List
	statusLabel *widget.Label
	refreshBtn  *widget.Button
	revealBtn   *widget.Button
	openDirBtn  *widget.Button
	changeBtn   *widget.Button
	settingsBtn *widget.Button

	settingsDialog *SettingsDialog

	mu       sync.Mutex
	sessions []model.Session
	visible  []model.Session
	selected int
}

// NewRootUI creates and initializes the main UI and loads the first listing
func NewRootUI(window fyne.Window, app fyne.App, svc SessionService, logger *zap.Logger) *RootUI {
	if logger == nil {
		logger = zap.NewNop()
	}

	ui := &RootUI{
		window:     window,
		settings:   config.NewSettings(app),
		svc:        svc,
		openFolder: platform.OpenFolder,
		logger:     logger.Named("ui"),
		selected:   -1,
	}

	window.SetTitle(AppTitle)
	ui.setupUI()
	ui.Refresh()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.dirLabel = widget.NewLabel(ui.settings.GetFlightDataDirectory())
	ui.dirLabel.Truncation = fyne.TextTruncateEllipsis

	ui.changeBtn = widget.NewButton(LabelChangeFolder, ui.onChangeFolder)
	ui.refreshBtn = widget.NewButton(LabelRefresh, func() { ui.Refresh() })
	ui.openDirBtn = widget.NewButton(LabelOpenFolder, ui.onOpenFolder)
	ui.revealBtn = widget.NewButton(LabelShowInFolder, ui.onReveal)
	ui.revealBtn.Disable()

	ui.settingsDialog = NewSettingsDialog(ui.settings, ui.window, ui.onSettingsSaved)
	ui.settingsBtn = widget.NewButton(IconSettings, ui.settingsDialog.Show)
	ui.settingsBtn.Importance = widget.LowImportance

	ui.searchEntry = widget.NewEntry()
	ui.searchEntry.SetPlaceHolder(LabelSearch)
	ui.searchEntry.OnChanged = func(string) { ui.applyFilter() }

	ui.sessionList = widget.NewList(
		func() int {
			ui.mu.Lock()
			defer ui.mu.Unlock()
			return len(ui.visible)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			ui.mu.Lock()
			defer ui.mu.Unlock()
			if id < 0 || id >= len(ui.visible) {
				return
			}
			obj.(*widget.Label).SetText(ui.visible[id].ID)
		},
	)
	ui.sessionList.OnSelected = ui.onSelected
	ui.sessionList.OnUnselected = func(widget.ListItemID) {
		ui.setSelected(-1)
	}

	ui.statusLabel = widget.NewLabel(LabelNoSelection)

	dirRow := container.NewBorder(nil, nil, widget.NewLabel(IconFolder), container.NewHBox(ui.changeBtn, ui.settingsBtn), ui.dirLabel)
	actions := container.NewHBox(ui.refreshBtn, ui.openDirBtn, ui.revealBtn)
	top := container.NewVBox(dirRow, ui.searchEntry)
	bottom := container.NewVBox(actions, ui.statusLabel)

	ui.window.SetContent(container.NewBorder(top, bottom, nil, nil, ui.sessionList))
	ui.window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
}

// Refresh re-reads the configured directory. A read failure clears the list.
func (ui *RootUI) Refresh() {
	dir := ui.settings.GetFlightDataDirectory()
	ui.dirLabel.SetText(dir)

	ids, err := ui.svc.ReadFlightData(dir)
	ui.mu.Lock()
	if err != nil {
		ui.sessions = nil
	} else {
		ui.sessions = model.NewSessions(dir, ids)
	}
	ui.mu.Unlock()

	if err != nil {
		ui.logger.Warn("listing failed", zap.String("dir", dir), zap.Error(err))
		ui.applyFilter()
		ui.statusLabel.SetText(fmt.Sprintf(StatusErrorFormat, dir, err))
		return
	}
	ui.applyFilter()
}

// applyFilter recomputes visible sessions from the search entry and resets
// the selection.
func (ui *RootUI) applyFilter() {
	query := ui.searchEntry.Text

	ui.mu.Lock()
	ui.visible = model.FilterSessions(ui.sessions, query)
	total, shown := len(ui.sessions), len(ui.visible)
	ui.mu.Unlock()

	ui.sessionList.UnselectAll()
	ui.setSelected(-1)
	ui.sessionList.Refresh()

	dir := ui.settings.GetFlightDataDirectory()
	switch {
	case total == 0:
		ui.statusLabel.SetText(fmt.Sprintf(StatusEmptyFormat, dir))
	case shown == total:
		ui.statusLabel.SetText(fmt.Sprintf(StatusSessionsFormat, total, dir))
	default:
		ui.statusLabel.SetText(fmt.Sprintf(StatusFilteredFormat, shown, total, dir))
	}
}

func (ui *RootUI) setSelected(id int) {
	ui.mu.Lock()
	ui.selected = id
	ui.mu.Unlock()

	if id < 0 {
		ui.revealBtn.Disable()
	} else {
		ui.revealBtn.Enable()
	}
}

func (ui *RootUI) onSelected(id widget.ListItemID) {
	ui.setSelected(id)
	if ui.settings.GetRevealOnSelect() {
		ui.onReveal()
	}
}

// selectedSession returns the highlighted session, if any
func (ui *RootUI) selectedSession() (model.Session, bool) {
	ui.mu.Lock()
	defer ui.mu.Unlock()
	if ui.selected < 0 || ui.selected >= len(ui.visible) {
		return model.Session{}, false
	}
	return ui.visible[ui.selected], true
}

func (ui *RootUI) onReveal() {
	session, ok := ui.selectedSession()
	if !ok {
		return
	}
	if err := ui.svc.ShowItemInFolder(session.Path()); err != nil {
		dialog.ShowError(err, ui.window)
	}
}

func (ui *RootUI) onOpenFolder() {
	dir := ui.settings.GetFlightDataDirectory()
	if err := ui.openFolder(dir); err != nil {
		ui.logger.Warn("open folder failed", zap.String("dir", dir), zap.Error(err))
		dialog.ShowError(err, ui.window)
	}
}

func (ui *RootUI) onChangeFolder() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if uri == nil {
			return
		}
		ui.SetDirectory(uri.Path())
	}, ui.window)
}

// onSettingsSaved reloads the listing when the directory changed
func (ui *RootUI) onSettingsSaved(dirChanged bool) {
	ui.logger.Info("settings saved", zap.Bool("dir_changed", dirChanged))
	if dirChanged {
		ui.Refresh()
	}
}

// SetDirectory stores dir as the flight data directory and reloads the list
func (ui *RootUI) SetDirectory(dir string) {
	ui.settings.SetFlightDataDirectory(dir)
	ui.logger.Info("flight data directory changed", zap.String("dir", dir))
	ui.Refresh()
}
