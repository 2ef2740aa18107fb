package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/flightlog/internal/config"
)

// Settings dialog labels
const (
	SettingsTitle          = "Settings"
	SettingsSaveLabel      = "Save"
	SettingsCancelLabel    = "Cancel"
	SettingsSavedMessage   = "Settings saved. Desktop bus and log level changes apply after restart."
	SettingsDirPlaceholder = "Flight data directory path"
	SettingsUseBusLabel    = "Highlight files via the desktop bus (Linux)"
	SettingsRevealLabel    = "Show session in folder when selected"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	dialog   *dialog.ConfirmDialog
	onSaved  func(dirChanged bool)

	// UI components
	dataDirEntry      *widget.Entry
	useBusCheck       *widget.Check
	logLevelSelect    *widget.Select
	revealSelectCheck *widget.Check
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after a save.
func NewSettingsDialog(settings *config.Settings, window fyne.Window, onSaved func(dirChanged bool)) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
		onSaved:  onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.dataDirEntry = widget.NewEntry()
	sd.dataDirEntry.SetPlaceHolder(SettingsDirPlaceholder)

	browseDirBtn := widget.NewButton("Browse", sd.onBrowseDirectory)
	dataDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.dataDirEntry)

	sd.useBusCheck = widget.NewCheck(SettingsUseBusLabel, nil)
	sd.revealSelectCheck = widget.NewCheck(SettingsRevealLabel, nil)
	sd.logLevelSelect = widget.NewSelect(sd.settings.GetLogLevelOptions(), nil)

	form := container.NewVBox(
		widget.NewLabel("Flight Data"),
		widget.NewSeparator(),

		widget.NewLabel("Flight Data Directory:"),
		dataDirRow,
		sd.revealSelectCheck,

		widget.NewSeparator(),
		widget.NewLabel("System"),
		widget.NewSeparator(),

		sd.useBusCheck,
		widget.NewLabel("Log Level:"),
		sd.logLevelSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		SettingsTitle,
		SettingsSaveLabel,
		SettingsCancelLabel,
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(500, 360))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.dataDirEntry.SetText(sd.settings.GetFlightDataDirectory())
	sd.useBusCheck.SetChecked(sd.settings.GetUseDesktopBus())
	sd.revealSelectCheck.SetChecked(sd.settings.GetRevealOnSelect())
	sd.logLevelSelect.SetSelected(sd.settings.GetLogLevel())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.dataDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	dirChanged := false
	if dir := sd.dataDirEntry.Text; dir != "" && dir != sd.settings.GetFlightDataDirectory() {
		sd.settings.SetFlightDataDirectory(dir)
		dirChanged = true
	}

	sd.settings.SetUseDesktopBus(sd.useBusCheck.Checked)
	sd.settings.SetRevealOnSelect(sd.revealSelectCheck.Checked)

	if sd.logLevelSelect.Selected != "" {
		sd.settings.SetLogLevel(sd.logLevelSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved(dirChanged)
	}

	dialog.ShowInformation(SettingsTitle, SettingsSavedMessage, sd.window)
}
