package config

import (
	"path/filepath"

	"fyne.io/fyne/v2"
	"github.com/ytget/flightlog/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyFlightDataDir  = "flight_data_directory"
	KeyUseDesktopBus  = "use_desktop_bus"
	KeyLogLevel       = "log_level"
	KeyRevealOnSelect = "reveal_on_select"
)

// Default values
const (
	DefaultUseDesktopBus  = true
	DefaultLogLevel       = "info"
	DefaultRevealOnSelect = false
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetFlightDataDirectory returns the directory scanned for sessions
func (s *Settings) GetFlightDataDirectory() string {
	dir := s.app.Preferences().String(KeyFlightDataDir)
	if dir == "" {
		defaultDir, err := platform.DefaultFlightDataDir()
		if err != nil {
			defaultDir = filepath.Join(".", platform.DefaultFlightDataDirName)
		}
		s.SetFlightDataDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetFlightDataDirectory sets the directory scanned for sessions
func (s *Settings) SetFlightDataDirectory(dir string) {
	s.app.Preferences().SetString(KeyFlightDataDir, dir)
}

// GetUseDesktopBus reports whether reveals may use the desktop bus (Linux only)
func (s *Settings) GetUseDesktopBus() bool {
	return s.app.Preferences().BoolWithFallback(KeyUseDesktopBus, DefaultUseDesktopBus)
}

// SetUseDesktopBus enables or disables the desktop bus
func (s *Settings) SetUseDesktopBus(use bool) {
	s.app.Preferences().SetBool(KeyUseDesktopBus, use)
}

// GetLogLevel returns the configured log level
func (s *Settings) GetLogLevel() string {
	level := s.app.Preferences().String(KeyLogLevel)
	if level == "" {
		s.SetLogLevel(DefaultLogLevel)
		return DefaultLogLevel
	}
	return level
}

// SetLogLevel sets the log level
func (s *Settings) SetLogLevel(level string) {
	if level == "" {
		level = DefaultLogLevel
	}
	s.app.Preferences().SetString(KeyLogLevel, level)
}

// GetLogLevelOptions returns available log levels
func (s *Settings) GetLogLevelOptions() []string {
	return []string{"debug", "info", "warn", "error"}
}

// GetRevealOnSelect returns whether selecting a session reveals it immediately
func (s *Settings) GetRevealOnSelect() bool {
	return s.app.Preferences().BoolWithFallback(KeyRevealOnSelect, DefaultRevealOnSelect)
}

// SetRevealOnSelect sets whether selecting a session reveals it immediately
func (s *Settings) SetRevealOnSelect(reveal bool) {
	s.app.Preferences().SetBool(KeyRevealOnSelect, reveal)
}
