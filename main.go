package main

import (
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/ytget/flightlog/internal/config"
	"github.com/ytget/flightlog/internal/logging"
	"github.com/ytget/flightlog/internal/platform"
	"github.com/ytget/flightlog/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID = "com.ytget.flightlog"
)

func main() {
	myApp := app.NewWithID(AppID)
	settings := config.NewSettings(myApp)

	logger := logging.FromEnv(settings.GetLogLevel())
	defer func() { _ = logger.Sync() }()
	logger.Info("Flight Log Viewer starting", zap.String("version", version))

	dataDir := settings.GetFlightDataDirectory()
	if err := platform.CreateDirectoryIfNotExists(dataDir); err != nil {
		logger.Warn("failed to ensure flight data dir", zap.String("dir", dataDir), zap.Error(err))
	}

	bus := platform.OpenDesktopBus(settings.GetUseDesktopBus(), logger)
	defer func() { _ = bus.Close() }()

	commands := platform.NewCommands(bus, logger)

	myWindow := myApp.NewWindow(ui.AppTitle)
	ui.NewRootUI(myWindow, myApp, commands, logger)

	myWindow.ShowAndRun()
}
