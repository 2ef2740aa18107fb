package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select," // the trailing comma is part of the switch
)

// Default flight data location, relative to the user's home directory
const (
	DefaultFlightDataDirName = "FlightData"
)

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// DefaultFlightDataDir returns ~/Documents/FlightData, or ~/FlightData when
// there is no Documents folder.
func DefaultFlightDataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	documents := filepath.Join(homeDir, "Documents")
	if isDirectory(documents) {
		return filepath.Join(documents, DefaultFlightDataDirName), nil
	}
	return filepath.Join(homeDir, DefaultFlightDataDirName), nil
}

// OpenFolder opens dir itself in the system file manager.
func OpenFolder(dir string) error {
	return openFolder(ExecSpawner{}, runtime.GOOS, dir)
}

func openFolder(s Spawner, goos, dir string) error {
	var name string
	switch goos {
	case OSDarwin:
		name = OpenCommand
	case OSWindows:
		name = ExplorerCommand
	case OSLinux:
		name = XDGOpenCommand
	default:
		return wrapClass(ErrUnsupportedPlatform, errUnsupported(goos), "open folder %s", dir)
	}
	if err := s.Spawn(name, dir); err != nil {
		return wrapClass(ErrProcessSpawn, err, "open folder %s", dir)
	}
	return nil
}
