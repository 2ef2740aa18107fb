package platform

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultBusCallTimeout bounds a FileManager1 ShowItems call.
const DefaultBusCallTimeout = 5 * time.Second

// FileURIScheme prefixes paths sent to the file manager service.
const FileURIScheme = "file://"

// busUnsafeChars cannot be passed through ShowItems reliably.
// See https://gitlab.freedesktop.org/dbus/dbus/-/issues/76
const busUnsafeChars = ","

// Revealer shows a file or folder in the native file manager.
type Revealer interface {
	Reveal(path string) error
}

type revealConfig struct {
	spawner     Spawner
	logger      *zap.Logger
	callTimeout time.Duration
	isDir       func(path string) bool
}

// RevealerOption customizes a Revealer.
type RevealerOption func(*revealConfig)

// WithSpawner replaces the process spawner.
func WithSpawner(s Spawner) RevealerOption {
	return func(c *revealConfig) { c.spawner = s }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) RevealerOption {
	return func(c *revealConfig) { c.logger = l }
}

// WithCallTimeout overrides DefaultBusCallTimeout.
func WithCallTimeout(d time.Duration) RevealerOption {
	return func(c *revealConfig) { c.callTimeout = d }
}

// WithDirCheck replaces the directory test used to pick a strategy.
func WithDirCheck(fn func(path string) bool) RevealerOption {
	return func(c *revealConfig) { c.isDir = fn }
}

func newRevealConfig(opts []RevealerOption) revealConfig {
	cfg := revealConfig{
		spawner:     ExecSpawner{},
		logger:      zap.NewNop(),
		callTimeout: DefaultBusCallTimeout,
		isDir:       isDirectory,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (c revealConfig) spawn(path string, name string, args ...string) error {
	c.logger.Debug("spawning opener",
		zap.String("command", name),
		zap.Strings("args", args))
	if err := c.spawner.Spawn(name, args...); err != nil {
		return wrapClass(ErrProcessSpawn, err, "reveal %s", path)
	}
	return nil
}

// FileManagerRevealer highlights items through the FileManager1 D-Bus service
// and falls back to xdg-open on the containing folder when the bus is
// unavailable or the path cannot be sent over it.
type FileManagerRevealer struct {
	bus *DesktopBus
	cfg revealConfig
}

// NewFileManagerRevealer creates a revealer that uses bus. A nil or empty bus
// always takes the fallback.
func NewFileManagerRevealer(bus *DesktopBus, opts ...RevealerOption) *FileManagerRevealer {
	return &FileManagerRevealer{bus: bus, cfg: newRevealConfig(opts)}
}

// Reveal holds the bus lock for the whole call. The fallback can only show
// the containing folder, not select the file.
func (r *FileManagerRevealer) Reveal(path string) error {
	return r.bus.with(func(fm FileManager) error {
		if fm == nil || strings.ContainsAny(path, busUnsafeChars) {
			dir := path
			if !r.cfg.isDir(path) {
				dir = filepath.Dir(filepath.Clean(path))
			}
			r.cfg.logger.Debug("revealing folder with xdg-open",
				zap.String("path", path),
				zap.String("folder", dir),
				zap.Bool("bus_available", fm != nil))
			return r.cfg.spawn(path, XDGOpenCommand, dir)
		}

		ctx, cancel := context.WithTimeout(context.Background(), r.cfg.callTimeout)
		defer cancel()

		uri := FileURIScheme + path
		ack, err := fm.ShowItems(ctx, []string{uri}, "")
		if err != nil {
			return wrapClass(ErrBusCall, err, "show %s", uri)
		}
		r.cfg.logger.Debug("file manager acknowledged",
			zap.String("uri", uri),
			zap.Bool("ack", ack))
		return nil
	})
}

// ExplorerRevealer opens Windows Explorer with the item selected.
type ExplorerRevealer struct {
	cfg revealConfig
}

// NewExplorerRevealer creates an Explorer revealer.
func NewExplorerRevealer(opts ...RevealerOption) *ExplorerRevealer {
	return &ExplorerRevealer{cfg: newRevealConfig(opts)}
}

// Reveal runs explorer /select, path.
func (r *ExplorerRevealer) Reveal(path string) error {
	return r.cfg.spawn(path, ExplorerCommand, WindowsSelectParam, path)
}

// FinderRevealer opens folders in Finder and reveals files within theirs.
type FinderRevealer struct {
	cfg revealConfig
}

// NewFinderRevealer creates a Finder revealer.
func NewFinderRevealer(opts ...RevealerOption) *FinderRevealer {
	return &FinderRevealer{cfg: newRevealConfig(opts)}
}

// Reveal runs open for folders and open -R for everything else.
func (r *FinderRevealer) Reveal(path string) error {
	if r.cfg.isDir(path) {
		return r.cfg.spawn(path, OpenCommand, path)
	}
	return r.cfg.spawn(path, OpenCommand, MacOSSelectFlag, path)
}

type unsupportedRevealer struct {
	goos string
}

func (r unsupportedRevealer) Reveal(string) error {
	return wrapClass(ErrUnsupportedPlatform, errUnsupported(r.goos), "reveal")
}

func newUnsupportedRevealer() Revealer {
	return unsupportedRevealer{goos: runtime.GOOS}
}

func isDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
