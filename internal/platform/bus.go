package platform

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/godbus/dbus/v5"
	"go.uber.org/zap"
)

// FileManager1 D-Bus identifiers
const (
	FileManagerService   = "org.freedesktop.FileManager1"
	FileManagerPath      = "/org/freedesktop/FileManager1"
	FileManagerInterface = "org.freedesktop.FileManager1"
	ShowItemsMethod      = FileManagerInterface + ".ShowItems"
)

// FileManager asks a file manager service to highlight items.
type FileManager interface {
	ShowItems(ctx context.Context, uris []string, startupID string) (bool, error)
}

// DBusFileManager calls org.freedesktop.FileManager1 over a D-Bus connection.
type DBusFileManager struct {
	conn *dbus.Conn
}

// NewDBusFileManager wraps an established connection.
func NewDBusFileManager(conn *dbus.Conn) *DBusFileManager {
	return &DBusFileManager{conn: conn}
}

// ShowItems calls ShowItems(as uris, s startupID).
func (m *DBusFileManager) ShowItems(ctx context.Context, uris []string, startupID string) (bool, error) {
	obj := m.conn.Object(FileManagerService, dbus.ObjectPath(FileManagerPath))
	return showItemsReply(obj.CallWithContext(ctx, ShowItemsMethod, 0, uris, startupID))
}

// showItemsReply decodes a ShowItems reply. Services that reply with an
// empty body are treated as acknowledging.
func showItemsReply(call *dbus.Call) (bool, error) {
	if call.Err != nil {
		return false, call.Err
	}
	if len(call.Body) == 0 {
		return true, nil
	}
	var ack bool
	if err := call.Store(&ack); err != nil {
		return false, err
	}
	return ack, nil
}

// Close closes the underlying connection.
func (m *DBusFileManager) Close() error {
	return m.conn.Close()
}

// DesktopBus is a shared, possibly empty handle to the desktop bus. Use is
// serialized by an internal mutex. A panic during use poisons the handle
// until Reset.
type DesktopBus struct {
	mu     sync.Mutex
	fm     FileManager
	poison error
}

// NewDesktopBus creates a handle around fm. A nil fm means the bus is
// unavailable.
func NewDesktopBus(fm FileManager) *DesktopBus {
	return &DesktopBus{fm: fm}
}

// ConnectDesktopBus connects to the session bus. Connection failures leave the
// handle empty so reveals take the fallback path.
func ConnectDesktopBus(logger *zap.Logger) *DesktopBus {
	if logger == nil {
		logger = zap.NewNop()
	}
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		logger.Warn("desktop bus unavailable", zap.Error(err))
		return NewDesktopBus(nil)
	}
	logger.Debug("connected to session bus")
	return NewDesktopBus(NewDBusFileManager(conn))
}

// OpenDesktopBus connects to the session bus when enabled on Linux, the only
// platform whose revealer uses it. Otherwise the handle is empty.
func OpenDesktopBus(enabled bool, logger *zap.Logger) *DesktopBus {
	return openDesktopBus(runtime.GOOS, enabled, func() *DesktopBus {
		return ConnectDesktopBus(logger)
	})
}

func openDesktopBus(goos string, enabled bool, connect func() *DesktopBus) *DesktopBus {
	if !enabled || goos != OSLinux {
		return NewDesktopBus(nil)
	}
	return connect()
}

// Available reports whether a connection is present.
func (b *DesktopBus) Available() bool {
	if b == nil {
		return false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.fm != nil
}

// Reset replaces the connection and clears a poisoned state.
func (b *DesktopBus) Reset(fm FileManager) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.fm = fm
	b.poison = nil
}

// Close closes the connection if it supports closing and empties the handle.
func (b *DesktopBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	fm := b.fm
	b.fm = nil
	if c, ok := fm.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

// with runs fn while holding the lock. fn receives nil when the bus is
// unavailable. A nil handle behaves as an unavailable bus.
func (b *DesktopBus) with(fn func(FileManager) error) (err error) {
	if b == nil {
		return fn(nil)
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.poison != nil {
		return wrapClass(ErrBusPoisoned, b.poison, "acquire desktop bus")
	}

	defer func() {
		if r := recover(); r != nil {
			b.poison = fmt.Errorf("panic while holding desktop bus: %v", r)
			err = wrapClass(ErrBusPoisoned, b.poison, "use desktop bus")
		}
	}()
	return fn(b.fm)
}
