package platform

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Commands is the surface the application calls into: one listing query and
// one reveal action.
type Commands struct {
	lister   *SessionLister
	revealer Revealer
	logger   *zap.Logger
}

// NewCommands wires the platform revealer to bus. bus may be nil.
func NewCommands(bus *DesktopBus, logger *zap.Logger, opts ...RevealerOption) *Commands {
	if logger == nil {
		logger = zap.NewNop()
	}
	opts = append([]RevealerOption{WithLogger(logger.Named("reveal"))}, opts...)
	return &Commands{
		lister:   NewSessionLister(),
		revealer: NewRevealer(bus, opts...),
		logger:   logger,
	}
}

// NewCommandsWith builds Commands from explicit parts.
func NewCommandsWith(lister *SessionLister, revealer Revealer, logger *zap.Logger) *Commands {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Commands{lister: lister, revealer: revealer, logger: logger}
}

// ReadFlightData lists the sessions in path, newest first.
func (c *Commands) ReadFlightData(path string) ([]string, error) {
	sessions, err := c.lister.ListSessions(path)
	if err != nil {
		c.logger.Error("failed to read flight data", zap.String("dir", path), zap.Error(err))
		return nil, err
	}
	c.logger.Debug("read flight data", zap.String("dir", path), zap.Int("sessions", len(sessions)))
	return sessions, nil
}

// ShowItemInFolder reveals path in the native file manager.
func (c *Commands) ShowItemInFolder(path string) error {
	log := c.logger.With(zap.String("reveal_id", uuid.NewString()), zap.String("path", path))
	if err := c.revealer.Reveal(path); err != nil {
		log.Error("failed to show item in folder", zap.Error(err))
		return err
	}
	log.Info("item shown in folder")
	return nil
}

// ReadFlightData lists the sessions in path with the default lister.
func ReadFlightData(path string) ([]string, error) {
	return ListSessions(path)
}

// ShowItemInFolder reveals path with the platform revealer. bus is only used
// on Linux and may be nil.
func ShowItemInFolder(path string, bus *DesktopBus, opts ...RevealerOption) error {
	return NewRevealer(bus, opts...).Reveal(path)
}
