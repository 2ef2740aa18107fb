//go:build linux

package platform

// NewRevealer returns the FileManager1/xdg-open revealer.
func NewRevealer(bus *DesktopBus, opts ...RevealerOption) Revealer {
	return NewFileManagerRevealer(bus, opts...)
}
