//go:build windows

package platform

// NewRevealer returns the Explorer revealer. bus is not used on Windows.
func NewRevealer(_ *DesktopBus, opts ...RevealerOption) Revealer {
	return NewExplorerRevealer(opts...)
}
