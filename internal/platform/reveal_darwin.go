//go:build darwin

package platform

// NewRevealer returns the Finder revealer. bus is not used on macOS.
func NewRevealer(_ *DesktopBus, opts ...RevealerOption) Revealer {
	return NewFinderRevealer(opts...)
}
