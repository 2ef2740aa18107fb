//go:build !linux && !darwin && !windows

package platform

func NewRevealer(_ *DesktopBus, _ ...RevealerOption) Revealer {
	return newUnsupportedRevealer()
}
