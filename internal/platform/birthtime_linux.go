//go:build linux

package platform

import (
	"time"

	"golang.org/x/sys/unix"
)

// fileBirthTime reads the birth time via statx. Symlinks are followed, as for
// the regular-file check. Filesystems that do not record STATX_BTIME report
// false.
func fileBirthTime(path string) (time.Time, bool) {
	var stat unix.Statx_t
	if err := unix.Statx(unix.AT_FDCWD, path, 0, unix.STATX_BTIME, &stat); err != nil {
		return time.Time{}, false
	}
	if stat.Mask&unix.STATX_BTIME == 0 {
		return time.Time{}, false
	}
	return time.Unix(stat.Btime.Sec, int64(stat.Btime.Nsec)), true
}
