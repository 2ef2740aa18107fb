//go:build !linux && !darwin && !windows

package platform

import "time"

// fileBirthTime is unavailable here; listing falls back to the clock sentinel.
func fileBirthTime(string) (time.Time, bool) {
	return time.Time{}, false
}
