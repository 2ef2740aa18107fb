package platform

import "github.com/pkg/errors"

// Error classes surfaced to callers. Wrapped errors keep the underlying OS or
// bus message; match them with errors.Is.
var (
	ErrDirectoryAccess     = errors.New("directory access failed")
	ErrProcessSpawn        = errors.New("failed to spawn process")
	ErrBusCall             = errors.New("desktop bus call failed")
	ErrBusPoisoned         = errors.New("desktop bus handle poisoned")
	ErrUnsupportedPlatform = errors.New("unsupported operating system")
)

// wrapClass attaches the error class and the cause message. errors.Is matches
// both the class and the cause.
func wrapClass(class, cause error, format string, args ...interface{}) error {
	return &classError{class: class, cause: errors.Wrapf(cause, format, args...)}
}

type classError struct {
	class error
	cause error
}

func (e *classError) Error() string {
	return e.class.Error() + ": " + e.cause.Error()
}

func (e *classError) Unwrap() []error {
	return []error{e.class, e.cause}
}

func errUnsupported(goos string) error {
	return errors.Errorf("no file manager integration for %s", goos)
}
