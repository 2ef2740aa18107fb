package platform

import (
	"os/exec"

	"github.com/pkg/errors"
)

// Spawner starts external programs without waiting for them.
type Spawner interface {
	Spawn(name string, args ...string) error
}

// ExecSpawner starts processes with os/exec and reaps them in the background.
type ExecSpawner struct{}

// Spawn starts name with args. Only start-up failures are reported.
func (ExecSpawner) Spawn(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return errors.Wrapf(err, "start %s", name)
	}
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}
