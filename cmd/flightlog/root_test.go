package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ytget/flightlog/internal/platform"
)

type stubRevealer struct {
	paths []string
	err   error
}

func (s *stubRevealer) Reveal(path string) error {
	s.paths = append(s.paths, path)
	return s.err
}

func TestListCmd(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"only.csv", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	cmd := newListCmd(&rootFlags{logLevel: "error"})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{dir})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "only\n", out.String())
}

func TestListCmd_MissingDirectory(t *testing.T) {
	cmd := newListCmd(&rootFlags{logLevel: "error"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, errors.Is(err, platform.ErrDirectoryAccess))
}

func TestRevealCmd(t *testing.T) {
	revealer := &stubRevealer{}
	closed := false
	factory := func(_ *rootFlags, logger *zap.Logger) (*platform.Commands, func()) {
		return platform.NewCommandsWith(platform.NewSessionLister(), revealer, logger), func() { closed = true }
	}

	cmd := newRevealCmd(&rootFlags{logLevel: "error"}, factory)
	cmd.SetArgs([]string{"/srv/flights/a.csv"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, []string{"/srv/flights/a.csv"}, revealer.paths)
	assert.True(t, closed)
}

func TestRevealCmd_Error(t *testing.T) {
	revealer := &stubRevealer{err: platform.ErrBusCall}
	factory := func(_ *rootFlags, logger *zap.Logger) (*platform.Commands, func()) {
		return platform.NewCommandsWith(platform.NewSessionLister(), revealer, logger), func() {}
	}

	cmd := newRevealCmd(&rootFlags{logLevel: "error"}, factory)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"/srv/flights"})

	assert.ErrorIs(t, cmd.Execute(), platform.ErrBusCall)
}

func TestRootCmd_RequiresArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"list"})

	assert.Error(t, cmd.Execute())
}
