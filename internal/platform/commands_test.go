package platform

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type recordingRevealer struct {
	paths []string
	err   error
}

func (r *recordingRevealer) Reveal(path string) error {
	r.paths = append(r.paths, path)
	return r.err
}

func observedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return zap.New(core), logs
}

func TestCommands_ReadFlightData(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.csv", "b.csv", "c.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	lister := fixedLister(map[string]time.Time{
		"a.csv": baseTime,
		"b.csv": baseTime.Add(time.Second),
	}, baseTime.Add(time.Hour))

	logger, logs := observedLogger()
	c := NewCommandsWith(lister, &recordingRevealer{}, logger)

	sessions, err := c.ReadFlightData(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, sessions)
	assert.Equal(t, 1, logs.FilterMessage("read flight data").Len())
}

func TestCommands_ReadFlightDataError(t *testing.T) {
	logger, logs := observedLogger()
	c := NewCommandsWith(NewSessionLister(), &recordingRevealer{}, logger)

	_, err := c.ReadFlightData(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDirectoryAccess))
	assert.Equal(t, 1, logs.FilterMessage("failed to read flight data").Len())
}

func TestCommands_ShowItemInFolder(t *testing.T) {
	logger, logs := observedLogger()
	revealer := &recordingRevealer{}
	c := NewCommandsWith(NewSessionLister(), revealer, logger)

	require.NoError(t, c.ShowItemInFolder("/srv/flights/a.csv"))
	assert.Equal(t, []string{"/srv/flights/a.csv"}, revealer.paths)

	entries := logs.FilterMessage("item shown in folder").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/srv/flights/a.csv", fields["path"])
	assert.NotEmpty(t, fields["reveal_id"])
}

func TestCommands_ShowItemInFolderError(t *testing.T) {
	logger, logs := observedLogger()
	revealErr := errors.New("bus gone")
	c := NewCommandsWith(NewSessionLister(), &recordingRevealer{err: revealErr}, logger)

	err := c.ShowItemInFolder("/srv/flights")
	assert.Equal(t, revealErr, err)
	assert.Equal(t, 1, logs.FilterMessage("failed to show item in folder").Len())
}

func TestCommands_RevealIDsAreUnique(t *testing.T) {
	logger, logs := observedLogger()
	c := NewCommandsWith(NewSessionLister(), &recordingRevealer{}, logger)

	require.NoError(t, c.ShowItemInFolder("/a"))
	require.NoError(t, c.ShowItemInFolder("/b"))

	entries := logs.FilterMessage("item shown in folder").All()
	require.Len(t, entries, 2)
	assert.NotEqual(t, entries[0].ContextMap()["reveal_id"], entries[1].ContextMap()["reveal_id"])
}

func TestNewCommands_UsesPlatformRevealer(t *testing.T) {
	spawner := &fakeSpawner{}
	c := NewCommands(NewDesktopBus(nil), nil, WithSpawner(spawner))

	err := c.ShowItemInFolder(t.TempDir())
	switch goosFamily() {
	case OSLinux, OSDarwin, OSWindows:
		require.NoError(t, err)
		assert.Len(t, spawner.Calls(), 1)
	default:
		assert.True(t, errors.Is(err, ErrUnsupportedPlatform))
	}
}

func TestReadFlightData(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "only.csv"), nil, 0o644))

	sessions, err := ReadFlightData(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"only"}, sessions)
}

func TestShowItemInFolder(t *testing.T) {
	dir := t.TempDir()
	fm := &fakeFileManager{ack: true}
	spawner := &fakeSpawner{}

	err := ShowItemInFolder(dir, NewDesktopBus(fm), WithSpawner(spawner))

	switch goosFamily() {
	case OSLinux:
		require.NoError(t, err)
		assert.Len(t, fm.Calls(), 1)
		assert.Empty(t, spawner.Calls())
	case OSDarwin, OSWindows:
		require.NoError(t, err)
		assert.Empty(t, fm.Calls())
		assert.Len(t, spawner.Calls(), 1)
	default:
		assert.True(t, errors.Is(err, ErrUnsupportedPlatform))
	}
}
