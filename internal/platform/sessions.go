package platform

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode/utf8"
)

// SessionExtension is the extension (without the dot) of flight data files.
// Matching is case-sensitive.
const SessionExtension = "csv"

// SessionLister lists flight data sessions in a directory.
type SessionLister struct {
	// Now supplies the timestamp used for entries whose creation time
	// cannot be read, so they sort as the most recent.
	Now func() time.Time

	// BirthTime returns the creation time of path, or false if unavailable.
	BirthTime func(path string) (time.Time, bool)
}

// NewSessionLister creates a lister backed by the wall clock and the
// platform's creation-time lookup.
func NewSessionLister() *SessionLister {
	return &SessionLister{
		Now:       time.Now,
		BirthTime: fileBirthTime,
	}
}

type datedEntry struct {
	path    string
	created time.Time
}

// ListSessions returns the stems of the csv files directly inside dir, newest
// first by creation time. Failing to read dir fails the whole call.
func (l *SessionLister) ListSessions(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, wrapClass(ErrDirectoryAccess, err, "read directory %s", dir)
	}

	dated := make([]datedEntry, 0, len(entries))
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		created, ok := l.BirthTime(path)
		if !ok {
			created = l.Now()
		}
		dated = append(dated, datedEntry{path: path, created: created})
	}

	sort.SliceStable(dated, func(i, j int) bool {
		return dated[i].created.Before(dated[j].created)
	})

	sessions := make([]string, 0, len(dated))
	for i := len(dated) - 1; i >= 0; i-- {
		path := dated[i].path
		if !isRegularFile(path) {
			continue
		}
		stem, ext, ok := splitExtension(filepath.Base(path))
		if !ok || ext != SessionExtension {
			continue
		}
		if !utf8.ValidString(stem) {
			continue
		}
		sessions = append(sessions, stem)
	}
	return sessions, nil
}

// ListSessions lists sessions in dir with the default lister.
func ListSessions(dir string) ([]string, error) {
	return NewSessionLister().ListSessions(dir)
}

// isRegularFile follows symlinks; unreadable entries are not files.
func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// splitExtension splits name at its last dot. A name whose only dot is the
// leading one (".csv") has no extension.
func splitExtension(name string) (stem, ext string, ok bool) {
	idx := strings.LastIndexByte(name, '.')
	if idx <= 0 {
		return name, "", false
	}
	return name[:idx], name[idx+1:], true
}

// SessionPath rebuilds the csv path of a session listed from dir.
func SessionPath(dir, session string) string {
	return filepath.Join(dir, session+"."+SessionExtension)
}
