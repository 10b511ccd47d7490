package location

import (
	"fmt"

	"github.com/mikaw/roost/internal/directory"
	"github.com/mikaw/roost/internal/prefs"
)

// PrefsStore implements the durable boundary on top of the roost prefs file.
// Reads share the prefs package's graceful degradation: a missing or corrupt
// file, or a structurally invalid stored location, reads as absent. Writes
// load-modify-save so the rest of the prefs file (theme) is preserved.
type PrefsStore struct {
	path string
}

// NewPrefsStore returns a durable store backed by the prefs file at path;
// an empty path uses the default prefs location.
func NewPrefsStore(path string) *PrefsStore {
	return &PrefsStore{path: path}
}

// Read returns the stored location preference, if any.
func (p *PrefsStore) Read() (directory.Location, bool) {
	stored, _ := prefs.Load(p.path)
	loc := fromPref(stored.Location)
	if !loc.Valid() {
		return directory.Location{}, false
	}
	return loc, true
}

// Write persists loc as the durable location preference.
func (p *PrefsStore) Write(loc directory.Location) error {
	stored, _ := prefs.Load(p.path)
	stored.Location = toPref(loc)
	if err := prefs.Save(p.path, stored); err != nil {
		return fmt.Errorf("persist location: %w", err)
	}
	return nil
}

// Clear removes the durable location preference.
func (p *PrefsStore) Clear() error {
	stored, _ := prefs.Load(p.path)
	stored.Location = prefs.LocationPref{}
	if err := prefs.Save(p.path, stored); err != nil {
		return fmt.Errorf("clear location: %w", err)
	}
	return nil
}

func fromPref(l prefs.LocationPref) directory.Location {
	return directory.Location{
		ID:    l.ID,
		Kind:  l.Kind,
		Name:  l.Name,
		City:  l.City,
		State: l.State,
	}
}

func toPref(l directory.Location) prefs.LocationPref {
	return prefs.LocationPref{
		ID:    l.ID,
		Kind:  l.Kind,
		Name:  l.Name,
		City:  l.City,
		State: l.State,
	}
}
