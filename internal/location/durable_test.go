package location

import (
	"path/filepath"
	"testing"

	"github.com/mikaw/roost/internal/directory"
	"github.com/mikaw/roost/internal/prefs"
)

func TestPrefsStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	store := NewPrefsStore(path)

	if _, ok := store.Read(); ok {
		t.Fatalf("Read on missing file reported a hit")
	}

	loc := directory.Location{ID: "loc-1", Kind: directory.KindArea, Name: "Andheri", City: "Mumbai"}
	if err := store.Write(loc); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	got, ok := store.Read()
	if !ok || got != loc {
		t.Fatalf("Read = %v, %v, want %v", got, ok, loc)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}
	if _, ok := store.Read(); ok {
		t.Fatalf("Read after Clear reported a hit")
	}
}

func TestPrefsStore_WritePreservesTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := prefs.Save(path, prefs.Prefs{Theme: "Slate"}); err != nil {
		t.Fatalf("seed prefs: %v", err)
	}

	store := NewPrefsStore(path)
	if err := store.Write(directory.Location{ID: "loc-1", Kind: directory.KindCity, Name: "Mumbai"}); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	p, err := prefs.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != "Slate" {
		t.Fatalf("Theme = %q after location write, want Slate", p.Theme)
	}
	if p.Location.Name != "Mumbai" {
		t.Fatalf("Location = %#v, want Mumbai", p.Location)
	}
}

func TestPrefsStore_MalformedStoredLocationReadsAsAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	// Kind is missing, so the record fails structural validation.
	if err := prefs.Save(path, prefs.Prefs{Location: prefs.LocationPref{ID: "loc-1", Name: "Mumbai"}}); err != nil {
		t.Fatalf("seed prefs: %v", err)
	}

	store := NewPrefsStore(path)
	if got, ok := store.Read(); ok {
		t.Fatalf("Read = %v, want absent for malformed entry", got)
	}
}
