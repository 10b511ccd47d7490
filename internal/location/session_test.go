package location

import (
	"testing"

	"github.com/mikaw/roost/internal/directory"
)

func TestSessionStore_ReadWriteClear(t *testing.T) {
	var s SessionStore

	if _, ok := s.Read(); ok {
		t.Fatalf("Read on empty store reported a hit")
	}

	loc := directory.Location{ID: "loc-1", Kind: directory.KindCity, Name: "Mumbai"}
	s.Write(loc)
	got, ok := s.Read()
	if !ok || got != loc {
		t.Fatalf("Read = %v, %v, want %v", got, ok, loc)
	}

	s.Clear()
	if _, ok := s.Read(); ok {
		t.Fatalf("Read after Clear reported a hit")
	}
}

func TestSessionStore_InvalidEntryReadsAsAbsent(t *testing.T) {
	var s SessionStore
	s.Write(directory.Location{ID: "loc-1"}) // no kind, no name

	if got, ok := s.Read(); ok {
		t.Fatalf("Read = %v, want absent for invalid entry", got)
	}
}
