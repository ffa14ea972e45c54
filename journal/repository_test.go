package journal

import (
	"testing"

	"github.com/tidwall/buntdb"
)

func newTestRepository(t *testing.T) TallyRepository {
	t.Helper()
	db, err := buntdb.Open(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewTallyRepository(db)
}

func TestRepositorySessionState(t *testing.T) {
	repo := newTestRepository(t)
	s, err := repo.GetSessionState()
	if err != nil || s != SessionStateOff {
		t.Fatalf("default state = %q, %v", s, err)
	}
	if err := repo.SaveSessionState(SessionStateRecording); err != nil {
		t.Fatal(err)
	}
	if s, _ := repo.GetSessionState(); s != SessionStateRecording {
		t.Errorf("got %q", s)
	}
}

func TestRepositoryLastEventAt(t *testing.T) {
	repo := newTestRepository(t)
	got, err := repo.GetLastEventAt()
	if err != nil || got != nil {
		t.Fatalf("empty db: %v, %v", got, err)
	}
	if err := repo.SaveLastEventAt(at(9, 15)); err != nil {
		t.Fatal(err)
	}
	got, err = repo.GetLastEventAt()
	if err != nil || got == nil || !got.Equal(at(9, 15)) {
		t.Errorf("got %v, %v", got, err)
	}
}

func TestRepositoryTally(t *testing.T) {
	repo := newTestRepository(t)
	empty, err := repo.GetTally("2026-10-18")
	if err != nil || !empty.IsEmpty() {
		t.Fatalf("missing tally: %+v, %v", empty, err)
	}

	tl := Tally{Keys: map[string]int{"KEY_SPACE": 7}, Pressed: 7, Typed: 7}
	if err := repo.SaveTally("2026-10-18", tl); err != nil {
		t.Fatal(err)
	}
	got, err := repo.GetTally("2026-10-18")
	if err != nil {
		t.Fatal(err)
	}
	if got.Pressed != 7 || got.Keys["KEY_SPACE"] != 7 {
		t.Errorf("got %+v", got)
	}
	if other, _ := repo.GetTally("2026-10-19"); !other.IsEmpty() {
		t.Errorf("other day: %+v", other)
	}
}
