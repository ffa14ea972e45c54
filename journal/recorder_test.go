package journal

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"keytap/keyboard"

	"github.com/alexflint/go-filemutex"
)

type testNotificator struct {
	titles []string
}

func (n *testNotificator) Notify(title, message string) error {
	n.titles = append(n.titles, title)
	return nil
}

func newTestRecorder(t *testing.T, repo TallyRepository, no Notificator) *Recorder {
	t.Helper()
	fm, err := filemutex.New(filepath.Join(t.TempDir(), "keytap.lock"))
	if err != nil {
		t.Fatalf("filemutex: %v", err)
	}
	t.Cleanup(func() { fm.Close() })
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRecorder(repo, logger, no, fm, 5*time.Hour, 10*time.Millisecond)
}

func TestRecorderFlush(t *testing.T) {
	repo := newTestRepository(t)
	r := newTestRecorder(t, repo, NopNotificator{})

	r.KeyTyped(keyboard.Event{Kind: keyboard.KindTyped, Key: keyboard.KeyA, Char: 'a', When: at(9, 0)})
	r.KeyPressed(keyboard.Event{Kind: keyboard.KindPressed, Key: keyboard.KeyA, When: at(9, 0)})
	r.KeyReleased(keyboard.Event{Kind: keyboard.KindReleased, Key: keyboard.KeyA, When: at(9, 1)})
	// before the day start, counts towards the previous day
	r.KeyPressed(keyboard.Event{Kind: keyboard.KindPressed, Key: keyboard.KeyB, When: at(2, 0)})

	if err := r.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	today, _ := repo.GetTally("2026-10-18")
	if today.Pressed != 1 || today.Typed != 1 || today.Released != 1 || today.Keys["KEY_A"] != 1 {
		t.Errorf("today = %+v", today)
	}
	yesterday, _ := repo.GetTally("2026-10-17")
	if yesterday.Keys["KEY_B"] != 1 {
		t.Errorf("yesterday = %+v", yesterday)
	}
	last, _ := repo.GetLastEventAt()
	if last == nil || !last.Equal(at(9, 1)) {
		t.Errorf("last event at = %v", last)
	}

	// a second flush adds to the stored counts
	r.KeyPressed(keyboard.Event{Kind: keyboard.KindPressed, Key: keyboard.KeyA, When: at(9, 5)})
	if err := r.Flush(); err != nil {
		t.Fatal(err)
	}
	today, _ = repo.GetTally("2026-10-18")
	if today.Keys["KEY_A"] != 2 {
		t.Errorf("after second flush = %+v", today)
	}
}

func TestRecorderRun(t *testing.T) {
	repo := newTestRepository(t)
	no := &testNotificator{}
	r := newTestRecorder(t, repo, no)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- r.Run(ctx)
	}()

	time.Sleep(20 * time.Millisecond)
	if s, _ := repo.GetSessionState(); s != SessionStateRecording {
		t.Errorf("state while running = %q", s)
	}
	r.KeyPressed(keyboard.Event{Kind: keyboard.KindPressed, Key: keyboard.KeySpace, When: at(12, 0)})
	cancel()

	if err := <-errCh; err != nil {
		t.Fatalf("Run: %v", err)
	}
	if s, _ := repo.GetSessionState(); s != SessionStateOff {
		t.Errorf("state after stop = %q", s)
	}
	if tl, _ := repo.GetTally("2026-10-18"); tl.Keys["KEY_SPACE"] != 1 {
		t.Errorf("tally = %+v", tl)
	}
	if len(no.titles) != 2 {
		t.Errorf("notifications = %v", no.titles)
	}
}

func TestRecorderRunAfterUncleanStop(t *testing.T) {
	repo := newTestRepository(t)
	if err := repo.SaveSessionState(SessionStateRecording); err != nil {
		t.Fatal(err)
	}
	if err := repo.SaveLastEventAt(at(23, 0)); err != nil {
		t.Fatal(err)
	}
	r := newTestRecorder(t, repo, NopNotificator{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := r.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if s, _ := repo.GetSessionState(); s != SessionStateOff {
		t.Errorf("state = %q", s)
	}
}

// flakyRepository fails the first SaveTally of one date.
type flakyRepository struct {
	TallyRepository
	failDate Date
	failed   bool
}

func (r *flakyRepository) SaveTally(date Date, t Tally) error {
	if date == r.failDate && !r.failed {
		r.failed = true
		return errors.New("disk full")
	}
	return r.TallyRepository.SaveTally(date, t)
}

func TestRecorderFlushRetryDoesNotDoubleCount(t *testing.T) {
	for _, failDate := range []Date{"2026-10-17", "2026-10-18"} {
		t.Run(string(failDate), func(t *testing.T) {
			repo := &flakyRepository{TallyRepository: newTestRepository(t), failDate: failDate}
			r := newTestRecorder(t, repo, NopNotificator{})

			r.KeyPressed(keyboard.Event{Kind: keyboard.KindPressed, Key: keyboard.KeyA, When: at(2, 0)})
			r.KeyPressed(keyboard.Event{Kind: keyboard.KindPressed, Key: keyboard.KeyA, When: at(9, 0)})

			if err := r.Flush(); err == nil {
				t.Fatal("want error from the first flush")
			}
			if err := r.Flush(); err != nil {
				t.Fatalf("retry: %v", err)
			}
			for _, date := range []Date{"2026-10-17", "2026-10-18"} {
				tl, err := repo.GetTally(date)
				if err != nil {
					t.Fatal(err)
				}
				if tl.Pressed != 1 {
					t.Errorf("%s: pressed = %d, want 1", date, tl.Pressed)
				}
			}
		})
	}
}
