package journal

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"keytap/keyboard"

	"github.com/alexflint/go-filemutex"
)

// Recorder counts resolved key events per day and periodically merges the
// counts into the repository. Several recorders may share one database;
// the file mutex serializes their writes.
type Recorder struct {
	repo          TallyRepository
	mux           *filemutex.FileMutex
	notificator   Notificator
	logger        *slog.Logger
	dayStart      time.Duration
	flushInterval time.Duration

	mu          sync.Mutex
	pending     map[Date]*Tally
	lastEventAt time.Time
	now         func() time.Time
}

func NewRecorder(repo TallyRepository, logger *slog.Logger, notificator Notificator, fm *filemutex.FileMutex, dayStart, flushInterval time.Duration) *Recorder {
	return &Recorder{
		repo:          repo,
		mux:           fm,
		notificator:   notificator,
		logger:        logger,
		dayStart:      dayStart,
		flushInterval: flushInterval,
		pending:       make(map[Date]*Tally),
		now:           time.Now,
	}
}

func (r *Recorder) KeyTyped(e keyboard.Event) {
	r.add(e)
}

func (r *Recorder) KeyPressed(e keyboard.Event) {
	r.add(e)
}

func (r *Recorder) KeyReleased(e keyboard.Event) {
	r.add(e)
}

func (r *Recorder) add(e keyboard.Event) {
	if e.When.IsZero() {
		e.When = r.now()
	}
	dt := NewDayTime(e.When, r.dayStart)
	date := dt.Date()

	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.lastEventAt.IsZero() && dt.IsOvernight(NewDayTime(r.lastEventAt, r.dayStart)) {
		r.logger.Info("day rolled over", slog.String("date", string(date)))
	}
	t, ok := r.pending[date]
	if !ok {
		t = &Tally{}
		r.pending[date] = t
	}
	t.Add(e)
	if e.When.After(r.lastEventAt) {
		r.lastEventAt = e.When
	}
}

// Flush merges the pending counts into the repository. On failure the
// counts of the dates not yet saved are kept for the next flush.
func (r *Recorder) Flush() error {
	r.mu.Lock()
	pending := r.pending
	lastEventAt := r.lastEventAt
	r.pending = make(map[Date]*Tally)
	r.mu.Unlock()

	if len(pending) == 0 {
		return nil
	}
	if err := r.store(pending, lastEventAt); err != nil {
		r.mu.Lock()
		for date, t := range pending {
			if cur, ok := r.pending[date]; ok {
				t.Merge(*cur)
			}
			r.pending[date] = t
		}
		r.mu.Unlock()
		return err
	}
	return nil
}

// store removes each date from pending once it is saved.
func (r *Recorder) store(pending map[Date]*Tally, lastEventAt time.Time) error {
	r.mux.Lock()
	defer r.mux.Unlock()

	for date, t := range pending {
		stored, err := r.repo.GetTally(date)
		if err != nil {
			return fmt.Errorf("get tally %s: %w", date, err)
		}
		stored.Merge(*t)
		if err := r.repo.SaveTally(date, stored); err != nil {
			return fmt.Errorf("save tally %s: %w", date, err)
		}
		delete(pending, date)
		r.logger.Debug("flush tally", slog.String("date", string(date)), slog.Int("pressed", t.Pressed))
	}
	if !lastEventAt.IsZero() {
		return r.repo.SaveLastEventAt(lastEventAt)
	}
	return nil
}

// Run marks the session as recording and flushes every flushInterval until
// ctx is done, then flushes once more and marks the session off.
func (r *Recorder) Run(ctx context.Context) error {
	if err := r.start(); err != nil {
		return err
	}

	r.logger.Debug("start polling", slog.Duration("interval", r.flushInterval))
	var err error
loop:
	for {
		select {
		case <-time.After(r.flushInterval):
			if err = r.Flush(); err != nil {
				break loop
			}
		case <-ctx.Done():
			break loop
		}
	}

	if ferr := r.Flush(); ferr != nil && err == nil {
		err = ferr
	}
	if serr := r.stop(); serr != nil && err == nil {
		err = serr
	}
	return err
}

func (r *Recorder) start() error {
	r.mux.Lock()
	defer r.mux.Unlock()

	s, err := r.repo.GetSessionState()
	if err != nil {
		return err
	}
	if s == SessionStateRecording {
		last, err := r.repo.GetLastEventAt()
		if err != nil {
			return err
		}
		if last != nil {
			r.logger.Warn("previous session was not stopped cleanly", slog.Time("last_event_at", *last))
		} else {
			r.logger.Warn("previous session was not stopped cleanly")
		}
	}
	if err := r.repo.SaveSessionState(SessionStateRecording); err != nil {
		return err
	}
	r.notify("Recording started", "Keyboard activity is being counted")
	return nil
}

func (r *Recorder) stop() error {
	r.mux.Lock()
	defer r.mux.Unlock()

	if err := r.repo.SaveSessionState(SessionStateOff); err != nil {
		return err
	}
	r.notify("Recording stopped", "See you next time")
	return nil
}

func (r *Recorder) notify(title, message string) {
	if err := r.notificator.Notify(title, message); err != nil {
		r.logger.Error("notify", slog.String("title", title), slog.Any("err", err))
	}
}
