package journal

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/tidwall/buntdb"
)

type TallyRepository interface {
	SaveSessionState(s SessionState) error
	GetSessionState() (SessionState, error)
	GetLastEventAt() (*time.Time, error)
	SaveLastEventAt(t time.Time) error

	SaveTally(date Date, t Tally) error
	GetTally(date Date) (Tally, error)
}

func NewTallyRepository(db *buntdb.DB) TallyRepository {
	return &tallyRepository{db: db}
}

type tallyRepository struct {
	db *buntdb.DB
}

const (
	SessionStateKey = "session_state"
	LastEventAtKey  = "last_event_at"
	tallyKeyPrefix  = "tally:"
)

func tallyKey(date Date) string {
	return tallyKeyPrefix + string(date)
}

func (r *tallyRepository) SaveSessionState(s SessionState) error {
	return r.db.Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set(SessionStateKey, string(s), nil)
		return err
	})
}

func (r *tallyRepository) GetSessionState() (SessionState, error) {
	var s SessionState
	err := r.db.View(func(tx *buntdb.Tx) error {
		v, err := tx.Get(SessionStateKey)
		if err != nil {
			return err
		}
		s = SessionState(v)
		return nil
	})
	if errors.Is(err, buntdb.ErrNotFound) {
		return SessionStateOff, nil
	} else if err != nil {
		return "", err
	}
	return s, nil
}

func (r *tallyRepository) SaveLastEventAt(t time.Time) error {
	return r.db.Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set(LastEventAtKey, t.Format(time.RFC3339Nano), nil)
		return err
	})
}

func (r *tallyRepository) GetLastEventAt() (*time.Time, error) {
	var at *time.Time
	err := r.db.View(func(tx *buntdb.Tx) error {
		v, err := tx.Get(LastEventAtKey)
		if errors.Is(err, buntdb.ErrNotFound) {
			return nil
		} else if err != nil {
			return err
		}
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return err
		}
		at = &t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return at, nil
}

func (r *tallyRepository) SaveTally(date Date, t Tally) error {
	return r.db.Update(func(tx *buntdb.Tx) error {
		bs, err := json.Marshal(t)
		if err != nil {
			return err
		}
		_, _, err = tx.Set(tallyKey(date), string(bs), nil)
		return err
	})
}

func (r *tallyRepository) GetTally(date Date) (Tally, error) {
	var t Tally
	err := r.db.View(func(tx *buntdb.Tx) error {
		v, err := tx.Get(tallyKey(date))
		if errors.Is(err, buntdb.ErrNotFound) {
			return nil
		} else if err != nil {
			return err
		}
		return json.Unmarshal([]byte(v), &t)
	})
	if err != nil {
		return Tally{}, err
	}
	return t, nil
}
