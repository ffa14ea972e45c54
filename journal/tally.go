package journal

import (
	"sort"
	"time"

	"keytap/keyboard"
)

// Tally is the keyboard activity of one day.
type Tally struct {
	Keys     map[string]int `json:"keys"`
	Typed    int            `json:"typed"`
	Pressed  int            `json:"pressed"`
	Released int            `json:"released"`
	Modified int            `json:"modified"`
	FirstAt  *time.Time     `json:"first_at"`
	LastAt   *time.Time     `json:"last_at"`
}

func (t *Tally) Add(e keyboard.Event) {
	switch e.Kind {
	case keyboard.KindTyped:
		if e.HasChar() {
			t.Typed++
		}
	case keyboard.KindPressed:
		t.Pressed++
		if t.Keys == nil {
			t.Keys = make(map[string]int)
		}
		t.Keys[e.Key.String()]++
		if e.HasShift() || e.HasControl() || e.HasAlt() {
			t.Modified++
		}
	case keyboard.KindReleased:
		t.Released++
	}
	t.touch(e.When)
}

// Merge adds the counts of o into t.
func (t *Tally) Merge(o Tally) {
	for k, n := range o.Keys {
		if t.Keys == nil {
			t.Keys = make(map[string]int)
		}
		t.Keys[k] += n
	}
	t.Typed += o.Typed
	t.Pressed += o.Pressed
	t.Released += o.Released
	t.Modified += o.Modified
	if o.FirstAt != nil {
		t.touch(*o.FirstAt)
	}
	if o.LastAt != nil {
		t.touch(*o.LastAt)
	}
}

func (t *Tally) touch(at time.Time) {
	if at.IsZero() {
		return
	}
	if t.FirstAt == nil || at.Before(*t.FirstAt) {
		first := at
		t.FirstAt = &first
	}
	if t.LastAt == nil || at.After(*t.LastAt) {
		last := at
		t.LastAt = &last
	}
}

func (t *Tally) IsEmpty() bool {
	return t.Pressed == 0 && t.Typed == 0 && t.Released == 0
}

// ActiveTime is the span between the first and the last event of the day.
func (t *Tally) ActiveTime() time.Duration {
	if t.FirstAt == nil || t.LastAt == nil {
		return 0
	}
	return t.LastAt.Sub(*t.FirstAt)
}

type KeyCount struct {
	Key   string
	Count int
}

// TopKeys returns the n most pressed keys, ties broken by name. n <= 0 returns all.
func (t *Tally) TopKeys(n int) []KeyCount {
	counts := make([]KeyCount, 0, len(t.Keys))
	for k, c := range t.Keys {
		counts = append(counts, KeyCount{Key: k, Count: c})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Key < counts[j].Key
	})
	if n > 0 && len(counts) > n {
		counts = counts[:n]
	}
	return counts
}
