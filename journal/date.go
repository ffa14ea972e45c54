package journal

import "time"

const dateLayout = "2006-01-02"

type Date string

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return "", err
	}
	return Date(t.Format(dateLayout)), nil
}

// DayTime is a point in time whose day starts dayStart after midnight, so
// late-night typing counts towards the previous day.
type DayTime struct {
	t        time.Time
	dayStart time.Duration
}

func NewDayTime(t time.Time, dayStart time.Duration) DayTime {
	return DayTime{t: t, dayStart: dayStart}
}

func (dt DayTime) Date() Date {
	return Date(dt.t.Add(-dt.dayStart).Format(dateLayout))
}

func (dt DayTime) IsOvernight(before DayTime) bool {
	return dt.Date() != before.Date()
}
