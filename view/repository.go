package view

import (
	"fmt"
	"time"

	"keytap/journal"
)

type ViewRepository interface {
	ListTallies(yearMonth string) (tallyReportForView, error)
	GetTally(date journal.Date) (journal.Tally, error)
}

type viewRepository struct {
	tallyRepo journal.TallyRepository
}

func NewViewRepository(tallyRepo journal.TallyRepository) ViewRepository {
	return &viewRepository{tallyRepo}
}

func (r *viewRepository) ListTallies(yearMonth string) (tallyReportForView, error) {
	monthStart, monthEnd, err := getMonthStartEnd(yearMonth)
	if err != nil {
		return nil, err
	}

	var reports tallyReportForView
	for d := monthStart; !d.After(monthEnd); d = d.AddDate(0, 0, 1) {
		date := journal.Date(d.Format("2006-01-02"))
		t, err := r.tallyRepo.GetTally(date)
		if err != nil {
			return nil, err
		}
		reports = append(reports, dayTally{Date: date, Tally: t})
	}
	return reports, nil
}

func (r *viewRepository) GetTally(date journal.Date) (journal.Tally, error) {
	return r.tallyRepo.GetTally(date)
}

func getMonthStartEnd(yearMonth string) (time.Time, time.Time, error) {
	monthStart, err := time.Parse("2006-01", yearMonth)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid month %q, expected YYYY-MM (ex: 2026-10)", yearMonth)
	}
	monthEnd := monthStart.AddDate(0, 1, 0).AddDate(0, 0, -1)
	return monthStart, monthEnd, nil
}

type dayTally struct {
	Date  journal.Date
	Tally journal.Tally
}

type tallyReportForView []dayTally

func (r tallyReportForView) FindByDate(date journal.Date) (journal.Tally, bool) {
	for _, report := range r {
		if report.Date == date {
			return report.Tally, true
		}
	}
	return journal.Tally{}, false
}

func (r tallyReportForView) TotalPressed() int {
	total := 0
	for _, report := range r {
		total += report.Tally.Pressed
	}
	return total
}
