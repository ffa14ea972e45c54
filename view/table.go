package view

import (
	"fmt"
	"io"
	"time"

	"keytap/journal"

	"github.com/jedib0t/go-pretty/v6/table"
)

type Viewer interface {
	Do(yearMonth string) error
	Day(date journal.Date) error
}

type tableViewer struct {
	repo ViewRepository
	out  io.Writer
}

func NewTableViewer(repo ViewRepository, out io.Writer) Viewer {
	return &tableViewer{repo: repo, out: out}
}

func (t *tableViewer) Do(yearMonth string) error {
	reports, err := t.repo.ListTallies(yearMonth)
	if err != nil {
		return err
	}

	tb := buildMonthTable(reports)
	tb.SetOutputMirror(t.out)
	tb.Render()
	return nil
}

func (t *tableViewer) Day(date journal.Date) error {
	tl, err := t.repo.GetTally(date)
	if err != nil {
		return err
	}

	tb := buildDayTable(date, tl)
	tb.SetOutputMirror(t.out)
	tb.Render()
	return nil
}

func buildMonthTable(reports tallyReportForView) table.Writer {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Date", "First", "Last", "Active", "Pressed", "Typed", "Modified", "Top key"})

	for _, rp := range reports {
		tl := rp.Tally
		if tl.IsEmpty() {
			t.AppendRow(table.Row{rp.Date, "", "", "", 0, 0, 0, ""})
			continue
		}
		top := ""
		if keys := tl.TopKeys(1); len(keys) == 1 {
			top = keys[0].Key
		}
		t.AppendRow(table.Row{
			rp.Date,
			ptrTimeToString(tl.FirstAt),
			ptrTimeToString(tl.LastAt),
			durationToString(tl.ActiveTime()),
			tl.Pressed,
			tl.Typed,
			tl.Modified,
			top,
		})
	}
	t.AppendFooter(table.Row{"", "", "", "Total", reports.TotalPressed()})
	t.SetStyle(table.StyleRounded)
	return t
}

func buildDayTable(date journal.Date, tl journal.Tally) table.Writer {
	t := table.NewWriter()
	t.SetTitle(string(date))
	t.AppendHeader(table.Row{"Key", "Pressed", "Share"})
	for _, kc := range tl.TopKeys(0) {
		t.AppendRow(table.Row{kc.Key, kc.Count, shareToString(kc.Count, tl.Pressed)})
	}
	t.AppendFooter(table.Row{"Total", tl.Pressed, ""})
	t.SetStyle(table.StyleRounded)
	return t
}

func durationToString(d time.Duration) string {
	return fmt.Sprintf("%02d:%02d", int(d.Hours()), int(d.Minutes())%60)
}

func ptrTimeToString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("15:04")
}

func shareToString(n, total int) string {
	if total == 0 {
		return ""
	}
	return fmt.Sprintf("%.1f%%", float64(n)*100/float64(total))
}
