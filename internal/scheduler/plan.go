package scheduler

import (
	"time"

	"github.com/toolstack/addressit/internal/metrics"
	"github.com/toolstack/addressit/internal/model"
)

// Plan lists the future due-state changes of every open item with a valid
// due date, in now's location. An item enters the due-soon window at
// midnight metrics.DueSoonDays days before its date and turns overdue at
// the midnight after it. Changes at or before now are left out.
func Plan(state model.ApplicationState, now time.Time) []DueEvent {
	var out []DueEvent
	for _, sec := range state.Sections {
		for _, it := range sec.Items {
			if it.Done {
				continue
			}
			due, ok := metrics.ParseDue(it.Due, now.Location())
			if !ok {
				continue
			}
			y, m, d := due.Date()
			base := DueEvent{SectionID: sec.ID, ItemID: it.ID, Title: it.Title, Due: it.Due}

			soon := base
			soon.Kind = DueSoon
			soon.At = time.Date(y, m, d-metrics.DueSoonDays, 0, 0, 0, 0, now.Location())
			if soon.At.After(now) {
				out = append(out, soon)
			}

			overdue := base
			overdue.Kind = DueOverdue
			overdue.At = time.Date(y, m, d+1, 0, 0, 0, 0, now.Location())
			if overdue.At.After(now) {
				out = append(out, overdue)
			}
		}
	}
	return out
}
