package update

import (
	"github.com/toolstack/addressit/internal/metrics"
	"github.com/toolstack/addressit/internal/model"
)

func levelFromError(isErr bool) string {
	if isErr {
		return "error"
	}
	return "info"
}

// dueState classifies a due date for colouring: "overdue", "soon" (within
// the due-soon window) or "".
func dueState(it model.ChecklistItem, m Model) string {
	if it.Done || it.Due == "" {
		return ""
	}
	days, ok := metrics.DaysUntil(it.Due, m.Session.Now())
	switch {
	case !ok:
		return ""
	case days < 0:
		return "overdue"
	case days <= metrics.DueSoonDays:
		return "soon"
	default:
		return ""
	}
}
