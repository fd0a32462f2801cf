package domain

import (
	"fmt"
	"time"
)

type DueState string

const (
	DueOverdue  DueState = "overdue"
	DueToday    DueState = "today"
	DueSoon     DueState = "soon"
	DueUpcoming DueState = "upcoming"
)

// DueSoonWindow is the last day offset still classified as soon
const DueSoonWindow = 7

// DueStatus classifies a due date relative to a reference day
type DueStatus struct {
	Status    DueState `json:"status"`
	Label     string   `json:"label"`
	DaysUntil int      `json:"daysUntil"`
}

// ClassifyDue computes the status and display label of due as seen at now.
// now is reduced to its calendar day in its own location.
func ClassifyDue(due Date, now time.Time) DueStatus {
	today := DateOf(now)
	days := DaysBetween(today, due)

	switch {
	case days < 0:
		n := -days
		return DueStatus{
			Status:    DueOverdue,
			Label:     fmt.Sprintf("Overdue · %d %s", n, Plural(int64(n), "day")),
			DaysUntil: days,
		}
	case days == 0:
		return DueStatus{Status: DueToday, Label: "Due today", DaysUntil: days}
	case days == 1:
		return DueStatus{Status: DueSoon, Label: "Due tomorrow", DaysUntil: days}
	case days <= DueSoonWindow:
		return DueStatus{Status: DueSoon, Label: fmt.Sprintf("Due in %d days", days), DaysUntil: days}
	}

	layout := "2 Jan"
	if due.Year() != today.Year() {
		layout = "2 Jan 2006"
	}
	return DueStatus{Status: DueUpcoming, Label: due.Format(layout), DaysUntil: days}
}

// RecurringView is a recurring expense with its due classification
type RecurringView struct {
	*RecurringExpense
	Due DueStatus `json:"due"`
}

// NewRecurringView classifies r's next due date at now. Inactive records are
// reported as upcoming with no label.
func NewRecurringView(r *RecurringExpense, now time.Time) RecurringView {
	if !r.IsActive {
		return RecurringView{
			RecurringExpense: r,
			Due:              DueStatus{Status: DueUpcoming, DaysUntil: DaysBetween(DateOf(now), r.NextDueDate)},
		}
	}
	return RecurringView{RecurringExpense: r, Due: ClassifyDue(r.NextDueDate, now)}
}
