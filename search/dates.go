package search

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// resolveDate turns a due-date filter value into the start of a calendar day
// in now's location. Accepts today, tomorrow, yesterday and yyyy-MM-dd.
func resolveDate(value string, now time.Time) (time.Time, bool) {
	today := startOfDay(now)
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "today":
		return today, true
	case "tomorrow":
		return today.AddDate(0, 0, 1), true
	case "yesterday":
		return today.AddDate(0, 0, -1), true
	}

	d, err := time.ParseInLocation(dateLayout, strings.TrimSpace(value), now.Location())
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}
