package generator

import (
	"math/rand"
	"time"
)

func dateRules() map[string]GenerateFunc {
	return map[string]GenerateFunc{
		"anytime": genDateAnytime,
		"future":  genDateFuture,
		"past":    genDatePast,
		"recent":  genDateRecent,
		"soon":    genDateSoon,
		"month":   genMonth,
		"weekday": genWeekday,
	}
}

var (
	monthNames = []string{
		"January", "February", "March", "April", "May", "June", "July",
		"August", "September", "October", "November", "December",
	}
	monthAbbrevs = []string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep",
		"Oct", "Nov", "Dec",
	}
	weekdayNames = []string{
		"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday",
		"Saturday",
	}
	weekdayAbbrevs = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
)

const yearDuration = 365 * 24 * time.Hour

// randomOffset draws a duration uniformly from (0, span].
func randomOffset(span time.Duration) time.Duration {
	if span <= 0 {
		span = yearDuration
	}
	return time.Duration(1 + rand.Int63n(int64(span)))
}

func formatDate(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// genDateAnytime produces a date within one year either side of now.
func genDateAnytime(_ Rule) any {
	offset := time.Duration(rand.Int63n(int64(2*yearDuration))) - yearDuration
	return formatDate(time.Now().Add(offset))
}

func genDateFuture(r Rule) any {
	years := r.Years
	if years <= 0 {
		years = 1
	}
	return formatDate(time.Now().Add(randomOffset(time.Duration(years) * yearDuration)))
}

func genDatePast(r Rule) any {
	years := r.Years
	if years <= 0 {
		years = 1
	}
	return formatDate(time.Now().Add(-randomOffset(time.Duration(years) * yearDuration)))
}

func genDateRecent(r Rule) any {
	days := r.Days
	if days <= 0 {
		days = 1
	}
	return formatDate(time.Now().Add(-randomOffset(time.Duration(days) * 24 * time.Hour)))
}

func genDateSoon(r Rule) any {
	days := r.Days
	if days <= 0 {
		days = 1
	}
	return formatDate(time.Now().Add(randomOffset(time.Duration(days) * 24 * time.Hour)))
}

func genMonth(r Rule) any {
	if r.Abbreviated {
		return pick(monthAbbrevs)
	}
	return pick(monthNames)
}

func genWeekday(r Rule) any {
	if r.Abbreviated {
		return pick(weekdayAbbrevs)
	}
	return pick(weekdayNames)
}
