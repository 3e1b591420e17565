package interpreter

import (
	"strconv"
	"strings"
	"time"

	"github.com/nmoralesv/informe/internal/model"
)

const isoDate = "2006-01-02"

// relativePeriods is checked in this exact priority order; the first phrase
// set with a hit wins. "Este mes" must be checked before "mes pasado"
// phrasings and equally for weeks, otherwise the shared words cross-match.
// Quarter and semester phrasings, past or present, both resolve to the
// current period — the distinction is rarely meant and never reliable.
var relativePeriods = []struct {
	resolve func(today time.Time) (time.Time, time.Time)
	phrases []string
}{
	{ // today
		phrases: []string{"hoy", "today", "este día", "el día de hoy", "hoy día"},
		resolve: func(today time.Time) (time.Time, time.Time) {
			return today, today
		},
	},
	{ // yesterday
		phrases: []string{"ayer", "yesterday", "el día anterior", "día anterior", "el día pasado"},
		resolve: func(today time.Time) (time.Time, time.Time) {
			y := today.AddDate(0, 0, -1)
			return y, y
		},
	},
	{ // this week, Monday through today
		phrases: []string{"esta semana", "current week", "la semana actual", "semana actual", "semana en curso", "semana presente"},
		resolve: func(today time.Time) (time.Time, time.Time) {
			return today.AddDate(0, 0, -mondayOffset(today)), today
		},
	},
	{ // last week, Monday through Sunday
		phrases: []string{"última semana", "semana pasada", "last week", "la semana anterior", "semana anterior", "la semana pasada", "semana que pasó"},
		resolve: func(today time.Time) (time.Time, time.Time) {
			start := today.AddDate(0, 0, -(mondayOffset(today) + 7))
			return start, start.AddDate(0, 0, 6)
		},
	},
	{ // this month, the 1st through today
		phrases: []string{"este mes", "current month", "el mes actual", "mes actual", "mes en curso", "mes presente", "mes corriente"},
		resolve: func(today time.Time) (time.Time, time.Time) {
			return firstOfMonth(today), today
		},
	},
	{ // last month, whole calendar month
		phrases: []string{"último mes", "mes pasado", "last month", "el mes anterior", "mes anterior", "el mes pasado", "mes que pasó"},
		resolve: func(today time.Time) (time.Time, time.Time) {
			end := firstOfMonth(today).AddDate(0, 0, -1)
			return firstOfMonth(end), end
		},
	},
	{ // current quarter, quarter start through today
		phrases: []string{"último trimestre", "last quarter", "trimestre pasado", "trimestre anterior", "el trimestre pasado", "trimestre que pasó", "este trimestre", "trimestre actual"},
		resolve: func(today time.Time) (time.Time, time.Time) {
			startMonth := time.Month((int(today.Month())-1)/3*3 + 1)
			return time.Date(today.Year(), startMonth, 1, 0, 0, 0, 0, today.Location()), today
		},
	},
	{ // current semester, January or July 1st through today
		phrases: []string{"último semestre", "semestre pasado", "semestre anterior", "el semestre pasado", "semestre que pasó", "este semestre", "semestre actual"},
		resolve: func(today time.Time) (time.Time, time.Time) {
			startMonth := time.January
			if today.Month() > time.June {
				startMonth = time.July
			}
			return time.Date(today.Year(), startMonth, 1, 0, 0, 0, 0, today.Location()), today
		},
	},
	{ // last year, whole calendar year
		phrases: []string{"último año", "año pasado", "last year", "el año anterior", "año anterior", "el año pasado", "año que pasó"},
		resolve: func(today time.Time) (time.Time, time.Time) {
			return time.Date(today.Year()-1, time.January, 1, 0, 0, 0, 0, today.Location()),
				time.Date(today.Year()-1, time.December, 31, 0, 0, 0, 0, today.Location())
		},
	},
	{ // this year, January 1st through today
		phrases: []string{"este año", "current year", "el año actual", "año actual", "año en curso", "año presente", "año corriente"},
		resolve: func(today time.Time) (time.Time, time.Time) {
			return time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location()), today
		},
	},
}

// resolveDateRange turns the temporal phrasing of the text into a concrete
// calendar-date pair relative to the current date. Explicit "desde X hasta
// Y" ranges override everything, then single explicit date literals, then
// the relative phrase table, then "últimos N <unit>". Malformed literals
// (e.g. 31/02) are dropped silently; they never fail the call.
func (i *Interpreter) resolveDateRange(text string) *model.DateRange {
	today := dateOnly(i.now())

	if m := i.dateRangeRe.FindStringSubmatch(text); m != nil {
		from, okFrom := buildDate(m[3], m[2], m[1])
		until, okUntil := buildDate(m[6], m[5], m[4])
		if okFrom && okUntil {
			return rangeOf(from, until)
		}
	}

	if m := i.dmyDateRe.FindStringSubmatch(text); m != nil {
		if d, ok := buildDate(m[3], m[2], m[1]); ok {
			return rangeOf(d, d)
		}
	}
	if m := i.isoDateRe.FindStringSubmatch(text); m != nil {
		if d, ok := buildDate(m[1], m[2], m[3]); ok {
			return rangeOf(d, d)
		}
	}

	for _, period := range relativePeriods {
		if containsAny(text, period.phrases) {
			from, until := period.resolve(today)
			return rangeOf(from, until)
		}
	}

	if m := i.lastUnitsRe.FindStringSubmatch(text); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil && n > 0 {
			if days, ok := unitDays(m[2]); ok {
				return rangeOf(today.AddDate(0, 0, -n*days), today)
			}
		}
	}

	return nil
}

// unitDays maps a time-unit word to its length in days. Months, quarters
// and semesters are approximated as 30, 90 and 180 days, not calendar-exact.
func unitDays(unit string) (int, bool) {
	switch {
	case strings.HasPrefix(unit, "día"):
		return 1, true
	case strings.HasPrefix(unit, "semana"):
		return 7, true
	case strings.HasPrefix(unit, "trimestre"):
		return 90, true
	case strings.HasPrefix(unit, "semestre"):
		return 180, true
	case strings.HasPrefix(unit, "mes"):
		return 30, true
	default:
		return 0, false
	}
}

// buildDate validates a year/month/day triple of decimal strings. Inputs
// that normalize (Feb 30 becoming Mar 2) are rejected, not silently moved.
func buildDate(year, month, day string) (time.Time, bool) {
	y, errY := strconv.Atoi(year)
	m, errM := strconv.Atoi(month)
	d, errD := strconv.Atoi(day)
	if errY != nil || errM != nil || errD != nil {
		return time.Time{}, false
	}

	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if t.Year() != y || t.Month() != time.Month(m) || t.Day() != d {
		return time.Time{}, false
	}
	return t, true
}

func rangeOf(from, until time.Time) *model.DateRange {
	return &model.DateRange{
		From:  from.Format(isoDate),
		Until: until.Format(isoDate),
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// mondayOffset is the number of days since the most recent Monday.
func mondayOffset(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
