package view

import (
	"strconv"
	"time"

	"github.com/javiermolinar/classgrid/internal/dateutil"
	"github.com/javiermolinar/classgrid/internal/grid"
)

// HeaderLabels builds the day column labels for the week containing weekOf
// and reports which column, if any, is today.
func HeaderLabels(weekOf, today time.Time) ([]string, int) {
	labels := make([]string, 0, len(grid.Days))
	todayCol := -1
	for _, d := range grid.Days {
		date := dateutil.DayDate(weekOf, d)
		label := d.Short() + " " + strconv.Itoa(date.Day())
		if sameDay(date, today) {
			label = "*" + label + "*"
			todayCol = int(d)
		}
		labels = append(labels, label)
	}
	return labels, todayCol
}

// WeekTitle formats the week range shown in the title bar.
func WeekTitle(weekOf time.Time) string {
	mon := dateutil.DayDate(weekOf, grid.Monday)
	sat := dateutil.DayDate(weekOf, grid.Saturday)
	if mon.Month() == sat.Month() {
		return mon.Format("Jan 2") + " - " + strconv.Itoa(sat.Day()) + ", " + strconv.Itoa(sat.Year())
	}
	return mon.Format("Jan 2") + " - " + sat.Format("Jan 2") + ", " + strconv.Itoa(sat.Year())
}

func sameDay(a, b time.Time) bool {
	ya, ma, da := a.Date()
	yb, mb, db := b.Date()
	return ya == yb && ma == mb && da == db
}
