package cmd

import (
	"fmt"
	"time"
)

// dateLayouts maps input shapes to the layout that parses them and the unit
// an implicit range spans.
var dateLayouts = []struct {
	layout string
	years  int
	months int
	days   int
}{
	{"2006", 1, 0, 0},
	{"2006-01", 0, 1, 0},
	{"2006-01-02", 0, 0, 1},
}

// parseDateRangeFromArgs turns one or two 'yyyy', 'yyyy-mm', or 'yyyy-mm-dd'
// arguments into a half-open [start, end) range. A single argument spans its
// natural unit: a bare year covers that whole year.
func parseDateRangeFromArgs(args []string) (start time.Time, end time.Time, err error) {
	switch len(args) {
	case 1:
		var years, months, days int
		start, years, months, days, err = parseSingleDatestring(args[0])
		if err != nil {
			return
		}
		end = start.AddDate(years, months, days)

	case 2:
		start, _, _, _, err = parseSingleDatestring(args[0])
		if err != nil {
			return
		}
		end, _, _, _, err = parseSingleDatestring(args[1])

	default:
		err = fmt.Errorf("expected one or two date arguments")
	}
	return
}

func parseSingleDatestring(ds string) (date time.Time, years, months, days int, err error) {
	for _, l := range dateLayouts {
		if len(ds) != len(l.layout) {
			continue
		}
		date, err = time.Parse(l.layout, ds)
		if err != nil {
			err = fmt.Errorf("parsing datestring %q: %w", ds, err)
			return
		}
		years, months, days = l.years, l.months, l.days
		return
	}
	err = fmt.Errorf("invalid date format: %q", ds)
	return
}
