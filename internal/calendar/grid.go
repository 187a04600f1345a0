package calendar

import "time"

// Slot is one cell of a week column: either a day of the target year or
// padding that belongs to the neighboring year.
type Slot struct {
	Date   Date
	InYear bool
}

// Week is one Sunday-through-Saturday column of the grid.
// Month is the month of the first in-year slot, used for label placement;
// it is 0 when every slot is padding.
type Week struct {
	Slots [7]Slot // index 0 = Sunday ... 6 = Saturday
	Month time.Month
}

// Grid covers a whole year in week columns. The first column starts on
// the Sunday on or before Jan 1 and the last ends on the Saturday on or
// after Dec 31, so every column holds exactly 7 contiguous days.
type Grid []Week

// BuildGrid expands a year into Sunday-aligned week columns. Every day of
// the year lands in exactly one slot; slots outside the year are padding.
func BuildGrid(year int) Grid {
	start := Date{Year: year, Month: time.January, Day: 1}
	end := Date{Year: year, Month: time.December, Day: 31}

	// Walk the boundaries out to whole weeks.
	from := start
	for from.Weekday() != 0 {
		from = from.AddDays(-1)
	}
	to := end
	for to.Weekday() != 6 {
		to = to.AddDays(1)
	}

	var grid Grid
	day := from
	for !day.After(to) {
		var week Week
		for i := 0; i < 7; i++ {
			if !day.Before(start) && !day.After(end) {
				week.Slots[i] = Slot{Date: day, InYear: true}
				if week.Month == 0 {
					week.Month = day.Month
				}
			}
			day = day.AddDays(1)
		}
		grid = append(grid, week)
	}
	return grid
}
