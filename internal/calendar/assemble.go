package calendar

import "time"

// Cell is one render-ready day: its date, raw count and intensity level.
// Padding cells keep InYear false and must get a neutral look from the
// renderer, distinct from LevelZero.
type Cell struct {
	Date   Date
	Count  int
	Level  Level
	InYear bool
}

// RenderGrid is everything a renderer needs: week columns of 7 cells,
// a parallel header of month labels and the month-boundary separators.
// len(Separators) == len(Weeks)-1 always holds (0 for an empty grid).
type RenderGrid struct {
	Year       int
	Weeks      [][7]Cell
	Labels     []time.Month
	Separators []bool
}

// Assemble combines a year grid with per-day counts into a RenderGrid.
// It is a pure function: same inputs, same output.
func Assemble(grid Grid, counts Counts, scale Scale, year int) RenderGrid {
	labels, separators := MonthLabels(grid)

	weeks := make([][7]Cell, len(grid))
	for wi, week := range grid {
		for si, slot := range week.Slots {
			if !slot.InYear {
				continue
			}
			count := counts[slot.Date]
			weeks[wi][si] = Cell{
				Date:   slot.Date,
				Count:  count,
				Level:  scale.Classify(count),
				InYear: true,
			}
		}
	}

	return RenderGrid{
		Year:       year,
		Weeks:      weeks,
		Labels:     labels,
		Separators: separators,
	}
}

// BuildYear runs the whole pipeline for one year of commit days.
func BuildYear(days []Date, year int, scale Scale) RenderGrid {
	counts := CountByDay(days, year)
	grid := BuildGrid(year)
	return Assemble(grid, counts, scale, year)
}

// BuildYearCounts is BuildYear for sources that already aggregate per day
// (e.g. the GitHub contribution calendar).
func BuildYearCounts(counts Counts, year int, scale Scale) RenderGrid {
	return Assemble(BuildGrid(year), counts, scale, year)
}
