package calendar

import "time"

// MonthLabels decides where month names and month separators go.
//
// labels[i] is the month to print above week i, or 0 for no label; each
// month is labeled exactly once, at the first week whose first in-year day
// falls in it. separators[i] is true when a month boundary sits between
// week i and week i+1 (a transition into trailing padding is not one).
func MonthLabels(grid Grid) (labels []time.Month, separators []bool) {
	labels = make([]time.Month, len(grid))
	if len(grid) > 0 {
		separators = make([]bool, len(grid)-1)
	}

	last := time.Month(0)
	for i, week := range grid {
		if week.Month != last && week.Month != 0 {
			labels[i] = week.Month
			last = week.Month
		}
		if i+1 < len(grid) {
			next := grid[i+1].Month
			separators[i] = next != week.Month && next != 0
		}
	}
	return labels, separators
}
