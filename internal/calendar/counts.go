package calendar

// Counts maps a calendar day to its commit count. Days with no commits
// are simply absent.
type Counts map[Date]int

// CountByDay folds raw commit days into per-day counts, keeping only days
// in the requested year. Input order does not matter.
func CountByDay(days []Date, year int) Counts {
	counts := make(Counts)
	for _, d := range days {
		if d.Year != year {
			continue
		}
		counts[d]++
	}
	return counts
}
