package calendar

import (
	"testing"
	"time"
)

func TestMonthLabels_EachMonthOnce(t *testing.T) {
	t.Parallel()

	for _, year := range []int{2021, 2023, 2024} {
		grid := BuildGrid(year)
		labels, separators := MonthLabels(grid)

		if len(labels) != len(grid) {
			t.Fatalf("year %d: %d labels for %d weeks", year, len(labels), len(grid))
		}
		if len(separators) != len(grid)-1 {
			t.Fatalf("year %d: %d separators for %d weeks", year, len(separators), len(grid))
		}

		seen := make(map[time.Month]int)
		for _, m := range labels {
			if m != 0 {
				seen[m]++
			}
		}
		if len(seen) != 12 {
			t.Fatalf("year %d: labeled %d months, want 12", year, len(seen))
		}
		for m, n := range seen {
			if n != 1 {
				t.Fatalf("year %d: month %v labeled %d times", year, m, n)
			}
		}
	}
}

func TestMonthLabels_FirstLabelIsJanuaryAtWeekZero(t *testing.T) {
	t.Parallel()

	grid := BuildGrid(2021)
	labels, _ := MonthLabels(grid)

	if labels[0] != time.January {
		t.Fatalf("label[0] = %v, want January", labels[0])
	}
	for i := 1; i < len(labels); i++ {
		if labels[i] == time.January {
			t.Fatalf("January labeled again at week %d", i)
		}
	}
}

func TestMonthLabels_SeparatorsAtMonthBoundaries(t *testing.T) {
	t.Parallel()

	grid := BuildGrid(2021)
	labels, separators := MonthLabels(grid)

	// A separator before week i+1 means week i+1 carries that month's label
	// (every label after the first is introduced by a separator).
	for i, sep := range separators {
		if sep && labels[i+1] == 0 {
			t.Fatalf("separator after week %d without a label on week %d", i, i+1)
		}
		if !sep && labels[i+1] != 0 {
			t.Fatalf("label on week %d without a separator after week %d", i+1, i)
		}
	}
}

func TestMonthLabels_NoSeparatorIntoTrailingPadding(t *testing.T) {
	t.Parallel()

	// Fabricate a grid whose final week is all padding; the transition
	// into it must not count as a month boundary.
	grid := BuildGrid(2021)
	grid = append(grid, Week{})

	_, separators := MonthLabels(grid)
	if separators[len(separators)-1] {
		t.Fatalf("separator emitted before an all-padding week")
	}
}
