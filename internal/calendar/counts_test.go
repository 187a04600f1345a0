package calendar

import (
	"testing"
	"time"
)

func TestCountByDay_AccumulatesSameDay(t *testing.T) {
	t.Parallel()

	day := Date{Year: 2021, Month: time.June, Day: 5}
	other := Date{Year: 2021, Month: time.June, Day: 6}
	counts := CountByDay([]Date{day, other, day, day}, 2021)

	if counts[day] != 3 {
		t.Fatalf("expected 3 commits on %v, got %d", day, counts[day])
	}
	if counts[other] != 1 {
		t.Fatalf("expected 1 commit on %v, got %d", other, counts[other])
	}
	if counts[Date{Year: 2021, Month: time.June, Day: 7}] != 0 {
		t.Fatalf("absent day must read as 0")
	}
}

func TestCountByDay_DiscardsOtherYears(t *testing.T) {
	t.Parallel()

	days := []Date{
		{Year: 2020, Month: time.December, Day: 31},
		{Year: 2021, Month: time.January, Day: 1},
		{Year: 2022, Month: time.January, Day: 1},
	}
	counts := CountByDay(days, 2021)

	total := 0
	for _, c := range counts {
		total += c
	}
	if total != 1 {
		t.Fatalf("expected only the in-year commit to count, got total %d", total)
	}
}

func TestCountByDay_TotalMatchesInYearInput(t *testing.T) {
	t.Parallel()

	var days []Date
	d := Date{Year: 2021, Month: time.January, Day: 1}
	for i := 0; i < 400; i++ {
		days = append(days, d)
		d = d.AddDays(1)
	}
	counts := CountByDay(days, 2021)

	total := 0
	for _, c := range counts {
		total += c
	}
	if total != 365 {
		t.Fatalf("expected 365 in-year commits, got %d", total)
	}
}

func TestCountByDay_EmptyInput(t *testing.T) {
	t.Parallel()

	if counts := CountByDay(nil, 2021); len(counts) != 0 {
		t.Fatalf("expected empty map, got %v", counts)
	}
}
