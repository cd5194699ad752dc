package services

import "fmt"

func workPackageLabel(i int) string {
	return fmt.Sprintf("WP%d", i+1)
}

// GanttBar spans the half-open week range [Start, Start+Weeks).
type GanttBar struct {
	Label    string
	Start    int
	Weeks    int
	Vacation bool
}

func (b GanttBar) End() int { return b.Start + b.Weeks }

type Schedule struct {
	TotalWeeks int
	Bars       []GanttBar
}

// BuildSchedule lays work packages end to end in array order. A trailing
// vacation bar is added when vacationWeeks > 0.
func BuildSchedule(wps []WorkPackage, vacationWeeks int) Schedule {
	var s Schedule
	offset := 0
	for i, wp := range wps {
		label := workPackageLabel(i)
		if wp.Title != "" {
			label += ": " + wp.Title
		}
		s.Bars = append(s.Bars, GanttBar{Label: label, Start: offset, Weeks: wp.DurationWeeks})
		offset += wp.DurationWeeks
	}
	if vacationWeeks > 0 {
		s.Bars = append(s.Bars, GanttBar{Start: offset, Weeks: vacationWeeks, Vacation: true})
		offset += vacationWeeks
	}
	s.TotalWeeks = offset
	return s
}

// WeekWidth divides span evenly across the schedule's weeks; zero weeks
// yields a zero width.
func (s Schedule) WeekWidth(span float64) float64 {
	if s.TotalWeeks <= 0 {
		return 0
	}
	return span / float64(s.TotalWeeks)
}

// SplitColumns returns the left/right sizes for a two-column list of n items.
// The left column takes the larger half.
func SplitColumns(n int) (left, right int) {
	if n <= 0 {
		return 0, 0
	}
	left = (n + 1) / 2
	return left, n - left
}
