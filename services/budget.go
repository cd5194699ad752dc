package services

// WorkDaysPerWeek is the number of billable days in one FTE week.
const WorkDaysPerWeek = 5

type BudgetTotals struct {
	TotalWeeks        int
	FTECount          int
	DailyRate         float64
	VATRate           float64
	TotalDays         float64
	TotalExcludingTax float64
	VATAmount         float64
	TotalIncludingTax float64
}

// ComputeBudget derives the monetary totals from the primitive budget fields.
// Nothing is rounded here; rounding happens only when formatting.
func ComputeBudget(cfg BudgetConfig, totalWeeks int) BudgetTotals {
	days := float64(totalWeeks) * WorkDaysPerWeek * float64(cfg.FTECount)
	excl := days * cfg.DailyRate
	vat := excl * cfg.VATRate / 100
	return BudgetTotals{
		TotalWeeks:        totalWeeks,
		FTECount:          cfg.FTECount,
		DailyRate:         cfg.DailyRate,
		VATRate:           cfg.VATRate,
		TotalDays:         days,
		TotalExcludingTax: excl,
		VATAmount:         vat,
		TotalIncludingTax: excl + vat,
	}
}

// BudgetFor recomputes the totals of a snapshot from its work packages and
// vacation weeks, never from the stored TotalWeeks field.
func BudgetFor(d ProposalData) BudgetTotals {
	return ComputeBudget(d.Budget, TotalWeeks(d.WorkPackages, d.Planning.VacationWeeks))
}

func WorkWeeks(wps []WorkPackage) int {
	var sum int
	for _, wp := range wps {
		sum += wp.DurationWeeks
	}
	return sum
}

func TotalWeeks(wps []WorkPackage, vacationWeeks int) int {
	if vacationWeeks < 0 {
		vacationWeeks = 0
	}
	return WorkWeeks(wps) + vacationWeeks
}
