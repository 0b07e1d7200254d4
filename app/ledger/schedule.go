package ledger

import (
	"time"

	"platforme-educatif/app/models"
)

// Schedule is the derived installment plan for one annual amount.
type Schedule struct {
	TotalMonths   int     `json:"total_months"`
	MonthlyAmount float64 `json:"monthly_amount"`
}

// French month names, indexed 1..12.
var monthNames = [13]string{"",
	"Janvier", "Fevrier", "Mars", "Avril", "Mai", "Juin",
	"Juillet", "Aout", "Septembre", "Octobre", "Novembre", "Decembre",
}

// MonthName returns the display name for a calendar month (1..12).
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month]
}

// ComputeSchedule derives the installment count and per-month amount from a
// month span and an annual amount. Spans that wrap the calendar year are
// handled by adding 12 (September through May is 9 months).
func ComputeSchedule(startMonth, endMonth int, annualAmount float64) (Schedule, error) {
	if startMonth < 1 || startMonth > 12 {
		return Schedule{}, validationErr("start_month", "month must be between 1 and 12, got %d", startMonth)
	}
	if endMonth < 1 || endMonth > 12 {
		return Schedule{}, validationErr("end_month", "month must be between 1 and 12, got %d", endMonth)
	}
	if annualAmount < 0 {
		return Schedule{}, validationErr("annual_amount", "amount must not be negative")
	}

	total := endMonth - startMonth + 1
	if total <= 0 {
		total += 12
	}

	s := Schedule{TotalMonths: total}
	if total > 0 {
		s.MonthlyAmount = RoundHalfUp(annualAmount / float64(total))
	}
	return s, nil
}

// buildInstallments lays out one MonthlyPayment per scheduled month. Due
// dates fall on the first of each month, one calendar month apart, starting
// at startMonth of yearStart and rolling into the next year when the span
// wraps.
func buildInstallments(startMonth, totalMonths int, monthlyAmount float64, yearStart int) []models.MonthlyPayment {
	entries := make([]models.MonthlyPayment, 0, totalMonths)
	year := yearStart
	month := startMonth
	for i := 0; i < totalMonths; i++ {
		entries = append(entries, models.MonthlyPayment{
			Month:     i + 1,
			MonthName: MonthName(month),
			DueDate:   time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC),
			Amount:    monthlyAmount,
			Status:    models.PaymentPending,
		})
		month++
		if month > 12 {
			month = 1
			year++
		}
	}
	return entries
}
