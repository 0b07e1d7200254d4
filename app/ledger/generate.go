package ledger

import (
	"time"

	"platforme-educatif/app/models"
)

// GenerateLedger builds a fresh StudentPayment from the active configuration
// for the student's class group. The tuition total is the scheduled amount
// (monthly amount times month count) so roll-ups stay exact against the
// installments; annual mode replaces the schedule with a single discounted
// lump sum. All paid amounts start at zero.
func GenerateLedger(cfg *models.PaymentConfiguration, student *models.Student, class *models.Class, year *models.AcademicYear, annualMode bool) (*models.StudentPayment, error) {
	if cfg == nil || !cfg.IsActive {
		return nil, &ConfigurationMissingError{AcademicYearID: yearID(year)}
	}

	annual := cfg.Amounts.ForGroup(class.Group)
	if annual <= 0 {
		return nil, &ConfigurationMissingError{ClassGroup: string(class.Group), AcademicYearID: cfg.AcademicYearID}
	}
	if err := ValidateDiscount(cfg.Discount); err != nil {
		return nil, err
	}

	sp := &models.StudentPayment{
		StudentID:       models.RefID[models.Student](student.ID),
		AcademicYearID:  cfg.AcademicYearID,
		ClassGroup:      class.Group,
		GradeCategory:   class.Category,
		GracePeriodDays: cfg.GracePeriodDays,
		OverallStatus:   models.OverallPending,
	}

	startYear := year.StartYear()

	if annualMode {
		res := ApplyDiscount(annual, cfg.Discount)
		sp.Annual = &models.AnnualPayment{
			Amount:   res.FinalAmount,
			Discount: res.DiscountValue,
		}
		sp.TotalAmounts.Tuition = res.FinalAmount
	} else {
		sched, err := ComputeSchedule(cfg.Schedule.StartMonth, cfg.Schedule.EndMonth, annual)
		if err != nil {
			return nil, err
		}
		sp.MonthlyPayments = buildInstallments(cfg.Schedule.StartMonth, sched.TotalMonths, sched.MonthlyAmount, startYear)
		sp.TotalAmounts.Tuition = sched.MonthlyAmount * float64(sched.TotalMonths)
	}

	if student.UsesUniform && cfg.UniformPrice > 0 {
		sp.Uniform = models.UniformPayment{Purchased: true, Amount: cfg.UniformPrice}
		sp.TotalAmounts.Uniform = cfg.UniformPrice
	}

	if student.UsesTransport && cfg.TransportAnnual > 0 {
		sched, err := ComputeSchedule(cfg.Schedule.StartMonth, cfg.Schedule.EndMonth, cfg.TransportAnnual)
		if err != nil {
			return nil, err
		}
		sp.Transportation = models.TransportationPlan{
			Subscribed:      true,
			MonthlyPayments: buildInstallments(cfg.Schedule.StartMonth, sched.TotalMonths, sched.MonthlyAmount, startYear),
		}
		sp.TotalAmounts.Transportation = sched.MonthlyAmount * float64(sched.TotalMonths)
	}

	sp.TotalAmounts.GrandTotal = sp.TotalAmounts.Tuition + sp.TotalAmounts.Uniform + sp.TotalAmounts.Transportation
	now := time.Now().UTC()
	sp.CreatedAt = now
	sp.UpdatedAt = now
	return sp, nil
}

func yearID(year *models.AcademicYear) string {
	if year == nil {
		return ""
	}
	return year.ID
}
