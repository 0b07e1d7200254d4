package ledger

import (
	"time"

	"platforme-educatif/app/models"
)

// InstallmentStatus classifies one installment at a point in time.
func InstallmentStatus(m *models.MonthlyPayment, now time.Time, graceDays int) models.PaymentStatus {
	switch {
	case m.PaidAmount >= m.Amount && m.Amount > 0:
		return models.PaymentPaid
	case now.After(m.DueDate.AddDate(0, 0, graceDays)):
		return models.PaymentOverdue
	case m.PaidAmount > 0:
		return models.PaymentPartial
	default:
		return models.PaymentPending
	}
}

// ComputeOverallStatus derives the ledger-level status. Precedence:
// completed, then overdue, then partial, then pending.
func ComputeOverallStatus(sp *models.StudentPayment, now time.Time) models.OverallStatus {
	paid := sp.PaidAmounts.GrandTotal
	total := sp.TotalAmounts.GrandTotal

	if total > 0 && paid >= total {
		return models.OverallCompleted
	}
	if hasOverdueInstallment(sp.MonthlyPayments, now, sp.GracePeriodDays) ||
		hasOverdueInstallment(sp.Transportation.MonthlyPayments, now, sp.GracePeriodDays) {
		return models.OverallOverdue
	}
	if paid > 0 {
		return models.OverallPartial
	}
	return models.OverallPending
}

func hasOverdueInstallment(entries []models.MonthlyPayment, now time.Time, graceDays int) bool {
	for i := range entries {
		m := &entries[i]
		if m.PaidAmount < m.Amount && now.After(m.DueDate.AddDate(0, 0, graceDays)) {
			return true
		}
	}
	return false
}

// Reclassify refreshes every installment status and the overall status
// in place and reports whether anything changed. The nightly scheduler uses
// it to move unpaid installments past their grace period to overdue.
func Reclassify(sp *models.StudentPayment, now time.Time) bool {
	changed := false
	for i := range sp.MonthlyPayments {
		m := &sp.MonthlyPayments[i]
		if s := InstallmentStatus(m, now, sp.GracePeriodDays); s != m.Status {
			m.Status = s
			changed = true
		}
	}
	for i := range sp.Transportation.MonthlyPayments {
		m := &sp.Transportation.MonthlyPayments[i]
		if s := InstallmentStatus(m, now, sp.GracePeriodDays); s != m.Status {
			m.Status = s
			changed = true
		}
	}
	if s := ComputeOverallStatus(sp, now); s != sp.OverallStatus {
		sp.OverallStatus = s
		changed = true
	}
	return changed
}
