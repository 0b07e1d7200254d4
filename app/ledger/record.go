package ledger

import (
	"time"

	"platforme-educatif/app/models"
)

// PaymentRequest is one recording against a ledger. MonthIndex addresses an
// installment (zero-based) for the monthly components and is ignored for the
// one-shot ones.
type PaymentRequest struct {
	Component     models.Component     `json:"component" validate:"required,oneof=tuition uniform transportation"`
	MonthIndex    int                  `json:"month_index" validate:"gte=0"`
	Amount        float64              `json:"amount" validate:"required,gt=0"`
	Method        models.PaymentMethod `json:"payment_method" validate:"required,oneof=cash check bank_transfer online"`
	Date          time.Time            `json:"payment_date"`
	ReceiptNumber string               `json:"receipt_number,omitempty"`
	Notes         string               `json:"notes,omitempty"`
}

// RecordPayment applies one payment to a copy of the ledger and returns the
// copy. The input ledger is never mutated; on any validation failure the
// returned error carries the reason and the caller still holds the original,
// untouched ledger. Paid amounts only ever increase.
func RecordPayment(sp *models.StudentPayment, req PaymentRequest, now time.Time) (*models.StudentPayment, error) {
	if req.Amount <= 0 {
		return nil, validationErr("amount", "payment amount must be positive")
	}
	if !models.ValidMethod(req.Method) {
		return nil, validationErr("payment_method", "unknown payment method %q", req.Method)
	}
	if req.Amount > sp.RemainingAmount() {
		return nil, validationErr("amount", "payment of %s exceeds the remaining balance of %s",
			FormatAmount(req.Amount), FormatAmount(sp.RemainingAmount()))
	}

	out := cloneLedger(sp)

	switch req.Component {
	case models.ComponentTuition:
		if out.Annual != nil {
			if err := settleAnnual(out.Annual, req, now); err != nil {
				return nil, err
			}
		} else if err := payInstallment(out.MonthlyPayments, req, now, out.GracePeriodDays); err != nil {
			return nil, err
		}
	case models.ComponentUniform:
		if err := settleUniform(&out.Uniform, req, now); err != nil {
			return nil, err
		}
	case models.ComponentTransportation:
		if !out.Transportation.Subscribed {
			return nil, validationErr("component", "student has no transportation subscription")
		}
		if err := payInstallment(out.Transportation.MonthlyPayments, req, now, out.GracePeriodDays); err != nil {
			return nil, err
		}
	default:
		return nil, validationErr("component", "unknown component %q", req.Component)
	}

	rollUp(out)
	out.OverallStatus = ComputeOverallStatus(out, now)
	out.UpdatedAt = now
	return out, nil
}

func payInstallment(entries []models.MonthlyPayment, req PaymentRequest, now time.Time, graceDays int) error {
	if req.MonthIndex < 0 || req.MonthIndex >= len(entries) {
		return validationErr("month_index", "no scheduled month at index %d", req.MonthIndex)
	}
	m := &entries[req.MonthIndex]
	if req.Amount > m.Remaining() {
		return validationErr("amount", "payment of %s exceeds the %s remaining for %s",
			FormatAmount(req.Amount), FormatAmount(m.Remaining()), m.MonthName)
	}

	m.PaidAmount += req.Amount
	m.Status = InstallmentStatus(m, now, graceDays)
	d := paymentDate(req, now)
	m.PaymentDate = &d
	m.PaymentMethod = req.Method
	if req.ReceiptNumber != "" {
		m.ReceiptNumber = req.ReceiptNumber
	}
	if req.Notes != "" {
		m.Notes = req.Notes
	}
	return nil
}

func settleAnnual(a *models.AnnualPayment, req PaymentRequest, now time.Time) error {
	if a.IsPaid {
		return validationErr("amount", "annual payment already settled")
	}
	if req.Amount != a.Amount {
		return validationErr("amount", "annual payment must be settled in full (%s)", FormatAmount(a.Amount))
	}
	a.IsPaid = true
	d := paymentDate(req, now)
	a.PaymentDate = &d
	a.PaymentMethod = req.Method
	a.ReceiptNumber = req.ReceiptNumber
	if req.Notes != "" {
		a.Notes = req.Notes
	}
	return nil
}

func settleUniform(u *models.UniformPayment, req PaymentRequest, now time.Time) error {
	if !u.Purchased {
		return validationErr("component", "student has no uniform purchase on this ledger")
	}
	if u.Paid {
		return validationErr("amount", "uniform already paid")
	}
	if req.Amount != u.Amount {
		return validationErr("amount", "uniform is paid in one payment of %s", FormatAmount(u.Amount))
	}
	u.Paid = true
	d := paymentDate(req, now)
	u.PaymentDate = &d
	u.PaymentMethod = req.Method
	u.ReceiptNumber = req.ReceiptNumber
	return nil
}

func paymentDate(req PaymentRequest, fallback time.Time) time.Time {
	if !req.Date.IsZero() {
		return req.Date
	}
	return fallback
}

// rollUp recomputes the paid-amount aggregates from the entries themselves so
// the grand total always equals the sum of its components.
func rollUp(sp *models.StudentPayment) {
	var tuition float64
	if sp.Annual != nil {
		if sp.Annual.IsPaid {
			tuition = sp.Annual.Amount
		}
	} else {
		for i := range sp.MonthlyPayments {
			tuition += sp.MonthlyPayments[i].PaidAmount
		}
	}

	var uniform float64
	if sp.Uniform.Paid {
		uniform = sp.Uniform.Amount
	}

	var transport float64
	for i := range sp.Transportation.MonthlyPayments {
		transport += sp.Transportation.MonthlyPayments[i].PaidAmount
	}

	sp.PaidAmounts = models.ComponentAmounts{
		Tuition:        tuition,
		Uniform:        uniform,
		Transportation: transport,
		GrandTotal:     tuition + uniform + transport,
	}
}

func cloneLedger(sp *models.StudentPayment) *models.StudentPayment {
	out := *sp
	out.MonthlyPayments = append([]models.MonthlyPayment(nil), sp.MonthlyPayments...)
	out.Transportation.MonthlyPayments = append([]models.MonthlyPayment(nil), sp.Transportation.MonthlyPayments...)
	if sp.Annual != nil {
		a := *sp.Annual
		out.Annual = &a
	}
	return &out
}
