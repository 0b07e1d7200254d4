package ledger

import "platforme-educatif/app/models"

// DiscountResult is the outcome of applying an annual-payment discount.
type DiscountResult struct {
	DiscountValue float64 `json:"discount_value"`
	FinalAmount   float64 `json:"final_amount"`
}

// ValidateDiscount rejects configurations that enable the discount with both
// a percentage and a fixed amount, or with neither.
func ValidateDiscount(d models.AnnualDiscount) error {
	if !d.Enabled {
		return nil
	}
	if d.Percentage < 0 || d.Percentage > 100 {
		return validationErr("annual_payment_discount.percentage", "percentage must be between 0 and 100")
	}
	if d.Amount < 0 {
		return validationErr("annual_payment_discount.amount", "amount must not be negative")
	}
	if d.Percentage > 0 && d.Amount > 0 {
		return validationErr("annual_payment_discount", "percentage and amount are mutually exclusive")
	}
	if d.Percentage == 0 && d.Amount == 0 {
		return validationErr("annual_payment_discount", "an enabled discount needs a percentage or an amount")
	}
	return nil
}

// ApplyDiscount computes the discount value for an amount. A disabled
// discount, or a non-positive amount, discounts nothing. A fixed discount is
// capped at the amount itself so the final amount never goes below zero.
func ApplyDiscount(amount float64, d models.AnnualDiscount) DiscountResult {
	if !d.Enabled || amount <= 0 {
		return DiscountResult{FinalAmount: ClampNonNegative(amount)}
	}

	var value float64
	switch {
	case d.Percentage > 0:
		value = amount * d.Percentage / 100
	case d.Amount > 0:
		value = d.Amount
		if value > amount {
			value = amount
		}
	}

	return DiscountResult{
		DiscountValue: value,
		FinalAmount:   ClampNonNegative(amount - value),
	}
}
