package models

import "time"

// ClassGroupAmounts carries the annual tuition amount for each fee bracket.
type ClassGroupAmounts struct {
	Ecole   float64 `json:"ecole" validate:"gte=0"`
	College float64 `json:"college" validate:"gte=0"`
	Lycee   float64 `json:"lycee" validate:"gte=0"`
}

// ForGroup returns the annual tuition configured for the given bracket.
func (a ClassGroupAmounts) ForGroup(g ClassGroup) float64 {
	switch g {
	case GroupEcole:
		return a.Ecole
	case GroupCollege:
		return a.College
	case GroupLycee:
		return a.Lycee
	}
	return 0
}

// PaymentSchedule is the month span installments are spread over.
// TotalMonths is derived, never stored independently of the bounds.
type PaymentSchedule struct {
	StartMonth  int `json:"start_month" validate:"required,min=1,max=12"`
	EndMonth    int `json:"end_month" validate:"required,min=1,max=12"`
	TotalMonths int `json:"total_months"`
}

// AnnualDiscount is the optional discount granted when a family settles the
// year in one payment. Percentage and Amount are mutually exclusive.
type AnnualDiscount struct {
	Enabled    bool    `json:"enabled"`
	Percentage float64 `json:"percentage,omitempty" validate:"gte=0,lte=100"`
	Amount     float64 `json:"amount,omitempty" validate:"gte=0"`
}

// PaymentConfiguration holds the tariff for one academic year. It is created
// by an administrator and treated as immutable once ledgers have been
// generated from it; regeneration re-derives the dependent schedules.
type PaymentConfiguration struct {
	ID              string            `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	AcademicYearID  string            `json:"academic_year_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Amounts         ClassGroupAmounts `json:"amounts" gorm:"type:jsonb"`
	Schedule        PaymentSchedule   `json:"payment_schedule" gorm:"type:jsonb"`
	GracePeriodDays int               `json:"grace_period_days" gorm:"default:0" validate:"gte=0"`
	Discount        AnnualDiscount    `json:"annual_payment_discount" gorm:"type:jsonb"`
	UniformPrice    float64           `json:"uniform_price" gorm:"type:numeric;default:0" validate:"gte=0"`
	TransportAnnual float64           `json:"transport_annual" gorm:"type:numeric;default:0" validate:"gte=0"`
	IsActive        bool              `json:"is_active" gorm:"default:true;index"`
	CreatedAt       time.Time         `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time         `json:"updated_at" gorm:"autoUpdateTime"`
}
