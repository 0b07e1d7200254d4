package models

import "time"

// ComponentAmounts breaks a money total down by payable component.
type ComponentAmounts struct {
	Tuition        float64 `json:"tuition"`
	Uniform        float64 `json:"uniform"`
	Transportation float64 `json:"transportation"`
	GrandTotal     float64 `json:"grand_total"`
}

// MonthlyPayment is one scheduled installment of a monthly component.
type MonthlyPayment struct {
	Month         int           `json:"month"`
	MonthName     string        `json:"month_name"`
	DueDate       time.Time     `json:"due_date"`
	Amount        float64       `json:"amount"`
	PaidAmount    float64       `json:"paid_amount"`
	Status        PaymentStatus `json:"status"`
	PaymentDate   *time.Time    `json:"payment_date,omitempty"`
	PaymentMethod PaymentMethod `json:"payment_method,omitempty"`
	ReceiptNumber string        `json:"receipt_number,omitempty"`
	Notes         string        `json:"notes,omitempty"`
}

// Remaining returns what is still owed on this installment.
func (m *MonthlyPayment) Remaining() float64 {
	if r := m.Amount - m.PaidAmount; r > 0 {
		return r
	}
	return 0
}

// AnnualPayment is the lump-sum alternative to a monthly schedule.
type AnnualPayment struct {
	Amount        float64       `json:"amount"`
	IsPaid        bool          `json:"is_paid"`
	PaymentDate   *time.Time    `json:"payment_date,omitempty"`
	PaymentMethod PaymentMethod `json:"payment_method,omitempty"`
	ReceiptNumber string        `json:"receipt_number,omitempty"`
	Discount      float64       `json:"discount,omitempty"`
	Notes         string        `json:"notes,omitempty"`
}

// UniformPayment is the one-shot uniform purchase on a ledger.
type UniformPayment struct {
	Purchased     bool          `json:"purchased"`
	Amount        float64       `json:"amount"`
	Paid          bool          `json:"paid"`
	PaymentDate   *time.Time    `json:"payment_date,omitempty"`
	PaymentMethod PaymentMethod `json:"payment_method,omitempty"`
	ReceiptNumber string        `json:"receipt_number,omitempty"`
}

// TransportationPlan is the optional transport subscription with its own
// monthly schedule, nested under the ledger.
type TransportationPlan struct {
	Subscribed      bool             `json:"subscribed"`
	MonthlyPayments []MonthlyPayment `json:"monthly_payments,omitempty"`
}

// StudentPayment is the full financial state of one student for one academic
// year: the ledger. Mutated only by recording payments (paid amounts never
// decrease); correction is delete-and-regenerate.
type StudentPayment struct {
	ID              string             `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	StudentID       Ref[Student]       `json:"student_id" validate:"required"`
	AcademicYearID  string             `json:"academic_year_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	ClassGroup      ClassGroup         `json:"class_group"`
	GradeCategory   GradeCategory      `json:"grade_category"`
	TotalAmounts    ComponentAmounts   `json:"total_amounts"`
	PaidAmounts     ComponentAmounts   `json:"paid_amounts"`
	MonthlyPayments []MonthlyPayment   `json:"monthly_payments,omitempty"`
	Annual          *AnnualPayment     `json:"annual_payment,omitempty"`
	Uniform         UniformPayment     `json:"uniform"`
	Transportation  TransportationPlan `json:"transportation"`
	GracePeriodDays int                `json:"grace_period_days"`
	OverallStatus   OverallStatus      `json:"overall_status"`
	CreatedAt       time.Time          `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time          `json:"updated_at" gorm:"autoUpdateTime"`
}

// RemainingAmount returns the outstanding balance across all components,
// clamped at zero.
func (sp *StudentPayment) RemainingAmount() float64 {
	if r := sp.TotalAmounts.GrandTotal - sp.PaidAmounts.GrandTotal; r > 0 {
		return r
	}
	return 0
}
