package models

// PaymentStatus defines the status of a single scheduled installment.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
	PaymentOverdue PaymentStatus = "overdue"
)

// OverallStatus defines the status of a student's full ledger.
type OverallStatus string

const (
	OverallPending   OverallStatus = "pending"
	OverallPartial   OverallStatus = "partial"
	OverallCompleted OverallStatus = "completed"
	OverallOverdue   OverallStatus = "overdue"
)

// PaymentMethod defines how a payment was made.
type PaymentMethod string

const (
	MethodCash         PaymentMethod = "cash"
	MethodCheck        PaymentMethod = "check"
	MethodBankTransfer PaymentMethod = "bank_transfer"
	MethodOnline       PaymentMethod = "online"
)

// ValidMethod reports whether m is one of the accepted payment methods.
func ValidMethod(m PaymentMethod) bool {
	switch m {
	case MethodCash, MethodCheck, MethodBankTransfer, MethodOnline:
		return true
	}
	return false
}

// Component identifies one of the payable service categories on a ledger.
type Component string

const (
	ComponentTuition        Component = "tuition"
	ComponentUniform        Component = "uniform"
	ComponentTransportation Component = "transportation"
)

// ClassGroup is the fee bracket a class belongs to.
type ClassGroup string

const (
	GroupEcole   ClassGroup = "ecole"
	GroupCollege ClassGroup = "college"
	GroupLycee   ClassGroup = "lycee"
)

// GradeCategory is the coarse schooling stage used for reporting.
type GradeCategory string

const (
	CategoryMaternelle GradeCategory = "maternelle"
	CategoryPrimaire   GradeCategory = "primaire"
	CategorySecondaire GradeCategory = "secondaire"
)

// Gender defines the possible gender values for a student.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
	Other  Gender = "other"
)
