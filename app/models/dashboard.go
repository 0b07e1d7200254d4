package models

// PaymentDashboard is the derived, never-persisted projection rendered on the
// admin dashboard. It is a pure fold of the ledgers for one academic year.
type PaymentDashboard struct {
	Overview           DashboardOverview           `json:"overview"`
	StatusCounts       StatusCounts                `json:"status_counts"`
	GradeCategoryStats map[GradeCategory]GroupStat `json:"grade_category_stats,omitempty"`
	ComponentStats     map[Component]ComponentStat `json:"component_stats,omitempty"`
}

type DashboardOverview struct {
	TotalStudents      int              `json:"total_students"`
	StudentsWithRecord int              `json:"students_with_record"`
	ExpectedRevenue    ComponentAmounts `json:"expected_revenue"`
	TotalRevenue       ComponentAmounts `json:"total_revenue"`
	OutstandingRevenue ComponentAmounts `json:"outstanding_revenue"`
	CollectionRate     CollectionRates  `json:"collection_rate"`
}

// CollectionRates holds integer percentages, rounded half-up.
type CollectionRates struct {
	Tuition        int `json:"tuition"`
	Uniform        int `json:"uniform"`
	Transportation int `json:"transportation"`
	Overall        int `json:"overall"`
}

// StatusCounts is a histogram of students per overall status. NoRecord counts
// students the caller knows about that have no ledger at all.
type StatusCounts struct {
	Pending   int `json:"pending"`
	Partial   int `json:"partial"`
	Completed int `json:"completed"`
	Overdue   int `json:"overdue"`
	NoRecord  int `json:"no_record"`
}

// GroupStat is the per-grade-category rollup.
type GroupStat struct {
	Count           int     `json:"count"`
	Revenue         float64 `json:"revenue"`
	ExpectedRevenue float64 `json:"expected_revenue"`
}

// ComponentStat is the per-service rollup (uniform, transportation).
type ComponentStat struct {
	TotalStudents   int     `json:"total_students"`
	PaidStudents    int     `json:"paid_students"`
	TotalRevenue    float64 `json:"total_revenue"`
	ExpectedRevenue float64 `json:"expected_revenue"`
}
