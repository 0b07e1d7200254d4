package ledger

import (
	"strings"

	"platforme-educatif/app/models"
)

// csvField quotes a field when it contains a comma, quote or newline;
// internal quotes are doubled.
func csvField(s string) string {
	if strings.ContainsAny(s, ",\"\n\r") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}

func csvRow(fields ...string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = csvField(f)
	}
	return strings.Join(quoted, ",")
}

// DashboardCSV renders the dashboard overview and status counts as CSV.
func DashboardCSV(d *models.PaymentDashboard) string {
	var b strings.Builder
	b.WriteString(csvRow("metric", "tuition", "uniform", "transportation", "total"))
	b.WriteString("\n")
	b.WriteString(csvRow("expected_revenue",
		FormatAmount(d.Overview.ExpectedRevenue.Tuition),
		FormatAmount(d.Overview.ExpectedRevenue.Uniform),
		FormatAmount(d.Overview.ExpectedRevenue.Transportation),
		FormatAmount(d.Overview.ExpectedRevenue.GrandTotal)))
	b.WriteString("\n")
	b.WriteString(csvRow("collected_revenue",
		FormatAmount(d.Overview.TotalRevenue.Tuition),
		FormatAmount(d.Overview.TotalRevenue.Uniform),
		FormatAmount(d.Overview.TotalRevenue.Transportation),
		FormatAmount(d.Overview.TotalRevenue.GrandTotal)))
	b.WriteString("\n")
	b.WriteString(csvRow("outstanding_revenue",
		FormatAmount(d.Overview.OutstandingRevenue.Tuition),
		FormatAmount(d.Overview.OutstandingRevenue.Uniform),
		FormatAmount(d.Overview.OutstandingRevenue.Transportation),
		FormatAmount(d.Overview.OutstandingRevenue.GrandTotal)))
	b.WriteString("\n")
	b.WriteString(csvRow("collection_rate",
		FormatRate(d.Overview.CollectionRate.Tuition),
		FormatRate(d.Overview.CollectionRate.Uniform),
		FormatRate(d.Overview.CollectionRate.Transportation),
		FormatRate(d.Overview.CollectionRate.Overall)))
	b.WriteString("\n\n")
	b.WriteString(csvRow("status", "students"))
	b.WriteString("\n")
	for _, row := range [][2]string{
		{"pending", itoa(d.StatusCounts.Pending)},
		{"partial", itoa(d.StatusCounts.Partial)},
		{"completed", itoa(d.StatusCounts.Completed)},
		{"overdue", itoa(d.StatusCounts.Overdue)},
		{"no_record", itoa(d.StatusCounts.NoRecord)},
	} {
		b.WriteString(csvRow(row[0], row[1]))
		b.WriteString("\n")
	}
	return b.String()
}

// StudentRowsCSV renders one line per ledger with the per-component paid and
// remaining amounts. The student lookup supplies display names for ledgers
// whose references are unresolved.
func StudentRowsCSV(ledgers []*models.StudentPayment, students map[string]*models.Student) string {
	var b strings.Builder
	b.WriteString(csvRow("student", "class_group", "grade_category",
		"total", "paid", "remaining", "tuition_paid", "uniform_paid", "transportation_paid", "status"))
	b.WriteString("\n")
	for _, sp := range ledgers {
		name := sp.StudentID.ID
		if s, ok := sp.StudentID.Resolve(students); ok {
			name = s.FullName()
		}
		b.WriteString(csvRow(
			name,
			string(sp.ClassGroup),
			string(sp.GradeCategory),
			FormatAmount(sp.TotalAmounts.GrandTotal),
			FormatAmount(sp.PaidAmounts.GrandTotal),
			FormatAmount(sp.RemainingAmount()),
			FormatAmount(sp.PaidAmounts.Tuition),
			FormatAmount(sp.PaidAmounts.Uniform),
			FormatAmount(sp.PaidAmounts.Transportation),
			string(sp.OverallStatus),
		))
		b.WriteString("\n")
	}
	return b.String()
}

func itoa(n int) string {
	return FormatAmount(float64(n))
}
