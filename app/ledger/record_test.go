package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"platforme-educatif/app/models"
)

func lyceeFixture(t *testing.T, uniform, transport bool) *models.StudentPayment {
	t.Helper()
	cfg := &models.PaymentConfiguration{
		ID:              "cfg-1",
		AcademicYearID:  "year-1",
		Amounts:         models.ClassGroupAmounts{Ecole: 500, College: 700, Lycee: 900},
		Schedule:        models.PaymentSchedule{StartMonth: 9, EndMonth: 5},
		GracePeriodDays: 10,
		UniformPrice:    60,
		TransportAnnual: 180,
		IsActive:        true,
	}
	student := &models.Student{
		ID:            "student-1",
		FirstName:     "Amine",
		LastName:      "Haddad",
		UsesUniform:   uniform,
		UsesTransport: transport,
	}
	class := &models.Class{ID: "class-1", Group: models.GroupLycee, Category: models.CategorySecondaire}
	year := &models.AcademicYear{ID: "year-1", Name: "2025-2026"}

	sp, err := GenerateLedger(cfg, student, class, year, false)
	require.NoError(t, err)
	return sp
}

// A time safely before any due date so overdue classification never triggers.
var beforeSchedule = time.Date(2025, time.August, 15, 0, 0, 0, 0, time.UTC)

func TestGenerateLedgerSpansNineMonths(t *testing.T) {
	sp := lyceeFixture(t, false, false)

	require.Len(t, sp.MonthlyPayments, 9)
	assert.Equal(t, "Septembre", sp.MonthlyPayments[0].MonthName)
	assert.Equal(t, "Mai", sp.MonthlyPayments[8].MonthName)
	assert.Equal(t, 100.0, sp.MonthlyPayments[0].Amount)
	assert.Equal(t, 900.0, sp.TotalAmounts.Tuition)
	assert.Equal(t, 900.0, sp.TotalAmounts.GrandTotal)
	assert.Equal(t, models.OverallPending, sp.OverallStatus)

	// due dates one calendar month apart, wrapping into 2026
	assert.Equal(t, time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), sp.MonthlyPayments[0].DueDate)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), sp.MonthlyPayments[4].DueDate)
	assert.Equal(t, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), sp.MonthlyPayments[8].DueDate)
}

func TestGenerateLedgerIncludesSubscribedComponents(t *testing.T) {
	sp := lyceeFixture(t, true, true)

	assert.True(t, sp.Uniform.Purchased)
	assert.Equal(t, 60.0, sp.TotalAmounts.Uniform)
	assert.True(t, sp.Transportation.Subscribed)
	require.Len(t, sp.Transportation.MonthlyPayments, 9)
	assert.Equal(t, 20.0, sp.Transportation.MonthlyPayments[0].Amount)
	assert.Equal(t, 180.0, sp.TotalAmounts.Transportation)
	assert.Equal(t, 900.0+60+180, sp.TotalAmounts.GrandTotal)
}

func TestGenerateLedgerRequiresActiveConfiguration(t *testing.T) {
	student := &models.Student{ID: "student-1"}
	class := &models.Class{Group: models.GroupLycee}
	year := &models.AcademicYear{ID: "year-1", Name: "2025-2026"}

	_, err := GenerateLedger(nil, student, class, year, false)
	var missing *ConfigurationMissingError
	assert.ErrorAs(t, err, &missing)

	cfg := &models.PaymentConfiguration{IsActive: true, AcademicYearID: "year-1"}
	_, err = GenerateLedger(cfg, student, class, year, false) // no tariff for lycee
	assert.ErrorAs(t, err, &missing)
}

func TestGenerateLedgerAnnualModeAppliesDiscount(t *testing.T) {
	cfg := &models.PaymentConfiguration{
		AcademicYearID: "year-1",
		Amounts:        models.ClassGroupAmounts{Lycee: 900},
		Schedule:       models.PaymentSchedule{StartMonth: 9, EndMonth: 5},
		Discount:       models.AnnualDiscount{Enabled: true, Percentage: 10},
		IsActive:       true,
	}
	student := &models.Student{ID: "student-1"}
	class := &models.Class{Group: models.GroupLycee, Category: models.CategorySecondaire}
	year := &models.AcademicYear{ID: "year-1", Name: "2025-2026"}

	sp, err := GenerateLedger(cfg, student, class, year, true)
	require.NoError(t, err)
	require.NotNil(t, sp.Annual)
	assert.Equal(t, 90.0, sp.Annual.Discount)
	assert.Equal(t, 810.0, sp.Annual.Amount)
	assert.Equal(t, 810.0, sp.TotalAmounts.GrandTotal)
	assert.Empty(t, sp.MonthlyPayments)

	// settling in full completes the ledger
	paid, err := RecordPayment(sp, PaymentRequest{
		Component: models.ComponentTuition,
		Amount:    810,
		Method:    models.MethodBankTransfer,
	}, beforeSchedule)
	require.NoError(t, err)
	assert.Equal(t, models.OverallCompleted, paid.OverallStatus)
	assert.Equal(t, 810.0, paid.PaidAmounts.Tuition)
}

func TestRecordPaymentScenario(t *testing.T) {
	sp := lyceeFixture(t, false, false)

	out, err := RecordPayment(sp, PaymentRequest{
		Component: models.ComponentTuition,
		Amount:    100,
		Method:    models.MethodCash,
	}, beforeSchedule)
	require.NoError(t, err)

	assert.Equal(t, models.PaymentPaid, out.MonthlyPayments[0].Status)
	assert.Equal(t, 100.0, out.PaidAmounts.Tuition)
	assert.Equal(t, 100.0, out.PaidAmounts.GrandTotal)
	assert.Equal(t, models.OverallPartial, out.OverallStatus)
}

func TestRecordPaymentRejectsMonthOverpay(t *testing.T) {
	sp := lyceeFixture(t, false, false)

	_, err := RecordPayment(sp, PaymentRequest{
		Component: models.ComponentTuition,
		Amount:    150,
		Method:    models.MethodCash,
	}, beforeSchedule)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "amount", verr.Field)

	// original ledger untouched
	assert.Zero(t, sp.PaidAmounts.GrandTotal)
	assert.Zero(t, sp.MonthlyPayments[0].PaidAmount)
	assert.Equal(t, models.OverallPending, sp.OverallStatus)
}

func TestRecordPaymentRejectsOverallOverpay(t *testing.T) {
	sp := lyceeFixture(t, false, false)

	// pay everything but the last month
	cur := sp
	for i := 0; i < 8; i++ {
		var err error
		cur, err = RecordPayment(cur, PaymentRequest{
			Component:  models.ComponentTuition,
			MonthIndex: i,
			Amount:     100,
			Method:     models.MethodCash,
		}, beforeSchedule)
		require.NoError(t, err)
	}

	_, err := RecordPayment(cur, PaymentRequest{
		Component:  models.ComponentTuition,
		MonthIndex: 8,
		Amount:     101,
		Method:     models.MethodCash,
	}, beforeSchedule)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestRecordPaymentRejectsBadInputs(t *testing.T) {
	sp := lyceeFixture(t, false, false)

	cases := []struct {
		name string
		req  PaymentRequest
	}{
		{"zero amount", PaymentRequest{Component: models.ComponentTuition, Amount: 0, Method: models.MethodCash}},
		{"negative amount", PaymentRequest{Component: models.ComponentTuition, Amount: -5, Method: models.MethodCash}},
		{"bad method", PaymentRequest{Component: models.ComponentTuition, Amount: 50, Method: "barter"}},
		{"bad month index", PaymentRequest{Component: models.ComponentTuition, MonthIndex: 9, Amount: 50, Method: models.MethodCash}},
		{"no transport plan", PaymentRequest{Component: models.ComponentTransportation, Amount: 20, Method: models.MethodCash}},
		{"no uniform", PaymentRequest{Component: models.ComponentUniform, Amount: 60, Method: models.MethodCash}},
		{"unknown component", PaymentRequest{Component: "chess_club", Amount: 10, Method: models.MethodCash}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := RecordPayment(sp, tc.req, beforeSchedule)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestRecordPaymentStatusMonotonicity(t *testing.T) {
	sp := lyceeFixture(t, true, false)

	rank := map[models.OverallStatus]int{
		models.OverallPending:   0,
		models.OverallPartial:   1,
		models.OverallCompleted: 2,
	}

	cur := sp
	lastPaid := 0.0
	lastRank := 0
	for i := 0; i < 9; i++ {
		var err error
		cur, err = RecordPayment(cur, PaymentRequest{
			Component:  models.ComponentTuition,
			MonthIndex: i,
			Amount:     100,
			Method:     models.MethodCheck,
		}, beforeSchedule)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, cur.PaidAmounts.GrandTotal, lastPaid)
		assert.GreaterOrEqual(t, rank[cur.OverallStatus], lastRank)
		lastPaid = cur.PaidAmounts.GrandTotal
		lastRank = rank[cur.OverallStatus]
	}
	assert.Equal(t, models.OverallPartial, cur.OverallStatus) // uniform still owed

	cur, err := RecordPayment(cur, PaymentRequest{
		Component: models.ComponentUniform,
		Amount:    60,
		Method:    models.MethodCash,
	}, beforeSchedule)
	require.NoError(t, err)
	assert.Equal(t, models.OverallCompleted, cur.OverallStatus)
	assert.Equal(t, cur.TotalAmounts.GrandTotal, cur.PaidAmounts.GrandTotal)
}

func TestRecordPartialThenCompleteMonth(t *testing.T) {
	sp := lyceeFixture(t, false, false)

	cur, err := RecordPayment(sp, PaymentRequest{
		Component: models.ComponentTuition,
		Amount:    40,
		Method:    models.MethodCash,
	}, beforeSchedule)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPartial, cur.MonthlyPayments[0].Status)

	cur, err = RecordPayment(cur, PaymentRequest{
		Component: models.ComponentTuition,
		Amount:    60,
		Method:    models.MethodCash,
	}, beforeSchedule)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, cur.MonthlyPayments[0].Status)
	assert.Equal(t, 100.0, cur.PaidAmounts.Tuition)
}

func TestOverduePrecedenceOverPartial(t *testing.T) {
	sp := lyceeFixture(t, true, false)

	// pay the uniform in full; tuition untouched
	cur, err := RecordPayment(sp, PaymentRequest{
		Component: models.ComponentUniform,
		Amount:    60,
		Method:    models.MethodCash,
	}, beforeSchedule)
	require.NoError(t, err)
	assert.Equal(t, models.OverallPartial, cur.OverallStatus)

	// past the first due date plus grace, the overdue installment wins
	afterGrace := time.Date(2025, time.September, 20, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, models.OverallOverdue, ComputeOverallStatus(cur, afterGrace))
}

func TestReclassifyMarksOverdueInstallments(t *testing.T) {
	sp := lyceeFixture(t, false, true)

	afterGrace := time.Date(2025, time.October, 20, 0, 0, 0, 0, time.UTC)
	changed := Reclassify(sp, afterGrace)
	assert.True(t, changed)
	assert.Equal(t, models.PaymentOverdue, sp.MonthlyPayments[0].Status)
	assert.Equal(t, models.PaymentOverdue, sp.MonthlyPayments[1].Status)
	assert.Equal(t, models.PaymentPending, sp.MonthlyPayments[2].Status)
	assert.Equal(t, models.PaymentOverdue, sp.Transportation.MonthlyPayments[0].Status)
	assert.Equal(t, models.OverallOverdue, sp.OverallStatus)

	// second pass is a no-op
	assert.False(t, Reclassify(sp, afterGrace))
}
