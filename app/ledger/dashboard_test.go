package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"platforme-educatif/app/models"
)

func TestBuildDashboardEmpty(t *testing.T) {
	d := BuildDashboard(nil, 0)

	assert.Zero(t, d.Overview.TotalStudents)
	assert.Zero(t, d.Overview.ExpectedRevenue.GrandTotal)
	assert.Zero(t, d.Overview.CollectionRate.Overall)
	assert.Equal(t, "0%", FormatRate(d.Overview.CollectionRate.Overall))
	assert.Zero(t, d.StatusCounts.Pending)
}

func TestBuildDashboardCollectionRate(t *testing.T) {
	ledgers := []*models.StudentPayment{
		{
			TotalAmounts:  models.ComponentAmounts{Tuition: 1000, GrandTotal: 1000},
			PaidAmounts:   models.ComponentAmounts{Tuition: 500, GrandTotal: 500},
			OverallStatus: models.OverallPartial,
		},
		{
			TotalAmounts:  models.ComponentAmounts{Tuition: 500, GrandTotal: 500},
			PaidAmounts:   models.ComponentAmounts{Tuition: 500, GrandTotal: 500},
			OverallStatus: models.OverallCompleted,
		},
	}

	d := BuildDashboard(ledgers, 0)
	assert.Equal(t, 1500.0, d.Overview.ExpectedRevenue.GrandTotal)
	assert.Equal(t, 1000.0, d.Overview.TotalRevenue.GrandTotal)
	assert.Equal(t, 500.0, d.Overview.OutstandingRevenue.GrandTotal)
	assert.Equal(t, 67, d.Overview.CollectionRate.Overall) // round(100*1000/1500)
	assert.Equal(t, 1, d.StatusCounts.Partial)
	assert.Equal(t, 1, d.StatusCounts.Completed)
}

func TestBuildDashboardNoRecordBucket(t *testing.T) {
	ledgers := []*models.StudentPayment{
		{OverallStatus: models.OverallPending},
	}
	d := BuildDashboard(ledgers, 4)

	assert.Equal(t, 4, d.StatusCounts.NoRecord)
	assert.Equal(t, 5, d.Overview.TotalStudents)
	assert.Equal(t, 1, d.Overview.StudentsWithRecord)
}

func TestBuildDashboardGradeCategoryStats(t *testing.T) {
	ledgers := []*models.StudentPayment{
		{
			GradeCategory: models.CategoryPrimaire,
			TotalAmounts:  models.ComponentAmounts{GrandTotal: 500},
			PaidAmounts:   models.ComponentAmounts{GrandTotal: 200},
			OverallStatus: models.OverallPartial,
		},
		{
			GradeCategory: models.CategoryPrimaire,
			TotalAmounts:  models.ComponentAmounts{GrandTotal: 500},
			PaidAmounts:   models.ComponentAmounts{GrandTotal: 500},
			OverallStatus: models.OverallCompleted,
		},
		{
			GradeCategory: models.CategorySecondaire,
			TotalAmounts:  models.ComponentAmounts{GrandTotal: 900},
			OverallStatus: models.OverallPending,
		},
	}

	d := BuildDashboard(ledgers, 0)
	require.Contains(t, d.GradeCategoryStats, models.CategoryPrimaire)
	assert.Equal(t, 2, d.GradeCategoryStats[models.CategoryPrimaire].Count)
	assert.Equal(t, 700.0, d.GradeCategoryStats[models.CategoryPrimaire].Revenue)
	assert.Equal(t, 1, d.GradeCategoryStats[models.CategorySecondaire].Count)
}

func TestBuildDashboardComponentStats(t *testing.T) {
	ledgers := []*models.StudentPayment{
		{
			Uniform:      models.UniformPayment{Purchased: true, Amount: 60, Paid: true},
			TotalAmounts: models.ComponentAmounts{Uniform: 60, GrandTotal: 60},
			PaidAmounts:  models.ComponentAmounts{Uniform: 60, GrandTotal: 60},
		},
		{
			Uniform:      models.UniformPayment{Purchased: true, Amount: 60},
			TotalAmounts: models.ComponentAmounts{Uniform: 60, GrandTotal: 60},
		},
		{
			Transportation: models.TransportationPlan{Subscribed: true},
			TotalAmounts:   models.ComponentAmounts{Transportation: 180, GrandTotal: 180},
			PaidAmounts:    models.ComponentAmounts{Transportation: 180, GrandTotal: 180},
		},
	}

	d := BuildDashboard(ledgers, 0)
	uni := d.ComponentStats[models.ComponentUniform]
	assert.Equal(t, 2, uni.TotalStudents)
	assert.Equal(t, 1, uni.PaidStudents)
	assert.Equal(t, 60.0, uni.TotalRevenue)
	assert.Equal(t, 120.0, uni.ExpectedRevenue)

	tr := d.ComponentStats[models.ComponentTransportation]
	assert.Equal(t, 1, tr.TotalStudents)
	assert.Equal(t, 1, tr.PaidStudents)
}

func TestBuildDashboardDoesNotMutateInputs(t *testing.T) {
	sp := &models.StudentPayment{
		TotalAmounts:  models.ComponentAmounts{GrandTotal: 100},
		PaidAmounts:   models.ComponentAmounts{GrandTotal: 25},
		OverallStatus: models.OverallPartial,
	}
	before := *sp
	_ = BuildDashboard([]*models.StudentPayment{sp}, 0)
	assert.Equal(t, before, *sp)
}
