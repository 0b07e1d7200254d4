package ledger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"platforme-educatif/app/models"
)

func TestCSVFieldQuoting(t *testing.T) {
	assert.Equal(t, "plain", csvField("plain"))
	assert.Equal(t, `"a,b"`, csvField("a,b"))
	assert.Equal(t, `"say ""hi"""`, csvField(`say "hi"`))
	assert.Equal(t, "\"line\nbreak\"", csvField("line\nbreak"))
}

func TestStudentRowsCSVResolvesNames(t *testing.T) {
	ledgers := []*models.StudentPayment{
		{
			StudentID:     models.RefID[models.Student]("s-1"),
			ClassGroup:    models.GroupLycee,
			GradeCategory: models.CategorySecondaire,
			TotalAmounts:  models.ComponentAmounts{Tuition: 900, GrandTotal: 900},
			PaidAmounts:   models.ComponentAmounts{Tuition: 100, GrandTotal: 100},
			OverallStatus: models.OverallPartial,
		},
	}
	students := map[string]*models.Student{
		"s-1": {ID: "s-1", FirstName: "Haddad, Amine", LastName: "Jr"},
	}

	out := StudentRowsCSV(ledgers, students)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], `"Haddad, Amine Jr",lycee,secondaire,900,100,800`))
}

func TestDashboardCSVShape(t *testing.T) {
	d := BuildDashboard([]*models.StudentPayment{
		{
			TotalAmounts:  models.ComponentAmounts{Tuition: 1000, GrandTotal: 1000},
			PaidAmounts:   models.ComponentAmounts{Tuition: 500, GrandTotal: 500},
			OverallStatus: models.OverallPartial,
		},
	}, 2)

	out := DashboardCSV(d)
	assert.Contains(t, out, "metric,tuition,uniform,transportation,total")
	assert.Contains(t, out, "expected_revenue,1000,0,0,1000")
	assert.Contains(t, out, "collection_rate,50%,0%,0%,50%")
	assert.Contains(t, out, "no_record,2")
}
