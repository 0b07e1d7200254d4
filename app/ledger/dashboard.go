package ledger

import "platforme-educatif/app/models"

// BuildDashboard folds a year's ledgers into the dashboard projection.
// studentsWithoutRecord counts active students that have no ledger yet; they
// land in the no_record bucket. Inputs are not mutated and the result is a
// fresh value each call.
func BuildDashboard(ledgers []*models.StudentPayment, studentsWithoutRecord int) *models.PaymentDashboard {
	d := &models.PaymentDashboard{
		GradeCategoryStats: make(map[models.GradeCategory]models.GroupStat),
		ComponentStats:     make(map[models.Component]models.ComponentStat),
	}

	var expected, collected models.ComponentAmounts
	uniformStat := models.ComponentStat{}
	transportStat := models.ComponentStat{}

	for _, sp := range ledgers {
		expected.Tuition += sp.TotalAmounts.Tuition
		expected.Uniform += sp.TotalAmounts.Uniform
		expected.Transportation += sp.TotalAmounts.Transportation
		expected.GrandTotal += sp.TotalAmounts.GrandTotal

		collected.Tuition += sp.PaidAmounts.Tuition
		collected.Uniform += sp.PaidAmounts.Uniform
		collected.Transportation += sp.PaidAmounts.Transportation
		collected.GrandTotal += sp.PaidAmounts.GrandTotal

		switch sp.OverallStatus {
		case models.OverallCompleted:
			d.StatusCounts.Completed++
		case models.OverallOverdue:
			d.StatusCounts.Overdue++
		case models.OverallPartial:
			d.StatusCounts.Partial++
		default:
			d.StatusCounts.Pending++
		}

		if sp.GradeCategory != "" {
			gs := d.GradeCategoryStats[sp.GradeCategory]
			gs.Count++
			gs.Revenue += sp.PaidAmounts.GrandTotal
			gs.ExpectedRevenue += sp.TotalAmounts.GrandTotal
			d.GradeCategoryStats[sp.GradeCategory] = gs
		}

		if sp.Uniform.Purchased {
			uniformStat.TotalStudents++
			uniformStat.ExpectedRevenue += sp.TotalAmounts.Uniform
			uniformStat.TotalRevenue += sp.PaidAmounts.Uniform
			if sp.Uniform.Paid {
				uniformStat.PaidStudents++
			}
		}
		if sp.Transportation.Subscribed {
			transportStat.TotalStudents++
			transportStat.ExpectedRevenue += sp.TotalAmounts.Transportation
			transportStat.TotalRevenue += sp.PaidAmounts.Transportation
			if sp.PaidAmounts.Transportation >= sp.TotalAmounts.Transportation && sp.TotalAmounts.Transportation > 0 {
				transportStat.PaidStudents++
			}
		}
	}

	d.StatusCounts.NoRecord = studentsWithoutRecord
	d.ComponentStats[models.ComponentUniform] = uniformStat
	d.ComponentStats[models.ComponentTransportation] = transportStat

	d.Overview = models.DashboardOverview{
		TotalStudents:      len(ledgers) + studentsWithoutRecord,
		StudentsWithRecord: len(ledgers),
		ExpectedRevenue:    expected,
		TotalRevenue:       collected,
		OutstandingRevenue: models.ComponentAmounts{
			Tuition:        ClampNonNegative(expected.Tuition - collected.Tuition),
			Uniform:        ClampNonNegative(expected.Uniform - collected.Uniform),
			Transportation: ClampNonNegative(expected.Transportation - collected.Transportation),
			GrandTotal:     ClampNonNegative(expected.GrandTotal - collected.GrandTotal),
		},
		CollectionRate: models.CollectionRates{
			Tuition:        Percent(collected.Tuition, expected.Tuition),
			Uniform:        Percent(collected.Uniform, expected.Uniform),
			Transportation: Percent(collected.Transportation, expected.Transportation),
			Overall:        Percent(collected.GrandTotal, expected.GrandTotal),
		},
	}
	return d
}
