package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/LongVariable/Ziskup/internal/aggregate"
	"github.com/LongVariable/Ziskup/internal/httputil"
	"github.com/LongVariable/Ziskup/internal/repository"
)

// RegisterDashboardRoutes registers the routes for the dashboard with
// the RouterGroup that is passed.
func RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", GetDashboard)
}

// @Summary		Get dashboard
// @Description	Returns all aggregates over the month range: totals and per-month averages, top entries, sums by category, the item top list, the expense breakdown and the per-month balance series. The template bucket is never included.
// @Tags			Dashboard
// @Produce		json
// @Success		200		{object}	DashboardResponse
// @Failure		400		{object}	DashboardResponse
// @Failure		500		{object}	DashboardResponse
// @Param			from	query		string	false	"First month of the range, YYYY-MM. Defaults to the earliest stored month."
// @Param			to		query		string	false	"Last month of the range, YYYY-MM. Defaults to the latest stored month."
// @Router			/v1/dashboard [get]
func GetDashboard(c *gin.Context) {
	doc, err := repository.Main.Snapshot()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &e,
		})
		return
	}

	earliest, latest := monthRange(doc)
	from, to, ok := bindRange(c, earliest, latest)
	if !ok {
		return
	}

	months := aggregate.FilterRange(doc.RealMonths(), from, to)
	entries := aggregate.Entries(months)

	income := aggregate.SumIncome(entries)
	expense := aggregate.SumExpense(entries)

	data := Dashboard{
		From:              from.String(),
		To:                to.String(),
		MonthCount:        len(months),
		Income:            income,
		Expense:           expense,
		Balance:           aggregate.Balance(entries),
		AverageIncome:     average(income, len(months)),
		AverageExpense:    average(expense, len(months)),
		TopIncome:         aggregate.TopEntry(entries, aggregate.Income),
		TopExpense:        aggregate.TopEntry(entries, aggregate.Expense),
		IncomeByCategory:  aggregate.ByCategory(entries, aggregate.Income),
		ExpenseByCategory: aggregate.ByCategory(entries, aggregate.Expense),
		TopItems:          aggregate.RankByName(entries, aggregate.Expense, aggregate.TopItems),
		Breakdown:         aggregate.CategoryBreakdown(entries, doc.EffectiveCategories()),
		BalanceSeries:     aggregate.BalanceSeries(months),
	}

	c.JSON(http.StatusOK, DashboardResponse{Data: &data})
}

// average divides a total by the number of months, rounded to two
// decimal places. Zero months yields zero.
func average(total decimal.Decimal, months int) decimal.Decimal {
	if months == 0 {
		return decimal.Zero
	}

	return total.DivRound(decimal.NewFromInt(int64(months)), 2)
}
