package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/LongVariable/Ziskup/internal/controllers/v1"
	"github.com/LongVariable/Ziskup/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestDashboardEmpty() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), 0, response.Data.MonthCount)
	assert.True(suite.T(), response.Data.Income.IsZero())
	assert.Nil(suite.T(), response.Data.TopIncome)
	assert.Nil(suite.T(), response.Data.TopExpense)
	assert.Empty(suite.T(), response.Data.BalanceSeries)
}

func (suite *TestSuiteStandard) TestDashboard() {
	createTestEntry(suite.T(), "2024-12", "Prace", v1.EntryEditable{Name: ptr("Salary"), Amount: ptr("500")})
	createTestEntry(suite.T(), "2025-01", "Nakupy", v1.EntryEditable{Name: ptr("Groceries"), Amount: ptr("-200")})
	createTestEntry(suite.T(), "2025-01", "Jine", v1.EntryEditable{Name: ptr("Drugstore"), Amount: ptr("-50")})
	createTestEntry(suite.T(), "template", "Prace", v1.EntryEditable{Name: ptr("Ignored"), Amount: ptr("9999")})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)

	data := response.Data
	require.NotNil(suite.T(), data)

	assert.Equal(suite.T(), "2024-12", data.From)
	assert.Equal(suite.T(), "2025-01", data.To)
	assert.Equal(suite.T(), 2, data.MonthCount)

	assert.Equal(suite.T(), "500", data.Income.String())
	assert.Equal(suite.T(), "250", data.Expense.String())
	assert.Equal(suite.T(), "250", data.Balance.String())
	assert.Equal(suite.T(), "250", data.AverageIncome.String())
	assert.Equal(suite.T(), "125", data.AverageExpense.String())

	require.NotNil(suite.T(), data.TopIncome)
	assert.Equal(suite.T(), "Salary", data.TopIncome.Name)
	require.NotNil(suite.T(), data.TopExpense)
	assert.Equal(suite.T(), "Groceries", data.TopExpense.Name)

	assert.Equal(suite.T(), "200", data.ExpenseByCategory["Nakupy"].String())
	assert.Equal(suite.T(), "500", data.IncomeByCategory["Prace"].String())

	require.Len(suite.T(), data.BalanceSeries, 2)
	assert.Equal(suite.T(), "Prosinec 2024", data.BalanceSeries[0].Label)
	assert.Equal(suite.T(), "Leden 2025", data.BalanceSeries[1].Label)
	assert.Equal(suite.T(), "500", data.BalanceSeries[0].Balance.String())
	assert.Equal(suite.T(), "-250", data.BalanceSeries[1].Balance.String())

	require.Len(suite.T(), data.TopItems, 2)
	assert.Equal(suite.T(), "Groceries", data.TopItems[0].Name)
	assert.Equal(suite.T(), "200", data.TopItems[0].Amount.String())

	require.Len(suite.T(), data.Breakdown, 2)
	assert.Equal(suite.T(), "Nakupy", data.Breakdown[0].Category)
	assert.Equal(suite.T(), int64(100), data.Breakdown[0].Percent)
	assert.Equal(suite.T(), "Jine", data.Breakdown[1].Category)
	assert.Equal(suite.T(), int64(25), data.Breakdown[1].Percent)
}

func (suite *TestSuiteStandard) TestDashboardRange() {
	createTestEntry(suite.T(), "2024-12", "Prace", v1.EntryEditable{Name: ptr("Salary"), Amount: ptr("500")})
	createTestEntry(suite.T(), "2025-01", "Nakupy", v1.EntryEditable{Name: ptr("Groceries"), Amount: ptr("-200")})
	createTestEntry(suite.T(), "2025-03", "Nakupy", v1.EntryEditable{Name: ptr("Shoes"), Amount: ptr("-80")})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard?from=2025-01&to=2025-02", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), 1, response.Data.MonthCount)
	assert.Equal(suite.T(), "200", response.Data.Expense.String())
	assert.True(suite.T(), response.Data.Income.IsZero())
}

func (suite *TestSuiteStandard) TestDashboardInvalidRange() {
	tests := []struct {
		name string
		url  string
	}{
		{"inverted", "http://example.com/v1/dashboard?from=2025-03&to=2025-01"},
		{"unparseable from", "http://example.com/v1/dashboard?from=abc"},
		{"unparseable to", "http://example.com/v1/dashboard?to=2025-1"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			createTestEntry(t, "2025-01", "Jine", v1.EntryEditable{Name: ptr("x")})

			r := test.Request(t, http.MethodGet, tt.url, "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}
