package v1

import (
	"github.com/shopspring/decimal"

	"github.com/LongVariable/Ziskup/internal/aggregate"
	"github.com/LongVariable/Ziskup/internal/models"
)

// Dashboard carries every aggregate the dashboard view renders.
type Dashboard struct {
	From       string `json:"from" example:"2024-06"` // First month of the range
	To         string `json:"to" example:"2025-02"`   // Last month of the range
	MonthCount int    `json:"monthCount" example:"9"` // Number of months in the range

	Income         decimal.Decimal `json:"income" example:"9000"`         // Total income over the range
	Expense        decimal.Decimal `json:"expense" example:"7200"`        // Total expense over the range, as a positive number
	Balance        decimal.Decimal `json:"balance" example:"1800"`        // Income minus expense
	AverageIncome  decimal.Decimal `json:"averageIncome" example:"1000"`  // Income per month in the range
	AverageExpense decimal.Decimal `json:"averageExpense" example:"800"`  // Expense per month in the range

	TopIncome  *models.Entry `json:"topIncome"`  // The largest single income entry, null when there is none
	TopExpense *models.Entry `json:"topExpense"` // The largest single expense entry, null when there is none

	IncomeByCategory  map[string]decimal.Decimal `json:"incomeByCategory"`  // Income sums keyed by category
	ExpenseByCategory map[string]decimal.Decimal `json:"expenseByCategory"` // Expense sums keyed by category

	TopItems      []aggregate.NamedAmount  `json:"topItems"`      // Largest expense items by name, smaller ones collapsed into "Ostatní"
	Breakdown     []aggregate.BreakdownRow `json:"breakdown"`     // Expense by category with percent of the largest
	BalanceSeries []aggregate.MonthBalance `json:"balanceSeries"` // Per-month balances, oldest first
}

type DashboardResponse struct {
	Data  *Dashboard `json:"data"`                                                                // Data for the dashboard
	Error *string    `json:"error" example:"the 'from' month must not be after the 'to' month"` // The error, if any occurred
}
