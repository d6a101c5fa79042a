package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/LongVariable/Ziskup/internal/controllers/v1"
	"github.com/LongVariable/Ziskup/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestMonthsEmpty() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/months", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	assert.JSONEq(suite.T(), `{"data": [], "error": null}`, r.Body.String())
}

func (suite *TestSuiteStandard) TestMonthCreate() {
	month := createTestMonth(suite.T(), v1.MonthEditable{Year: 2025, Month: 3})

	require.NotNil(suite.T(), month.Data)
	assert.Equal(suite.T(), "2025-03", month.Data.Key)
	assert.Equal(suite.T(), "Březen", month.Data.Name)

	// Every effective category gets a group, even when empty
	assert.Len(suite.T(), month.Data.Groups, 5)
}

func (suite *TestSuiteStandard) TestMonthCreateInvalid() {
	tests := []struct {
		name string
		body any
	}{
		{"invalid month number", v1.MonthEditable{Year: 2025, Month: 13}},
		{"month without year", v1.MonthEditable{Year: 0, Month: 5}},
		{"broken body", `{ "year": `},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/months", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestMonthCreateFromTemplate() {
	createTestEntry(suite.T(), "template", "Prace", v1.EntryEditable{
		Name:   ptr("Salary"),
		Amount: ptr("1000"),
	})

	month := createTestMonth(suite.T(), v1.MonthEditable{Year: 2025, Month: 3})
	require.NotNil(suite.T(), month.Data)
	assert.Equal(suite.T(), "1000", month.Data.Income.String())

	// The pre-fill happens once, not on every POST
	again := createTestMonth(suite.T(), v1.MonthEditable{Year: 2025, Month: 3})
	assert.Equal(suite.T(), "1000", again.Data.Income.String())
}

func (suite *TestSuiteStandard) TestMonthGet() {
	createTestEntry(suite.T(), "2025-03", "Prace", v1.EntryEditable{
		Name:   ptr("Salary"),
		Amount: ptr("500"),
	})
	createTestEntry(suite.T(), "2025-03", "Nakupy", v1.EntryEditable{
		Name:   ptr("Groceries"),
		Amount: ptr("-200"),
	})
	createTestEntry(suite.T(), "2025-03", "Nakupy", v1.EntryEditable{
		Name:   ptr("Drugstore"),
		Amount: ptr("-50"),
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/months/2025-03", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var month v1.MonthResponse
	test.DecodeResponse(suite.T(), &r, &month)

	require.NotNil(suite.T(), month.Data)
	assert.Equal(suite.T(), "500", month.Data.Income.String())
	assert.Equal(suite.T(), "250", month.Data.Expense.String())
	assert.Equal(suite.T(), "250", month.Data.Balance.String())

	for _, group := range month.Data.Groups {
		if group.Category != "Nakupy" {
			continue
		}

		assert.Equal(suite.T(), 2, group.Count)
		assert.Equal(suite.T(), "-250", group.Sum.String())
		require.Len(suite.T(), group.Entries, 2)
		assert.Equal(suite.T(), "Groceries", group.Entries[0].Name)
	}
}

func (suite *TestSuiteStandard) TestMonthGetCreatesOnAccess() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/months/2024-11", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	list := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/months", "")
	var months v1.MonthListResponse
	test.DecodeResponse(suite.T(), &list, &months)

	require.Len(suite.T(), months.Data, 1)
	assert.Equal(suite.T(), 2024, months.Data[0].Year)
	assert.Equal(suite.T(), 11, months.Data[0].Month)
}

func (suite *TestSuiteStandard) TestMonthGetTemplate() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/months/template", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var month v1.MonthResponse
	test.DecodeResponse(suite.T(), &r, &month)

	require.NotNil(suite.T(), month.Data)
	assert.Equal(suite.T(), "template", month.Data.Key)
	assert.Equal(suite.T(), "", month.Data.Name)

	// The template bucket is not a real month
	list := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/months", "")
	assert.JSONEq(suite.T(), `{"data": [], "error": null}`, list.Body.String())
}

func (suite *TestSuiteStandard) TestMonthGetInvalid() {
	tests := []string{
		"2025-13",
		"2025-3",
		"not-a-month",
		"20250-03",
	}

	for _, tt := range tests {
		suite.T().Run(tt, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/months/"+tt, "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestMonthsSorted() {
	createTestMonth(suite.T(), v1.MonthEditable{Year: 2024, Month: 12})
	createTestMonth(suite.T(), v1.MonthEditable{Year: 2025, Month: 2})
	createTestMonth(suite.T(), v1.MonthEditable{Year: 2024, Month: 3})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/months", "")
	var months v1.MonthListResponse
	test.DecodeResponse(suite.T(), &r, &months)

	require.Len(suite.T(), months.Data, 3)
	assert.Equal(suite.T(), 2, months.Data[0].Month)
	assert.Equal(suite.T(), 12, months.Data[1].Month)
	assert.Equal(suite.T(), 3, months.Data[2].Month)
}

func (suite *TestSuiteStandard) TestMonthDelete() {
	createTestEntry(suite.T(), "2025-03", "Jine", v1.EntryEditable{Amount: ptr("-10")})

	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/months/2025-03", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	list := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/months", "")
	assert.JSONEq(suite.T(), `{"data": [], "error": null}`, list.Body.String())

	// Deleting a month that does not exist is a no-op
	again := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/months/2025-03", "")
	test.AssertHTTPStatus(suite.T(), &again, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestMonthCreateStoreClosed() {
	suite.CloseStore()

	createTestMonth(suite.T(), v1.MonthEditable{Year: 2025, Month: 3}, http.StatusInternalServerError)
}
