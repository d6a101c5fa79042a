package v1_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	v1 "github.com/LongVariable/Ziskup/internal/controllers/v1"
	"github.com/LongVariable/Ziskup/internal/models"
	"github.com/LongVariable/Ziskup/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestExport() {
	createTestEntry(suite.T(), "2025-03", "Nakupy", v1.EntryEditable{Name: ptr("Groceries"), Amount: ptr("-50")})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	assert.Contains(suite.T(), r.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(suite.T(), r.Header().Get("Content-Disposition"), ".json")

	var doc models.Document
	require.Nil(suite.T(), json.Unmarshal(r.Body.Bytes(), &doc))
	require.Len(suite.T(), doc.Months, 1)
	require.Len(suite.T(), doc.Months[0].Entries, 1)
	assert.Equal(suite.T(), "Groceries", doc.Months[0].Entries[0].Name)

	// Amounts export as JSON numbers, not strings
	assert.Contains(suite.T(), r.Body.String(), `"amount": -50`)
}

func (suite *TestSuiteStandard) TestExportCSV() {
	createTestEntry(suite.T(), "2025-03", "Nakupy", v1.EntryEditable{Name: ptr("Groceries"), Note: ptr("weekly"), Amount: ptr("-50")})
	createTestEntry(suite.T(), "template", "Prace", v1.EntryEditable{Name: ptr("Ignored"), Amount: ptr("1000")})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export/csv", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	assert.Contains(suite.T(), r.Header().Get("Content-Disposition"), ".csv")

	lines := strings.Split(strings.TrimSpace(r.Body.String()), "\n")
	require.Len(suite.T(), lines, 2, "the template bucket must not be exported")

	assert.Equal(suite.T(), "Mesic;Kategorie;Nazev;Poznamka;Castka", strings.TrimSpace(lines[0]))
	assert.Contains(suite.T(), lines[1], "2025-03;Nakupy;Groceries;weekly")
	// Czech decimal separator
	assert.Contains(suite.T(), lines[1], "-50,00")
}

func (suite *TestSuiteStandard) TestImport() {
	createTestEntry(suite.T(), "2025-03", "Jine", v1.EntryEditable{Name: ptr("Old"), Amount: ptr("-1")})

	body, headers := test.MultipartFile(suite.T(), "finance.json",
		`{"months":[{"year":2024,"month":7,"entries":[{"name":"New","amount":5}]}]}`)

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/import", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	list := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/months", "")
	var months v1.MonthListResponse
	test.DecodeResponse(suite.T(), &list, &months)

	require.Len(suite.T(), months.Data, 1, "import must replace the document, not merge")
	assert.Equal(suite.T(), 2024, months.Data[0].Year)
	assert.Equal(suite.T(), "5", months.Data[0].Balance.String())
}

func (suite *TestSuiteStandard) TestImportLegacyArray() {
	body, headers := test.MultipartFile(suite.T(), "finance.json",
		`[{"year":2024,"month":7,"entries":[{"name":"New","amount":5}]}]`)

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/import", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	list := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/months", "")
	var months v1.MonthListResponse
	test.DecodeResponse(suite.T(), &list, &months)
	require.Len(suite.T(), months.Data, 1)
}

func (suite *TestSuiteStandard) TestImportRoundTrip() {
	createTestEntry(suite.T(), "2025-03", "Nakupy", v1.EntryEditable{Name: ptr("Groceries"), Amount: ptr("-50")})

	export := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &export, http.StatusOK)

	wipe := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &wipe, http.StatusNoContent)

	body, headers := test.MultipartFile(suite.T(), "finance.json", export.Body.String())
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/import", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	get := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/months/2025-03", "")
	var month v1.MonthResponse
	test.DecodeResponse(suite.T(), &get, &month)
	assert.Equal(suite.T(), "50", month.Data.Expense.String())
}

func (suite *TestSuiteStandard) TestImportInvalid() {
	createTestEntry(suite.T(), "2025-03", "Jine", v1.EntryEditable{Name: ptr("Kept"), Amount: ptr("-1")})

	suite.T().Run("malformed JSON", func(t *testing.T) {
		body, headers := test.MultipartFile(t, "finance.json", "{ not json")

		r := test.Request(t, http.MethodPost, "http://example.com/v1/import", body, headers)
		test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
	})

	suite.T().Run("wrong file suffix", func(t *testing.T) {
		body, headers := test.MultipartFile(t, "finance.csv", "{}")

		r := test.Request(t, http.MethodPost, "http://example.com/v1/import", body, headers)
		test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
	})

	suite.T().Run("no file", func(t *testing.T) {
		r := test.Request(t, http.MethodPost, "http://example.com/v1/import", "")
		test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
	})

	// The document is untouched
	get := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/months/2025-03", "")
	var month v1.MonthResponse
	test.DecodeResponse(suite.T(), &get, &month)
	assert.Equal(suite.T(), "1", month.Data.Expense.String())
}
