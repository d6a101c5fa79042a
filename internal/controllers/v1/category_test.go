package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/LongVariable/Ziskup/internal/controllers/v1"
	"github.com/LongVariable/Ziskup/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCategoriesDefault() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), []string{"Prace", "Sporeni", "Investice", "Nakupy", "Jine"}, response.Data)
}

func (suite *TestSuiteStandard) TestCategoryCreate() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/categories", v1.CategoryEditable{Name: "Zabava"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Contains(suite.T(), response.Data, "Zabava")
}

func (suite *TestSuiteStandard) TestCategoryCreateInvalid() {
	tests := []struct {
		name string
		body any
	}{
		{"blank name", v1.CategoryEditable{Name: "   "}},
		{"duplicate of default", v1.CategoryEditable{Name: "Prace"}},
		{"broken body", `{ "name": `},
		{"empty body", ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/categories", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoryCreateDuplicateCustom() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/categories", v1.CategoryEditable{Name: "Zabava"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	again := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/categories", v1.CategoryEditable{Name: "Zabava"})
	test.AssertHTTPStatus(suite.T(), &again, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCategoryOrder() {
	r := test.Request(suite.T(), http.MethodPut, "http://example.com/v1/categories/order", []string{"Jine", "Prace"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), []string{"Jine", "Prace", "Sporeni", "Investice", "Nakupy"}, response.Data)
}

func (suite *TestSuiteStandard) TestCategoryDeleteDefault() {
	createTestEntry(suite.T(), "2025-02", "Prace", v1.EntryEditable{Name: ptr("Salary"), Amount: ptr("1000")})
	createTestEntry(suite.T(), "2025-03", "Prace", v1.EntryEditable{Name: ptr("Salary"), Amount: ptr("1000")})

	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/categories/Prace", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryDeleteResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.Hidden, "a built-in category must be hidden, not deleted")
	assert.NotContains(suite.T(), response.Data.Categories, "Prace")

	// The entries are gone from every month
	for _, month := range []string{"2025-02", "2025-03"} {
		get := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/months/"+month, "")
		var detail v1.MonthResponse
		test.DecodeResponse(suite.T(), &get, &detail)
		assert.True(suite.T(), detail.Data.Income.IsZero())
	}

	// The name stays taken
	add := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/categories", v1.CategoryEditable{Name: "Prace"})
	test.AssertHTTPStatus(suite.T(), &add, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCategoryDeleteCustom() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/categories", v1.CategoryEditable{Name: "Zabava"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	del := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/categories/Zabava", "")
	test.AssertHTTPStatus(suite.T(), &del, http.StatusOK)

	var response v1.CategoryDeleteResponse
	test.DecodeResponse(suite.T(), &del, &response)

	require.NotNil(suite.T(), response.Data)
	assert.False(suite.T(), response.Data.Hidden, "a custom category must be deleted for good")

	// The name is free again
	add := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/categories", v1.CategoryEditable{Name: "Zabava"})
	test.AssertHTTPStatus(suite.T(), &add, http.StatusCreated)
}

func (suite *TestSuiteStandard) TestCategoryDeleteUnknown() {
	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/categories/Neexistuje", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
