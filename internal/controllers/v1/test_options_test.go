package v1_test

import (
	"net/http"
	"testing"

	"github.com/LongVariable/Ziskup/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsHeaderResources() {
	optionsHeaderTests := []struct {
		path     string
		response string
	}{
		{"http://example.com/v1/months", "GET, POST"},
		{"http://example.com/v1/months/2025-03", "GET, DELETE"},
		{"http://example.com/v1/months/template", "GET, DELETE"},
		{"http://example.com/v1/months/2025-03/entries", "POST"},
		{"http://example.com/v1/months/2025-03/entries/some-id", "PATCH, DELETE"},
		{"http://example.com/v1/entries", "GET"},
		{"http://example.com/v1/categories", "GET, POST"},
		{"http://example.com/v1/categories/order", "PUT"},
		{"http://example.com/v1/categories/Prace", "DELETE"},
		{"http://example.com/v1/dashboard", "GET"},
		{"http://example.com/v1/export", "GET"},
		{"http://example.com/v1/export/csv", "GET"},
		{"http://example.com/v1/import", "POST"},
		{"http://example.com/v1/icons", "GET"},
	}

	for _, tt := range optionsHeaderTests {
		suite.T().Run(tt.path, func(t *testing.T) {
			recorder := test.Request(t, http.MethodOptions, tt.path, "")

			assert.Equal(t, http.StatusNoContent, recorder.Code)
			assert.Equal(t, tt.response, recorder.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestOptionsMonthInvalid() {
	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/months/not-a-month", "")
	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

func (suite *TestSuiteStandard) TestMethodNotAllowed() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/dashboard", "")
	assert.Equal(suite.T(), http.StatusMethodNotAllowed, recorder.Code)
}
