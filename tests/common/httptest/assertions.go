//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ErrorBody mirrors the error envelope written by the API.
type ErrorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Fields map[string][]string `json:"fields"`
	Errors []string            `json:"errors"`
}

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}

	if expectedStatus >= 200 && expectedStatus < 300 && targetStruct != nil {
		err := json.Unmarshal(w.Body.Bytes(), targetStruct)
		assert.NoError(t, err, fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String()))
	}
}

func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) ErrorBody {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String()))

	var body ErrorBody
	err := json.Unmarshal(w.Body.Bytes(), &body)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode error response JSON: %s", w.Body.String()))

	if expectedErrorMsg != "" {
		assert.Contains(t, body.Error.Message, expectedErrorMsg,
			"Response error message doesn't contain expected text")
	}
	return body
}

// AssertFieldError checks a 400 whose fields map reports field.
func AssertFieldError(t *testing.T, w *httptest.ResponseRecorder, field string) ErrorBody {
	t.Helper()

	body := AssertErrorResponse(t, w, 400, "Validation failed")
	require.Contains(t, body.Fields, field, "fields: %v", body.Fields)
	return body
}

// AssertRuleError checks a 400 whose errors list carries msg.
func AssertRuleError(t *testing.T, w *httptest.ResponseRecorder, msg string) ErrorBody {
	t.Helper()

	body := AssertErrorResponse(t, w, 400, "")
	assert.Contains(t, body.Errors, msg, "errors: %v", body.Errors)
	return body
}

// AssertLocation checks the Location header of a 201 points at collection/id.
func AssertLocation(t *testing.T, w *httptest.ResponseRecorder, collection string, id fmt.Stringer) {
	t.Helper()
	assert.Equal(t, collection+"/"+id.String(), w.Header().Get("Location"), "Location header")
}
