package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHandleServiceError(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"validation", NewValidationError("name", "is required"), http.StatusBadRequest, "Invalid request payload"},
		{"unauthenticated", ErrInvalidSession, http.StatusUnauthorized, "Unauthorized"},
		{"forbidden", ErrForbidden, http.StatusForbidden, "Access denied"},
		{"not found", ErrProjectNotFound, http.StatusNotFound, "Project not found"},
		{"reference", ErrHabitReference, http.StatusNotFound, "Habit: referenced entity does not exist"},
		{"database", DatabaseError(errors.New("connection reset")), http.StatusInternalServerError, "Internal server error"},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Set("trace_id", "trace-1")

			HandleServiceError(c, tc.err)

			require.Equal(t, tc.code, rec.Code)
			var body APIResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "error", body.Status)
			assert.Equal(t, tc.code, body.Code)
			assert.Equal(t, tc.message, body.Message)
			assert.Equal(t, "trace-1", body.TraceID)
			assert.NotContains(t, rec.Body.String(), "connection reset")
		})
	}
}

func TestHandleServiceError_ValidationFields(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	HandleServiceError(c, &ValidationError{Fields: map[string]string{"name": "is required", "priority": "must be one of: low medium high"}})

	var body APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "is required", body.Errors["name"])
	assert.Len(t, body.Errors, 2)
}

func TestRespondSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	RespondSuccess(c, gin.H{"ok": true}, "done")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"success","code":200,"message":"done","data":{"ok":true}}`, rec.Body.String())
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"b": "x", "a": "y"}}
	assert.Equal(t, "validation failed: a: y, b: x", err.Error())
	assert.Equal(t, "validation failed", (&ValidationError{}).Error())
	assert.Nil(t, DatabaseError(nil))
	assert.True(t, IsNotFound(ErrTaskNotFound))
	assert.False(t, IsNotFound(ErrReference))
}
