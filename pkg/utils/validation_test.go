package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name     string `json:"name" binding:"required,max=10"`
	Priority string `json:"priority" binding:"omitempty,oneof=low medium high"`
	Count    int    `json:"count" binding:"gte=0,lte=5"`
}

type checkedRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

func (r *checkedRequest) Validate() error {
	if r.To < r.From {
		return NewValidationError("to", "must not be before from")
	}
	return nil
}

func bindBody[T any](t *testing.T, body string) (T, error) {
	t.Helper()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return BindJSON[T](c)
}

func TestBindJSON_Valid(t *testing.T) {
	req, err := bindBody[sampleRequest](t, `{"name":"Sit","priority":"high","count":2}`)
	require.NoError(t, err)
	assert.Equal(t, "Sit", req.Name)
}

func TestBindJSON_FieldErrorsUseJSONNames(t *testing.T) {
	_, err := bindBody[sampleRequest](t, `{"priority":"urgent","count":9}`)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "is required", verr.Fields["name"])
	assert.Equal(t, "must be one of: low medium high", verr.Fields["priority"])
	assert.Equal(t, "must be <= 5", verr.Fields["count"])
}

func TestBindJSON_TypeMismatch(t *testing.T) {
	_, err := bindBody[sampleRequest](t, `{"name":"x","count":"many"}`)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "count")
}

func TestBindJSON_Malformed(t *testing.T) {
	_, err := bindBody[sampleRequest](t, `{"name":`)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "malformed JSON", verr.Fields["body"])
}

func TestBindJSON_ValidateHook(t *testing.T) {
	_, err := bindBody[checkedRequest](t, `{"from":5,"to":1}`)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "to")
}
