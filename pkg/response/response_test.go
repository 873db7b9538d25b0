package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, http.StatusNotFound, "Lesson not found", map[string]string{"id": "42"})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, http.StatusNotFound, got.Status)
	assert.False(t, got.Success)
	assert.Equal(t, "Lesson not found", got.Message)
	assert.Equal(t, map[string]interface{}{"id": "42"}, got.Errors)
}

func TestCreatedAndNoContent(t *testing.T) {
	rec := httptest.NewRecorder()
	Created(rec, map[string]int{"id": 1})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":1}`, rec.Body.String())

	rec = httptest.NewRecorder()
	NoContent(rec)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
