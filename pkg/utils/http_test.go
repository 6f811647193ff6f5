package utils_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"duka/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBody(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	t.Run("valid body", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"kettle"}`))
		var p payload
		require.NoError(t, utils.DecodeBody(r, &p))
		assert.Equal(t, "kettle", p.Name)
	})

	t.Run("trailing garbage rejected", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"kettle"}{"name":"again"}`))
		var p payload
		require.Error(t, utils.DecodeBody(r, &p))
	})

	t.Run("oversized body rejected", func(t *testing.T) {
		huge := `{"name":"` + strings.Repeat("x", 2<<20) + `"}`
		r := httptest.NewRequest("POST", "/", strings.NewReader(huge))
		var p payload
		require.Error(t, utils.DecodeBody(r, &p))
	})
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()
	require.NoError(t, utils.WriteError(w, "not found", 404))

	assert.Equal(t, 404, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"not found"}`, w.Body.String())
}
