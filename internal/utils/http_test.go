package utils_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/utils"
)

func paramContext(name, value string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames(name)
	c.SetParamValues(value)
	return c
}

func TestUUIDParam(t *testing.T) {
	want := uuid.New()

	id, ok := utils.UUIDParam(paramContext("id", want.String()), "id")
	assert.True(t, ok)
	assert.Equal(t, want, id)
}

func TestUUIDParam_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "garbage", value: "not-a-uuid"},
		{name: "empty", value: ""},
		{name: "truncated", value: "11111111-1111-1111-1111"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := utils.UUIDParam(paramContext("id", tt.value), "id")
			assert.False(t, ok)
			assert.Equal(t, uuid.Nil, id)
		})
	}
}
