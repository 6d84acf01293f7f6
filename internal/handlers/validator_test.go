package handlers

import (
	"reflect"
	"testing"

	"customer-pipeline/internal/dto"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomValidator_ReportsQueryNames(t *testing.T) {
	err := NewValidator().Validate(dto.ListCustomersRequest{Page: -1, Limit: 101})
	require.Error(t, err)

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)

	fields := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fields = append(fields, fe.Field())
	}
	assert.ElementsMatch(t, []string{"page", "limit"}, fields)
}

func TestCustomValidator_AcceptsDefaults(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(dto.ListCustomersRequest{}))
	assert.NoError(t, v.Validate(dto.ListCustomersRequest{Page: 3, Limit: 100}))
}

func TestRequestFieldName(t *testing.T) {
	type sample struct {
		Page   int    `query:"page"`
		ID     string `param:"id"`
		Email  string `json:"email,omitempty"`
		Hidden string `json:"-"`
		Plain  string
	}

	typ := reflect.TypeOf(sample{})
	expected := map[string]string{
		"Page":   "page",
		"ID":     "id",
		"Email":  "email",
		"Hidden": "",
		"Plain":  "Plain",
	}
	for field, name := range expected {
		sf, ok := typ.FieldByName(field)
		require.True(t, ok)
		assert.Equal(t, name, requestFieldName(sf), field)
	}
}

