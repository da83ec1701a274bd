package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cashflowParams struct {
	Kind   string `query:"kind" validate:"required,cashflow_kind"`
	Bucket string `json:"bucket" validate:"omitempty,period_bucket"`
}

func TestCustomRules(t *testing.T) {
	v := NewValidator()

	testCases := []struct {
		name  string
		value string
		tag   string
		valid bool
	}{
		{"income", "income", "cashflow_kind", true},
		{"expense", "expense", "cashflow_kind", true},
		{"unknown kind", "savings", "cashflow_kind", false},
		{"kind is case sensitive", "Income", "cashflow_kind", false},
		{"year bucket", "year", "period_bucket", true},
		{"quarter bucket", "quarter", "period_bucket", true},
		{"month bucket", "month", "period_bucket", false},
		{"iban", "AT483200000012345864", "account_id", true},
		{"iban inside text", "Miete AT483200000012345864", "account_id", false},
		{"plain word", "Allianz", "account_id", false},
		{"empty account", "", "account_id", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Var(tc.value, tc.tag)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestStruct_FieldNamesFromTags(t *testing.T) {
	err := GetValidator().Struct(cashflowParams{Kind: "savings", Bucket: "month"})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	require.Len(t, validationErrs, 2)
	assert.Equal(t, "kind", validationErrs[0].Field())
	assert.Equal(t, "cashflow_kind", validationErrs[0].Tag())
	assert.Equal(t, "bucket", validationErrs[1].Field())
}

func TestGetValidator_Shared(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
	assert.NotNil(t, GetValidator().GetValidate())
}
