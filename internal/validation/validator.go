package validation

import (
	"reflect"
	"strings"
	"sync"

	"cashflow-report/internal/models"

	"github.com/go-playground/validator/v10"
)

// Cash flow kinds accepted by the report API
const (
	KindIncome  = "income"
	KindExpense = "expense"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// Struct validates a tagged struct
func (v *Validator) Struct(i interface{}) error {
	return v.validate.Struct(i)
}

// Var validates a single value against tag
func (v *Validator) Var(field interface{}, tag string) error {
	return v.validate.Var(field, tag)
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("period_bucket", validatePeriodBucket)
	_ = v.RegisterValidation("cashflow_kind", validateCashflowKind)
	_ = v.RegisterValidation("account_id", validateAccountID)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"query", "json"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	return &Validator{validate: v}
}

// validatePeriodBucket accepts the cash flow bucket names
func validatePeriodBucket(fl validator.FieldLevel) bool {
	_, err := models.ParseBucket(fl.Field().String())
	return err == nil
}

// validateCashflowKind accepts income or expense
func validateCashflowKind(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case KindIncome, KindExpense:
		return true
	default:
		return false
	}
}

// validateAccountID accepts a string that is exactly one IBAN-shaped identifier
func validateAccountID(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value != "" && models.ExtractAccountID(value) == value
}
