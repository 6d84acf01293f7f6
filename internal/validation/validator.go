package validation

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode"

	"customer-pipeline/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
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

	_ = v.RegisterValidation("customer_id", validateCustomerID)
	_ = v.RegisterValidation("balance_precision", validateBalancePrecision)

	v.RegisterCustomTypeFunc(nullDecimalValue, decimal.NullDecimal{})

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// ValidateCustomer checks a normalized customer against the column constraints of the store
func (v *Validator) ValidateCustomer(customer *models.Customer) error {
	if err := v.validate.Struct(customer); err != nil {
		return FormatErrors(err)
	}
	return nil
}

// FormatErrors flattens validator errors into a single readable error
func FormatErrors(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		messages = append(messages, fmt.Sprintf("%s %s", fe.Field(), FormatFieldError(fe)))
	}
	return fmt.Errorf("%s", strings.Join(messages, "; "))
}

// FormatFieldError converts a validator.FieldError to a human-readable message
func FormatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "customer_id":
		return "must be a non-blank identifier without control characters"
	case "balance_precision":
		return "must fit 13 integer digits and 2 fractional digits"
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}

// Custom validation functions

// validateCustomerID rejects blank identifiers and identifiers carrying control characters
func validateCustomerID(fl validator.FieldLevel) bool {
	id := fl.Field().String()
	if strings.TrimSpace(id) == "" {
		return false
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}

// validateBalancePrecision checks the balance fits decimal(15,2)
func validateBalancePrecision(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	if d.Exponent() < -models.BalanceScale && !d.Equal(d.Round(models.BalanceScale)) {
		return false
	}
	return !models.BalanceOverflows(d)
}

// outOfRangeBalance stands in for balances too large to render; it fails balance_precision
const outOfRangeBalance = "out-of-range"

// nullDecimalValue exposes a NullDecimal to the validator as its string form, or nil when null
func nullDecimalValue(field reflect.Value) interface{} {
	if nd, ok := field.Interface().(decimal.NullDecimal); ok {
		if !nd.Valid {
			return nil
		}
		if models.BalanceOverflows(nd.Decimal) {
			return outOfRangeBalance
		}
		return nd.Decimal.String()
	}
	return nil
}
