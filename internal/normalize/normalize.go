// Package normalize converts loosely typed upstream values into the strict types stored for a
// customer. Malformed input is never an error: it becomes nil (SQL NULL) and the caller is told
// which fields were dropped.
package normalize

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"customer-pipeline/internal/dto"
	"customer-pipeline/internal/models"

	"github.com/shopspring/decimal"
)

// timestampLayouts are tried in order; zone-less layouts are read as UTC
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// Date parses a YYYY-MM-DD calendar date. A longer ISO-8601 timestamp is cut down to its date part.
func Date(v any) *time.Time {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	s = strings.TrimSpace(s)
	if len(s) < len(models.DateLayout) {
		return nil
	}
	if len(s) > len(models.DateLayout) {
		if sep := s[len(models.DateLayout)]; sep != 'T' && sep != ' ' {
			return nil
		}
		s = s[:len(models.DateLayout)]
	}

	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

// Timestamp parses an ISO-8601 timestamp (Z or numeric offset optional) or a plain
// "YYYY-MM-DD HH:MM:SS" value.
func Timestamp(v any) *time.Time {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// Decimal converts a number or numeric string into a fixed-point value rounded to two places.
// Absent, null or non-numeric input yields an invalid NullDecimal, never zero. So does a value
// whose integer part cannot fit decimal(15,2); it is rejected before rounding, which would
// otherwise materialize the full coefficient of an exponent like "1e100000000".
func Decimal(v any) decimal.NullDecimal {
	var (
		d   decimal.Decimal
		err error
	)

	switch x := v.(type) {
	case nil:
		return decimal.NullDecimal{}
	case json.Number:
		d, err = decimal.NewFromString(x.String())
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return decimal.NullDecimal{}
		}
		d, err = decimal.NewFromString(s)
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return decimal.NullDecimal{}
		}
		d = decimal.NewFromFloat(x)
	case float32:
		f := float64(x)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return decimal.NullDecimal{}
		}
		d = decimal.NewFromFloat32(x)
	case int:
		d = decimal.NewFromInt(int64(x))
	case int32:
		d = decimal.NewFromInt32(x)
	case int64:
		d = decimal.NewFromInt(x)
	default:
		return decimal.NullDecimal{}
	}
	if err != nil {
		return decimal.NullDecimal{}
	}

	if models.BalanceOverflows(d) {
		return decimal.NullDecimal{}
	}
	// below a thousandth, so it rounds to zero
	if models.BalanceMagnitude(d) < -models.BalanceScale {
		return decimal.NewNullDecimal(decimal.New(0, -models.BalanceScale))
	}

	d = d.Round(models.BalanceScale)
	if models.BalanceOverflows(d) {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

// String returns an optional text value. Numbers keep their literal form; objects and arrays are dropped.
func String(v any) *string {
	var s string
	switch x := v.(type) {
	case nil:
		return nil
	case string:
		s = x
	case json.Number:
		s = x.String()
	case float64, float32, int, int32, int64, bool:
		s = fmt.Sprint(x)
	default:
		return nil
	}
	return &s
}

// RequiredString returns the text of a required field, or "" when it is missing or not scalar
func RequiredString(v any) string {
	if s := String(v); s != nil {
		return strings.TrimSpace(*s)
	}
	return ""
}

// Customer maps a raw upstream record onto a Customer. The second return value names each
// optional field that carried a value the normalizer could not use and therefore set to null.
func Customer(raw dto.RawCustomer) (*models.Customer, []string) {
	var nulled []string
	present := func(key string) bool {
		v, ok := raw[key]
		return ok && v != nil
	}

	customer := &models.Customer{
		CustomerID:  RequiredString(raw["customer_id"]),
		FirstName:   RequiredString(raw["first_name"]),
		LastName:    RequiredString(raw["last_name"]),
		Email:       RequiredString(raw["email"]),
		Phone:       String(raw["phone"]),
		Address:     String(raw["address"]),
		DateOfBirth: Date(raw["date_of_birth"]),
		CreatedAt:   Timestamp(raw["created_at"]),
	}
	customer.AccountBalance = Decimal(raw["account_balance"])

	if customer.Phone == nil && present("phone") {
		nulled = append(nulled, "phone")
	}
	if customer.Address == nil && present("address") {
		nulled = append(nulled, "address")
	}
	if customer.DateOfBirth == nil && present("date_of_birth") {
		nulled = append(nulled, "date_of_birth")
	}
	if !customer.AccountBalance.Valid && present("account_balance") {
		nulled = append(nulled, "account_balance")
	}
	if customer.CreatedAt == nil && present("created_at") {
		nulled = append(nulled, "created_at")
	}

	return customer, nulled
}
