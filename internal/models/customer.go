package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	// BalanceScale is the number of fractional digits kept for account balances
	BalanceScale = 2
	// BalanceIntegerDigits is how many integer digits a decimal(15,2) balance holds
	BalanceIntegerDigits = 13

	DateLayout = "2006-01-02"
)

var (
	ErrCustomerIDRequired = errors.New("customer_id is required")
	ErrFirstNameRequired  = errors.New("first_name is required")
	ErrLastNameRequired   = errors.New("last_name is required")
	ErrEmailRequired      = errors.New("email is required")
)

// maxBalance is the first value that no longer fits a decimal(15,2) column
var maxBalance = decimal.New(1, BalanceIntegerDigits)

// BalanceMagnitude returns exponent plus coefficient digits, an upper bound on the number of
// integer digits in d that never expands the coefficient (safe on "1e100000000").
// NumDigits may overcount by one near powers of ten.
func BalanceMagnitude(d decimal.Decimal) int64 {
	return int64(d.Exponent()) + int64(d.NumDigits())
}

// BalanceOverflows reports whether |d| is at least 10^13 and so cannot be stored in
// decimal(15,2). Far-off values are decided from the magnitude alone.
func BalanceOverflows(d decimal.Decimal) bool {
	magnitude := BalanceMagnitude(d)
	switch {
	case magnitude > BalanceIntegerDigits+1:
		return true
	case magnitude < BalanceIntegerDigits:
		return false
	}
	return d.Abs().Cmp(maxBalance) >= 0
}

// Customer is a normalized customer record as stored in the customers table.
// CustomerID is the only identity; every other column is overwritten by each ingestion run.
type Customer struct {
	CustomerID     string              `gorm:"column:customer_id;type:varchar(50);primaryKey" json:"customer_id" validate:"required,customer_id,max=50"`
	FirstName      string              `gorm:"column:first_name;type:varchar(100);not null" json:"first_name" validate:"required,max=100"`
	LastName       string              `gorm:"column:last_name;type:varchar(100);not null" json:"last_name" validate:"required,max=100"`
	Email          string              `gorm:"column:email;type:varchar(255);not null" json:"email" validate:"required,max=255"`
	Phone          *string             `gorm:"column:phone;type:varchar(20)" json:"phone" validate:"omitempty,max=20"`
	Address        *string             `gorm:"column:address;type:text" json:"address"`
	DateOfBirth    *time.Time          `gorm:"column:date_of_birth;type:date" json:"date_of_birth"`
	AccountBalance decimal.NullDecimal `gorm:"column:account_balance;type:decimal(15,2)" json:"account_balance" validate:"omitempty,balance_precision"`
	CreatedAt      *time.Time          `gorm:"column:created_at;autoCreateTime:false" json:"created_at"`
}

// TableName pins the table name used by migrations
func (Customer) TableName() string {
	return "customers"
}

// UpsertColumns lists the columns rewritten when an incoming record collides on customer_id
func UpsertColumns() []string {
	return []string{
		"first_name",
		"last_name",
		"email",
		"phone",
		"address",
		"date_of_birth",
		"account_balance",
		"created_at",
	}
}

// BeforeCreate hook for Customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	return c.Validate()
}

// Validate checks the fields the store cannot accept as null
func (c *Customer) Validate() error {
	if strings.TrimSpace(c.CustomerID) == "" {
		return ErrCustomerIDRequired
	}
	if strings.TrimSpace(c.FirstName) == "" {
		return ErrFirstNameRequired
	}
	if strings.TrimSpace(c.LastName) == "" {
		return ErrLastNameRequired
	}
	if strings.TrimSpace(c.Email) == "" {
		return ErrEmailRequired
	}
	return nil
}
