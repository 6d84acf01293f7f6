package mocksource

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"customer-pipeline/internal/dto"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

// GenerateOptions controls synthetic dataset generation
type GenerateOptions struct {
	Count int
	// Seed makes output reproducible; 0 picks a random seed
	Seed uint64
	// Now anchors created_at values; zero means time.Now()
	Now time.Time
}

// Generate builds synthetic upstream customer records with ids CUST001, CUST002, ...
func Generate(opts GenerateOptions) []dto.RawCustomer {
	faker := gofakeit.New(opts.Seed)

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	now = now.UTC().Truncate(time.Second)

	oldest := now.AddDate(-80, 0, 0)
	youngest := now.AddDate(-18, 0, 0)
	since := now.AddDate(-3, 0, 0)

	customers := make([]dto.RawCustomer, 0, opts.Count)
	for i := 0; i < opts.Count; i++ {
		firstName := faker.FirstName()
		lastName := faker.LastName()
		balance := decimal.NewFromFloat(faker.Float64Range(0, 50000)).StringFixed(2)

		customers = append(customers, dto.RawCustomer{
			"customer_id":     fmt.Sprintf("CUST%03d", i+1),
			"first_name":      firstName,
			"last_name":       lastName,
			"email":           faker.Email(),
			"phone":           faker.PhoneFormatted(),
			"address":         faker.Address().Address,
			"date_of_birth":   faker.DateRange(oldest, youngest).Format("2006-01-02"),
			"account_balance": json.Number(balance),
			"created_at":      faker.DateRange(since, now).UTC().Format(time.RFC3339),
		})
	}

	return customers
}

// WriteFile writes records as an indented JSON array, creating parent directories as needed
func WriteFile(path string, customers []dto.RawCustomer) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(customers, "", "  ")
	if err != nil {
		return fmt.Errorf("encode customers: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write customer data: %w", err)
	}
	return nil
}
