package mocksource

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"customer-pipeline/internal/dto"
)

var ErrCustomerNotFound = errors.New("customer not found")

// Snapshot is the immutable customer dataset served by the mock source.
// It is loaded once and shared by reference between request handlers; nothing mutates it after construction.
type Snapshot struct {
	customers []dto.RawCustomer
	index     map[string]int
}

// NewSnapshot builds a snapshot from already decoded records.
// Records without a string customer_id are served in listings but cannot be looked up.
func NewSnapshot(customers []dto.RawCustomer) *Snapshot {
	owned := make([]dto.RawCustomer, len(customers))
	copy(owned, customers)

	index := make(map[string]int, len(owned))
	for i, c := range owned {
		id, ok := c["customer_id"].(string)
		if !ok {
			continue
		}
		if _, seen := index[id]; !seen {
			index[id] = i
		}
	}

	return &Snapshot{customers: owned, index: index}
}

// LoadSnapshot reads a JSON array of customer objects from path
func LoadSnapshot(path string) (*Snapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read customer data: %w", err)
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var customers []dto.RawCustomer
	if err := decoder.Decode(&customers); err != nil {
		return nil, fmt.Errorf("decode customer data %s: %w", path, err)
	}

	return NewSnapshot(customers), nil
}

// Len returns the number of customers in the snapshot
func (s *Snapshot) Len() int {
	return len(s.customers)
}

// Page returns the records of a 1-based page. Pages past the end are empty.
func (s *Snapshot) Page(page, limit int) []dto.RawCustomer {
	start := (page - 1) * limit
	if start < 0 || start >= len(s.customers) {
		return []dto.RawCustomer{}
	}

	end := start + limit
	if end > len(s.customers) {
		end = len(s.customers)
	}
	return s.customers[start:end:end]
}

// Get looks up one customer by customer_id
func (s *Snapshot) Get(customerID string) (dto.RawCustomer, error) {
	i, ok := s.index[customerID]
	if !ok {
		return nil, ErrCustomerNotFound
	}
	return s.customers[i], nil
}
