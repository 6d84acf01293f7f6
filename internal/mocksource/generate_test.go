package mocksource

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"customer-pipeline/internal/normalize"
	"customer-pipeline/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestGenerate_IDsAndCount(t *testing.T) {
	customers := Generate(GenerateOptions{Count: 12, Seed: 7, Now: fixedNow})

	require.Len(t, customers, 12)
	assert.Equal(t, "CUST001", customers[0]["customer_id"])
	assert.Equal(t, "CUST012", customers[11]["customer_id"])
}

func TestGenerate_SameSeedIsReproducible(t *testing.T) {
	first := Generate(GenerateOptions{Count: 5, Seed: 42, Now: fixedNow})
	second := Generate(GenerateOptions{Count: 5, Seed: 42, Now: fixedNow})

	assert.Equal(t, first, second)
}

func TestGenerate_RecordsSurviveNormalization(t *testing.T) {
	v := validation.NewValidator()

	for _, raw := range Generate(GenerateOptions{Count: 50, Seed: 3, Now: fixedNow}) {
		customer, nulled := normalize.Customer(raw)

		assert.Empty(t, nulled, "record %v", raw["customer_id"])
		assert.NoError(t, v.ValidateCustomer(customer))
		require.NotNil(t, customer.DateOfBirth)
		require.NotNil(t, customer.CreatedAt)
		assert.True(t, customer.AccountBalance.Valid)
		assert.False(t, customer.CreatedAt.After(fixedNow))
	}
}

func TestWriteFile_RoundTripsThroughSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "customers.json")
	customers := Generate(GenerateOptions{Count: 3, Seed: 11, Now: fixedNow})

	require.NoError(t, WriteFile(path, customers))

	snapshot, err := LoadSnapshot(path)
	require.NoError(t, err)
	assert.Equal(t, 3, snapshot.Len())

	loaded, err := snapshot.Get("CUST002")
	require.NoError(t, err)
	assert.Equal(t, customers[1]["email"], loaded["email"])
	assert.IsType(t, json.Number(""), loaded["account_balance"])
}
