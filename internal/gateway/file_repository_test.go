package gateway

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nicholasrokosz/vesta-revenue/internal/domain"
)

func writeCSV(t *testing.T, records [][]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "expenses.csv")
	file, err := os.Create(path)
	assert.NoError(t, err)
	defer file.Close()

	writer := csv.NewWriter(file)
	assert.NoError(t, writer.WriteAll(records))
	return path
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileStatementRepository_GetExpenses(t *testing.T) {
	tests := []struct {
		name     string
		csvData  [][]string
		expected []domain.Expense
		wantErr  bool
	}{
		{
			name: "valid expenses",
			csvData: [][]string{
				{"id", "date", "description", "cost_to_owner", "amount_paid"},
				{"exp-1", "2025-06-03", "Lawn care", "50.00", "50.00"},
				{"exp-2", "2025-06-15", "Plumber", "100.00", "40.00"},
			},
			expected: []domain.Expense{
				{
					ID:          "exp-1",
					Date:        time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
					Description: "Lawn care",
					CostToOwner: mustDecimal("50.00"),
					AmountPaid:  mustDecimal("50.00"),
				},
				{
					ID:          "exp-2",
					Date:        time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
					Description: "Plumber",
					CostToOwner: mustDecimal("100.00"),
					AmountPaid:  mustDecimal("40.00"),
				},
			},
		},
		{
			name: "empty file with header only",
			csvData: [][]string{
				{"id", "date", "description", "cost_to_owner", "amount_paid"},
			},
			expected: nil,
		},
		{
			name: "invalid date",
			csvData: [][]string{
				{"id", "date", "description", "cost_to_owner", "amount_paid"},
				{"exp-1", "June 3rd", "Lawn care", "50.00", "0"},
			},
			wantErr: true,
		},
		{
			name: "invalid amount",
			csvData: [][]string{
				{"id", "date", "description", "cost_to_owner", "amount_paid"},
				{"exp-1", "2025-06-03", "Lawn care", "fifty", "0"},
			},
			wantErr: true,
		},
	}

	repo := NewFileStatementRepository()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCSV(t, tt.csvData)

			got, err := repo.GetExpenses(context.Background(), path)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, len(tt.expected), len(got))
			for i := range tt.expected {
				assert.Equal(t, tt.expected[i].ID, got[i].ID)
				assert.Equal(t, tt.expected[i].Date, got[i].Date)
				assert.Equal(t, tt.expected[i].Description, got[i].Description)
				assert.True(t, tt.expected[i].CostToOwner.Equal(got[i].CostToOwner))
				assert.True(t, tt.expected[i].AmountPaid.Equal(got[i].AmountPaid))
			}
		})
	}
}

func TestFileStatementRepository_GetExpenses_MissingFile(t *testing.T) {
	repo := NewFileStatementRepository()

	_, err := repo.GetExpenses(context.Background(), "/nonexistent/expenses.csv")

	assert.Error(t, err)
}

func TestFileStatementRepository_GetListing(t *testing.T) {
	repo := NewFileStatementRepository()
	path := writeFile(t, "listing.json", `{"id":"listing-1","name":"Seaside Cottage","coHost":true}`)

	got, err := repo.GetListing(context.Background(), path)

	assert.NoError(t, err)
	assert.Equal(t, "listing-1", got.ID)
	assert.Equal(t, "Seaside Cottage", got.Name)
	assert.True(t, got.CoHost)
}

func TestFileStatementRepository_GetRevenue(t *testing.T) {
	repo := NewFileStatementRepository()
	path := writeFile(t, "revenue.json", `[
	  {
	    "reservationId": "res-1",
	    "confirmationCode": "HMABC123",
	    "channel": "airbnb",
	    "checkIn": "2025-06-01T00:00:00Z",
	    "checkOut": "2025-06-08T00:00:00Z",
	    "guests": 4,
	    "discount": "0",
	    "channelCommission": "93.01",
	    "accommodation": {
	      "id": "acc-1",
	      "name": "Accommodation",
	      "value": "2555",
	      "unit": "per_day",
	      "taxable": true,
	      "pmcShare": "25",
	      "deductions": [
	        {"type": "tax", "description": "Municipal tax", "value": "198.27"}
	      ]
	    },
	    "fees": [
	      {"id": "fee-1", "name": "Cleaning fee", "value": "150", "taxable": true, "pmcShare": "100"}
	    ]
	  }
	]`)

	got, err := repo.GetRevenue(context.Background(), path)

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "res-1", got[0].ReservationID)
	assert.Equal(t, domain.ChannelAirbnb, got[0].Channel)
	assert.Equal(t, 7, got[0].Nights())
	assert.True(t, mustDecimal("2555").Equal(got[0].Accommodation.Value))
	assert.Len(t, got[0].Accommodation.Deductions, 1)
	assert.Equal(t, domain.DeductionTax, got[0].Accommodation.Deductions[0].Type)
	assert.Len(t, got[0].Fees, 1)
	assert.True(t, mustDecimal("2705").Equal(got[0].TotalGrossRevenue()))
}

func TestLoadChannelPayload(t *testing.T) {
	path := writeFile(t, "payload.json", `{
	  "accommodationRevenue": "1100",
	  "commission": "33",
	  "taxes": [{"id": "tax-1", "name": "Occupancy taxes", "value": "100"}],
	  "fees": [{"id": "fee-1", "name": "CLEANING_FEE", "value": "110"}]
	}`)

	got, err := LoadChannelPayload(path)

	assert.NoError(t, err)
	assert.True(t, mustDecimal("1100").Equal(got.AccommodationRevenue))
	assert.Len(t, got.Taxes, 1)
	assert.Len(t, got.Fees, 1)
	assert.True(t, got.ReportsTaxes())
}
