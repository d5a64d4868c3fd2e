package gateway

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nicholasrokosz/vesta-revenue/internal/domain"
)

// FileStatementRepository implements the StatementRepository interface over
// local files: JSON for the listing and revenue records, CSV for expenses.
type FileStatementRepository struct{}

// NewFileStatementRepository creates a new repository instance.
func NewFileStatementRepository() *FileStatementRepository {
	return &FileStatementRepository{}
}

// GetListing reads and parses the listing JSON file.
func (r *FileStatementRepository) GetListing(ctx context.Context, path string) (*domain.Listing, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open listing file %s: %w", path, err)
	}

	var listing domain.Listing
	if err := json.Unmarshal(data, &listing); err != nil {
		return nil, fmt.Errorf("failed to parse listing file %s: %w", path, err)
	}
	return &listing, nil
}

// GetRevenue reads and parses the revenue ledger JSON file.
func (r *FileStatementRepository) GetRevenue(ctx context.Context, path string) ([]domain.RevenueWithFeesAndTaxes, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open revenue file %s: %w", path, err)
	}

	var revenues []domain.RevenueWithFeesAndTaxes
	if err := json.Unmarshal(data, &revenues); err != nil {
		return nil, fmt.Errorf("failed to parse revenue file %s: %w", path, err)
	}
	return revenues, nil
}

// GetExpenses reads and parses an expenses CSV file with the columns
// id, date, description, cost_to_owner, amount_paid.
func (r *FileStatementRepository) GetExpenses(ctx context.Context, path string) ([]domain.Expense, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open expenses file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header from %s: %w", path, err)
	}

	var expenses []domain.Expense
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record from %s: %w", path, err)
		}

		date, err := time.Parse("2006-01-02", record[1])
		if err != nil {
			return nil, fmt.Errorf("could not parse date '%s': %w", record[1], err)
		}

		costToOwner, err := decimal.NewFromString(record[3])
		if err != nil {
			return nil, fmt.Errorf("could not parse cost_to_owner '%s': %w", record[3], err)
		}

		amountPaid, err := decimal.NewFromString(record[4])
		if err != nil {
			return nil, fmt.Errorf("could not parse amount_paid '%s': %w", record[4], err)
		}

		expenses = append(expenses, domain.Expense{
			ID:          record[0],
			Date:        date,
			Description: record[2],
			CostToOwner: costToOwner,
			AmountPaid:  amountPaid,
		})
	}
	return expenses, nil
}

// LoadChannelPayload reads a channel revenue payload JSON file.
func LoadChannelPayload(path string) (domain.ChannelPayload, error) {
	var payload domain.ChannelPayload

	data, err := os.ReadFile(path)
	if err != nil {
		return payload, fmt.Errorf("failed to open payload file %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return payload, fmt.Errorf("failed to parse payload file %s: %w", path, err)
	}
	return payload, nil
}
