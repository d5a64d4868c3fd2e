package usecase

import (
	"context"

	"github.com/nicholasrokosz/vesta-revenue/internal/domain"
)

// StatementRepository defines the interface for fetching the records an
// owner statement is built from. The usecase layer depends on this
// interface, not on a concrete implementation.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go StatementRepository
type StatementRepository interface {
	GetListing(ctx context.Context, path string) (*domain.Listing, error)
	GetRevenue(ctx context.Context, path string) ([]domain.RevenueWithFeesAndTaxes, error)
	GetExpenses(ctx context.Context, path string) ([]domain.Expense, error)
}
