package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nicholasrokosz/vesta-revenue/internal/domain"
)

// ReservationWithRevenue pairs a reservation's ledger record with its
// computed revenue result.
type ReservationWithRevenue struct {
	Source  domain.RevenueWithFeesAndTaxes
	Revenue *domain.ReservationRevenue
}

// StatementUseCase orchestrates owner-statement generation: fetch the
// listing, ledger and expense records through the repository, compute each
// reservation's revenue, and roll everything up into one statement.
type StatementUseCase struct {
	repo StatementRepository
}

// NewStatementUseCase creates a new instance of the usecase.
func NewStatementUseCase(repo StatementRepository) *StatementUseCase {
	return &StatementUseCase{repo: repo}
}

// Generate builds the owner statement for the calendar month containing
// month. Reservations contribute when their checkout date falls inside the
// period; expenses when their date does. A reservation whose revenue cannot
// be computed (unknown channel) aborts the whole statement, since a silently
// short statement would misstate what is owed.
func (uc *StatementUseCase) Generate(ctx context.Context, listingPath, revenuePath, expensePath string, month time.Time) (*domain.OwnerStatement, error) {
	listing, err := uc.repo.GetListing(ctx, listingPath)
	if err != nil {
		return nil, fmt.Errorf("could not get listing: %w", err)
	}

	revenues, err := uc.repo.GetRevenue(ctx, revenuePath)
	if err != nil {
		return nil, fmt.Errorf("could not get revenue records: %w", err)
	}

	expenses, err := uc.repo.GetExpenses(ctx, expensePath)
	if err != nil {
		return nil, fmt.Errorf("could not get expenses: %w", err)
	}

	periodStart := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, 0)

	var reservations []ReservationWithRevenue
	for _, rev := range revenues {
		if rev.CheckOut.Before(periodStart) || !rev.CheckOut.Before(periodEnd) {
			continue
		}
		revenue, err := BuildReservationRevenue(rev)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, ReservationWithRevenue{Source: rev, Revenue: revenue})
	}

	var periodExpenses []domain.Expense
	for _, expense := range expenses {
		if expense.Date.Before(periodStart) || !expense.Date.Before(periodEnd) {
			continue
		}
		periodExpenses = append(periodExpenses, expense)
	}

	return BuildOwnerStatement(listing, periodStart, periodExpenses, reservations), nil
}

// BuildOwnerStatement assembles the statement for one listing and one
// period from already-filtered expenses and reservation revenue.
//
// Guest fees are flattened across reservations. Co-host statements list
// every fee; regular statements list only fees where the owner actually
// receives a nonzero amount. dueToOwner is the owner's net on accommodation
// and listed guest fees less unpaid expenses; dueToManager is the remainder
// of gross revenue.
func BuildOwnerStatement(listing *domain.Listing, periodStart time.Time, expenses []domain.Expense, reservations []ReservationWithRevenue) *domain.OwnerStatement {
	sorted := make([]domain.Expense, len(expenses))
	copy(sorted, expenses)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	statement := &domain.OwnerStatement{
		ListingID:   listing.ID,
		ListingName: listing.Name,
		CoHost:      listing.CoHost,
		PeriodStart: periodStart,
		PeriodEnd:   periodStart.AddDate(0, 1, 0).Add(-24 * time.Hour),
		Expenses:    sorted,
	}

	accommodationOwnerNet := decimal.Zero
	guestFeeOwnerNet := decimal.Zero

	for _, r := range reservations {
		revenue := r.Revenue
		accommodationOwnerNet = accommodationOwnerNet.Add(revenue.Accommodation.NetRevenue.OwnerAmount)

		reservationOwnerFees := decimal.Zero
		for _, fee := range revenue.GuestFees.Fees {
			if !listing.CoHost && fee.NetRevenue.OwnerAmount.IsZero() {
				continue
			}
			statement.GuestFees = append(statement.GuestFees, domain.StatementFee{
				ConfirmationCode: r.Source.ConfirmationCode,
				Name:             fee.Name,
				Amount:           fee.Amount.Amount,
				NetToOwner:       fee.NetRevenue.OwnerAmount,
			})
			reservationOwnerFees = reservationOwnerFees.Add(fee.NetRevenue.OwnerAmount)
		}
		guestFeeOwnerNet = guestFeeOwnerNet.Add(reservationOwnerFees)

		statement.Reservations = append(statement.Reservations, domain.StatementReservation{
			ConfirmationCode: r.Source.ConfirmationCode,
			Channel:          r.Source.Channel,
			CheckIn:          r.Source.CheckIn,
			CheckOut:         r.Source.CheckOut,
			Guests:           r.Source.Guests,
			GrossRevenue:     revenue.GrossBookingValue.Amount,
			NetRevenue:       revenue.NetRevenue.Amount,
			DueToOwner:       revenue.Accommodation.NetRevenue.OwnerAmount.Add(reservationOwnerFees),
		})

		statement.GrossRevenue = statement.GrossRevenue.Add(revenue.GrossBookingValue.Amount)
		statement.NetRevenue = statement.NetRevenue.Add(revenue.NetRevenue.Amount)
		statement.Discounts = statement.Discounts.Add(revenue.Accommodation.Discount.Amount)
		statement.Taxes = statement.Taxes.Add(revenue.TotalTaxes.Amount)

		// Airbnb's commission is already netted out of its payout, so it is
		// not charged to the owner as a separate channel fee here.
		if r.Source.Channel != domain.ChannelAirbnb && revenue.ChannelCommission != nil {
			statement.ChannelFeesOther = statement.ChannelFeesOther.Add(revenue.ChannelCommission.Amount)
		}
	}

	for _, expense := range sorted {
		statement.ExpensesCharged = statement.ExpensesCharged.Add(expense.CostToOwner)
		statement.ExpensesReimbursed = statement.ExpensesReimbursed.Add(expense.AmountPaid)
		statement.ExpensesUnpaid = statement.ExpensesUnpaid.Add(expense.Unpaid())
	}

	statement.DueToOwnerPeriod = accommodationOwnerNet.Add(guestFeeOwnerNet).Sub(statement.ExpensesUnpaid)
	statement.DueToManagerPeriod = statement.GrossRevenue.Sub(statement.DueToOwnerPeriod)
	return statement
}
