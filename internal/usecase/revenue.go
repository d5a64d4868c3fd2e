package usecase

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/nicholasrokosz/vesta-revenue/internal/domain"
)

// CalculatePayout computes the amount the channel remits to the operator for
// one reservation. The rules are channel-specific:
//
//   - Airbnb remits taxes directly and absorbs the credit-card fee, so the
//     payout is the gross booking value less Airbnb's commission.
//   - Vrbo and direct bookings deduct only the credit-card fee.
//
// An unrecognized channel returns domain.ErrUnknownChannel: it means a new
// channel was introduced without a payout rule, which must not be papered
// over.
func CalculatePayout(channel domain.Channel, grossBookingValue, channelCommission, creditCard decimal.Decimal) (decimal.Decimal, error) {
	switch channel {
	case domain.ChannelAirbnb:
		return grossBookingValue.Sub(channelCommission), nil
	case domain.ChannelVrbo, domain.ChannelDirect:
		return grossBookingValue.Sub(creditCard), nil
	default:
		return decimal.Zero, fmt.Errorf("calculate payout for channel %q: %w", channel, domain.ErrUnknownChannel)
	}
}

// BuildReservationRevenue combines the accommodation and guest-fee summaries
// of one reservation into the top-level revenue result, including the
// channel-specific payout.
//
// ChannelCommission and CreditCard are left nil when their amounts are zero
// so consumers can distinguish "no commission applies" from "commission
// computed as zero".
func BuildReservationRevenue(rev domain.RevenueWithFeesAndTaxes) (*domain.ReservationRevenue, error) {
	totalGross := rev.TotalGrossRevenue()

	accommodation := BuildAccommodationSummary(rev.Accommodation, rev.Discount, rev.Nights(), rev.ChannelCommission, totalGross)
	guestFees := BuildGuestFeesSummary(rev.Fees, rev.ChannelCommission, totalGross)

	allTaxes := domain.MergeTaxes(accommodation.Taxes, guestFees.Taxes)
	totalTaxes := domain.SumTaxes(allTaxes)
	commission := domain.SumSplits(accommodation.ChannelCommission, guestFees.GuestFeesChannelCommission)
	creditCard := domain.SumSplits(accommodation.CreditCard, guestFees.GuestFeesCreditCard)

	grossBookingValue := domain.SumSplits(
		accommodation.TaxableRevenue,
		guestFees.NonTaxableGuestFeesTotal,
		guestFees.TaxableGuestFeesTotal,
		totalTaxes,
	)
	netRevenue := domain.SubtractSplits(grossBookingValue, totalTaxes, commission, creditCard)

	payout, err := CalculatePayout(rev.Channel, grossBookingValue.Amount, commission.Amount, creditCard.Amount)
	if err != nil {
		return nil, fmt.Errorf("build revenue for reservation %s: %w", rev.ReservationID, err)
	}

	result := &domain.ReservationRevenue{
		GrossBookingValue: grossBookingValue,
		NetRevenue:        netRevenue,
		TotalTaxes:        totalTaxes,
		AllTaxes:          allTaxes,
		PayoutAmount:      payout,
		Accommodation:     accommodation,
		GuestFees:         guestFees,
	}
	if !commission.Amount.IsZero() {
		result.ChannelCommission = &commission
	}
	if !creditCard.Amount.IsZero() {
		result.CreditCard = &creditCard
	}
	return result, nil
}
