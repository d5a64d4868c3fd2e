package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/nicholasrokosz/vesta-revenue/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// BuildAccommodationSummary converts one accommodation ledger entry plus the
// reservation-level proration inputs into the full accommodation breakdown.
//
// totalGrossRevenue is the reservation-wide gross (accommodation plus every
// fee face value) used as the proration denominator: the reservation's
// channel commission is allocated to this line in proportion to its share of
// that gross. discountPercent (0–100) applies to the gross accommodation
// value and is split in the same manager/owner ratio as the revenue itself.
//
// The computation is pure; malformed inputs are the caller's responsibility.
func BuildAccommodationSummary(
	entry domain.RevenueLedgerEntry,
	discountPercent decimal.Decimal,
	numberOfNights int,
	totalChannelCommission decimal.Decimal,
	totalGrossRevenue decimal.Decimal,
) domain.AccommodationRevenueSummary {
	managerShare := entry.ManagerShare()

	roomRate := decimal.Zero
	if numberOfNights > 0 {
		roomRate = entry.Value.Div(decimal.NewFromInt(int64(numberOfNights))).Round(2)
	}

	original := domain.NewShareSplit(entry.Value, managerShare)
	discount := domain.NewShareSplit(entry.Value.Mul(discountPercent).Div(hundred), managerShare)
	commission := domain.NewShareSplit(prorate(totalChannelCommission, entry.Value, totalGrossRevenue), managerShare)
	creditCard := domain.NewShareSplit(entry.CreditCardValue(), managerShare)

	taxableRevenue := domain.SubtractSplits(original, discount)
	taxes := taxSplits(entry, managerShare)
	totalTax := domain.SumTaxes(taxes)
	grossRevenue := domain.SumSplits(taxableRevenue, totalTax)
	netRevenue := domain.SubtractSplits(grossRevenue, totalTax, commission, creditCard)

	return domain.AccommodationRevenueSummary{
		RoomRate:          roomRate,
		RoomRateTotal:     original,
		Discount:          discount,
		TaxableRevenue:    taxableRevenue,
		GrossRevenue:      grossRevenue,
		NetRevenue:        netRevenue,
		ChannelCommission: commission,
		CreditCard:        creditCard,
		Taxes:             taxes,
		TotalTax:          totalTax,
	}
}

// prorate allocates total by the part/whole ratio. A zero whole allocates
// nothing rather than dividing by zero.
func prorate(total, part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return total.Mul(part).Div(whole)
}

// taxSplits turns an entry's tax deductions into named splits carrying the
// entry's own manager share, in recorded order.
func taxSplits(entry domain.RevenueLedgerEntry, managerShare decimal.Decimal) []domain.TaxSplit {
	deductions := entry.TaxDeductions()
	if len(deductions) == 0 {
		return nil
	}

	taxes := make([]domain.TaxSplit, 0, len(deductions))
	for _, d := range deductions {
		taxes = append(taxes, domain.TaxSplit{
			Description: d.Description,
			ShareSplit:  domain.NewShareSplit(d.Value, managerShare),
		})
	}
	return taxes
}
