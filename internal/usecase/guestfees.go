package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/nicholasrokosz/vesta-revenue/internal/domain"
)

// BuildGuestFeesSummary folds the reservation's guest-fee ledger entries
// into one summary. Each fee carries its own pmcShare, so the manager/owner
// split can differ fee by fee; the channel commission is prorated onto each
// fee by its share of totalGrossRevenue, the same rule the accommodation
// line uses. An empty fee list yields a valid zero-valued summary.
func BuildGuestFeesSummary(
	fees []domain.RevenueLedgerEntry,
	totalChannelCommission decimal.Decimal,
	totalGrossRevenue decimal.Decimal,
) domain.GuestFeesSummary {
	var (
		rows       []domain.GuestFee
		taxable    []domain.ShareSplit
		nonTaxable []domain.ShareSplit
		commission []domain.ShareSplit
		creditCard []domain.ShareSplit
		taxGroups  [][]domain.TaxSplit
	)

	for _, entry := range fees {
		managerShare := entry.ManagerShare()

		amount := domain.NewShareSplit(entry.Value, managerShare)
		feeCommission := domain.NewShareSplit(prorate(totalChannelCommission, entry.Value, totalGrossRevenue), managerShare)
		feeCreditCard := domain.NewShareSplit(entry.CreditCardValue(), managerShare)
		taxes := taxSplits(entry, managerShare)

		rows = append(rows, domain.GuestFee{
			ID:                entry.ID,
			Name:              entry.Name,
			Amount:            amount,
			Taxable:           entry.Taxable,
			Taxes:             taxes,
			ChannelCommission: feeCommission,
			CreditCard:        feeCreditCard,
			NetRevenue:        domain.SubtractSplits(amount, feeCommission, feeCreditCard),
		})

		if entry.Taxable {
			taxable = append(taxable, amount)
			taxGroups = append(taxGroups, taxes)
		} else {
			nonTaxable = append(nonTaxable, amount)
		}
		commission = append(commission, feeCommission)
		creditCard = append(creditCard, feeCreditCard)
	}

	summary := domain.GuestFeesSummary{
		Fees:                       rows,
		TaxableGuestFeesTotal:      domain.SumSplits(taxable...),
		NonTaxableGuestFeesTotal:   domain.SumSplits(nonTaxable...),
		GuestFeesChannelCommission: domain.SumSplits(commission...),
		GuestFeesCreditCard:        domain.SumSplits(creditCard...),
		Taxes:                      domain.MergeTaxes(taxGroups...),
	}
	summary.TotalTax = domain.SumTaxes(summary.Taxes)
	summary.GuestFeesGross = domain.SumSplits(summary.TaxableGuestFeesTotal, summary.NonTaxableGuestFeesTotal, summary.TotalTax)
	summary.GuestFeesNet = domain.SubtractSplits(summary.GuestFeesGross, summary.TotalTax, summary.GuestFeesChannelCommission, summary.GuestFeesCreditCard)
	return summary
}
