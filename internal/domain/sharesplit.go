package domain

import "github.com/shopspring/decimal"

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// ShareSplit is a monetary amount divided between the manager (PMC) and the
// property owner. Splits are pure values: every operation returns a fresh
// split and never mutates its inputs.
//
// Two invariants hold for every split produced by this package:
//   - ManagerAmount + OwnerAmount == Amount, exactly at 2 decimal places
//   - ManagerShare + OwnerShare == 1 whenever Amount is nonzero
type ShareSplit struct {
	Amount        decimal.Decimal `json:"amount"`
	ManagerAmount decimal.Decimal `json:"managerAmount"`
	OwnerAmount   decimal.Decimal `json:"ownerAmount"`
	ManagerShare  decimal.Decimal `json:"managerShare"`
	OwnerShare    decimal.Decimal `json:"ownerShare"`
}

// NewShareSplit builds a split from a raw amount and the manager's share
// (0–1). Currency rounding happens here and only here: the amount is rounded
// to 2 decimal places, the manager amount is rounded from amount*share, and
// the owner amount is the remainder. The remainder is never rounded
// independently, which is what guarantees the sum invariant.
//
// A zero amount keeps the caller's share, so the split remembers the ratio
// it would divide by.
func NewShareSplit(amount, managerShare decimal.Decimal) ShareSplit {
	amount = amount.Round(2)
	managerAmount := amount.Mul(managerShare).Round(2)
	return ShareSplit{
		Amount:        amount,
		ManagerAmount: managerAmount,
		OwnerAmount:   amount.Sub(managerAmount),
		ManagerShare:  managerShare,
		OwnerShare:    one.Sub(managerShare),
	}
}

// SumSplits adds any number of splits. The resulting shares are the ratio of
// the summed manager/owner amounts to the summed total, not a weighted
// average of the input shares; that keeps summed totals self-consistent even
// when inputs carry heterogeneous shares. A zero total yields zero shares.
func SumSplits(splits ...ShareSplit) ShareSplit {
	amount := decimal.Zero
	managerAmount := decimal.Zero
	for _, s := range splits {
		amount = amount.Add(s.Amount)
		managerAmount = managerAmount.Add(s.ManagerAmount)
	}
	return recombine(amount, managerAmount)
}

// SubtractSplits subtracts each subtrahend from the minuend, recomputing the
// shares the same way SumSplits does. Intermediate amounts may legitimately
// go negative (e.g. net = gross − commission when commission alone is a
// split); the invariants still hold on the result.
func SubtractSplits(minuend ShareSplit, subtrahends ...ShareSplit) ShareSplit {
	amount := minuend.Amount
	managerAmount := minuend.ManagerAmount
	for _, s := range subtrahends {
		amount = amount.Sub(s.Amount)
		managerAmount = managerAmount.Sub(s.ManagerAmount)
	}
	return recombine(amount, managerAmount)
}

func recombine(amount, managerAmount decimal.Decimal) ShareSplit {
	split := ShareSplit{
		Amount:        amount,
		ManagerAmount: managerAmount,
		OwnerAmount:   amount.Sub(managerAmount),
	}
	if !amount.IsZero() {
		split.ManagerShare = managerAmount.Div(amount)
		split.OwnerShare = split.OwnerAmount.Div(amount)
	}
	return split
}

// TaxSplit is a ShareSplit tagged with the tax line it was deducted for.
type TaxSplit struct {
	Description string `json:"description"`
	ShareSplit
}

// MergeTaxes combines tax groups by description, preserving first-appearance
// order so repeated runs produce identical output. A reservation with
// "Municipal tax" on two guest fees reports one combined row.
func MergeTaxes(groups ...[]TaxSplit) []TaxSplit {
	var order []string
	byDescription := make(map[string][]ShareSplit)
	for _, group := range groups {
		for _, tax := range group {
			if _, seen := byDescription[tax.Description]; !seen {
				order = append(order, tax.Description)
			}
			byDescription[tax.Description] = append(byDescription[tax.Description], tax.ShareSplit)
		}
	}

	merged := make([]TaxSplit, 0, len(order))
	for _, description := range order {
		merged = append(merged, TaxSplit{
			Description: description,
			ShareSplit:  SumSplits(byDescription[description]...),
		})
	}
	return merged
}

// SumTaxes collapses a tax list into its total split.
func SumTaxes(taxes []TaxSplit) ShareSplit {
	splits := make([]ShareSplit, len(taxes))
	for i, tax := range taxes {
		splits[i] = tax.ShareSplit
	}
	return SumSplits(splits...)
}
