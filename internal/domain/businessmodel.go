package domain

import "github.com/shopspring/decimal"

// ChannelLineItem is one fee or tax as reported by a booking channel.
type ChannelLineItem struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// ChannelPayload is the inbound revenue report for one reservation, already
// fetched and deserialized by the channel integration.
type ChannelPayload struct {
	Taxes                []ChannelLineItem `json:"taxes"`
	Fees                 []ChannelLineItem `json:"fees"`
	Commission           decimal.Decimal   `json:"commission"`
	AccommodationRevenue decimal.Decimal   `json:"accommodationRevenue"`
}

// ReportsTaxes tells whether the channel itemized any taxes. When it did
// not, the channel is assumed to remit taxes itself and reported values are
// taken as-is.
func (p ChannelPayload) ReportsTaxes() bool {
	for _, tax := range p.Taxes {
		if !tax.Value.IsZero() {
			return true
		}
	}
	return false
}

// FeeType classifies a configured fee.
type FeeType string

const (
	FeeTypeGuest     FeeType = "guest_fee"
	FeeTypeDeduction FeeType = "deduction"
)

// FeeDefinition is one fee the manager has configured for a listing.
type FeeDefinition struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Value   decimal.Decimal `json:"value"`
	Unit    FeeUnit         `json:"unit"`
	Taxable bool            `json:"taxable"`
	// Share is the manager's percentage cut (0–100) of this fee.
	Share decimal.Decimal `json:"share"`
	Type  FeeType         `json:"type"`
}

// TaxRates holds the configured occupancy tax percentages for a listing.
type TaxRates struct {
	Municipal decimal.Decimal `json:"municipal"`
	County    decimal.Decimal `json:"county"`
	State     decimal.Decimal `json:"state"`
}

// NamedRate pairs a tax description with its 0–1 fraction.
type NamedRate struct {
	Description string
	Fraction    decimal.Decimal
}

// IsZero reports whether no rate is configured at all.
func (t TaxRates) IsZero() bool {
	return t.Municipal.IsZero() && t.County.IsZero() && t.State.IsZero()
}

// TotalFraction is the combined tax rate as a 0–1 fraction.
func (t TaxRates) TotalFraction() decimal.Decimal {
	return t.Municipal.Add(t.County).Add(t.State).Div(hundred)
}

// Rates lists the nonzero components in fixed municipal/county/state order.
func (t TaxRates) Rates() []NamedRate {
	var rates []NamedRate
	for _, r := range []struct {
		description string
		percent     decimal.Decimal
	}{
		{"Municipal tax", t.Municipal},
		{"County tax", t.County},
		{"State tax", t.State},
	} {
		if !r.percent.IsZero() {
			rates = append(rates, NamedRate{Description: r.description, Fraction: r.percent.Div(hundred)})
		}
	}
	return rates
}

// DeductionPolicy controls which deductions are applied when revenue is
// created locally for direct bookings.
type DeductionPolicy struct {
	CreditCard           bool            `json:"creditCard"`
	CreditCardFeePercent decimal.Decimal `json:"creditCardFeePercent"`
}

// BusinessModel is the locally configured revenue model for a listing: the
// reservation-level manager cut, the fee catalog, tax rates, and the
// deduction policy.
type BusinessModel struct {
	// PmcShare is the manager's percentage cut (0–100) of accommodation
	// revenue.
	PmcShare   decimal.Decimal `json:"pmcShare"`
	Fees       []FeeDefinition `json:"fees"`
	TaxRates   TaxRates        `json:"taxRates"`
	Deductions DeductionPolicy `json:"deductions"`
}

// FeeByID looks up a configured fee by the id channels report it under.
func (m *BusinessModel) FeeByID(id string) (FeeDefinition, bool) {
	for _, fee := range m.Fees {
		if fee.ID == id {
			return fee, true
		}
	}
	return FeeDefinition{}, false
}
