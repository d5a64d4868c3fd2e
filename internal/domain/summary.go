package domain

import "github.com/shopspring/decimal"

// AccommodationRevenueSummary is the derived per-reservation breakdown of
// the accommodation ledger entry. It is never persisted; it is rebuilt from
// the ledger on demand.
//
// GrossRevenue == TaxableRevenue + TotalTax, and
// NetRevenue == GrossRevenue − TotalTax − ChannelCommission − CreditCard.
type AccommodationRevenueSummary struct {
	RoomRate          decimal.Decimal `json:"roomRate"` // nightly average
	RoomRateTotal     ShareSplit      `json:"roomRateTotal"`
	Discount          ShareSplit      `json:"discount"`
	TaxableRevenue    ShareSplit      `json:"taxableRevenue"`
	GrossRevenue      ShareSplit      `json:"grossRevenue"`
	NetRevenue        ShareSplit      `json:"netRevenue"`
	ChannelCommission ShareSplit      `json:"channelCommission"`
	CreditCard        ShareSplit      `json:"creditCard"`
	Taxes             []TaxSplit      `json:"taxes,omitempty"`
	TotalTax          ShareSplit      `json:"totalTax"`
}

// GuestFee is the derived breakdown of one guest-fee ledger entry.
type GuestFee struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Amount            ShareSplit `json:"amount"`
	Taxable           bool       `json:"taxable"`
	Taxes             []TaxSplit `json:"taxes,omitempty"`
	ChannelCommission ShareSplit `json:"channelCommission"`
	CreditCard        ShareSplit `json:"creditCard"`
	NetRevenue        ShareSplit `json:"netRevenue"`
}

// GuestFeesSummary aggregates every guest fee on a reservation.
type GuestFeesSummary struct {
	Fees []GuestFee `json:"fees,omitempty"`

	TaxableGuestFeesTotal      ShareSplit `json:"taxableGuestFeesTotal"`
	NonTaxableGuestFeesTotal   ShareSplit `json:"nonTaxableGuestFeesTotal"`
	GuestFeesGross             ShareSplit `json:"guestFeesGross"`
	GuestFeesChannelCommission ShareSplit `json:"guestFeesChannelCommission"`
	GuestFeesCreditCard        ShareSplit `json:"guestFeesCreditCard"`
	GuestFeesNet               ShareSplit `json:"guestFeesNet"`

	// Taxes rolls the taxable fees' tax lines up by description.
	Taxes    []TaxSplit `json:"taxes,omitempty"`
	TotalTax ShareSplit `json:"totalTax"`
}

// ReservationRevenue is the top-level derived result for one reservation.
// ChannelCommission and CreditCard are nil, not zero-valued, when they do
// not apply, so consumers can tell "no commission" from "commission of 0".
type ReservationRevenue struct {
	GrossBookingValue ShareSplit      `json:"grossBookingValue"`
	NetRevenue        ShareSplit      `json:"netRevenue"`
	TotalTaxes        ShareSplit      `json:"totalTaxes"`
	AllTaxes          []TaxSplit      `json:"allTaxes,omitempty"`
	PayoutAmount      decimal.Decimal `json:"payoutAmount"`

	Accommodation AccommodationRevenueSummary `json:"accommodationRevenue"`
	GuestFees     GuestFeesSummary            `json:"guestFeeRevenue"`

	ChannelCommission *ShareSplit `json:"channelCommission,omitempty"`
	CreditCard        *ShareSplit `json:"creditCard,omitempty"`
}
