package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Channel identifies the booking source. Each channel carries its own payout
// and tax-remittance economics.
type Channel string

const (
	ChannelAirbnb Channel = "airbnb"
	ChannelVrbo   Channel = "vrbo"
	ChannelDirect Channel = "direct"
)

// FeeUnit describes how a fee scales with the stay.
type FeeUnit string

const (
	UnitPerStay         FeeUnit = "per_stay"
	UnitPerDay          FeeUnit = "per_day"
	UnitPerPerson       FeeUnit = "per_person"
	UnitPerDayPerPerson FeeUnit = "per_day_per_person"
	UnitPerExtraGuest   FeeUnit = "per_extra_guest"
)

// DeductionType distinguishes the two kinds of amounts withheld from a
// ledger entry.
type DeductionType string

const (
	DeductionTax        DeductionType = "tax"
	DeductionCreditCard DeductionType = "credit_card"
)

// Deduction is a tax or credit-card amount attached to a ledger entry.
type Deduction struct {
	Type        DeductionType   `json:"type"`
	Description string          `json:"description"`
	Value       decimal.Decimal `json:"value"`
}

// RevenueLedgerEntry is the authoritative, persisted record of one revenue
// component of a reservation: either the accommodation line or a single
// guest fee. Entries are written once when a reservation's revenue is first
// computed and never mutated afterwards; revisions create a new revenue
// record.
type RevenueLedgerEntry struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Value   decimal.Decimal `json:"value"` // gross pre-tax amount
	Unit    FeeUnit         `json:"unit"`
	Taxable bool            `json:"taxable"`
	// PmcShare is the manager's percentage cut (0–100) of this line item.
	// Each line on a reservation may carry a different split.
	PmcShare   decimal.Decimal `json:"pmcShare"`
	Deductions []Deduction     `json:"deductions,omitempty"`
}

// ManagerShare converts PmcShare into the 0–1 ratio the split math uses.
func (e RevenueLedgerEntry) ManagerShare() decimal.Decimal {
	return e.PmcShare.Div(hundred)
}

// TaxDeductions returns the entry's tax deductions in recorded order.
func (e RevenueLedgerEntry) TaxDeductions() []Deduction {
	var taxes []Deduction
	for _, d := range e.Deductions {
		if d.Type == DeductionTax {
			taxes = append(taxes, d)
		}
	}
	return taxes
}

// CreditCardValue sums the entry's credit-card deductions.
func (e RevenueLedgerEntry) CreditCardValue() decimal.Decimal {
	total := decimal.Zero
	for _, d := range e.Deductions {
		if d.Type == DeductionCreditCard {
			total = total.Add(d.Value)
		}
	}
	return total
}

// RevenueWithFeesAndTaxes is one reservation's complete ledger slice as
// supplied by the persistence collaborator: the accommodation entry, its
// guest fees, and the reservation-level scalars the builders need.
type RevenueWithFeesAndTaxes struct {
	ReservationID    string  `json:"reservationId"`
	ConfirmationCode string  `json:"confirmationCode"`
	ListingID        string  `json:"listingId"`
	Channel          Channel `json:"channel"`

	CheckIn  time.Time `json:"checkIn"`
	CheckOut time.Time `json:"checkOut"`
	Guests   int       `json:"guests"`

	// Discount is a percentage (0–100) applied to the gross accommodation
	// value for the whole reservation.
	Discount          decimal.Decimal `json:"discount"`
	ChannelCommission decimal.Decimal `json:"channelCommission"`

	Accommodation RevenueLedgerEntry   `json:"accommodation"`
	Fees          []RevenueLedgerEntry `json:"fees,omitempty"`
}

// Nights is the stay length in whole nights. Same-day stays report zero.
func (r RevenueWithFeesAndTaxes) Nights() int {
	n := int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
	if n < 0 {
		return 0
	}
	return n
}

// TotalGrossRevenue is the reservation-wide gross used as the commission
// proration denominator: the accommodation value plus every fee's face
// value, non-taxable fees included.
func (r RevenueWithFeesAndTaxes) TotalGrossRevenue() decimal.Decimal {
	total := r.Accommodation.Value
	for _, fee := range r.Fees {
		total = total.Add(fee.Value)
	}
	return total
}

// RevenueCreate is the normalized record a caller persists as a new revenue
// ledger entry, produced either by channel reconciliation or locally for
// direct bookings.
type RevenueCreate struct {
	ID                string               `json:"id"`
	ReservationID     string               `json:"reservationId"`
	Channel           Channel              `json:"channel"`
	ChannelCommission decimal.Decimal      `json:"channelCommission"`
	Accommodation     RevenueLedgerEntry   `json:"accommodation"`
	Fees              []RevenueLedgerEntry `json:"fees,omitempty"`
}
