package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Listing identifies the property a statement is generated for.
type Listing struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// CoHost statements include every guest fee regardless of the owner's
	// share; regular statements only list fees the owner actually earns on.
	CoHost bool `json:"coHost"`
}

// Expense is an owner-chargeable maintenance or operating cost.
type Expense struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	CostToOwner decimal.Decimal `json:"costToOwner"`
	AmountPaid  decimal.Decimal `json:"amountPaid"`
}

// Unpaid is the portion of the expense still owed by the owner.
func (e Expense) Unpaid() decimal.Decimal {
	return e.CostToOwner.Sub(e.AmountPaid)
}

// StatementReservation is one reservation row on an owner statement.
type StatementReservation struct {
	ConfirmationCode string          `json:"confirmationCode"`
	Channel          Channel         `json:"channel"`
	CheckIn          time.Time       `json:"checkIn"`
	CheckOut         time.Time       `json:"checkOut"`
	Guests           int             `json:"guests"`
	GrossRevenue     decimal.Decimal `json:"grossRevenue"`
	NetRevenue       decimal.Decimal `json:"netRevenue"`
	DueToOwner       decimal.Decimal `json:"dueToOwner"`
}

// StatementFee is one flattened guest-fee row on an owner statement.
type StatementFee struct {
	ConfirmationCode string          `json:"confirmationCode"`
	Name             string          `json:"name"`
	Amount           decimal.Decimal `json:"amount"`
	NetToOwner       decimal.Decimal `json:"netToOwner"`
}

// OwnerStatement is the monthly rollup of reservation revenue and expenses
// for one listing. It is rebuilt from current ledger state every time until
// a separate persistence step locks it.
type OwnerStatement struct {
	ListingID   string    `json:"listingId"`
	ListingName string    `json:"listingName"`
	CoHost      bool      `json:"coHost"`
	PeriodStart time.Time `json:"periodStart"`
	PeriodEnd   time.Time `json:"periodEnd"`

	Expenses     []Expense              `json:"expenses,omitempty"`
	Reservations []StatementReservation `json:"reservations,omitempty"`
	GuestFees    []StatementFee         `json:"guestFees,omitempty"`

	GrossRevenue     decimal.Decimal `json:"grossRevenue"`
	NetRevenue       decimal.Decimal `json:"netRevenue"`
	Discounts        decimal.Decimal `json:"discounts"`
	Taxes            decimal.Decimal `json:"taxes"`
	ChannelFeesOther decimal.Decimal `json:"channelFeesOther"`

	ExpensesCharged    decimal.Decimal `json:"expensesCharged"`
	ExpensesReimbursed decimal.Decimal `json:"expensesReimbursed"`
	ExpensesUnpaid     decimal.Decimal `json:"expensesUnpaid"`

	DueToOwnerPeriod   decimal.Decimal `json:"dueToOwnerPeriod"`
	DueToManagerPeriod decimal.Decimal `json:"dueToManagerPeriod"`
}
