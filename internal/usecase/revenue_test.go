package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nicholasrokosz/vesta-revenue/internal/domain"
	"github.com/nicholasrokosz/vesta-revenue/internal/usecase"
)

func reservationLedger(channel domain.Channel) domain.RevenueWithFeesAndTaxes {
	return domain.RevenueWithFeesAndTaxes{
		ReservationID:     "res-1",
		ConfirmationCode:  "HMABC123",
		ListingID:         "listing-1",
		Channel:           channel,
		CheckIn:           time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:          time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC),
		Guests:            4,
		Discount:          dec("0"),
		ChannelCommission: dec("93.01"),
		Accommodation:     accommodationEntry(),
		Fees: []domain.RevenueLedgerEntry{
			{
				ID:       "fee-cleaning",
				Name:     "Cleaning fee",
				Value:    dec("150"),
				Unit:     domain.UnitPerStay,
				Taxable:  true,
				PmcShare: dec("100"),
			},
		},
	}
}

func TestCalculatePayout(t *testing.T) {
	tests := []struct {
		name              string
		channel           domain.Channel
		grossBookingValue string
		channelCommission string
		creditCard        string
		want              string
		wantErr           error
	}{
		{
			name:              "airbnb deducts commission only",
			channel:           domain.ChannelAirbnb,
			grossBookingValue: "3250.24",
			channelCommission: "93.01",
			creditCard:        "45.00",
			want:              "3157.23",
		},
		{
			name:              "vrbo deducts credit card only",
			channel:           domain.ChannelVrbo,
			grossBookingValue: "3250.24",
			channelCommission: "93.01",
			creditCard:        "45.00",
			want:              "3205.24",
		},
		{
			name:              "direct deducts credit card only",
			channel:           domain.ChannelDirect,
			grossBookingValue: "1000",
			channelCommission: "0",
			creditCard:        "29",
			want:              "971",
		},
		{
			name:              "unknown channel is a data defect",
			channel:           domain.Channel("expedia"),
			grossBookingValue: "1000",
			channelCommission: "0",
			creditCard:        "0",
			wantErr:           domain.ErrUnknownChannel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := usecase.CalculatePayout(tt.channel, dec(tt.grossBookingValue), dec(tt.channelCommission), dec(tt.creditCard))

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestBuildReservationRevenue(t *testing.T) {
	got, err := usecase.BuildReservationRevenue(reservationLedger(domain.ChannelAirbnb))
	assert.NoError(t, err)

	// gbv = taxable accommodation + taxable fees + non-taxable fees + taxes
	assert.Equal(t, "3250.24", got.GrossBookingValue.Amount.String())
	assert.Equal(t, "545.24", got.TotalTaxes.Amount.String())

	// Airbnb payout: gbv − channel commission, no credit-card term.
	assert.Equal(t, "3157.23", got.PayoutAmount.String())

	// net = gbv − taxes − commission − creditCard
	assert.Equal(t, "2611.99", got.NetRevenue.Amount.String())

	if assert.NotNil(t, got.ChannelCommission) {
		assert.Equal(t, "93.01", got.ChannelCommission.Amount.String())
	}
	assert.Nil(t, got.CreditCard, "zero credit card must be omitted, not zero-valued")
}

func TestBuildReservationRevenue_ProrationLaw(t *testing.T) {
	// The reservation-wide commission allocated across lines in proportion
	// to their share of gross must re-sum to the original commission.
	got, err := usecase.BuildReservationRevenue(reservationLedger(domain.ChannelAirbnb))
	assert.NoError(t, err)

	accommodation := got.Accommodation.ChannelCommission.Amount
	fees := got.GuestFees.GuestFeesChannelCommission.Amount

	assert.Equal(t, "87.85", accommodation.String())
	assert.Equal(t, "5.16", fees.String())
	assert.Equal(t, "93.01", accommodation.Add(fees).String())
}

func TestBuildReservationRevenue_MergesTaxesAcrossSummaries(t *testing.T) {
	ledger := reservationLedger(domain.ChannelVrbo)
	ledger.Fees[0].Deductions = []domain.Deduction{
		{Type: domain.DeductionTax, Description: "Municipal tax", Value: dec("4.50")},
	}

	got, err := usecase.BuildReservationRevenue(ledger)
	assert.NoError(t, err)

	// Accommodation order first, fee taxes merged into matching rows.
	assert.Len(t, got.AllTaxes, 3)
	assert.Equal(t, "Municipal tax", got.AllTaxes[0].Description)
	assert.Equal(t, "202.77", got.AllTaxes[0].Amount.String())
	assert.Equal(t, "State tax", got.AllTaxes[1].Description)
	assert.Equal(t, "County tax", got.AllTaxes[2].Description)
	assert.Equal(t, "549.74", got.TotalTaxes.Amount.String())
}

func TestBuildReservationRevenue_UnknownChannel(t *testing.T) {
	got, err := usecase.BuildReservationRevenue(reservationLedger(domain.Channel("booking.com")))

	assert.ErrorIs(t, err, domain.ErrUnknownChannel)
	assert.Nil(t, got)
}

func TestBuildReservationRevenue_OmitsZeroCommission(t *testing.T) {
	ledger := reservationLedger(domain.ChannelDirect)
	ledger.ChannelCommission = dec("0")

	got, err := usecase.BuildReservationRevenue(ledger)
	assert.NoError(t, err)

	assert.Nil(t, got.ChannelCommission)
	assert.Nil(t, got.CreditCard)
	// Direct payout with no credit card: the full gross booking value.
	assert.True(t, got.PayoutAmount.Equal(got.GrossBookingValue.Amount))
}
