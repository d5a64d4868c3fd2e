package usecase

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nicholasrokosz/vesta-revenue/internal/domain"
)

var one = decimal.NewFromInt(1)

// mismatchTolerance is one minor currency unit: recomputed totals within a
// cent of the channel-reported figure are rounding, anything beyond is drift
// worth surfacing.
var mismatchTolerance = decimal.New(1, -2)

// ChannelRevenueUseCase maps inbound channel revenue reports onto the
// locally configured fee/tax model, producing the normalized RevenueCreate
// record the caller persists as the reservation's ledger entry.
//
// Channel figures are trusted: a mismatch between the channel-reported total
// and the locally recomputed expectation is logged for manual review but
// never blocks revenue creation.
type ChannelRevenueUseCase struct {
	logger *slog.Logger
}

// NewChannelRevenueUseCase creates the usecase. A nil logger falls back to
// slog.Default.
func NewChannelRevenueUseCase(logger *slog.Logger) *ChannelRevenueUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChannelRevenueUseCase{logger: logger}
}

// ProcessAirbnbRevenue normalizes an Airbnb revenue payload.
//
// When the payload itemizes taxes, every taxable line's reported value is
// gross of tax: the pre-tax value is backed out with the configured rates
// (value = reported / (1 + totalRate)) and each tax component recomputed
// from that base. When the payload reports no taxes at all, Airbnb is
// remitting them itself and reported values are used as-is with no derived
// taxes. Fees that match no configured fee pass through with empty unit,
// taxable=false and zero share.
func (uc *ChannelRevenueUseCase) ProcessAirbnbRevenue(reservationID string, payload domain.ChannelPayload, model *domain.BusinessModel) (*domain.RevenueCreate, error) {
	if err := validateModel(model); err != nil {
		return nil, fmt.Errorf("process airbnb revenue for reservation %s: %w", reservationID, err)
	}
	reportsTaxes := payload.ReportsTaxes()

	accommodation := domain.RevenueLedgerEntry{
		ID:       uuid.NewString(),
		Name:     "Accommodation",
		Unit:     domain.UnitPerDay,
		Taxable:  true,
		PmcShare: model.PmcShare,
	}
	if reportsTaxes {
		accommodation.Value, accommodation.Deductions = backOutTaxes(payload.AccommodationRevenue, model.TaxRates)
		uc.checkDrift(reservationID, accommodation.Name, accommodation, payload.AccommodationRevenue)
	} else {
		accommodation.Value = payload.AccommodationRevenue
	}

	fees := make([]domain.RevenueLedgerEntry, 0, len(payload.Fees))
	for _, reported := range payload.Fees {
		definition, ok := model.FeeByID(reported.ID)
		if !ok {
			fees = append(fees, domain.RevenueLedgerEntry{
				ID:       reported.ID,
				Name:     reported.Name,
				Value:    reported.Value,
				Unit:     "",
				Taxable:  false,
				PmcShare: decimal.Zero,
			})
			continue
		}

		entry := domain.RevenueLedgerEntry{
			ID:       reported.ID,
			Name:     definition.Name,
			Unit:     definition.Unit,
			Taxable:  definition.Taxable,
			PmcShare: definition.Share,
		}
		if reportsTaxes && definition.Taxable {
			entry.Value, entry.Deductions = backOutTaxes(reported.Value, model.TaxRates)
			uc.checkDrift(reservationID, entry.Name, entry, reported.Value)
		} else {
			entry.Value = reported.Value
		}
		fees = append(fees, entry)
	}

	if reportsTaxes {
		uc.checkTaxTotals(reservationID, domain.ChannelAirbnb, payload, accommodation, fees)
	}

	return &domain.RevenueCreate{
		ID:                uuid.NewString(),
		ReservationID:     reservationID,
		Channel:           domain.ChannelAirbnb,
		ChannelCommission: payload.Commission,
		Accommodation:     accommodation,
		Fees:              fees,
	}, nil
}

// ProcessVrboRevenue normalizes a Vrbo revenue payload. Unlike Airbnb, Vrbo
// reports pre-tax values: taxes are computed forward from the accommodation
// base (tax = accommodation × rate) and attached to the accommodation entry,
// and the derived total is reconciled against the taxes Vrbo itemized. Fee
// values are taken as reported.
func (uc *ChannelRevenueUseCase) ProcessVrboRevenue(reservationID string, payload domain.ChannelPayload, model *domain.BusinessModel) (*domain.RevenueCreate, error) {
	if err := validateModel(model); err != nil {
		return nil, fmt.Errorf("process vrbo revenue for reservation %s: %w", reservationID, err)
	}

	accommodation := domain.RevenueLedgerEntry{
		ID:       uuid.NewString(),
		Name:     "Accommodation",
		Unit:     domain.UnitPerDay,
		Taxable:  true,
		PmcShare: model.PmcShare,
		Value:    payload.AccommodationRevenue,
	}
	if payload.ReportsTaxes() {
		accommodation.Deductions = taxesFromBase(payload.AccommodationRevenue, model.TaxRates)
	}

	fees := make([]domain.RevenueLedgerEntry, 0, len(payload.Fees))
	for _, reported := range payload.Fees {
		definition, ok := model.FeeByID(reported.ID)
		if !ok {
			fees = append(fees, domain.RevenueLedgerEntry{
				ID:       reported.ID,
				Name:     reported.Name,
				Value:    reported.Value,
				Unit:     "",
				Taxable:  false,
				PmcShare: decimal.Zero,
			})
			continue
		}
		fees = append(fees, domain.RevenueLedgerEntry{
			ID:       reported.ID,
			Name:     definition.Name,
			Value:    reported.Value,
			Unit:     definition.Unit,
			Taxable:  definition.Taxable,
			PmcShare: definition.Share,
		})
	}

	if payload.ReportsTaxes() {
		uc.checkTaxTotals(reservationID, domain.ChannelVrbo, payload, accommodation, fees)
	}

	return &domain.RevenueCreate{
		ID:                uuid.NewString(),
		ReservationID:     reservationID,
		Channel:           domain.ChannelVrbo,
		ChannelCommission: payload.Commission,
		Accommodation:     accommodation,
		Fees:              fees,
	}, nil
}

// DirectReservation is the locally known stay data needed to create revenue
// for a direct booking, where no channel payload exists.
type DirectReservation struct {
	ReservationID string
	// AccommodationValue is the gross pre-tax accommodation amount.
	AccommodationValue decimal.Decimal
	Nights             int
	Guests             int
	ExtraGuests        int
}

// ProcessDirectRevenue creates the revenue record for a direct booking from
// the business model alone: guest fees are scaled by their configured unit,
// configured tax rates apply to every taxable line, and a credit-card
// deduction is attached when the deduction policy enables it.
func (uc *ChannelRevenueUseCase) ProcessDirectRevenue(res DirectReservation, model *domain.BusinessModel) (*domain.RevenueCreate, error) {
	if err := validateModel(model); err != nil {
		return nil, fmt.Errorf("process direct revenue for reservation %s: %w", res.ReservationID, err)
	}

	accommodation := domain.RevenueLedgerEntry{
		ID:         uuid.NewString(),
		Name:       "Accommodation",
		Value:      res.AccommodationValue,
		Unit:       domain.UnitPerDay,
		Taxable:    true,
		PmcShare:   model.PmcShare,
		Deductions: taxesFromBase(res.AccommodationValue, model.TaxRates),
	}
	uc.applyCreditCard(&accommodation, model.Deductions)

	var fees []domain.RevenueLedgerEntry
	for _, definition := range model.Fees {
		if definition.Type == domain.FeeTypeDeduction {
			continue
		}
		entry := domain.RevenueLedgerEntry{
			ID:       definition.ID,
			Name:     definition.Name,
			Value:    scaleFeeValue(definition, res),
			Unit:     definition.Unit,
			Taxable:  definition.Taxable,
			PmcShare: definition.Share,
		}
		if entry.Taxable {
			entry.Deductions = taxesFromBase(entry.Value, model.TaxRates)
		}
		uc.applyCreditCard(&entry, model.Deductions)
		fees = append(fees, entry)
	}

	return &domain.RevenueCreate{
		ID:            uuid.NewString(),
		ReservationID: res.ReservationID,
		Channel:       domain.ChannelDirect,
		Accommodation: accommodation,
		Fees:          fees,
	}, nil
}

// checkTaxTotals reconciles the taxes derived from the configured rates
// against the taxes the channel itemized, for the whole reservation. A
// mismatch means the configured rates disagree with what the channel
// actually collected; it is logged for manual review, never fatal.
func (uc *ChannelRevenueUseCase) checkTaxTotals(reservationID string, channel domain.Channel, payload domain.ChannelPayload, accommodation domain.RevenueLedgerEntry, fees []domain.RevenueLedgerEntry) {
	derived := decimal.Zero
	for _, d := range accommodation.TaxDeductions() {
		derived = derived.Add(d.Value)
	}
	for _, fee := range fees {
		for _, d := range fee.TaxDeductions() {
			derived = derived.Add(d.Value)
		}
	}

	reported := decimal.Zero
	for _, tax := range payload.Taxes {
		reported = reported.Add(tax.Value)
	}

	if derived.Sub(reported).Abs().GreaterThan(mismatchTolerance) {
		uc.logger.Warn("channel tax total mismatch",
			"reservation", reservationID,
			"channel", channel,
			"expected", derived.Round(2),
			"reported", reported.Round(2),
		)
	}
}

// checkDrift compares the locally recomputed total of an entry against the
// channel-reported gross and logs a warning on mismatch. Advisory only.
func (uc *ChannelRevenueUseCase) checkDrift(reservationID, feeName string, entry domain.RevenueLedgerEntry, reported decimal.Decimal) {
	expected := entry.Value
	for _, d := range entry.Deductions {
		expected = expected.Add(d.Value)
	}
	expected = expected.Round(2)

	if expected.Sub(reported.Round(2)).Abs().GreaterThan(mismatchTolerance) {
		uc.logger.Warn("channel fee total mismatch",
			"reservation", reservationID,
			"fee", feeName,
			"expected", expected,
			"reported", reported.Round(2),
		)
	}
}

func (uc *ChannelRevenueUseCase) applyCreditCard(entry *domain.RevenueLedgerEntry, policy domain.DeductionPolicy) {
	if !policy.CreditCard || policy.CreditCardFeePercent.IsZero() {
		return
	}
	charged := entry.Value
	for _, d := range entry.Deductions {
		charged = charged.Add(d.Value)
	}
	entry.Deductions = append(entry.Deductions, domain.Deduction{
		Type:        domain.DeductionCreditCard,
		Description: "Credit card fee",
		Value:       charged.Mul(policy.CreditCardFeePercent).Div(hundred).Round(2),
	})
}

// backOutTaxes derives the pre-tax value of a tax-inclusive gross line and
// recomputes each tax component from that base with the configured rates.
func backOutTaxes(gross decimal.Decimal, rates domain.TaxRates) (decimal.Decimal, []domain.Deduction) {
	value := gross.Div(one.Add(rates.TotalFraction())).Round(2)
	return value, taxesFromBase(value, rates)
}

// taxesFromBase computes one tax deduction per configured nonzero rate.
func taxesFromBase(base decimal.Decimal, rates domain.TaxRates) []domain.Deduction {
	var deductions []domain.Deduction
	for _, rate := range rates.Rates() {
		deductions = append(deductions, domain.Deduction{
			Type:        domain.DeductionTax,
			Description: rate.Description,
			Value:       base.Mul(rate.Fraction).Round(2),
		})
	}
	return deductions
}

func validateModel(model *domain.BusinessModel) error {
	if model == nil {
		return domain.ErrMissingBusinessModel
	}
	if model.TaxRates.IsZero() {
		return domain.ErrMissingTaxRates
	}
	return nil
}

// scaleFeeValue expands a configured fee to its reservation amount by unit.
func scaleFeeValue(definition domain.FeeDefinition, res DirectReservation) decimal.Decimal {
	nights := decimal.NewFromInt(int64(res.Nights))
	guests := decimal.NewFromInt(int64(res.Guests))

	switch definition.Unit {
	case domain.UnitPerDay:
		return definition.Value.Mul(nights)
	case domain.UnitPerPerson:
		return definition.Value.Mul(guests)
	case domain.UnitPerDayPerPerson:
		return definition.Value.Mul(nights).Mul(guests)
	case domain.UnitPerExtraGuest:
		return definition.Value.Mul(decimal.NewFromInt(int64(res.ExtraGuests)))
	default: // per-stay and anything unconfigured
		return definition.Value
	}
}
