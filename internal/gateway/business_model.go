package gateway

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"

	"github.com/nicholasrokosz/vesta-revenue/internal/domain"
)

// businessModelConfig mirrors the TOML layout of a listing's revenue
// configuration. Percentages are plain numbers; they are converted to
// decimals when the domain model is built.
type businessModelConfig struct {
	PmcShare float64     `toml:"pmc_share"`
	Fees     []feeConfig `toml:"fees"`

	TaxRates struct {
		Municipal float64 `toml:"municipal"`
		County    float64 `toml:"county"`
		State     float64 `toml:"state"`
	} `toml:"tax_rates"`

	Deductions struct {
		CreditCard           bool    `toml:"credit_card"`
		CreditCardFeePercent float64 `toml:"credit_card_fee_percent"`
	} `toml:"deductions"`
}

type feeConfig struct {
	ID      string  `toml:"id"`
	Name    string  `toml:"name"`
	Value   float64 `toml:"value"`
	Unit    string  `toml:"unit"`
	Taxable bool    `toml:"taxable"`
	Share   float64 `toml:"share"`
	Type    string  `toml:"type"`
}

// LoadBusinessModel reads a listing's business model from a TOML file.
func LoadBusinessModel(path string) (*domain.BusinessModel, error) {
	var cfg businessModelConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load business model %s: %w", path, err)
	}

	model := &domain.BusinessModel{
		PmcShare: decimal.NewFromFloat(cfg.PmcShare),
		TaxRates: domain.TaxRates{
			Municipal: decimal.NewFromFloat(cfg.TaxRates.Municipal),
			County:    decimal.NewFromFloat(cfg.TaxRates.County),
			State:     decimal.NewFromFloat(cfg.TaxRates.State),
		},
		Deductions: domain.DeductionPolicy{
			CreditCard:           cfg.Deductions.CreditCard,
			CreditCardFeePercent: decimal.NewFromFloat(cfg.Deductions.CreditCardFeePercent),
		},
	}
	for _, fee := range cfg.Fees {
		model.Fees = append(model.Fees, domain.FeeDefinition{
			ID:      fee.ID,
			Name:    fee.Name,
			Value:   decimal.NewFromFloat(fee.Value),
			Unit:    domain.FeeUnit(fee.Unit),
			Taxable: fee.Taxable,
			Share:   decimal.NewFromFloat(fee.Share),
			Type:    domain.FeeType(fee.Type),
		})
	}
	return model, nil
}
