package domain

import "errors"

var (
	// ErrUnknownChannel means a payout was requested for a booking channel
	// with no configured payout rule. This is a data or mapping defect, not
	// a recoverable business condition.
	ErrUnknownChannel = errors.New("unknown booking channel")

	// ErrMissingBusinessModel means revenue was computed for a listing with
	// no configured business model.
	ErrMissingBusinessModel = errors.New("no business model configured")

	// ErrMissingTaxRates means the business model carries no tax rates, so
	// channel-reported taxes cannot be reconciled.
	ErrMissingTaxRates = errors.New("no tax rates configured")
)
