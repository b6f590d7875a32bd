package types

import (
	"github.com/moznion/go-optional"
)

// Fundamentals is a snapshot of per-ticker company information fetched once
// per render. Any field the provider cannot supply is None.
type Fundamentals struct {
	Ticker      string                   `json:"ticker"`
	Sector      optional.Option[string]  `json:"sector"`
	Country     optional.Option[string]  `json:"country"`
	PERatio     optional.Option[float64] `json:"pe_ratio"`
	PBRatio     optional.Option[float64] `json:"pb_ratio"`
	TrailingEPS optional.Option[float64] `json:"trailing_eps"`
}

// Recommendation is the fundamentals-based action suggestion.
type Recommendation string

const (
	RecommendationBuy  Recommendation = "Buy"
	RecommendationSell Recommendation = "Sell"
	RecommendationHold Recommendation = "Hold"
)

// Recommendation descriptions shown alongside the action.
const (
	DescriptionUndervalued  = "Undervalued"
	DescriptionOvervalued   = "Overvalued"
	DescriptionFairlyValued = "Fairly Valued"
)
