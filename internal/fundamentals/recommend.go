// Package fundamentals derives a rule-based buy/sell/hold recommendation
// from a company fundamentals snapshot.
package fundamentals

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-insight/internal/types"
)

// P/E thresholds for the valuation rule.
const (
	undervaluedPE = 15.0
	overvaluedPE  = 25.0
)

// Recommend maps a trailing P/E ratio to a recommendation and description.
// A P/E below 15 reads as undervalued and above 25 as overvalued; anything
// in between, and a P/E the provider could not supply, falls through to
// Hold.
func Recommend(peRatio optional.Option[float64]) (types.Recommendation, string) {
	if peRatio.IsSome() {
		pe := peRatio.Unwrap()

		if pe < undervaluedPE {
			return types.RecommendationBuy, types.DescriptionUndervalued
		}

		if pe > overvaluedPE {
			return types.RecommendationSell, types.DescriptionOvervalued
		}
	}

	return types.RecommendationHold, types.DescriptionFairlyValued
}

// RecommendSnapshot applies the rule to a full fundamentals snapshot.
func RecommendSnapshot(snapshot types.Fundamentals) (types.Recommendation, string) {
	return Recommend(snapshot.PERatio)
}
