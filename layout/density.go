package layout

import (
	"unicode/utf8"

	"cvg/common"
	"cvg/config"
	"cvg/content"
)

// Score rates how much content a CV carries on a [0,1] scale. Each structural
// feature is normalized by the count a typical one-page CV holds and weighted
// by how much vertical space it tends to consume.
func Score(doc *content.Document) float64 {

	var roles, responsibilities int
	for _, company := range doc.Experience.Companies {
		roles += len(company.Roles)
		for _, role := range company.Roles {
			responsibilities += len(role.Responsibilities)
		}
	}

	score := float64(utf8.RuneCountInString(doc.Profile))*0.1/1000 +
		float64(len(doc.Experience.Companies))*0.3/4 +
		float64(roles)*0.2/6 +
		float64(responsibilities)*0.2/15 +
		float64(len(doc.Education.Items))*0.1/3 +
		float64(len(doc.Projects))*0.1/4

	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// TierFor maps a density score to a tier using configured thresholds.
func TierFor(score float64, cfg config.DensityConfig) common.DensityTier {
	switch {
	case score > cfg.DenseAbove:
		return common.DensityTierDense
	case score < cfg.SparseBelow:
		return common.DensityTierSparse
	default:
		return common.DensityTierBalanced
	}
}
