package layout

import (
	"strings"
	"testing"

	"cvg/common"
	"cvg/config"
	"cvg/content"
)

func densityDoc(profileChars, companies, rolesPer, respPer, education, projects int) *content.Document {
	doc := &content.Document{
		Profile: strings.Repeat("x", profileChars),
	}
	for i := 0; i < companies; i++ {
		c := content.Company{Name: "C"}
		for j := 0; j < rolesPer; j++ {
			r := content.Role{Title: "R"}
			for k := 0; k < respPer; k++ {
				r.Responsibilities = append(r.Responsibilities, "did a thing")
			}
			c.Roles = append(c.Roles, r)
		}
		doc.Experience.Companies = append(doc.Experience.Companies, c)
	}
	for i := 0; i < education; i++ {
		doc.Education.Items = append(doc.Education.Items, content.EducationItem{Institution: "U"})
	}
	for i := 0; i < projects; i++ {
		doc.Projects = append(doc.Projects, content.Project{Title: "P"})
	}
	return doc
}

func TestScore(t *testing.T) {
	if got := Score(&content.Document{}); got != 0 {
		t.Errorf("empty document score = %f, want 0", got)
	}

	// exactly the normalization counts: every term contributes its full weight
	full := densityDoc(1000, 4, 0, 0, 3, 4)
	full.Experience.Companies[0].Roles = make([]content.Role, 6)
	for i := 0; i < 6; i++ {
		full.Experience.Companies[0].Roles[i] = content.Role{Title: "R"}
	}
	for i := 0; i < 15; i++ {
		full.Experience.Companies[0].Roles[i%6].Responsibilities = append(
			full.Experience.Companies[0].Roles[i%6].Responsibilities, "r")
	}
	if got := Score(full); !near(got, 1) {
		t.Errorf("full document score = %f, want 1", got)
	}

	// oversized content clamps at 1
	huge := densityDoc(10000, 10, 4, 5, 6, 9)
	if got := Score(huge); got != 1 {
		t.Errorf("huge document score = %f, want clamped 1", got)
	}
}

func TestScoreCountsRunes(t *testing.T) {
	// profile length is measured in characters, multi-byte text must score
	// the same as ASCII of equal length
	ascii := densityDoc(0, 1, 1, 1, 0, 0)
	ascii.Profile = strings.Repeat("e", 500)

	cyrillic := densityDoc(0, 1, 1, 1, 0, 0)
	cyrillic.Profile = strings.Repeat("ж", 500)

	if a, c := Score(ascii), Score(cyrillic); !near(a, c) {
		t.Errorf("rune scoring differs: ascii %f, cyrillic %f", a, c)
	}
}

func TestScorePartial(t *testing.T) {
	// 500 chars profile + 2 companies, 1 role each, 3 responsibilities each
	doc := densityDoc(500, 2, 1, 3, 1, 1)
	want := 500*0.1/1000 + 2*0.3/4 + 2*0.2/6 + 6*0.2/15 + 1*0.1/3 + 1*0.1/4
	if got := Score(doc); !near(got, want) {
		t.Errorf("score = %f, want %f", got, want)
	}
}

func TestTierFor(t *testing.T) {
	cfg := config.DensityConfig{SparseBelow: 0.4, DenseAbove: 0.8}

	cases := []struct {
		score float64
		want  common.DensityTier
	}{
		{0, common.DensityTierSparse},
		{0.39, common.DensityTierSparse},
		{0.4, common.DensityTierBalanced},
		{0.6, common.DensityTierBalanced},
		{0.8, common.DensityTierBalanced},
		{0.81, common.DensityTierDense},
		{1, common.DensityTierDense},
	}

	for _, tc := range cases {
		if got := TierFor(tc.score, cfg); got != tc.want {
			t.Errorf("TierFor(%f) = %v, want %v", tc.score, got, tc.want)
		}
	}
}

func TestTierForMonotonic(t *testing.T) {
	cfg := config.DensityConfig{SparseBelow: 0.4, DenseAbove: 0.8}

	rank := map[common.DensityTier]int{
		common.DensityTierSparse:   0,
		common.DensityTierBalanced: 1,
		common.DensityTierDense:    2,
	}

	prev := -1
	for score := 0.0; score <= 1.0; score += 0.01 {
		r := rank[TierFor(score, cfg)]
		if r < prev {
			t.Fatalf("tier rank decreased at score %f", score)
		}
		prev = r
	}
}
