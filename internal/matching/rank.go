package matching

import (
	"math"
	"sort"

	"go-jobmatch-backend/internal/domain"
)

// Tier thresholds on the aggregate percentage. Lower bounds are inclusive:
// exactly 80 is highly recommended.
const (
	ThresholdHighlyRecommended = 80
	ThresholdRecommended       = 65
	ThresholdConsider          = 50
)

// Readout thresholds: a dimension at or above the strength threshold becomes
// a strength statement, below the concern threshold a concern statement.
const (
	strengthThreshold = 0.8
	concernThreshold  = 0.4
)

// scoreEpsilon absorbs float drift in the weighted sum so an aggregate that
// is mathematically x.5 always rounds up.
const scoreEpsilon = 1e-9

var strengthStatements = map[string]string{
	"skills":       "Strong skill match with the role requirements",
	"education":    "Meets or exceeds the required education level",
	"location":     "Located near the job site",
	"salary":       "Salary expectation fits the offered range",
	"availability": "Available to start right away",
	"experience":   "Work experience meets the requirement",
	"demographic":  "Fits the employer's stated preferences",
}

var concernStatements = map[string]string{
	"skills":       "Few of the required skills are present",
	"education":    "Education level is below the requirement",
	"location":     "Location is far from the job site",
	"salary":       "Salary expectation is well above the offered range",
	"availability": "May not be available to start soon",
	"experience":   "Work experience falls short of the requirement",
	"demographic":  "Outside the employer's stated preferences",
}

// Aggregate combines the breakdown into the weighted percentage in [0,100],
// unrounded.
func Aggregate(b domain.MatchBreakdown) float64 {
	var sum float64
	for _, d := range dimensions {
		sum += d.Weight * d.Value(b)
	}
	return sum * 100
}

// TierFor maps an aggregate percentage to its recommendation tier.
func TierFor(score int) domain.RecommendationTier {
	switch {
	case score >= ThresholdHighlyRecommended:
		return domain.TierHighlyRecommended
	case score >= ThresholdRecommended:
		return domain.TierRecommended
	case score >= ThresholdConsider:
		return domain.TierConsider
	default:
		return domain.TierNotSuitable
	}
}

// Readout derives the human-readable strength and concern statements from
// the breakdown alone, so it is reproducible without re-running extraction.
func Readout(b domain.MatchBreakdown) (strengths, concerns []string) {
	strengths = make([]string, 0, len(dimensions))
	concerns = make([]string, 0)
	for _, d := range dimensions {
		v := d.Value(b)
		if v >= strengthThreshold {
			strengths = append(strengths, strengthStatements[d.Name])
		} else if v < concernThreshold {
			concerns = append(concerns, concernStatements[d.Name])
		}
	}
	return strengths, concerns
}

// Evaluate scores one applicant against the job criteria and assembles the
// complete match result. Pure and parallel-safe: the criteria are read-only
// and nothing else is shared.
func Evaluate(c JobCriteria, a *domain.Applicant) domain.MatchResult {
	profile := NewProfile(a)
	breakdown := Score(c, profile)
	score := int(math.Round(Aggregate(breakdown) + scoreEpsilon))
	matched, missing := PartitionSkills(c, profile)
	strengths, concerns := Readout(breakdown)

	return domain.MatchResult{
		ApplicantID:    a.ID,
		Name:           a.FullName,
		Score:          score,
		Percentage:     score,
		Breakdown:      breakdown,
		MatchedSkills:  matched,
		MissingSkills:  missing,
		Strengths:      strengths,
		Concerns:       concerns,
		Recommendation: TierFor(score),
	}
}

// Rank filters out results below minScore, sorts by score descending with
// name ascending as the tie-break, and truncates to maxResults. The full
// pool is scored before this point; Rank is the single join after the
// per-candidate pipelines.
func Rank(results []domain.MatchResult, minScore, maxResults int) []domain.MatchResult {
	ranked := make([]domain.MatchResult, 0, len(results))
	for _, r := range results {
		if r.Score >= minScore {
			ranked = append(ranked, r)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Name < ranked[j].Name
	})

	if maxResults > 0 && len(ranked) > maxResults {
		ranked = ranked[:maxResults]
	}
	return ranked
}
