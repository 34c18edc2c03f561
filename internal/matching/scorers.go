package matching

import "go-jobmatch-backend/internal/domain"

// Dimension weights. Skills and education dominate because they are the
// primary qualification signals; demographic carries the smallest weight so
// preference flags can never drive the ranking. Weights sum to 1.0 and are
// pinned by the test suite.
const (
	WeightSkills       = 0.30
	WeightEducation    = 0.20
	WeightLocation     = 0.10
	WeightSalary       = 0.10
	WeightAvailability = 0.10
	WeightExperience   = 0.15
	WeightDemographic  = 0.05
)

// Scorer tuning constants.
const (
	// educationStepPenalty is the linear falloff per missing ordinal level.
	educationStepPenalty = 0.25
	// educationOneLevelFloor keeps a one-level near-miss from scoring too low.
	educationOneLevelFloor = 0.5
	// neutralScore is applied when a dimension cannot be computed from the
	// record but the absence should not count against the candidate.
	neutralScore = 0.5
	// regionMatchScore is a same-region (not same-locality) location match.
	regionMatchScore = 0.5
	// demographicMissScore applies when a declared preference is not met.
	// Kept above zero: preference flags contribute, they never exclude.
	demographicMissScore = 0.5
)

// availabilityScores is a fixed lookup, not a formula. Statuses signalling
// immediate availability score highest; unknown statuses are neutral.
var availabilityScores = map[string]float64{
	domain.AvailabilityUnemployed:   1.0,
	domain.AvailabilityNewEntrant:   0.9,
	domain.AvailabilitySelfEmployed: 0.7,
	domain.AvailabilityEmployed:     0.5,
}

// ScoreFunc is one compatibility dimension. Every scorer is a pure function
// returning a value in [0,1] and independent of the other six.
type ScoreFunc func(JobCriteria, Profile) float64

type dimension struct {
	Name   string
	Weight float64
	Score  ScoreFunc
	Value  func(domain.MatchBreakdown) float64
}

// dimensions lists the seven scorers in evaluation order. The breakdown
// serializes its keys in this same order.
var dimensions = []dimension{
	{"skills", WeightSkills, scoreSkills, func(b domain.MatchBreakdown) float64 { return b.Skills }},
	{"education", WeightEducation, scoreEducation, func(b domain.MatchBreakdown) float64 { return b.Education }},
	{"location", WeightLocation, scoreLocation, func(b domain.MatchBreakdown) float64 { return b.Location }},
	{"salary", WeightSalary, scoreSalary, func(b domain.MatchBreakdown) float64 { return b.Salary }},
	{"availability", WeightAvailability, scoreAvailability, func(b domain.MatchBreakdown) float64 { return b.Availability }},
	{"experience", WeightExperience, scoreExperience, func(b domain.MatchBreakdown) float64 { return b.Experience }},
	{"demographic", WeightDemographic, scoreDemographic, func(b domain.MatchBreakdown) float64 { return b.Demographic }},
}

// PartitionSkills splits the job's required skills into matched and missing
// for one profile. Matching is case-insensitive exact-token; the two lists
// are an exact partition of the required set, in required order.
func PartitionSkills(c JobCriteria, p Profile) (matched, missing []string) {
	have := make(map[string]bool, len(p.Skills))
	for _, s := range p.Skills {
		have[s] = true
	}

	matched = make([]string, 0, len(c.Skills))
	missing = make([]string, 0)
	for _, s := range c.Skills {
		if have[s] {
			matched = append(matched, s)
		} else {
			missing = append(missing, s)
		}
	}
	return matched, missing
}

// scoreSkills is |matched| / |required|. A job requiring no skills is
// trivially satisfied by every candidate.
func scoreSkills(c JobCriteria, p Profile) float64 {
	if len(c.Skills) == 0 {
		return 1.0
	}
	matched, _ := PartitionSkills(c, p)
	return float64(len(matched)) / float64(len(c.Skills))
}

// scoreEducation gives full credit at or above the required ordinal, then a
// linear falloff per missing level. A one-level gap never drops below the
// configured floor. An unknown requirement is trivially met; an unknown
// candidate level stays neutral.
func scoreEducation(c JobCriteria, p Profile) float64 {
	if !c.EducationKnown {
		return 1.0
	}
	if !p.EducationKnown {
		return neutralScore
	}
	gap := c.EducationRank - p.EducationRank
	if gap <= 0 {
		return 1.0
	}
	score := 1.0 - float64(gap)*educationStepPenalty
	if gap == 1 && score < educationOneLevelFloor {
		score = educationOneLevelFloor
	}
	if score < 0 {
		score = 0
	}
	return score
}

// scoreLocation compares comma-segmented addresses: same locality scores
// full, overlap at any coarser segment (region/province) scores partial.
// Missing data on either side is neutral, not zero.
func scoreLocation(c JobCriteria, p Profile) float64 {
	if c.Location.Empty() || p.Location.Empty() {
		return neutralScore
	}
	if tokensOverlap(c.Location.Locality(), p.Location.Locality()) {
		return 1.0
	}
	for _, js := range c.Location.Segments {
		for _, as := range p.Location.Segments {
			if tokensOverlap(js, as) {
				return regionMatchScore
			}
		}
	}
	return 0
}

// scoreSalary gives full credit when the expectation falls within or below
// the offered range, then a linear falloff the further it exceeds the
// maximum. No declared expectation or no offered range is neutral.
func scoreSalary(c JobCriteria, p Profile) float64 {
	if !c.HasSalary || !p.HasSalary {
		return neutralScore
	}
	if p.ExpectedSalary <= c.SalaryMax {
		return 1.0
	}
	score := 1.0 - (p.ExpectedSalary-c.SalaryMax)/c.SalaryMax
	if score < 0 {
		score = 0
	}
	return score
}

func scoreAvailability(_ JobCriteria, p Profile) float64 {
	if score, ok := availabilityScores[p.Availability]; ok {
		return score
	}
	return neutralScore
}

// scoreExperience gives full credit at or above the requirement, linear
// falloff down to 0 at zero years. A requirement of 0 is always met; an
// absent work history is neutral when years are required.
func scoreExperience(c JobCriteria, p Profile) float64 {
	if c.ExperienceYears <= 0 {
		return 1.0
	}
	if !p.HasExperience {
		return neutralScore
	}
	if p.ExperienceYears >= c.ExperienceYears {
		return 1.0
	}
	return p.ExperienceYears / c.ExperienceYears
}

// scoreDemographic evaluates optional preference flags. Full credit when no
// preference is declared or the candidate satisfies it; a miss is reduced
// but never zero. This dimension contributes to the score only - the engine
// never hard-filters on it.
func scoreDemographic(c JobCriteria, p Profile) float64 {
	if c.AgeMin == nil && c.AgeMax == nil {
		return 1.0
	}
	if p.Age == nil {
		return neutralScore
	}
	if c.AgeMin != nil && *p.Age < *c.AgeMin {
		return demographicMissScore
	}
	if c.AgeMax != nil && *p.Age > *c.AgeMax {
		return demographicMissScore
	}
	return 1.0
}

// Score runs all seven dimension scorers and returns the breakdown in
// evaluation order.
func Score(c JobCriteria, p Profile) domain.MatchBreakdown {
	return domain.MatchBreakdown{
		Skills:       scoreSkills(c, p),
		Education:    scoreEducation(c, p),
		Location:     scoreLocation(c, p),
		Salary:       scoreSalary(c, p),
		Availability: scoreAvailability(c, p),
		Experience:   scoreExperience(c, p),
		Demographic:  scoreDemographic(c, p),
	}
}
