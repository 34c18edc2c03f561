// Package matching implements the applicant/job compatibility engine: feature
// extraction from raw portal records, seven independent dimension scorers,
// weighted aggregation, recommendation tiering and result ranking. Everything
// in this package is a pure function of its inputs and safe to run
// concurrently across candidates.
package matching

import (
	"regexp"
	"strconv"
	"strings"

	"go-jobmatch-backend/internal/domain"
)

// Education ranks, lowest to highest. Free-text values that match none of
// the keyword tables fall back to the lowest rank with Known=false so the
// education scorer can stay neutral instead of punitive.
const (
	EduElementary = iota
	EduJuniorHigh
	EduHighSchool
	EduVocational
	EduCollege
	EduGraduate
)

var educationKeywords = []struct {
	rank     int
	keywords []string
}{
	{EduGraduate, []string{"master", "doctor", "phd", "postgraduate", "post-graduate"}},
	{EduCollege, []string{"college", "bachelor", "degree", "university"}},
	{EduVocational, []string{"vocational", "tech-voc", "technical", "diploma"}},
	{EduJuniorHigh, []string{"junior high"}},
	{EduHighSchool, []string{"high school", "highschool", "secondary", "senior high"}},
	{EduElementary, []string{"elementary", "primary"}},
}

// JobCriteria is the normalized view of one posting, immutable for the
// duration of a matching run.
type JobCriteria struct {
	Skills          []string
	EducationRank   int
	EducationKnown  bool
	ExperienceYears float64
	SalaryMin       float64
	SalaryMax       float64
	HasSalary       bool
	Location        Location
	AgeMin          *int
	AgeMax          *int
}

// Profile is the normalized, read-only snapshot of one applicant. Has*
// markers distinguish a real zero from an absent field so scorers can apply
// neutral rather than punitive scores.
type Profile struct {
	Skills          []string
	EducationRank   int
	EducationKnown  bool
	ExperienceYears float64
	HasExperience   bool
	ExpectedSalary  float64
	HasSalary       bool
	Location        Location
	Age             *int
	Availability    string
}

// Location is a lower-cased address split into comma segments, finest
// granularity first (barangay, city, province). Comparison is by token
// overlap since the two sides rarely agree on granularity.
type Location struct {
	Segments [][]string
}

// NewJobCriteria normalizes a raw posting. Extraction never fails; malformed
// fields degrade to absent markers.
func NewJobCriteria(job *domain.Job) JobCriteria {
	rank, known := parseEducation(job.EducationLevel)
	years, _ := parseNumber(job.ExperienceReq)

	return JobCriteria{
		Skills:          SplitSkills(job.RequiredSkills),
		EducationRank:   rank,
		EducationKnown:  known,
		ExperienceYears: years,
		SalaryMin:       job.SalaryMin,
		SalaryMax:       job.SalaryMax,
		HasSalary:       job.SalaryMax > 0,
		Location:        parseLocation(job.Location),
		AgeMin:          job.AgeMin,
		AgeMax:          job.AgeMax,
	}
}

// NewProfile normalizes a raw applicant record. A malformed record still
// produces a usable profile; dropping a candidate is a ranking decision,
// not an extraction one.
func NewProfile(a *domain.Applicant) Profile {
	rank, known := parseEducation(a.HighestEducation)
	years, hasYears := parseNumber(a.ExperienceYears)
	salary, hasSalary := parseNumber(a.ExpectedSalary)

	return Profile{
		Skills:          SplitSkills(a.Skills),
		EducationRank:   rank,
		EducationKnown:  known,
		ExperienceYears: years,
		HasExperience:   hasYears,
		ExpectedSalary:  salary,
		HasSalary:       hasSalary,
		Location:        parseLocation(a.Location),
		Age:             a.Age,
		Availability:    strings.ToUpper(strings.TrimSpace(a.AvailabilityStatus)),
	}
}

// SplitSkills tokenizes a skills field that may arrive comma, semicolon or
// newline delimited. Tokens are trimmed, lower-cased and de-duplicated while
// preserving first-seen order.
func SplitSkills(raw string) []string {
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n'
	})

	seen := make(map[string]bool, len(parts))
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		token := strings.ToLower(strings.TrimSpace(p))
		if token == "" || seen[token] {
			continue
		}
		seen[token] = true
		skills = append(skills, token)
	}
	return skills
}

// parseEducation maps institution-reported free text onto the ordinal scale.
// Unrecognized values map to the lowest rank, flagged unknown.
func parseEducation(raw string) (rank int, known bool) {
	text := strings.ToLower(strings.TrimSpace(raw))
	if text == "" {
		return EduElementary, false
	}
	for _, entry := range educationKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(text, kw) {
				return entry.rank, true
			}
		}
	}
	return EduElementary, false
}

var numberPattern = regexp.MustCompile(`[0-9]+(\.[0-9]+)?`)

// parseNumber coerces legacy text columns like "2 years", "PHP 15,000" or a
// plain number. Non-numeric or empty input reports absent so the scorer can
// stay neutral.
func parseNumber(raw string) (value float64, ok bool) {
	text := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if text == "" {
		return 0, false
	}
	match := numberPattern.FindString(text)
	if match == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseLocation(raw string) Location {
	text := strings.ToLower(strings.TrimSpace(raw))
	if text == "" {
		return Location{}
	}

	var segments [][]string
	for _, seg := range strings.Split(text, ",") {
		tokens := strings.Fields(seg)
		if len(tokens) > 0 {
			segments = append(segments, tokens)
		}
	}
	return Location{Segments: segments}
}

// Empty reports whether no location data was supplied.
func (l Location) Empty() bool {
	return len(l.Segments) == 0
}

// Locality returns the finest-granularity segment tokens.
func (l Location) Locality() []string {
	if l.Empty() {
		return nil
	}
	return l.Segments[0]
}

// genericLocationTokens are address words too common to signal a real place
// match. "Quezon City" and "Cebu City" share "city" but are not the same
// locality.
var genericLocationTokens = map[string]bool{
	"city":         true,
	"metro":        true,
	"province":     true,
	"municipality": true,
	"town":         true,
	"barangay":     true,
	"brgy":         true,
	"district":     true,
}

// tokensOverlap reports whether the two segments share a distinguishing
// token. Generic address words never count as overlap.
func tokensOverlap(a, b []string) bool {
	for _, t := range a {
		if genericLocationTokens[t] {
			continue
		}
		for _, u := range b {
			if t == u {
				return true
			}
		}
	}
	return false
}
