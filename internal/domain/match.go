package domain

import "context"

// RecommendationTier is the ordinal bucket an aggregate score falls into.
type RecommendationTier string

const (
	TierNotSuitable       RecommendationTier = "NOT_SUITABLE"
	TierConsider          RecommendationTier = "CONSIDER"
	TierRecommended       RecommendationTier = "RECOMMENDED"
	TierHighlyRecommended RecommendationTier = "HIGHLY_RECOMMENDED"
)

// MatchBreakdown holds the unrounded per-dimension scores in evaluation
// order. All seven keys are always present; a dimension that could not be
// computed carries its neutral value, never null.
type MatchBreakdown struct {
	Skills       float64 `json:"skills"`
	Education    float64 `json:"education"`
	Location     float64 `json:"location"`
	Salary       float64 `json:"salary"`
	Availability float64 `json:"availability"`
	Experience   float64 `json:"experience"`
	Demographic  float64 `json:"demographic"`
}

// MatchInsights carries the optional narrative enrichment. Every field is
// absent when generation failed or was not requested.
type MatchInsights struct {
	AIComment            string `json:"ai_comment,omitempty"`
	WhyQualified         string `json:"why_qualified,omitempty"`
	HiringRecommendation string `json:"hiring_recommendation,omitempty"`
	PotentialRole        string `json:"potential_role,omitempty"`
	DevelopmentAreas     string `json:"development_areas,omitempty"`
}

// MatchResult is one scored candidate. Score and Percentage hold the same
// rounded value; the breakdown keeps the unrounded detail.
type MatchResult struct {
	ApplicantID    int64              `json:"applicant_id"`
	Name           string             `json:"name"`
	Score          int                `json:"score"`
	Percentage     int                `json:"percentage"`
	Breakdown      MatchBreakdown     `json:"breakdown"`
	MatchedSkills  []string           `json:"matched_skills"`
	MissingSkills  []string           `json:"missing_skills"`
	Strengths      []string           `json:"strengths"`
	Concerns       []string           `json:"concerns"`
	Recommendation RecommendationTier `json:"recommendation"`
	Insights       *MatchInsights     `json:"insights,omitempty"`
}

// MatchQuery is the validated request for one matching run.
type MatchQuery struct {
	JobID           int64 `validate:"required,gt=0"`
	MinScore        int   `validate:"min=0,max=100"`
	MaxResults      int   `validate:"gt=0"`
	IncludeInsights bool
}

// MatchCriteria echoes the effective query parameters back to the caller.
type MatchCriteria struct {
	MinScore   int `json:"min_score"`
	MaxResults int `json:"max_results"`
}

type MatchResponse struct {
	JobID    int64         `json:"job_id"`
	JobTitle string        `json:"job_title"`
	Matches  []MatchResult `json:"matches"`
	Total    int           `json:"total"`
	Criteria MatchCriteria `json:"criteria"`
}

type MatchUsecase interface {
	Match(ctx context.Context, query MatchQuery) (*MatchResponse, error)
	ApplicantInsights(ctx context.Context, jobID, applicantID int64) (*MatchInsights, error)
}

// InsightGenerator is the narrative-generation collaborator. Implementations
// must honor context cancellation; callers treat every error as
// best-effort-unavailable, never as a request failure.
type InsightGenerator interface {
	GenerateInsights(ctx context.Context, job *Job, applicant *Applicant, result *MatchResult) (*MatchInsights, error)
}
