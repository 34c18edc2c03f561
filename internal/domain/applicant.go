package domain

import (
	"context"
	"time"
)

// Availability status values as recorded on applicant profiles.
const (
	AvailabilityUnemployed   = "UNEMPLOYED"
	AvailabilityNewEntrant   = "NEW_ENTRANT"
	AvailabilitySelfEmployed = "SELF_EMPLOYED"
	AvailabilityEmployed     = "EMPLOYED"
)

// Applicant is a raw candidate snapshot as stored by the portal. Skills,
// education, experience and expected salary are legacy text columns filled
// by self-service forms, so their content is unreliable; the matching
// engine coerces them with absent-field markers instead of rejecting rows.
type Applicant struct {
	ID                 int64     `json:"id"`
	UserID             string    `json:"user_id"`
	FullName           string    `json:"full_name"`
	Skills             string    `json:"skills"`
	HighestEducation   string    `json:"highest_education"`
	ExperienceYears    string    `json:"experience_years"`
	ExpectedSalary     string    `json:"expected_salary"`
	Location           string    `json:"location"`
	Age                *int      `json:"age,omitempty"`
	AvailabilityStatus string    `json:"availability_status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type ApplicantRepository interface {
	// FetchPoolByJobID returns every applicant of a posting. The engine
	// scores the whole pool before filtering, so no threshold is applied
	// at the query level.
	FetchPoolByJobID(ctx context.Context, jobID int64) ([]Applicant, error)
	GetByID(ctx context.Context, id int64) (*Applicant, error)
}
