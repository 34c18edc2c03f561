package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Job is a raw posting as stored by the employment office portal. Several
// columns carry legacy free text (skills, education, experience requirement)
// and are normalized by the matching engine, never mutated here.
type Job struct {
	ID             int64     `json:"id"`
	EmployerID     int64     `json:"employer_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	RequiredSkills string    `json:"required_skills"`
	EducationLevel string    `json:"education_level"`
	ExperienceReq  string    `json:"experience_required"`
	SalaryMin      float64   `json:"salary_min"`
	SalaryMax      float64   `json:"salary_max"`
	Location       string    `json:"location"`
	Status         string    `json:"status"`
	EmploymentType *string   `json:"employment_type"`
	AgeMin         *int      `json:"age_min"`
	AgeMax         *int      `json:"age_max"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type JobRepository interface {
	GetByID(ctx context.Context, id int64) (*Job, error)
	FetchPublicActive(ctx context.Context, limit, offset int) ([]Job, int64, error)
}

type JobUsecase interface {
	GetJobDetails(ctx context.Context, id int64) (*Job, error)
	ListPublicActiveJobs(ctx context.Context, page, pageSize int) ([]Job, int64, error)
}
