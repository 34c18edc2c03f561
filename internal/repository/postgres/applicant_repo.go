package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-jobmatch-backend/internal/domain"
)

type applicantRepo struct {
	db *pgxpool.Pool
}

func NewApplicantRepository(db *pgxpool.Pool) domain.ApplicantRepository {
	return &applicantRepo{db: db}
}

// FetchPoolByJobID returns the full applicant pool of a posting. The loose
// text columns are coalesced to empty strings and left for the engine to
// coerce.
func (r *applicantRepo) FetchPoolByJobID(ctx context.Context, jobID int64) ([]domain.Applicant, error) {
	query := `
		SELECT a.id, a.user_id, a.full_name,
		       COALESCE(a.skills, ''),
		       COALESCE(a.highest_education, ''),
		       COALESCE(a.experience_years, ''),
		       COALESCE(a.expected_salary, ''),
		       COALESCE(a.location, ''),
		       a.age,
		       COALESCE(a.availability_status, ''),
		       a.created_at, a.updated_at
		FROM applicants a
		JOIN job_applications ja ON ja.applicant_id = a.id
		WHERE ja.job_id = $1
		ORDER BY a.id`

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applicants []domain.Applicant
	for rows.Next() {
		var a domain.Applicant
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.FullName, &a.Skills, &a.HighestEducation,
			&a.ExperienceYears, &a.ExpectedSalary, &a.Location, &a.Age,
			&a.AvailabilityStatus, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		applicants = append(applicants, a)
	}

	return applicants, rows.Err()
}

func (r *applicantRepo) GetByID(ctx context.Context, id int64) (*domain.Applicant, error) {
	query := `
		SELECT id, user_id, full_name,
		       COALESCE(skills, ''),
		       COALESCE(highest_education, ''),
		       COALESCE(experience_years, ''),
		       COALESCE(expected_salary, ''),
		       COALESCE(location, ''),
		       age,
		       COALESCE(availability_status, ''),
		       created_at, updated_at
		FROM applicants WHERE id = $1`

	var a domain.Applicant
	err := r.db.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.UserID, &a.FullName, &a.Skills, &a.HighestEducation,
		&a.ExperienceYears, &a.ExpectedSalary, &a.Location, &a.Age,
		&a.AvailabilityStatus, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}
