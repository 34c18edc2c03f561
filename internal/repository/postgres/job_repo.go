package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-jobmatch-backend/internal/domain"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT id, employer_id, title, description,
                     COALESCE(required_skills, ''), COALESCE(education_level, ''), COALESCE(experience_required, ''),
                     COALESCE(salary_min, 0), COALESCE(salary_max, 0),
                     COALESCE(location, ''), status, employment_type, age_min, age_max, created_at, updated_at
              FROM jobs WHERE id = $1`

	var job domain.Job
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.EmployerID, &job.Title, &job.Description, &job.RequiredSkills, &job.EducationLevel,
		&job.ExperienceReq, &job.SalaryMin, &job.SalaryMax, &job.Location, &job.Status,
		&job.EmploymentType, &job.AgeMin, &job.AgeMax, &job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

// FetchPublicActive retrieves only ACTIVE jobs for public access. The
// 'active' filter is hardcoded - no client-side bypass possible.
func (r *jobRepo) FetchPublicActive(ctx context.Context, limit, offset int) ([]domain.Job, int64, error) {
	query := `SELECT id, employer_id, title, description,
                     COALESCE(required_skills, ''), COALESCE(education_level, ''), COALESCE(experience_required, ''),
                     COALESCE(salary_min, 0), COALESCE(salary_max, 0),
                     COALESCE(location, ''), status, employment_type, age_min, age_max, created_at, updated_at
              FROM jobs
              WHERE status = 'active'
              ORDER BY created_at DESC
              LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(
			&job.ID, &job.EmployerID, &job.Title, &job.Description, &job.RequiredSkills, &job.EducationLevel,
			&job.ExperienceReq, &job.SalaryMin, &job.SalaryMax, &job.Location, &job.Status,
			&job.EmploymentType, &job.AgeMin, &job.AgeMax, &job.CreatedAt, &job.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, job)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE status = 'active'`).Scan(&total); err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}
