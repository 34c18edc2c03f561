package usecase

import (
	"context"
	"errors"
	"runtime"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/internal/matching"
	"go-jobmatch-backend/pkg/apperror"
	"go-jobmatch-backend/pkg/logger"
	"go-jobmatch-backend/pkg/validation"
)

// MatchConfig carries the engine knobs surfaced through the environment.
type MatchConfig struct {
	// MaxResultsCap bounds maxResults regardless of what the caller asks for.
	MaxResultsCap int
	// InsightTimeout is the per-call deadline for narrative generation.
	InsightTimeout time.Duration
	// InsightWorkers bounds concurrent generation calls over the result page.
	InsightWorkers int
}

func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		MaxResultsCap:  50,
		InsightTimeout: 8 * time.Second,
		InsightWorkers: 4,
	}
}

type matchUsecase struct {
	jobRepo       domain.JobRepository
	applicantRepo domain.ApplicantRepository
	insights      domain.InsightGenerator // nil when no generator is configured
	validate      *validator.Validate
	cfg           MatchConfig
}

func NewMatchUsecase(jobRepo domain.JobRepository, applicantRepo domain.ApplicantRepository, insights domain.InsightGenerator, validate *validator.Validate, cfg MatchConfig) domain.MatchUsecase {
	if cfg.MaxResultsCap <= 0 {
		cfg.MaxResultsCap = DefaultMatchConfig().MaxResultsCap
	}
	if cfg.InsightTimeout <= 0 {
		cfg.InsightTimeout = DefaultMatchConfig().InsightTimeout
	}
	if cfg.InsightWorkers <= 0 {
		cfg.InsightWorkers = DefaultMatchConfig().InsightWorkers
	}
	return &matchUsecase{
		jobRepo:       jobRepo,
		applicantRepo: applicantRepo,
		insights:      insights,
		validate:      validate,
		cfg:           cfg,
	}
}

// Match runs the full pipeline: fetch raw records, score the whole pool
// concurrently, rank, then optionally augment the returned page with
// narrative insights. The computation is request-scoped and read-only; the
// augmentation call is the only side effect and is best-effort.
func (u *matchUsecase) Match(ctx context.Context, query domain.MatchQuery) (*domain.MatchResponse, error) {
	if query.MaxResults > u.cfg.MaxResultsCap {
		query.MaxResults = u.cfg.MaxResultsCap
	}
	if err := u.validate.Struct(query); err != nil {
		return nil, apperror.BadRequest(validation.Format(err))
	}

	job, err := u.jobRepo.GetByID(ctx, query.JobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}

	pool, err := u.applicantRepo.FetchPoolByJobID(ctx, query.JobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	// Every candidate is scored before any filtering; scoring is stateless
	// and shares only the read-only criteria.
	criteria := matching.NewJobCriteria(job)
	results := make([]domain.MatchResult, len(pool))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range pool {
		g.Go(func() error {
			results[i] = matching.Evaluate(criteria, &pool[i])
			return nil
		})
	}
	// Scorers never fail; the wait is the join before ranking.
	_ = g.Wait()

	ranked := matching.Rank(results, query.MinScore, query.MaxResults)

	if query.IncludeInsights && u.insights != nil {
		u.augment(ctx, job, pool, ranked)
	}

	return &domain.MatchResponse{
		JobID:    job.ID,
		JobTitle: job.Title,
		Matches:  ranked,
		Total:    len(ranked),
		Criteria: domain.MatchCriteria{
			MinScore:   query.MinScore,
			MaxResults: query.MaxResults,
		},
	}, nil
}

// augment attaches narrative commentary to the already-ranked page. Runs
// only over the returned subset with a bounded worker count and a per-call
// timeout. A failed call leaves that result untouched and never fails the
// request.
func (u *matchUsecase) augment(ctx context.Context, job *domain.Job, pool []domain.Applicant, ranked []domain.MatchResult) {
	byID := make(map[int64]*domain.Applicant, len(pool))
	for i := range pool {
		byID[pool[i].ID] = &pool[i]
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.cfg.InsightWorkers)
	for i := range ranked {
		applicant, ok := byID[ranked[i].ApplicantID]
		if !ok {
			continue
		}
		g.Go(func() error {
			callCtx, cancel := context.WithTimeout(gctx, u.cfg.InsightTimeout)
			defer cancel()

			insights, err := u.insights.GenerateInsights(callCtx, job, applicant, &ranked[i])
			if err != nil {
				logger.Log.Warn("insight generation failed",
					"job_id", job.ID,
					"applicant_id", ranked[i].ApplicantID,
					"error", err)
				return nil
			}
			ranked[i].Insights = insights
			return nil
		})
	}
	_ = g.Wait()
}

// ApplicantInsights generates narrative commentary for a single applicant
// against a posting. On generation failure the response is an empty insight
// set, not an error, so the endpoint stays available.
func (u *matchUsecase) ApplicantInsights(ctx context.Context, jobID, applicantID int64) (*domain.MatchInsights, error) {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}

	applicant, err := u.applicantRepo.GetByID(ctx, applicantID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Applicant not found")
		}
		return nil, apperror.Internal(err)
	}

	if u.insights == nil {
		return &domain.MatchInsights{}, nil
	}

	result := matching.Evaluate(matching.NewJobCriteria(job), applicant)

	callCtx, cancel := context.WithTimeout(ctx, u.cfg.InsightTimeout)
	defer cancel()

	insights, err := u.insights.GenerateInsights(callCtx, job, applicant, &result)
	if err != nil {
		logger.Log.Warn("insight generation failed",
			"job_id", jobID,
			"applicant_id", applicantID,
			"error", err)
		return &domain.MatchInsights{}, nil
	}
	return insights, nil
}
