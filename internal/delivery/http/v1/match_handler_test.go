package v1_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"go-jobmatch-backend/config"
	v1 "go-jobmatch-backend/internal/delivery/http/v1"
	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/pkg/apperror"
	"go-jobmatch-backend/pkg/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Init()
	os.Exit(m.Run())
}

// stubMatchUC records the query it receives and returns canned data.
type stubMatchUC struct {
	lastQuery domain.MatchQuery
	resp      *domain.MatchResponse
	insights  *domain.MatchInsights
	err       error
}

func (s *stubMatchUC) Match(ctx context.Context, query domain.MatchQuery) (*domain.MatchResponse, error) {
	s.lastQuery = query
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func (s *stubMatchUC) ApplicantInsights(ctx context.Context, jobID, applicantID int64) (*domain.MatchInsights, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.insights, nil
}

type stubJobUC struct{}

func (s *stubJobUC) GetJobDetails(ctx context.Context, id int64) (*domain.Job, error) {
	return nil, apperror.NotFound("Job not found")
}

func (s *stubJobUC) ListPublicActiveJobs(ctx context.Context, page, pageSize int) ([]domain.Job, int64, error) {
	return []domain.Job{}, 0, nil
}

func setupRouter(matchUC domain.MatchUsecase) *gin.Engine {
	return v1.NewRouter(v1.RouterDeps{
		JobUC:   &stubJobUC{},
		MatchUC: matchUC,
		Config:  &config.Config{FrontendURL: "http://localhost:3000"},
	})
}

func doRequest(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	w := doRequest(setupRouter(&stubMatchUC{}), "/v1/health")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMatchEndpointValidation(t *testing.T) {
	uc := &stubMatchUC{resp: &domain.MatchResponse{}}
	router := setupRouter(uc)

	t.Run("Should reject a non-numeric job id", func(t *testing.T) {
		w := doRequest(router, "/v1/jobs/abc/match")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Should reject a non-numeric minScore", func(t *testing.T) {
		w := doRequest(router, "/v1/jobs/1/match?minScore=abc")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Should reject a non-numeric maxResults", func(t *testing.T) {
		w := doRequest(router, "/v1/jobs/1/match?maxResults=ten")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Should reject a non-boolean includeInsights", func(t *testing.T) {
		w := doRequest(router, "/v1/jobs/1/match?includeInsights=maybe")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Should apply defaults when parameters are omitted", func(t *testing.T) {
		w := doRequest(router, "/v1/jobs/7/match")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, int64(7), uc.lastQuery.JobID)
		assert.Equal(t, v1.DefaultMinScore, uc.lastQuery.MinScore)
		assert.Equal(t, v1.DefaultMaxResults, uc.lastQuery.MaxResults)
		assert.False(t, uc.lastQuery.IncludeInsights)
	})

	t.Run("Should pass explicit parameters through", func(t *testing.T) {
		w := doRequest(router, "/v1/jobs/7/match?minScore=70&maxResults=5&includeInsights=true")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 70, uc.lastQuery.MinScore)
		assert.Equal(t, 5, uc.lastQuery.MaxResults)
		assert.True(t, uc.lastQuery.IncludeInsights)
	})
}

func TestMatchEndpointNotFound(t *testing.T) {
	router := setupRouter(&stubMatchUC{err: apperror.NotFound("Job not found")})

	w := doRequest(router, "/v1/jobs/99/match")

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Job not found", body["message"])
}

func TestMatchEndpointSuccessEnvelope(t *testing.T) {
	uc := &stubMatchUC{resp: &domain.MatchResponse{
		JobID:    1,
		JobTitle: "Welder",
		Matches: []domain.MatchResult{
			{ApplicantID: 10, Name: "Maria Santos", Score: 90, Percentage: 90, Recommendation: domain.TierHighlyRecommended},
		},
		Total:    1,
		Criteria: domain.MatchCriteria{MinScore: 50, MaxResults: 50},
	}}

	w := doRequest(setupRouter(uc), "/v1/jobs/1/match")

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool                 `json:"success"`
		Data    domain.MatchResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "Welder", body.Data.JobTitle)
	assert.Len(t, body.Data.Matches, 1)
	assert.Equal(t, 90, body.Data.Matches[0].Percentage)
}

func TestInsightsEndpoint(t *testing.T) {
	t.Run("Should return generated fields", func(t *testing.T) {
		uc := &stubMatchUC{insights: &domain.MatchInsights{WhyQualified: "skills match"}}
		w := doRequest(setupRouter(uc), "/v1/jobs/1/applicants/10/ai-insights")

		assert.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Data domain.MatchInsights `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "skills match", body.Data.WhyQualified)
	})

	t.Run("Should reject a non-numeric applicant id", func(t *testing.T) {
		w := doRequest(setupRouter(&stubMatchUC{}), "/v1/jobs/1/applicants/xyz/ai-insights")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
