package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-jobmatch-backend/internal/delivery/http/middleware"
	"go-jobmatch-backend/internal/delivery/http/response"
	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/pkg/apperror"
)

// Query defaults for the match endpoint.
const (
	DefaultMinScore   = 50
	DefaultMaxResults = 50
)

type MatchHandler struct {
	matchUC domain.MatchUsecase
}

func NewMatchHandler(rg *gin.RouterGroup, matchUC domain.MatchUsecase) {
	handler := &MatchHandler{matchUC: matchUC}

	jobs := rg.Group("/jobs")
	{
		// Scoring the pool is the expensive call - stricter limit.
		jobs.GET("/:id/match", middleware.RateLimitMiddleware(middleware.MatchRateLimitConfig()), handler.Match)
		jobs.GET("/:id/applicants/:applicantId/ai-insights", handler.ApplicantInsights)
	}
}

// Match ranks the applicant pool of a posting.
// GET /jobs/:id/match?minScore=50&maxResults=50&includeInsights=false
func (h *MatchHandler) Match(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID format"))
		return
	}

	// Malformed query parameters are rejected here, before any scoring work.
	minScore, err := strconv.Atoi(c.DefaultQuery("minScore", strconv.Itoa(DefaultMinScore)))
	if err != nil {
		c.Error(apperror.BadRequest("minScore must be an integer"))
		return
	}
	maxResults, err := strconv.Atoi(c.DefaultQuery("maxResults", strconv.Itoa(DefaultMaxResults)))
	if err != nil {
		c.Error(apperror.BadRequest("maxResults must be an integer"))
		return
	}
	includeInsights, err := strconv.ParseBool(c.DefaultQuery("includeInsights", "false"))
	if err != nil {
		c.Error(apperror.BadRequest("includeInsights must be a boolean"))
		return
	}

	result, err := h.matchUC.Match(c.Request.Context(), domain.MatchQuery{
		JobID:           jobID,
		MinScore:        minScore,
		MaxResults:      maxResults,
		IncludeInsights: includeInsights,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Match results", result)
}

// ApplicantInsights returns narrative commentary for one applicant against
// a posting. Fields are absent when generation is unavailable.
// GET /jobs/:id/applicants/:applicantId/ai-insights
func (h *MatchHandler) ApplicantInsights(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID format"))
		return
	}
	applicantID, err := strconv.ParseInt(c.Param("applicantId"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid applicant ID format"))
		return
	}

	insights, err := h.matchUC.ApplicantInsights(c.Request.Context(), jobID, applicantID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applicant insights", insights)
}
