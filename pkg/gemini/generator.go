// Package gemini implements the narrative insight generator on top of the
// Google GenAI API. Callers treat it as best-effort: any error here means
// the optional insight fields stay absent.
package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"go-jobmatch-backend/internal/domain"
)

const defaultModel = "gemini-2.0-flash"

// Generator wraps the GenAI client to produce structured hiring commentary
// for an already-ranked match result.
type Generator struct {
	client    *genai.Client
	modelName string
}

// NewGenerator creates a Generator configured for the Gemini API backend.
func NewGenerator(ctx context.Context, apiKey, model string) (*Generator, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}

	return &Generator{client: client, modelName: model}, nil
}

// GenerateInsights asks the model for narrative commentary on one scored
// candidate. The numeric result is context only; nothing returned here may
// alter score, breakdown or tier.
func (g *Generator) GenerateInsights(ctx context.Context, job *domain.Job, applicant *domain.Applicant, result *domain.MatchResult) (*domain.MatchInsights, error) {
	if g == nil || g.client == nil {
		return nil, errors.New("gemini generator is not initialized")
	}

	prompt := buildPrompt(job, applicant, result)

	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), cfg)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	text := collectText(resp)
	if text == "" {
		return nil, errors.New("gemini api returned empty response")
	}

	var insights domain.MatchInsights
	if err := json.Unmarshal([]byte(cleanJSONBlock(text)), &insights); err != nil {
		return nil, fmt.Errorf("parse insight response: %w", err)
	}
	return &insights, nil
}

func (g *Generator) Model() string {
	if g == nil {
		return ""
	}
	return g.modelName
}

func buildPrompt(job *domain.Job, applicant *domain.Applicant, result *domain.MatchResult) string {
	var b strings.Builder
	b.WriteString("You are assisting a public employment office reviewer.\n")
	b.WriteString("Given the job posting and the applicant below, reply with a JSON object ")
	b.WriteString("containing exactly these string fields: ")
	b.WriteString(`"ai_comment", "why_qualified", "hiring_recommendation", "potential_role", "development_areas".` + "\n")
	b.WriteString("Keep each field to one or two sentences, concrete and neutral in tone.\n\n")

	fmt.Fprintf(&b, "Job title: %s\n", job.Title)
	fmt.Fprintf(&b, "Job description: %s\n", job.Description)
	fmt.Fprintf(&b, "Required skills: %s\n", job.RequiredSkills)
	fmt.Fprintf(&b, "Required education: %s\n", job.EducationLevel)
	fmt.Fprintf(&b, "Required experience: %s\n\n", job.ExperienceReq)

	fmt.Fprintf(&b, "Applicant: %s\n", applicant.FullName)
	fmt.Fprintf(&b, "Skills: %s\n", applicant.Skills)
	fmt.Fprintf(&b, "Education: %s\n", applicant.HighestEducation)
	fmt.Fprintf(&b, "Experience: %s\n", applicant.ExperienceYears)
	fmt.Fprintf(&b, "Availability: %s\n\n", applicant.AvailabilityStatus)

	fmt.Fprintf(&b, "Computed compatibility: %d%% (%s)\n", result.Percentage, result.Recommendation)
	fmt.Fprintf(&b, "Matched skills: %s\n", strings.Join(result.MatchedSkills, ", "))
	fmt.Fprintf(&b, "Missing skills: %s\n", strings.Join(result.MissingSkills, ", "))

	return b.String()
}

func collectText(resp *genai.GenerateContentResponse) string {
	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}
	return strings.TrimSpace(builder.String())
}

// cleanJSONBlock strips markdown code fences some models wrap around JSON.
func cleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
