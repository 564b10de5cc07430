package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/generative-ai-go/genai"

	"github.com/saikat0506/Rezume-AI/pkg/types"
)

var reviewSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"ats_score": {
			Type:        genai.TypeInteger,
			Description: "ATS compatibility score out of 100",
		},
		"review": {
			Type:        genai.TypeString,
			Description: "Humanized review of the resume",
		},
	},
	Required: []string{"ats_score", "review"},
}

// Review scores the tailored resume for ATS compatibility and produces a
// recruiter-style write-up. The model is constrained to a JSON object with
// ats_score and review fields.
func (l *LLM) Review(ctx context.Context, tailoredResume, jobTitle, jobDesc string) (*types.Review, error) {
	logger := slog.With("component", "llm", "operation", "review")
	logger.Info("starting resume review", "resume_length", len(tailoredResume), "job_title", jobTitle)

	prompt := fmt.Sprintf(`You are an expert ATS (Applicant Tracking System) and a human recruiter.
	Your task is to review the following TAILORED resume against the provided Job Title and Job Description.

	Provide a score out of 100 for its ATS compatibility. A higher score means better keyword matching and formatting for ATS.
	Then, provide a humanized review, focusing on:
	- Overall readability and clarity.
	- Impact and strength of language.
	- How well it highlights relevant experience and skills for the specific job.
	- Any suggestions for further improvement from a human perspective.

	Respond ONLY with a JSON object containing 'ats_score' (integer out of 100) and 'review' (string).

	---
	**Tailored Resume:**
	%s

	---
	**Job Title:**
	%s

	---
	**Job Description:**
	%s`, tailoredResume, jobTitle, jobDesc)

	startTime := time.Now()
	content, err := l.generate(ctx, "", prompt, genOptions{
		temperature:     0.5,
		maxOutputTokens: 500,
		responseSchema:  reviewSchema,
	})
	if err != nil {
		logger.Error("resume review failed", "error", err, "duration_ms", time.Since(startTime).Milliseconds())
		return nil, fmt.Errorf("resume review failed: %w", err)
	}

	cleanResponse := clean.CleanLlmResponse(content)
	var review types.Review
	if err := json.Unmarshal([]byte(cleanResponse), &review); err != nil {
		logger.Error("JSON parsing failed", "error", err, "content_preview", cleanResponse[:min(100, len(cleanResponse))])
		return nil, fmt.Errorf("failed to parse LLM response as JSON: %w", err)
	}

	logger.Info("resume review completed",
		"duration_ms", time.Since(startTime).Milliseconds(),
		"ats_score", review.ATSScore)
	return &review, nil
}
