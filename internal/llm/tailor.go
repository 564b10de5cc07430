package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/saikat0506/Rezume-AI/pkg/types"
)

// Tailor rewrites the resume for the target job. The output is the tailored
// resume text only; guidance and keyword emphasis come in through the input.
func (l *LLM) Tailor(ctx context.Context, in types.TailorInput) (string, error) {
	logger := slog.With("component", "llm", "operation", "tailor")
	logger.Info("starting resume tailoring",
		"resume_length", len(in.ResumeText),
		"job_title", in.JobTitle)

	keywordsInstruction := ""
	if in.Keywords != "" {
		keywordsInstruction = fmt.Sprintf("Ensure the tailored resume highlights these specific keywords and phrases: %s. ", in.Keywords)
	}

	prompt := fmt.Sprintf(`Your task is to tailor a given resume to a specific job description and job title.
	%s
	Focus on highlighting relevant skills, experiences, and achievements that directly match the requirements and keywords in the job description.
	%s
	Ensure the tone is professional and impactful.
	Never invent, exaggerate, or misattribute skills or experiences: every statement must be traceable to the original resume.
	The output should ONLY be the tailored resume text. Do NOT include any conversational text, introductions, or conclusions.

	---
	**Original Resume:**
	%s

	---
	**Job Title:**
	%s

	---
	**Job Description:**
	%s

	---
	**Tailored Resume:**`,
		in.StyleGuidance, keywordsInstruction, in.ResumeText, in.JobTitle, in.JobDescription)

	startTime := time.Now()
	content, err := l.generate(ctx,
		"You are an expert resume writer and career coach.",
		prompt,
		genOptions{temperature: 0.7, maxOutputTokens: 2048})
	if err != nil {
		logger.Error("resume tailoring failed", "error", err, "duration_ms", time.Since(startTime).Milliseconds())
		return "", fmt.Errorf("resume tailoring failed: %w", err)
	}

	tailored := clean.CleanLlmResponse(content)
	logger.Info("resume tailoring completed",
		"duration_ms", time.Since(startTime).Milliseconds(),
		"tailored_length", len(tailored))
	return tailored, nil
}
