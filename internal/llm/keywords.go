package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// ExtractKeywords asks the model for the 10-15 most important keywords and
// requirements in a job description, returned as a comma-separated string.
func (l *LLM) ExtractKeywords(ctx context.Context, jobDesc string) (string, error) {
	logger := slog.With("component", "llm", "operation", "extract_keywords")
	logger.Info("starting keyword extraction", "content_length", len(jobDesc))

	relevantContent := jobDesc
	if strings.Contains(jobDesc, "<") {
		relevantContent = clean.CleanHTML(jobDesc)
		logger.Debug("cleaned HTML content", "original_length", len(jobDesc), "cleaned_length", len(relevantContent))
	}

	prompt := fmt.Sprintf(`Extract the most important 10-15 keywords, key skills, and essential requirements from the following job description.
	List them as a comma-separated string. Do not include any other text or conversational phrases.

	Job Description:
	%s

	Keywords:`, relevantContent)

	startTime := time.Now()
	content, err := l.generate(ctx, "", prompt, genOptions{temperature: 0.3, maxOutputTokens: 100})
	if err != nil {
		logger.Error("keyword extraction failed", "error", err, "duration_ms", time.Since(startTime).Milliseconds())
		return "", fmt.Errorf("keyword extraction failed: %w", err)
	}

	keywords := clean.CleanLlmResponse(content)
	logger.Info("keyword extraction completed",
		"duration_ms", time.Since(startTime).Milliseconds(),
		"keyword_count", len(strings.Split(keywords, ",")))
	return keywords, nil
}
