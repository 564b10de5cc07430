package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/saikat0506/Rezume-AI/internal/cleaner"
)

var clean = cleaner.NewCleaner()

const defaultModel = "gemini-2.0-flash"

type LLM struct {
	client *genai.Client
	model  string
}

// New creates a Gemini-backed client. The API key is injected here and never
// read from the environment inside the operations.
func New(apiKey string) (*LLM, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &LLM{
		client: client,
		model:  defaultModel,
	}, nil
}

func (l *LLM) Close() {
	if l.client != nil {
		l.client.Close()
	}
}

type genOptions struct {
	temperature     float32
	maxOutputTokens int32
	responseSchema  *genai.Schema
}

// Generate runs a single prompt against the model and returns the text of the
// first candidate.
func (l *LLM) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return l.generate(ctx, systemPrompt, userPrompt, genOptions{temperature: 0.7, maxOutputTokens: 2048})
}

func (l *LLM) generate(ctx context.Context, systemPrompt, userPrompt string, opts genOptions) (string, error) {
	model := l.client.GenerativeModel(l.model)
	model.SetTemperature(opts.temperature)
	model.SetTopP(0.95)
	model.SetTopK(40)
	if opts.maxOutputTokens > 0 {
		model.SetMaxOutputTokens(opts.maxOutputTokens)
	}
	if opts.responseSchema != nil {
		model.ResponseMIMEType = "application/json"
		model.ResponseSchema = opts.responseSchema
	}

	if systemPrompt != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(systemPrompt)},
		}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(userPrompt))
	if err != nil {
		return "", fmt.Errorf("LLM call failed: %w", err)
	}

	if resp.UsageMetadata != nil {
		slog.Info("LLM API call",
			"input_tokens", resp.UsageMetadata.PromptTokenCount,
			"output_tokens", resp.UsageMetadata.CandidatesTokenCount,
			"total_tokens", resp.UsageMetadata.TotalTokenCount)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from LLM")
	}

	response, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected response format from LLM")
	}

	return string(response), nil
}
