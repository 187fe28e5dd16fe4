package advisor

import (
	"context"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/saheli/saheli/internal/config"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

// Client is the AI collaborator: a single blocking text completion per call.
type Client interface {
	Ask(ctx context.Context, prompt string) (string, error)
}

// GeminiClient talks to the Gemini API. A fresh session is created per call
// so no conversational state leaks between independent requests.
type GeminiClient struct {
	apiKey  string
	model   string
	timeout time.Duration
}

func NewGeminiClient(cfg config.Gemini) *GeminiClient {
	return &GeminiClient{
		apiKey:  cfg.ApiKey,
		model:   cfg.Model,
		timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
	}
}

func (c *GeminiClient) Ask(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("gemini api key is not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	client, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(c.model)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from Gemini API")
	}

	text := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	log.Debugf("Gemini returned %d characters", len(text))
	return text, nil
}
