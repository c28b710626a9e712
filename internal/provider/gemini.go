package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/genai"

	"lifeweeks/internal/logging"
)

const systemPrompt = "Act as a medical actuary and human life analyst. " +
	"Estimate life expectancy from the supplied health factors and map out significant " +
	"biological, psychological, and sociological milestones. Return JSON only."

// GeminiConfig holds configuration for the Gemini estimation client.
type GeminiConfig struct {
	APIKey          string
	Model           string
	Timeout         time.Duration
	MaxOutputTokens int32
}

// DefaultGeminiConfig returns sensible defaults for the given API key.
func DefaultGeminiConfig(apiKey string) GeminiConfig {
	return GeminiConfig{
		APIKey:  apiKey,
		Model:   "gemini-2.5-flash",
		Timeout: 2 * time.Minute,
	}
}

// GeminiClient implements Client against the Gemini API with structured
// JSON output enforced through a response schema.
type GeminiClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	maxOut  int32
}

// NewGeminiClient creates a Gemini-backed estimation client. The caller
// owns the lifecycle; nothing here reads process-wide state.
func NewGeminiClient(ctx context.Context, cfg GeminiConfig) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = "gemini-2.5-flash"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiClient{
		client:  client,
		model:   model,
		timeout: timeout,
		maxOut:  cfg.MaxOutputTokens,
	}, nil
}

// Estimate sends a single estimation request and parses the structured
// payload. Called at most once per submission; no automatic retries.
func (c *GeminiClient) Estimate(ctx context.Context, req Request) (*Payload, error) {
	// Auto-apply timeout if context has no deadline.
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	requestID := uuid.NewString()[:8]
	startTime := time.Now()
	logging.ProviderDebug("[Gemini] Estimate %s: model=%s age=%.1f", requestID, c.model, req.CurrentAgeYears)

	genCfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    estimateSchema(),
	}
	if c.maxOut > 0 {
		genCfg.MaxOutputTokens = c.maxOut
	}

	contents := []*genai.Content{
		genai.NewContentFromText(buildPrompt(req), genai.RoleUser),
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, genCfg)
	if err != nil {
		logging.ProviderError("[Gemini] Estimate %s: request failed after %v: %v", requestID, time.Since(startTime), err)
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		logging.ProviderError("[Gemini] Estimate %s: empty completion", requestID)
		return nil, fmt.Errorf("no completion returned")
	}

	var payload Payload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		logging.ProviderError("[Gemini] Estimate %s: unparseable payload: %v", requestID, err)
		return nil, fmt.Errorf("failed to parse payload: %w", err)
	}

	logging.Provider("[Gemini] Estimate %s: completed in %v stages=%d milestones=%d",
		requestID, time.Since(startTime), len(payload.LifeStages), len(payload.Milestones))
	return &payload, nil
}

// Close closes the underlying genai client.
func (c *GeminiClient) Close() error {
	return nil
}
