// Package gemini implements the LLM-backed alternate analysis path using
// Google's Gemini API. It consumes the same raw transcript text as the
// analysis engine but produces its result via a model call with a JSON
// response schema.
package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/genai"

	"github.com/whatsafe/whatsafe/internal/config"
)

// ErrNotConfigured is returned by NewClient when no API key is set. The
// caller decides whether a disabled LLM path is fatal; for the HTTP server
// it is not.
var ErrNotConfigured = errors.New("gemini API key is not configured")

// Client defines the LLM analysis operation used by the HTTP layer.
type Client interface {
	AnalyzeTranscript(ctx context.Context, content string) (*Analysis, error)
}

type sdkClient struct {
	genaiClient   *genai.Client
	log           *slog.Logger
	contentConfig *genai.GenerateContentConfig
	modelName     string
	timeout       time.Duration
	maxRetries    int
	retryDelay    time.Duration
}

// analysisSchema constrains the model response to the alternate-analysis
// contract so the reply parses without prompt gymnastics.
var analysisSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"boycott_detected":  {Type: genai.TypeBoolean, Description: "Whether boycott activity is present in the transcript."},
		"confidence":        {Type: genai.TypeNumber, Description: "Confidence in the finding, 0 to 1."},
		"risk_level":        {Type: genai.TypeString, Enum: []string{"NONE", "LOW", "MEDIUM", "HIGH"}},
		"reasoning":         {Type: genai.TypeString, Description: "Short summary of the reasoning."},
		"boycott_details":   {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}, Description: "Quotes or paraphrases supporting the finding."},
		"potential_targets": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}, Description: "Likely boycott targets, empty if none."},
	},
	Required: []string{"boycott_detected", "confidence", "risk_level", "reasoning", "boycott_details", "potential_targets"},
}

// NewClient creates a Gemini client from the given configuration. Returns
// ErrNotConfigured when the API key is empty.
func NewClient(ctx context.Context, cfg config.GeminiConfig, log *slog.Logger) (Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrNotConfigured
	}

	gi, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	baseCfg := &genai.GenerateContentConfig{
		Temperature:       &cfg.Temperature,
		ResponseMIMEType:  "application/json",
		ResponseSchema:    analysisSchema,
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: AnalysisSystemInstruction}}},
	}

	logger := log.With("component", "gemini_client")
	logger.Info("Gemini client initialized successfully", "model", cfg.ModelName)
	return &sdkClient{
		genaiClient:   gi,
		log:           logger,
		contentConfig: baseCfg,
		modelName:     cfg.ModelName,
		timeout:       cfg.Timeout,
		maxRetries:    cfg.MaxRetries,
		retryDelay:    time.Duration(cfg.RetryDelaySeconds) * time.Second,
	}, nil
}

// AnalyzeTranscript sends the raw transcript to the model and maps its JSON
// reply onto an Analysis.
func (c *sdkClient) AnalyzeTranscript(ctx context.Context, content string) (*Analysis, error) {
	c.log.DebugContext(ctx, "Analyzing transcript via Gemini", "content_bytes", len(content))

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	contents := []*genai.Content{genai.NewContentFromText(content, genai.RoleUser)}

	resp, err := c.generateContentWithRetries(ctx, contents)
	if err != nil {
		c.log.ErrorContext(ctx, "Gemini transcript analysis failed", "error", err)
		return nil, fmt.Errorf("gemini transcript analysis failed: %w", err)
	}

	jsonText, err := c.extractTextFromResponse(ctx, resp)
	if err != nil {
		return nil, fmt.Errorf("failed to extract analysis response: %w", err)
	}

	var payload analysisPayload
	if err := json.Unmarshal([]byte(jsonText), &payload); err != nil {
		c.log.ErrorContext(ctx, "Failed to parse analysis JSON from Gemini response", "error", err, "response_text", jsonText)
		return nil, fmt.Errorf("invalid analysis JSON received: %w", err)
	}

	return payload.toAnalysis(c.modelName), nil
}

type analysisPayload struct {
	BoycottDetected  bool     `json:"boycott_detected"`
	Confidence       float64  `json:"confidence"`
	RiskLevel        string   `json:"risk_level"`
	Reasoning        string   `json:"reasoning"`
	BoycottDetails   []string `json:"boycott_details"`
	PotentialTargets []string `json:"potential_targets"`
}

func (p analysisPayload) toAnalysis(model string) *Analysis {
	details := p.BoycottDetails
	if details == nil {
		details = []string{}
	}
	targets := p.PotentialTargets
	if targets == nil {
		targets = []string{}
	}
	return &Analysis{
		Source:           "llm",
		BoycottDetected:  p.BoycottDetected,
		Confidence:       p.Confidence,
		RiskLevel:        p.RiskLevel,
		Reasoning:        p.Reasoning,
		BoycottDetails:   details,
		PotentialTargets: targets,
		ModelUsed:        model,
		Label:            labelForRiskLevel(p.RiskLevel),
	}
}

func labelForRiskLevel(level string) string {
	switch level {
	case "LOW":
		return "Low boycott risk"
	case "MEDIUM":
		return "Medium boycott risk"
	case "HIGH":
		return "High boycott risk - possible boycott in this group"
	default:
		return "No clear boycott signals detected"
	}
}

func (c *sdkClient) generateContentWithRetries(ctx context.Context, contents []*genai.Content) (*genai.GenerateContentResponse, error) {
	var resp *genai.GenerateContentResponse
	var err error

	for i := 0; i <= c.maxRetries; i++ {
		resp, err = c.genaiClient.Models.GenerateContent(ctx, c.modelName, contents, c.contentConfig)
		if err == nil {
			return resp, nil
		}

		c.log.WarnContext(ctx, "Gemini API call failed, checking for retry", "attempt", i+1, "max_retries", c.maxRetries, "error", err)

		var apiErr *genai.APIError
		if errors.As(err, &apiErr) && (apiErr.Code == 500 || apiErr.Code == 503) {
			if i < c.maxRetries {
				c.log.InfoContext(ctx, "Retrying Gemini API call", "delay", c.retryDelay, "code", apiErr.Code)
				select {
				case <-time.After(c.retryDelay):
					continue
				case <-ctx.Done():
					return nil, ctx.Err()
				}
			}
			return nil, fmt.Errorf("gemini API call failed after %d retries (APIError code %d): %w", c.maxRetries, apiErr.Code, err)
		}

		return nil, fmt.Errorf("gemini API call failed: %w", err)
	}
	return nil, err
}

func (c *sdkClient) extractTextFromResponse(ctx context.Context, resp *genai.GenerateContentResponse) (string, error) {
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != genai.BlockedReasonUnspecified {
		reasonMsg := fmt.Sprintf("%v", resp.PromptFeedback.BlockReason)
		if resp.PromptFeedback.BlockReasonMessage != "" {
			reasonMsg = resp.PromptFeedback.BlockReasonMessage
		}
		c.log.ErrorContext(ctx, "Gemini request blocked", "reason", reasonMsg)
		return "", fmt.Errorf("analysis blocked by safety filter: %s", reasonMsg)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		finishReason := "unknown"
		if len(resp.Candidates) > 0 && resp.Candidates[0].FinishReason != genai.FinishReasonUnspecified {
			finishReason = fmt.Sprintf("%v", resp.Candidates[0].FinishReason)
		}
		c.log.WarnContext(ctx, "Gemini response missing candidates or content", "finish_reason", finishReason)
		return "", fmt.Errorf("analysis returned no content, finish reason: %s", finishReason)
	}

	text := resp.Text()
	if text == "" {
		return "", errors.New("analysis returned empty text")
	}
	return text, nil
}
