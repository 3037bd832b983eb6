package completion

import (
	"context"
	"fmt"
	"strings"
	"time"

	"chronos/internal/conversation"
	"chronos/internal/usage"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const (
	DefaultModel       = "gemini-3-pro-preview"
	DefaultTemperature = float32(0.8)
	DefaultTopP        = float32(0.95)
	DefaultTimeout     = 120 * time.Second
)

// generator is the part of *genai.Models the client needs.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiConfig holds the fixed request parameters.
type GeminiConfig struct {
	APIKey      string
	Model       string
	Temperature float32
	TopP        float32
	Timeout     time.Duration
}

// DefaultGeminiConfig returns the stock sampling parameters for apiKey.
func DefaultGeminiConfig(apiKey string) GeminiConfig {
	return GeminiConfig{
		APIKey:      apiKey,
		Model:       DefaultModel,
		Temperature: DefaultTemperature,
		TopP:        DefaultTopP,
		Timeout:     DefaultTimeout,
	}
}

// GeminiClient implements Client on top of the Google GenAI SDK.
type GeminiClient struct {
	models      generator
	model       string
	temperature float32
	topP        float32
	timeout     time.Duration
	logger      *zap.Logger
}

// NewGeminiClient creates a client. An empty API key is not an error here:
// the client is still built and every SendMessage reports ErrMissingAPIKey.
func NewGeminiClient(ctx context.Context, cfg GeminiConfig, logger *zap.Logger) (*GeminiClient, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	c := newGeminiClient(nil, cfg, logger)
	if strings.TrimSpace(cfg.APIKey) == "" {
		logger.Warn("gemini client created without API key")
		return c, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	c.models = client.Models
	return c, nil
}

func newGeminiClient(models generator, cfg GeminiConfig, logger *zap.Logger) *GeminiClient {
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}
	return &GeminiClient{
		models:      models,
		model:       model,
		temperature: cfg.Temperature,
		topP:        cfg.TopP,
		timeout:     cfg.Timeout,
		logger:      logger,
	}
}

// Model returns the model identifier sent with each request.
func (c *GeminiClient) Model() string {
	return c.model
}

// SendMessage issues exactly one generateContent call. No retries.
func (c *GeminiClient) SendMessage(ctx context.Context, history []conversation.Turn, newUserContent string) (string, error) {
	if c.models == nil {
		c.logger.Error("gemini request skipped", zap.Error(ErrMissingAPIKey))
		return "", &Failure{Cause: ErrMissingAPIKey}
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline && c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.models.GenerateContent(ctx, c.model, toContents(BuildMessages(history, newUserContent)), c.generationConfig())
	if err != nil {
		c.logger.Error("gemini request failed",
			zap.String("model", c.model),
			zap.Int("history_turns", len(history)),
			zap.Error(err),
		)
		return "", &Failure{Cause: err}
	}

	if tracker := usage.FromContext(ctx); tracker != nil && resp != nil && resp.UsageMetadata != nil {
		tracker.Track(c.model, int(resp.UsageMetadata.PromptTokenCount), int(resp.UsageMetadata.CandidatesTokenCount))
	}

	text := responseText(resp)
	if text == "" {
		fields := []zap.Field{zap.String("model", c.model)}
		if resp != nil && resp.PromptFeedback != nil {
			fields = append(fields, zap.String("block_reason", string(resp.PromptFeedback.BlockReason)))
		}
		c.logger.Warn("gemini returned no text", fields...)
	}
	return text, nil
}

func (c *GeminiClient) generationConfig() *genai.GenerateContentConfig {
	temperature := c.temperature
	topP := c.topP
	return &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(SystemInstruction, genai.RoleUser),
		Temperature:       &temperature,
		TopP:              &topP,
	}
}

// responseText joins the text parts of the first candidate, skipping thoughts.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	content := resp.Candidates[0].Content
	if content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range content.Parts {
		if part == nil || part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}
	return sb.String()
}
