package completion

import (
	"context"
	"time"

	"chronos/internal/conversation"

	"go.uber.org/zap"
)

// TracingClient wraps a Client and records every exchange.
type TracingClient struct {
	underlying Client
	logger     *zap.Logger
}

// NewTracingClient creates a tracing wrapper around an existing client.
func NewTracingClient(underlying Client, logger *zap.Logger) *TracingClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TracingClient{underlying: underlying, logger: logger}
}

// SendMessage forwards to the wrapped client. Errors that are not already
// a *Failure are wrapped so the contract holds for any underlying client.
func (tc *TracingClient) SendMessage(ctx context.Context, history []conversation.Turn, newUserContent string) (string, error) {
	start := time.Now()
	text, err := tc.underlying.SendMessage(ctx, history, newUserContent)

	fields := []zap.Field{
		zap.Int("history_turns", len(history)),
		zap.Int("prompt_len", len(newUserContent)),
		zap.Bool("expansion_request", conversation.IsExpansionRequest(newUserContent)),
		zap.Int("response_len", len(text)),
		zap.Duration("duration", time.Since(start)),
	}
	if err != nil {
		tc.logger.Error("completion exchange failed", append(fields, zap.Error(err))...)
		return "", asFailure(err)
	}
	tc.logger.Info("completion exchange", fields...)
	return text, nil
}
