package main

import (
	"context"

	"chronos/cmd/chronos/chat"
	"chronos/cmd/chronos/ui"
	"chronos/internal/completion"
	"chronos/internal/config"
	"chronos/internal/conversation"
	"chronos/internal/logging"
	"chronos/internal/session"
	"chronos/internal/usage"

	"github.com/spf13/cobra"
)

// newCompletionClient builds the production client. Tests replace it.
var newCompletionClient = func(ctx context.Context, c *config.Config) (completion.Client, error) {
	gemini, err := completion.NewGeminiClient(ctx, completion.GeminiConfig{
		APIKey:      c.LLM.APIKey,
		Model:       c.LLM.Model,
		Temperature: c.LLM.Temperature,
		TopP:        c.LLM.TopP,
		Timeout:     c.LLM.GetTimeout(),
	}, logging.Get(logging.CategoryAPI).Zap())
	if err != nil {
		return nil, err
	}
	logging.API("completion client ready: model=%s", gemini.Model())
	return completion.NewTracingClient(gemini, logging.Get(logging.CategoryAPI).Zap()), nil
}

// newController wires a fresh conversation to the completion client.
func newController(ctx context.Context, c *config.Config) (*session.Controller, error) {
	client, err := newCompletionClient(ctx, c)
	if err != nil {
		return nil, err
	}
	controller := session.New(conversation.NewStore(), client, logging.Get(logging.CategorySession).Zap())
	logging.Session("session %s started", controller.SessionID())
	return controller, nil
}

func stylesFor(c *config.Config) ui.Styles {
	if c.UI.DarkMode {
		return ui.NewStyles(ui.DarkTheme())
	}
	return ui.DefaultStyles()
}

// commandContext returns the command context carrying a fresh usage tracker.
func commandContext(cmd *cobra.Command) (context.Context, *usage.Tracker) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	tracker := usage.NewTracker()
	return usage.NewContext(ctx, tracker), tracker
}

func runInteractiveChat(cmd *cobra.Command) error {
	ctx, tracker := commandContext(cmd)
	defer func() {
		logging.Session("session usage: %+v", tracker.Stats())
	}()

	controller, err := newController(ctx, cfg)
	if err != nil {
		logging.BootError("failed to start session: %v", err)
		return err
	}

	return chat.Run(chat.Config{
		Controller: controller,
		ModelName:  cfg.LLM.Model,
		Styles:     stylesFor(cfg),
		Context:    ctx,
		Logger:     logging.Get(logging.CategoryUI).Zap(),
	})
}
