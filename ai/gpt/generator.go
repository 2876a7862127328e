package gpt

import (
	"context"
	"github.com/sashabaranov/go-openai"
	"log/slog"
	"net/http"
	"statica/internal/config"
	"statica/internal/lib/sl"
	"strings"
	"time"
)

// degeneratePlaceholder marks a canned non-answer from the remote model.
const degeneratePlaceholder = "thank you for your message"

const assistantMarker = "Assistant:"

type Generator struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float32
	timeout     time.Duration
	log         *slog.Logger
}

// NewGenerator returns nil when no token is configured; remote generation is then disabled.
func NewGenerator(conf *config.Config, logger *slog.Logger) *Generator {
	if !conf.GenerationEnabled() {
		return nil
	}

	timeout := conf.Generation.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	clientConfig := openai.DefaultConfig(conf.Generation.Token)
	if conf.Generation.BaseURL != "" {
		clientConfig.BaseURL = conf.Generation.BaseURL
	}
	clientConfig.HTTPClient = &http.Client{Timeout: timeout}

	return &Generator{
		client:      openai.NewClientWithConfig(clientConfig),
		model:       conf.Generation.Model,
		maxTokens:   conf.Generation.MaxTokens,
		temperature: conf.Generation.Temperature,
		timeout:     timeout,
		log:         logger.With(sl.Module("generator")),
	}
}

// TryGenerate asks the remote model for an answer. The boolean is false whenever the
// caller should use the local composer instead: transport errors, non-200 replies,
// timeouts, empty output and the degenerate placeholder.
func (g *Generator) TryGenerate(ctx context.Context, prompt, systemPrompt string) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   g.maxTokens,
		Temperature: g.temperature,
	})
	if err != nil {
		g.log.With(
			slog.String("model", g.model),
			sl.Err(err),
		).Warn("remote generation failed")
		return "", false
	}

	if len(resp.Choices) == 0 {
		g.log.Debug("remote generation returned no choices")
		return "", false
	}

	text := cleanOutput(resp.Choices[0].Message.Content)
	if text == "" || strings.Contains(strings.ToLower(text), degeneratePlaceholder) {
		g.log.With(
			slog.Int("length", len(text)),
		).Debug("remote generation degenerate")
		return "", false
	}

	return text, true
}

func cleanOutput(text string) string {
	if i := strings.LastIndex(text, assistantMarker); i >= 0 {
		text = text[i+len(assistantMarker):]
	}
	return strings.TrimSpace(text)
}
