package core

import (
	"context"
	"fmt"
	"log/slog"
	"statica/ai/gpt"
	"statica/ai/intent"
	"statica/entity"
	"statica/internal/metrics"
	"strings"
	"time"
)

const apologyText = "I apologize, but I'm currently experiencing technical difficulties. " +
	"Please try again later or email %s for immediate assistance."

// Chat answers one chat message. It never fails: a panic anywhere in composition is
// reported as an apology with success=false.
func (c *Core) Chat(ctx context.Context, req *entity.ChatRequest) (resp *entity.ChatResponse) {
	in := intent.Fallback
	agent := entity.ParseAgentType(req.AgentType)
	log := c.log.With(
		slog.String("agent", string(agent)),
		slog.Int("length", len(req.Message)),
	)

	defer func() {
		if r := recover(); r != nil {
			log.With(slog.Any("panic", r)).Error("compose chat response")
			metrics.ChatRequests.WithLabelValues(in.String(), entity.SourceFallback).Inc()
			resp = &entity.ChatResponse{
				Response:  fmt.Sprintf(apologyText, c.catalog.Company().SupportEmail),
				Success:   false,
				AgentUsed: entity.SourceFallback,
			}
		}
	}()

	in = intent.Classify(req.Message)
	log = log.With(slog.String("intent", in.String()))

	if text, ok := c.generate(ctx, agent, req.Message); ok {
		log.Debug("answered by remote generation")
		metrics.ChatRequests.WithLabelValues(in.String(), entity.SourceRemote).Inc()
		return &entity.ChatResponse{
			Response:  text,
			Success:   true,
			AgentUsed: entity.SourceRemote,
		}
	}

	text := c.composer.Compose(in, req.Message)
	log.Debug("answered by composer")
	metrics.ChatRequests.WithLabelValues(in.String(), entity.SourceLocal).Inc()
	return &entity.ChatResponse{
		Response:  text,
		Success:   true,
		AgentUsed: entity.SourceLocal,
	}
}

func (c *Core) generate(ctx context.Context, agent entity.AgentType, message string) (string, bool) {
	if c.generator == nil || strings.TrimSpace(message) == "" {
		return "", false
	}

	start := time.Now()
	text, ok := c.generator.TryGenerate(ctx, message, gpt.SystemPrompt(agent, c.catalog))
	outcome := "fallback"
	if ok {
		outcome = "answered"
	}
	metrics.GenerationDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
	return text, ok
}
