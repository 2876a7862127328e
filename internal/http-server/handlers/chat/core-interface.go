package chat

import (
	"context"
	"statica/entity"
)

type Core interface {
	Chat(ctx context.Context, req *entity.ChatRequest) *entity.ChatResponse
}
