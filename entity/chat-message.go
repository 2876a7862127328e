package entity

import (
	"net/http"
)

type AgentType string

const (
	AgentProduct AgentType = "product"
	AgentSupport AgentType = "support"
	AgentGeneral AgentType = "general"
)

// ParseAgentType maps unknown or empty values to the product agent.
func ParseAgentType(s string) AgentType {
	switch AgentType(s) {
	case AgentSupport:
		return AgentSupport
	case AgentGeneral:
		return AgentGeneral
	default:
		return AgentProduct
	}
}

// Sources of a chat answer, reported as agent_used.
const (
	SourceRemote   = "huggingface"
	SourceLocal    = "local"
	SourceFallback = "fallback"
)

type ChatRequest struct {
	Message   string                 `json:"message"`
	AgentType string                 `json:"agent_type,omitempty"`
	UserData  map[string]interface{} `json:"user_data,omitempty"`
}

func (c *ChatRequest) Bind(_ *http.Request) error {
	if c.AgentType == "" {
		c.AgentType = string(AgentProduct)
	}
	return nil
}

type ChatResponse struct {
	Response  string `json:"response"`
	Success   bool   `json:"success"`
	AgentUsed string `json:"agent_used"`
}
