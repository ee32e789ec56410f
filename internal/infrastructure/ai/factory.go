package ai

import (
	"github.com/jhoicas/productividad-api/internal/application/ports"
	"github.com/jhoicas/productividad-api/pkg/config"
)

// NewSummarizer elige el adaptador según AI_PROVIDER (validado en config.Load).
func NewSummarizer(cfg config.AIConfig) ports.Summarizer {
	if cfg.Provider == "anthropic" {
		return NewAnthropicService(cfg.AnthropicAPIKey, cfg.AnthropicModel)
	}
	return NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel)
}
