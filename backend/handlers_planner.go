package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"triply/internal/config"
	"triply/internal/planner"
)

// openPlanner uses Gemini when an API key is configured, with the rule-based
// planner behind it. The returned func releases the Gemini client.
func openPlanner(ctx context.Context, cfg *config.Config, money func(float64) string, lg *zap.Logger) (planner.Planner, func() error) {
	rules := planner.NewRulePlanner(money)
	if cfg.GeminiAPIKey == "" {
		lg.Info("GEMINI_API_KEY not set, using rule-based planner")
		return rules, func() error { return nil }
	}

	gp, err := planner.NewGeminiPlanner(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, rules, lg)
	if err != nil {
		lg.Warn("gemini planner unavailable, using rule-based planner", zap.Error(err))
		return rules, func() error { return nil }
	}
	return gp, gp.Close
}

func (s *server) planSuggestions(c *gin.Context) {
	var req planner.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	suggestions, err := s.planner.Suggest(c.Request.Context(), req)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(200, gin.H{"suggestions": suggestions})
}
