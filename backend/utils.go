package main

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"triply/internal/store"
	"triply/internal/trip"
)

// ========== 輔助函數 ==========

// fail maps store and context errors onto a status and an {"error": ...} body.
func (s *server) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrTripNotFound):
		c.JSON(404, gin.H{"error": "Trip not found"})
	case errors.Is(err, store.ErrNotApplicable):
		c.JSON(422, gin.H{"error": err.Error()})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		// client went away
		c.JSON(503, gin.H{"error": "Request cancelled"})
	default:
		s.logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(500, gin.H{"error": err.Error()})
	}
}

// toHistory converts client-supplied turns. Roles "model" and "assistant" are
// assistant turns; anything else counts as the user's.
func toHistory(parts []ChatPart) []trip.ChatMessage {
	out := make([]trip.ChatMessage, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p.Text) == "" {
			continue
		}
		switch strings.ToLower(p.Role) {
		case "model", "assistant":
			out = append(out, trip.ChatMessage{Text: p.Text})
		default:
			out = append(out, trip.ChatMessage{Text: p.Text, IsUser: true})
		}
	}
	return out
}
