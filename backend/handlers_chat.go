package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"triply/internal/assistant"
	"triply/internal/nlp"
	"triply/internal/store"
	"triply/internal/trip"
)

// ========== Assistant chat ==========

func (s *server) chat(c *gin.Context) {
	ctx := c.Request.Context()

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	t, err := s.store.GetTrip(ctx, c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}

	history := toHistory(req.History)
	if req.History == nil {
		history, err = s.store.Messages(ctx, t.ID, s.cfg.HistoryLimit)
		if err != nil {
			s.fail(c, err)
			return
		}
	}

	asked := s.assistant.Now()
	resp, err := s.assistant.Respond(ctx, req.Message, t, history)
	if err != nil {
		s.fail(c, err)
		return
	}

	// A reply the user already waited for is still returned when saving fails.
	userMsg := trip.NewUserMessage(req.Message, asked)
	botMsg := trip.NewAssistantMessage(resp.Text, s.assistant.Now())
	if err := s.store.AppendMessages(ctx, t.ID, userMsg, botMsg); err != nil {
		s.logger.Error("save chat messages", zap.String("trip_id", t.ID), zap.Error(err))
	}

	c.JSON(200, ChatResponse{
		StructuredResponse: resp.StructuredResponse,
		Intent:             resp.Understanding.PrimaryIntent,
		Style:              resp.Understanding.Style,
	})
}

func (s *server) listMessages(c *gin.Context) {
	msgs, err := s.store.Messages(c.Request.Context(), c.Param("id"), 0)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(200, msgs)
}

func (s *server) insights(c *gin.Context) {
	t, err := s.store.GetTrip(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(200, s.assistant.Insights(t))
}

// ========== Applying structured data ==========

func (s *server) saveItinerary(c *gin.Context) {
	var req ItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	t, err := store.SaveItineraryItems(c.Request.Context(), s.store, c.Param("id"), req.Items)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(200, t)
}

func (s *server) applySuggestion(c *gin.Context) {
	var sug assistant.StructuredSuggestion
	if err := c.ShouldBindJSON(&sug); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	t, err := store.SaveSuggestion(c.Request.Context(), s.store, c.Param("id"), sug)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(200, t)
}

func (s *server) saveReceipt(c *gin.Context) {
	var req ReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	category := req.Category
	if category == "" {
		category = "Other"
	}
	receipt := nlp.ParseReceipt(req.Text)
	t, err := store.SaveReceipt(c.Request.Context(), s.store, c.Param("id"), receipt, category, s.assistant.Now())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(200, gin.H{"receipt": receipt, "trip": t})
}
