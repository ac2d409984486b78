package main

import (
	"time"

	"triply/internal/assistant"
	"triply/internal/trip"
)

// ========== Request / response models ==========

// TripInput is the editable part of a trip.
type TripInput struct {
	Name         string               `json:"name" binding:"required"`
	Category     string               `json:"category"`
	Notes        string               `json:"notes"`
	StartDate    time.Time            `json:"start_date"`
	EndDate      time.Time            `json:"end_date"`
	Budget       *float64             `json:"budget"`
	Expenses     []trip.Expense       `json:"expenses"`
	Destinations []trip.Destination   `json:"destinations"`
	Itinerary    []trip.ItineraryItem `json:"itinerary"`
	PackingList  []trip.PackingItem   `json:"packing_list"`
}

func (in TripInput) applyTo(t *trip.Trip) {
	t.Name = in.Name
	t.Category = in.Category
	t.Notes = in.Notes
	t.StartDate = in.StartDate
	t.EndDate = in.EndDate
	t.Budget = in.Budget
	t.Expenses = in.Expenses
	t.Destinations = in.Destinations
	t.Itinerary = in.Itinerary
	t.PackingList = in.PackingList
}

// ChatRequest carries the user's message. When History is omitted the
// stored conversation is used.
type ChatRequest struct {
	Message string     `json:"message"`
	History []ChatPart `json:"history"`
}

// ChatPart is one earlier turn; Role is "user", "model" or "assistant".
type ChatPart struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type ChatResponse struct {
	assistant.StructuredResponse
	Intent assistant.Intent `json:"intent"`
	Style  assistant.Style  `json:"style"`
}

type ItineraryRequest struct {
	Items []assistant.StructuredItineraryItem `json:"items" binding:"required"`
}

// ReceiptRequest carries text read off a receipt by the client's scanner.
type ReceiptRequest struct {
	Text     string `json:"text" binding:"required"`
	Category string `json:"category"`
}
