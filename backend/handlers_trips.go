package main

import (
	"github.com/gin-gonic/gin"

	"triply/internal/trip"
)

// ========== Trip handlers ==========

func (s *server) listTrips(c *gin.Context) {
	trips, err := s.store.ListTrips(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(200, trips)
}

func (s *server) getTrip(c *gin.Context) {
	t, err := s.store.GetTrip(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(200, t)
}

func (s *server) createTrip(c *gin.Context) {
	var in TripInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if in.EndDate.Before(in.StartDate) {
		c.JSON(400, gin.H{"error": "end_date must not be before start_date"})
		return
	}

	var t trip.Trip
	in.applyTo(&t)
	if err := s.store.CreateTrip(c.Request.Context(), &t); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(201, t)
}

func (s *server) updateTrip(c *gin.Context) {
	var in TripInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if in.EndDate.Before(in.StartDate) {
		c.JSON(400, gin.H{"error": "end_date must not be before start_date"})
		return
	}

	t, err := s.store.UpdateTrip(c.Request.Context(), c.Param("id"), func(t *trip.Trip) error {
		in.applyTo(t)
		return nil
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(200, t)
}

func (s *server) deleteTrip(c *gin.Context) {
	if err := s.store.DeleteTrip(c.Request.Context(), c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Trip deleted"})
}
