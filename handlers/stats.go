package handlers

import (
	"errors"
	"net/http"

	partnerRepo "spordate/database/repository/partner"
	"spordate/services/booking"

	"github.com/gin-gonic/gin"
)

// StatsHandler exposes the public read surfaces: aggregate counters,
// confirmed ticket ids and the partner venue catalog.
type StatsHandler struct {
	recorder booking.Recorder
	partners partnerRepo.PartnerRepository
}

func NewStatsHandler(recorder booking.Recorder, partners partnerRepo.PartnerRepository) *StatsHandler {
	return &StatsHandler{recorder: recorder, partners: partners}
}

// GetStatsHandler returns the global counters the landing page displays.
func (h *StatsHandler) GetStatsHandler(c *gin.Context) {
	stats, err := h.recorder.GetStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetConfirmedTicketsHandler returns the ids of confirmed bookings.
func (h *StatsHandler) GetConfirmedTicketsHandler(c *gin.Context) {
	tickets, err := h.recorder.GetConfirmedTickets(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tickets": tickets})
}

// ListPartnersHandler returns the active partner venues.
func (h *StatsHandler) ListPartnersHandler(c *gin.Context) {
	partners, err := h.partners.ListActive(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"partners": partners})
}

// GetPartnerHandler returns a single venue by id.
func (h *StatsHandler) GetPartnerHandler(c *gin.Context) {
	partner, err := h.partners.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, partnerRepo.ErrPartnerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "partner not found"})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, partner)
}
