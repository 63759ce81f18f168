package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "event-lottery-backend/internal/common/errors"
	"event-lottery-backend/internal/common/middleware"
	"event-lottery-backend/internal/features/lottery/models"
	"event-lottery-backend/internal/features/lottery/service"
)

type LotteryHandler struct {
	service *service.Service
}

func NewLotteryHandler(svc *service.Service) *LotteryHandler {
	return &LotteryHandler{service: svc}
}

func (h *LotteryHandler) RegisterRoutes(router *gin.RouterGroup) {
	events := router.Group("/events")
	{
		events.POST("", h.createEvent)
		events.GET("", h.listEvents)
		events.GET("/:id", h.getEvent)
		events.GET("/:id/counts", h.getCounts)
		events.GET("/:id/entries", h.listEntries)
		events.POST("/:id/join", h.join)
		events.POST("/:id/leave", h.leave)
		events.POST("/:id/draws", h.runDraw)
		events.GET("/:id/draws", h.listDraws)
		events.POST("/:id/response", h.respond)
		events.DELETE("/:id/entries/:entrantId", h.cancelEntry)
		events.DELETE("/:id/entries/:entrantId/purge", h.purgeEntry)
	}
}

// @Summary Create an event
// @Description Creates an event with its capacity, registration window and geolocation rules
// @Tags events
// @Accept json
// @Produce json
// @Param input body CreateEventRequest true "Event configuration"
// @Success 201 {object} models.Event
// @Failure 400 {object} middleware.ErrorResponse
// @Router /events [post]
func (h *LotteryHandler) createEvent(c *gin.Context) {
	var input CreateEventRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		middleware.RespondError(c, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid request body"))
		return
	}

	event, err := h.service.CreateEvent(c.Request.Context(), service.CreateEventInput{
		Name:                input.Name,
		Description:         input.Description,
		Capacity:            input.Capacity,
		WaitingListLimit:    input.WaitingListLimit,
		RegistrationOpen:    input.RegistrationOpen,
		RegistrationClose:   input.RegistrationClose,
		GeolocationRequired: input.GeolocationRequired,
		RadiusRestrictionKm: input.RadiusRestrictionKm,
		LocationCoords:      input.LocationCoords,
	})
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

// @Summary List events
// @Tags events
// @Produce json
// @Success 200 {array} models.Event
// @Router /events [get]
func (h *LotteryHandler) listEvents(c *gin.Context) {
	events, err := h.service.ListEvents(c.Request.Context())
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// @Summary Get an event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} models.Event
// @Failure 404 {object} middleware.ErrorResponse
// @Router /events/{id} [get]
func (h *LotteryHandler) getEvent(c *gin.Context) {
	event, err := h.service.GetEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// @Summary Event counters
// @Description Waiting, selected and confirmed counts plus remaining capacity
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} models.EventCounts
// @Failure 404 {object} middleware.ErrorResponse
// @Router /events/{id}/counts [get]
func (h *LotteryHandler) getCounts(c *gin.Context) {
	counts, err := h.service.GetEventCounts(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

// @Summary List waitlist entries
// @Description Entries ordered by join time, optionally filtered by status
// @Tags waitlist
// @Produce json
// @Param id path string true "Event ID"
// @Param status query string false "Status filter" Enums(waiting, selected, confirmed, declined, cancelled)
// @Success 200 {array} models.WaitlistEntry
// @Failure 404 {object} middleware.ErrorResponse
// @Router /events/{id}/entries [get]
func (h *LotteryHandler) listEntries(c *gin.Context) {
	status := models.EntryStatus(c.Query("status"))
	entries, err := h.service.ListEntries(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// @Summary Join the waiting list
// @Description Registers an entrant, subject to the registration window, geolocation rules and waitlist limit
// @Tags waitlist
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param input body JoinRequest true "Entrant and optional location"
// @Success 200 {object} OKResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /events/{id}/join [post]
func (h *LotteryHandler) join(c *gin.Context) {
	var input JoinRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		middleware.RespondError(c, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid request body"))
		return
	}

	if err := h.service.JoinWaitlist(c.Request.Context(), c.Param("id"), input.EntrantID, input.Location); err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, OKResponse{OK: true})
}

// @Summary Leave the waiting list
// @Description Cancels a Waiting entry; selected entrants must respond to the selection instead
// @Tags waitlist
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param input body LeaveRequest true "Entrant"
// @Success 200 {object} OKResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /events/{id}/leave [post]
func (h *LotteryHandler) leave(c *gin.Context) {
	var input LeaveRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		middleware.RespondError(c, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid request body"))
		return
	}

	if err := h.service.LeaveWaitlist(c.Request.Context(), c.Param("id"), input.EntrantID); err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, OKResponse{OK: true})
}

// @Summary Run a draw
// @Description Selects entrants uniformly at random from the waiting pool, bounded by remaining capacity. Accepts an optional seed for reproducibility.
// @Tags draws
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param input body DrawRequest true "Requested count and optional seed"
// @Success 200 {object} DrawResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /events/{id}/draws [post]
func (h *LotteryHandler) runDraw(c *gin.Context) {
	var input DrawRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		middleware.RespondError(c, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid request body"))
		return
	}

	record, err := h.service.RunDraw(c.Request.Context(), c.Param("id"), input.Count, input.Seed)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, DrawResponse{
		DrawID:      record.ID,
		SelectedIDs: record.SelectedIDs,
		Seed:        record.Seed,
	})
}

// @Summary Draw audit log
// @Description Append-only records of every draw, including seeds
// @Tags draws
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {array} models.DrawRecord
// @Failure 404 {object} middleware.ErrorResponse
// @Router /events/{id}/draws [get]
func (h *LotteryHandler) listDraws(c *gin.Context) {
	records, err := h.service.ListDraws(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// @Summary Respond to a selection
// @Description Confirms or declines a selection before the deadline. A decline triggers at most one backfill draw.
// @Tags waitlist
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param input body RespondRequest true "Entrant and decision (confirm or decline)"
// @Success 200 {object} RespondResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Failure 410 {object} middleware.ErrorResponse
// @Router /events/{id}/response [post]
func (h *LotteryHandler) respond(c *gin.Context) {
	var input RespondRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		middleware.RespondError(c, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid request body"))
		return
	}

	backfilled, err := h.service.RespondToSelection(
		c.Request.Context(), c.Param("id"), input.EntrantID, service.Decision(input.Decision))
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, RespondResponse{OK: true, BackfillTriggered: backfilled})
}

// @Summary Cancel an entry (organizer)
// @Description Force-removes an entrant from any state, releasing a held seat without backfill
// @Tags waitlist
// @Produce json
// @Param id path string true "Event ID"
// @Param entrantId path string true "Entrant ID"
// @Success 200 {object} OKResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /events/{id}/entries/{entrantId} [delete]
func (h *LotteryHandler) cancelEntry(c *gin.Context) {
	if err := h.service.CancelEntry(c.Request.Context(), c.Param("id"), c.Param("entrantId")); err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, OKResponse{OK: true})
}

// @Summary Purge an entry record
// @Description Destroys a Cancelled or Declined entry record. Administrative use only.
// @Tags waitlist
// @Produce json
// @Param id path string true "Event ID"
// @Param entrantId path string true "Entrant ID"
// @Success 200 {object} OKResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /events/{id}/entries/{entrantId}/purge [delete]
func (h *LotteryHandler) purgeEntry(c *gin.Context) {
	if err := h.service.PurgeEntry(c.Request.Context(), c.Param("id"), c.Param("entrantId")); err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, OKResponse{OK: true})
}
