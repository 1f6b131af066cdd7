package api

import (
	"errors"
	"net/http"

	resdto "seatwise/internal/handler/dto/response"
	"seatwise/internal/handler/httperr"
	"seatwise/internal/handler/middleware"
	"seatwise/internal/usecase/commands"
	"seatwise/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WaitlistHandler struct {
	cmds commands.WaitlistCommands
	q    queries.WaitlistQueries
}

func NewWaitlistHandler(cmds commands.WaitlistCommands, q queries.WaitlistQueries) *WaitlistHandler {
	return &WaitlistHandler{cmds: cmds, q: q}
}

// @Summary List waitlist
// @Description List waiting entries for the restaurant
// @Tags waitlist
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.WaitlistEntryResponse
// @Router /waitlist [get]
func (h *WaitlistHandler) List(c *gin.Context) {
	restaurantID, ok := middleware.GetRestaurantID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	views, err := h.q.ListWaiting(c.Request.Context(), restaurantID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list waitlist", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromWaitlistViews(views))
}

// @Summary Convert waitlist entry
// @Description Run a waiting party through seating evaluation
// @Tags waitlist
// @Produce json
// @Security BearerAuth
// @Param id path string true "Waitlist entry ID"
// @Success 201 {object} resdto.AssignmentOutcomeResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /waitlist/{id}/convert [post]
func (h *WaitlistHandler) Convert(c *gin.Context) {
	restaurantID, ok := middleware.GetRestaurantID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	outcome, err := h.cmds.ConvertEntry(c.Request.Context(), restaurantID, id)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrWaitlistEntryNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Waitlist entry not found", nil)
		case errors.Is(err, commands.ErrWaitlistAlreadyConverted):
			httperr.AbortWithError(c, http.StatusConflict, err, "Waitlist entry already converted", nil)
		case errors.Is(err, commands.ErrInvalidInput):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		case errors.Is(err, commands.ErrTableConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Table already booked for this slot", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Waitlist conversion failed", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAssignmentOutcome(outcome))
}
