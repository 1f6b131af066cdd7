package api

import (
	"errors"
	"net/http"

	reqdto "seatwise/internal/handler/dto/request"
	resdto "seatwise/internal/handler/dto/response"
	"seatwise/internal/handler/httperr"
	"seatwise/internal/handler/middleware"
	"seatwise/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type SeatingHandler struct {
	cmds commands.SeatingCommands
}

func NewSeatingHandler(cmds commands.SeatingCommands) *SeatingHandler {
	return &SeatingHandler{cmds: cmds}
}

// @Summary Evaluate seating
// @Description Evaluate a booking request and assign tables where the policy allows
// @Tags seating
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.EvaluateSeatingRequest true "Seating request"
// @Success 201 {object} resdto.AssignmentOutcomeResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /seating/evaluate [post]
func (h *SeatingHandler) Evaluate(c *gin.Context) {
	restaurantID, ok := middleware.GetRestaurantID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	var req reqdto.EvaluateSeatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	params, err := req.ToParams(restaurantID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date or time", nil)
		return
	}

	outcome, err := h.cmds.EvaluateAndAssign(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidInput):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		case errors.Is(err, commands.ErrTableConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Table already booked for this slot", nil)
		case errors.Is(err, commands.ErrContactEmailFailed):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Request recorded but contact email failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Seating evaluation failed", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAssignmentOutcome(outcome))
}
