package api

import (
	"net/http"
	"time"

	"seatwise/internal/domain/capacity"
	resdto "seatwise/internal/handler/dto/response"
	"seatwise/internal/handler/httperr"
	"seatwise/internal/handler/middleware"
	"seatwise/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TableHandler struct {
	q queries.TableQueries
}

func NewTableHandler(q queries.TableQueries) *TableHandler {
	return &TableHandler{q: q}
}

// @Summary List tables
// @Description List the restaurant's tables
// @Tags tables
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.TableResponse
// @Router /tables [get]
func (h *TableHandler) List(c *gin.Context) {
	restaurantID, ok := middleware.GetRestaurantID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	views, err := h.q.ListAll(c.Request.Context(), restaurantID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list tables", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromTableViews(views))
}

// @Summary List free tables
// @Description List tables free for one slot
// @Tags tables
// @Produce json
// @Security BearerAuth
// @Param date query string true "Service date (YYYY-MM-DD)"
// @Param time query string true "Slot time (HH:MM)"
// @Success 200 {array} resdto.TableResponse
// @Failure 400 {object} map[string]string
// @Router /tables/free [get]
func (h *TableHandler) ListFree(c *gin.Context) {
	restaurantID, ok := middleware.GetRestaurantID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}

	at, err := capacity.ParseTimeOfDay(c.Query("time"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid time", nil)
		return
	}

	views, err := h.q.ListFree(c.Request.Context(), restaurantID, date, at)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list free tables", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromTableViews(views))
}
