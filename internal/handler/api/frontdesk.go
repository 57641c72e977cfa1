package api

import (
	"context"
	"errors"
	"net/http"

	resdto "hotel-frontdesk/internal/handler/dto/response"
	"hotel-frontdesk/internal/pkg/civil"
	"hotel-frontdesk/internal/pkg/errs"
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// FrontDeskHandler serves the daily board: who arrives, who is in
// house, who departs.
type FrontDeskHandler struct {
	frontDesk queries.FrontDeskQueries
}

func NewFrontDeskHandler(frontDesk queries.FrontDeskQueries) *FrontDeskHandler {
	return &FrontDeskHandler{frontDesk: frontDesk}
}

// @Summary Arrivals for a date
// @Tags frontdesk
// @Produce json
// @Security BearerAuth
// @Param date query string true "Business date (YYYY-MM-DD)"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Router /frontdesk/arrivals [get]
func (h *FrontDeskHandler) Arrivals(c *gin.Context) {
	h.listByDate(c, h.frontDesk.ArrivingOn)
}

// @Summary In-house reservations for a date
// @Tags frontdesk
// @Produce json
// @Security BearerAuth
// @Param date query string true "Business date (YYYY-MM-DD)"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Router /frontdesk/in-house [get]
func (h *FrontDeskHandler) InHouse(c *gin.Context) {
	h.listByDate(c, h.frontDesk.InHouseOn)
}

// @Summary Departures for a date
// @Tags frontdesk
// @Produce json
// @Security BearerAuth
// @Param date query string true "Business date (YYYY-MM-DD)"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Router /frontdesk/departures [get]
func (h *FrontDeskHandler) Departures(c *gin.Context) {
	h.listByDate(c, h.frontDesk.DepartingOn)
}

func (h *FrontDeskHandler) listByDate(c *gin.Context, query func(ctx context.Context, date civil.Date) ([]*queries.ReservationView, error)) {
	date, err := civil.ParseDate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	views, err := query(c.Request.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	response := make([]*resdto.ReservationResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromReservationView(v)
	}

	c.JSON(http.StatusOK, response)
}
