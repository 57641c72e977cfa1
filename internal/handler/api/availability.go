package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "hotel-frontdesk/internal/handler/dto/response"
	"hotel-frontdesk/internal/pkg/civil"
	"hotel-frontdesk/internal/pkg/errs"
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availability queries.AvailabilityQueries
}

func NewAvailabilityHandler(availability queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{availability: availability}
}

// @Summary Free rooms for a period
// @Description List rooms free on every night of [start_date, end_date]. Omitting end_date queries a single date.
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param start_date query string true "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Param room_type_id query int false "Room type filter"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Router /availability [get]
func (h *AvailabilityHandler) GetFreeRooms(c *gin.Context) {
	start, err := civil.ParseDate(c.Query("start_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid start_date format, expected YYYY-MM-DD",
		})
		return
	}

	// A missing end date means a single-date query.
	end := start
	if endStr := c.Query("end_date"); endStr != "" {
		end, err = civil.ParseDate(endStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid end_date format, expected YYYY-MM-DD",
			})
			return
		}
	}

	var roomTypeID *int32
	if typeStr := c.Query("room_type_id"); typeStr != "" {
		parsed, err := strconv.ParseInt(typeStr, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid room_type_id format",
			})
			return
		}
		id := int32(parsed)
		roomTypeID = &id
	}

	rooms, err := h.availability.FreeRoomsForPeriod(c.Request.Context(), start, end, roomTypeID)
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

	c.JSON(http.StatusOK, resdto.NewAvailabilityResponse(start, end, rooms))
}
