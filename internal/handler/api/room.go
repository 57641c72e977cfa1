package api

import (
	"errors"
	"net/http"
	"strconv"

	"hotel-frontdesk/internal/domain/room"
	reqdto "hotel-frontdesk/internal/handler/dto/request"
	resdto "hotel-frontdesk/internal/handler/dto/response"
	"hotel-frontdesk/internal/pkg/errs"
	"hotel-frontdesk/internal/usecase/commands"
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	roomCommands commands.RoomCommands
	roomQueries  queries.RoomQueries
}

func NewRoomHandler(roomCommands commands.RoomCommands, roomQueries queries.RoomQueries) *RoomHandler {
	return &RoomHandler{
		roomCommands: roomCommands,
		roomQueries:  roomQueries,
	}
}

// @Summary List rooms
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param sort query string false "Sort key: number or type" default(number)
// @Success 200 {array} resdto.RoomResponse
// @Router /rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	sort := queries.RoomSortKey(c.DefaultQuery("sort", string(queries.RoomSortByNumber)))

	rooms, err := h.roomQueries.ListRooms(c.Request.Context(), sort)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomViews(rooms))
}

// @Summary Get room
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{id} [get]
func (h *RoomHandler) GetRoom(c *gin.Context) {
	id, err := parseRoomID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID format",
		})
		return
	}

	view, err := h.roomQueries.GetRoom(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

// @Summary List room types
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RoomTypeResponse
// @Router /room-types [get]
func (h *RoomHandler) ListRoomTypes(c *gin.Context) {
	types, err := h.roomQueries.ListRoomTypes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.RoomTypeResponse, len(types))
	for i, t := range types {
		response[i] = resdto.FromRoomTypeView(t)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Create room type
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRoomTypeRequest true "Room type request"
// @Success 201 {object} map[string]int32
// @Failure 400 {object} map[string]string
// @Router /room-types [post]
func (h *RoomHandler) CreateRoomType(c *gin.Context) {
	var req reqdto.CreateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.roomCommands.CreateType(c.Request.Context(), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, room.ErrEmptyTypeName):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Room type name cannot be empty",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// @Summary Create room
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRoomRequest true "Room request"
// @Success 201 {object} map[string]int32
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rooms [post]
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req reqdto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.roomCommands.Create(c.Request.Context(), commands.CreateRoomParams{
		Number:     req.Number,
		RoomTypeID: req.RoomTypeID,
	})
	if err != nil {
		switch {
		case errors.Is(err, room.ErrEmptyRoomNumber), errors.Is(err, room.ErrRoomNumberTooLong):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": err.Error(),
			})
		case errors.Is(err, errs.ErrRoomTypeNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room type not found",
			})
		case errors.Is(err, errs.ErrDuplicateRoomNumber):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Room number already in use",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// @Summary Retire room
// @Description Soft-retire a room; its night-ledger history is preserved
// @Tags rooms
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{id} [delete]
func (h *RoomHandler) RetireRoom(c *gin.Context) {
	id, err := parseRoomID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID format",
		})
		return
	}

	if err := h.roomCommands.Retire(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, errs.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func parseRoomID(c *gin.Context) (int32, error) {
	parsed, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(parsed), nil
}
