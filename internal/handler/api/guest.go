package api

import (
	"errors"
	"net/http"
	"strconv"

	"hotel-frontdesk/internal/domain/guest"
	reqdto "hotel-frontdesk/internal/handler/dto/request"
	resdto "hotel-frontdesk/internal/handler/dto/response"
	"hotel-frontdesk/internal/pkg/errs"
	"hotel-frontdesk/internal/usecase/commands"
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type GuestHandler struct {
	guestCommands commands.GuestCommands
	guestQueries  queries.GuestQueries
}

func NewGuestHandler(guestCommands commands.GuestCommands, guestQueries queries.GuestQueries) *GuestHandler {
	return &GuestHandler{
		guestCommands: guestCommands,
		guestQueries:  guestQueries,
	}
}

// @Summary Register guest profile
// @Tags guests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.GuestProfileRequest true "Guest profile"
// @Success 201 {object} resdto.GuestResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /guests [post]
func (h *GuestHandler) Register(c *gin.Context) {
	var req reqdto.GuestProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.guestCommands.Register(c.Request.Context(), req.ToParams())
	if err != nil {
		h.writeProfileError(c, err)
		return
	}

	view, err := h.guestQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.FromGuestView(view))
}

// @Summary Update guest profile
// @Tags guests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Guest ID"
// @Param request body reqdto.GuestProfileRequest true "Guest profile"
// @Success 200 {object} resdto.GuestResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /guests/{id} [put]
func (h *GuestHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid guest ID format",
		})
		return
	}

	var req reqdto.GuestProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.guestCommands.Update(c.Request.Context(), id, req.ToParams()); err != nil {
		h.writeProfileError(c, err)
		return
	}

	view, err := h.guestQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromGuestView(view))
}

func (h *GuestHandler) writeProfileError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, guest.ErrEmptyFirstName),
		errors.Is(err, guest.ErrEmptyLastName),
		errors.Is(err, guest.ErrInvalidGender),
		errors.Is(err, guest.ErrBirthdateInFuture),
		errors.Is(err, guest.ErrUnknownNationality):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
		})
	case errors.Is(err, errs.ErrGuestNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Guest profile not found",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

// @Summary Get guest profile
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Guest ID"
// @Success 200 {object} resdto.GuestResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /guests/{id} [get]
func (h *GuestHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid guest ID format",
		})
		return
	}

	view, err := h.guestQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrGuestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Guest profile not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromGuestView(view))
}

// @Summary Search guests by name
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Param name query string true "Name fragment"
// @Param limit query int false "Result limit" default(50)
// @Success 200 {array} resdto.GuestResponse
// @Router /guests [get]
func (h *GuestHandler) Search(c *gin.Context) {
	limit := 50
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil {
			limit = parsed
		}
	}

	views, err := h.guestQueries.SearchByName(c.Request.Context(), c.Query("name"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.GuestResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromGuestView(v)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Delete guest profile
// @Tags guests
// @Security BearerAuth
// @Param id path string true "Guest ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /guests/{id} [delete]
func (h *GuestHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid guest ID format",
		})
		return
	}

	if err := h.guestCommands.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, errs.ErrGuestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Guest profile not found",
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
