package api

import (
	"context"
	"errors"
	"net/http"

	reqdto "rentify-api/internal/handler/dto/request"
	resdto "rentify-api/internal/handler/dto/response"
	"rentify-api/internal/handler/middleware"
	"rentify-api/internal/usecase/commands"
	"rentify-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RentalHandler struct {
	rentalCommands commands.RentalCommands
	rentalQueries  queries.RentalQueries
}

func NewRentalHandler(rentalCommands commands.RentalCommands, rentalQueries queries.RentalQueries) *RentalHandler {
	return &RentalHandler{
		rentalCommands: rentalCommands,
		rentalQueries:  rentalQueries,
	}
}

// @Summary Create rental request
// @Description Request a rental for a listing period
// @Tags rentals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRentalRequest true "Rental request"
// @Success 201 {object} resdto.RentalResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /rentals [post]
func (h *RentalHandler) CreateRental(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateRentalRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.rentalCommands.CreateRental(c.Request.Context(), userID, req)
	if err != nil {
		h.writeCreateRentalError(c, err)
		return
	}

	resp, err := resdto.FromRentalView(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *RentalHandler) writeCreateRentalError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrListingNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Listing not found",
		})
	case errors.Is(err, commands.ErrOwnListingRental):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Cannot rent your own listing",
		})
	case errors.Is(err, commands.ErrListingNotAvailable):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Listing is not available",
		})
	case errors.Is(err, commands.ErrStartDateNotFuture):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Start date must be after today",
		})
	case errors.Is(err, commands.ErrInvalidRentalPeriod), errors.Is(err, commands.ErrRentalValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid rental period or fulfillment method",
		})
	case errors.Is(err, commands.ErrMaxRentalDaysExceeded):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Rental period exceeds the listing's maximum",
		})
	case errors.Is(err, commands.ErrFulfillmentNotSupported):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Fulfillment method not supported by this listing",
		})
	case errors.Is(err, commands.ErrPeriodOverlap):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Requested period overlaps an existing rental",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

// @Summary Confirm rental
// @Description Confirm a requested rental; reserves the listing
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Success 200 {object} resdto.RentalResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rentals/{id}/confirm [post]
func (h *RentalHandler) ConfirmRental(c *gin.Context) {
	h.transition(c, h.rentalCommands.ConfirmRental)
}

// @Summary Cancel rental
// @Description Cancel a requested or confirmed rental strictly before its start date
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Success 200 {object} resdto.RentalResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rentals/{id}/cancel [post]
func (h *RentalHandler) CancelRental(c *gin.Context) {
	h.transition(c, h.rentalCommands.CancelRental)
}

func (h *RentalHandler) transition(c *gin.Context, op func(ctx context.Context, actorID, rentalID uuid.UUID) error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	rentalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid rental ID format",
		})
		return
	}

	if err := op(c.Request.Context(), userID, rentalID); err != nil {
		switch {
		case errors.Is(err, commands.ErrRentalNotFound), errors.Is(err, commands.ErrListingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Rental not found",
			})
		case errors.Is(err, commands.ErrRentalNotOwned):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Only the requester may change this rental",
			})
		case errors.Is(err, commands.ErrCancelWindowClosed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Rental can no longer be canceled",
			})
		case errors.Is(err, commands.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Rental is not in an eligible state",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	view, err := h.rentalQueries.GetByIDSystem(c.Request.Context(), rentalID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	resp, err := resdto.FromRentalView(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get rental
// @Description Get rental by ID; visible to its requester, the listing owner, or admins
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Success 200 {object} resdto.RentalResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rentals/{id} [get]
func (h *RentalHandler) GetRental(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	role, _ := middleware.GetUserRole(c)

	rentalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid rental ID format",
		})
		return
	}

	view, err := h.rentalQueries.GetByID(c.Request.Context(), userID, string(role), rentalID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrRentalNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Rental not found",
			})
		case errors.Is(err, queries.ErrRentalAccess):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Not allowed to view this rental",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	resp, err := resdto.FromRentalView(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List my borrowed rentals
// @Description List rentals requested by the current user, keyset-paginated
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Param after query string false "Pagination cursor"
// @Param limit query int false "Page size (default 20, max 200)"
// @Success 200 {object} resdto.RentalPageResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /rentals/borrowed [get]
func (h *RentalHandler) ListBorrowed(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	cursor, limit := pageParams(c)

	items, next, err := h.rentalQueries.ListByRequester(c.Request.Context(), userID, cursor, limit)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidCursor):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid pagination cursor",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	resp, err := resdto.FromRentalPage(items, next)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List my lent rentals
// @Description List rentals on listings owned by the current user
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size (default 20, max 200)"
// @Success 200 {array} resdto.OwnerRentalListItemResponse
// @Failure 401 {object} map[string]string
// @Router /rentals/lent [get]
func (h *RentalHandler) ListLent(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	_, limit := pageParams(c)

	items, err := h.rentalQueries.ListByOwner(c.Request.Context(), userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	resp, err := resdto.FromOwnerRentalList(items)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}
