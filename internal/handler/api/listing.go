package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "rentify-api/internal/handler/dto/request"
	resdto "rentify-api/internal/handler/dto/response"
	"rentify-api/internal/handler/middleware"
	"rentify-api/internal/usecase/commands"
	"rentify-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ListingHandler struct {
	listingCommands commands.ListingCommands
	listingQueries  queries.ListingQueries
}

func NewListingHandler(listingCommands commands.ListingCommands, listingQueries queries.ListingQueries) *ListingHandler {
	return &ListingHandler{
		listingCommands: listingCommands,
		listingQueries:  listingQueries,
	}
}

// @Summary Create listing
// @Description Publish a new listing with idempotency key
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "Idempotency key for duplicate prevention"
// @Param request body reqdto.CreateListingRequest true "Listing request"
// @Success 201 {object} resdto.ListingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /listings [post]
func (h *ListingHandler) CreateListing(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	idempotencyKey, err := getIdempotencyKey(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	var req reqdto.CreateListingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.listingCommands.CreateListing(c.Request.Context(), userID, req, idempotencyKey)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrListingValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid listing data",
			})
		case errors.Is(err, commands.ErrKeyDomainConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Idempotency key was used for a different operation",
			})
		case errors.Is(err, commands.ErrRequestInProgress):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Request is currently being processed",
			})
		case errors.Is(err, commands.ErrRequestFailedBefore):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "A previous request with this key failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Data(result.Code, "application/json", result.Body)
}

// @Summary Get listing
// @Description Get listing by ID
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} resdto.ListingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /listings/{id} [get]
func (h *ListingHandler) GetListing(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid listing ID format",
		})
		return
	}

	view, err := h.listingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrListingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Listing not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	resp, err := resdto.FromListingView(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List available listings
// @Description List available listings with keyset pagination
// @Tags listings
// @Produce json
// @Param after query string false "Pagination cursor"
// @Param limit query int false "Page size (default 20, max 200)"
// @Success 200 {object} resdto.ListingPageResponse
// @Failure 400 {object} map[string]string
// @Router /listings [get]
func (h *ListingHandler) ListListings(c *gin.Context) {
	cursor, limit := pageParams(c)

	views, next, err := h.listingQueries.ListAvailable(c.Request.Context(), cursor, limit)
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

	resp, err := resdto.FromListingPage(views, next)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List my listings
// @Description List listings owned by the current user
// @Tags listings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ListingResponse
// @Failure 401 {object} map[string]string
// @Router /listings/mine [get]
func (h *ListingHandler) ListMyListings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.listingQueries.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items := make([]*resdto.ListingResponse, len(views))
	for i, v := range views {
		item, convErr := resdto.FromListingView(v)
		if convErr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			return
		}
		items[i] = item
	}
	c.JSON(http.StatusOK, items)
}

func pageParams(c *gin.Context) (*queries.Cursor, int) {
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		if n, err := strconv.Atoi(limitStr); err == nil {
			limit = n
		}
	}
	return cursor, limit
}
