package api

import (
	"errors"
	"net/http"
	"strconv"

	"washclub/internal/domain/user"
	"washclub/internal/handler/dto/response"
	"washclub/internal/handler/middleware"
	"washclub/internal/usecase/commands"
	"washclub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PayoutHandler struct {
	payoutCommands commands.PayoutCommands
	payoutQueries  queries.PayoutQueries
}

func NewPayoutHandler(payoutCommands commands.PayoutCommands, payoutQueries queries.PayoutQueries) *PayoutHandler {
	return &PayoutHandler{
		payoutCommands: payoutCommands,
		payoutQueries:  payoutQueries,
	}
}

// @Summary List own payouts
// @Description List the authenticated partner's payouts, newest first
// @Tags payouts
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum number of payouts to return"
// @Success 200 {object} response.PayoutListResponse
// @Failure 401 {object} map[string]string
// @Router /payouts [get]
func (h *PayoutHandler) ListPayouts(c *gin.Context) {
	partnerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid limit parameter",
			})
			return
		}
		limit = parsed
	}

	payouts, err := h.payoutQueries.ListByPartner(c.Request.Context(), partnerID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, response.PayoutListResponse{Payouts: payouts})
}

// @Summary Get payout
// @Description Get a single payout. Partners see only their own, admins see any
// @Tags payouts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payout ID"
// @Success 200 {object} queries.PayoutView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /payouts/{id} [get]
func (h *PayoutHandler) GetPayout(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	payoutID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid payout ID",
		})
		return
	}

	role, _ := middleware.GetUserRole(c)
	isAdmin := role == user.RoleAdmin

	view, err := h.payoutQueries.GetByID(c.Request.Context(), actorID, isAdmin, payoutID)
	if err != nil {
		if errors.Is(err, queries.ErrPayoutViewNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Payout not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Retry payout
// @Description Re-attempt the transfer for a failed payout
// @Tags payouts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payout ID"
// @Success 202 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /payouts/{id}/retry [post]
func (h *PayoutHandler) RetryPayout(c *gin.Context) {
	payoutID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid payout ID",
		})
		return
	}

	if err := h.payoutCommands.RetryPayout(c.Request.Context(), payoutID); err != nil {
		switch {
		case errors.Is(err, commands.ErrPayoutNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Payout not found",
			})
		case errors.Is(err, commands.ErrPayoutNotRetryable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Payout is not in a retryable state",
			})
		case errors.Is(err, commands.ErrNoPartnerAccount):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Partner has no payout account configured",
			})
		default:
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Transfer failed",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "paid",
	})
}
