package api

import (
	"net/http"

	"washclub/internal/handler/dto/response"
	"washclub/internal/handler/middleware"
	"washclub/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type RedemptionHandler struct {
	redemptionCommands commands.RedemptionCommands
}

func NewRedemptionHandler(redemptionCommands commands.RedemptionCommands) *RedemptionHandler {
	return &RedemptionHandler{
		redemptionCommands: redemptionCommands,
	}
}

// @Summary Start redemption
// @Description Move a pending code to in progress and bind it to the acting partner
// @Tags redemptions
// @Produce json
// @Security BearerAuth
// @Param code path string true "Verification code"
// @Success 200 {object} queries.CodeView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /codes/{code}/start [post]
func (h *RedemptionHandler) StartRedemption(c *gin.Context) {
	partnerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.redemptionCommands.StartRedemption(c.Request.Context(), partnerID, c.Param("code"))
	if err != nil {
		respondRedemptionError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Complete redemption
// @Description Finish a redemption, consume the entitlement and record the payout
// @Tags redemptions
// @Produce json
// @Security BearerAuth
// @Param code path string true "Verification code"
// @Success 200 {object} response.CompleteRedemptionResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /codes/{code}/complete [post]
func (h *RedemptionHandler) CompleteRedemption(c *gin.Context) {
	partnerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	result, err := h.redemptionCommands.CompleteRedemption(c.Request.Context(), partnerID, c.Param("code"))
	if err != nil {
		respondRedemptionError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.CompleteRedemptionResponse{
		Code:           result.Code,
		VerificationID: result.VerificationID.String(),
		PayoutID:       result.PayoutID.String(),
		AmountCents:    result.AmountCents,
		Currency:       result.Currency,
	})
}
